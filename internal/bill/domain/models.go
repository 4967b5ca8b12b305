package domain

import (
	"fmt"

	cycledomain "github.com/tiffintrack/tiffintrack/internal/billingcycle/domain"
	mealdomain "github.com/tiffintrack/tiffintrack/internal/meal/domain"
)

// MealCounts tallies servings per meal type over a cycle.
type MealCounts struct {
	Breakfast int `json:"breakfast"`
	Lunch     int `json:"lunch"`
	Dinner    int `json:"dinner"`
}

// Count returns the tally for the given meal type.
func (c MealCounts) Count(meal mealdomain.MealType) int {
	switch meal {
	case mealdomain.MealBreakfast:
		return c.Breakfast
	case mealdomain.MealLunch:
		return c.Lunch
	case mealdomain.MealDinner:
		return c.Dinner
	}
	return 0
}

// BreakdownRow is one day of the bill breakdown.
type BreakdownRow struct {
	Date          string               `json:"date"`
	Meals         mealdomain.DayRecord `json:"meals"`
	SubtotalPaise int64                `json:"subtotal_paise"`
}

// Summary is the aggregated bill for one cycle. Amounts are integer paise;
// formatting to rupees happens only at presentation time.
type Summary struct {
	Cycle      cycledomain.Cycle `json:"cycle"`
	TotalPaise int64             `json:"total_paise"`
	Counts     MealCounts        `json:"counts"`
	Breakdown  []BreakdownRow    `json:"breakdown,omitempty"`
}

// FormatPaise renders an amount of paise as a rupee string with two
// decimals, without going through floating point.
func FormatPaise(paise int64) string {
	sign := ""
	if paise < 0 {
		sign = "-"
		paise = -paise
	}
	return fmt.Sprintf("%s%d.%02d", sign, paise/100, paise%100)
}

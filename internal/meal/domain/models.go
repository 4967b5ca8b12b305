package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/tiffintrack/tiffintrack/internal/config"
)

// DateKey is the canonical YYYY-MM-DD layout used for log keys.
const DateKey = "2006-01-02"

// MealType identifies one of the three daily meals.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
)

// MealTypes lists all meal types in serving order.
var MealTypes = []MealType{MealBreakfast, MealLunch, MealDinner}

var ErrMalformedEntry = errors.New("malformed_log_entry")

// DayRecord holds the serving quantity per meal for one calendar day.
// Quantities are integers; the legacy taken/not-taken logs map onto {0,1}.
type DayRecord struct {
	Breakfast int `json:"breakfast"`
	Lunch     int `json:"lunch"`
	Dinner    int `json:"dinner"`
}

// Quantity returns the servings recorded for the given meal type.
func (r DayRecord) Quantity(meal MealType) int {
	switch meal {
	case MealBreakfast:
		return r.Breakfast
	case MealLunch:
		return r.Lunch
	case MealDinner:
		return r.Dinner
	}
	return 0
}

// IsZero reports whether no meal was recorded for the day.
func (r DayRecord) IsZero() bool {
	return r.Breakfast == 0 && r.Lunch == 0 && r.Dinner == 0
}

// Validate rejects negative quantities.
func (r DayRecord) Validate() error {
	if r.Breakfast < 0 || r.Lunch < 0 || r.Dinner < 0 {
		return ErrMalformedEntry
	}
	return nil
}

// Clamped collapses quantities to {0,1} for consumers that only need
// the legacy taken/not-taken view.
func (r DayRecord) Clamped() DayRecord {
	clamp := func(v int) int {
		if v > 0 {
			return 1
		}
		return 0
	}
	return DayRecord{
		Breakfast: clamp(r.Breakfast),
		Lunch:     clamp(r.Lunch),
		Dinner:    clamp(r.Dinner),
	}
}

// Log maps YYYY-MM-DD date keys to day records. Missing dates mean
// zero quantities everywhere.
type Log map[string]DayRecord

// Day returns the record for the given date, defaulting to all-zero.
func (l Log) Day(date time.Time) DayRecord {
	return l[date.Format(DateKey)]
}

// Validate rejects the whole log when any entry is malformed, naming the
// offending date so upstream corruption is not silently absorbed.
func (l Log) Validate() error {
	for date, record := range l {
		if _, err := time.Parse(DateKey, date); err != nil {
			return fmt.Errorf("%w: bad date key %q", ErrMalformedEntry, date)
		}
		if err := record.Validate(); err != nil {
			return fmt.Errorf("%w: negative quantity on %s", ErrMalformedEntry, date)
		}
	}
	return nil
}

// PriceTable maps meal types to unit prices in paise.
type PriceTable map[MealType]int64

// PricesFromConfig builds the process-wide price table.
func PricesFromConfig(cfg config.PriceConfig) PriceTable {
	return PriceTable{
		MealBreakfast: cfg.Breakfast,
		MealLunch:     cfg.Lunch,
		MealDinner:    cfg.Dinner,
	}
}

// Unit returns the unit price for a meal type.
func (p PriceTable) Unit(meal MealType) int64 {
	return p[meal]
}

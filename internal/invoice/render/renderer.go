package render

import (
	"time"

	billdomain "github.com/tiffintrack/tiffintrack/internal/bill/domain"
	cycledomain "github.com/tiffintrack/tiffintrack/internal/billingcycle/domain"
	mealdomain "github.com/tiffintrack/tiffintrack/internal/meal/domain"
)

// BillView is the deterministic input used for invoice rendering.
type BillView struct {
	CustomerName string
	Number       string
	IssuedAt     time.Time
	PeriodStart  time.Time
	PeriodEnd    time.Time
	Lines        []LineView
	TotalPaise   int64
	Breakdown    []BreakdownView
}

// LineView is one invoice line item.
type LineView struct {
	Description string
	Quantity    int
	UnitPaise   int64
	AmountPaise int64
}

// BreakdownView is one row of the daily breakdown table.
type BreakdownView struct {
	Date          string
	Breakfast     int
	Lunch         int
	Dinner        int
	SubtotalPaise int64
}

// PeriodLabel formats the billing period as "Jan 2, 2006 – Jan 2, 2006".
func (v BillView) PeriodLabel() string {
	return cycledomain.Cycle{Start: v.PeriodStart, End: v.PeriodEnd}.Label()
}

// Renderer turns a bill view into portable output formats.
type Renderer interface {
	RenderPDF(view BillView) ([]byte, error)
	RenderHTML(view BillView) (string, error)
}

var lineDescriptions = map[mealdomain.MealType]string{
	mealdomain.MealBreakfast: "Breakfast",
	mealdomain.MealLunch:     "Lunch",
	mealdomain.MealDinner:    "Dinner",
}

// NewBillView flattens a bill summary into the render input. Meal types with
// a zero count produce no line item; the total always equals the sum of the
// emitted line amounts.
func NewBillView(customerName, number string, issuedAt time.Time, summary billdomain.Summary, prices mealdomain.PriceTable) BillView {
	view := BillView{
		CustomerName: customerName,
		Number:       number,
		IssuedAt:     issuedAt,
		PeriodStart:  summary.Cycle.Start,
		PeriodEnd:    summary.Cycle.End,
		TotalPaise:   summary.TotalPaise,
	}

	for _, meal := range mealdomain.MealTypes {
		count := summary.Counts.Count(meal)
		if count == 0 {
			continue
		}
		unit := prices.Unit(meal)
		view.Lines = append(view.Lines, LineView{
			Description: lineDescriptions[meal],
			Quantity:    count,
			UnitPaise:   unit,
			AmountPaise: int64(count) * unit,
		})
	}

	for _, row := range summary.Breakdown {
		view.Breakdown = append(view.Breakdown, BreakdownView{
			Date:          row.Date,
			Breakfast:     row.Meals.Breakfast,
			Lunch:         row.Meals.Lunch,
			Dinner:        row.Meals.Dinner,
			SubtotalPaise: row.SubtotalPaise,
		})
	}

	return view
}

package service

import (
	billdomain "github.com/tiffintrack/tiffintrack/internal/bill/domain"
	cycledomain "github.com/tiffintrack/tiffintrack/internal/billingcycle/domain"
	"github.com/tiffintrack/tiffintrack/internal/clock"
	mealdomain "github.com/tiffintrack/tiffintrack/internal/meal/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Service aggregates meal logs into bill summaries. Aggregation is pure:
// the only ambient input is the injected clock, used for the breakdown
// past/future rule.
type Service struct {
	log    *zap.Logger
	clock  clock.Clock
	prices mealdomain.PriceTable
}

type ServiceParam struct {
	fx.In

	Log    *zap.Logger
	Clock  clock.Clock
	Prices mealdomain.PriceTable
}

func NewService(p ServiceParam) billdomain.Aggregator {
	return &Service{
		log:    p.Log.Named("bill.service"),
		clock:  p.Clock,
		prices: p.Prices,
	}
}

// Aggregate walks every day of the cycle, sums quantity × unit price per
// meal type, and builds the per-day breakdown.
//
// A day appears in the breakdown when it has a nonzero subtotal, or when it
// lies strictly before today. Past days with no meals stay visible as zero
// rows; future days without meals are omitted.
func (s *Service) Aggregate(log mealdomain.Log, cycle cycledomain.Cycle) (billdomain.Summary, error) {
	if cycle.End.Before(cycle.Start) {
		return billdomain.Summary{}, billdomain.ErrInvalidCycle
	}
	if err := log.Validate(); err != nil {
		return billdomain.Summary{}, err
	}

	today := cycledomain.Date(s.clock.Now())

	summary := billdomain.Summary{Cycle: cycle}
	for _, day := range cycle.Days() {
		record := log.Day(day)

		var subtotal int64
		for _, meal := range mealdomain.MealTypes {
			qty := record.Quantity(meal)
			if qty <= 0 {
				continue
			}
			subtotal += int64(qty) * s.prices.Unit(meal)
		}
		summary.TotalPaise += subtotal
		summary.Counts.Breakfast += record.Breakfast
		summary.Counts.Lunch += record.Lunch
		summary.Counts.Dinner += record.Dinner

		if subtotal > 0 || day.Before(today) {
			summary.Breakdown = append(summary.Breakdown, billdomain.BreakdownRow{
				Date:          day.Format(mealdomain.DateKey),
				Meals:         record,
				SubtotalPaise: subtotal,
			})
		}
	}

	return summary, nil
}

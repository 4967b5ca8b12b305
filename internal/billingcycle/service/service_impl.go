package service

import (
	"time"

	cycledomain "github.com/tiffintrack/tiffintrack/internal/billingcycle/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Service resolves billing cycles. All methods are pure given their inputs.
type Service struct {
	log *zap.Logger
}

type ServiceParam struct {
	fx.In

	Log *zap.Logger
}

func NewService(p ServiceParam) cycledomain.Resolver {
	return &Service{
		log: p.Log.Named("billingcycle.service"),
	}
}

// Resolve computes the cycle containing the reference date.
//
// The cycle starts on billingStartDay of the reference month when the
// reference has reached that day, otherwise on billingStartDay of the
// previous month. The end is the day before billingStartDay in the
// following month. Both ends are clamped to the last valid day of their
// month when billingStartDay overflows it, and a naive end that does not
// fall after the start collapses to the last day of the start month.
func (s *Service) Resolve(reference time.Time, billingStartDay int) (cycledomain.Cycle, error) {
	if billingStartDay < 1 || billingStartDay > 31 {
		return cycledomain.Cycle{}, cycledomain.ErrInvalidBillingStartDay
	}

	ref := cycledomain.Date(reference)
	year, month, day := ref.Date()

	var startYear, endYear int
	var startMonth, endMonth time.Month
	if day >= billingStartDay {
		startYear, startMonth = year, month
		endYear, endMonth = nextMonth(year, month)
	} else {
		startYear, startMonth = prevMonth(year, month)
		endYear, endMonth = year, month
	}

	start := dateClamped(startYear, startMonth, billingStartDay)

	endDay := billingStartDay - 1
	var end time.Time
	if endDay < 1 {
		// Day zero of the end month, i.e. the last day of the start month.
		end = time.Date(endYear, endMonth, 0, 0, 0, 0, 0, time.UTC)
	} else {
		end = dateClamped(endYear, endMonth, endDay)
	}

	// Calendar overflow can land the end on or before the start; collapse
	// the cycle to the remainder of the start month. A zero-length naive
	// result gets the same treatment.
	if !end.After(start) {
		end = lastDayOfMonth(start)
	}

	return cycledomain.Cycle{Start: start, End: end}, nil
}

// ResolvePrevious returns the count cycles preceding the one that contains
// the reference date, newest first. Each cycle is resolved from the day
// before the previous cycle's start, so consecutive results are adjacent
// and never overlap.
func (s *Service) ResolvePrevious(reference time.Time, billingStartDay, count int) ([]cycledomain.Cycle, error) {
	if count < 0 {
		return nil, cycledomain.ErrInvalidCycleCount
	}

	current, err := s.Resolve(reference, billingStartDay)
	if err != nil {
		return nil, err
	}

	cycles := make([]cycledomain.Cycle, 0, count)
	for i := 0; i < count; i++ {
		prior, err := s.Resolve(current.Start.AddDate(0, 0, -1), billingStartDay)
		if err != nil {
			return nil, err
		}
		cycles = append(cycles, prior)
		current = prior
	}
	return cycles, nil
}

func dateClamped(year int, month time.Month, day int) time.Time {
	if max := daysInMonth(year, month); day > max {
		day = max
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func lastDayOfMonth(t time.Time) time.Time {
	year, month, _ := t.Date()
	return time.Date(year, month, daysInMonth(year, month), 0, 0, 0, 0, time.UTC)
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func nextMonth(year int, month time.Month) (int, time.Month) {
	t := time.Date(year, month+1, 1, 0, 0, 0, 0, time.UTC)
	return t.Year(), t.Month()
}

func prevMonth(year int, month time.Month) (int, time.Month) {
	t := time.Date(year, month-1, 1, 0, 0, 0, 0, time.UTC)
	return t.Year(), t.Month()
}

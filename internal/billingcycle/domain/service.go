package domain

import (
	"errors"
	"time"
)

// Resolver maps a reference date and a configured billing start day onto
// concrete cycles.
type Resolver interface {
	Resolve(reference time.Time, billingStartDay int) (Cycle, error)
	ResolvePrevious(reference time.Time, billingStartDay, count int) ([]Cycle, error)
}

var (
	ErrInvalidBillingStartDay = errors.New("invalid_billing_start_day")
	ErrInvalidCycleCount      = errors.New("invalid_cycle_count")
)

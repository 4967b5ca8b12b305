package domain

import (
	"errors"

	cycledomain "github.com/tiffintrack/tiffintrack/internal/billingcycle/domain"
	mealdomain "github.com/tiffintrack/tiffintrack/internal/meal/domain"
)

// Aggregator folds a meal log over a billing cycle into a Summary.
type Aggregator interface {
	Aggregate(log mealdomain.Log, cycle cycledomain.Cycle) (Summary, error)
}

var ErrInvalidCycle = errors.New("invalid_billing_cycle")

package domain

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	mealdomain "github.com/tiffintrack/tiffintrack/internal/meal/domain"
)

type Service interface {
	// Upsert records quantities for one customer-day, replacing any
	// existing entry for the same date.
	Upsert(ctx context.Context, customerID snowflake.ID, date string, record mealdomain.DayRecord) error
	// Range returns the log between the from and to date keys inclusive,
	// as the sparse map the aggregator consumes.
	Range(ctx context.Context, customerID snowflake.ID, from, to string) (mealdomain.Log, error)
}

var ErrInvalidDate = errors.New("invalid_date")

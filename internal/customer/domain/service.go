package domain

import (
	"context"
	"errors"
)

type Service interface {
	GetByID(ctx context.Context, id string) (Customer, error)
	List(ctx context.Context) ([]Customer, error)
	// UpdateBillingStartDay validates the day against [1,31] before saving.
	UpdateBillingStartDay(ctx context.Context, id string, day int) (Customer, error)
}

var (
	ErrInvalidCustomerID = errors.New("invalid_customer_id")
	ErrCustomerNotFound  = errors.New("customer_not_found")
)

package domain

import "context"

// Service exposes aggregate billing data across customers.
type Service interface {
	ListCustomerBills(ctx context.Context) (CustomerBillsResponse, error)
	ListBillingActivity(ctx context.Context, limit int) (BillingActivityResponse, error)
}

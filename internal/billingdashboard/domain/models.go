package domain

import "time"

// CustomerBill is one customer's position in the current billing cycle.
type CustomerBill struct {
	CustomerID string `json:"customer_id"`
	Name       string `json:"name"`
	Period     string `json:"period"`
	TotalPaise int64  `json:"total_paise"`
	Breakfasts int    `json:"breakfasts"`
	Lunches    int    `json:"lunches"`
	Dinners    int    `json:"dinners"`
}

// CustomerBillsResponse is the API response for current cycle bills.
type CustomerBillsResponse struct {
	Bills []CustomerBill `json:"bills"`
}

// BillingActivity is a human-readable billing event.
type BillingActivity struct {
	Message    string    `json:"message"`
	OccurredAt time.Time `json:"occurred_at"`
}

// BillingActivityResponse is the API response for billing activity.
type BillingActivityResponse struct {
	Activity []BillingActivity `json:"activity"`
}

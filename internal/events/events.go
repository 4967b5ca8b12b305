package events

// Billing event types written to the outbox.
const (
	EventInvoiceGenerated = "invoice_generated"
	EventBillSent         = "bill_sent"
)

// InvoicePayload captures the minimal data needed to follow up on an
// invoice event.
type InvoicePayload struct {
	InvoiceID   string `json:"invoice_id"`
	CustomerID  string `json:"customer_id"`
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
	TotalPaise  int64  `json:"total_paise"`
	MessageID   string `json:"message_id,omitempty"`
}

// ToMap converts a payload into an outbox-friendly map.
func (p InvoicePayload) ToMap() map[string]any {
	payload := map[string]any{
		"invoice_id":   p.InvoiceID,
		"customer_id":  p.CustomerID,
		"period_start": p.PeriodStart,
		"period_end":   p.PeriodEnd,
		"total_paise":  p.TotalPaise,
	}
	if p.MessageID != "" {
		payload["message_id"] = p.MessageID
	}
	return payload
}

package domain

import (
	"context"
	"errors"

	"github.com/tiffintrack/tiffintrack/pkg/db/pagination"
)

// SendReceipt reports the outcome of handing an invoice to the
// messaging collaborator.
type SendReceipt struct {
	InvoiceID string `json:"invoice_id"`
	Success   bool   `json:"success"`
	MessageID string `json:"message_id,omitempty"`
}

// ListInvoicesRequest selects a page of a customer's invoices.
type ListInvoicesRequest struct {
	CustomerID string `json:"-"`
	pagination.Pagination
}

// ListInvoicesResponse is a page of invoices, newest period first.
type ListInvoicesResponse struct {
	pagination.PageInfo
	Invoices []Invoice `json:"invoices"`
}

type Service interface {
	// Generate resolves the customer's current cycle, aggregates the meal
	// log and persists a draft invoice with the rendered document.
	Generate(ctx context.Context, customerID string) (Invoice, error)
	GetByID(ctx context.Context, id string) (Invoice, error)
	ListByCustomer(ctx context.Context, req ListInvoicesRequest) (ListInvoicesResponse, error)
	// Send hands the invoice message and document to the messaging port
	// and marks the invoice sent on success.
	Send(ctx context.Context, invoiceID string) (SendReceipt, error)
}

var (
	ErrInvalidInvoiceID   = errors.New("invalid_invoice_id")
	ErrInvalidPageToken   = errors.New("invalid_page_token")
	ErrInvoiceNotFound    = errors.New("invoice_not_found")
	ErrMissingPhoneNumber = errors.New("missing_phone_number")
	ErrDocumentGeneration = errors.New("document_generation_failed")
)

package domain

import (
	"context"
	"errors"
)

// SendBillRequest carries everything the whatsapp bridge needs: the
// recipient, the message body and the rendered document as a data URI.
type SendBillRequest struct {
	To           string `json:"to"`
	Message      string `json:"message"`
	MediaDataURI string `json:"media"`
}

// SendResult reports the bridge outcome.
type SendResult struct {
	Success   bool   `json:"success"`
	MessageID string `json:"message_id,omitempty"`
}

// Sender delivers a bill to a customer. Implementations only hand the
// content off; actual message delivery happens downstream.
type Sender interface {
	SendBill(ctx context.Context, req SendBillRequest) (SendResult, error)
}

var (
	ErrMissingRecipient = errors.New("missing_recipient")
	ErrPublishFailed    = errors.New("publish_failed")
)

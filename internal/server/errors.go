package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	billdomain "github.com/tiffintrack/tiffintrack/internal/bill/domain"
	cycledomain "github.com/tiffintrack/tiffintrack/internal/billingcycle/domain"
	customerdomain "github.com/tiffintrack/tiffintrack/internal/customer/domain"
	invoicedomain "github.com/tiffintrack/tiffintrack/internal/invoice/domain"
	mealdomain "github.com/tiffintrack/tiffintrack/internal/meal/domain"
	meallogdomain "github.com/tiffintrack/tiffintrack/internal/meallog/domain"
)

// APIError is the error envelope returned to clients.
type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func (e *APIError) Error() string { return e.Code }

var (
	ErrNotFound           = &APIError{Status: http.StatusNotFound, Code: "not_found", Message: "resource not found"}
	ErrServiceUnavailable = &APIError{Status: http.StatusServiceUnavailable, Code: "service_unavailable", Message: "service unavailable"}
)

func invalidRequestError() *APIError {
	return &APIError{Status: http.StatusBadRequest, Code: "invalid_request", Message: "malformed request"}
}

func newValidationError(field, code, message string) *APIError {
	return &APIError{Status: http.StatusBadRequest, Code: code, Message: message, Field: field}
}

// AbortWithError maps domain errors onto HTTP responses.
func AbortWithError(c *gin.Context, err error) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		c.AbortWithStatusJSON(apiErr.Status, gin.H{"error": apiErr})
		return
	}

	status := http.StatusInternalServerError
	code := "internal_error"

	switch {
	case errors.Is(err, customerdomain.ErrCustomerNotFound),
		errors.Is(err, invoicedomain.ErrInvoiceNotFound):
		status = http.StatusNotFound
		code = err.Error()
	case errors.Is(err, customerdomain.ErrInvalidCustomerID),
		errors.Is(err, invoicedomain.ErrInvalidInvoiceID),
		errors.Is(err, invoicedomain.ErrInvalidPageToken),
		errors.Is(err, cycledomain.ErrInvalidBillingStartDay),
		errors.Is(err, cycledomain.ErrInvalidCycleCount),
		errors.Is(err, billdomain.ErrInvalidCycle),
		errors.Is(err, meallogdomain.ErrInvalidDate):
		status = http.StatusBadRequest
		code = err.Error()
	case errors.Is(err, mealdomain.ErrMalformedEntry):
		status = http.StatusBadRequest
		code = mealdomain.ErrMalformedEntry.Error()
	case errors.Is(err, invoicedomain.ErrMissingPhoneNumber):
		status = http.StatusConflict
		code = invoicedomain.ErrMissingPhoneNumber.Error()
	}

	c.AbortWithStatusJSON(status, gin.H{"error": gin.H{"code": code}})
}

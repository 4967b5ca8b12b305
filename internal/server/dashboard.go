package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ListCustomerBills returns every customer's current cycle totals.
func (s *Server) ListCustomerBills(c *gin.Context) {
	resp, err := s.dashboard.ListCustomerBills(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListBillingActivity returns recent billing events, newest first.
func (s *Server) ListBillingActivity(c *gin.Context) {
	limit := 20
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > 100 {
			AbortWithError(c, newValidationError("limit", "invalid_limit", "limit must be between 1 and 100"))
			return
		}
		limit = n
	}

	resp, err := s.dashboard.ListBillingActivity(c.Request.Context(), limit)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

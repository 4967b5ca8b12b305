package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) ListCustomers(c *gin.Context) {
	customers, err := s.customers.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": customers})
}

func (s *Server) GetCustomer(c *gin.Context) {
	customer, err := s.customers.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": customer})
}

type updateBillingStartDayRequest struct {
	BillingStartDay int `json:"billing_start_day"`
}

func (s *Server) UpdateBillingStartDay(c *gin.Context) {
	var req updateBillingStartDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	customer, err := s.customers.UpdateBillingStartDay(c.Request.Context(), c.Param("id"), req.BillingStartDay)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	// The cycle moved, so any cached bill is stale.
	s.billCache.Delete(customer.ID.String())

	c.JSON(http.StatusOK, gin.H{"data": customer})
}

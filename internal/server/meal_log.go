package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	mealdomain "github.com/tiffintrack/tiffintrack/internal/meal/domain"
)

type upsertMealEntryRequest struct {
	Breakfast int `json:"breakfast"`
	Lunch     int `json:"lunch"`
	Dinner    int `json:"dinner"`
}

func (s *Server) UpsertMealEntry(c *gin.Context) {
	var req upsertMealEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	customer, err := s.customers.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	record := mealdomain.DayRecord{
		Breakfast: req.Breakfast,
		Lunch:     req.Lunch,
		Dinner:    req.Dinner,
	}
	if err := s.mealLogs.Upsert(c.Request.Context(), customer.ID, c.Param("date"), record); err != nil {
		AbortWithError(c, err)
		return
	}

	s.billCache.Delete(customer.ID.String())

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) ListMealEntries(c *gin.Context) {
	customer, err := s.customers.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		// Default to the customer's current billing cycle.
		cycle, err := s.resolver.Resolve(s.clk.Now(), customer.BillingStartDay)
		if err != nil {
			AbortWithError(c, err)
			return
		}
		from = cycle.Start.Format(mealdomain.DateKey)
		to = cycle.End.Format(mealdomain.DateKey)
	}

	log, err := s.mealLogs.Range(c.Request.Context(), customer.ID, from, to)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"from": from,
		"to":   to,
		"log":  log,
	}})
}

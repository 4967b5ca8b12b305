package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	billdomain "github.com/tiffintrack/tiffintrack/internal/bill/domain"
	cycledomain "github.com/tiffintrack/tiffintrack/internal/billingcycle/domain"
	"github.com/tiffintrack/tiffintrack/internal/invoice/render"
	mealdomain "github.com/tiffintrack/tiffintrack/internal/meal/domain"
)

type billResponse struct {
	Cycle      cycledomain.Cycle         `json:"cycle"`
	Total      string                    `json:"total"`
	TotalPaise int64                     `json:"total_paise"`
	Counts     billdomain.MealCounts     `json:"counts"`
	Breakdown  []billdomain.BreakdownRow `json:"breakdown,omitempty"`
}

func (s *Server) GetBill(c *gin.Context) {
	customer, err := s.customers.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	cyclesBack := 0
	if raw := c.Query("cycles_back"); raw != "" {
		cyclesBack, err = strconv.Atoi(raw)
		if err != nil || cyclesBack < 0 {
			AbortWithError(c, newValidationError("cycles_back", "invalid_cycles_back", "cycles_back must be a non-negative integer"))
			return
		}
	}

	wantHTML := c.Query("format") == "html"

	if cyclesBack == 0 && !wantHTML {
		if cached, ok := s.billCache.Get(customer.ID.String()); ok {
			c.JSON(http.StatusOK, gin.H{"data": cached})
			return
		}
	}

	cycle, err := s.resolveCycleAt(customer.BillingStartDay, cyclesBack)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	log, err := s.mealLogs.Range(c.Request.Context(), customer.ID,
		cycle.Start.Format(mealdomain.DateKey),
		cycle.End.Format(mealdomain.DateKey),
	)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	summary, err := s.aggregator.Aggregate(log, cycle)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	if wantHTML {
		view := render.NewBillView(customer.Name, "", cycledomain.Date(s.clk.Now()), summary, s.prices)
		html, err := s.renderer.RenderHTML(view)
		if err != nil {
			AbortWithError(c, err)
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
		return
	}

	resp := billResponse{
		Cycle:      summary.Cycle,
		Total:      billdomain.FormatPaise(summary.TotalPaise),
		TotalPaise: summary.TotalPaise,
		Counts:     summary.Counts,
		Breakdown:  summary.Breakdown,
	}
	if cyclesBack == 0 {
		s.billCache.Set(customer.ID.String(), resp, billCacheTTL)
	}

	c.JSON(http.StatusOK, gin.H{"data": resp})
}

func (s *Server) resolveCycleAt(billingStartDay, cyclesBack int) (cycledomain.Cycle, error) {
	now := s.clk.Now()
	if cyclesBack == 0 {
		return s.resolver.Resolve(now, billingStartDay)
	}
	cycles, err := s.resolver.ResolvePrevious(now, billingStartDay, cyclesBack)
	if err != nil {
		return cycledomain.Cycle{}, err
	}
	return cycles[len(cycles)-1], nil
}

func (s *Server) GetPreviousCycles(c *gin.Context) {
	customer, err := s.customers.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	count := 6
	if raw := c.Query("count"); raw != "" {
		count, err = strconv.Atoi(raw)
		if err != nil || count < 0 {
			AbortWithError(c, newValidationError("count", "invalid_count", "count must be a non-negative integer"))
			return
		}
	}

	cycles, err := s.resolver.ResolvePrevious(s.clk.Now(), customer.BillingStartDay, count)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"cycles": cycles}})
}

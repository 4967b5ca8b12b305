package service

import (
	"context"
	"fmt"
	"time"

	billdomain "github.com/tiffintrack/tiffintrack/internal/bill/domain"
	cycledomain "github.com/tiffintrack/tiffintrack/internal/billingcycle/domain"
	dashboarddomain "github.com/tiffintrack/tiffintrack/internal/billingdashboard/domain"
	"github.com/tiffintrack/tiffintrack/internal/clock"
	customerdomain "github.com/tiffintrack/tiffintrack/internal/customer/domain"
	"github.com/tiffintrack/tiffintrack/internal/events"
	mealdomain "github.com/tiffintrack/tiffintrack/internal/meal/domain"
	meallogdomain "github.com/tiffintrack/tiffintrack/internal/meallog/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service struct {
	db  *gorm.DB
	log *zap.Logger
	clk clock.Clock

	customers  customerdomain.Service
	mealLogs   meallogdomain.Service
	resolver   cycledomain.Resolver
	aggregator billdomain.Aggregator
}

type ServiceParam struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	Clock clock.Clock

	Customers  customerdomain.Service
	MealLogs   meallogdomain.Service
	Resolver   cycledomain.Resolver
	Aggregator billdomain.Aggregator
}

func NewService(p ServiceParam) dashboarddomain.Service {
	return &Service{
		db:  p.DB,
		log: p.Log.Named("billingdashboard.service"),
		clk: p.Clock,

		customers:  p.Customers,
		mealLogs:   p.MealLogs,
		resolver:   p.Resolver,
		aggregator: p.Aggregator,
	}
}

// ListCustomerBills aggregates every customer's current cycle.
func (s *Service) ListCustomerBills(ctx context.Context) (dashboarddomain.CustomerBillsResponse, error) {
	customers, err := s.customers.List(ctx)
	if err != nil {
		return dashboarddomain.CustomerBillsResponse{}, err
	}

	now := s.clk.Now()
	resp := dashboarddomain.CustomerBillsResponse{
		Bills: make([]dashboarddomain.CustomerBill, 0, len(customers)),
	}
	for _, customer := range customers {
		cycle, err := s.resolver.Resolve(now, customer.BillingStartDay)
		if err != nil {
			return dashboarddomain.CustomerBillsResponse{}, err
		}

		mealLog, err := s.mealLogs.Range(ctx, customer.ID,
			cycle.Start.Format(mealdomain.DateKey),
			cycle.End.Format(mealdomain.DateKey),
		)
		if err != nil {
			return dashboarddomain.CustomerBillsResponse{}, err
		}

		summary, err := s.aggregator.Aggregate(mealLog, cycle)
		if err != nil {
			return dashboarddomain.CustomerBillsResponse{}, err
		}

		resp.Bills = append(resp.Bills, dashboarddomain.CustomerBill{
			CustomerID: customer.ID.String(),
			Name:       customer.Name,
			Period:     cycle.Label(),
			TotalPaise: summary.TotalPaise,
			Breakfasts: summary.Counts.Breakfast,
			Lunches:    summary.Counts.Lunch,
			Dinners:    summary.Counts.Dinner,
		})
	}
	return resp, nil
}

type activityRow struct {
	EventType  string
	CustomerID int64
	CreatedAt  time.Time
}

// ListBillingActivity reads recent outbox events, newest first.
func (s *Service) ListBillingActivity(ctx context.Context, limit int) (dashboarddomain.BillingActivityResponse, error) {
	if limit <= 0 {
		limit = 20
	}

	var rows []activityRow
	err := s.db.WithContext(ctx).Raw(
		`SELECT event_type, customer_id, created_at
		 FROM billing_events
		 ORDER BY created_at DESC
		 LIMIT ?`,
		limit,
	).Scan(&rows).Error
	if err != nil {
		return dashboarddomain.BillingActivityResponse{}, err
	}

	resp := dashboarddomain.BillingActivityResponse{
		Activity: make([]dashboarddomain.BillingActivity, 0, len(rows)),
	}
	for _, row := range rows {
		resp.Activity = append(resp.Activity, dashboarddomain.BillingActivity{
			Message:    activityMessage(row),
			OccurredAt: row.CreatedAt,
		})
	}
	return resp, nil
}

func activityMessage(row activityRow) string {
	switch row.EventType {
	case events.EventInvoiceGenerated:
		return fmt.Sprintf("Invoice generated for customer %d", row.CustomerID)
	case events.EventBillSent:
		return fmt.Sprintf("Bill sent to customer %d", row.CustomerID)
	}
	return fmt.Sprintf("%s for customer %d", row.EventType, row.CustomerID)
}

package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/snowflake"
	billdomain "github.com/tiffintrack/tiffintrack/internal/bill/domain"
	cycledomain "github.com/tiffintrack/tiffintrack/internal/billingcycle/domain"
	"github.com/tiffintrack/tiffintrack/internal/clock"
	customerdomain "github.com/tiffintrack/tiffintrack/internal/customer/domain"
	"github.com/tiffintrack/tiffintrack/internal/events"
	invoicedomain "github.com/tiffintrack/tiffintrack/internal/invoice/domain"
	"github.com/tiffintrack/tiffintrack/internal/invoice/render"
	mealdomain "github.com/tiffintrack/tiffintrack/internal/meal/domain"
	meallogdomain "github.com/tiffintrack/tiffintrack/internal/meallog/domain"
	notifydomain "github.com/tiffintrack/tiffintrack/internal/notify/domain"
	"github.com/tiffintrack/tiffintrack/internal/observability/logger"
	"github.com/tiffintrack/tiffintrack/pkg/repository"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	clk   clock.Clock
	genID *snowflake.Node

	resolver   cycledomain.Resolver
	aggregator billdomain.Aggregator
	renderer   render.Renderer
	prices     mealdomain.PriceTable

	customers customerdomain.Service
	mealLogs  meallogdomain.Service
	sender    notifydomain.Sender
	outbox    *events.Outbox

	invoices repository.Repository[invoicedomain.Invoice]
}

type ServiceParam struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	Clock clock.Clock
	GenID *snowflake.Node

	Resolver   cycledomain.Resolver
	Aggregator billdomain.Aggregator
	Renderer   render.Renderer
	Prices     mealdomain.PriceTable

	Customers customerdomain.Service
	MealLogs  meallogdomain.Service
	Sender    notifydomain.Sender
	Outbox    *events.Outbox
}

func NewService(p ServiceParam) invoicedomain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("invoice.service"),
		clk:   p.Clock,
		genID: p.GenID,

		resolver:   p.Resolver,
		aggregator: p.Aggregator,
		renderer:   p.Renderer,
		prices:     p.Prices,

		customers: p.Customers,
		mealLogs:  p.MealLogs,
		sender:    p.Sender,
		outbox:    p.Outbox,

		invoices: repository.ProvideStore[invoicedomain.Invoice](p.DB),
	}
}

// Generate builds the invoice for the customer's current billing cycle:
// resolve cycle, aggregate the meal log, render document and message, and
// persist the draft together with its outbox event.
func (s *Service) Generate(ctx context.Context, customerID string) (invoicedomain.Invoice, error) {
	customer, err := s.customers.GetByID(ctx, customerID)
	if err != nil {
		return invoicedomain.Invoice{}, err
	}

	now := s.clk.Now()
	cycle, err := s.resolver.Resolve(now, customer.BillingStartDay)
	if err != nil {
		return invoicedomain.Invoice{}, err
	}

	mealLog, err := s.mealLogs.Range(ctx, customer.ID,
		cycle.Start.Format(mealdomain.DateKey),
		cycle.End.Format(mealdomain.DateKey),
	)
	if err != nil {
		return invoicedomain.Invoice{}, err
	}

	summary, err := s.aggregator.Aggregate(mealLog, cycle)
	if err != nil {
		return invoicedomain.Invoice{}, err
	}

	id := s.genID.Generate()
	number := fmt.Sprintf("INV-%s-%s", cycle.Start.Format("200601"), id.String())

	view := render.NewBillView(customer.Name, number, cycledomain.Date(now), summary, s.prices)
	document, err := s.renderer.RenderPDF(view)
	if err != nil {
		return invoicedomain.Invoice{}, fmt.Errorf("%w: %v", invoicedomain.ErrDocumentGeneration, err)
	}

	invoice := invoicedomain.Invoice{
		ID:          id,
		CustomerID:  customer.ID,
		Number:      number,
		PeriodStart: cycle.Start,
		PeriodEnd:   cycle.End,
		TotalPaise:  summary.TotalPaise,
		Status:      invoicedomain.InvoiceStatusDraft,
		Document:    document,
		MessageText: render.BuildMessage(view),
		Metadata: datatypes.JSONMap{
			"breakfast_count": summary.Counts.Breakfast,
			"lunch_count":     summary.Counts.Lunch,
			"dinner_count":    summary.Counts.Dinner,
		},
		CreatedAt: now.UTC(),
		UpdatedAt: now.UTC(),
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&invoice).Error; err != nil {
			return err
		}
		return s.outbox.PublishTx(ctx, tx, events.Event{
			CustomerID: customer.ID,
			Type:       events.EventInvoiceGenerated,
			Payload: events.InvoicePayload{
				InvoiceID:   invoice.ID.String(),
				CustomerID:  customer.ID.String(),
				PeriodStart: cycle.Start.Format(mealdomain.DateKey),
				PeriodEnd:   cycle.End.Format(mealdomain.DateKey),
				TotalPaise:  invoice.TotalPaise,
			}.ToMap(),
			DedupeKey: events.EventInvoiceGenerated + ":" + invoice.Number,
		})
	})
	if err != nil {
		return invoicedomain.Invoice{}, err
	}

	s.log.Info("invoice generated",
		zap.String("invoice_id", invoice.ID.String()),
		zap.String("customer_id", customer.ID.String()),
		zap.String("period", cycle.Label()),
		zap.Int64("total_paise", invoice.TotalPaise),
	)
	return invoice, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (invoicedomain.Invoice, error) {
	invoiceID, err := parseID(id)
	if err != nil {
		return invoicedomain.Invoice{}, invoicedomain.ErrInvalidInvoiceID
	}

	invoice, err := s.invoices.FindOne(ctx, "id = ?", invoiceID)
	if err != nil {
		return invoicedomain.Invoice{}, err
	}
	if invoice == nil {
		return invoicedomain.Invoice{}, invoicedomain.ErrInvoiceNotFound
	}
	return *invoice, nil
}

func (s *Service) ListByCustomer(ctx context.Context, req invoicedomain.ListInvoicesRequest) (invoicedomain.ListInvoicesResponse, error) {
	id, err := parseID(req.CustomerID)
	if err != nil {
		return invoicedomain.ListInvoicesResponse{}, customerdomain.ErrInvalidCustomerID
	}

	offset := 0
	if req.PageToken != "" {
		offset, err = strconv.Atoi(req.PageToken)
		if err != nil || offset < 0 {
			return invoicedomain.ListInvoicesResponse{}, invoicedomain.ErrInvalidPageToken
		}
	}
	limit := req.Limit(20, 100)

	var total int64
	err = s.db.WithContext(ctx).
		Model(&invoicedomain.Invoice{}).
		Where("customer_id = ?", id).
		Count(&total).Error
	if err != nil {
		return invoicedomain.ListInvoicesResponse{}, err
	}

	var invoices []invoicedomain.Invoice
	err = s.db.WithContext(ctx).
		Where("customer_id = ?", id).
		Order("period_start DESC").
		Offset(offset).
		Limit(limit).
		Find(&invoices).Error
	if err != nil {
		return invoicedomain.ListInvoicesResponse{}, err
	}

	resp := invoicedomain.ListInvoicesResponse{Invoices: invoices}
	resp.TotalSize = total
	if int64(offset+len(invoices)) < total {
		resp.NextPageToken = strconv.Itoa(offset + len(invoices))
	}
	return resp, nil
}

// Send hands the invoice message and PDF to the messaging port and marks
// the invoice sent on success.
func (s *Service) Send(ctx context.Context, invoiceID string) (invoicedomain.SendReceipt, error) {
	invoice, err := s.GetByID(ctx, invoiceID)
	if err != nil {
		return invoicedomain.SendReceipt{}, err
	}

	customer, err := s.customers.GetByID(ctx, invoice.CustomerID.String())
	if err != nil {
		return invoicedomain.SendReceipt{}, err
	}
	if strings.TrimSpace(customer.PhoneNumber) == "" {
		return invoicedomain.SendReceipt{}, invoicedomain.ErrMissingPhoneNumber
	}

	result, err := s.sender.SendBill(ctx, notifydomain.SendBillRequest{
		To:           customer.PhoneNumber,
		Message:      invoice.MessageText,
		MediaDataURI: "data:application/pdf;base64," + base64.StdEncoding.EncodeToString(invoice.Document),
	})
	if err != nil {
		return invoicedomain.SendReceipt{}, err
	}

	receipt := invoicedomain.SendReceipt{
		InvoiceID: invoice.ID.String(),
		Success:   result.Success,
		MessageID: result.MessageID,
	}
	if !result.Success {
		return receipt, nil
	}

	now := s.clk.Now().UTC()
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&invoicedomain.Invoice{}).
			Where("id = ?", invoice.ID).
			Updates(map[string]any{
				"status":     invoicedomain.InvoiceStatusSent,
				"sent_at":    now,
				"updated_at": now,
			}).Error; err != nil {
			return err
		}
		return s.outbox.PublishTx(ctx, tx, events.Event{
			CustomerID: invoice.CustomerID,
			Type:       events.EventBillSent,
			Payload: events.InvoicePayload{
				InvoiceID:   invoice.ID.String(),
				CustomerID:  invoice.CustomerID.String(),
				PeriodStart: invoice.PeriodStart.Format(mealdomain.DateKey),
				PeriodEnd:   invoice.PeriodEnd.Format(mealdomain.DateKey),
				TotalPaise:  invoice.TotalPaise,
				MessageID:   result.MessageID,
			}.ToMap(),
			DedupeKey: events.EventBillSent + ":" + invoice.Number + ":" + result.MessageID,
		})
	})
	if err != nil {
		return invoicedomain.SendReceipt{}, err
	}

	s.log.Info("bill sent",
		zap.String("invoice_id", invoice.ID.String()),
		zap.String("to", logger.MaskPhone(customer.PhoneNumber)),
		zap.String("message_id", result.MessageID),
	)
	return receipt, nil
}

func parseID(value string) (snowflake.ID, error) {
	return snowflake.ParseString(strings.TrimSpace(value))
}

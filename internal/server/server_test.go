package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	billservice "github.com/tiffintrack/tiffintrack/internal/bill/service"
	cycleservice "github.com/tiffintrack/tiffintrack/internal/billingcycle/service"
	"github.com/tiffintrack/tiffintrack/internal/clock"
	"github.com/tiffintrack/tiffintrack/internal/config"
	customerdomain "github.com/tiffintrack/tiffintrack/internal/customer/domain"
	"github.com/tiffintrack/tiffintrack/internal/invoice/render"
	mealdomain "github.com/tiffintrack/tiffintrack/internal/meal/domain"
	"go.uber.org/zap"
)

type fakeCustomers struct {
	customer customerdomain.Customer
}

func (f *fakeCustomers) GetByID(_ context.Context, id string) (customerdomain.Customer, error) {
	if id != f.customer.ID.String() {
		return customerdomain.Customer{}, customerdomain.ErrCustomerNotFound
	}
	return f.customer, nil
}

func (f *fakeCustomers) List(context.Context) ([]customerdomain.Customer, error) {
	return []customerdomain.Customer{f.customer}, nil
}

func (f *fakeCustomers) UpdateBillingStartDay(_ context.Context, _ string, day int) (customerdomain.Customer, error) {
	f.customer.BillingStartDay = day
	return f.customer, nil
}

type fakeMealLogs struct {
	entries map[string]mealdomain.DayRecord
}

func (f *fakeMealLogs) Upsert(_ context.Context, _ snowflake.ID, date string, record mealdomain.DayRecord) error {
	f.entries[date] = record
	return nil
}

func (f *fakeMealLogs) Range(_ context.Context, _ snowflake.ID, from, to string) (mealdomain.Log, error) {
	log := mealdomain.Log{}
	for date, record := range f.entries {
		if date >= from && date <= to {
			log[date] = record
		}
	}
	return log, nil
}

func newTestServer(t *testing.T, now time.Time) (*Server, *fakeMealLogs) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	clk := clock.Fixed(now)
	prices := mealdomain.PricesFromConfig(config.DefaultPrices())
	mealLogs := &fakeMealLogs{entries: map[string]mealdomain.DayRecord{}}
	customers := &fakeCustomers{customer: customerdomain.Customer{
		ID:              snowflake.ID(42),
		Name:            "User 1",
		BillingStartDay: 21,
	}}

	srv := NewServer(ServerParam{
		Config: config.Config{},
		Log:    zap.NewNop(),
		Engine: gin.New(),
		Clock:  clk,

		Customers:  customers,
		MealLogs:   mealLogs,
		Resolver:   cycleservice.NewService(cycleservice.ServiceParam{Log: zap.NewNop()}),
		Aggregator: billservice.NewService(billservice.ServiceParam{Log: zap.NewNop(), Clock: clk, Prices: prices}),
		Renderer:   render.NewRenderer(),
		Prices:     prices,
	})
	srv.RegisterAPIRoutes()
	return srv, mealLogs
}

func doRequest(srv *Server, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	srv.engine.ServeHTTP(rec, req)
	return rec
}

func TestGetBill(t *testing.T) {
	now := time.Date(2024, time.January, 15, 12, 0, 0, 0, time.UTC)
	srv, mealLogs := newTestServer(t, now)

	mealLogs.entries["2023-12-25"] = mealdomain.DayRecord{Lunch: 1}
	mealLogs.entries["2024-01-10"] = mealdomain.DayRecord{Dinner: 2}

	rec := doRequest(srv, http.MethodGet, "/api/customers/42/bill", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var payload struct {
		Data billResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.Data.TotalPaise != 17000 {
		t.Fatalf("total_paise = %d, want 17000", payload.Data.TotalPaise)
	}
	if payload.Data.Counts.Lunch != 1 || payload.Data.Counts.Dinner != 2 {
		t.Fatalf("unexpected counts %+v", payload.Data.Counts)
	}
}

func TestGetBillUnknownCustomer(t *testing.T) {
	now := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	srv, _ := newTestServer(t, now)

	rec := doRequest(srv, http.MethodGet, "/api/customers/99/bill", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestGetBillRejectsBadCyclesBack(t *testing.T) {
	now := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	srv, _ := newTestServer(t, now)

	rec := doRequest(srv, http.MethodGet, "/api/customers/42/bill?cycles_back=-1", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestMealUpsertInvalidatesBillCache(t *testing.T) {
	now := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	srv, _ := newTestServer(t, now)

	rec := doRequest(srv, http.MethodGet, "/api/customers/42/bill", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("first bill status = %d", rec.Code)
	}

	rec = doRequest(srv, http.MethodPut, "/api/customers/42/meals/2024-01-10", `{"lunch":1}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("upsert status = %d, body = %s", rec.Code, rec.Body.String())
	}

	rec = doRequest(srv, http.MethodGet, "/api/customers/42/bill", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("second bill status = %d", rec.Code)
	}
	var payload struct {
		Data billResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if payload.Data.TotalPaise != 5000 {
		t.Fatalf("total_paise = %d, want 5000 after upsert", payload.Data.TotalPaise)
	}
}

func TestGetBillHTML(t *testing.T) {
	now := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	srv, mealLogs := newTestServer(t, now)
	mealLogs.entries["2024-01-10"] = mealdomain.DayRecord{Breakfast: 1}

	rec := doRequest(srv, http.MethodGet, "/api/customers/42/bill?format=html", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("content type = %q", ct)
	}
	if !strings.Contains(rec.Body.String(), "User 1") {
		t.Fatalf("expected customer name in HTML body")
	}
}

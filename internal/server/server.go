package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	billdomain "github.com/tiffintrack/tiffintrack/internal/bill/domain"
	cycledomain "github.com/tiffintrack/tiffintrack/internal/billingcycle/domain"
	dashboarddomain "github.com/tiffintrack/tiffintrack/internal/billingdashboard/domain"
	"github.com/tiffintrack/tiffintrack/internal/cache"
	"github.com/tiffintrack/tiffintrack/internal/clock"
	"github.com/tiffintrack/tiffintrack/internal/config"
	customerdomain "github.com/tiffintrack/tiffintrack/internal/customer/domain"
	invoicedomain "github.com/tiffintrack/tiffintrack/internal/invoice/domain"
	"github.com/tiffintrack/tiffintrack/internal/invoice/render"
	mealdomain "github.com/tiffintrack/tiffintrack/internal/meal/domain"
	meallogdomain "github.com/tiffintrack/tiffintrack/internal/meallog/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Module wires the HTTP surface.
var Module = fx.Module("server",
	fx.Provide(NewEngine),
	fx.Provide(NewServer),
	fx.Invoke(func(s *Server) { s.RegisterAPIRoutes() }),
	fx.Invoke(RunHTTP),
)

const billCacheTTL = 30 * time.Second

// Server holds the handler dependencies.
type Server struct {
	cfg    config.Config
	log    *zap.Logger
	engine *gin.Engine
	clk    clock.Clock

	customers  customerdomain.Service
	mealLogs   meallogdomain.Service
	invoices   invoicedomain.Service
	dashboard  dashboarddomain.Service
	resolver   cycledomain.Resolver
	aggregator billdomain.Aggregator
	renderer   render.Renderer
	prices     mealdomain.PriceTable

	billCache *cache.TTLCache[string, billResponse]
}

type ServerParam struct {
	fx.In

	Config config.Config
	Log    *zap.Logger
	Engine *gin.Engine
	Clock  clock.Clock

	Customers  customerdomain.Service
	MealLogs   meallogdomain.Service
	Invoices   invoicedomain.Service
	Dashboard  dashboarddomain.Service
	Resolver   cycledomain.Resolver
	Aggregator billdomain.Aggregator
	Renderer   render.Renderer
	Prices     mealdomain.PriceTable
}

func NewServer(p ServerParam) *Server {
	return &Server{
		cfg:    p.Config,
		log:    p.Log.Named("server"),
		engine: p.Engine,
		clk:    p.Clock,

		customers:  p.Customers,
		mealLogs:   p.MealLogs,
		invoices:   p.Invoices,
		dashboard:  p.Dashboard,
		resolver:   p.Resolver,
		aggregator: p.Aggregator,
		renderer:   p.Renderer,
		prices:     p.Prices,

		billCache: cache.NewTTLCache[string, billResponse](),
	}
}

// NewEngine builds the gin engine with recovery and request logging.
func NewEngine(cfg config.Config, log *zap.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(requestLogger(log.Named("http")))
	return engine
}

func requestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

// RegisterAPIRoutes mounts all API endpoints.
func (s *Server) RegisterAPIRoutes() {
	api := s.engine.Group("/api")

	customers := api.Group("/customers")
	customers.GET("", s.ListCustomers)
	customers.GET("/:id", s.GetCustomer)
	customers.PUT("/:id/billing-start-day", s.UpdateBillingStartDay)
	customers.PUT("/:id/meals/:date", s.UpsertMealEntry)
	customers.GET("/:id/meals", s.ListMealEntries)
	customers.GET("/:id/bill", s.GetBill)
	customers.GET("/:id/cycles", s.GetPreviousCycles)
	customers.POST("/:id/invoices", s.GenerateInvoice)
	customers.GET("/:id/invoices", s.ListInvoices)

	invoices := api.Group("/invoices")
	invoices.GET("/:id", s.GetInvoice)
	invoices.GET("/:id/pdf", s.DownloadInvoicePDF)
	invoices.POST("/:id/send", s.SendInvoice)

	dashboard := api.Group("/dashboard")
	dashboard.GET("/bills", s.ListCustomerBills)
	dashboard.GET("/activity", s.ListBillingActivity)
}

// RunHTTP starts the listener under the fx lifecycle.
func RunHTTP(lc fx.Lifecycle, cfg config.Config, log *zap.Logger, engine *gin.Engine) {
	srv := &http.Server{
		Addr:    cfg.HTTP.Addr,
		Handler: engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Error("http server stopped", zap.Error(err))
				}
			}()
			log.Info("http server listening", zap.String("addr", cfg.HTTP.Addr))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})
}

package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/tiffintrack/tiffintrack/internal/bill"
	"github.com/tiffintrack/tiffintrack/internal/billingcycle"
	"github.com/tiffintrack/tiffintrack/internal/billingdashboard"
	"github.com/tiffintrack/tiffintrack/internal/clock"
	"github.com/tiffintrack/tiffintrack/internal/config"
	"github.com/tiffintrack/tiffintrack/internal/customer"
	customerdomain "github.com/tiffintrack/tiffintrack/internal/customer/domain"
	"github.com/tiffintrack/tiffintrack/internal/events"
	"github.com/tiffintrack/tiffintrack/internal/invoice"
	invoicedomain "github.com/tiffintrack/tiffintrack/internal/invoice/domain"
	"github.com/tiffintrack/tiffintrack/internal/meallog"
	meallogdomain "github.com/tiffintrack/tiffintrack/internal/meallog/domain"
	"github.com/tiffintrack/tiffintrack/internal/notify"
	"github.com/tiffintrack/tiffintrack/internal/observability/logger"
	"github.com/tiffintrack/tiffintrack/internal/seed"
	"github.com/tiffintrack/tiffintrack/internal/server"
	"github.com/tiffintrack/tiffintrack/pkg/db"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var version = "dev"

func main() {
	app := fx.New(
		config.Module,
		logger.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		clock.Module,

		fx.Invoke(func(conn *gorm.DB, cfg config.Config, genID *snowflake.Node) error {
			if err := conn.AutoMigrate(
				&customerdomain.Customer{},
				&meallogdomain.Entry{},
				&invoicedomain.Invoice{},
				&events.BillingEvent{},
			); err != nil {
				return err
			}
			return seed.EnsureDefaultCustomers(conn, genID, cfg.Billing.DefaultStartDay)
		}),

		billingcycle.Module,
		bill.Module,
		meallog.Module,
		customer.Module,
		notify.Module,
		invoice.Module,
		billingdashboard.Module,
		server.Module,
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}

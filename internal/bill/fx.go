package bill

import (
	"github.com/tiffintrack/tiffintrack/internal/bill/service"
	"github.com/tiffintrack/tiffintrack/internal/config"
	mealdomain "github.com/tiffintrack/tiffintrack/internal/meal/domain"
	"go.uber.org/fx"
)

var Module = fx.Module("bill.service",
	fx.Provide(func(cfg config.Config) mealdomain.PriceTable {
		return mealdomain.PricesFromConfig(cfg.Prices)
	}),
	fx.Provide(service.NewService),
)

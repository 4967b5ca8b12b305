package customer

import (
	"github.com/tiffintrack/tiffintrack/internal/customer/service"
	"go.uber.org/fx"
)

var Module = fx.Module("customer.service",
	fx.Provide(service.NewService),
)

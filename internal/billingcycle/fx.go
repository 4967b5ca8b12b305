package billingcycle

import (
	"github.com/tiffintrack/tiffintrack/internal/billingcycle/service"
	"go.uber.org/fx"
)

var Module = fx.Module("billingcycle.service",
	fx.Provide(service.NewService),
)

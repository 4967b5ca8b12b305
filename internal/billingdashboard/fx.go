package billingdashboard

import (
	"github.com/tiffintrack/tiffintrack/internal/billingdashboard/service"
	"go.uber.org/fx"
)

var Module = fx.Module("billingdashboard.service",
	fx.Provide(service.NewService),
)

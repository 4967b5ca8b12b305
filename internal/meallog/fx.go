package meallog

import (
	"github.com/tiffintrack/tiffintrack/internal/meallog/service"
	"go.uber.org/fx"
)

var Module = fx.Module("meallog.service",
	fx.Provide(service.NewService),
)

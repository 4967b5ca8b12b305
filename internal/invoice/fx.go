package invoice

import (
	"github.com/tiffintrack/tiffintrack/internal/events"
	"github.com/tiffintrack/tiffintrack/internal/invoice/render"
	"github.com/tiffintrack/tiffintrack/internal/invoice/service"
	"go.uber.org/fx"
)

var Module = fx.Module("invoice.service",
	fx.Provide(render.NewRenderer),
	fx.Provide(events.NewOutbox),
	fx.Provide(service.NewService),
)

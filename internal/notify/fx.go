package notify

import (
	"github.com/tiffintrack/tiffintrack/internal/config"
	amqpnotify "github.com/tiffintrack/tiffintrack/internal/notify/amqp"
	notifydomain "github.com/tiffintrack/tiffintrack/internal/notify/domain"
	"github.com/tiffintrack/tiffintrack/internal/notify/nop"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("notify",
	fx.Provide(NewSender),
)

// NewSender picks the AMQP publisher when a broker is configured and the
// logging no-op sender otherwise.
func NewSender(lc fx.Lifecycle, cfg config.Config, log *zap.Logger) (notifydomain.Sender, error) {
	if cfg.Messaging.AMQPURL == "" {
		return nop.NewSender(log), nil
	}
	return amqpnotify.NewPublisher(amqpnotify.PublisherParam{
		Lifecycle: lc,
		Log:       log,
		Config:    cfg,
	})
}

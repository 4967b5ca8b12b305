package nop

import (
	"context"
	"fmt"
	"strings"
	"time"

	notifydomain "github.com/tiffintrack/tiffintrack/internal/notify/domain"
	"github.com/tiffintrack/tiffintrack/internal/observability/logger"
	"go.uber.org/zap"
)

// Sender logs the send instead of publishing. Used when no broker is
// configured, so invoice generation keeps working in development.
type Sender struct {
	log *zap.Logger
}

func NewSender(log *zap.Logger) notifydomain.Sender {
	return &Sender{log: log.Named("notify.nop")}
}

func (s *Sender) SendBill(_ context.Context, req notifydomain.SendBillRequest) (notifydomain.SendResult, error) {
	if strings.TrimSpace(req.To) == "" {
		return notifydomain.SendResult{}, notifydomain.ErrMissingRecipient
	}
	s.log.Info("messaging disabled, bill not delivered",
		zap.String("to", logger.MaskPhone(req.To)),
	)
	return notifydomain.SendResult{
		Success:   true,
		MessageID: fmt.Sprintf("nop-%d", time.Now().UnixNano()),
	}, nil
}

package amqp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	amqp091 "github.com/rabbitmq/amqp091-go"
	"github.com/tiffintrack/tiffintrack/internal/config"
	notifydomain "github.com/tiffintrack/tiffintrack/internal/notify/domain"
	"github.com/tiffintrack/tiffintrack/internal/observability/logger"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Publisher hands bill messages to the whatsapp bridge queue.
type Publisher struct {
	log   *zap.Logger
	cfg   config.MessagingConfig
	conn  *amqp091.Connection
	ch    *amqp091.Channel
	genID func() string
}

type PublisherParam struct {
	Lifecycle fx.Lifecycle
	Log       *zap.Logger
	Config    config.Config
}

// NewPublisher dials the broker and declares the outbound queue. The
// channel is closed on shutdown via the fx lifecycle.
func NewPublisher(p PublisherParam) (notifydomain.Sender, error) {
	conn, err := amqp091.Dial(p.Config.Messaging.AMQPURL)
	if err != nil {
		return nil, fmt.Errorf("dial amqp: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if _, err := ch.QueueDeclare(p.Config.Messaging.Queue, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("declare queue: %w", err)
	}
	if p.Config.Messaging.Exchange != "" {
		if err := ch.ExchangeDeclare(p.Config.Messaging.Exchange, "direct", true, false, false, false, nil); err != nil {
			ch.Close()
			conn.Close()
			return nil, fmt.Errorf("declare exchange: %w", err)
		}
		if err := ch.QueueBind(p.Config.Messaging.Queue, p.Config.Messaging.Queue, p.Config.Messaging.Exchange, false, nil); err != nil {
			ch.Close()
			conn.Close()
			return nil, fmt.Errorf("bind queue: %w", err)
		}
	}

	pub := &Publisher{
		log:  p.Log.Named("notify.amqp"),
		cfg:  p.Config.Messaging,
		conn: conn,
		ch:   ch,
		genID: func() string {
			return fmt.Sprintf("msg-%d", time.Now().UnixNano())
		},
	}

	p.Lifecycle.Append(fx.Hook{
		OnStop: func(context.Context) error {
			pub.ch.Close()
			return pub.conn.Close()
		},
	})

	return pub, nil
}

func (p *Publisher) SendBill(ctx context.Context, req notifydomain.SendBillRequest) (notifydomain.SendResult, error) {
	if strings.TrimSpace(req.To) == "" {
		return notifydomain.SendResult{}, notifydomain.ErrMissingRecipient
	}

	body, err := json.Marshal(req)
	if err != nil {
		return notifydomain.SendResult{}, err
	}

	messageID := p.genID()
	err = p.ch.PublishWithContext(ctx, p.cfg.Exchange, p.cfg.Queue, false, false, amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		MessageId:    messageID,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
	if err != nil {
		return notifydomain.SendResult{}, fmt.Errorf("%w: %v", notifydomain.ErrPublishFailed, err)
	}

	p.log.Info("bill queued for delivery",
		zap.String("to", logger.MaskPhone(req.To)),
		zap.String("message_id", messageID),
	)
	return notifydomain.SendResult{Success: true, MessageID: messageID}, nil
}

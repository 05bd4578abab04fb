package mailer

import (
	"context"
	"lifeledger-service/internal/app/contracts"
	"lifeledger-service/internal/pkg/constvars"
	"lifeledger-service/internal/pkg/dto/requests"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Consumer drains the mailer queue and delivers each payload through SMTP.
// Failed messages are dropped, matching the requeue strategy header set on publish.
type Consumer struct {
	channel *amqp091.Channel
	queue   string
	sender  contracts.EmailSender
	log     *zap.Logger
}

func NewConsumer(conn *amqp091.Connection, queue string, sender contracts.EmailSender, logger *zap.Logger, prefetch int) (*Consumer, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		ch.Close()
		return nil, err
	}

	if prefetch <= 0 {
		prefetch = 1
	}
	if err := ch.Qos(prefetch, 0, false); err != nil {
		ch.Close()
		return nil, err
	}

	return &Consumer{
		channel: ch,
		queue:   queue,
		sender:  sender,
		log:     logger,
	}, nil
}

// Run blocks until ctx is cancelled or the delivery channel closes.
func (c *Consumer) Run(ctx context.Context) error {
	deliveries, err := c.channel.ConsumeWithContext(ctx, c.queue, "", false, false, false, false, nil)
	if err != nil {
		return err
	}
	defer c.channel.Close()

	c.log.Info("mailer consumer started", zap.String(constvars.LoggingQueueKey, c.queue))
	for {
		select {
		case <-ctx.Done():
			return nil
		case delivery, ok := <-deliveries:
			if !ok {
				return nil
			}
			c.handle(ctx, delivery)
		}
	}
}

func (c *Consumer) handle(ctx context.Context, delivery amqp091.Delivery) {
	var payload requests.EmailPayload
	if err := json.Unmarshal(delivery.Body, &payload); err != nil {
		c.log.Error("mailer consumer dropping malformed message",
			zap.Uint64(constvars.LoggingDeliveryTagKey, delivery.DeliveryTag),
			zap.Error(err),
		)
		_ = delivery.Nack(false, false)
		return
	}

	if err := c.sender.SendHTMLEmail(ctx, &payload); err != nil {
		c.log.Error("mailer consumer failed to deliver email",
			zap.Uint64(constvars.LoggingDeliveryTagKey, delivery.DeliveryTag),
			zap.Strings(constvars.LoggingRecipientKey, payload.To),
			zap.Error(err),
		)
		_ = delivery.Nack(false, false)
		return
	}

	_ = delivery.Ack(false)
}

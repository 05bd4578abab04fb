package mailer

import (
	"context"
	"lifeledger-service/internal/app/contracts"
	"lifeledger-service/internal/pkg/constvars"
	"lifeledger-service/internal/pkg/dto/requests"
	"lifeledger-service/internal/pkg/exceptions"
	"lifeledger-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type amqpPublisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

type rabbitMQPublisher struct {
	Channel amqpPublisher
	Queue   string
	Log     *zap.Logger
}

// NewRabbitMQPublisher hands emails to the mailer queue; a Consumer delivers them.
func NewRabbitMQPublisher(rabbitMQConnection *amqp091.Connection, queue string, logger *zap.Logger) (contracts.EmailSender, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}

	return &rabbitMQPublisher{
		Channel: channel,
		Queue:   queue,
		Log:     logger,
	}, nil
}

func (p *rabbitMQPublisher) Driver() string {
	return constvars.MailerDriverRabbitMQ
}

func (p *rabbitMQPublisher) SendHTMLEmail(ctx context.Context, payload *requests.EmailPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	headers := amqp091.Table{
		constvars.MailerMessageTypeHeader:     constvars.MailerMessageTypeJSON,
		constvars.MailerRequeueStrategyHeader: constvars.MailerRequeueStrategyDrop,
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		Priority:     0,
		Headers:      headers,
	}

	err = p.Channel.PublishWithContext(ctx, "", p.Queue, false, false, message)
	if err != nil {
		p.Log.Error("rabbitMQPublisher.SendHTMLEmail error publishing message",
			zap.String(constvars.LoggingRequestIDKey, requestIDOf(ctx)),
			zap.String(constvars.LoggingQueueKey, p.Queue),
			zap.Error(err),
		)
		return exceptions.ErrRabbitMQPublishMessage(err, p.Queue)
	}
	return nil
}

func requestIDOf(ctx context.Context) string {
	return utils.GetRequestID(ctx)
}

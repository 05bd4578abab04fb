package mailer

import (
	"context"
	"encoding/base64"
	"errors"
	"lifeledger-service/internal/app/drivers/mailer"
	"lifeledger-service/internal/pkg/constvars"
	"lifeledger-service/internal/pkg/dto/requests"
	"lifeledger-service/internal/pkg/exceptions"
	"net/smtp"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testPayload() *requests.EmailPayload {
	return &requests.EmailPayload{
		Subject:  constvars.EmailDonorSubject,
		From:     `"LifeLedger Platform" <noreply@lifeledger.test>`,
		To:       []string{"jane@example.com"},
		HTMLCode: "<h1>Hi</h1>",
	}
}

func TestSMTPSender(t *testing.T) {
	client := &mailer.SMTPClient{Host: "smtp.test", Port: 587, Username: "noreply@lifeledger.test"}

	t.Run("Builds HTML Message", func(t *testing.T) {
		var gotAddr, gotFrom string
		var gotTo []string
		var gotMsg []byte
		sender := &smtpSender{Client: client, Log: zap.NewNop(), sendMail: func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
			gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, msg
			return nil
		}}

		payload := testPayload()
		payload.Bcc = []string{"audit@lifeledger.test"}
		err := sender.SendHTMLEmail(context.Background(), payload)

		require.NoError(t, err)
		assert.Equal(t, "smtp.test:587", gotAddr)
		assert.Equal(t, "noreply@lifeledger.test", gotFrom)
		assert.Equal(t, []string{"jane@example.com", "audit@lifeledger.test"}, gotTo)
		assert.Contains(t, string(gotMsg), "Subject: "+constvars.EmailDonorSubject)
		assert.Contains(t, string(gotMsg), "Content-Type: text/html")
		assert.NotContains(t, string(gotMsg), "audit@lifeledger.test")
		assert.Equal(t, constvars.MailerDriverSMTP, sender.Driver())
	})

	t.Run("Decodes Encoded Body", func(t *testing.T) {
		var gotMsg []byte
		sender := &smtpSender{Client: client, Log: zap.NewNop(), sendMail: func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
			gotMsg = msg
			return nil
		}}
		payload := testPayload()
		payload.HTMLCode = base64.StdEncoding.EncodeToString([]byte("<p>encoded</p>"))
		payload.Encoded = true

		require.NoError(t, sender.SendHTMLEmail(context.Background(), payload))
		assert.Contains(t, string(gotMsg), "<p>encoded</p>")
	})

	t.Run("Send Failure Keeps Message", func(t *testing.T) {
		sender := &smtpSender{Client: client, Log: zap.NewNop(), sendMail: func(string, smtp.Auth, string, []string, []byte) error {
			return errors.New("535 Authentication failed")
		}}

		err := sender.SendHTMLEmail(context.Background(), testPayload())

		assert.True(t, exceptions.IsKind(err, exceptions.KindNotification))
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, "535 Authentication failed", customErr.ClientMessage)
	})
}

type MockChannel struct {
	mock.Mock
}

func (m *MockChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error {
	return m.Called(ctx, exchange, key, mandatory, immediate, msg).Error(0)
}

func TestRabbitMQPublisher(t *testing.T) {
	ctx := context.Background()

	t.Run("Publishes Persistent JSON", func(t *testing.T) {
		channel := new(MockChannel)
		channel.On("PublishWithContext", ctx, "", "lifeledger.mailer", false, false, mock.MatchedBy(func(msg amqp091.Publishing) bool {
			var decoded requests.EmailPayload
			if err := json.Unmarshal(msg.Body, &decoded); err != nil {
				return false
			}
			return msg.DeliveryMode == amqp091.Persistent &&
				msg.Headers[constvars.MailerRequeueStrategyHeader] == constvars.MailerRequeueStrategyDrop &&
				decoded.Subject == constvars.EmailDonorSubject
		})).Return(nil)
		publisher := &rabbitMQPublisher{Channel: channel, Queue: "lifeledger.mailer", Log: zap.NewNop()}

		require.NoError(t, publisher.SendHTMLEmail(ctx, testPayload()))
		channel.AssertExpectations(t)
		assert.Equal(t, constvars.MailerDriverRabbitMQ, publisher.Driver())
	})

	t.Run("Publish Failure", func(t *testing.T) {
		channel := new(MockChannel)
		channel.On("PublishWithContext", ctx, "", "lifeledger.mailer", false, false, mock.Anything).Return(amqp091.ErrClosed)
		publisher := &rabbitMQPublisher{Channel: channel, Queue: "lifeledger.mailer", Log: zap.NewNop()}

		err := publisher.SendHTMLEmail(ctx, testPayload())

		assert.True(t, exceptions.IsKind(err, exceptions.KindNotification))
	})
}

type fakeAcknowledger struct {
	acked, nacked, requeued bool
}

func (f *fakeAcknowledger) Ack(tag uint64, multiple bool) error {
	f.acked = true
	return nil
}

func (f *fakeAcknowledger) Nack(tag uint64, multiple, requeue bool) error {
	f.nacked = true
	f.requeued = requeue
	return nil
}

func (f *fakeAcknowledger) Reject(tag uint64, requeue bool) error {
	return f.Nack(tag, false, requeue)
}

type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendHTMLEmail(ctx context.Context, payload *requests.EmailPayload) error {
	return m.Called(ctx, payload).Error(0)
}

func (m *MockEmailSender) Driver() string { return constvars.MailerDriverSMTP }

func TestConsumerHandle(t *testing.T) {
	ctx := context.Background()
	body, err := json.Marshal(testPayload())
	require.NoError(t, err)

	t.Run("Delivered Message Is Acked", func(t *testing.T) {
		sender := new(MockEmailSender)
		sender.On("SendHTMLEmail", ctx, mock.MatchedBy(func(p *requests.EmailPayload) bool {
			return p.To[0] == "jane@example.com"
		})).Return(nil)
		ack := &fakeAcknowledger{}
		consumer := &Consumer{sender: sender, log: zap.NewNop()}

		consumer.handle(ctx, amqp091.Delivery{Acknowledger: ack, Body: body, DeliveryTag: 1})

		assert.True(t, ack.acked)
		assert.False(t, ack.nacked)
	})

	t.Run("Failed Delivery Is Dropped", func(t *testing.T) {
		sender := new(MockEmailSender)
		sender.On("SendHTMLEmail", ctx, mock.Anything).Return(errors.New("smtp down"))
		ack := &fakeAcknowledger{}
		consumer := &Consumer{sender: sender, log: zap.NewNop()}

		consumer.handle(ctx, amqp091.Delivery{Acknowledger: ack, Body: body, DeliveryTag: 2})

		assert.True(t, ack.nacked)
		assert.False(t, ack.requeued)
	})

	t.Run("Malformed Body Never Reaches SMTP", func(t *testing.T) {
		sender := new(MockEmailSender)
		ack := &fakeAcknowledger{}
		consumer := &Consumer{sender: sender, log: zap.NewNop()}

		consumer.handle(ctx, amqp091.Delivery{Acknowledger: ack, Body: []byte("{"), DeliveryTag: 3})

		assert.True(t, ack.nacked)
		sender.AssertNotCalled(t, "SendHTMLEmail", mock.Anything, mock.Anything)
	})
}

package mailer

import (
	"context"
	"encoding/base64"
	"fmt"
	"lifeledger-service/internal/app/contracts"
	"lifeledger-service/internal/app/drivers/mailer"
	"lifeledger-service/internal/pkg/constvars"
	"lifeledger-service/internal/pkg/dto/requests"
	"lifeledger-service/internal/pkg/exceptions"
	"net/smtp"
	"strings"

	"go.uber.org/zap"
)

type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

type smtpSender struct {
	Client   *mailer.SMTPClient
	Log      *zap.Logger
	sendMail sendMailFunc
}

func NewSMTPSender(client *mailer.SMTPClient, logger *zap.Logger) contracts.EmailSender {
	return &smtpSender{
		Client:   client,
		Log:      logger,
		sendMail: smtp.SendMail,
	}
}

func (s *smtpSender) Driver() string {
	return constvars.MailerDriverSMTP
}

func (s *smtpSender) SendHTMLEmail(ctx context.Context, payload *requests.EmailPayload) error {
	htmlBody := payload.HTMLCode
	if payload.Encoded {
		decoded, err := base64.StdEncoding.DecodeString(payload.HTMLCode)
		if err != nil {
			return exceptions.ErrRenderEmailTemplate(err, payload.Subject)
		}
		htmlBody = string(decoded)
	}

	recipients := make([]string, 0, len(payload.To)+len(payload.Cc)+len(payload.Bcc))
	recipients = append(recipients, payload.To...)
	recipients = append(recipients, payload.Cc...)
	recipients = append(recipients, payload.Bcc...)

	msg := []byte(fmt.Sprintf(constvars.EmailSendHTMLSubjectFormat, payload.From, strings.Join(payload.To, ", "), payload.Subject, htmlBody))
	addr := fmt.Sprintf("%s:%d", s.Client.Host, s.Client.Port)

	err := s.sendMail(addr, s.Client.Auth, s.Client.Username, recipients, msg)
	if err != nil {
		s.Log.Error("smtpSender.SendHTMLEmail error sending email",
			zap.String(constvars.LoggingRequestIDKey, requestIDOf(ctx)),
			zap.String(constvars.LoggingSMTPHostKey, s.Client.Host),
			zap.Strings(constvars.LoggingRecipientKey, payload.To),
			zap.Error(err),
		)
		return exceptions.ErrSMTPSendEmail(err, s.Client.Host)
	}

	s.Log.Info("smtpSender.SendHTMLEmail succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestIDOf(ctx)),
		zap.Strings(constvars.LoggingRecipientKey, payload.To),
	)
	return nil
}

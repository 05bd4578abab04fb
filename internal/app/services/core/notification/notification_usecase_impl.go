package notification

import (
	"context"
	"fmt"
	"lifeledger-service/internal/app/config"
	"lifeledger-service/internal/app/contracts"
	"lifeledger-service/internal/app/models"
	"lifeledger-service/internal/pkg/constvars"
	"lifeledger-service/internal/pkg/dto/requests"
	"lifeledger-service/internal/pkg/exceptions"
	"lifeledger-service/internal/pkg/metrics"
	"lifeledger-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type notificationUsecase struct {
	Log            *zap.Logger
	Sender         contracts.EmailSender
	DeliveryLog    contracts.DeliveryLogRepository
	Quota          contracts.RecipientQuota
	Metrics        *metrics.Metrics
	InternalConfig *config.InternalConfig
	DriverConfig   *config.DriverConfig

	now func() time.Time
}

func NewNotificationUsecase(
	logger *zap.Logger,
	internalConfig *config.InternalConfig,
	driverConfig *config.DriverConfig,
	sender contracts.EmailSender,
	deliveryLog contracts.DeliveryLogRepository,
	quota contracts.RecipientQuota,
	m *metrics.Metrics,
) contracts.NotificationUsecase {
	if m == nil {
		m = metrics.NewNop()
	}
	return &notificationUsecase{
		Log:            logger,
		Sender:         sender,
		DeliveryLog:    deliveryLog,
		Quota:          quota,
		Metrics:        m,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
		now:            time.Now,
	}
}

func (uc *notificationUsecase) IsEmailConfigured() bool {
	return uc.DriverConfig.SMTP.Username != ""
}

// SendEmail checks for missing fields before the template lookup, so an empty type
// reports missing fields rather than an invalid type.
func (uc *notificationUsecase) SendEmail(ctx context.Context, request *requests.SendEmail) (string, error) {
	requestID := utils.GetRequestID(ctx)
	utils.SanitizeSendEmailRequest(request)

	if err := utils.ValidateStruct(request); err != nil {
		return "", exceptions.ErrMissingRequiredFields(err)
	}

	tmpl, ok := emailTemplates[request.Type]
	if !ok {
		return "", exceptions.ErrInvalidEmailType(request.Type)
	}

	if uc.Quota != nil {
		allowed, retryAfter, err := uc.Quota.Allow(ctx, request.Email)
		if err != nil {
			return "", err
		}
		if !allowed {
			uc.Log.Warn("notificationUsecase.SendEmail recipient quota exceeded",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingEmailTypeKey, request.Type),
				zap.Duration(constvars.LoggingRetryAfterKey, retryAfter),
			)
			return "", exceptions.ErrRecipientQuotaExceeded(request.Email, retryAfter)
		}
	}

	data := *request.Data
	if data.RegistrationDate == "" {
		data.RegistrationDate = utils.FormatRegistrationDate(uc.now(), uc.InternalConfig.App.Timezone)
	}

	htmlBody, err := tmpl.render(&data)
	if err != nil {
		return "", exceptions.ErrRenderEmailTemplate(err, request.Type)
	}

	payload := &requests.EmailPayload{
		Subject:  tmpl.subject,
		From:     fmt.Sprintf(constvars.EmailFromHeaderFormat, uc.InternalConfig.Mailer.SenderName, uc.senderAddress()),
		To:       []string{request.Email},
		HTMLCode: htmlBody,
	}

	err = uc.Sender.SendHTMLEmail(ctx, payload)
	status := uc.successStatus()
	if err != nil {
		status = constvars.DeliveryStatusFailed
	}
	uc.Metrics.RecordNotification(request.Type, status)
	uc.recordDelivery(ctx, request, status, err)

	if err != nil {
		uc.Log.Error("notificationUsecase.SendEmail failed to hand off email",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEmailTypeKey, request.Type),
			zap.String(constvars.LoggingMedicalIDKey, data.MedicalID),
			zap.Error(err),
		)
		return "", err
	}

	uc.Log.Info("notificationUsecase.SendEmail email handed off",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailTypeKey, request.Type),
		zap.String(constvars.LoggingMedicalIDKey, data.MedicalID),
	)
	if status == constvars.DeliveryStatusQueued {
		return constvars.EmailQueuedSuccessMessage, nil
	}
	return constvars.EmailSentSuccessMessage, nil
}

func (uc *notificationUsecase) senderAddress() string {
	if uc.InternalConfig.Mailer.EmailSender != "" {
		return uc.InternalConfig.Mailer.EmailSender
	}
	if uc.DriverConfig.SMTP.EmailSender != "" {
		return uc.DriverConfig.SMTP.EmailSender
	}
	return uc.DriverConfig.SMTP.Username
}

func (uc *notificationUsecase) successStatus() string {
	if uc.Sender.Driver() == constvars.MailerDriverRabbitMQ {
		return constvars.DeliveryStatusQueued
	}
	return constvars.DeliveryStatusSent
}

// recordDelivery never fails the request; the delivery log is an audit trail only.
func (uc *notificationUsecase) recordDelivery(ctx context.Context, request *requests.SendEmail, status string, sendErr error) {
	if uc.DeliveryLog == nil {
		return
	}
	record := &models.DeliveryRecord{
		RequestID: utils.GetRequestID(ctx),
		Email:     request.Email,
		Type:      request.Type,
		MedicalID: request.Data.MedicalID,
		Driver:    uc.Sender.Driver(),
		Status:    status,
		CreatedAt: uc.now().UTC(),
	}
	if sendErr != nil {
		record.Error = sendErr.Error()
	}
	if err := uc.DeliveryLog.Record(ctx, record); err != nil {
		uc.Log.Warn("notificationUsecase.SendEmail failed to record delivery",
			zap.String(constvars.LoggingRequestIDKey, record.RequestID),
			zap.String(constvars.LoggingCollectionKey, uc.InternalConfig.MongoDB.DeliveryLogCollection),
			zap.Error(err),
		)
	}
}

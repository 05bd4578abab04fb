package notification

import (
	"bytes"
	"context"
	"lifeledger-service/internal/app/contracts"
	"lifeledger-service/internal/pkg/constvars"
	"lifeledger-service/internal/pkg/dto/requests"
	"lifeledger-service/internal/pkg/dto/responses"
	"lifeledger-service/internal/pkg/exceptions"
	"lifeledger-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type inProcessNotifier struct {
	usecase contracts.NotificationUsecase
}

// NewInProcessNotifier delivers confirmations through the relay usecase of this process.
func NewInProcessNotifier(usecase contracts.NotificationUsecase) contracts.Notifier {
	return &inProcessNotifier{usecase: usecase}
}

func (n *inProcessNotifier) Notify(ctx context.Context, request *requests.SendEmail) error {
	_, err := n.usecase.SendEmail(ctx, request)
	return err
}

type httpNotifier struct {
	Log      *zap.Logger
	RelayURL string
	client   *http.Client
}

// NewHTTPNotifier posts confirmations to a running relay's /api/send-email.
func NewHTTPNotifier(logger *zap.Logger, relayURL string, timeout time.Duration) contracts.Notifier {
	return &httpNotifier{
		Log:      logger,
		RelayURL: relayURL,
		client:   &http.Client{Timeout: timeout},
	}
}

func (n *httpNotifier) Notify(ctx context.Context, request *requests.SendEmail) error {
	body, err := json.Marshal(request)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.RelayURL, bytes.NewReader(body))
	if err != nil {
		return exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	if requestID := utils.GetRequestID(ctx); requestID != "" {
		req.Header.Set(constvars.HeaderXRequestID, requestID)
	}

	resp, err := n.client.Do(req)
	if err != nil {
		return exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	var relayResponse responses.RelayResponse
	if err := json.NewDecoder(resp.Body).Decode(&relayResponse); err != nil {
		return exceptions.ErrNotificationDelivery(err)
	}
	if resp.StatusCode != http.StatusOK || !relayResponse.Success {
		return exceptions.ErrNotificationRejected(relayResponse.Error)
	}

	n.Log.Debug("httpNotifier.Notify relay accepted email",
		zap.String(constvars.LoggingEmailTypeKey, request.Type),
		zap.String(constvars.LoggingRecipientKey, request.Email),
	)
	return nil
}

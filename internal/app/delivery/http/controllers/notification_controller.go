package controllers

import (
	"context"
	"errors"
	"lifeledger-service/internal/app/contracts"
	"lifeledger-service/internal/pkg/constvars"
	"lifeledger-service/internal/pkg/dto/requests"
	"lifeledger-service/internal/pkg/exceptions"
	"lifeledger-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type NotificationController struct {
	Log                 *zap.Logger
	NotificationUsecase contracts.NotificationUsecase
	Timeout             time.Duration
}

func NewNotificationController(logger *zap.Logger, notificationUsecase contracts.NotificationUsecase, timeout time.Duration) *NotificationController {
	return &NotificationController{
		Log:                 logger,
		NotificationUsecase: notificationUsecase,
		Timeout:             timeout,
	}
}

// SendEmail answers in the relay envelope, {success, message} or {success, error}.
func (ctrl *NotificationController) SendEmail(w http.ResponseWriter, r *http.Request) {
	request := new(requests.SendEmail)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildRelayErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequiredFields(err))
		return
	}

	ctx, cancel := requestContext(r, ctrl.Timeout)
	defer cancel()

	message, err := ctrl.NotificationUsecase.SendEmail(ctx, request)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildRelayErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildRelayErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildRelayResponse(w, constvars.StatusOK, message)
}

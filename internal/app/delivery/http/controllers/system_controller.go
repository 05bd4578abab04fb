package controllers

import (
	"lifeledger-service/internal/app/config"
	"lifeledger-service/internal/app/contracts"
	"lifeledger-service/internal/app/models"
	"lifeledger-service/internal/pkg/constvars"
	"lifeledger-service/internal/pkg/dto/responses"
	"lifeledger-service/internal/pkg/exceptions"
	"lifeledger-service/internal/pkg/utils"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type SystemController struct {
	Log                 *zap.Logger
	InternalConfig      *config.InternalConfig
	NotificationUsecase contracts.NotificationUsecase
	RegistryUsecase     contracts.RegistryUsecase
	Contract            contracts.RegistryContract
	// AvailableRoutes is listed by the status and not-found responses.
	AvailableRoutes []string
	StartedAt       time.Time
	Timeout         time.Duration

	now func() time.Time
}

func NewSystemController(
	logger *zap.Logger,
	internalConfig *config.InternalConfig,
	notificationUsecase contracts.NotificationUsecase,
	registryUsecase contracts.RegistryUsecase,
	contract contracts.RegistryContract,
	availableRoutes []string,
	timeout time.Duration,
) *SystemController {
	return &SystemController{
		Log:                 logger,
		InternalConfig:      internalConfig,
		NotificationUsecase: notificationUsecase,
		RegistryUsecase:     registryUsecase,
		Contract:            contract,
		AvailableRoutes:     availableRoutes,
		StartedAt:           time.Now(),
		Timeout:             timeout,
		now:                 time.Now,
	}
}

func (ctrl *SystemController) Health(w http.ResponseWriter, r *http.Request) {
	emailStatus := constvars.HealthEmailUnconfigured
	if ctrl.NotificationUsecase.IsEmailConfigured() {
		emailStatus = constvars.HealthEmailConfigured
	}

	utils.WriteJSON(w, constvars.StatusOK, responses.Health{
		Status:     constvars.HealthStatusOK,
		Timestamp:  ctrl.now().UTC().Format(time.RFC3339),
		Version:    ctrl.InternalConfig.App.Version,
		Email:      emailStatus,
		Blockchain: ctrl.blockchainStatus(),
	})
}

func (ctrl *SystemController) Status(w http.ResponseWriter, r *http.Request) {
	emailService := constvars.HealthServiceInactive
	if ctrl.NotificationUsecase.IsEmailConfigured() {
		emailService = constvars.HealthServiceActive
	}

	status := responses.Status{
		Platform:        constvars.AppPlatformName,
		Version:         ctrl.InternalConfig.App.Version,
		Blockchain:      ctrl.InternalConfig.Contract.Driver,
		Network:         ctrl.InternalConfig.Contract.Network,
		EmailService:    emailService,
		MailerDriver:    ctrl.InternalConfig.Mailer.Driver,
		AvailableRoutes: ctrl.AvailableRoutes,
		Uptime:          ctrl.now().Sub(ctrl.StartedAt).Seconds(),
	}
	if ctrl.Contract != nil {
		status.ContractAddress = ctrl.Contract.Address()
	}

	utils.WriteJSON(w, constvars.StatusOK, status)
}

func (ctrl *SystemController) Stats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, ctrl.Timeout)
	defer cancel()

	stats, err := ctrl.RegistryUsecase.Stats(ctx, newSession(ctx, ctrl.Contract))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetRegistryStatsSuccess, stats)
}

// GenerateMedicalID does not check the contract; collisions surface at registration.
func (ctrl *SystemController) GenerateMedicalID(w http.ResponseWriter, r *http.Request) {
	rawRole := r.URL.Query().Get(constvars.QueryParamRole)
	role, err := models.ParseRole(rawRole)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrUnsupportedRole(err, rawRole))
		return
	}

	medicalID, err := utils.GenerateMedicalID(role, r.URL.Query().Get(constvars.QueryParamName))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMedicalIDGenerate(err))
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GenerateMedicalIDSuccess, responses.MedicalID{
		Role:      string(role),
		MedicalID: medicalID,
	})
}

func (ctrl *SystemController) NotFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, constvars.StatusNotFound, responses.RouteNotFound{
		Error:           constvars.ErrClientRouteNotFound,
		RequestedPath:   r.URL.Path,
		AvailableRoutes: ctrl.AvailableRoutes,
	})
}

func (ctrl *SystemController) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMethodNotAllowed(r.Method))
}

func (ctrl *SystemController) blockchainStatus() string {
	if ctrl.Contract == nil {
		return constvars.HealthBlockchainDown
	}
	return constvars.HealthBlockchainReady
}

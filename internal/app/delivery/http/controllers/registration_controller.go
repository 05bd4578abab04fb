package controllers

import (
	"lifeledger-service/internal/app/contracts"
	"lifeledger-service/internal/app/models"
	"lifeledger-service/internal/pkg/constvars"
	"lifeledger-service/internal/pkg/dto/requests"
	"lifeledger-service/internal/pkg/dto/responses"
	"lifeledger-service/internal/pkg/exceptions"
	"lifeledger-service/internal/pkg/utils"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type RegistrationController struct {
	Log                 *zap.Logger
	RegistrationUsecase contracts.RegistrationUsecase
	// Contract is nil when no backend could be reached; requests then fail as not connected.
	Contract contracts.RegistryContract
}

func NewRegistrationController(logger *zap.Logger, registrationUsecase contracts.RegistrationUsecase, contract contracts.RegistryContract) *RegistrationController {
	return &RegistrationController{
		Log:                 logger,
		RegistrationUsecase: registrationUsecase,
		Contract:            contract,
	}
}

// Register returns the handler registering records of role. It runs without the app
// request timeout: a dispatched write is bounded only by the contract receipt timeout.
func (ctrl *RegistrationController) Register(role models.Role) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Bind body to request
		form := new(requests.RegistrationForm)
		err := json.NewDecoder(r.Body).Decode(form)
		if err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
			return
		}
		form.Role = string(role)

		// Sanitize request
		utils.SanitizeRegistrationForm(form)

		ctx := r.Context()
		outcome, err := ctrl.RegistrationUsecase.Register(ctx, newSession(ctx, ctrl.Contract), form)
		if err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, err)
			return
		}

		response := &responses.Registration{
			MedicalID: outcome.MedicalID,
			Role:      string(outcome.Role),
			State:     string(outcome.State),
		}
		if outcome.Result != nil {
			response.TxHash = outcome.Result.TxHash
			response.BlockNumber = outcome.Result.BlockNumber
			response.GasLimit = outcome.Result.GasLimit
		}

		utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.RegistrationSuccessMessage, response)
	}
}

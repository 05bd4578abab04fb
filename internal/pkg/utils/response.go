package utils

import (
	"errors"
	"lifeledger-service/internal/pkg/constvars"
	"lifeledger-service/internal/pkg/dto/responses"
	"lifeledger-service/internal/pkg/exceptions"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func BuildSuccessResponse(w http.ResponseWriter, code int, message string, data interface{}) {
	response := responses.ResponseDTO{
		Success: true,
		Message: message,
		Data:    data,
	}
	WriteJSON(w, code, response)
}

func WriteJSON(w http.ResponseWriter, code int, body interface{}) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(body)
}

func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	code, clientMessage, customErr := unwrapError(log, err)

	response := exceptions.CustomError{
		StatusCode:    code,
		Success:       false,
		ClientMessage: clientMessage,
	}

	appEnvironment := GetEnvString("APP_ENV", "development")
	if customErr != nil {
		response.Kind = customErr.Kind
		if appEnvironment != "production" {
			response.DevMessage = customErr.DevMessage
			response.Locations = customErr.Locations
		}
	}
	WriteJSON(w, code, response)
}

// BuildFailureResponse writes the ResponseDTO envelope with success false, for failures
// that still carry a payload the client renders.
func BuildFailureResponse(log *zap.Logger, w http.ResponseWriter, err error, message string, data interface{}) {
	code, _, _ := unwrapError(log, err)
	WriteJSON(w, code, responses.ResponseDTO{
		Success: false,
		Message: message,
		Data:    data,
	})
}

// BuildRelayResponse writes the {success, message} envelope of the notification relay.
func BuildRelayResponse(w http.ResponseWriter, code int, message string) {
	WriteJSON(w, code, responses.RelayResponse{
		Success: true,
		Message: message,
	})
}

// BuildRelayErrorResponse writes the {success:false, error} envelope of the notification relay.
func BuildRelayErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	code, clientMessage, _ := unwrapError(log, err)
	WriteJSON(w, code, responses.RelayResponse{
		Success: false,
		Error:   clientMessage,
	})
}

func unwrapError(log *zap.Logger, err error) (int, string, *exceptions.CustomError) {
	code := constvars.StatusInternalServerError
	clientMessage := constvars.ErrClientSomethingWrongWithApplication

	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		code = customErr.StatusCode
		clientMessage = customErr.ClientMessage
		for _, location := range customErr.Locations {
			location := map[string]interface{}{
				"file":          location.File,
				"line":          location.Line,
				"function_name": location.FunctionName,
			}
			log.Error(customErr.DevMessage,
				zap.String(constvars.LoggingErrorTypeKey, string(customErr.Kind)),
				zap.Any("location", location),
			)
		}
		return code, clientMessage, customErr
	}

	log.Error(err.Error())
	return code, clientMessage, nil
}

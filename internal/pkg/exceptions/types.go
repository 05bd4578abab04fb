package exceptions

import (
	"fmt"
	"lifeledger-service/internal/pkg/constvars"
	"time"
)

var (
	// Validation
	ErrFormValidation = func(err error, clientMessage string) *CustomError {
		return buildCustomError(err, KindValidation, constvars.StatusBadRequest, clientMessage, constvars.ErrDevValidationFailed)
	}
	ErrInputValidation = func(err error) *CustomError {
		return buildCustomError(err, KindValidation, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return buildCustomError(err, KindValidation, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrEmptyMedicalID = func(role string) *CustomError {
		return buildCustomError(nil, KindValidation, constvars.StatusBadRequest, fmt.Sprintf(constvars.ErrClientMedicalIDEmptyFormat, role), constvars.ErrDevInvalidInput)
	}
	ErrUnsupportedRole = func(err error, role string) *CustomError {
		return buildCustomError(err, KindValidation, constvars.StatusBadRequest, constvars.ErrClientInvalidRole, fmt.Sprintf(constvars.ErrDevUnsupportedRole, role))
	}
	ErrMissingRequiredFields = func(err error) *CustomError {
		return buildCustomError(err, KindValidation, constvars.StatusBadRequest, constvars.ErrClientMissingRequiredFields, constvars.ErrDevMissingRequiredFields)
	}
	ErrInvalidEmailType = func(emailType string) *CustomError {
		return buildCustomError(nil, KindValidation, constvars.StatusBadRequest, constvars.ErrClientInvalidEmailType, fmt.Sprintf(constvars.ErrDevInvalidEmailType, emailType))
	}

	// Duplicate
	ErrDuplicateMedicalID = func(err error) *CustomError {
		return buildCustomError(err, KindDuplicate, constvars.StatusConflict, constvars.ErrClientMedicalIDAlreadyExists, constvars.ErrDevDuplicateMedicalID)
	}
	ErrRegistrationLocked = func(err error) *CustomError {
		return buildCustomError(err, KindDuplicate, constvars.StatusConflict, constvars.ErrClientRegistrationInProgress, constvars.ErrDevRegistrationLocked)
	}

	// Connectivity
	ErrWalletNotConnected = func(err error) *CustomError {
		return buildCustomError(err, KindConnectivity, constvars.StatusServiceUnavailable, constvars.ErrClientWalletNotConnected, constvars.ErrDevWalletNotConnected)
	}
	ErrContractDial = func(err error, rpcUrl string) *CustomError {
		return buildCustomError(err, KindConnectivity, constvars.StatusServiceUnavailable, constvars.ErrClientBlockchainUnavailable, fmt.Sprintf(constvars.ErrDevContractDial, rpcUrl))
	}
	ErrContractCall = func(err error, method string) *CustomError {
		return buildCustomError(err, KindConnectivity, constvars.StatusBadGateway, clientMessageOf(err, constvars.ErrClientBlockchainUnavailable), fmt.Sprintf(constvars.ErrDevContractCall, method))
	}

	// Transaction: the client sees the underlying message verbatim.
	ErrContractEstimateGas = func(err error, method string) *CustomError {
		return buildCustomError(err, KindTransaction, constvars.StatusBadGateway, clientMessageOf(err, constvars.ErrClientCannotProcessRequest), fmt.Sprintf(constvars.ErrDevContractEstimateGas, method))
	}
	ErrContractTransact = func(err error, method string) *CustomError {
		return buildCustomError(err, KindTransaction, constvars.StatusBadGateway, clientMessageOf(err, constvars.ErrClientCannotProcessRequest), fmt.Sprintf(constvars.ErrDevContractTransact, method))
	}
	ErrContractReverted = func(method, txHash string) *CustomError {
		dev := fmt.Sprintf(constvars.ErrDevContractReverted, method, txHash)
		return buildCustomError(nil, KindTransaction, constvars.StatusBadGateway, dev, dev)
	}
	ErrContractDecodeTuple = func(err error, method string) *CustomError {
		return buildCustomError(err, KindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevContractDecodeTuple, method))
	}
	ErrContractUnknownMethod = func(method string) *CustomError {
		return buildCustomError(nil, KindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevContractUnknownMethod, method))
	}
	ErrLedgerStore = func(err error) *CustomError {
		return buildCustomError(err, KindConnectivity, constvars.StatusServiceUnavailable, constvars.ErrClientBlockchainUnavailable, constvars.ErrDevLedgerStore)
	}
	ErrArtifactLoad = func(err error, source string) *CustomError {
		return buildCustomError(err, KindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevArtifactLoad, source))
	}

	// Not found
	ErrRegistrantNotFound = func(role, medicalID string) *CustomError {
		return buildCustomError(nil, KindNotFound, constvars.StatusNotFound, fmt.Sprintf(constvars.ErrClientRegistrantNotFoundFormat, role), fmt.Sprintf(constvars.ErrDevRegistrantNotFound, role, medicalID))
	}
	ErrRouteNotFound = func() *CustomError {
		return buildCustomError(nil, KindNotFound, constvars.StatusNotFound, constvars.ErrClientRouteNotFound, constvars.ErrDevRouteNotFound)
	}
	ErrMethodNotAllowed = func(method string) *CustomError {
		return buildCustomError(nil, KindValidation, constvars.StatusMethodNotAllowed, constvars.ErrClientMethodNotAllowed, fmt.Sprintf(constvars.ErrDevMethodNotAllowed, method))
	}
	ErrTooManyRequests = func(ip string) *CustomError {
		return buildCustomError(nil, KindValidation, constvars.StatusTooManyRequests, constvars.ErrClientTooManyRequests, fmt.Sprintf(constvars.ErrDevRateLimited, ip))
	}
	ErrRecipientQuotaExceeded = func(recipient string, retryAfter time.Duration) *CustomError {
		return buildCustomError(nil, KindValidation, constvars.StatusTooManyRequests, constvars.ErrClientRecipientQuotaExceeded, fmt.Sprintf(constvars.ErrDevRecipientQuotaExceeded, recipient, retryAfter))
	}

	// Notification
	ErrSMTPSendEmail = func(err error, hostname string) *CustomError {
		return buildCustomError(err, KindNotification, constvars.StatusInternalServerError, clientMessageOf(err, constvars.ErrClientSomethingWrongWithApplication), fmt.Sprintf(constvars.ErrDevSMTPSendEmail, hostname))
	}
	ErrRabbitMQPublishMessage = func(err error, queueName string) *CustomError {
		return buildCustomError(err, KindNotification, constvars.StatusInternalServerError, clientMessageOf(err, constvars.ErrClientSomethingWrongWithApplication), fmt.Sprintf(constvars.ErrDevRabbitMQPublishMessage, queueName))
	}
	ErrRenderEmailTemplate = func(err error, emailType string) *CustomError {
		return buildCustomError(err, KindNotification, constvars.StatusInternalServerError, clientMessageOf(err, constvars.ErrClientSomethingWrongWithApplication), fmt.Sprintf(constvars.ErrDevRenderEmailTemplate, emailType))
	}
	ErrNotificationDelivery = func(err error) *CustomError {
		return buildCustomError(err, KindNotification, constvars.StatusBadGateway, constvars.ErrClientCannotProcessRequest, constvars.ErrDevNotificationDelivery)
	}
	ErrNotificationRejected = func(reason string) *CustomError {
		return buildCustomError(nil, KindNotification, constvars.StatusBadGateway, reason, fmt.Sprintf(constvars.ErrDevNotificationRejected, reason))
	}

	// Minio
	ErrMinioGetObject = func(err error, bucketName, objectName string) *CustomError {
		return buildCustomError(err, KindConnectivity, constvars.StatusServiceUnavailable, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMinioGetObject, bucketName, objectName))
	}

	// Redis
	ErrRedisSetNX = func(err error) *CustomError {
		return buildCustomError(err, KindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSetNX)
	}
	ErrRedisGet = func(err error) *CustomError {
		return buildCustomError(err, KindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisGetData)
	}
	ErrRedisDelete = func(err error) *CustomError {
		return buildCustomError(err, KindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDeleteData)
	}
	ErrRedisIncrement = func(err error) *CustomError {
		return buildCustomError(err, KindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisIncrement)
	}
	ErrRedisUnlock = func(err error) *CustomError {
		return buildCustomError(err, KindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisUnlock)
	}

	// Mongo DB
	ErrMongoDBInsertDocument = func(err error) *CustomError {
		return buildCustomError(err, KindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMongoInsertDocument)
	}

	// HTTP
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return buildCustomError(err, KindInternal, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCreateHTTPRequest)
	}
	ErrSendHTTPRequest = func(err error) *CustomError {
		return buildCustomError(err, KindNotification, constvars.StatusBadGateway, constvars.ErrClientCannotProcessRequest, constvars.ErrDevSendHTTPRequest)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return buildCustomError(err, KindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrStreamingUnsupported = func() *CustomError {
		return buildCustomError(nil, KindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevStreamingUnsupported)
	}

	// Default Server
	ErrServerProcess = func(err error) *CustomError {
		return buildCustomError(err, KindInternal, constvars.StatusInternalServerError, constvars.ErrClientCannotProcessRequest, constvars.ErrDevServerProcess)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return buildCustomError(err, KindConnectivity, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}
	ErrMedicalIDGenerate = func(err error) *CustomError {
		return buildCustomError(err, KindInternal, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMedicalIDGenerate)
	}
)

// clientMessageOf surfaces the underlying failure verbatim; errors with no message
// fall back to a generic one.
func clientMessageOf(err error, fallback string) string {
	if err == nil || err.Error() == "" {
		return fallback
	}
	if customErr, ok := err.(*CustomError); ok {
		return customErr.ClientMessage
	}
	return err.Error()
}

package constvars

// Registration form messages keyed by "<Field>.<tag>". The first failing entry is the
// one shown to the user.
var RegistrationValidationMessages = map[string]string{
	"FullName.required":     "Enter your name",
	"Age.required":          "Enter your age",
	"Age.pledge_age":        "You must be over 18 to pledge",
	"Age.min":               "Enter proper age",
	"Gender.required":       "Enter your gender",
	"Gender.gender":         "Enter your gender",
	"MedicalID.required":    "Enter your Medical ID",
	"Organs.required":       "Enter organ(s)",
	"Organs.min":            "Enter organ(s)",
	"Weight.required":       "Enter your weight",
	"Weight.min":            "Enter proper weight",
	"Weight.max":            "Enter proper weight",
	"Height.required":       "Enter your height",
	"Height.min":            "Enter proper height",
	"Height.max":            "Enter proper height",
	"Email.email_address":   "Enter a valid email",
	"Phone.phone_number":    "Enter a valid phone number",
	"UrgencyLevel.urgency":  "Enter urgency level between 1 and 5",
	"Email.required":        "Missing required fields",
	"Type.required":         "Missing required fields",
	"Data.required":         "Missing required fields",
	"Type.oneof":            "Invalid email type",
	"Role.registrable_role": "Invalid registration role",
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientMedicalIDAlreadyExists        = "Medical ID already exists!"
	ErrClientRegistrationInProgress        = "A registration for this Medical ID is already in progress"
	ErrClientWalletNotConnected            = "Blockchain not connected. Please connect wallet first."
	ErrClientBlockchainUnavailable         = "Failed to connect to blockchain"
	ErrClientMedicalIDEmptyFormat          = "Please enter a %s medical ID"
	ErrClientRegistrantNotFoundFormat      = "%s not found. Please check the Medical ID."
	ErrClientRouteNotFound                 = "Route not found"
	ErrClientMethodNotAllowed              = "Method not allowed"
	ErrClientMissingRequiredFields         = "Missing required fields"
	ErrClientInvalidEmailType              = "Invalid email type"
	ErrClientInvalidRole                   = "Invalid registration role"
	ErrClientTooManyRequests               = "Too many requests, you are blocked temporarily."
	ErrClientRecipientQuotaExceeded        = "Too many emails sent to this address. Please try again later."
)

// Error messages for developers
const (
	ErrDevInvalidInput              = "invalid input"
	ErrDevValidationFailed          = "validation failed"
	ErrDevCannotParseJSON           = "cannot parse JSON"
	ErrDevCannotMarshalJSON         = "cannot marshal JSON"
	ErrDevServerProcess             = "server failed to process request"
	ErrDevServerDeadlineExceeded    = "deadline exceeded"
	ErrDevDuplicateMedicalID        = "medical id already registered on contract"
	ErrDevRegistrationLocked        = "registration lock for medical id held by another request"
	ErrDevWalletNotConnected        = "no signing identity configured for contract writes"
	ErrDevContractCall              = "contract read call %s failed"
	ErrDevContractEstimateGas       = "gas estimation for %s failed"
	ErrDevContractTransact          = "contract write %s failed"
	ErrDevContractReverted          = "contract write %s reverted in tx %s"
	ErrDevContractDecodeTuple       = "cannot decode %s return tuple"
	ErrDevContractDial              = "cannot dial ethereum rpc %s"
	ErrDevContractUnknownMethod     = "unknown contract method %s"
	ErrDevRegistrantNotFound        = "%s %s not found on contract"
	ErrDevLedgerStore               = "ledger store operation failed"
	ErrDevArtifactLoad              = "cannot load contract artifact from %s"
	ErrDevSMTPSendEmail             = "failed to send email via smtp host %s"
	ErrDevRabbitMQPublishMessage    = "failed to publish message to queue %s"
	ErrDevRenderEmailTemplate       = "failed to render %s email template"
	ErrDevNotificationDelivery      = "notification relay request failed"
	ErrDevNotificationRejected      = "notification relay rejected request: %s"
	ErrDevRedisSetNX                = "failed to set redis key if absent"
	ErrDevRedisGetData              = "failed to get data from redis"
	ErrDevRedisDeleteData           = "failed to delete data from redis"
	ErrDevRedisUnlock               = "failed to release redis lock"
	ErrDevRedisIncrement            = "failed to increment redis counter"
	ErrDevMongoInsertDocument       = "failed to insert document into database"
	ErrDevMedicalIDGenerate         = "failed to generate medical id suffix"
	ErrDevUnsupportedRole           = "unsupported role %s"
	ErrDevCreateHTTPRequest         = "failed to create HTTP request"
	ErrDevSendHTTPRequest           = "failed to send HTTP request"
	ErrDevStreamingUnsupported      = "response writer does not support flushing"
	ErrDevInvalidEmailType          = "invalid email type %s"
	ErrDevMissingRequiredFields     = "missing required fields"
	ErrDevRateLimited               = "client %s exceeded email relay rate"
	ErrDevRecipientQuotaExceeded    = "recipient %s exceeded email quota, retry after %s"
	ErrDevRouteNotFound             = "route not found"
	ErrDevMethodNotAllowed          = "method %s not allowed on route"
	ErrDevCannotDecodeContractValue = "unexpected type %T at tuple index %d"
	ErrDevMinioGetObject            = "failed to read object %s/%s from minio"
)

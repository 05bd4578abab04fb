package constvars

type ContextKey string

const (
	AppPlatformName = "LifeLedger"
)

const (
	ContractDriverEthereum = "ethereum"
	ContractDriverLedger   = "ledger"
)

const (
	ArtifactSourceEmbedded = "embedded"
	ArtifactSourceFile     = "file"
	ArtifactSourceMinio    = "minio"
)

const (
	MailerDriverSMTP     = "smtp"
	MailerDriverRabbitMQ = "rabbitmq"
)

const (
	// DefaultMinGas is the floor applied to every estimated write budget.
	DefaultMinGas = 1000000
)

const (
	MedicalIDPrefixDonor   = "DON"
	MedicalIDPrefixPatient = "PAT"
	MedicalIDPrefixPledge  = "PLD"
	MedicalIDSuffixMin     = 1000
	MedicalIDSuffixMax     = 9999
	MedicalIDInitialsLen   = 3
	MedicalIDInitialsPad   = "X"
)

const (
	PledgeMinimumAge = 18
	MinWeightKg      = 20
	MaxWeightKg      = 200
	MinHeightCm      = 54
	MaxHeightCm      = 272
	MinUrgencyLevel  = 1
	MaxUrgencyLevel  = 5
)

const (
	RegistrationLockKeyFormat = "registration:lock:%s"
	RecipientQuotaKeyFormat   = "notification:quota:%s:%d"
)

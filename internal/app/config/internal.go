package config

type InternalConfig struct {
	App          App
	Contract     AppContract
	Mailer       AppMailer
	Notification AppNotification
	Registration AppRegistration
	RateLimit    AppRateLimit
	MongoDB      AppMongoDB
}

type App struct {
	Env                        string
	Port                       string
	Version                    string
	Timezone                   string
	MaxRequests                int
	ShutdownTimeout            int
	RequestBodyLimitInMegabyte int
	RequestTimeoutInSeconds    int
}

type AppContract struct {
	// Driver selects the contract backend: "ethereum" or "ledger".
	Driver                  string
	Address                 string
	Network                 string
	MinGas                  uint64
	ArtifactSource          string
	ArtifactPath            string
	ArtifactBucket          string
	ArtifactObject          string
	ReceiptTimeoutInSeconds int
}

type AppMailer struct {
	// Driver selects how relayed emails leave the process: "smtp" or "rabbitmq".
	Driver      string
	EmailSender string
	SenderName  string
	Queue       string
	Prefetch    int
}

type AppNotification struct {
	// RelayUrl is used by out-of-process callers (the CLI) to reach /api/send-email.
	RelayUrl         string
	TimeoutInSeconds int
	// InProcess makes the server notify through its own relay usecase instead of over HTTP.
	InProcess bool
}

type AppRegistration struct {
	LockEnabled      bool
	LockTTLInSeconds int
}

type AppRateLimit struct {
	EmailRequests          int
	EmailPerSeconds        int
	EmailBlockTimeInSecond int
	// RecipientQuota caps emails per address per window across replicas. Needs Redis.
	RecipientQuotaEnabled         bool
	RecipientQuota                int
	RecipientQuotaWindowInSeconds int
}

type AppMongoDB struct {
	DeliveryLogEnabled    bool
	DeliveryLogCollection string
}

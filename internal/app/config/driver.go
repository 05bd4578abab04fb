package config

type (
	DriverConfig struct {
		Logger   Logger
		SMTP     SMTP
		RabbitMQ RabbitMQ
		Redis    Redis
		MongoDB  MongoDB
		Minio    Minio
		Ethereum Ethereum
		LevelDB  LevelDB
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
	SMTP struct {
		Host        string
		Port        int
		Username    string
		Password    string
		EmailSender string
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
	}
	MongoDB struct {
		Port     string
		Host     string
		Username string
		Password string
		DbName   string
	}
	Minio struct {
		Port     string
		Host     string
		Username string
		Password string
		UseSSL   bool
	}
	Ethereum struct {
		RPCUrl string
		// PrivateKey is the hex-encoded key of the active identity. Empty means read-only.
		PrivateKey string
	}
	LevelDB struct {
		Path string
		// Identity is the address the ledger emulator attributes writes to. Empty means read-only.
		Identity string
	}
)

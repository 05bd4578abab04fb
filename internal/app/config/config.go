package config

import (
	"lifeledger-service/internal/pkg/constvars"
	"lifeledger-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		SMTP: SMTP{
			Host:        utils.GetEnvString("SMTP_HOST", "smtp.gmail.com"),
			Port:        utils.GetEnvInt("SMTP_PORT", 587),
			Username:    utils.GetEnvString("SMTP_USERNAME", ""),
			Password:    utils.GetEnvString("SMTP_PASSWORD", ""),
			EmailSender: utils.GetEnvString("SMTP_EMAIL_SENDER", ""),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", ""),
			Username: utils.GetEnvString("MONGODB_USERNAME", ""),
			Password: utils.GetEnvString("MONGODB_PASSWORD", ""),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "lifeledger"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", ""),
			Password: utils.GetEnvString("MINIO_PASSWORD", ""),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
		Ethereum: Ethereum{
			RPCUrl:     utils.GetEnvString("ETHEREUM_RPC_URL", "http://127.0.0.1:8545"),
			PrivateKey: utils.GetEnvString("ETHEREUM_PRIVATE_KEY", ""),
		},
		LevelDB: LevelDB{
			Path:     utils.GetEnvString("LEDGER_DB_PATH", "data/ledger"),
			Identity: utils.GetEnvString("LEDGER_IDENTITY", "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Port:                       utils.GetEnvString("APP_PORT", ":3000"),
			Version:                    utils.GetEnvString("APP_VERSION", "1.0.0"),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "UTC"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 20),
			ShutdownTimeout:            utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 1),
			RequestTimeoutInSeconds:    utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 30),
		},
		Contract: AppContract{
			Driver:                  utils.GetEnvString("CONTRACT_DRIVER", constvars.ContractDriverEthereum),
			Address:                 utils.GetEnvString("CONTRACT_ADDRESS", "0x5FbDB2315678afecb367f032d93F642f64180aa3"),
			Network:                 utils.GetEnvString("CONTRACT_NETWORK", "localhost"),
			MinGas:                  uint64(utils.GetEnvInt64("CONTRACT_MIN_GAS", constvars.DefaultMinGas)),
			ArtifactSource:          utils.GetEnvString("CONTRACT_ARTIFACT_SOURCE", constvars.ArtifactSourceEmbedded),
			ArtifactPath:            utils.GetEnvString("CONTRACT_ARTIFACT_PATH", "artifacts/contracts/DonorContract.sol/DonorContract.json"),
			ArtifactBucket:          utils.GetEnvString("CONTRACT_ARTIFACT_BUCKET", "lifeledger-artifacts"),
			ArtifactObject:          utils.GetEnvString("CONTRACT_ARTIFACT_OBJECT", "DonorContract.json"),
			ReceiptTimeoutInSeconds: utils.GetEnvInt("CONTRACT_RECEIPT_TIMEOUT_IN_SECONDS", 120),
		},
		Mailer: AppMailer{
			Driver:      utils.GetEnvString("MAILER_DRIVER", constvars.MailerDriverSMTP),
			EmailSender: utils.GetEnvString("APP_MAILER_EMAIL_SENDER", ""),
			SenderName:  utils.GetEnvString("APP_MAILER_SENDER_NAME", "LifeLedger Platform"),
			Queue:       utils.GetEnvString("APP_RABBITMQ_MAILER_QUEUE", "lifeledger.mailer"),
			Prefetch:    utils.GetEnvInt("APP_RABBITMQ_MAILER_PREFETCH", 10),
		},
		Notification: AppNotification{
			RelayUrl:         utils.GetEnvString("NOTIFICATION_RELAY_URL", "http://localhost:3000/api/send-email"),
			TimeoutInSeconds: utils.GetEnvInt("NOTIFICATION_TIMEOUT_IN_SECONDS", 15),
			InProcess:        utils.GetEnvBool("NOTIFICATION_IN_PROCESS", true),
		},
		Registration: AppRegistration{
			LockEnabled:      utils.GetEnvBool("REGISTRATION_LOCK_ENABLED", false),
			LockTTLInSeconds: utils.GetEnvInt("REGISTRATION_LOCK_TTL_IN_SECONDS", 180),
		},
		RateLimit: AppRateLimit{
			EmailRequests:          utils.GetEnvInt("RATE_LIMIT_EMAIL_REQUESTS", 5),
			EmailPerSeconds:        utils.GetEnvInt("RATE_LIMIT_EMAIL_PER_SECONDS", 60),
			EmailBlockTimeInSecond: utils.GetEnvInt("RATE_LIMIT_EMAIL_BLOCK_TIME_IN_SECONDS", 300),

			RecipientQuotaEnabled:         utils.GetEnvBool("RATE_LIMIT_RECIPIENT_QUOTA_ENABLED", false),
			RecipientQuota:                utils.GetEnvInt("RATE_LIMIT_RECIPIENT_QUOTA", 3),
			RecipientQuotaWindowInSeconds: utils.GetEnvInt("RATE_LIMIT_RECIPIENT_QUOTA_WINDOW_IN_SECONDS", 3600),
		},
		MongoDB: AppMongoDB{
			DeliveryLogEnabled:    utils.GetEnvBool("MONGODB_DELIVERY_LOG_ENABLED", false),
			DeliveryLogCollection: utils.GetEnvString("MONGODB_DELIVERY_LOG_COLLECTION", "email_deliveries"),
		},
	}
}

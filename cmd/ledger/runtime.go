package main

import (
	"context"
	"errors"
	"fmt"
	"lifeledger-service/internal/app/config"
	"lifeledger-service/internal/app/contracts"
	"lifeledger-service/internal/app/drivers/logger"
	driverstorage "lifeledger-service/internal/app/drivers/storage"
	"lifeledger-service/internal/app/services/shared/contract"
	"lifeledger-service/internal/app/services/shared/storage"
	"lifeledger-service/internal/pkg/constvars"
	"lifeledger-service/internal/pkg/exceptions"
	"lifeledger-service/internal/pkg/utils"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	flagDriver     = "driver"
	flagContract   = "contract"
	flagRPCUrl     = "rpc-url"
	flagPrivateKey = "private-key"
	flagDBPath     = "db-path"
	flagRelayURL   = "relay-url"
	flagTimeout    = "timeout"
	flagVerbose    = "verbose"
)

// cliConfig holds the settings a flag can override. Flags win over the
// environment, which wins over .env and the service defaults.
type cliConfig struct {
	ContractDriver   string `mapstructure:"CONTRACT_DRIVER"`
	ContractAddress  string `mapstructure:"CONTRACT_ADDRESS"`
	RPCUrl           string `mapstructure:"ETHEREUM_RPC_URL"`
	PrivateKey       string `mapstructure:"ETHEREUM_PRIVATE_KEY"`
	DBPath           string `mapstructure:"LEDGER_DB_PATH"`
	RelayURL         string `mapstructure:"NOTIFICATION_RELAY_URL"`
	TimeoutInSeconds int    `mapstructure:"CLI_TIMEOUT_IN_SECONDS"`
	Verbose          bool   `mapstructure:"CLI_VERBOSE"`
}

var flagKeys = map[string]string{
	flagDriver:     "CONTRACT_DRIVER",
	flagContract:   "CONTRACT_ADDRESS",
	flagRPCUrl:     "ETHEREUM_RPC_URL",
	flagPrivateKey: "ETHEREUM_PRIVATE_KEY",
	flagDBPath:     "LEDGER_DB_PATH",
	flagRelayURL:   "NOTIFICATION_RELAY_URL",
	flagTimeout:    "CLI_TIMEOUT_IN_SECONDS",
	flagVerbose:    "CLI_VERBOSE",
}

type runtime struct {
	log            *logrus.Logger
	serviceLog     *zap.Logger
	driverConfig   *config.DriverConfig
	internalConfig *config.InternalConfig
	settings       cliConfig
}

func (rt *runtime) load(cmd *cobra.Command) error {
	rt.driverConfig = config.NewDriverConfig()
	rt.internalConfig = config.NewInternalConfig()

	settings, err := loadSettings(cmd, rt.driverConfig, rt.internalConfig)
	if err != nil {
		return err
	}
	rt.settings = *settings
	applySettings(settings, rt.driverConfig, rt.internalConfig)

	rt.log = logger.NewLogrusLogger(rt.driverConfig, rt.internalConfig)
	rt.serviceLog = zap.NewNop()
	if settings.Verbose {
		if development, err := zap.NewDevelopment(); err == nil {
			rt.serviceLog = development
		}
	}
	return nil
}

func loadSettings(cmd *cobra.Command, driverConfig *config.DriverConfig, internalConfig *config.InternalConfig) (*cliConfig, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	v.SetDefault("CONTRACT_DRIVER", internalConfig.Contract.Driver)
	v.SetDefault("CONTRACT_ADDRESS", internalConfig.Contract.Address)
	v.SetDefault("ETHEREUM_RPC_URL", driverConfig.Ethereum.RPCUrl)
	v.SetDefault("ETHEREUM_PRIVATE_KEY", driverConfig.Ethereum.PrivateKey)
	v.SetDefault("LEDGER_DB_PATH", driverConfig.LevelDB.Path)
	v.SetDefault("NOTIFICATION_RELAY_URL", internalConfig.Notification.RelayUrl)
	v.SetDefault("CLI_TIMEOUT_IN_SECONDS", 0)
	v.SetDefault("CLI_VERBOSE", false)

	for flag, key := range flagKeys {
		if f := cmd.Flags().Lookup(flag); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", flag, err)
			}
		}
	}

	// .env is optional
	_ = v.ReadInConfig()

	settings := &cliConfig{}
	if err := v.Unmarshal(settings); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return settings, nil
}

func applySettings(settings *cliConfig, driverConfig *config.DriverConfig, internalConfig *config.InternalConfig) {
	internalConfig.Contract.Driver = settings.ContractDriver
	internalConfig.Contract.Address = settings.ContractAddress
	internalConfig.Notification.RelayUrl = settings.RelayURL
	driverConfig.Ethereum.RPCUrl = settings.RPCUrl
	driverConfig.Ethereum.PrivateKey = settings.PrivateKey
	driverConfig.LevelDB.Path = settings.DBPath
}

// commandContext tags the command with a request id so service logs of one
// invocation can be correlated.
func (rt *runtime) commandContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := context.WithValue(cmd.Context(), constvars.CONTEXT_REQUEST_ID_KEY, uuid.New().String())
	if rt.settings.TimeoutInSeconds <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, time.Duration(rt.settings.TimeoutInSeconds)*time.Second)
}

// openSession connects to the configured registry. The returned close func is never nil.
func (rt *runtime) openSession(ctx context.Context) (*contracts.Session, func(), error) {
	var objectStorage contracts.ObjectStorage
	if rt.internalConfig.Contract.ArtifactSource == constvars.ArtifactSourceMinio {
		minioClient := driverstorage.NewMinio(rt.driverConfig, rt.internalConfig.Contract.ArtifactBucket)
		objectStorage = storage.NewMinioStorage(minioClient)
	}

	registry, backend, err := contract.Open(ctx, rt.serviceLog, rt.driverConfig, rt.internalConfig, objectStorage, nil)
	if err != nil {
		return nil, func() {}, err
	}

	closeBackend := func() {
		if err := backend.Close(); err != nil {
			rt.log.WithError(err).Warn("failed to close contract backend")
		}
	}
	session := &contracts.Session{
		ID:       utils.GetRequestID(ctx),
		Contract: registry,
	}
	rt.log.WithFields(logrus.Fields{
		"driver":   rt.internalConfig.Contract.Driver,
		"contract": registry.Address(),
		"identity": registry.Identity(),
	}).Debug("registry session opened")
	return session, closeBackend, nil
}

// reportError logs the client-facing message of err with its kind.
func (rt *runtime) reportError(err error) {
	log := rt.log
	if log == nil {
		log = logrus.StandardLogger()
	}

	message := err.Error()
	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		message = customErr.ClientMessage
	}
	log.WithField(constvars.LoggingErrorTypeKey, string(exceptions.KindOf(err))).Error(message)
}

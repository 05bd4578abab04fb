package contract

import (
	"context"
	"fmt"
	"lifeledger-service/internal/app/config"
	"lifeledger-service/internal/app/contracts"
	"lifeledger-service/internal/app/drivers/blockchain"
	"lifeledger-service/internal/app/drivers/database"
	"lifeledger-service/internal/app/services/shared/artifact"
	"lifeledger-service/internal/pkg/constvars"
	"lifeledger-service/internal/pkg/exceptions"
	"lifeledger-service/internal/pkg/metrics"
	"time"

	"go.uber.org/zap"
)

// Open builds the registry selected by the contract driver setting. The returned
// backend must be closed by the caller. storage is only needed for the minio
// artifact source.
func Open(
	ctx context.Context,
	logger *zap.Logger,
	driverConfig *config.DriverConfig,
	internalConfig *config.InternalConfig,
	storage contracts.ObjectStorage,
	m *metrics.Metrics,
) (contracts.RegistryContract, contracts.ContractBackend, error) {
	parsedABI, err := artifact.Load(ctx, logger, internalConfig.Contract, storage)
	if err != nil {
		return nil, nil, err
	}

	var backend contracts.ContractBackend
	switch internalConfig.Contract.Driver {
	case constvars.ContractDriverLedger:
		db := database.NewLevelDB(driverConfig)
		backend = NewLedgerBackend(logger, db, parsedABI, internalConfig.Contract.Address, driverConfig.LevelDB.Identity)
	case constvars.ContractDriverEthereum:
		client, err := blockchain.NewEthereumClient(ctx, driverConfig)
		if err != nil {
			return nil, nil, exceptions.ErrContractDial(err, driverConfig.Ethereum.RPCUrl)
		}
		receiptTimeout := time.Duration(internalConfig.Contract.ReceiptTimeoutInSeconds) * time.Second
		backend, err = NewEthereumBackend(ctx, logger, client, parsedABI, internalConfig.Contract.Address, driverConfig.Ethereum.PrivateKey, receiptTimeout)
		if err != nil {
			client.Close()
			return nil, nil, err
		}
	default:
		return nil, nil, exceptions.ErrContractDial(fmt.Errorf("unknown contract driver %q", internalConfig.Contract.Driver), internalConfig.Contract.Driver)
	}

	logger.Info("Contract.Open registry ready",
		zap.String(constvars.LoggingContractDriver, internalConfig.Contract.Driver),
		zap.String(constvars.LoggingContractKey, backend.Address()),
		zap.String(constvars.LoggingIdentityKey, backend.Identity()),
	)
	return NewRegistry(backend, m), backend, nil
}

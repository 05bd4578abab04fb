package contract

import (
	"context"
	"fmt"
	"lifeledger-service/internal/app/contracts"
	"lifeledger-service/internal/app/models"
	"lifeledger-service/internal/pkg/constvars"
	"lifeledger-service/internal/pkg/exceptions"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"
)

// EthereumClient is the part of ethclient.Client the backend needs.
type EthereumClient interface {
	bind.ContractBackend
	bind.DeployBackend
	ChainID(ctx context.Context) (*big.Int, error)
}

type ethereumBackend struct {
	Log            *zap.Logger
	client         EthereumClient
	contract       *bind.BoundContract
	abi            abi.ABI
	address        common.Address
	auth           *bind.TransactOpts
	receiptTimeout time.Duration
}

// NewEthereumBackend binds the registry at address. An empty privateKeyHex gives a
// read-only backend whose writes fail with a connectivity error.
func NewEthereumBackend(ctx context.Context, logger *zap.Logger, client EthereumClient, parsedABI abi.ABI, address, privateKeyHex string, receiptTimeout time.Duration) (contracts.ContractBackend, error) {
	if !common.IsHexAddress(address) {
		return nil, exceptions.ErrContractDial(fmt.Errorf("invalid contract address %q", address), address)
	}
	contractAddress := common.HexToAddress(address)

	backend := &ethereumBackend{
		Log:            logger,
		client:         client,
		contract:       bind.NewBoundContract(contractAddress, parsedABI, client, client, client),
		abi:            parsedABI,
		address:        contractAddress,
		receiptTimeout: receiptTimeout,
	}

	if privateKeyHex == "" {
		logger.Warn("ethereumBackend started without identity, writes are disabled",
			zap.String(constvars.LoggingContractKey, address),
		)
		return backend, nil
	}

	privateKey, err := crypto.HexToECDSA(strings.TrimPrefix(privateKeyHex, "0x"))
	if err != nil {
		return nil, exceptions.ErrWalletNotConnected(err)
	}
	chainID, err := client.ChainID(ctx)
	if err != nil {
		return nil, exceptions.ErrContractDial(err, address)
	}
	auth, err := bind.NewKeyedTransactorWithChainID(privateKey, chainID)
	if err != nil {
		return nil, exceptions.ErrWalletNotConnected(err)
	}
	backend.auth = auth

	logger.Info("ethereumBackend bound registry contract",
		zap.String(constvars.LoggingContractKey, address),
		zap.String(constvars.LoggingIdentityKey, auth.From.Hex()),
		zap.String(constvars.LoggingChainIDKey, chainID.String()),
	)
	return backend, nil
}

func (b *ethereumBackend) Identity() string {
	if b.auth == nil {
		return ""
	}
	return b.auth.From.Hex()
}

func (b *ethereumBackend) Address() string {
	return b.address.Hex()
}

func (b *ethereumBackend) Call(ctx context.Context, method string, args ...interface{}) ([]interface{}, error) {
	opts := &bind.CallOpts{Context: ctx}
	if b.auth != nil {
		opts.From = b.auth.From
	}

	var out []interface{}
	if err := b.contract.Call(opts, &out, method, args...); err != nil {
		return nil, exceptions.ErrContractCall(err, method)
	}
	return out, nil
}

func (b *ethereumBackend) EstimateGas(ctx context.Context, method string, args ...interface{}) (uint64, error) {
	if b.auth == nil {
		return 0, exceptions.ErrWalletNotConnected(nil)
	}

	input, err := b.abi.Pack(method, args...)
	if err != nil {
		return 0, exceptions.ErrContractEstimateGas(err, method)
	}

	gas, err := b.client.EstimateGas(ctx, ethereum.CallMsg{
		From: b.auth.From,
		To:   &b.address,
		Data: input,
	})
	if err != nil {
		return 0, exceptions.ErrContractEstimateGas(err, method)
	}
	return gas, nil
}

func (b *ethereumBackend) Transact(ctx context.Context, gasLimit uint64, method string, args ...interface{}) (*models.RegistrationResult, error) {
	if b.auth == nil {
		return nil, exceptions.ErrWalletNotConnected(nil)
	}

	opts := *b.auth
	opts.Context = ctx
	opts.GasLimit = gasLimit

	tx, err := b.contract.Transact(&opts, method, args...)
	if err != nil {
		return nil, exceptions.ErrContractTransact(err, method)
	}

	b.Log.Info("ethereumBackend.Transact submitted",
		zap.String(constvars.LoggingTxHashKey, tx.Hash().Hex()),
		zap.Uint64(constvars.LoggingGasLimitKey, gasLimit),
	)

	waitCtx, cancel := context.WithTimeout(ctx, b.receiptTimeout)
	defer cancel()

	receipt, err := bind.WaitMined(waitCtx, b.client, tx)
	if err != nil {
		return nil, exceptions.ErrContractTransact(err, method)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, exceptions.ErrContractReverted(method, tx.Hash().Hex())
	}

	return &models.RegistrationResult{
		TxHash:      tx.Hash().Hex(),
		BlockNumber: receipt.BlockNumber.Uint64(),
		GasUsed:     receipt.GasUsed,
		GasLimit:    gasLimit,
	}, nil
}

func (b *ethereumBackend) Close() error {
	if closer, ok := b.client.(interface{ Close() }); ok {
		closer.Close()
	}
	return nil
}

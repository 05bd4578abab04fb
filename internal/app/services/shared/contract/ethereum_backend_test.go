package contract

import (
	"context"
	"lifeledger-service/internal/app/services/shared/artifact"
	"lifeledger-service/internal/pkg/exceptions"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient/simulated"
	"github.com/ethereum/go-ethereum/params"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// Hardhat's first well-known development key.
const testPrivateKey = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

func TestEthereumBackend(t *testing.T) {
	ctx := context.Background()
	parsedABI, err := artifact.DefaultABI()
	require.NoError(t, err)

	key, err := crypto.HexToECDSA(testPrivateKey)
	require.NoError(t, err)
	from := crypto.PubkeyToAddress(key.PublicKey)

	sim := simulated.NewBackend(types.GenesisAlloc{
		from: {Balance: new(big.Int).Mul(big.NewInt(100), big.NewInt(params.Ether))},
	})
	t.Cleanup(func() { sim.Close() })

	t.Run("Invalid Address", func(t *testing.T) {
		_, err := NewEthereumBackend(ctx, zap.NewNop(), sim.Client(), parsedABI, "not-an-address", "", time.Second)
		assert.Error(t, err)
	})

	t.Run("Read Only Backend Refuses Writes", func(t *testing.T) {
		backend, err := NewEthereumBackend(ctx, zap.NewNop(), sim.Client(), parsedABI, testContractAddress, "", time.Second)
		require.NoError(t, err)
		assert.Equal(t, "", backend.Identity())

		_, err = backend.Transact(ctx, 1000000, MethodSetDonors)
		assert.True(t, exceptions.IsKind(err, exceptions.KindConnectivity))

		_, err = backend.EstimateGas(ctx, MethodSetDonors)
		assert.True(t, exceptions.IsKind(err, exceptions.KindConnectivity))
	})

	t.Run("Identity From Private Key", func(t *testing.T) {
		backend, err := NewEthereumBackend(ctx, zap.NewNop(), sim.Client(), parsedABI, testContractAddress, "0x"+testPrivateKey, time.Second)
		require.NoError(t, err)
		assert.Equal(t, from.Hex(), backend.Identity())
	})

	t.Run("Bad Private Key", func(t *testing.T) {
		_, err := NewEthereumBackend(ctx, zap.NewNop(), sim.Client(), parsedABI, testContractAddress, "zz", time.Second)
		assert.True(t, exceptions.IsKind(err, exceptions.KindConnectivity))
	})

	t.Run("Call Without Deployed Code", func(t *testing.T) {
		backend, err := NewEthereumBackend(ctx, zap.NewNop(), sim.Client(), parsedABI, testContractAddress, testPrivateKey, time.Second)
		require.NoError(t, err)

		_, err = backend.Call(ctx, MethodGetCountOfDonors)

		assert.True(t, exceptions.IsKind(err, exceptions.KindConnectivity))
	})

	t.Run("Estimate Rejects Malformed Arguments", func(t *testing.T) {
		backend, err := NewEthereumBackend(ctx, zap.NewNop(), sim.Client(), parsedABI, testContractAddress, testPrivateKey, time.Second)
		require.NoError(t, err)

		_, err = backend.EstimateGas(ctx, MethodSetDonors, "only-one-argument")

		assert.True(t, exceptions.IsKind(err, exceptions.KindTransaction))
	})
}

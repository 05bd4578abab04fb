package blockchain

import (
	"context"
	"lifeledger-service/internal/app/config"
	"log"

	"github.com/ethereum/go-ethereum/ethclient"
)

// NewEthereumClient dials the configured RPC endpoint. Unlike the other drivers it
// reports failure instead of exiting, so the server can start without a node.
func NewEthereumClient(ctx context.Context, driverConfig *config.DriverConfig) (*ethclient.Client, error) {
	client, err := ethclient.DialContext(ctx, driverConfig.Ethereum.RPCUrl)
	if err != nil {
		return nil, err
	}

	chainID, err := client.ChainID(ctx)
	if err != nil {
		client.Close()
		return nil, err
	}
	log.Printf("Successfully connected to ethereum rpc (chain id %s)", chainID.String())
	return client, nil
}

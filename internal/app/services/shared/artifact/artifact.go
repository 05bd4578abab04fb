// Package artifact loads the registry contract ABI from the embedded default, a Hardhat
// artifact on disk, or an artifact object in MinIO.
package artifact

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"lifeledger-service/internal/app/config"
	"lifeledger-service/internal/app/contracts"
	"lifeledger-service/internal/pkg/constvars"
	"lifeledger-service/internal/pkg/exceptions"
	"os"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

//go:embed abi/DonorContract.json
var defaultArtifact []byte

// hardhatArtifact is the subset of a Hardhat compile output the service reads.
type hardhatArtifact struct {
	ContractName string          `json:"contractName"`
	ABI          json.RawMessage `json:"abi"`
}

// DefaultABI returns the ABI the service ships with.
func DefaultABI() (abi.ABI, error) {
	return Parse(defaultArtifact)
}

// Parse accepts either a bare ABI array or a Hardhat artifact with an "abi" field.
func Parse(data []byte) (abi.ABI, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return abi.ABI{}, fmt.Errorf("empty artifact")
	}

	raw := trimmed
	if trimmed[0] == '{' {
		var artifact hardhatArtifact
		if err := json.Unmarshal(trimmed, &artifact); err != nil {
			return abi.ABI{}, err
		}
		if len(artifact.ABI) == 0 {
			return abi.ABI{}, fmt.Errorf("artifact %q has no abi field", artifact.ContractName)
		}
		raw = artifact.ABI
	}
	return abi.JSON(bytes.NewReader(raw))
}

// Load resolves the ABI from the configured source. storage is only used for the
// minio source and may be nil otherwise.
func Load(ctx context.Context, log *zap.Logger, contractConfig config.AppContract, storage contracts.ObjectStorage) (abi.ABI, error) {
	var (
		data []byte
		err  error
	)

	switch contractConfig.ArtifactSource {
	case constvars.ArtifactSourceEmbedded, "":
		data = defaultArtifact
	case constvars.ArtifactSourceFile:
		data, err = os.ReadFile(contractConfig.ArtifactPath)
	case constvars.ArtifactSourceMinio:
		if storage == nil {
			err = fmt.Errorf("no object storage configured")
			break
		}
		data, err = storage.GetObject(ctx, contractConfig.ArtifactBucket, contractConfig.ArtifactObject)
	default:
		err = fmt.Errorf("unknown artifact source %q", contractConfig.ArtifactSource)
	}
	if err != nil {
		return abi.ABI{}, exceptions.ErrArtifactLoad(err, contractConfig.ArtifactSource)
	}

	parsed, err := Parse(data)
	if err != nil {
		return abi.ABI{}, exceptions.ErrArtifactLoad(err, contractConfig.ArtifactSource)
	}

	log.Info("artifact.Load contract ABI loaded",
		zap.String(constvars.LoggingArtifactSource, contractConfig.ArtifactSource),
		zap.Int(constvars.LoggingCountKey, len(parsed.Methods)),
	)
	return parsed, nil
}

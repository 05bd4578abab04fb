package middlewares

import (
	"lifeledger-service/internal/app/config"
	"lifeledger-service/internal/pkg/metrics"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	InternalConfig *config.InternalConfig
	Metrics        *metrics.Metrics
}

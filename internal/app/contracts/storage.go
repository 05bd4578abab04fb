package contracts

import (
	"context"
	"lifeledger-service/internal/app/models"
)

type ObjectStorage interface {
	GetObject(ctx context.Context, bucketName, objectName string) ([]byte, error)
}

type DeliveryLogRepository interface {
	Record(ctx context.Context, record *models.DeliveryRecord) error
}

package deliverylog

import (
	"context"
	"lifeledger-service/internal/app/contracts"
	"lifeledger-service/internal/app/models"
	"lifeledger-service/internal/pkg/exceptions"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

type deliveryLogMongoRepository struct {
	Collection *mongo.Collection
}

func NewDeliveryLogMongoRepository(db *mongo.Client, dbName, collection string) contracts.DeliveryLogRepository {
	return &deliveryLogMongoRepository{
		Collection: db.Database(dbName).Collection(collection),
	}
}

func (repo *deliveryLogMongoRepository) Record(ctx context.Context, record *models.DeliveryRecord) error {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	_, err := repo.Collection.InsertOne(ctx, record)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

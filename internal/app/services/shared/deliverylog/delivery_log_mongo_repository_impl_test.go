package deliverylog

import (
	"context"
	"lifeledger-service/internal/app/models"
	"lifeledger-service/internal/pkg/constvars"
	"lifeledger-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestDeliveryLogMongoRepository_Record(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("Inserts With Generated ID", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		repo := &deliveryLogMongoRepository{Collection: mt.Coll}
		record := &models.DeliveryRecord{
			Email:     "jane@example.com",
			Type:      constvars.EmailTypeDonor,
			MedicalID: "DON-JAN-1234",
			Driver:    constvars.MailerDriverSMTP,
			Status:    constvars.DeliveryStatusSent,
		}

		err := repo.Record(context.Background(), record)

		require.NoError(mt, err)
		assert.NotEmpty(mt, record.ID)
		assert.False(mt, record.CreatedAt.IsZero())
	})

	mt.Run("Insert Failure", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))
		repo := &deliveryLogMongoRepository{Collection: mt.Coll}

		err := repo.Record(context.Background(), &models.DeliveryRecord{ID: "fixed"})

		assert.True(mt, exceptions.IsKind(err, exceptions.KindInternal))
		assert.True(mt, mongo.IsDuplicateKeyError(err))
	})
}

func TestNoopRepository(t *testing.T) {
	assert.NoError(t, NewNoopRepository().Record(context.Background(), &models.DeliveryRecord{}))
}

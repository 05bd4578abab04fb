package contracts

import (
	"context"
	"lifeledger-service/internal/app/models"
	"lifeledger-service/internal/pkg/dto/requests"
)

type RegistrationUsecase interface {
	Register(ctx context.Context, session *Session, form *requests.RegistrationForm) (*models.RegistrationOutcome, error)
	// Wait blocks until every dispatched notification has finished.
	Wait()
}

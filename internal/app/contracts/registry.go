package contracts

import (
	"context"
	"lifeledger-service/internal/app/models"
	"lifeledger-service/internal/pkg/dto/responses"
)

// VisitFunc is called once per fetched record, in id-list order. Returning an
// error stops the listing.
type VisitFunc func(index int, registrant *models.Registrant) error

type RegistryUsecase interface {
	Search(ctx context.Context, session *Session, role models.Role, medicalID string) (*models.Registrant, error)
	ListAll(ctx context.Context, session *Session, role models.Role, visit VisitFunc) ([]*models.Registrant, error)
	Stats(ctx context.Context, session *Session) (*responses.RegistryStats, error)
}

package mocks

import (
	"context"
	"lifeledger-service/internal/app/contracts"
	"lifeledger-service/internal/app/models"
	"lifeledger-service/internal/pkg/dto/requests"
	"lifeledger-service/internal/pkg/dto/responses"
	"time"

	"github.com/stretchr/testify/mock"
)

type Notifier struct {
	mock.Mock
}

func (m *Notifier) Notify(ctx context.Context, request *requests.SendEmail) error {
	return m.Called(ctx, request).Error(0)
}

type LockerService struct {
	mock.Mock
}

func (m *LockerService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	args := m.Called(ctx, key, expiration)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *LockerService) Unlock(ctx context.Context, key, lockValue string) error {
	return m.Called(ctx, key, lockValue).Error(0)
}

type EmailSender struct {
	mock.Mock
}

func (m *EmailSender) SendHTMLEmail(ctx context.Context, payload *requests.EmailPayload) error {
	return m.Called(ctx, payload).Error(0)
}

func (m *EmailSender) Driver() string { return m.Called().String(0) }

type DeliveryLogRepository struct {
	mock.Mock
}

func (m *DeliveryLogRepository) Record(ctx context.Context, record *models.DeliveryRecord) error {
	return m.Called(ctx, record).Error(0)
}

type NotificationUsecase struct {
	mock.Mock
}

func (m *NotificationUsecase) SendEmail(ctx context.Context, request *requests.SendEmail) (string, error) {
	args := m.Called(ctx, request)
	return args.String(0), args.Error(1)
}

func (m *NotificationUsecase) IsEmailConfigured() bool { return m.Called().Bool(0) }

type RegistrationUsecase struct {
	mock.Mock
}

func (m *RegistrationUsecase) Register(ctx context.Context, session *contracts.Session, form *requests.RegistrationForm) (*models.RegistrationOutcome, error) {
	args := m.Called(ctx, session, form)
	outcome, _ := args.Get(0).(*models.RegistrationOutcome)
	return outcome, args.Error(1)
}

func (m *RegistrationUsecase) Wait() { m.Called() }

type RegistryUsecase struct {
	mock.Mock
}

func (m *RegistryUsecase) Search(ctx context.Context, session *contracts.Session, role models.Role, medicalID string) (*models.Registrant, error) {
	args := m.Called(ctx, session, role, medicalID)
	registrant, _ := args.Get(0).(*models.Registrant)
	return registrant, args.Error(1)
}

// ListAll replays the registrants configured on the mock through visit, then returns
// the configured error.
func (m *RegistryUsecase) ListAll(ctx context.Context, session *contracts.Session, role models.Role, visit contracts.VisitFunc) ([]*models.Registrant, error) {
	args := m.Called(ctx, session, role, visit)
	registrants, _ := args.Get(0).([]*models.Registrant)
	visited := make([]*models.Registrant, 0, len(registrants))
	for i, registrant := range registrants {
		if err := visit(i, registrant); err != nil {
			return visited, err
		}
		visited = append(visited, registrant)
	}
	return visited, args.Error(1)
}

func (m *RegistryUsecase) Stats(ctx context.Context, session *contracts.Session) (*responses.RegistryStats, error) {
	args := m.Called(ctx, session)
	stats, _ := args.Get(0).(*responses.RegistryStats)
	return stats, args.Error(1)
}

type RedisRepository struct {
	mock.Mock
}

func (m *RedisRepository) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *RedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	return m.Called(ctx, key, value, exp).Error(0)
}

func (m *RedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *RedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	args := m.Called(ctx, key, value, exp)
	return args.Bool(0), args.Error(1)
}

func (m *RedisRepository) IncrementWithTTL(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	args := m.Called(ctx, key, ttl)
	return args.Get(0).(int64), args.Error(1)
}

type RecipientQuota struct {
	mock.Mock
}

func (m *RecipientQuota) Allow(ctx context.Context, recipient string) (bool, time.Duration, error) {
	args := m.Called(ctx, recipient)
	return args.Bool(0), args.Get(1).(time.Duration), args.Error(2)
}

package contracts

import (
	"context"
	"lifeledger-service/internal/pkg/dto/requests"
	"time"
)

type NotificationUsecase interface {
	// SendEmail renders and hands off a confirmation email, returning the success message.
	SendEmail(ctx context.Context, request *requests.SendEmail) (string, error)
	IsEmailConfigured() bool
}

// Notifier delivers a registration confirmation to the notification relay.
type Notifier interface {
	Notify(ctx context.Context, request *requests.SendEmail) error
}

// RecipientQuota caps how many confirmations one address receives per window.
type RecipientQuota interface {
	Allow(ctx context.Context, recipient string) (allowed bool, retryAfter time.Duration, err error)
}

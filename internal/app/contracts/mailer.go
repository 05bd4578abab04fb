package contracts

import (
	"context"
	"lifeledger-service/internal/pkg/dto/requests"
)

type EmailSender interface {
	SendHTMLEmail(ctx context.Context, payload *requests.EmailPayload) error
	// Driver names the transport, used in responses and the delivery log.
	Driver() string
}

package controllers

import (
	"context"
	"lifeledger-service/internal/app/contracts"
	"lifeledger-service/internal/pkg/utils"
	"net/http"
	"time"
)

// requestContext bounds the request context by timeout; zero means no extra bound.
func requestContext(r *http.Request, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(r.Context())
	}
	return context.WithTimeout(r.Context(), timeout)
}

// newSession binds the contract handle to one request.
func newSession(ctx context.Context, contract contracts.RegistryContract) *contracts.Session {
	return &contracts.Session{
		ID:       utils.GetRequestID(ctx),
		Contract: contract,
	}
}

package locker

import (
	"context"
	"lifeledger-service/internal/app/contracts"
	"time"
)

type noopLocker struct{}

// NewNoopLocker always grants the lock. Used when REGISTRATION_LOCK_ENABLED is off,
// which keeps the check-then-write race of the contract observable.
func NewNoopLocker() contracts.LockerService {
	return noopLocker{}
}

func (noopLocker) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	return true, "", nil
}

func (noopLocker) Unlock(ctx context.Context, key, lockValue string) error {
	return nil
}

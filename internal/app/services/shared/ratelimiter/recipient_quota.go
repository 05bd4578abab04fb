package ratelimiter

import (
	"context"
	"fmt"
	"lifeledger-service/internal/app/contracts"
	"lifeledger-service/internal/pkg/constvars"
	"strings"
	"time"

	"go.uber.org/zap"
)

// RecipientQuota is a fixed-window counter per email address stored in Redis.
// Every replica shares the same counters, unlike the per-process relay limiter.
type RecipientQuota struct {
	redis    contracts.RedisRepository
	log      *zap.Logger
	maxQuota int
	window   time.Duration

	now func() time.Time
}

// NewRecipientQuota allows maxQuota emails per recipient per window. A
// non-positive maxQuota disables the check.
func NewRecipientQuota(redis contracts.RedisRepository, logger *zap.Logger, maxQuota int, window time.Duration) *RecipientQuota {
	if window <= 0 {
		window = time.Hour
	}
	return &RecipientQuota{
		redis:    redis,
		log:      logger,
		maxQuota: maxQuota,
		window:   window,
		now:      time.Now,
	}
}

// Allow counts one email towards recipient's current window. When the quota is
// spent it returns the time left until the next window starts.
func (q *RecipientQuota) Allow(ctx context.Context, recipient string) (bool, time.Duration, error) {
	if q.maxQuota <= 0 {
		return true, 0, nil
	}

	recipient = strings.ToLower(strings.TrimSpace(recipient))
	windowSecs := int64(q.window / time.Second)
	if windowSecs <= 0 {
		windowSecs = 1
	}
	now := q.now().UTC().Unix()
	windowID := now / windowSecs
	key := fmt.Sprintf(constvars.RecipientQuotaKeyFormat, recipient, windowID)

	count, err := q.redis.IncrementWithTTL(ctx, key, q.window+time.Second)
	if err != nil {
		q.log.Error("RecipientQuota.Allow increment failed",
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return false, 0, err
	}

	if count > int64(q.maxQuota) {
		retryAfter := time.Duration((windowID+1)*windowSecs-now) * time.Second
		return false, retryAfter, nil
	}
	return true, 0, nil
}

package auth

import (
	"context"
	"errors"
	"time"

	"github.com/2beens/wellness/internal/telemetry/tracing"

	"github.com/go-redis/redis/v8"
)

type LoginChecker struct {
	ttl         time.Duration
	redisClient *redis.Client
	now         func() time.Time
}

func NewLoginChecker(ttl time.Duration, redisClient *redis.Client) *LoginChecker {
	return &LoginChecker{
		ttl:         ttl,
		redisClient: redisClient,
		now:         time.Now,
	}
}

// UserID resolves a session token to the ID of the user who owns it.
func (c *LoginChecker) UserID(ctx context.Context, token string) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "loginChecker.userId")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if token == "" {
		return "", ErrMissingAuthToken
	}

	val, err := c.redisClient.Get(ctx, sessionKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrSessionNotFound
	}
	if err != nil {
		return "", err
	}

	userID, createdAt, err := decodeSession(val)
	if err != nil {
		return "", err
	}

	if c.now().Sub(createdAt) > c.ttl {
		return "", ErrSessionExpired
	}

	return userID, nil
}

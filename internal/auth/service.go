package auth

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/2beens/wellness/internal/telemetry/tracing"
	"github.com/2beens/wellness/pkg"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type usersRepo interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	UpdatePasswordHash(ctx context.Context, id, passwordHash string) error
}

type Service struct {
	users       usersRepo
	redisClient *redis.Client
	ttl         time.Duration
	// ability to inject random string generator func for tokens (for unit and dev testing)
	RandStringFunc func(s int) (string, error)
	NewIDFunc      func() string
	HashFunc       func(password string) (string, error)
	now            func() time.Time
}

func NewAuthService(
	users usersRepo,
	ttl time.Duration,
	redisClient *redis.Client,
) *Service {
	return &Service{
		users:          users,
		ttl:            ttl,
		redisClient:    redisClient,
		RandStringFunc: pkg.GenerateRandomString,
		NewIDFunc:      uuid.NewString,
		HashFunc:       hashPassword,
		now:            time.Now,
	}
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return ErrPasswordTooShort
	}
	if len(password) > maxPasswordLength {
		return ErrPasswordTooLong
	}
	return nil
}

func (as *Service) Signup(ctx context.Context, creds Credentials) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "authService.signup")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	email := NormalizeEmail(creds.Email)
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		return nil, ErrInvalidEmail
	}
	if err := validatePassword(creds.Password); err != nil {
		return nil, err
	}

	hash, err := as.HashFunc(creds.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &User{
		ID:           as.NewIDFunc(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    as.now(),
	}
	if err := as.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (as *Service) Login(ctx context.Context, creds Credentials, createdAt time.Time) (_ *LoginSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "authService.login")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	user, err := as.users.GetByEmail(ctx, NormalizeEmail(creds.Email))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrWrongCredentials
		}
		return nil, err
	}

	if !passwordMatches(creds.Password, user.PasswordHash) {
		return nil, ErrWrongCredentials
	}

	token, err := as.RandStringFunc(tokenLength)
	if err != nil {
		return nil, err
	}

	cmdSet := as.redisClient.Set(ctx, sessionKey(token), encodeSession(user.ID, createdAt), as.ttl)
	if err := cmdSet.Err(); err != nil {
		return nil, err
	}

	// add token to list of sessions
	cmdSAdd := as.redisClient.SAdd(ctx, tokensSetKey, token)
	if err := cmdSAdd.Err(); err != nil {
		return nil, err
	}

	return &LoginSession{
		Token:     token,
		UserID:    user.ID,
		CreatedAt: createdAt,
	}, nil
}

func (as *Service) Logout(ctx context.Context, token string) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "authService.logout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	deleted, err := as.redisClient.Del(ctx, sessionKey(token)).Result()
	if err != nil {
		return false, err
	}

	// remove token from the list of sessions
	cmdSRem := as.redisClient.SRem(ctx, tokensSetKey, token)
	if err := cmdSRem.Err(); err != nil {
		return false, err
	}

	return deleted > 0, nil
}

func (as *Service) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "authService.changePassword")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	user, err := as.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if !passwordMatches(oldPassword, user.PasswordHash) {
		return ErrWrongCredentials
	}
	if err := validatePassword(newPassword); err != nil {
		return err
	}

	hash, err := as.HashFunc(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	return as.users.UpdatePasswordHash(ctx, userID, hash)
}

// ScanAndClean will run through all sessions, check the TTL, and clean them if old.
// Returns the number of removed sessions.
func (as *Service) ScanAndClean(ctx context.Context) int {
	cmd := as.redisClient.SMembers(ctx, tokensSetKey)
	if err := cmd.Err(); err != nil {
		log.Errorf("!!! auth service, scan and clean, get sessions: %s", err)
		return 0
	}

	sessionTokens := cmd.Val()
	if len(sessionTokens) == 0 {
		log.Debugln("=> auth service, scan and clean abort, no sessions")
		return 0
	}

	log.Debugf("=> auth service, scan and clean [%d sessions] start ...", len(sessionTokens))
	var toRemove []string
	for _, token := range sessionTokens {
		val, err := as.redisClient.Get(ctx, sessionKey(token)).Result()
		if errors.Is(err, redis.Nil) {
			// session key already expired in redis, only the set entry is left
			toRemove = append(toRemove, token)
			continue
		}
		if err != nil {
			log.Errorf("=> auth service, scan and clean token %s: %s", token, err)
			continue
		}

		_, createdAt, err := decodeSession(val)
		if err != nil {
			log.Warnf("=> auth service, scan and clean, will remove malformed session: %s", err)
			toRemove = append(toRemove, token)
			continue
		}

		if as.now().Sub(createdAt) > as.ttl {
			toRemove = append(toRemove, token)
		}
	}

	removed := 0
	for _, token := range toRemove {
		if err := as.redisClient.Del(ctx, sessionKey(token)).Err(); err != nil {
			log.Errorf("=> auth service, clean token %s: %s", token, err)
			continue
		}

		// remove token from the list of sessions
		if err := as.redisClient.SRem(ctx, tokensSetKey, token).Err(); err != nil {
			log.Errorf("=> auth service, clean token %s: %s", token, err)
			continue
		}
		removed++
	}

	log.Debugf("=> auth service, scan and clean done, removed %d sessions", removed)
	return removed
}

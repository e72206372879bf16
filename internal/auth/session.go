package auth

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultTTL       = 24 * 7 * time.Hour
	sessionKeyPrefix = "wellness-session||"
	tokensSetKey     = "wellness-sessions"
)

type LoginSession struct {
	Token     string    `json:"token"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

func sessionKey(token string) string {
	return sessionKeyPrefix + token
}

// encodeSession stores the owner and creation time of a session as "userID|unix".
func encodeSession(userID string, createdAt time.Time) string {
	return fmt.Sprintf("%s|%d", userID, createdAt.Unix())
}

func decodeSession(val string) (userID string, createdAt time.Time, err error) {
	userID, createdAtStr, found := strings.Cut(val, "|")
	if !found || userID == "" {
		return "", time.Time{}, ErrMalformedSession
	}
	createdAtUnix, err := strconv.ParseInt(createdAtStr, 10, 64)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%w: %s", ErrMalformedSession, err)
	}
	return userID, time.Unix(createdAtUnix, 0), nil
}

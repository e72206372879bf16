package pkg

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
)

// GenerateRandomString returns s URL-safe characters from crypto/rand,
// used for session tokens.
func GenerateRandomString(s int) (string, error) {
	if s <= 0 {
		return "", errors.New("random string length must be positive")
	}
	// every 3 random bytes encode to 4 characters
	b := make([]byte, (s*3+3)/4)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b)[:s], nil
}

// EnsureDir creates dir (and parents) when missing and reports whether it did.
// An existing regular file at that path is an error.
func EnsureDir(dir string, perm os.FileMode) (bool, error) {
	stat, err := os.Stat(dir)
	switch {
	case err == nil && stat.IsDir():
		return false, nil
	case err == nil:
		return false, fmt.Errorf("%s exists and is not a directory", dir)
	case !errors.Is(err, os.ErrNotExist):
		return false, err
	}
	if err := os.MkdirAll(dir, perm); err != nil {
		return false, fmt.Errorf("create %s: %w", dir, err)
	}
	return true, nil
}

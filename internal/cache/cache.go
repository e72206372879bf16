package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const megabyte = 1024 * 1024

var ErrMiss = errors.New("cache miss")

// Cache stores JSON encoded values for a limited time.
type Cache interface {
	GetJSON(key string, dest any) error
	SetJSON(key string, value any, ttl time.Duration) error
	Clear()
}

var _ Cache = (*JSONCache)(nil)

type JSONCache struct {
	store *freecache.Cache
}

func NewJSONCache(sizeMB int) *JSONCache {
	if sizeMB <= 0 {
		sizeMB = 1
	}
	return &JSONCache{
		store: freecache.NewCache(sizeMB * megabyte),
	}
}

// GetJSON returns ErrMiss when the key is absent or expired.
func (c *JSONCache) GetJSON(key string, dest any) error {
	raw, err := c.store.Get([]byte(key))
	if err != nil {
		if errors.Is(err, freecache.ErrNotFound) {
			return ErrMiss
		}
		return fmt.Errorf("cache get [%s]: %w", key, err)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		log.Errorf("cached value for [%s] is broken, dropping it: %s", key, err)
		c.store.Del([]byte(key))
		return ErrMiss
	}
	return nil
}

func (c *JSONCache) SetJSON(key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal cache value: %w", err)
	}

	expireSeconds := int(ttl / time.Second)
	if expireSeconds <= 0 {
		expireSeconds = 1
	}
	if err := c.store.Set([]byte(key), raw, expireSeconds); err != nil {
		return fmt.Errorf("cache set [%s]: %w", key, err)
	}
	return nil
}

func (c *JSONCache) Clear() {
	c.store.Clear()
}

func (c *JSONCache) EntryCount() int64 {
	return c.store.EntryCount()
}

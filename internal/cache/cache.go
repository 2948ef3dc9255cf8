// Package cache stores opaque byte payloads with a TTL.
//
// Backends:
//   - file: one JSON envelope per key under a directory, for the CLI
//   - redis: shared cache for several preview servers
//   - none: never stores anything
//
// The genai provider caches generated record lists here so a preview server
// restart does not cost another model call.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ivlev/salesreel/internal/config"
)

// Sentinel errors for cache operations.
var (
	// ErrCacheMiss is returned by GetJSON when the key is absent or expired.
	ErrCacheMiss = errors.New("cache miss")

	// ErrUnknownKind is returned by New for an unsupported cache.kind.
	ErrUnknownKind = errors.New("unknown cache kind")
)

// Cache is implemented by every backend.
type Cache interface {
	// Get returns the stored payload and whether it was found.
	// Expired entries are reported as misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data; a ttl of zero keeps it until deleted.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	Delete(ctx context.Context, key string) error
	Close() error
}

// New builds the backend named by cfg.Kind.
func New(ctx context.Context, cfg config.CacheConfig) (Cache, error) {
	switch strings.ToLower(cfg.Kind) {
	case config.CacheFile, "":
		return NewFileCache(cfg.Dir)
	case config.CacheRedis:
		return NewRedisCache(ctx, RedisConfig{Addr: cfg.RedisAddr})
	case config.CacheNone:
		return NewNullCache(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, cfg.Kind)
}

// Hash computes a SHA-256 hash of the input data as 64 hex characters.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// Key namespaces a hash of parts under prefix: "prefix:hash(parts...)".
func Key(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	return prefix + ":" + Hash(data)
}

// GetJSON decodes a cached value into v. A missing key yields ErrCacheMiss;
// an undecodable payload is deleted and also reported as a miss.
func GetJSON(ctx context.Context, c Cache, key string, v any) error {
	data, ok, err := c.Get(ctx, key)
	if err != nil {
		return err
	}
	if !ok {
		return ErrCacheMiss
	}
	if err := json.Unmarshal(data, v); err != nil {
		_ = c.Delete(ctx, key)
		return ErrCacheMiss
	}
	return nil
}

// SetJSON encodes v and stores it under key.
func SetJSON(ctx context.Context, c Cache, key string, v any, ttl time.Duration) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode cache value: %w", err)
	}
	return c.Set(ctx, key, data, ttl)
}

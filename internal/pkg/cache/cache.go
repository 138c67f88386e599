// Package cache defines the response-cache port used by the tool handlers,
// plus a Redis implementation and a no-op for running without Redis.
package cache

import (
	"context"
	"fmt"
	"time"
)

// Cache is the port. A miss is an empty string with a nil error.
type Cache interface {
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	GenerateKey(operation, key string) string
}

// Nop is a Cache that stores nothing. Used when no Redis address is
// configured.
type Nop struct{}

func (Nop) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return nil
}

func (Nop) Get(ctx context.Context, key string) (string, error) {
	return "", nil
}

func (Nop) GenerateKey(operation, key string) string {
	return fmt.Sprintf("nop:%s:%s", operation, key)
}

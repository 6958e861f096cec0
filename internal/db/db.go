// Package db defines the key-value store contract used for caching.
package db

import (
	"context"
	"time"
)

// KVStore provides the key-value operations the cache layer needs.
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Ping(ctx context.Context) error
	WaitForReady(ctx context.Context, timeout time.Duration) error
	Close()
}

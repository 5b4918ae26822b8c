package cache

import (
	"context"
	"errors"
)

// ErrMiss is returned by Store.Get when the key holds no value.
var ErrMiss = errors.New("cache: key not found")

// Store is a flat string key-value slot store, the client-side persistence
// used for the video cache and the redirect entry.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Del(ctx context.Context, keys ...string) error
	Close() error
}

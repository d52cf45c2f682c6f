// Package keyring shares pools of third-party API keys between callers and
// keeps each key under a per-window request quota.
//
// Every named service owns one Limiter, held by a Registry. A Limiter walks
// its keys in priority order and hands out the first one whose usage counter
// is below quota. Counters live in the shared cache and start a fixed window
// on their first increment; when the window lapses the counter disappears
// and the key becomes available again.
//
// Key selection is not atomic: concurrent callers may pick the same key
// before either of them records usage. Quotas are advisory.
package keyring

import (
	"context"
	"errors"
	"net/url"
	"time"
)

var (
	// ErrKeysExhausted is returned when every key of a pool is at quota.
	ErrKeysExhausted = errors.New("all api keys have reached their limit")

	// ErrPoolNotConfigured is returned when no pool is registered under the
	// requested service name.
	ErrPoolNotConfigured = errors.New("key pool not configured")

	// ErrUnknownKey is returned when recording usage for a key that is not
	// part of the pool.
	ErrUnknownKey = errors.New("api key does not belong to the pool")

	// ErrUnexpectedStatus is returned by FetchFromService for non-2xx
	// responses.
	ErrUnexpectedStatus = errors.New("unexpected response status")
)

const (
	DefaultMaxRequests = 10
	DefaultWindow      = 10 * time.Second
	DefaultKeyParam    = "apikey"
)

// Counter is the part of cache.Store used to track key usage.
type Counter interface {
	Get(ctx context.Context, key string) (string, bool)
	Incr(ctx context.Context, key string) int64
	Expire(ctx context.Context, key string, ttl time.Duration)
}

// Service gives access to the pools by service name.
type Service interface {
	// GetAvailableKey returns the first key of the service pool that is
	// under quota.
	GetAvailableKey(ctx context.Context, service string) (string, error)

	// IncrementKeyUsage records one request made with apiKey and returns
	// the usage in the current window.
	IncrementKeyUsage(ctx context.Context, service, apiKey string) (int64, error)

	// FetchFromService performs a GET against baseURL with an available key
	// merged into params and returns the response body.
	FetchFromService(ctx context.Context, service, baseURL string, params url.Values) ([]byte, error)
}

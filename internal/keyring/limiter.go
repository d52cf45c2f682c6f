package keyring

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/gabapcia/txnotify/internal/pkg/logger"

	"github.com/hashicorp/go-retryablehttp"
)

// Limiter hands out the keys of one service. It is safe for concurrent use;
// its pool can be replaced at any time without touching usage counters.
type Limiter struct {
	service string
	store   Counter
	client  *retryablehttp.Client
	metrics *metrics

	mu   sync.RWMutex
	pool Pool
}

// Service returns the name the limiter is registered under.
func (l *Limiter) Service() string {
	return l.service
}

// Pool returns a copy of the current pool.
func (l *Limiter) Pool() Pool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	p := l.pool
	p.Keys = append([]string(nil), l.pool.Keys...)
	return p
}

func (l *Limiter) setPool(p Pool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.pool = p
}

// usageKey is the cache key of the counter for apiKey.
//
// Format: "{service}_key_usage:{apiKey}"
func (l *Limiter) usageKey(apiKey string) string {
	return fmt.Sprintf("%s_key_usage:%s", l.service, apiKey)
}

// GetAvailableKey returns the first key, in priority order, whose usage in
// the current window is absent or below quota.
func (l *Limiter) GetAvailableKey(ctx context.Context) (string, error) {
	pool := l.Pool()

	for _, apiKey := range pool.Keys {
		raw, found := l.store.Get(ctx, l.usageKey(apiKey))
		if !found {
			return apiKey, nil
		}

		usage, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || usage < int64(pool.MaxRequests) {
			return apiKey, nil
		}
	}

	l.metrics.record(ctx, l.service, outcomeExhausted)
	logger.Warn(ctx, "api keys exhausted",
		"keyring.service", l.service,
		"keyring.keys", len(pool.Keys),
	)

	return "", fmt.Errorf("%w: %s", ErrKeysExhausted, l.service)
}

// IncrementKeyUsage records one request made with apiKey. The first
// increment of a window starts the window.
func (l *Limiter) IncrementKeyUsage(ctx context.Context, apiKey string) (int64, error) {
	pool := l.Pool()
	if !pool.has(apiKey) {
		return 0, fmt.Errorf("%w: %s", ErrUnknownKey, l.service)
	}

	key := l.usageKey(apiKey)

	usage := l.store.Incr(ctx, key)
	if usage == 1 {
		l.store.Expire(ctx, key, pool.Window)
	}

	return usage, nil
}

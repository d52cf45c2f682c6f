package cache

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/gabapcia/txnotify/internal/pkg/types"

	"github.com/jellydator/ttlcache/v3"
)

// memory is the in-process Backend. Items are purged lazily: an expired item
// is invisible to reads and is dropped the first time a read meets it.
//
// Values are either a string (plain values and counters) or a
// types.Set[string].
type memory struct {
	mu    sync.Mutex
	items *ttlcache.Cache[string, any]
}

// Compile-time assertion that memory implements the Backend interface.
var _ Backend = (*memory)(nil)

func newMemory() *memory {
	return &memory{
		items: ttlcache.New(
			ttlcache.WithDisableTouchOnHit[string, any](),
		),
	}
}

// lookup returns the live item at key, deleting it when it has expired.
// Callers must hold m.mu.
func (m *memory) lookup(key string) *ttlcache.Item[string, any] {
	item := m.items.Get(key)
	if item == nil {
		m.items.Delete(key)
		return nil
	}

	return item
}

// remainingTTL returns the TTL to carry over when an item is rewritten, or
// ttlcache.NoTTL when the item never expires.
func remainingTTL(item *ttlcache.Item[string, any]) time.Duration {
	if item.ExpiresAt().IsZero() {
		return ttlcache.NoTTL
	}

	if d := time.Until(item.ExpiresAt()); d > 0 {
		return d
	}

	// About to expire; keep it for the shortest representable time.
	return time.Nanosecond
}

func (m *memory) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	item := m.lookup(key)
	if item == nil {
		return "", false, nil
	}

	value, ok := item.Value().(string)
	if !ok {
		return "", false, ErrWrongType
	}

	return value, true, nil
}

func (m *memory) Set(_ context.Context, key, value string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if ttl <= 0 {
		ttl = ttlcache.NoTTL
	}

	m.items.Set(key, value, ttl)
	return nil
}

func (m *memory) Del(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.items.Delete(key)
	return nil
}

func (m *memory) SAdd(_ context.Context, key, member string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if item := m.lookup(key); item != nil {
		set, ok := item.Value().(types.Set[string])
		if !ok {
			return false, ErrWrongType
		}
		return set.Add(member) == 1, nil
	}

	m.items.Set(key, types.NewSet(member), ttlcache.NoTTL)
	return true, nil
}

func (m *memory) SRem(_ context.Context, key, member string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	item := m.lookup(key)
	if item == nil {
		return false, nil
	}

	set, ok := item.Value().(types.Set[string])
	if !ok {
		return false, ErrWrongType
	}

	removed := set.Delete(member) == 1
	if len(set) == 0 {
		m.items.Delete(key)
	}

	return removed, nil
}

func (m *memory) SMembers(_ context.Context, key string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	item := m.lookup(key)
	if item == nil {
		return []string{}, nil
	}

	set, ok := item.Value().(types.Set[string])
	if !ok {
		return nil, ErrWrongType
	}

	return set.ToSlice(), nil
}

// Incr increments the decimal counter at key. A string that is not a number
// is treated as 0; a set fails with ErrWrongType.
func (m *memory) Incr(_ context.Context, key string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var (
		current int64
		ttl     = ttlcache.NoTTL
	)
	if item := m.lookup(key); item != nil {
		s, ok := item.Value().(string)
		if !ok {
			return 0, ErrWrongType
		}
		current, _ = strconv.ParseInt(s, 10, 64)
		ttl = remainingTTL(item)
	}

	current++
	m.items.Set(key, strconv.FormatInt(current, 10), ttl)
	return current, nil
}

func (m *memory) Expire(_ context.Context, key string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	item := m.lookup(key)
	if item == nil {
		return nil
	}

	if ttl <= 0 {
		m.items.Delete(key)
		return nil
	}

	m.items.Set(key, item.Value(), ttl)
	return nil
}

// Package cache implements the shared key/value, set and counter store used
// by the key pools and the webhook engine.
//
// A Store wraps a durable Backend (redis in production). The first failed
// operation against it switches the Store, for the rest of its life, to an
// in-process backend with the same TTL semantics, and the failed operation
// is replayed there. Store methods never return errors.
//
// Data held only by the durable backend before the switch is not visible
// afterwards.
package cache

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/gabapcia/txnotify/internal/pkg/logger"
)

// DefaultTTL is applied by Set when no positive TTL is given.
const DefaultTTL = time.Hour

// Mode is the health state of a Store.
type Mode int32

const (
	// ModeDurable serves operations from the durable backend.
	ModeDurable Mode = iota
	// ModeMemory serves operations from process memory. It is terminal.
	ModeMemory
)

func (m Mode) String() string {
	switch m {
	case ModeDurable:
		return "durable"
	case ModeMemory:
		return "memory"
	default:
		return "unknown"
	}
}

// Store is safe for concurrent use.
type Store struct {
	durable Backend
	memory  *memory
	mode    atomic.Int32
}

// New creates a Store backed by durable. A nil durable backend yields a Store
// that starts, and stays, in ModeMemory.
func New(durable Backend) *Store {
	s := &Store{
		durable: durable,
		memory:  newMemory(),
	}

	if durable == nil {
		s.mode.Store(int32(ModeMemory))
	}

	return s
}

// NewMemory creates a Store that only uses process memory.
func NewMemory() *Store {
	return New(nil)
}

// Mode returns the current health state.
func (s *Store) Mode() Mode {
	return Mode(s.mode.Load())
}

// degrade performs the one-way durable to memory transition.
func (s *Store) degrade(ctx context.Context, op, key string, err error) {
	if s.mode.CompareAndSwap(int32(ModeDurable), int32(ModeMemory)) {
		logger.Error(ctx, "durable cache unavailable, switching to in-memory store",
			"cache.operation", op,
			"cache.key", key,
			"error", err,
		)
	}
}

// do runs fn against the durable backend while the Store is healthy and
// falls back to memory when it fails. ErrWrongType and errors caused by the
// caller's own context ending are not backend failures: they yield the zero
// value and leave the mode untouched.
func do[T any](ctx context.Context, s *Store, op, key string, fn func(Backend) (T, error)) T {
	if s.Mode() == ModeDurable {
		v, err := fn(s.durable)
		if err == nil {
			return v
		}

		if errors.Is(err, ErrWrongType) {
			logger.Warn(ctx, "cache operation on a key of the wrong type",
				"cache.operation", op,
				"cache.key", key,
				"error", err,
			)

			var zero T
			return zero
		}

		if ctx.Err() != nil && (errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)) {
			logger.Warn(ctx, "cache operation aborted",
				"cache.operation", op,
				"cache.key", key,
				"error", err,
			)

			var zero T
			return zero
		}

		s.degrade(ctx, op, key, err)
	}

	v, err := fn(s.memory)
	if err != nil {
		logger.Warn(ctx, "in-memory cache operation failed",
			"cache.operation", op,
			"cache.key", key,
			"error", err,
		)
	}

	return v
}

type lookup struct {
	value string
	found bool
}

// Get returns the value at key and whether it exists.
func (s *Store) Get(ctx context.Context, key string) (string, bool) {
	r := do(ctx, s, "get", key, func(b Backend) (lookup, error) {
		v, found, err := b.Get(ctx, key)
		return lookup{value: v, found: found}, err
	})

	return r.value, r.found
}

// Set stores value at key for ttl, or DefaultTTL when ttl is not positive.
func (s *Store) Set(ctx context.Context, key, value string, ttl time.Duration) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	do(ctx, s, "set", key, func(b Backend) (struct{}, error) {
		return struct{}{}, b.Set(ctx, key, value, ttl)
	})
}

// Del removes key.
func (s *Store) Del(ctx context.Context, key string) {
	do(ctx, s, "del", key, func(b Backend) (struct{}, error) {
		return struct{}{}, b.Del(ctx, key)
	})
}

// SAdd adds member to the set at key. It returns 1 if the member is new,
// 0 otherwise.
func (s *Store) SAdd(ctx context.Context, key, member string) int {
	added := do(ctx, s, "sadd", key, func(b Backend) (bool, error) {
		return b.SAdd(ctx, key, member)
	})

	if added {
		return 1
	}
	return 0
}

// SRem removes member from the set at key. It returns 1 if the member was
// removed, 0 otherwise.
func (s *Store) SRem(ctx context.Context, key, member string) int {
	removed := do(ctx, s, "srem", key, func(b Backend) (bool, error) {
		return b.SRem(ctx, key, member)
	})

	if removed {
		return 1
	}
	return 0
}

// SMembers lists the members of the set at key. Order is unspecified.
func (s *Store) SMembers(ctx context.Context, key string) []string {
	members := do(ctx, s, "smembers", key, func(b Backend) ([]string, error) {
		return b.SMembers(ctx, key)
	})

	if members == nil {
		return []string{}
	}
	return members
}

// Incr increments the counter at key, creating it at 0 first if needed, and
// returns the new value.
func (s *Store) Incr(ctx context.Context, key string) int64 {
	return do(ctx, s, "incr", key, func(b Backend) (int64, error) {
		return b.Incr(ctx, key)
	})
}

// Expire sets the TTL of key. A non-positive ttl deletes it.
func (s *Store) Expire(ctx context.Context, key string, ttl time.Duration) {
	if ttl <= 0 {
		s.Del(ctx, key)
		return
	}

	do(ctx, s, "expire", key, func(b Backend) (struct{}, error) {
		return struct{}{}, b.Expire(ctx, key, ttl)
	})
}

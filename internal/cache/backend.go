package cache

import (
	"context"
	"errors"
	"time"
)

// ErrWrongType is returned by a Backend when an operation meets a key that
// holds the other kind of value, e.g. SAdd on a plain string. It mirrors
// redis' WRONGTYPE reply and is not a backend failure.
var ErrWrongType = errors.New("operation against a key holding the wrong kind of value")

// Backend is the storage contract the Store delegates to. Values are plain
// text; counters are stored as their decimal representation.
//
// Implementations must keep redis semantics:
//   - Incr creates a missing key at 0 before incrementing and keeps the TTL
//     of an existing key.
//   - Sets and counters have no expiration unless Expire is called.
//   - String operations on a set, and set operations on a string, fail with
//     ErrWrongType.
type Backend interface {
	// Get returns the value stored at key. found is false when the key is
	// absent or expired.
	Get(ctx context.Context, key string) (value string, found bool, err error)

	// Set stores value at key, replacing any previous value and TTL.
	Set(ctx context.Context, key, value string, ttl time.Duration) error

	// Del removes key. Deleting a missing key is not an error.
	Del(ctx context.Context, key string) error

	// SAdd adds member to the set at key and reports whether it was new.
	SAdd(ctx context.Context, key, member string) (bool, error)

	// SRem removes member from the set at key and reports whether it was
	// present.
	SRem(ctx context.Context, key, member string) (bool, error)

	// SMembers lists the members of the set at key in no particular order.
	SMembers(ctx context.Context, key string) ([]string, error)

	// Incr increments the counter at key and returns the new value.
	Incr(ctx context.Context, key string) (int64, error)

	// Expire sets the TTL of an existing key.
	Expire(ctx context.Context, key string, ttl time.Duration) error
}

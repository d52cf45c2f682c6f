// Package webhook delivers transaction events to the callback URLs
// subscribed to a wallet.
//
// Each (wallet, txID, callback URL) triple has a delivery record in the
// shared cache holding the confirmation count last delivered, the attempt
// counter and whether the last attempt succeeded. The record drives three
// things:
//
//   - Dedup: once the record for the same confirmation count reaches the
//     duplicate limit, delivered or not, further sends are dropped without a
//     request.
//   - Retries: a failed attempt bumps the counter and, while it stays below
//     both limits, queues the delivery for the single retry worker.
//   - Event kind: new_transaction when no record exists, update_transaction
//     when one does, confirmed_transaction once the transaction is confirmed.
//
// Destinations are independent: a failing URL never delays or blocks another
// one. Delivery failures are logged, never returned.
package webhook

import (
	"context"
	"errors"
	"time"
)

// ErrUnexpectedStatus marks a delivery answered with a status other than 200.
var ErrUnexpectedStatus = errors.New("unexpected webhook response status")

// RecordTTL is how long a delivery record lives after its last write.
const RecordTTL = time.Hour

// Service sends events to subscribers.
type Service interface {
	// Send delivers event to every callback URL of event.Wallet, or to the
	// default URL when the wallet has none. It waits for the first attempt
	// of every destination; failed destinations are retried in the
	// background. Only validation errors are returned.
	Send(ctx context.Context, event Event) error

	// WasSent reports whether event already reached callbackURL as many
	// times as the duplicate limit allows: the record is confirmed, has the
	// same confirmation count and is at the limit.
	WasSent(ctx context.Context, event Event, callbackURL string) bool

	// Wait blocks until no retry is pending or ctx is done.
	Wait(ctx context.Context) error
}

// SubscriberLookup resolves the callback URLs registered for a wallet. It
// returns an empty list when there are none.
type SubscriberLookup interface {
	CallbackURLs(ctx context.Context, wallet string) ([]string, error)
}

// RecordStore is the part of cache.Store used for delivery records.
type RecordStore interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string, ttl time.Duration)
}

package webhook

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gabapcia/txnotify/internal/pkg/logger"
)

// Record is the delivery state of one (wallet, txID, callback URL) triple.
type Record struct {
	Confirmations int  `json:"confirmations"`
	Attempts      int  `json:"attempts"`
	Confirmed     bool `json:"confirmed"`
}

// recordKey returns the cache key of the delivery record.
//
// Format: "webhook:{wallet}:{txID}:{callbackURL}"
func recordKey(wallet, txID, callbackURL string) string {
	return fmt.Sprintf("webhook:%s:%s:%s", wallet, txID, callbackURL)
}

// loadRecord returns the stored record. An unreadable record counts as
// missing.
func (s *service) loadRecord(ctx context.Context, key string) (Record, bool) {
	raw, found := s.store.Get(ctx, key)
	if !found {
		return Record{}, false
	}

	var r Record
	if err := json.Unmarshal([]byte(raw), &r); err != nil {
		logger.Warn(ctx, "discarding unreadable delivery record",
			"webhook.record_key", key,
			"error", err,
		)
		return Record{}, false
	}

	return r, true
}

func (s *service) saveRecord(ctx context.Context, key string, r Record) {
	raw, err := json.Marshal(r)
	if err != nil {
		logger.Error(ctx, "failed to encode delivery record",
			"webhook.record_key", key,
			"error", err,
		)
		return
	}

	s.store.Set(ctx, key, string(raw), RecordTTL)
}

// atLimit reports whether r already holds MAX_DUPLICATES attempts for the
// given confirmation count. Failed attempts count as much as delivered ones.
func (s *service) atLimit(r Record, confirmations int) bool {
	return r.Confirmations == confirmations && r.Attempts >= s.cfg.maxDuplicates
}

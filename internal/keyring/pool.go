package keyring

import (
	"slices"
	"time"

	"github.com/gabapcia/txnotify/internal/pkg/validator"
)

// Pool is the configuration of one service's keys.
type Pool struct {
	// Keys in priority order.
	Keys []string `validate:"required,min=1,dive,required"`

	// MaxRequests is the quota of each key per window.
	MaxRequests int `validate:"gt=0"`

	// Window is the fixed period after which a key's usage resets.
	Window time.Duration `validate:"gt=0"`

	// KeyParam is the query parameter that carries the key.
	KeyParam string `validate:"required"`
}

// withDefaults fills zero fields with the package defaults.
func (p Pool) withDefaults() Pool {
	if p.MaxRequests == 0 {
		p.MaxRequests = DefaultMaxRequests
	}

	if p.Window == 0 {
		p.Window = DefaultWindow
	}

	if p.KeyParam == "" {
		p.KeyParam = DefaultKeyParam
	}

	p.Keys = slices.Clone(p.Keys)
	return p
}

func (p Pool) validate() error {
	return validator.Validate(p)
}

func (p Pool) has(apiKey string) bool {
	return slices.Contains(p.Keys, apiKey)
}

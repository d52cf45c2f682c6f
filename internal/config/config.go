// Package config loads the process settings from environment variables.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/gabapcia/txnotify/internal/keyring"
	"github.com/gabapcia/txnotify/internal/pkg/validator"

	"github.com/kelseyhightower/envconfig"
)

// Cache modes accepted by CACHE_MODE.
const (
	CacheModeRedis  = "REDIS"
	CacheModeMemory = "MEMORY"
)

// Config is the flat process configuration.
type Config struct {
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	TelemetryEnabled     bool   `envconfig:"TELEMETRY_ENABLED" default:"false"`
	TelemetryServiceName string `envconfig:"TELEMETRY_SERVICE_NAME" default:"txnotify"`

	CacheMode            string `envconfig:"CACHE_MODE" default:"MEMORY" validate:"oneof=REDIS MEMORY"`
	RedisURL             string `envconfig:"REDIS_URL" default:"redis://localhost:6379/0"`
	RedisConnectAttempts uint   `envconfig:"REDIS_CONNECT_ATTEMPTS" default:"3" validate:"gt=0"`

	WebhookURL    string `envconfig:"WEBHOOK_URL" validate:"omitempty,http_url"`
	WebhookSecret string `envconfig:"WEBHOOK_SECRET"`
	MaxRetries    int    `envconfig:"MAX_RETRIES" default:"10" validate:"gte=0"`
	// Milliseconds.
	RetryDelayMS  int `envconfig:"RETRY_DELAY" default:"5000" validate:"gte=0"`
	MaxDuplicates int `envconfig:"MAX_DUPLICATES" default:"3" validate:"gt=0"`
	// Milliseconds.
	RequestTimeoutMS int `envconfig:"REQUEST_TIMEOUT" default:"10000" validate:"gt=0"`

	SupportedAssets []string `envconfig:"SUPPORTED_ASSETS" default:"trc20:usdt,erc20:usdt,polygon:usdt,bitcoin:btc,erc20:eth,trc20:trx,ripple:xrp,bep20:usdt,arbitrum:usdt" validate:"dive,asset"`

	KeyringServices []string `envconfig:"KEYRING_SERVICES"`

	// Pools holds one entry per KEYRING_SERVICES name.
	Pools map[string]PoolConfig `ignored:"true"`
}

// PoolConfig is read from variables prefixed with the upper-cased service
// name, e.g. ETHERSCAN_API_KEYS.
type PoolConfig struct {
	APIKeys     []string `envconfig:"API_KEYS" required:"true"`
	MaxRequests int      `envconfig:"MAX_REQUESTS" default:"10"`
	// Seconds.
	ResetInterval int    `envconfig:"RESET_INTERVAL" default:"10"`
	KeyParam      string `envconfig:"KEY_PARAM" default:"apikey"`
}

// Pool converts the settings into a keyring.Pool.
func (p PoolConfig) Pool() keyring.Pool {
	return keyring.Pool{
		Keys:        p.APIKeys,
		MaxRequests: p.MaxRequests,
		Window:      time.Duration(p.ResetInterval) * time.Second,
		KeyParam:    p.KeyParam,
	}
}

func (c *Config) RetryDelay() time.Duration {
	return time.Duration(c.RetryDelayMS) * time.Millisecond
}

func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutMS) * time.Millisecond
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	cfg.CacheMode = strings.ToUpper(strings.TrimSpace(cfg.CacheMode))
	if err := validator.Validate(cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	cfg.Pools = make(map[string]PoolConfig, len(cfg.KeyringServices))
	for _, service := range cfg.KeyringServices {
		service = strings.TrimSpace(service)
		if service == "" {
			continue
		}

		var pc PoolConfig
		if err := envconfig.Process(service, &pc); err != nil {
			return nil, fmt.Errorf("load %s pool: %w", service, err)
		}
		cfg.Pools[service] = pc
	}

	return &cfg, nil
}

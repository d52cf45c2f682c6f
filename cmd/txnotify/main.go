package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gabapcia/txnotify/internal/cache"
	"github.com/gabapcia/txnotify/internal/config"
	"github.com/gabapcia/txnotify/internal/handlers/cli"
	"github.com/gabapcia/txnotify/internal/infra/storage/kv"
	"github.com/gabapcia/txnotify/internal/infra/storage/redis"
	"github.com/gabapcia/txnotify/internal/keyring"
	"github.com/gabapcia/txnotify/internal/pkg/logger"
	"github.com/gabapcia/txnotify/internal/pkg/resilience/retry"
	"github.com/gabapcia/txnotify/internal/pkg/telemetry"
	"github.com/gabapcia/txnotify/internal/walletregistry"
	"github.com/gabapcia/txnotify/internal/webhook"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		logger.Error(ctx, "txnotify failed", "error", err)
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if cfg.TelemetryEnabled {
		shutdown, err := telemetry.Init(ctx, cfg.TelemetryServiceName)
		if err != nil {
			return err
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
			defer cancel()
			_ = shutdown(shutdownCtx)
		}()
	}

	if err := logger.Init(logger.WithLevel(cfg.LogLevel)); err != nil {
		return err
	}
	defer logger.Sync()

	store, closeStore := openStore(ctx, cfg)
	defer closeStore()

	keys := keyring.NewRegistry(store, keyring.WithRequestTimeout(cfg.RequestTimeout()))
	for service, pc := range cfg.Pools {
		if _, err := keys.Register(service, pc.Pool()); err != nil {
			return err
		}
	}

	wallets := walletregistry.New(
		kv.NewSubscriptions(store),
		walletregistry.WithSupportedAssets(cfg.SupportedAssets...),
		walletregistry.WithDefaultCallbackURL(cfg.WebhookURL),
	)

	hooks := webhook.New(store, wallets,
		webhook.WithDefaultURL(cfg.WebhookURL),
		webhook.WithSecret(cfg.WebhookSecret),
		webhook.WithMaxRetries(cfg.MaxRetries),
		webhook.WithRetryDelay(cfg.RetryDelay()),
		webhook.WithMaxDuplicates(cfg.MaxDuplicates),
		webhook.WithRequestTimeout(cfg.RequestTimeout()),
	)

	return cli.Run(ctx, wallets, hooks, keys)
}

// openStore returns a redis backed store in REDIS mode. When redis cannot be
// reached after the configured attempts the store starts in memory mode.
func openStore(ctx context.Context, cfg *config.Config) (*cache.Store, func()) {
	noop := func() {}

	if cfg.CacheMode != config.CacheModeRedis {
		logger.Info(ctx, "using in-memory cache")
		return cache.NewMemory(), noop
	}

	r := retry.New(
		retry.WithAttempts(cfg.RedisConnectAttempts),
		retry.WithDelay(500*time.Millisecond),
		retry.WithOnRetry(func(attempt uint, err error) {
			logger.Warn(ctx, "redis connection attempt failed", "attempt", attempt+1, "error", err)
		}),
	)

	var backend interface {
		cache.Backend
		Close() error
	}
	err := r.Execute(ctx, func() error {
		c, err := redis.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			return err
		}
		backend = c
		return nil
	})
	if err != nil {
		logger.Error(ctx, "redis unavailable, using in-memory cache", "error", err)
		return cache.NewMemory(), noop
	}

	logger.Info(ctx, "connected to redis")
	return cache.New(backend), func() { _ = backend.Close() }
}

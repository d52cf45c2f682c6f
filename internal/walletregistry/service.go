package walletregistry

import (
	"context"
	"strings"

	"github.com/gabapcia/txnotify/internal/pkg/types"
)

// DefaultSupportedAssets lists the network:coin pairs accepted when no other
// list is configured.
var DefaultSupportedAssets = []string{
	"trc20:usdt",
	"erc20:usdt",
	"polygon:usdt",
	"bitcoin:btc",
	"erc20:eth",
	"trc20:trx",
	"ripple:xrp",
	"bep20:usdt",
	"arbitrum:usdt",
}

// Service manages which wallets are watched and where their notifications
// are delivered.
//
// Implementations are responsible for validating input and delegating
// persistence to the configured SubscriptionStorage.
type Service interface {
	// Subscribe starts watching wallet for the network:coin asset and, when
	// callbackURL is not empty, adds it to the wallet's callbacks. The
	// returned flag is true when the wallet was not watched for that asset
	// before.
	Subscribe(ctx context.Context, network, coin, wallet, callbackURL string) (Subscription, bool, error)

	// Unsubscribe stops watching wallet for every supported asset and drops
	// its callbacks. It returns ErrWalletNotFound when the wallet was not
	// watched at all.
	Unsubscribe(ctx context.Context, wallet string) error

	// Subscriptions lists every watched wallet with its callback URLs.
	Subscriptions(ctx context.Context) ([]Subscription, error)

	// CallbackURLs returns the callback URLs registered for wallet.
	CallbackURLs(ctx context.Context, wallet string) ([]string, error)
}

// config holds optional settings of the service.
type config struct {
	supportedAssets []string
	defaultURL      string
}

// Option configures the service.
type Option func(*config)

// WithSupportedAssets replaces the accepted network:coin pairs.
func WithSupportedAssets(assets ...string) Option {
	return func(c *config) {
		c.supportedAssets = assets
	}
}

// WithDefaultCallbackURL sets the URL reported by Subscriptions for wallets
// without callbacks of their own.
func WithDefaultCallbackURL(u string) Option {
	return func(c *config) {
		c.defaultURL = u
	}
}

// service is the concrete implementation of the Service interface.
type service struct {
	storage         SubscriptionStorage
	supportedAssets types.Set[string]
	defaultURL      string
}

// Ensure compile-time compliance with the Service interface.
var _ Service = (*service)(nil)

// New creates the walletregistry service on top of storage.
func New(storage SubscriptionStorage, opts ...Option) *service {
	cfg := config{
		supportedAssets: DefaultSupportedAssets,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	assets := types.NewSet[string]()
	for _, a := range cfg.supportedAssets {
		if a = strings.ToLower(strings.TrimSpace(a)); a != "" {
			assets.Add(a)
		}
	}

	return &service{
		storage:         storage,
		supportedAssets: assets,
		defaultURL:      cfg.defaultURL,
	}
}

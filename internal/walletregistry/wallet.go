package walletregistry

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gabapcia/txnotify/internal/pkg/logger"
	"github.com/gabapcia/txnotify/internal/pkg/types"
	"github.com/gabapcia/txnotify/internal/pkg/validator"
)

var (
	// ErrUnsupportedAsset is returned when subscribing to a network:coin pair
	// that is not configured.
	ErrUnsupportedAsset = errors.New("unsupported network or coin")

	// ErrWalletNotFound is returned when unsubscribing a wallet that is not
	// watched for any asset.
	ErrWalletNotFound = errors.New("wallet is not being monitored")
)

// WalletIdentifier identifies a watched wallet for one asset. Network and
// coin are lower case.
type WalletIdentifier struct {
	Network string `validate:"required"`
	Coin    string `validate:"required"`
	Address string `validate:"wallet"`
}

// Asset returns the "network:coin" pair of the identifier.
func (id WalletIdentifier) Asset() string {
	return id.Network + ":" + id.Coin
}

// Subscription is a watched wallet together with its callback URLs.
type Subscription struct {
	WalletIdentifier
	CallbackURLs []string
}

// SubscriptionStorage persists watched wallets and their callback URLs.
type SubscriptionStorage interface {
	// RegisterWallet marks id as watched and reports whether it was new.
	RegisterWallet(ctx context.Context, id WalletIdentifier) (bool, error)

	// UnregisterWallet stops watching id and reports whether it was watched.
	UnregisterWallet(ctx context.Context, id WalletIdentifier) (bool, error)

	// ListWallets returns every watched wallet.
	ListWallets(ctx context.Context) ([]WalletIdentifier, error)

	// AddCallbackURL registers callbackURL for address. Adding a URL twice
	// keeps a single copy.
	AddCallbackURL(ctx context.Context, address, callbackURL string) error

	// CallbackURLs returns the callback URLs of address.
	CallbackURLs(ctx context.Context, address string) ([]string, error)

	// ClearCallbackURLs removes every callback URL of address.
	ClearCallbackURLs(ctx context.Context, address string) error
}

// buildWalletIdentifier normalizes and validates the identifier parts.
func buildWalletIdentifier(network, coin, address string) (WalletIdentifier, error) {
	id := WalletIdentifier{
		Network: strings.ToLower(strings.TrimSpace(network)),
		Coin:    strings.ToLower(strings.TrimSpace(coin)),
		Address: strings.TrimSpace(address),
	}

	return id, validator.Validate(id)
}

func (s *service) Subscribe(ctx context.Context, network, coin, wallet, callbackURL string) (Subscription, bool, error) {
	id, err := buildWalletIdentifier(network, coin, wallet)
	if err != nil {
		return Subscription{}, false, err
	}

	if callbackURL != "" {
		if err := validator.Var(callbackURL, "http_url"); err != nil {
			return Subscription{}, false, err
		}
	}

	if !s.supportedAssets.Has(id.Asset()) {
		return Subscription{}, false, fmt.Errorf("%w: %s", ErrUnsupportedAsset, id.Asset())
	}

	added, err := s.storage.RegisterWallet(ctx, id)
	if err != nil {
		return Subscription{}, false, err
	}

	if callbackURL != "" {
		if err := s.storage.AddCallbackURL(ctx, id.Address, callbackURL); err != nil {
			return Subscription{}, false, err
		}
	}

	urls, err := s.storage.CallbackURLs(ctx, id.Address)
	if err != nil {
		return Subscription{}, false, err
	}

	logger.Info(ctx, "wallet subscribed",
		"wallet.asset", id.Asset(),
		"wallet.address", id.Address,
		"wallet.new", added,
	)

	return Subscription{WalletIdentifier: id, CallbackURLs: urls}, added, nil
}

func (s *service) Unsubscribe(ctx context.Context, wallet string) error {
	wallet = strings.TrimSpace(wallet)
	if err := validator.Var(wallet, "wallet"); err != nil {
		return err
	}

	removed := false
	for _, asset := range types.Sorted(s.supportedAssets) {
		network, coin, _ := strings.Cut(asset, ":")

		ok, err := s.storage.UnregisterWallet(ctx, WalletIdentifier{Network: network, Coin: coin, Address: wallet})
		if err != nil {
			return err
		}
		removed = removed || ok
	}

	if err := s.storage.ClearCallbackURLs(ctx, wallet); err != nil {
		return err
	}

	if !removed {
		return fmt.Errorf("%w: %s", ErrWalletNotFound, wallet)
	}

	logger.Info(ctx, "wallet unsubscribed", "wallet.address", wallet)
	return nil
}

func (s *service) Subscriptions(ctx context.Context) ([]Subscription, error) {
	ids, err := s.storage.ListWallets(ctx)
	if err != nil {
		return nil, err
	}

	subs := make([]Subscription, 0, len(ids))
	for _, id := range ids {
		urls, err := s.storage.CallbackURLs(ctx, id.Address)
		if err != nil {
			return nil, err
		}

		if len(urls) == 0 && s.defaultURL != "" {
			urls = []string{s.defaultURL}
		}

		subs = append(subs, Subscription{WalletIdentifier: id, CallbackURLs: urls})
	}

	return subs, nil
}

func (s *service) CallbackURLs(ctx context.Context, wallet string) ([]string, error) {
	return s.storage.CallbackURLs(ctx, wallet)
}

// Package kv keeps wallet subscriptions in the shared cache.Store, so they
// follow the store to memory when the durable backend fails.
package kv

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/gabapcia/txnotify/internal/walletregistry"
)

// activeWalletsKey holds one "network:coin:wallet" member per watched wallet.
const activeWalletsKey = "active_wallets"

// callbacksKey returns the set holding the callback URLs of wallet.
//
// Format: "wallet:{wallet}:callback"
func callbacksKey(wallet string) string {
	return fmt.Sprintf("wallet:%s:callback", wallet)
}

func walletMember(id walletregistry.WalletIdentifier) string {
	return id.Network + ":" + id.Coin + ":" + id.Address
}

// SetStore is the part of cache.Store used for subscriptions.
type SetStore interface {
	SAdd(ctx context.Context, key, member string) int
	SRem(ctx context.Context, key, member string) int
	SMembers(ctx context.Context, key string) []string
	Del(ctx context.Context, key string)
}

type subscriptions struct {
	store SetStore
}

// Compile-time assertion that *subscriptions satisfies walletregistry.SubscriptionStorage.
var _ walletregistry.SubscriptionStorage = (*subscriptions)(nil)

// NewSubscriptions returns a walletregistry.SubscriptionStorage over store.
// The store never fails, so neither do its methods.
func NewSubscriptions(store SetStore) *subscriptions {
	return &subscriptions{store: store}
}

func (s *subscriptions) RegisterWallet(ctx context.Context, id walletregistry.WalletIdentifier) (bool, error) {
	return s.store.SAdd(ctx, activeWalletsKey, walletMember(id)) == 1, nil
}

func (s *subscriptions) UnregisterWallet(ctx context.Context, id walletregistry.WalletIdentifier) (bool, error) {
	return s.store.SRem(ctx, activeWalletsKey, walletMember(id)) == 1, nil
}

// ListWallets returns the watched wallets ordered by network, coin and
// address. Members that do not have three parts are skipped.
func (s *subscriptions) ListWallets(ctx context.Context) ([]walletregistry.WalletIdentifier, error) {
	members := s.store.SMembers(ctx, activeWalletsKey)
	slices.Sort(members)

	ids := make([]walletregistry.WalletIdentifier, 0, len(members))
	for _, m := range members {
		parts := strings.SplitN(m, ":", 3)
		if len(parts) != 3 {
			continue
		}

		ids = append(ids, walletregistry.WalletIdentifier{
			Network: parts[0],
			Coin:    parts[1],
			Address: parts[2],
		})
	}

	return ids, nil
}

func (s *subscriptions) AddCallbackURL(ctx context.Context, address, callbackURL string) error {
	s.store.SAdd(ctx, callbacksKey(address), callbackURL)
	return nil
}

// CallbackURLs returns the callback URLs of address in lexical order.
func (s *subscriptions) CallbackURLs(ctx context.Context, address string) ([]string, error) {
	urls := s.store.SMembers(ctx, callbacksKey(address))
	slices.Sort(urls)
	return urls, nil
}

func (s *subscriptions) ClearCallbackURLs(ctx context.Context, address string) error {
	s.store.Del(ctx, callbacksKey(address))
	return nil
}

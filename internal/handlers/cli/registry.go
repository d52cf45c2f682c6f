package cli

import (
	"context"
	"fmt"

	"github.com/gabapcia/txnotify/internal/walletregistry"

	"github.com/urfave/cli/v3"
)

type subscriptionOutput struct {
	Network      string   `json:"network"`
	Coin         string   `json:"coin"`
	Wallet       string   `json:"wallet"`
	CallbackURLs []string `json:"callbackUrls"`
}

func toSubscriptionOutput(sub walletregistry.Subscription) subscriptionOutput {
	urls := sub.CallbackURLs
	if urls == nil {
		urls = []string{}
	}

	return subscriptionOutput{
		Network:      sub.Network,
		Coin:         sub.Coin,
		Wallet:       sub.Address,
		CallbackURLs: urls,
	}
}

// subscribeCommand returns a CLI command that registers a wallet for
// notifications on a network:coin asset.
//
// Usage example:
//
//	txnotify subscribe --network trc20 --coin usdt --wallet TXyz... --callback-url https://example.com/hook
func subscribeCommand(wr walletregistry.Service) *cli.Command {
	return &cli.Command{
		Name:        "subscribe",
		Description: "Register a wallet to be monitored for a network and coin, optionally adding a callback URL.",
		Usage:       "Subscribes a wallet. Must provide network, coin and wallet.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "network",
				Usage:    "Network name (e.g., trc20, erc20, bitcoin)",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "coin",
				Usage:    "Coin symbol (e.g., usdt, eth)",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "wallet",
				Usage:    "Wallet address to subscribe",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "callback-url",
				Usage: "URL that receives the wallet's transaction events",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			var (
				network     = c.String("network")
				coin        = c.String("coin")
				wallet      = c.String("wallet")
				callbackURL = c.String("callback-url")
			)

			sub, added, err := wr.Subscribe(ctx, network, coin, wallet, callbackURL)
			if err != nil {
				return err
			}

			message := fmt.Sprintf("Wallet %s:%s:%s is already being monitored.", sub.Network, sub.Coin, sub.Address)
			if added {
				message = fmt.Sprintf("Wallet %s:%s:%s added to monitoring.", sub.Network, sub.Coin, sub.Address)
			}

			return printJSON(c, map[string]any{
				"message":      message,
				"callbackUrls": toSubscriptionOutput(sub).CallbackURLs,
			})
		},
	}
}

// unsubscribeCommand returns a CLI command that stops monitoring a wallet on
// every supported asset.
//
// Usage example:
//
//	txnotify unsubscribe --wallet TXyz...
func unsubscribeCommand(wr walletregistry.Service) *cli.Command {
	return &cli.Command{
		Name:        "unsubscribe",
		Description: "Unregister a wallet from every supported network and coin and drop its callback URLs.",
		Usage:       "Unsubscribes a wallet. Must provide the wallet.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "wallet",
				Usage:    "Wallet address to unsubscribe",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			wallet := c.String("wallet")
			if err := wr.Unsubscribe(ctx, wallet); err != nil {
				return err
			}

			return printJSON(c, map[string]any{
				"message": fmt.Sprintf("Wallet %s removed from all monitoring.", wallet),
			})
		},
	}
}

func listSubscriptionsCommand(wr walletregistry.Service) *cli.Command {
	return &cli.Command{
		Name:        "subscriptions",
		Description: "List every monitored wallet with the callback URLs its events are sent to.",
		Usage:       "Lists monitored wallets.",
		Action: func(ctx context.Context, c *cli.Command) error {
			subs, err := wr.Subscriptions(ctx)
			if err != nil {
				return err
			}

			out := make([]subscriptionOutput, 0, len(subs))
			for _, sub := range subs {
				out = append(out, toSubscriptionOutput(sub))
			}

			return printJSON(c, out)
		},
	}
}

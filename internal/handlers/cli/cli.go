package cli

import (
	"context"
	"encoding/json"
	"os"

	"github.com/gabapcia/txnotify/internal/keyring"
	"github.com/gabapcia/txnotify/internal/walletregistry"
	"github.com/gabapcia/txnotify/internal/webhook"

	"github.com/urfave/cli/v3"
)

// Run initializes and executes the txnotify CLI application.
//
// It registers all available commands, including:
//
//   - `subscribe` / `unsubscribe` / `subscriptions`: manage watched wallets.
//   - `send`: deliver a transaction event to the wallet's subscribers.
//   - `key` / `fetch`: use the rotating API key pools.
func Run(ctx context.Context, wr walletregistry.Service, wh webhook.Service, kr keyring.Service) error {
	app := &cli.Command{
		EnableShellCompletion: true,
		Name:                  "txnotify",
		Description:           "Command-line interface for wallet subscriptions, webhook delivery and API key pools.",
		Usage:                 "txnotify [command] [flags]",
		Commands: []*cli.Command{
			subscribeCommand(wr),
			unsubscribeCommand(wr),
			listSubscriptionsCommand(wr),
			sendEventCommand(wh),
			availableKeyCommand(kr),
			fetchCommand(kr),
		},
	}

	return app.Run(ctx, os.Args)
}

// printJSON writes v as indented JSON to the root command writer.
func printJSON(c *cli.Command, v any) error {
	enc := json.NewEncoder(c.Root().Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

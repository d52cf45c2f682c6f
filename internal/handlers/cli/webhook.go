package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/gabapcia/txnotify/internal/webhook"

	"github.com/urfave/cli/v3"
)

// sendEventCommand returns a CLI command that delivers one transaction event
// and waits until its retries, if any, are done.
//
// Usage example:
//
//	txnotify send --file event.json
//	cat event.json | txnotify send
func sendEventCommand(wh webhook.Service) *cli.Command {
	return &cli.Command{
		Name:        "send",
		Description: "Deliver a transaction event to the callback URLs of its wallet and wait for pending retries.",
		Usage:       "Sends an event read from a JSON file or stdin.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "file",
				Usage: "Path of the event JSON; stdin when empty or \"-\"",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			event, err := readEvent(c)
			if err != nil {
				return err
			}

			if err := wh.Send(ctx, event); err != nil {
				return err
			}

			return wh.Wait(ctx)
		},
	}
}

func readEvent(c *cli.Command) (webhook.Event, error) {
	var r io.Reader = c.Root().Reader
	if path := c.String("file"); path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return webhook.Event{}, err
		}
		defer f.Close()

		r = f
	}

	var event webhook.Event
	if err := json.NewDecoder(r).Decode(&event); err != nil {
		return webhook.Event{}, fmt.Errorf("decode event: %w", err)
	}

	return event, nil
}

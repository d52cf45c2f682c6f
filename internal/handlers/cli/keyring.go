package cli

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/gabapcia/txnotify/internal/keyring"

	"github.com/urfave/cli/v3"
)

// availableKeyCommand returns a CLI command that prints the key a caller
// would get from a pool right now.
//
// Usage example:
//
//	txnotify key --service etherscan
func availableKeyCommand(kr keyring.Service) *cli.Command {
	return &cli.Command{
		Name:        "key",
		Description: "Print the first key of a service pool that is still under its request quota.",
		Usage:       "Prints an available API key. Must provide the service.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "service",
				Usage:    "Name of the key pool",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			key, err := kr.GetAvailableKey(ctx, c.String("service"))
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(c.Root().Writer, key)
			return err
		},
	}
}

// fetchCommand returns a CLI command that performs a GET against a service
// with a key taken from its pool and prints the response body.
//
// Usage example:
//
//	txnotify fetch --service etherscan --url https://api.etherscan.io/api --param module=account --param action=balance
func fetchCommand(kr keyring.Service) *cli.Command {
	return &cli.Command{
		Name:        "fetch",
		Description: "Call a service with a rotated API key and print the response body.",
		Usage:       "Fetches a URL through a key pool. Must provide service and url.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "service",
				Usage:    "Name of the key pool",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "url",
				Usage:    "Base URL of the request",
				Required: true,
			},
			&cli.StringSliceFlag{
				Name:  "param",
				Usage: "Query parameter as key=value, may be repeated",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			params, err := parseParams(c.StringSlice("param"))
			if err != nil {
				return err
			}

			body, err := kr.FetchFromService(ctx, c.String("service"), c.String("url"), params)
			if err != nil {
				return err
			}

			_, err = c.Root().Writer.Write(body)
			return err
		},
	}
}

func parseParams(raw []string) (url.Values, error) {
	params := url.Values{}
	for _, p := range raw {
		key, value, ok := strings.Cut(p, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid param %q, expected key=value", p)
		}
		params.Add(key, value)
	}

	return params, nil
}

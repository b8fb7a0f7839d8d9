/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/versiontheca/pkg/api"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the HTTP service",
		Description: `Serve the versiontheca HTTP API until interrupted. Settings come from the
environment (PORT, RATE_LIMIT, RATE_LIMIT_BURST, MAX_BULK_REQUESTS, ...) and
optionally from a YAML or JSON --config file.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to a YAML or JSON configuration file",
				Sources: cli.EnvVars("VERSIONTHECA_CONFIG"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if err := api.Serve(ctx, cmd.String("config")); err != nil {
				return cli.Exit(err.Error(), ExitError)
			}
			return nil
		},
	}
}

/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"
)

func sortCmd() *cli.Command {
	return &cli.Command{
		Name:      "sort",
		Usage:     "Print versions in ascending order",
		ArgsUsage: "[<version>...]",
		Description: `Parse the versions in parallel and print them in canonical form, ordered
by the selected type. Equal versions keep their input order.

Versions can also be read from --file, a path or URL to a YAML or JSON
document holding a list of strings or an object with a "versions" list:

  versiontheca sort --type rpm --file https://example.com/versions.json`,
		Flags: append([]cli.Flag{fileFlag(), reverseFlag()}, reportFlags()...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			b, err := builderFromCmd(cmd)
			if err != nil {
				return err
			}
			versions, err := versionsFromCmd(ctx, cmd)
			if err != nil {
				return err
			}

			rep, err := b.Sort(ctx, versions, cmd.Bool("reverse"))
			if err != nil {
				return exitFor(err)
			}
			slog.Debug("sorted versions", "count", len(rep.Versions), "reverse", rep.Reverse)

			if cmd.Bool("report") {
				return writeReport(ctx, cmd, rep)
			}
			for _, v := range rep.Versions {
				fmt.Fprintln(cmd.Root().Writer, v)
			}
			return nil
		},
	}
}

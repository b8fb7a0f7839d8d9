/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

func compareCmd() *cli.Command {
	return &cli.Command{
		Name:      "compare",
		Aliases:   []string{"cmp"},
		Usage:     "Compare two versions",
		ArgsUsage: "<version> [<operator>] <version>",
		Description: `With an operator (<, <=, >, >=, ==, !=, also lt, le, gt, ge, eq, ne) the
command exits 0 when the relation holds and 1 when it does not.

Without an operator it prints -1, 0 or 1.`,
		Flags: reportFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			var left, op, right string
			args := cmd.Args().Slice()
			switch len(args) {
			case 2:
				left, right = args[0], args[1]
			case 3:
				left, op, right = args[0], args[1], args[2]
			default:
				return usageError("compare requires <version> [<operator>] <version>")
			}

			b, err := builderFromCmd(cmd)
			if err != nil {
				return err
			}
			rep, err := b.Compare(ctx, left, op, right)
			if err != nil {
				return exitFor(err)
			}

			if cmd.Bool("report") {
				if err := writeReport(ctx, cmd, rep); err != nil {
					return err
				}
			} else if rep.Holds == nil {
				fmt.Fprintln(cmd.Root().Writer, rep.Result)
			}

			if rep.Holds != nil && !*rep.Holds {
				return cli.Exit("", ExitFalse)
			}
			return nil
		},
	}
}

/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/versiontheca/pkg/report"
)

func nextCmd() *cli.Command {
	return stepCmd(report.DirectionNext, []string{"inc"},
		"Print the next version of each input",
		`Increment the part selected by --level and reset the parts after it. An
optional --template version bounds each part: a part that passes its template
value wraps to zero and carries into the part before it.`)
}

func previousCmd() *cli.Command {
	return stepCmd(report.DirectionPrevious, []string{"prev", "dec"},
		"Print the previous version of each input",
		`Decrement the part selected by --level and set the parts after it to their
maximum, taken from --template when given.`)
}

func stepCmd(dir report.Direction, aliases []string, usage, description string) *cli.Command {
	return &cli.Command{
		Name:        string(dir),
		Aliases:     aliases,
		Usage:       usage,
		ArgsUsage:   "<version>...",
		Description: description,
		Flags:       append([]cli.Flag{levelFlag(), templateFlag(), fileFlag()}, reportFlags()...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			b, err := builderFromCmd(cmd)
			if err != nil {
				return err
			}
			versions, err := versionsFromCmd(ctx, cmd)
			if err != nil {
				return err
			}

			rep, err := b.Step(ctx, dir, versions, cmd.Int("level"), cmd.String("template"))
			if err != nil {
				return exitFor(err)
			}

			if cmd.Bool("report") {
				if err := writeReport(ctx, cmd, rep); err != nil {
					return err
				}
				return invalidError(rep.Invalid)
			}
			return printResults(cmd, rep.Results, false)
		},
	}
}

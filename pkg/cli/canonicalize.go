/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"
)

func canonicalizeCmd() *cli.Command {
	return &cli.Command{
		Name:      "canonicalize",
		Aliases:   []string{"canon"},
		Usage:     "Print the canonical form of each version",
		ArgsUsage: "<version>...",
		Description: `Parse each version with the selected type and print its canonical form,
one per line. Invalid versions are reported on stderr and make the command
exit with status 1.`,
		Flags: append([]cli.Flag{fileFlag()}, reportFlags()...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runCanonicalize(ctx, cmd, false)
		},
	}
}

func validateCmd() *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Usage:     "Check that each version parses",
		ArgsUsage: "<version>...",
		Description: `Parse each version with the selected type. Nothing is printed when every
version is valid.`,
		Flags: append([]cli.Flag{fileFlag()}, reportFlags()...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runCanonicalize(ctx, cmd, true)
		},
	}
}

func runCanonicalize(ctx context.Context, cmd *cli.Command, quiet bool) error {
	b, err := builderFromCmd(cmd)
	if err != nil {
		return err
	}
	versions, err := versionsFromCmd(ctx, cmd)
	if err != nil {
		return err
	}

	rep, err := b.Canonicalize(ctx, versions)
	if err != nil {
		return exitFor(err)
	}
	slog.Debug("canonicalized versions", "count", len(versions), "invalid", rep.Invalid)

	if cmd.Bool("report") {
		if err := writeReport(ctx, cmd, rep); err != nil {
			return err
		}
		return invalidError(rep.Invalid)
	}
	return printResults(cmd, rep.Results, quiet)
}

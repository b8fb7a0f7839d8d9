/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"math"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/versiontheca/pkg/defaults"
	"github.com/NVIDIA/versiontheca/pkg/errors"
	"github.com/NVIDIA/versiontheca/pkg/report"
	"github.com/NVIDIA/versiontheca/pkg/serializer"
	ver "github.com/NVIDIA/versiontheca/pkg/version"
)

func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	return serializer.ParseFormat(cmd.String("format"))
}

// builderFromCmd returns a report builder for the --type dialect. The CLI
// does not cap the number of versions.
func builderFromCmd(cmd *cli.Command) (*report.Builder, error) {
	d, err := ver.ParseDialect(cmd.String("type"))
	if err != nil {
		return nil, usageError(err.Error())
	}
	return report.NewBuilder(d, report.WithMaxVersions(math.MaxInt32)), nil
}

// versionsFromCmd collects the positional versions, followed by the
// contents of --file when the command has one.
func versionsFromCmd(ctx context.Context, cmd *cli.Command) ([]string, error) {
	versions := cmd.Args().Slice()

	if path := cmd.String("file"); path != "" {
		ctx, cancel := context.WithTimeout(ctx, defaults.CLIFileTimeout)
		defer cancel()

		fromFile, err := serializer.ReadVersions(ctx, path)
		if err != nil {
			return nil, cli.Exit(fmt.Sprintf("failed to read versions from %s: %v", path, err), ExitError)
		}
		versions = append(versions, fromFile...)
	}

	if len(versions) == 0 {
		return nil, usageError("at least one version is required")
	}
	return versions, nil
}

// writeReport serializes rep to --output, or to the command writer.
func writeReport(ctx context.Context, cmd *cli.Command, rep any) error {
	format, err := parseOutputFormat(cmd)
	if err != nil {
		return usageError(err.Error())
	}

	var w *serializer.Writer
	if path := cmd.String("output"); path != "" {
		w = serializer.NewFileWriterOrStdout(format, path)
	} else {
		w = serializer.NewWriter(format, cmd.Root().Writer)
	}
	defer func() {
		if cerr := w.Close(); cerr != nil {
			fmt.Fprintf(cmd.Root().ErrWriter, "warning: failed to close output: %v\n", cerr)
		}
	}()

	if err := w.Serialize(ctx, rep); err != nil {
		return cli.Exit(fmt.Sprintf("failed to write report: %v", err), ExitError)
	}
	return nil
}

// printResults writes valid outputs to stdout and failures to stderr. It
// returns an ExitFalse error when any input was invalid.
func printResults(cmd *cli.Command, results []report.Result, quiet bool) error {
	stdout, stderr := cmd.Root().Writer, cmd.Root().ErrWriter
	invalid := 0
	for _, r := range results {
		if !r.Valid {
			invalid++
			fmt.Fprintf(stderr, "%s: %s\n", r.Input, r.Error)
			continue
		}
		if !quiet {
			fmt.Fprintln(stdout, r.Output)
		}
	}
	return invalidError(invalid)
}

func invalidError(n int) error {
	switch n {
	case 0:
		return nil
	case 1:
		return cli.Exit("", ExitFalse)
	default:
		return cli.Exit(fmt.Sprintf("%d invalid versions", n), ExitFalse)
	}
}

func usageError(msg string) error {
	return cli.Exit(msg, ExitError)
}

// exitFor maps a builder error to an exit error. Bad versions and exhausted
// limits are "false" results; everything else is an operational error.
func exitFor(err error) error {
	if err == nil {
		return nil
	}
	switch errors.CodeOf(err) {
	case errors.ErrCodeInvalidVersion, errors.ErrCodeLimitReached:
		return cli.Exit(err.Error(), ExitFalse)
	default:
		return cli.Exit(err.Error(), ExitError)
	}
}

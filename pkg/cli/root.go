/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/versiontheca/pkg/logging"
)

const (
	name           = "versiontheca"
	versionDefault = "dev"
)

// Process exit codes.
const (
	// ExitOK means success, or a comparison that holds.
	ExitOK = 0

	// ExitFalse means an invalid version or a comparison that does not hold.
	ExitFalse = 1

	// ExitError means a usage or operational error.
	ExitError = 2

	// ExitHelp is returned after printing help or version information.
	ExitHelp = 3
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// NewApp builds the command tree writing to stdout and stderr.
func NewApp(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:                  name,
		Usage:                 "Canonicalize, compare and step version strings",
		Version:               version,
		EnableShellCompletion: true,
		Description: fmt.Sprintf(`versiontheca parses Basic, Decimal, Debian, RPM, Roman and Unicode
version strings.

Version: %s
Commit:  %s
Built:   %s`, version, commit, date),
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			typeFlag(),
			logLevelFlag(),
		},
		Before: initLogger,
		// exit codes are mapped by Run
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
		Commands: []*cli.Command{
			canonicalizeCmd(),
			validateCmd(),
			compareCmd(),
			nextCmd(),
			previousCmd(),
			sortCmd(),
			serveCmd(),
		},
	}
}

// Execute runs the CLI with the process arguments and exits with its code.
// This is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := Run(ctx, os.Args, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// Run executes args (args[0] is the program name) and returns the exit
// code.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	err := NewApp(stdout, stderr).Run(ctx, args)
	if err == nil {
		if wantsHelp(args) {
			return ExitHelp
		}
		return ExitOK
	}

	code := ExitError
	var ec cli.ExitCoder
	if errors.As(err, &ec) {
		code = ec.ExitCode()
	}
	if msg := err.Error(); msg != "" {
		fmt.Fprintf(stderr, "error: %s\n", msg)
	}
	return code
}

// wantsHelp reports whether args asked for help or version output.
func wantsHelp(args []string) bool {
	for i, a := range args {
		if i == 0 {
			continue
		}
		switch a {
		case "--":
			return false
		case "-h", "--help", "-v", "--version":
			return true
		case "help":
			if i == 1 {
				return true
			}
		}
	}
	return false
}

// initLogger configures slog after flags are parsed so --log-level applies
// before any command runs.
func initLogger(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	logLevel := cmd.String("log-level")
	logging.SetDefaultStructuredLoggerWithLevel(name, version, logLevel)
	slog.Debug("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
		"logLevel", logLevel)
	return ctx, nil
}

/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/versiontheca/pkg/defaults"
	"github.com/NVIDIA/versiontheca/pkg/logging"
	"github.com/NVIDIA/versiontheca/pkg/serializer"
	ver "github.com/NVIDIA/versiontheca/pkg/version"
)

func typeFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "type",
		Aliases: []string{"t"},
		Value:   defaults.VersionType,
		Usage:   fmt.Sprintf("Version type (supported values: %s)", strings.Join(ver.DialectNames(), ", ")),
		Sources: cli.EnvVars("VERSIONTHECA_TYPE"),
	}
}

func logLevelFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "log-level",
		Value:   "warn",
		Usage:   "Log level (debug, info, warn, error)",
		Sources: cli.EnvVars(logging.EnvLogLevel),
	}
}

func outputFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path for the report (default: stdout)",
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   string(serializer.FormatYAML),
		Usage:   fmt.Sprintf("Report format (supported values: %s)", strings.Join(serializer.SupportedFormats(), ", ")),
	}
}

func reportFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:  "report",
		Usage: "Write a serialized report instead of plain lines",
	}
}

func fileFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "file",
		Usage: "Path or URL of a YAML or JSON list of versions to add to the arguments",
	}
}

func levelFlag() cli.Flag {
	return &cli.IntFlag{
		Name:    "level",
		Aliases: []string{"l"},
		Usage:   "1-based upstream part to step (default: last part of each version)",
	}
}

func templateFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "template",
		Usage:   "Format version bounding each part (e.g. 9.99.9)",
		Sources: cli.EnvVars("VERSIONTHECA_FORMAT"),
	}
}

func reverseFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:    "reverse",
		Aliases: []string{"r"},
		Usage:   "Sort in descending order",
	}
}

// reportFlags are shared by every command that can write a report.
func reportFlags() []cli.Flag {
	return []cli.Flag{reportFlag(), outputFlag(), formatFlag()}
}

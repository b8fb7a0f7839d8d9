package api

import (
	"context"
	"log/slog"

	"github.com/NVIDIA/versiontheca/pkg/defaults"
	"github.com/NVIDIA/versiontheca/pkg/logging"
	"github.com/NVIDIA/versiontheca/pkg/server"
)

const (
	name           = "versionthecad"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/NVIDIA/versiontheca/pkg/api.buildVersion=1.0.0"
	buildVersion = versionDefault
	buildCommit  = "unknown"
	buildDate    = "unknown"
)

// Serve loads the server configuration from configPath (optional YAML) and
// the environment, then runs the API until ctx is done or the process is
// signaled.
func Serve(ctx context.Context, configPath string) error {
	cfg, err := server.LoadConfig(configPath)
	if err != nil {
		return err
	}
	return ServeWithConfig(ctx, cfg)
}

// ServeWithConfig runs the API with an explicit configuration.
func ServeWithConfig(ctx context.Context, cfg *server.Config) error {
	logging.SetDefaultStructuredLoggerWithLevel(name, buildVersion, cfg.LogLevel)
	slog.Info("starting",
		"name", name,
		"version", buildVersion,
		"commit", buildCommit,
		"date", buildDate,
	)

	if err := NewServer(cfg).Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}
	return nil
}

// NewServer returns a server with every API route registered.
func NewServer(cfg *server.Config) *server.Server {
	if cfg == nil {
		cfg = server.NewConfig()
	}

	h := NewHandler(cfg.MaxBulkRequests, defaults.SortConcurrency)

	opts := []server.Option{
		server.WithName(name),
		server.WithVersion(buildVersion, buildCommit),
	}
	for route, fn := range h.Routes() {
		opts = append(opts, server.WithHandler(route, fn))
	}
	return server.New(cfg, opts...)
}

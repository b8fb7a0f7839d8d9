// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package server

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"golang.org/x/time/rate"

	"github.com/NVIDIA/versiontheca/pkg/defaults"
)

// Config holds server configuration. Every field can be set from the
// environment; LoadConfig also reads an optional YAML file first.
type Config struct {
	// Listener
	Address string `yaml:"address" env:"ADDRESS" env-description:"listen address"`
	Port    int    `yaml:"port" env:"PORT" env-default:"8080" env-description:"listen port"`

	// Rate limiting
	RateLimit      float64 `yaml:"rateLimit" env:"RATE_LIMIT" env-default:"100" env-description:"requests per second"`
	RateLimitBurst int     `yaml:"rateLimitBurst" env:"RATE_LIMIT_BURST" env-default:"200" env-description:"burst size"`

	// Request limits
	MaxBulkRequests int `yaml:"maxBulkRequests" env:"MAX_BULK_REQUESTS" env-default:"1000" env-description:"maximum versions per bulk request"`

	// Timeouts
	ReadTimeout            time.Duration `yaml:"readTimeout" env:"READ_TIMEOUT" env-default:"10s"`
	WriteTimeout           time.Duration `yaml:"writeTimeout" env:"WRITE_TIMEOUT" env-default:"30s"`
	IdleTimeout            time.Duration `yaml:"idleTimeout" env:"IDLE_TIMEOUT" env-default:"120s"`
	ShutdownTimeoutSeconds int           `yaml:"shutdownTimeoutSeconds" env:"SHUTDOWN_TIMEOUT_SECONDS" env-default:"30" env-description:"graceful shutdown period, match the pod termination grace period"`

	// Logging
	LogLevel string `yaml:"logLevel" env:"LOG_LEVEL" env-default:"info"`
}

// NewConfig returns a Config with the built-in defaults, ignoring the
// environment. Use it when configuring the server programmatically.
func NewConfig() *Config {
	return &Config{
		Port:                   defaults.ServerPort,
		RateLimit:              defaults.RateLimit,
		RateLimitBurst:         defaults.RateLimitBurst,
		MaxBulkRequests:        defaults.MaxBulkRequests,
		ReadTimeout:            defaults.ServerReadTimeout,
		WriteTimeout:           defaults.ServerWriteTimeout,
		IdleTimeout:            defaults.ServerIdleTimeout,
		ShutdownTimeoutSeconds: int(defaults.ServerShutdownTimeout / time.Second),
		LogLevel:               "info",
	}
}

// LoadConfig reads the configuration from path (YAML, optional) and the
// environment. Environment variables win over the file.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}
	var err error
	if path != "" {
		err = cleanenv.ReadConfig(path, cfg)
	} else {
		err = cleanenv.ReadEnv(cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load server config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the ranges of the numeric settings.
func (c *Config) Validate() error {
	switch {
	case c.Port < 0 || c.Port > 65535:
		return fmt.Errorf("invalid port %d", c.Port)
	case c.RateLimit <= 0:
		return fmt.Errorf("rate limit must be positive, got %v", c.RateLimit)
	case c.RateLimitBurst <= 0:
		return fmt.Errorf("rate limit burst must be positive, got %d", c.RateLimitBurst)
	case c.MaxBulkRequests <= 0:
		return fmt.Errorf("max bulk requests must be positive, got %d", c.MaxBulkRequests)
	case c.ShutdownTimeoutSeconds <= 0:
		return fmt.Errorf("shutdown timeout must be positive, got %d", c.ShutdownTimeoutSeconds)
	}
	return nil
}

// Addr returns the listen address in host:port form.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Address, c.Port)
}

// ShutdownTimeout returns the graceful shutdown period.
func (c *Config) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}

func (c *Config) limiter() *rate.Limiter {
	return rate.NewLimiter(rate.Limit(c.RateLimit), c.RateLimitBurst)
}

// ConfigUsage describes the environment variables read by LoadConfig.
func ConfigUsage() string {
	s, err := cleanenv.GetDescription(&Config{}, nil)
	if err != nil {
		return ""
	}
	return s
}

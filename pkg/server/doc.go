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

// Package server provides the HTTP server shared by the versiontheca
// service: routing, middleware, probes, metrics and graceful shutdown.
//
// API handlers are registered by the caller and run behind the middleware
// chain; system endpoints are mounted directly.
//
// # Usage
//
//	cfg, err := server.LoadConfig("")
//	if err != nil {
//	    return err
//	}
//
//	s := server.New(cfg,
//	    server.WithName("versionthecad"),
//	    server.WithVersion(version, commit),
//	    server.WithHandler("/v1/compare", handleCompare),
//	)
//	return s.Run(ctx)
//
// # Configuration
//
// LoadConfig reads an optional YAML file and then the environment:
//
//	PORT                       listen port (default 8080)
//	ADDRESS                    listen address (default all interfaces)
//	RATE_LIMIT                 requests per second (default 100)
//	RATE_LIMIT_BURST           token bucket size (default 200)
//	MAX_BULK_REQUESTS          versions per bulk request (default 1000)
//	READ_TIMEOUT               e.g. 10s
//	WRITE_TIMEOUT              e.g. 30s
//	IDLE_TIMEOUT               e.g. 120s
//	SHUTDOWN_TIMEOUT_SECONDS   graceful shutdown budget (default 30)
//	LOG_LEVEL                  debug, info, warn or error
//
// # System Endpoints
//
//	GET /          service name, build info and route list
//	GET /health    liveness probe, always 200
//	GET /ready     readiness probe, 200 when serving, 503 otherwise
//	GET /metrics   Prometheus metrics
//
// # Observability
//
// Every API request carries an X-Request-Id (a client supplied UUID is kept,
// anything else is replaced) and an X-API-Version header. The version is
// negotiated from Accept: application/vnd.nvidia.versiontheca.v1+json.
//
// Rate limiting uses a token bucket (golang.org/x/time/rate). Allowed
// responses carry X-RateLimit-Limit, X-RateLimit-Remaining and
// X-RateLimit-Reset; rejected ones get 429 with Retry-After.
//
// # Error Handling
//
// Errors share one JSON shape:
//
//	{
//	  "code": "INVALID_VERSION",
//	  "message": "Failed to parse version",
//	  "details": {"error": "..."},
//	  "requestId": "550e8400-e29b-41d4-a716-446655440000",
//	  "timestamp": "2026-01-02T12:00:00Z",
//	  "retryable": false
//	}
//
// Status codes follow the error code, see HTTPStatus:
//   - INVALID_REQUEST, INVALID_VERSION: 400
//   - NOT_FOUND: 404
//   - METHOD_NOT_ALLOWED: 405
//   - LIMIT_REACHED: 422
//   - RATE_LIMIT_EXCEEDED: 429
//   - INTERNAL: 500
//   - SERVICE_UNAVAILABLE: 503
//   - TIMEOUT: 504
package server

// Package api exposes the versiontheca operations over HTTP.
//
// # Usage
//
//	import (
//	    "context"
//	    "log"
//
//	    "github.com/NVIDIA/versiontheca/pkg/api"
//	)
//
//	func main() {
//	    if err := api.Serve(context.Background(), ""); err != nil {
//	        log.Fatalf("server error: %v", err)
//	    }
//	}
//
// # Architecture
//
// The API layer:
//   - configures structured logging with the service name and build info
//   - decodes and validates requests (go-playground/validator)
//   - runs the operations through pkg/report
//
// The pkg/server package handles the server lifecycle, middleware, probes
// and metrics.
//
// # Endpoints
//
// Application endpoints (rate limited):
//   - GET, POST /v1/canonicalize - canonical form of each version
//   - GET, POST /v1/compare      - ordering of two versions, optional operator check
//   - POST /v1/next              - next version at a level
//   - POST /v1/previous          - previous version at a level
//   - GET, POST /v1/sort         - versions in total order
//
// System endpoints:
//   - GET /        - service info and routes
//   - GET /health  - liveness probe
//   - GET /ready   - readiness probe
//   - GET /metrics - Prometheus metrics
//
// # Requests
//
// Every request takes an optional "type" (basic, decimal, debian, rpm,
// roman, unicode); the default is debian. POST bodies are JSON, or YAML
// when Content-Type is application/yaml. GET endpoints read repeated
// "version" query parameters.
//
//	curl -s "http://localhost:8080/v1/compare?type=rpm&left=1.0~rc1&op=lt&right=1.0"
//
//	curl -s -X POST http://localhost:8080/v1/next \
//	  -d '{"type":"debian","version":"1:2.3-4","level":1}'
//
// Bulk requests (canonicalize, sort) accept at most MAX_BULK_REQUESTS
// versions.
//
// # Responses
//
// Reports carry kind, apiVersion and metadata fields (see pkg/header).
// Canonicalize answers 200 even when some versions are invalid; each entry
// says whether it parsed. Next and previous fail with 400 for an invalid
// version and 422 when the limit is reached.
package api

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
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/NVIDIA/versiontheca/pkg/errors"
)

func newTestServer(limit rate.Limit, burst int) *Server {
	return &Server{
		config:      NewConfig(),
		rateLimiter: rate.NewLimiter(limit, burst),
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	valid := uuid.New().String()

	tests := []struct {
		name     string
		header   string
		wantSame bool
	}{
		{"missing header generates id", "", false},
		{"valid uuid is kept", valid, true},
		{"invalid id is replaced", "invalid-not-a-uuid", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(100, 200)

			var got string
			handler := s.requestIDMiddleware(func(w http.ResponseWriter, r *http.Request) {
				got = RequestID(r.Context())
			})

			req := httptest.NewRequest(http.MethodGet, "/v1/compare", nil)
			if tt.header != "" {
				req.Header.Set("X-Request-Id", tt.header)
			}
			rec := httptest.NewRecorder()
			handler(rec, req)

			if _, err := uuid.Parse(got); err != nil {
				t.Fatalf("request ID %q is not a UUID", got)
			}
			if tt.wantSame && got != tt.header {
				t.Errorf("request ID = %q, want %q", got, tt.header)
			}
			if !tt.wantSame && got == tt.header {
				t.Errorf("request ID %q should have been replaced", got)
			}
			if rec.Header().Get("X-Request-Id") != got {
				t.Errorf("X-Request-Id = %q, want %q", rec.Header().Get("X-Request-Id"), got)
			}
		})
	}
}

func TestVersionMiddleware(t *testing.T) {
	tests := []struct {
		name   string
		accept string
		want   string
	}{
		{"no accept header", "", DefaultAPIVersion},
		{"plain json", "application/json", DefaultAPIVersion},
		{"vendor v1", "application/vnd.nvidia.versiontheca.v1+json", "v1"},
		{"unsupported vendor version", "application/vnd.nvidia.versiontheca.v9+json", DefaultAPIVersion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(100, 200)

			var got string
			handler := s.versionMiddleware(func(w http.ResponseWriter, r *http.Request) {
				got = APIVersion(r.Context())
			})

			req := httptest.NewRequest(http.MethodGet, "/v1/next", nil)
			if tt.accept != "" {
				req.Header.Set("Accept", tt.accept)
			}
			rec := httptest.NewRecorder()
			handler(rec, req)

			if got != tt.want {
				t.Errorf("context version = %q, want %q", got, tt.want)
			}
			if rec.Header().Get("X-API-Version") != tt.want {
				t.Errorf("X-API-Version = %q, want %q", rec.Header().Get("X-API-Version"), tt.want)
			}
		})
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Run("allows within budget", func(t *testing.T) {
		s := newTestServer(100, 200)

		called := false
		handler := s.rateLimitMiddleware(func(w http.ResponseWriter, r *http.Request) {
			called = true
		})

		rec := httptest.NewRecorder()
		handler(rec, httptest.NewRequest(http.MethodGet, "/v1/sort", nil))

		if !called {
			t.Fatal("expected handler to be called")
		}
		for _, h := range []string{"X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"} {
			if rec.Header().Get(h) == "" {
				t.Errorf("expected %s header", h)
			}
		}
	})

	t.Run("rejects when exhausted", func(t *testing.T) {
		s := newTestServer(0, 0)

		handler := s.rateLimitMiddleware(func(w http.ResponseWriter, r *http.Request) {
			t.Error("handler should not be called when rate limited")
		})

		rec := httptest.NewRecorder()
		handler(rec, httptest.NewRequest(http.MethodGet, "/v1/sort", nil))

		if rec.Code != http.StatusTooManyRequests {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusTooManyRequests)
		}
		if rec.Header().Get("Retry-After") == "" {
			t.Error("expected Retry-After header")
		}
		resp := decodeError(t, rec)
		if resp.Code != string(errors.ErrCodeRateLimitExceeded) || !resp.Retryable {
			t.Errorf("unexpected error response: %+v", resp)
		}
	})
}

func TestPanicRecoveryMiddleware(t *testing.T) {
	s := newTestServer(100, 200)

	handler := s.panicRecoveryMiddleware(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/v1/canonicalize", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
	if resp := decodeError(t, rec); resp.Code != string(errors.ErrCodeInternal) {
		t.Errorf("code = %q, want %q", resp.Code, errors.ErrCodeInternal)
	}
}

func TestLoggingMiddleware_PreservesStatus(t *testing.T) {
	s := newTestServer(100, 200)

	for _, status := range []int{http.StatusOK, http.StatusBadRequest, http.StatusUnprocessableEntity} {
		handler := s.loggingMiddleware(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		})

		rec := httptest.NewRecorder()
		handler(rec, httptest.NewRequest(http.MethodGet, "/v1/compare", nil))

		if rec.Code != status {
			t.Errorf("status = %d, want %d", rec.Code, status)
		}
	}
}

func TestWithMiddleware_FullChain(t *testing.T) {
	s := newTestServer(100, 200)

	var requestID, apiVersion string
	handler := s.withMiddleware("/v1/compare", func(w http.ResponseWriter, r *http.Request) {
		requestID = RequestID(r.Context())
		apiVersion = APIVersion(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/v1/compare", nil))

	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNoContent)
	}
	if requestID == "" {
		t.Error("expected request ID in context")
	}
	if apiVersion != DefaultAPIVersion {
		t.Errorf("API version = %q, want %q", apiVersion, DefaultAPIVersion)
	}
	for _, h := range []string{"X-Request-Id", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset", "X-API-Version"} {
		if rec.Header().Get(h) == "" {
			t.Errorf("expected header %s to be set", h)
		}
	}
}

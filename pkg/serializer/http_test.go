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

package serializer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestRespondJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondJSON(rec, http.StatusCreated, map[string]string{"canonical": "1.2-1"})

	if rec.Code != http.StatusCreated {
		t.Errorf("expected status 201, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("unexpected content type %q", ct)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if body["canonical"] != "1.2-1" {
		t.Errorf("unexpected body: %v", body)
	}
}

func TestRespondJSON_EncodingError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondJSON(rec, http.StatusOK, map[string]any{"bad": make(chan int)})

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", rec.Code)
	}
}

func TestHttpReader_ReadWithContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok":
			if ua := r.Header.Get("User-Agent"); ua != "test-agent" {
				t.Errorf("unexpected user agent %q", ua)
			}
			_, _ = w.Write([]byte("[\"1.0\"]"))
		case "/big":
			_, _ = w.Write([]byte(strings.Repeat("x", 64)))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	r := NewHttpReader(
		WithClient(srv.Client()),
		WithUserAgent("test-agent"),
		WithTotalTimeout(5*time.Second),
		WithMaxBytes(32),
	)

	data, err := r.ReadWithContext(context.Background(), srv.URL+"/ok")
	if err != nil {
		t.Fatalf("ReadWithContext failed: %v", err)
	}
	if string(data) != "[\"1.0\"]" {
		t.Errorf("unexpected body %q", data)
	}

	if _, err := r.ReadWithContext(context.Background(), srv.URL+"/missing"); err == nil {
		t.Error("expected error for 404")
	}
	if _, err := r.ReadWithContext(context.Background(), srv.URL+"/big"); err == nil {
		t.Error("expected error for oversized body")
	}
	if _, err := r.ReadWithContext(context.Background(), ""); err == nil {
		t.Error("expected error for empty url")
	}
}

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

package api

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/NVIDIA/versiontheca/pkg/defaults"
	"github.com/NVIDIA/versiontheca/pkg/errors"
	"github.com/NVIDIA/versiontheca/pkg/report"
	"github.com/NVIDIA/versiontheca/pkg/serializer"
	"github.com/NVIDIA/versiontheca/pkg/server"
	"github.com/NVIDIA/versiontheca/pkg/version"
)

// Handler serves the /v1 routes.
type Handler struct {
	maxVersions int
	concurrency int
}

// NewHandler returns a Handler accepting at most maxVersions versions per
// bulk request and sorting with the given number of parser goroutines.
func NewHandler(maxVersions, concurrency int) *Handler {
	return &Handler{
		maxVersions: maxVersions,
		concurrency: concurrency,
	}
}

// Routes maps each API route to its handler.
func (h *Handler) Routes() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		"/v1/canonicalize": h.HandleCanonicalize,
		"/v1/compare":      h.HandleCompare,
		"/v1/next":         h.HandleNext,
		"/v1/previous":     h.HandlePrevious,
		"/v1/sort":         h.HandleSort,
	}
}

func (h *Handler) builder(typ string) (*report.Builder, error) {
	d, err := version.ParseDialect(typeOrDefault(typ))
	if err != nil {
		return nil, errors.WrapVersion("unsupported version type", err)
	}
	return report.NewBuilder(d,
		report.WithMaxVersions(h.maxVersions),
		report.WithConcurrency(h.concurrency),
	), nil
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request, allowed ...string) {
	w.Header().Set("Allow", strings.Join(allowed, ", "))
	server.WriteError(w, r, http.StatusMethodNotAllowed, errors.ErrCodeMethodNotAllowed,
		"Method not allowed", false, map[string]any{
			"method":  r.Method,
			"allowed": allowed,
		})
}

// HandleCanonicalize returns the canonical form of each version.
//
//	GET  /v1/canonicalize?type=rpm&version=1.0.0&version=0:2.71-z3
//	POST /v1/canonicalize {"type": "rpm", "versions": ["1.0.0", "0:2.71-z3"]}
//
// Invalid versions are reported per entry; the response is still 200.
func (h *Handler) HandleCanonicalize(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaults.HandlerTimeout)
	defer cancel()

	var req *CanonicalizeRequest
	var err error

	switch r.Method {
	case http.MethodGet:
		req, err = canonicalizeFromQuery(r.URL.Query())
	case http.MethodPost:
		req = &CanonicalizeRequest{}
		err = decodeBody(w, r, req)
	default:
		methodNotAllowed(w, r, http.MethodGet, http.MethodPost)
		return
	}
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Invalid canonicalize request", nil)
		return
	}

	b, err := h.builder(req.Type)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Invalid version type", nil)
		return
	}

	rep, err := b.Canonicalize(ctx, req.Versions)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to canonicalize versions", nil)
		return
	}

	slog.Debug("canonicalized versions",
		"requestID", server.RequestID(r.Context()),
		"type", b.Dialect,
		"count", len(req.Versions),
		"invalid", rep.Invalid,
	)

	serializer.RespondJSON(w, http.StatusOK, rep)
}

// HandleCompare compares two versions, optionally checking an operator.
//
//	GET  /v1/compare?type=debian&left=1.0~rc1&op=lt&right=1.0
//	POST /v1/compare {"type": "debian", "left": "1.0~rc1", "operator": "<", "right": "1.0"}
func (h *Handler) HandleCompare(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaults.HandlerTimeout)
	defer cancel()

	var req *CompareRequest
	var err error

	switch r.Method {
	case http.MethodGet:
		req, err = compareFromQuery(r.URL.Query())
	case http.MethodPost:
		req = &CompareRequest{}
		err = decodeBody(w, r, req)
	default:
		methodNotAllowed(w, r, http.MethodGet, http.MethodPost)
		return
	}
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Invalid compare request", nil)
		return
	}

	b, err := h.builder(req.Type)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Invalid version type", nil)
		return
	}

	rep, err := b.Compare(ctx, req.Left, req.Operator, req.Right)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to compare versions", map[string]any{
			"left":  req.Left,
			"right": req.Right,
		})
		return
	}

	serializer.RespondJSON(w, http.StatusOK, rep)
}

// HandleNext computes the next version.
//
//	POST /v1/next {"type": "debian", "version": "1:2.3-4", "level": 1}
func (h *Handler) HandleNext(w http.ResponseWriter, r *http.Request) {
	h.handleStep(w, r, report.DirectionNext)
}

// HandlePrevious computes the previous version.
//
//	POST /v1/previous {"type": "basic", "version": "2.0", "level": 2, "format": "99.9"}
func (h *Handler) HandlePrevious(w http.ResponseWriter, r *http.Request) {
	h.handleStep(w, r, report.DirectionPrevious)
}

func (h *Handler) handleStep(w http.ResponseWriter, r *http.Request, dir report.Direction) {
	ctx, cancel := context.WithTimeout(r.Context(), defaults.HandlerTimeout)
	defer cancel()

	if r.Method != http.MethodPost {
		methodNotAllowed(w, r, http.MethodPost)
		return
	}

	req := &StepRequest{}
	if err := decodeBody(w, r, req); err != nil {
		server.WriteErrorFromErr(w, r, err, "Invalid "+string(dir)+" request", nil)
		return
	}

	b, err := h.builder(req.Type)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Invalid version type", nil)
		return
	}

	rep, err := b.Step(ctx, dir, []string{req.Version}, req.Level, req.Format)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to compute "+string(dir)+" version", nil)
		return
	}

	// a single version: surface its failure as the response status
	if res := rep.Results[0]; !res.Valid {
		code := errors.ErrorCode(res.Code)
		status, retryable := server.HTTPStatus(code)
		server.WriteError(w, r, status, code, "Failed to compute "+string(dir)+" version", retryable,
			map[string]any{
				"version": req.Version,
				"level":   req.Level,
				"error":   res.Error,
			})
		return
	}

	serializer.RespondJSON(w, http.StatusOK, rep)
}

// HandleSort returns the versions in ascending order, or descending with
// reverse.
//
//	GET  /v1/sort?type=debian&version=1.10&version=1.9&reverse=true
//	POST /v1/sort {"type": "debian", "versions": ["1.10", "1.9"], "reverse": true}
func (h *Handler) HandleSort(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), defaults.BulkHandlerTimeout)
	defer cancel()

	var req *SortRequest
	var err error

	switch r.Method {
	case http.MethodGet:
		req, err = sortFromQuery(r.URL.Query())
	case http.MethodPost:
		req = &SortRequest{}
		err = decodeBody(w, r, req)
	default:
		methodNotAllowed(w, r, http.MethodGet, http.MethodPost)
		return
	}
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Invalid sort request", nil)
		return
	}

	b, err := h.builder(req.Type)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Invalid version type", nil)
		return
	}

	start := time.Now()
	rep, err := b.Sort(ctx, req.Versions, req.Reverse)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "Failed to sort versions", nil)
		return
	}

	slog.Debug("sorted versions",
		"requestID", server.RequestID(r.Context()),
		"type", b.Dialect,
		"count", len(req.Versions),
		"duration", time.Since(start).String(),
	)

	serializer.RespondJSON(w, http.StatusOK, rep)
}

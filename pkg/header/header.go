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

package header

import (
	"time"
)

// APIVersion is the schema version stamped on every report.
const APIVersion = "versiontheca.nvidia.com/v1alpha1"

// Kind represents the type of report.
type Kind string

// Report kinds emitted by the CLI and the HTTP service.
const (
	KindCanonicalReport  Kind = "CanonicalReport"
	KindComparisonReport Kind = "ComparisonReport"
	KindStepReport       Kind = "StepReport"
	KindSortReport       Kind = "SortReport"
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	return string(k)
}

// IsValid checks if the Kind is one of the recognized kinds.
func (k Kind) IsValid() bool {
	switch k {
	case KindCanonicalReport, KindComparisonReport, KindStepReport, KindSortReport:
		return true
	default:
		return false
	}
}

// Option is a functional option for configuring Header instances.
type Option func(*Header)

// WithMetadata adds a metadata key-value pair. Empty values are skipped.
func WithMetadata(key, value string) Option {
	return func(h *Header) {
		if value == "" {
			return
		}
		if h.Metadata == nil {
			h.Metadata = make(map[string]string)
		}
		h.Metadata[key] = value
	}
}

// WithKind sets the Kind field of the Header.
func WithKind(kind Kind) Option {
	return func(h *Header) {
		h.Kind = kind
	}
}

// WithDialect records the version dialect the report was produced with.
func WithDialect(dialect string) Option {
	return WithMetadata("dialect", dialect)
}

// New creates a Header stamped with APIVersion and the current time, then
// applies opts.
func New(opts ...Option) *Header {
	h := &Header{
		APIVersion: APIVersion,
		Metadata: map[string]string{
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Header is the Kubernetes-style envelope put on every report.
type Header struct {
	// Kind is the type of the report.
	Kind Kind `json:"kind,omitempty" yaml:"kind,omitempty"`

	// APIVersion is the schema version of the report.
	APIVersion string `json:"apiVersion,omitempty" yaml:"apiVersion,omitempty"`

	// Metadata holds the timestamp, tool version and dialect.
	Metadata map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

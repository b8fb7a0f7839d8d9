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
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/NVIDIA/versiontheca/pkg/defaults"
	"github.com/NVIDIA/versiontheca/pkg/errors"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// CanonicalizeRequest is the body of POST /v1/canonicalize.
type CanonicalizeRequest struct {
	Type     string   `json:"type" yaml:"type" validate:"omitempty,oneof=basic decimal debian rpm roman unicode"`
	Versions []string `json:"versions" yaml:"versions" validate:"required,min=1"`
}

// CompareRequest is the body of POST /v1/compare.
type CompareRequest struct {
	Type     string `json:"type" yaml:"type" validate:"omitempty,oneof=basic decimal debian rpm roman unicode"`
	Left     string `json:"left" yaml:"left" validate:"required"`
	Operator string `json:"operator,omitempty" yaml:"operator,omitempty"`
	Right    string `json:"right" yaml:"right" validate:"required"`
}

// StepRequest is the body of POST /v1/next and POST /v1/previous. Level is
// 1-based; 0 steps the last upstream part.
type StepRequest struct {
	Type    string `json:"type" yaml:"type" validate:"omitempty,oneof=basic decimal debian rpm roman unicode"`
	Version string `json:"version" yaml:"version" validate:"required"`
	Level   int    `json:"level" yaml:"level" validate:"gte=0,lte=25"`
	Format  string `json:"format,omitempty" yaml:"format,omitempty"`
}

// SortRequest is the body of POST /v1/sort.
type SortRequest struct {
	Type     string   `json:"type" yaml:"type" validate:"omitempty,oneof=basic decimal debian rpm roman unicode"`
	Versions []string `json:"versions" yaml:"versions" validate:"required,min=1"`
	Reverse  bool     `json:"reverse" yaml:"reverse"`
}

// typeOrDefault returns the requested dialect name or the default one.
func typeOrDefault(t string) string {
	if t == "" {
		return defaults.VersionType
	}
	return strings.ToLower(t)
}

// decodeBody reads a JSON or YAML body, chosen by Content-Type, into v and
// validates it.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	if r.Body == nil {
		return errors.New(errors.ErrCodeInvalidRequest, "request body cannot be empty")
	}
	defer r.Body.Close()

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, defaults.MaxRequestBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			return errors.NewWithContext(errors.ErrCodeInvalidRequest, "request body too large",
				map[string]any{"limit": tooLarge.Limit})
		}
		return errors.Wrap(errors.ErrCodeInvalidRequest, "failed to read request body", err)
	}
	if len(data) == 0 {
		return errors.New(errors.ErrCodeInvalidRequest, "request body cannot be empty")
	}

	ct := strings.ToLower(strings.TrimSpace(r.Header.Get("Content-Type")))
	if idx := strings.Index(ct, ";"); idx != -1 {
		ct = strings.TrimSpace(ct[:idx])
	}

	switch ct {
	case "application/x-yaml", "application/yaml", "text/yaml":
		if err := yaml.Unmarshal(data, v); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidRequest, "failed to parse YAML body", err)
		}
	default:
		if err := json.Unmarshal(data, v); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidRequest, "failed to parse JSON body", err)
		}
	}

	return validateRequest(v)
}

// validateRequest runs the struct validation tags and reports the failing
// fields.
func validateRequest(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) {
		return errors.Wrap(errors.ErrCodeInvalidRequest, "invalid request", err)
	}

	fields := make(map[string]any, len(verrs))
	for _, fe := range verrs {
		fields[fieldKey(fe.Field())] = describe(fe)
	}
	return errors.NewWithContext(errors.ErrCodeInvalidRequest, "invalid request", map[string]any{"fields": fields})
}

func fieldKey(name string) string {
	if name == "" {
		return name
	}
	return strings.ToLower(name[:1]) + name[1:]
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must contain at least %s item(s)", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "gte", "lte":
		return fmt.Sprintf("must be %s %s", fe.Tag(), fe.Param())
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}

// canonicalizeFromQuery reads GET /v1/canonicalize?type=rpm&version=1.0&version=2.0
func canonicalizeFromQuery(q url.Values) (*CanonicalizeRequest, error) {
	req := &CanonicalizeRequest{
		Type:     q.Get("type"),
		Versions: q["version"],
	}
	return req, validateRequest(req)
}

// compareFromQuery reads GET /v1/compare?type=rpm&left=1.0&op=lt&right=2.0
func compareFromQuery(q url.Values) (*CompareRequest, error) {
	req := &CompareRequest{
		Type:     q.Get("type"),
		Left:     q.Get("left"),
		Operator: q.Get("op"),
		Right:    q.Get("right"),
	}
	return req, validateRequest(req)
}

// parseBool accepts the strconv forms and treats an empty value as false.
func parseBool(s string) (bool, error) {
	if s == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, errors.WrapWithContext(errors.ErrCodeInvalidRequest, "invalid boolean", err,
			map[string]any{"value": s})
	}
	return b, nil
}

// sortFromQuery reads GET /v1/sort?type=debian&version=1.10&version=1.9&reverse=true
func sortFromQuery(q url.Values) (*SortRequest, error) {
	reverse, err := parseBool(q.Get("reverse"))
	if err != nil {
		return nil, err
	}
	req := &SortRequest{
		Type:     q.Get("type"),
		Versions: q["version"],
		Reverse:  reverse,
	}
	return req, validateRequest(req)
}

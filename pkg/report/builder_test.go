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

package report

import (
	"context"
	"slices"
	"strings"
	"testing"

	"github.com/NVIDIA/versiontheca/pkg/errors"
	"github.com/NVIDIA/versiontheca/pkg/header"
	"github.com/NVIDIA/versiontheca/pkg/version"
)

func wantCode(t *testing.T, err error, code errors.ErrorCode) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", code)
	}
	if got := errors.CodeOf(err); got != code {
		t.Fatalf("error code = %q, want %q (%v)", got, code, err)
	}
}

func TestNewBuilder(t *testing.T) {
	b := NewBuilder(version.DialectRPM, WithMaxVersions(5), WithConcurrency(2))
	if b.Dialect != version.DialectRPM {
		t.Errorf("Dialect = %q, want rpm", b.Dialect)
	}
	if b.MaxVersions != 5 || b.Concurrency != 2 {
		t.Errorf("options not applied: %+v", b)
	}

	b = NewBuilder(version.DialectBasic, WithMaxVersions(0), WithConcurrency(-1))
	if b.MaxVersions <= 0 || b.Concurrency <= 0 {
		t.Errorf("non-positive options should keep defaults: %+v", b)
	}
}

func TestBuilder_Canonicalize(t *testing.T) {
	b := NewBuilder(version.DialectDebian)

	rep, err := b.Canonicalize(context.Background(), []string{"0:1.2.0-1", "a1.0", "2.30+dfsg-1"})
	if err != nil {
		t.Fatalf("Canonicalize failed: %v", err)
	}

	if rep.Kind != header.KindCanonicalReport {
		t.Errorf("Kind = %q, want %q", rep.Kind, header.KindCanonicalReport)
	}
	if rep.Metadata["dialect"] != "debian" {
		t.Errorf("dialect metadata = %q, want debian", rep.Metadata["dialect"])
	}
	if rep.Invalid != 1 {
		t.Errorf("Invalid = %d, want 1", rep.Invalid)
	}
	if len(rep.Results) != 3 {
		t.Fatalf("got %d results, want 3", len(rep.Results))
	}
	if r := rep.Results[0]; !r.Valid || r.Output != "1.2-1" {
		t.Errorf("result[0] = %+v, want valid 1.2-1", r)
	}
	if r := rep.Results[1]; r.Valid || r.Error == "" {
		t.Errorf("result[1] = %+v, want invalid with error", r)
	}
	if got := Lines(rep.Results); !slices.Equal(got, []string{"1.2-1", "2.30+dfsg-1"}) {
		t.Errorf("Lines = %v", got)
	}
}

func TestBuilder_InputChecks(t *testing.T) {
	tests := []struct {
		name     string
		builder  *Builder
		versions []string
		code     errors.ErrorCode
	}{
		{"empty list", NewBuilder(version.DialectBasic), nil, errors.ErrCodeInvalidRequest},
		{"too many", NewBuilder(version.DialectBasic, WithMaxVersions(2)), []string{"1", "2", "3"}, errors.ErrCodeInvalidRequest},
		{"unknown dialect", NewBuilder(version.Dialect("semver")), []string{"1.0"}, errors.ErrCodeInvalidRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.builder.Canonicalize(context.Background(), tt.versions)
			wantCode(t, err, tt.code)

			_, err = tt.builder.Sort(context.Background(), tt.versions, false)
			wantCode(t, err, tt.code)
		})
	}
}

func TestBuilder_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewBuilder(version.DialectBasic).Canonicalize(ctx, []string{"1.0"})
	wantCode(t, err, errors.ErrCodeTimeout)
}

func TestBuilder_Compare(t *testing.T) {
	tests := []struct {
		name      string
		dialect   version.Dialect
		left      string
		op        string
		right     string
		want      int
		wantOp    string
		wantHolds *bool
		code      errors.ErrorCode
	}{
		{name: "tilde sorts first", dialect: version.DialectDebian, left: "1.0~rc1", op: "<", right: "1.0", want: -1, wantOp: "<", wantHolds: ptr(true)},
		{name: "word operator", dialect: version.DialectDebian, left: "2.10", op: "ge", right: "2.9", want: 1, wantOp: ">=", wantHolds: ptr(true)},
		{name: "operator false", dialect: version.DialectRPM, left: "1.0-1", op: "==", right: "1.0-2", want: -1, wantOp: "==", wantHolds: ptr(false)},
		{name: "no operator", dialect: version.DialectBasic, left: "1.2", right: "1.2.0.0", want: 0},
		{name: "bad operator", dialect: version.DialectBasic, left: "1", op: "~=", right: "2", code: errors.ErrCodeInvalidRequest},
		{name: "bad left", dialect: version.DialectBasic, left: "1.a", right: "2", code: errors.ErrCodeInvalidVersion},
		{name: "bad right with operator", dialect: version.DialectBasic, left: "1", op: "<", right: "", code: errors.ErrCodeInvalidVersion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rep, err := NewBuilder(tt.dialect).Compare(context.Background(), tt.left, tt.op, tt.right)
			if tt.code != "" {
				wantCode(t, err, tt.code)
				return
			}
			if err != nil {
				t.Fatalf("Compare failed: %v", err)
			}
			if rep.Result != tt.want {
				t.Errorf("Result = %d, want %d", rep.Result, tt.want)
			}
			if rep.Operator != tt.wantOp {
				t.Errorf("Operator = %q, want %q", rep.Operator, tt.wantOp)
			}
			switch {
			case tt.wantHolds == nil && rep.Holds != nil:
				t.Errorf("Holds = %v, want unset", *rep.Holds)
			case tt.wantHolds != nil && (rep.Holds == nil || *rep.Holds != *tt.wantHolds):
				t.Errorf("Holds = %v, want %v", rep.Holds, *tt.wantHolds)
			}
		})
	}
}

func ptr[T any](v T) *T { return &v }

func TestBuilder_Step(t *testing.T) {
	tests := []struct {
		name     string
		dialect  version.Dialect
		dir      Direction
		versions []string
		level    int
		format   string
		want     []string
		invalid  int
	}{
		{name: "next major keeps epoch and revision", dialect: version.DialectDebian, dir: DirectionNext, versions: []string{"1:2.3-4"}, level: 1, want: []string{"1:3.0-4"}},
		{name: "default level is last upstream part", dialect: version.DialectDebian, dir: DirectionNext, versions: []string{"1.2.3-4", "7"}, want: []string{"1.2.4-4", "8.0"}},
		{name: "previous borrows", dialect: version.DialectDebian, dir: DirectionPrevious, versions: []string{"5:1.0-r5"}, level: 2, want: []string{"5:0.4294967295-r5"}},
		{name: "format carries", dialect: version.DialectBasic, dir: DirectionNext, versions: []string{"1.9"}, level: 2, format: "99.9", want: []string{"2.0"}},
		{name: "minimum reached", dialect: version.DialectBasic, dir: DirectionPrevious, versions: []string{"0.0", "1.0"}, level: 1, want: []string{"0.0"}, invalid: 1},
		{name: "unparsable input", dialect: version.DialectBasic, dir: DirectionNext, versions: []string{"x"}, level: 1, want: []string{}, invalid: 1},
		{name: "decimal fraction", dialect: version.DialectDecimal, dir: DirectionNext, versions: []string{"1.09"}, level: 2, want: []string{"1.10"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rep, err := NewBuilder(tt.dialect).Step(context.Background(), tt.dir, tt.versions, tt.level, tt.format)
			if err != nil {
				t.Fatalf("Step failed: %v", err)
			}
			if rep.Kind != header.KindStepReport || rep.Direction != tt.dir {
				t.Errorf("unexpected report envelope: kind=%q direction=%q", rep.Kind, rep.Direction)
			}
			if got := Lines(rep.Results); !slices.Equal(got, tt.want) {
				t.Errorf("outputs = %v, want %v", got, tt.want)
			}
			if rep.Invalid != tt.invalid {
				t.Errorf("Invalid = %d, want %d", rep.Invalid, tt.invalid)
			}
		})
	}
}

func TestBuilder_StepLimitError(t *testing.T) {
	rep, err := NewBuilder(version.DialectBasic).Step(context.Background(), DirectionNext,
		[]string{"99.9"}, 2, "99.9")
	if err != nil {
		t.Fatalf("Step failed: %v", err)
	}
	if rep.Invalid != 1 || !strings.Contains(rep.Results[0].Error, "maximum limit") {
		t.Errorf("expected maximum limit failure, got %+v", rep.Results[0])
	}
	if rep.Results[0].Code != string(errors.ErrCodeLimitReached) {
		t.Errorf("Code = %q, want %q", rep.Results[0].Code, errors.ErrCodeLimitReached)
	}
}

func TestBuilder_StepRejects(t *testing.T) {
	tests := []struct {
		name    string
		dialect version.Dialect
		dir     Direction
		level   int
		format  string
		code    errors.ErrorCode
	}{
		{"unknown direction", version.DialectBasic, Direction("sideways"), 1, "", errors.ErrCodeInvalidRequest},
		{"negative level", version.DialectBasic, DirectionNext, -1, "", errors.ErrCodeInvalidRequest},
		{"level beyond max parts", version.DialectBasic, DirectionNext, version.MaxParts + 1, "", errors.ErrCodeInvalidRequest},
		{"decimal third level", version.DialectDecimal, DirectionNext, 3, "", errors.ErrCodeInvalidRequest},
		{"bad format", version.DialectBasic, DirectionNext, 1, "9.x", errors.ErrCodeInvalidVersion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBuilder(tt.dialect).Step(context.Background(), tt.dir, []string{"1.0"}, tt.level, tt.format)
			wantCode(t, err, tt.code)
		})
	}
}

func TestBuilder_Sort(t *testing.T) {
	input := []string{"1.10", "1.9", "1.0~rc1", "1:0.1", "1.0"}

	rep, err := NewBuilder(version.DialectDebian, WithConcurrency(2)).Sort(context.Background(), input, false)
	if err != nil {
		t.Fatalf("Sort failed: %v", err)
	}
	want := []string{"1.0~rc1", "1.0", "1.9", "1.10", "1:0.1"}
	if !slices.Equal(rep.Versions, want) {
		t.Errorf("Versions = %v, want %v", rep.Versions, want)
	}
	if rep.Kind != header.KindSortReport {
		t.Errorf("Kind = %q, want %q", rep.Kind, header.KindSortReport)
	}

	rep, err = NewBuilder(version.DialectDebian).Sort(context.Background(), input, true)
	if err != nil {
		t.Fatalf("reverse Sort failed: %v", err)
	}
	slices.Reverse(want)
	if !slices.Equal(rep.Versions, want) {
		t.Errorf("reversed Versions = %v, want %v", rep.Versions, want)
	}
}

func TestBuilder_SortInvalid(t *testing.T) {
	_, err := NewBuilder(version.DialectBasic).Sort(context.Background(), []string{"1.0", "1.a"}, false)
	wantCode(t, err, errors.ErrCodeInvalidVersion)
}

func BenchmarkBuilderSort(b *testing.B) {
	versions := make([]string, 0, 500)
	for i := 0; i < 500; i++ {
		versions = append(versions, strings.Repeat("1.", i%7)+"3")
	}
	builder := NewBuilder(version.DialectDebian)
	ctx := context.Background()

	for i := 0; i < b.N; i++ {
		if _, err := builder.Sort(ctx, versions, false); err != nil {
			b.Fatal(err)
		}
	}
}

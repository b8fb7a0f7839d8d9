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

package constraint

import (
	"testing"

	"github.com/NVIDIA/versiontheca/pkg/errors"
	"github.com/NVIDIA/versiontheca/pkg/version"
)

func TestParseOperator(t *testing.T) {
	tests := []struct {
		input       string
		want        Operator
		expectError bool
	}{
		{input: "==", want: OperatorEQ},
		{input: "=", want: OperatorEQ},
		{input: "eq", want: OperatorEQ},
		{input: "EQ", want: OperatorEQ},
		{input: "!=", want: OperatorNE},
		{input: "<>", want: OperatorNE},
		{input: "ne", want: OperatorNE},
		{input: "<", want: OperatorLT},
		{input: "lt", want: OperatorLT},
		{input: "<=", want: OperatorLE},
		{input: "le", want: OperatorLE},
		{input: ">", want: OperatorGT},
		{input: "gt", want: OperatorGT},
		{input: ">=", want: OperatorGE},
		{input: " ge ", want: OperatorGE},
		{input: "=>", expectError: true},
		{input: "", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseOperator(tt.input)
			if tt.expectError {
				if errors.CodeOf(err) != errors.ErrCodeInvalidRequest {
					t.Errorf("expected INVALID_REQUEST, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseOperator(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestOperator_Holds(t *testing.T) {
	tests := []struct {
		op   Operator
		want [3]bool // cmp = -1, 0, 1
	}{
		{OperatorEQ, [3]bool{false, true, false}},
		{OperatorNE, [3]bool{true, false, true}},
		{OperatorLT, [3]bool{true, false, false}},
		{OperatorLE, [3]bool{true, true, false}},
		{OperatorGT, [3]bool{false, false, true}},
		{OperatorGE, [3]bool{false, true, true}},
		{Operator("~="), [3]bool{false, false, false}},
	}

	for _, tt := range tests {
		t.Run(string(tt.op), func(t *testing.T) {
			for i, cmp := range []int{-1, 0, 1} {
				if got := tt.op.Holds(cmp); got != tt.want[i] {
					t.Errorf("%s.Holds(%d) = %v, want %v", tt.op, cmp, got, tt.want[i])
				}
			}
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		dialect     version.Dialect
		expression  string
		wantOp      Operator
		wantVersion string
		wantCode    errors.ErrorCode
	}{
		{name: "greater or equal", dialect: version.DialectBasic, expression: ">= 1.32.4", wantOp: OperatorGE, wantVersion: "1.32.4"},
		{name: "no space", dialect: version.DialectBasic, expression: "<=1.33", wantOp: OperatorLE, wantVersion: "1.33"},
		{name: "diamond", dialect: version.DialectBasic, expression: "<> 2", wantOp: OperatorNE, wantVersion: "2.0"},
		{name: "single equals", dialect: version.DialectBasic, expression: "=1.0", wantOp: OperatorEQ, wantVersion: "1.0"},
		{name: "word", dialect: version.DialectRPM, expression: "lt 2.0^git1", wantOp: OperatorLT, wantVersion: "2.0^git1"},
		{name: "bare version", dialect: version.DialectDebian, expression: "1:2.3-4", wantOp: OperatorEQ, wantVersion: "1:2.3-4"},
		{name: "trailing space", dialect: version.DialectBasic, expression: " > 1.30 ", wantOp: OperatorGT, wantVersion: "1.30"},
		{name: "empty", dialect: version.DialectBasic, expression: "  ", wantCode: errors.ErrCodeInvalidRequest},
		{name: "operator only", dialect: version.DialectBasic, expression: ">=", wantCode: errors.ErrCodeInvalidRequest},
		{name: "bad version", dialect: version.DialectBasic, expression: ">= 1.a", wantCode: errors.ErrCodeInvalidVersion},
		{name: "bad dialect", dialect: version.Dialect("semver"), expression: ">= 1.0", wantCode: errors.ErrCodeInvalidRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Parse(tt.dialect, tt.expression)
			if tt.wantCode != "" {
				if got := errors.CodeOf(err); got != tt.wantCode {
					t.Errorf("code = %q, want %q (err: %v)", got, tt.wantCode, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if c.Operator != tt.wantOp {
				t.Errorf("operator = %v, want %v", c.Operator, tt.wantOp)
			}
			if got := c.Version.String(); got != tt.wantVersion {
				t.Errorf("version = %q, want %q", got, tt.wantVersion)
			}
		})
	}
}

func TestConstraint_Evaluate(t *testing.T) {
	tests := []struct {
		name       string
		dialect    version.Dialect
		constraint string
		actual     string
		want       bool
		wantErr    bool
	}{
		{name: "basic ge true", dialect: version.DialectBasic, constraint: ">= 1.32.4", actual: "1.33.0", want: true},
		{name: "basic ge equal", dialect: version.DialectBasic, constraint: ">= 1.32.4", actual: "1.32.4", want: true},
		{name: "basic ge false", dialect: version.DialectBasic, constraint: ">= 1.32.4", actual: "1.32.3"},
		{name: "trailing zeros equal", dialect: version.DialectBasic, constraint: "== 1.2", actual: "1.2.0.0", want: true},
		{name: "debian tilde", dialect: version.DialectDebian, constraint: "< 1.0", actual: "1.0~rc1", want: true},
		{name: "debian epoch", dialect: version.DialectDebian, constraint: "gt 2.0", actual: "1:0.1", want: true},
		{name: "rpm caret", dialect: version.DialectRPM, constraint: "> 1.0", actual: "1.0^git1", want: true},
		{name: "decimal", dialect: version.DialectDecimal, constraint: "< 1.5", actual: "1.05", want: true},
		{name: "ne", dialect: version.DialectUnicode, constraint: "!= 1.β", actual: "1.α", want: true},
		{name: "bad actual", dialect: version.DialectBasic, constraint: ">= 1.0", actual: "x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Parse(tt.dialect, tt.constraint)
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			got, err := c.Evaluate(tt.actual)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("%s on %q = %v, want %v", c, tt.actual, got, tt.want)
			}
		})
	}
}

func TestConstraint_String(t *testing.T) {
	c, err := Parse(version.DialectDebian, "ge 0:1.2.0-1")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got := c.String(); got != ">= 1.2-1" {
		t.Errorf("String() = %q", got)
	}
}

func TestCompare(t *testing.T) {
	cmp, ok, err := Compare(version.DialectRPM, "1.1f", OperatorLT, "1.1q")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cmp != -1 || !ok {
		t.Errorf("Compare = (%d, %v), want (-1, true)", cmp, ok)
	}

	_, _, err = Compare(version.DialectBasic, "1.0", OperatorEQ, "1.a")
	if errors.CodeOf(err) != errors.ErrCodeInvalidVersion {
		t.Errorf("expected INVALID_VERSION, got %v", err)
	}
}

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
	"fmt"
	"strings"

	"github.com/NVIDIA/versiontheca/pkg/errors"
	"github.com/NVIDIA/versiontheca/pkg/version"
)

// Operator is a comparison operator in its canonical symbolic form.
type Operator string

const (
	// OperatorEQ represents "==" (equal).
	OperatorEQ Operator = "=="

	// OperatorNE represents "!=" (not equal).
	OperatorNE Operator = "!="

	// OperatorLT represents "<" (less than).
	OperatorLT Operator = "<"

	// OperatorLE represents "<=" (less than or equal).
	OperatorLE Operator = "<="

	// OperatorGT represents ">" (greater than).
	OperatorGT Operator = ">"

	// OperatorGE represents ">=" (greater than or equal).
	OperatorGE Operator = ">="
)

var aliases = map[string]Operator{
	"==": OperatorEQ, "=": OperatorEQ, "eq": OperatorEQ,
	"!=": OperatorNE, "<>": OperatorNE, "ne": OperatorNE,
	"<": OperatorLT, "lt": OperatorLT,
	"<=": OperatorLE, "le": OperatorLE,
	">": OperatorGT, "gt": OperatorGT,
	">=": OperatorGE, "ge": OperatorGE,
}

// symbols in prefix-matching order: longest first so ">=" never reads as ">"
var symbols = []string{">=", "<=", "==", "!=", "<>", ">", "<", "="}

// ParseOperator accepts the symbolic and word forms of each operator. Word
// forms are case-insensitive.
func ParseOperator(s string) (Operator, error) {
	op, ok := aliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", errors.NewWithContext(errors.ErrCodeInvalidRequest,
			"unknown operator", map[string]any{"operator": s})
	}
	return op, nil
}

// Holds reports whether a Compare result satisfies the operator.
func (o Operator) Holds(cmp int) bool {
	switch o {
	case OperatorEQ:
		return cmp == 0
	case OperatorNE:
		return cmp != 0
	case OperatorLT:
		return cmp < 0
	case OperatorLE:
		return cmp <= 0
	case OperatorGT:
		return cmp > 0
	case OperatorGE:
		return cmp >= 0
	default:
		return false
	}
}

// Constraint is a parsed "<op> <version>" expression.
type Constraint struct {
	Operator Operator
	Version  *version.Version
}

// Parse reads an expression such as ">= 1.32.4", "lt 2.0" or "1:2.3-4".
// A bare version means equality.
func Parse(d version.Dialect, expr string) (*Constraint, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "constraint expression cannot be empty")
	}

	op, value := splitOperator(expr)
	if value == "" {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "constraint value cannot be empty after operator")
	}

	v, err := version.ParseVersion(d, value)
	if err != nil {
		return nil, errors.WrapVersion(fmt.Sprintf("cannot parse constraint version %q", value), err)
	}
	return &Constraint{Operator: op, Version: v}, nil
}

func splitOperator(expr string) (Operator, string) {
	for _, sym := range symbols {
		if rest, ok := strings.CutPrefix(expr, sym); ok {
			return aliases[sym], strings.TrimSpace(rest)
		}
	}
	// word operators need whitespace after them: "ge 1.0"
	if word, rest, ok := strings.Cut(expr, " "); ok {
		if op, found := aliases[strings.ToLower(word)]; found {
			return op, strings.TrimSpace(rest)
		}
	}
	return OperatorEQ, expr
}

// Check evaluates the constraint against an already parsed version.
func (c *Constraint) Check(v *version.Version) (bool, error) {
	cmp, err := v.Compare(c.Version)
	if err != nil {
		return false, errors.WrapVersion("cannot compare versions", err)
	}
	return c.Operator.Holds(cmp), nil
}

// Evaluate parses actual with the constraint's dialect and checks it.
func (c *Constraint) Evaluate(actual string) (bool, error) {
	v, err := version.ParseVersion(c.Version.Dialect(), strings.TrimSpace(actual))
	if err != nil {
		return false, errors.WrapVersion(fmt.Sprintf("cannot parse version %q", actual), err)
	}
	return c.Check(v)
}

// String returns the expression in canonical form.
func (c *Constraint) String() string {
	return fmt.Sprintf("%s %s", c.Operator, c.Version)
}

// Compare parses left and right with dialect d and returns their ordering
// together with whether op holds for it.
func Compare(d version.Dialect, left string, op Operator, right string) (int, bool, error) {
	l, err := version.ParseVersion(d, left)
	if err != nil {
		return 0, false, errors.WrapVersion(fmt.Sprintf("cannot parse version %q", left), err)
	}
	r, err := version.ParseVersion(d, right)
	if err != nil {
		return 0, false, errors.WrapVersion(fmt.Sprintf("cannot parse version %q", right), err)
	}
	cmp, err := l.Compare(r)
	if err != nil {
		return 0, false, errors.WrapVersion("cannot compare versions", err)
	}
	return cmp, op.Holds(cmp), nil
}

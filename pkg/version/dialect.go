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

package version

import (
	"errors"
	"fmt"
	"strings"
)

// Dialect names a version grammar.
type Dialect string

// Supported dialects.
const (
	DialectBasic   Dialect = "basic"
	DialectDecimal Dialect = "decimal"
	DialectDebian  Dialect = "debian"
	DialectRPM     Dialect = "rpm"
	DialectRoman   Dialect = "roman"
	DialectUnicode Dialect = "unicode"
)

// ErrUnknownDialect is returned by ParseDialect for unsupported names.
var ErrUnknownDialect = errors.New("unknown version dialect")

var dialects = []Dialect{
	DialectBasic,
	DialectDecimal,
	DialectDebian,
	DialectRPM,
	DialectRoman,
	DialectUnicode,
}

// Dialects returns the supported dialects in a stable order.
func Dialects() []Dialect {
	out := make([]Dialect, len(dialects))
	copy(out, dialects)
	return out
}

// DialectNames returns the supported dialects as strings.
func DialectNames() []string {
	out := make([]string, 0, len(dialects))
	for _, d := range dialects {
		out = append(out, string(d))
	}
	return out
}

// ParseDialect converts a case insensitive name to a Dialect.
func ParseDialect(s string) (Dialect, error) {
	d := Dialect(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range dialects {
		if d == known {
			return d, nil
		}
	}
	return "", fmt.Errorf("%w: %q (supported: %s)", ErrUnknownDialect, s, strings.Join(DialectNames(), ", "))
}

// String implements fmt.Stringer.
func (d Dialect) String() string { return string(d) }

// New returns an empty trait for the dialect. Unknown dialects yield nil.
func (d Dialect) New() Trait {
	switch d {
	case DialectBasic:
		return &Basic{}
	case DialectDecimal:
		return &Decimal{}
	case DialectDebian:
		return &Debian{}
	case DialectRPM:
		return &RPM{}
	case DialectRoman:
		return &Roman{}
	case DialectUnicode:
		return &Unicode{}
	default:
		return nil
	}
}

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
	"math"
	"strconv"
	"strings"
)

// Decimal versions are one integer, or two integers separated by a period,
// read as a decimal number: "1.05" is less than "1.5".
type Decimal struct {
	Basic
}

// Dialect implements Trait.
func (d *Decimal) Dialect() Dialect { return DialectDecimal }

// Parse implements Trait.
func (d *Decimal) Parse(v string) error {
	if err := parseVersion(&d.parts, v, d); err != nil {
		return err
	}
	if d.parts.Len() > 2 {
		return ErrDecimalShape
	}
	if d.parts.Len() == 2 && d.parts.items[1].separator != '.' {
		return ErrDecimalShape
	}
	return nil
}

// Next implements Trait. Only the integral (0) and fractional (1) positions
// exist.
func (d *Decimal) Next(pos int, format Trait) error {
	d.checkPosition(pos)
	return d.Basic.Next(pos, format)
}

// Previous implements Trait.
func (d *Decimal) Previous(pos int, format Trait) error {
	d.checkPosition(pos)
	return d.Basic.Previous(pos, format)
}

func (d *Decimal) checkPosition(pos int) {
	if pos > 1 {
		contractViolation("a decimal version only has two positions, %d is out of range", pos)
	}
}

// Canonical renders "<integral>.<fraction>"; the fraction keeps its leading
// zeros.
func (d *Decimal) Canonical() (string, error) {
	if d.parts.Empty() {
		return "", ErrNoParts
	}
	return d.integral() + "." + d.fraction(), nil
}

// Compare implements Trait. Two decimals compare as numbers; any other rhs
// falls back to the positional comparison.
func (d *Decimal) Compare(rhs Trait) (int, error) {
	r, ok := rhs.(*Decimal)
	if !ok {
		return compareParts(&d.parts, rhs.Parts())
	}
	if d.parts.Empty() || r.parts.Empty() {
		return 0, ErrEmptyVersion
	}

	if c := d.parts.items[0].Compare(r.parts.items[0]); c != 0 {
		return c, nil
	}

	lf, rf := d.fraction(), r.fraction()
	n := max(len(lf), len(rf))
	lf += strings.Repeat("0", n-len(lf))
	rf += strings.Repeat("0", n-len(rf))
	return strings.Compare(lf, rf), nil
}

// Float64 returns the version as a floating point number, NaN when empty.
func (d *Decimal) Float64() float64 {
	if d.parts.Empty() {
		return math.NaN()
	}
	f := float64(d.parts.items[0].integer)
	if d.parts.Len() == 2 {
		p := d.parts.items[1]
		f += float64(p.integer) / math.Pow10(max(p.width, len(strconv.FormatUint(uint64(p.integer), 10))))
	}
	return f
}

func (d *Decimal) integral() string {
	return strconv.FormatUint(uint64(d.parts.items[0].integer), 10)
}

func (d *Decimal) fraction() string {
	if d.parts.Len() < 2 {
		return "0"
	}
	p := d.parts.items[1]
	s := strconv.FormatUint(uint64(p.integer), 10)
	if w := max(p.width, 1); len(s) < w {
		s = strings.Repeat("0", w-len(s)) + s
	}
	return s
}

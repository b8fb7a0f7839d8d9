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
	"fmt"
)

// Version wraps a Trait with a validity flag and an optional format.
//
// A failed Set, Next or Previous clears the parts and marks the version
// invalid. Accessors of an invalid version return zero values.
type Version struct {
	trait  Trait
	format *Version
	valid  bool
}

// NewVersion returns an empty, invalid version using t. A nil trait selects
// the Basic dialect.
func NewVersion(t Trait) *Version {
	if t == nil {
		t = &Basic{}
	}
	return &Version{trait: t}
}

// ParseVersion parses s with the given dialect.
func ParseVersion(d Dialect, s string) (*Version, error) {
	t := d.New()
	if t == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDialect, d)
	}
	v := NewVersion(t)
	if err := v.Set(s); err != nil {
		return nil, err
	}
	return v, nil
}

// MustParseVersion parses a version string and panics if parsing fails.
//
// Only use this for hardcoded strings or in tests. For user input or runtime
// data, always use ParseVersion and handle errors explicitly.
//
// Example usage:
//
//	v := version.MustParseVersion(version.DialectDebian, "1:2.3-4")
func MustParseVersion(d Dialect, s string) *Version {
	v, err := ParseVersion(d, s)
	if err != nil {
		panic(fmt.Sprintf("MustParseVersion: %v", err))
	}
	return v
}

// Set parses s, replacing the current value.
func (v *Version) Set(s string) error {
	if err := v.trait.Parse(s); err != nil {
		v.invalidate()
		return err
	}
	v.valid = true
	return nil
}

// Trait returns the underlying dialect instance.
func (v *Version) Trait() Trait { return v.trait }

// Dialect returns the dialect of the version.
func (v *Version) Dialect() Dialect { return v.trait.Dialect() }

// IsValid reports whether the last Set, Next or Previous succeeded.
func (v *Version) IsValid() bool { return v.valid }

// Size returns the number of parts.
func (v *Version) Size() int { return v.trait.Parts().Len() }

// SetFormat sets the template consulted by Next and Previous. The format is
// never modified. Pass nil to remove it.
func (v *Version) SetFormat(format *Version) { v.format = format }

// Format returns the current template, possibly nil.
func (v *Version) Format() *Version { return v.format }

// Canonical renders the version.
func (v *Version) Canonical() (string, error) {
	if v == nil || !v.valid {
		return "", ErrInvalidVersion
	}
	return v.trait.Canonical()
}

// String implements fmt.Stringer. Invalid versions render as "".
func (v *Version) String() string {
	s, err := v.Canonical()
	if err != nil {
		return ""
	}
	return s
}

// Next increments the version at pos (0 is the major part).
func (v *Version) Next(pos int) error {
	return v.step(pos, v.trait.Next)
}

// Previous decrements the version at pos (0 is the major part).
func (v *Version) Previous(pos int) error {
	return v.step(pos, v.trait.Previous)
}

func (v *Version) step(pos int, op func(int, Trait) error) error {
	var format Trait
	if v.format != nil && v.format.valid {
		format = v.format.trait
	}
	if err := op(pos, format); err != nil {
		v.invalidate()
		return err
	}
	v.valid = !v.trait.Parts().Empty()
	return nil
}

func (v *Version) invalidate() {
	v.trait.Parts().Clear()
	v.valid = false
}

// Compare returns -1, 0 or 1. Both versions must be valid.
func (v *Version) Compare(rhs *Version) (int, error) {
	if rhs == nil || !v.valid || !rhs.valid {
		return 0, ErrInvalidVersion
	}
	return v.trait.Compare(rhs.trait)
}

func (v *Version) compare(rhs *Version) (int, bool) {
	c, err := v.Compare(rhs)
	return c, err == nil
}

// Equal reports v == rhs; false when either side is invalid.
func (v *Version) Equal(rhs *Version) bool {
	c, ok := v.compare(rhs)
	return ok && c == 0
}

// NotEqual reports v != rhs; false when either side is invalid.
func (v *Version) NotEqual(rhs *Version) bool {
	c, ok := v.compare(rhs)
	return ok && c != 0
}

// Less reports v < rhs; false when either side is invalid.
func (v *Version) Less(rhs *Version) bool {
	c, ok := v.compare(rhs)
	return ok && c < 0
}

// LessOrEqual reports v <= rhs; false when either side is invalid.
func (v *Version) LessOrEqual(rhs *Version) bool {
	c, ok := v.compare(rhs)
	return ok && c <= 0
}

// Greater reports v > rhs; false when either side is invalid.
func (v *Version) Greater(rhs *Version) bool {
	c, ok := v.compare(rhs)
	return ok && c > 0
}

// GreaterOrEqual reports v >= rhs; false when either side is invalid.
func (v *Version) GreaterOrEqual(rhs *Version) bool {
	c, ok := v.compare(rhs)
	return ok && c >= 0
}

// Major returns the first upstream integer, 0 when missing or a string.
func (v *Version) Major() uint32 { return v.field(0) }

// Minor returns the second upstream integer.
func (v *Version) Minor() uint32 { return v.field(1) }

// Patch returns the third upstream integer.
func (v *Version) Patch() uint32 { return v.field(2) }

// Build returns the fourth upstream integer.
func (v *Version) Build() uint32 { return v.field(3) }

// SetMajor sets the first upstream part to an integer.
func (v *Version) SetMajor(n uint32) error { return v.setField(0, n) }

// SetMinor sets the second upstream part to an integer.
func (v *Version) SetMinor(n uint32) error { return v.setField(1, n) }

// SetPatch sets the third upstream part to an integer.
func (v *Version) SetPatch(n uint32) error { return v.setField(2, n) }

// SetBuild sets the fourth upstream part to an integer.
func (v *Version) SetBuild(n uint32) error { return v.setField(3, n) }

func (v *Version) field(rel int) uint32 {
	if !v.valid {
		return 0
	}
	start, end := v.trait.Upstream()
	if start+rel >= end {
		return 0
	}
	p := v.trait.Parts().At(start + rel)
	if !p.IsInteger() {
		return 0
	}
	return p.integer
}

// setField writes an integer at an upstream position, adding zero parts
// when the upstream is shorter.
func (v *Version) setField(rel int, n uint32) error {
	parts := v.trait.Parts()
	start, end := v.trait.Upstream()
	if !v.valid {
		start, end = 0, 0
	}
	for end <= start+rel {
		var p Part
		if end > start {
			p.separator = '.'
		}
		if err := parts.Insert(end, p); err != nil {
			return err
		}
		end++
	}
	parts.Ref(start + rel).SetInteger(n)
	v.valid = true
	return nil
}

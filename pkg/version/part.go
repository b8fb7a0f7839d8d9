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
	"unicode/utf8"
)

// Part kinds used by the dialects.
const (
	KindNone     rune = 0
	KindEpoch    rune = ':'
	KindRevision rune = '-'
	KindRoman    rune = 'R'
)

// Part is one token of a version: either an unsigned 32 bit integer or a
// string. The zero value is the integer 0 without separator.
type Part struct {
	integer   uint32
	text      string
	isString  bool
	separator rune
	kind      rune
	width     int
}

// NewIntegerPart returns an integer part.
func NewIntegerPart(v uint32) Part {
	return Part{integer: v}
}

// NewStringPart returns a string part.
func NewStringPart(s string) Part {
	return Part{text: s, isString: true}
}

// SetValue sets the part from its textual form. An all-digit value becomes
// an integer; anything else is kept as a string. The empty string is the
// integer 0.
func (p *Part) SetValue(value string) error {
	if value == "" {
		p.SetInteger(0)
		p.width = 0
		return nil
	}

	var v uint64
	for i := 0; i < len(value); i++ {
		c := value[i]
		if c < '0' || c > '9' {
			p.SetString(value)
			return nil
		}
		v = v*10 + uint64(c-'0')
		if v > math.MaxUint32 {
			return ErrIntegerTooLarge
		}
	}

	p.SetInteger(uint32(v))
	p.width = len(value)
	return nil
}

// SetInteger turns the part into an integer.
func (p *Part) SetInteger(v uint32) {
	p.integer = v
	p.text = ""
	p.isString = false
}

// SetString turns the part into a string.
func (p *Part) SetString(s string) {
	p.integer = 0
	p.text = s
	p.isString = true
	p.width = 0
}

// SetToMaxInteger sets the part to the largest integer.
func (p *Part) SetToMaxInteger() {
	p.SetInteger(math.MaxUint32)
	p.width = 0
}

// SetToMaxString sets the part to n 'z' characters (at least one).
func (p *Part) SetToMaxString(n int) {
	p.SetString(strings.Repeat("z", max(n, 1)))
}

// SetSeparator sets the character that preceded this part. Zero means no
// separator. Control characters and surrogates are rejected.
func (p *Part) SetSeparator(sep rune) error {
	if (sep != 0 && isControl(sep)) || (sep >= 0xD800 && sep <= 0xDFFF) {
		return ErrInvalidSeparator
	}
	p.separator = sep
	return nil
}

// isControl reports whether c is a C0 control, DEL or a C1 control.
func isControl(c rune) bool {
	return (c >= 0 && c <= 0x1F) || (c >= 0x7F && c <= 0x9F)
}

// Separator returns the separator rune or 0.
func (p Part) Separator() rune { return p.separator }

// SetKind tags the part (see the Kind constants).
func (p *Part) SetKind(kind rune) { p.kind = kind }

// Kind returns the part tag.
func (p Part) Kind() rune { return p.kind }

// SetWidth sets the number of digits the integer is rendered with.
func (p *Part) SetWidth(width int) { p.width = width }

// Width returns the original number of digits of an integer part.
func (p Part) Width() int { return p.width }

// IsInteger reports whether the part holds an integer.
func (p Part) IsInteger() bool { return !p.isString }

// Integer returns the integer value. It panics on a string part.
func (p Part) Integer() uint32 {
	if p.isString {
		contractViolation("this part is not an integer")
	}
	return p.integer
}

// StringValue returns the string value. It panics on an integer part.
func (p Part) StringValue() string {
	if !p.isString {
		contractViolation("this part is not a string")
	}
	return p.text
}

// String returns the text form of the part. Integers are zero padded to
// their width.
func (p Part) String() string {
	if p.isString {
		return p.text
	}
	s := strconv.FormatUint(uint64(p.integer), 10)
	if len(s) < p.width {
		s = strings.Repeat("0", p.width-len(s)) + s
	}
	return s
}

// IsZero reports whether the part is at its floor: integer 0 or a string
// made only of 'A'.
func (p Part) IsZero() bool {
	if !p.isString {
		return p.integer == 0
	}
	if p.text == "" {
		return false
	}
	for i := 0; i < len(p.text); i++ {
		if p.text[i] != 'A' {
			return false
		}
	}
	return true
}

// Next increments the part. Strings are incremented like an odometer over
// A-Z then a-z, ignoring anything that is not a letter. It returns false,
// leaving the part untouched, when no larger value exists.
func (p *Part) Next() bool {
	if !p.isString {
		if p.integer == math.MaxUint32 {
			return false
		}
		p.integer++
		return true
	}

	r := []rune(p.text)
	for i := len(r) - 1; i >= 0; i-- {
		switch c := r[i]; {
		case c >= 'A' && c < 'Z', c >= 'a' && c < 'z':
			r[i]++
			p.text = string(r)
			return true
		case c == 'Z':
			r[i] = 'a'
			p.text = string(r)
			return true
		case c == 'z':
			r[i] = 'A'
		}
	}
	return false
}

// Previous decrements the part, mirroring Next. It returns false, leaving
// the part untouched, when no smaller value exists.
func (p *Part) Previous() bool {
	if !p.isString {
		if p.integer == 0 {
			return false
		}
		p.integer--
		return true
	}

	r := []rune(p.text)
	for i := len(r) - 1; i >= 0; i-- {
		switch c := r[i]; {
		case c > 'A' && c <= 'Z', c > 'a' && c <= 'z':
			r[i]--
			p.text = string(r)
			return true
		case c == 'a':
			r[i] = 'Z'
			p.text = string(r)
			return true
		case c == 'A':
			r[i] = 'z'
		}
	}
	return false
}

// Compare returns -1, 0 or 1. Two integers compare numerically, anything
// else compares the text forms.
func (p Part) Compare(o Part) int {
	if !p.isString && !o.isString {
		switch {
		case p.integer < o.integer:
			return -1
		case p.integer > o.integer:
			return 1
		}
		return 0
	}
	return strings.Compare(p.String(), o.String())
}

// runeCount is the length used when a string part drives the width of a
// synthesized part.
func (p Part) runeCount() int {
	return utf8.RuneCountInString(p.text)
}

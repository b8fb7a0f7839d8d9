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
	"strings"
	"unicode/utf8"
)

// Trait is the contract every version dialect implements.
//
// A Trait owns its Parts. It is not safe for concurrent mutation; comparing
// two already parsed traits does not mutate either side.
type Trait interface {
	// Dialect names the grammar implemented by the trait.
	Dialect() Dialect

	// Parse clears the trait and parses v. On error the parts are left in
	// an unspecified state; the Version facade clears them.
	Parse(v string) error

	// IsValidCharacter reports whether c may appear inside a string part.
	IsValidCharacter(c rune) bool

	// IsSeparator reports whether c separates two parts.
	IsSeparator(c rune) bool

	// Compare returns -1, 0 or 1. Both sides must hold at least one part.
	Compare(rhs Trait) (int, error)

	// Next increments the version at pos, relative to the start of the
	// upstream window. format may be nil.
	Next(pos int, format Trait) error

	// Previous decrements the version at pos, relative to the start of the
	// upstream window. format may be nil.
	Previous(pos int, format Trait) error

	// Canonical renders the canonical form of the version.
	Canonical() (string, error)

	// Upstream returns the half-open range of parts next and previous may
	// modify.
	Upstream() (start, end int)

	// Parts gives access to the underlying parts.
	Parts() *Parts
}

// characterSet is the part of a Trait the tokenizer depends on.
type characterSet interface {
	IsValidCharacter(c rune) bool
	IsSeparator(c rune) bool
}

// sequence is embedded by every dialect.
type sequence struct {
	parts Parts
}

// Parts gives access to the underlying parts.
func (s *sequence) Parts() *Parts { return &s.parts }

// Upstream returns the whole sequence.
func (s *sequence) Upstream() (int, int) { return 0, s.parts.Len() }

// IsValidCharacter accepts any valid character except the period and the
// C0 and C1 control characters.
func (s *sequence) IsValidCharacter(c rune) bool {
	return c != '.' && !isControl(c) && utf8.ValidRune(c)
}

// IsSeparator accepts the period only.
func (s *sequence) IsSeparator(c rune) bool {
	return c == '.'
}

// parseVersion clears parts and tokenizes v.
func parseVersion(parts *Parts, v string, cs characterSet) error {
	parts.Clear()
	if v == "" {
		return ErrEmptyInput
	}
	return tokenize(parts, v, 0, cs)
}

// tokenize appends the parts found in v. sep is the separator attached to
// the first part found.
func tokenize(parts *Parts, v string, sep rune, cs characterSet) error {
	start := 0
	for i, c := range v {
		if c == utf8.RuneError {
			if _, size := utf8.DecodeRuneInString(v[i:]); size <= 1 {
				return ErrInvalidUTF8
			}
		}
		if cs.IsSeparator(c) {
			if err := tokenizeValue(parts, v[start:i], sep, cs); err != nil {
				return err
			}
			sep = c
			start = i + utf8.RuneLen(c)
		}
	}
	return tokenizeValue(parts, v[start:], sep, cs)
}

// tokenizeValue splits one value into alternating runs of digits (integer
// parts) and other characters (string parts).
func tokenizeValue(parts *Parts, value string, sep rune, cs characterSet) error {
	if value == "" {
		return ErrEmptyValue
	}

	for value != "" {
		var p Part
		n := digitPrefix(value)
		if n > 0 {
			if err := p.SetValue(value[:n]); err != nil {
				return err
			}
		} else {
			n = nonDigitPrefix(value)
			for _, c := range value[:n] {
				if !cs.IsValidCharacter(c) {
					return unexpectedCharacter(c)
				}
			}
			p.SetString(value[:n])
		}
		if err := p.SetSeparator(sep); err != nil {
			return err
		}
		if err := parts.Append(p); err != nil {
			return err
		}
		sep = 0
		value = value[n:]
	}
	return nil
}

func digitPrefix(s string) int {
	n := 0
	for n < len(s) && isDigit(s[n]) {
		n++
	}
	return n
}

func nonDigitPrefix(s string) int {
	n := 0
	for n < len(s) && !isDigit(s[n]) {
		n++
	}
	return n
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isLetter(c rune) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

// renderParts renders parts the default way: trailing zeros are trimmed and
// a lone part is completed with ".0" (or ".A" when a string followed).
func renderParts(items []Part, text func(Part) string) (string, error) {
	if len(items) == 0 {
		return "", ErrNoParts
	}

	n := len(items)
	for n > 1 && items[n-1].IsZero() {
		n--
	}

	var sb strings.Builder
	writeParts(&sb, items[:n], text, true)
	if n == 1 {
		if len(items) >= 2 && !items[1].IsInteger() {
			sb.WriteString(".A")
		} else {
			sb.WriteString(".0")
		}
	}
	return sb.String(), nil
}

// writeParts writes each separator followed by the part text. When first is
// true the first part must not carry a separator.
func writeParts(sb *strings.Builder, items []Part, text func(Part) string, first bool) {
	for i, p := range items {
		if p.separator != 0 {
			if i == 0 && first {
				contractViolation("the first part of a version cannot have a separator")
			}
			sb.WriteRune(p.separator)
		}
		sb.WriteString(text(p))
	}
}

func partText(p Part) string { return p.String() }

// compareParts compares two sequences position by position. A missing
// position loses against any non-zero part.
func compareParts(lhs, rhs *Parts) (int, error) {
	if lhs.Empty() || rhs.Empty() {
		return 0, ErrEmptyVersion
	}

	n := max(lhs.Len(), rhs.Len())
	for i := 0; i < n; i++ {
		switch {
		case i >= lhs.Len():
			if !rhs.At(i).IsZero() {
				return -1, nil
			}
		case i >= rhs.Len():
			if !lhs.At(i).IsZero() {
				return 1, nil
			}
		default:
			if r := lhs.At(i).Compare(rhs.At(i)); r != 0 {
				return r, nil
			}
		}
	}
	return 0, nil
}

// formatPart returns the ceiling for the upstream position rel: the format
// part when there is one, otherwise the largest integer or "z".
func formatPart(format Trait, rel int, integer bool) Part {
	if format != nil {
		start, end := format.Upstream()
		if start+rel < end {
			return format.Parts().At(start + rel)
		}
	}

	var p Part
	if integer {
		p.SetToMaxInteger()
		if rel != 0 {
			p.separator = '.'
		}
	} else {
		p.SetToMaxString(1)
	}
	return p
}

func checkPosition(op string, pos int) {
	if pos < 0 {
		contractViolation("position calling %s() cannot be a negative number", op)
	}
	if pos >= MaxParts {
		contractViolation("position calling %s() cannot be more than %d", op, MaxParts)
	}
}

// extendWindow adds floor parts at the end of the window until it contains
// abs. The type and separator of each new part come from the format.
func extendWindow(parts *Parts, start, end, abs int, format Trait) (int, error) {
	for end <= abs {
		f := formatPart(format, end-start, true)
		var p Part
		if !f.IsInteger() {
			p.SetString(strings.Repeat("A", max(f.runeCount(), 1)))
		}
		p.separator = f.separator
		if err := parts.Insert(end, p); err != nil {
			return end, err
		}
		end++
	}
	return end, nil
}

// nextInWindow increments the part at start+pos, carrying into the parts on
// its left. Only parts inside [start, end) are modified.
func nextInWindow(parts *Parts, start, end, pos int, format Trait) error {
	checkPosition("next", pos)

	abs := start + pos
	end, err := extendWindow(parts, start, end, abs, format)
	if err != nil {
		return err
	}

	for {
		p := parts.Ref(abs)
		if p.Compare(formatPart(format, abs-start, p.IsInteger())) != 0 && p.Next() {
			break
		}
		if abs <= start {
			return ErrMaximumLimit
		}
		parts.Erase(abs)
		end--
		abs--
	}

	// 1.9 becomes 2.0, not 2
	if abs == start && start+1 < end && parts.At(start+1).IsInteger() {
		parts.Ref(start + 1).SetInteger(0)
		abs++
	}

	for end > abs+1 {
		parts.Erase(abs + 1)
		end--
	}
	return nil
}

// previousInWindow decrements the part at start+pos, borrowing from the
// parts on its left. Only parts inside [start, end) are modified.
func previousInWindow(parts *Parts, start, end, pos int, format Trait) error {
	checkPosition("previous", pos)

	abs := start + pos
	end, err := extendWindow(parts, start, end, abs, format)
	if err != nil {
		return err
	}

	for {
		p := parts.Ref(abs)
		if !p.IsZero() && p.Previous() {
			for abs-start > 1 && abs+1 == end && parts.At(abs).IsZero() {
				parts.Erase(abs)
				end--
				abs--
			}
			return nil
		}
		if abs <= start {
			return ErrMinimumLimit
		}
		ceiling := formatPart(format, abs-start, p.IsInteger())
		ceiling.kind = p.kind
		parts.Set(abs, ceiling)
		abs--
	}
}

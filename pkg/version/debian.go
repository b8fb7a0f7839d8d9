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
	"strings"
)

// Debian versions have the form [epoch:]upstream[-revision].
//
// The epoch is tagged KindEpoch and the revision parts KindRevision. Next
// and Previous only modify the upstream parts.
type Debian struct {
	sequence

	// set while parsing; the upstream may contain ':' when there is an
	// epoch and '-' when there is a revision
	colon bool
	dash  bool
}

// Dialect implements Trait.
func (d *Debian) Dialect() Dialect { return DialectDebian }

// IsValidCharacter accepts letters, digits, '+' and '~' plus the delimiters
// the version structure allows at this point of the parse.
func (d *Debian) IsValidCharacter(c rune) bool {
	switch {
	case c >= '0' && c <= '9', isLetter(c), c == '+', c == '~':
		return true
	case c == ':':
		return d.colon
	case c == '-':
		return d.dash
	}
	return false
}

// Parse implements Trait.
func (d *Debian) Parse(v string) error {
	d.colon, d.dash = false, false
	defer func() { d.colon, d.dash = false, false }()

	return parsePackage(&d.parts, v, func(epoch, revision bool) characterSet {
		d.colon, d.dash = epoch, revision
		return d
	}, func(start int) error {
		if start >= d.parts.Len() || !d.parts.items[start].IsInteger() {
			return fmt.Errorf("%w %q", ErrMustStartWithNumber, v)
		}
		return nil
	})
}

// Upstream implements Trait.
func (d *Debian) Upstream() (int, int) {
	return packageWindow(&d.parts)
}

// Next implements Trait.
func (d *Debian) Next(pos int, format Trait) error {
	checkPosition("next", pos)
	if d.parts.Empty() {
		return ErrNoUpstream
	}
	start, end := d.Upstream()
	return nextInWindow(&d.parts, start, end, pos, format)
}

// Previous implements Trait.
func (d *Debian) Previous(pos int, format Trait) error {
	checkPosition("previous", pos)
	if d.parts.Empty() {
		return ErrNoUpstream
	}
	start, end := d.Upstream()
	return previousInWindow(&d.parts, start, end, pos, format)
}

// Canonical implements Trait. The epoch is shown when it is not zero or
// when the upstream contains a ':'.
func (d *Debian) Canonical() (string, error) {
	return renderPackage(&d.parts, func(start, end int) bool {
		for _, p := range d.parts.items[start:end] {
			if !p.IsInteger() && strings.ContainsRune(p.text, ':') {
				return true
			}
		}
		return false
	})
}

// Compare implements Trait. Epochs compare first, then the upstream and
// finally the revision. Each section is compared as alternating non-digit
// and digit runs, with non-digit runs ordered as dpkg does.
func (d *Debian) Compare(rhs Trait) (int, error) {
	r, ok := rhs.(*Debian)
	if !ok {
		return compareParts(&d.parts, rhs.Parts())
	}
	if d.parts.Empty() || r.parts.Empty() {
		return 0, ErrEmptyVersion
	}

	if c := compareEpochs(&d.parts, &r.parts); c != 0 {
		return c, nil
	}

	lpos, rpos := epochLen(&d.parts), epochLen(&r.parts)
	for _, kind := range []rune{KindNone, KindRevision} {
		for inSection(&d.parts, lpos, kind) || inSection(&r.parts, rpos, kind) {
			var ls, rs string
			if inSection(&d.parts, lpos, kind) && !d.parts.items[lpos].IsInteger() {
				ls = d.parts.items[lpos].text
				lpos++
			}
			if inSection(&r.parts, rpos, kind) && !r.parts.items[rpos].IsInteger() {
				rs = r.parts.items[rpos].text
				rpos++
			}
			if c := compareDebianStrings(ls, rs); c != 0 {
				return c, nil
			}

			var li, ri uint32
			if inSection(&d.parts, lpos, kind) && d.parts.items[lpos].IsInteger() {
				li = d.parts.items[lpos].integer
				lpos++
			}
			if inSection(&r.parts, rpos, kind) && r.parts.items[rpos].IsInteger() {
				ri = r.parts.items[rpos].integer
				rpos++
			}
			if c := compareIntegers(li, ri); c != 0 {
				return c, nil
			}
		}
	}
	return 0, nil
}

// parsePackage splits v in epoch, upstream and revision. charset returns
// the character set to use for the upstream and the revision; check
// validates the upstream once tokenized.
func parsePackage(parts *Parts, v string, charset func(epoch, revision bool) characterSet, check func(start int) error) error {
	parts.Clear()
	if v == "" {
		return ErrEmptyInput
	}

	colon := strings.IndexByte(v, ':')
	dash := strings.LastIndexByte(v, '-')
	if colon == 0 || dash == 0 || (colon > 0 && dash > 0 && colon > dash) {
		return fmt.Errorf("%w in %q", ErrInvalidDelimiters, v)
	}

	upstream := v
	var sep rune
	if colon > 0 {
		var epoch Part
		if err := epoch.SetValue(v[:colon]); err != nil {
			return err
		}
		if !epoch.IsInteger() {
			return ErrEpochNotInteger
		}
		epoch.kind = KindEpoch
		if err := parts.Append(epoch); err != nil {
			return err
		}
		upstream = v[colon+1:]
		dash -= colon + 1
		sep = KindEpoch
	}

	var revision string
	if dash >= 0 {
		revision = upstream[dash+1:]
		upstream = upstream[:dash]
	}

	start := parts.Len()
	if err := tokenize(parts, upstream, sep, charset(colon > 0, dash >= 0)); err != nil {
		return err
	}
	if err := check(start); err != nil {
		return err
	}

	if dash < 0 {
		return nil
	}
	first := parts.Len()
	if err := tokenize(parts, revision, KindRevision, charset(false, false)); err != nil {
		return err
	}
	for i := first; i < parts.Len(); i++ {
		parts.items[i].kind = KindRevision
	}
	return nil
}

// packageWindow returns the range of the upstream parts.
func packageWindow(parts *Parts) (int, int) {
	start, end := 0, parts.Len()
	if end > 0 && parts.items[0].kind == KindEpoch {
		start = 1
	}
	for i := start; i < parts.Len(); i++ {
		if parts.items[i].kind == KindRevision {
			end = i
			break
		}
	}
	return start, end
}

// renderPackage writes [epoch:]upstream[-revision]. Trailing zeros of the
// upstream are trimmed down to two parts.
func renderPackage(parts *Parts, forceEpoch func(start, end int) bool) (string, error) {
	if parts.Empty() {
		return "", ErrNoParts
	}

	start, end := packageWindow(parts)
	last := end
	for last > start+2 && parts.items[last-1].IsZero() {
		last--
	}

	var sb strings.Builder
	withEpoch := false
	if start > 0 {
		epoch := parts.items[0]
		if !epoch.IsZero() || forceEpoch(start, end) {
			sb.WriteString(epoch.String())
			withEpoch = true
		}
	}

	for i := start; i < last; i++ {
		p := parts.items[i]
		if p.separator != 0 && (i != start || withEpoch) {
			sb.WriteRune(p.separator)
		}
		sb.WriteString(p.String())
	}
	if last-start == 1 {
		sb.WriteString(".0")
	}

	writeParts(&sb, parts.items[end:], partText, false)
	return sb.String(), nil
}

func epochLen(parts *Parts) int {
	if parts.Len() > 0 && parts.items[0].kind == KindEpoch {
		return 1
	}
	return 0
}

func compareEpochs(lhs, rhs *Parts) int {
	var l, r uint32
	if epochLen(lhs) == 1 {
		l = lhs.items[0].integer
	}
	if epochLen(rhs) == 1 {
		r = rhs.items[0].integer
	}
	return compareIntegers(l, r)
}

func inSection(parts *Parts, pos int, kind rune) bool {
	return pos < parts.Len() && parts.items[pos].kind == kind
}

func compareIntegers(l, r uint32) int {
	switch {
	case l < r:
		return -1
	case l > r:
		return 1
	}
	return 0
}

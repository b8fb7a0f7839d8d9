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

// RPM versions have the form [epoch:]version[-release]. Both '.' and '+'
// separate parts.
type RPM struct {
	sequence
}

// Dialect implements Trait.
func (r *RPM) Dialect() Dialect { return DialectRPM }

// IsValidCharacter accepts letters, digits, '~', '^' and '_'.
func (r *RPM) IsValidCharacter(c rune) bool {
	return (c >= '0' && c <= '9') || isLetter(c) || c == '~' || c == '^' || c == '_'
}

// IsSeparator accepts '.' and '+'.
func (r *RPM) IsSeparator(c rune) bool {
	return c == '.' || c == '+'
}

// Parse implements Trait. Unlike Debian, the version may start with a
// letter.
func (r *RPM) Parse(v string) error {
	return parsePackage(&r.parts, v, func(bool, bool) characterSet {
		return r
	}, func(int) error {
		return nil
	})
}

// Upstream implements Trait.
func (r *RPM) Upstream() (int, int) {
	return packageWindow(&r.parts)
}

// Next implements Trait.
func (r *RPM) Next(pos int, format Trait) error {
	checkPosition("next", pos)
	if r.parts.Empty() {
		return ErrNoUpstream
	}
	start, end := r.Upstream()
	return nextInWindow(&r.parts, start, end, pos, format)
}

// Previous implements Trait.
func (r *RPM) Previous(pos int, format Trait) error {
	checkPosition("previous", pos)
	if r.parts.Empty() {
		return ErrNoUpstream
	}
	start, end := r.Upstream()
	return previousInWindow(&r.parts, start, end, pos, format)
}

// Canonical implements Trait.
func (r *RPM) Canonical() (string, error) {
	return renderPackage(&r.parts, func(int, int) bool { return false })
}

// Compare implements Trait. Epochs compare first, then the version and the
// release slot by slot. A slot holding an integer beats a slot holding a
// string, except 0 against an empty slot.
func (r *RPM) Compare(rhs Trait) (int, error) {
	o, ok := rhs.(*RPM)
	if !ok {
		return compareParts(&r.parts, rhs.Parts())
	}
	if r.parts.Empty() || o.parts.Empty() {
		return 0, ErrEmptyVersion
	}

	if c := compareEpochs(&r.parts, &o.parts); c != 0 {
		return c, nil
	}

	lpos, rpos := epochLen(&r.parts), epochLen(&o.parts)
	for _, kind := range []rune{KindNone, KindRevision} {
		for inSection(&r.parts, lpos, kind) || inSection(&o.parts, rpos, kind) {
			l := NewStringPart("")
			if inSection(&r.parts, lpos, kind) {
				l = r.parts.items[lpos]
				lpos++
			}
			rp := NewStringPart("")
			if inSection(&o.parts, rpos, kind) {
				rp = o.parts.items[rpos]
				rpos++
			}
			if c := compareRPMParts(l, rp); c != 0 {
				return c, nil
			}
		}
	}
	return 0, nil
}

func compareRPMParts(l, r Part) int {
	switch {
	case l.IsInteger() && r.IsInteger():
		return compareIntegers(l.integer, r.integer)
	case !l.IsInteger() && !r.IsInteger():
		return compareRPMStrings(l.text, r.text)
	case l.IsInteger():
		if l.integer != 0 || r.text != "" {
			return 1
		}
	default:
		if r.integer != 0 || l.text != "" {
			return -1
		}
	}
	return 0
}

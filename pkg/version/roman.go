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
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MaxRoman is the largest value a Roman numeral can represent.
const MaxRoman = 3999

var (
	romanThousands = [...]string{"", "M", "MM", "MMM"}
	romanHundreds  = [...]string{"", "C", "CC", "CCC", "CD", "D", "DC", "DCC", "DCCC", "CM"}
	romanTens      = [...]string{"", "X", "XX", "XXX", "XL", "L", "LX", "LXX", "LXXX", "XC"}
	romanUnits     = [...]string{"", "I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX"}
)

var romanUpper = cases.Upper(language.Und)

func romanValue(c rune) int {
	switch c {
	case 'I':
		return 1
	case 'V':
		return 5
	case 'X':
		return 10
	case 'L':
		return 50
	case 'C':
		return 100
	case 'D':
		return 500
	case 'M':
		return 1000
	}
	return 0
}

// ToRoman encodes n in canonical Roman numerals. Zero and values above
// MaxRoman yield an empty string.
func ToRoman(n int) string {
	if n <= 0 || n > MaxRoman {
		return ""
	}
	return romanThousands[n/1000] + romanHundreds[n/100%10] + romanTens[n/10%10] + romanUnits[n%10]
}

// FromRoman decodes a case insensitive Roman numeral. It returns 0 when s
// contains anything other than the letters IVXLCDM, in either ASCII case,
// or when the letters do not add up to a positive value.
//
// The scan goes right to left; a letter smaller than its right neighbor
// subtracts, a repeated letter follows the previous decision. Non canonical
// numerals such as "IIII" or "IC" are therefore accepted.
func FromRoman(s string) int {
	// only ASCII letters fold; "ı" must not read as "I"
	for _, c := range s {
		if c > unicode.MaxASCII {
			return 0
		}
	}
	r := []rune(romanUpper.String(s))
	if len(r) == 0 {
		return 0
	}

	result := romanValue(r[len(r)-1])
	if result == 0 {
		return 0
	}

	subtract := false
	for i := len(r) - 2; i >= 0; i-- {
		v := romanValue(r[i])
		right := romanValue(r[i+1])
		switch {
		case v == 0:
			return 0
		case v == right:
			if subtract {
				result -= v
			} else {
				result += v
			}
		case v < right:
			result -= v
			subtract = true
		default:
			result += v
			subtract = false
		}
	}
	return max(result, 0)
}

// Roman versions accept Roman numerals anywhere a number is expected, e.g.
// "III.xii". Numerals are stored as integers and rendered in upper case.
type Roman struct {
	Unicode
}

// Dialect implements Trait.
func (r *Roman) Dialect() Dialect { return DialectRoman }

// Parse implements Trait.
func (r *Roman) Parse(v string) error {
	if err := parseVersion(&r.parts, v, r); err != nil {
		return err
	}
	for i := range r.parts.items {
		p := &r.parts.items[i]
		if p.IsInteger() {
			continue
		}
		if n := FromRoman(p.text); n >= 1 && n <= MaxRoman {
			p.SetInteger(uint32(n))
			p.kind = KindRoman
		}
	}
	return nil
}

// Canonical implements Trait.
func (r *Roman) Canonical() (string, error) {
	return renderParts(r.parts.items, romanText)
}

func romanText(p Part) string {
	if p.kind == KindRoman && p.IsInteger() && p.integer >= 1 && p.integer <= MaxRoman {
		return ToRoman(int(p.integer))
	}
	return p.String()
}

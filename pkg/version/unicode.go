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

// Unicode is the most permissive dialect: any valid character other than
// the period is accepted inside a part.
type Unicode struct {
	sequence
}

// Dialect implements Trait.
func (u *Unicode) Dialect() Dialect { return DialectUnicode }

// Parse implements Trait.
func (u *Unicode) Parse(v string) error {
	return parseVersion(&u.parts, v, u)
}

// Compare implements Trait.
func (u *Unicode) Compare(rhs Trait) (int, error) {
	return compareParts(&u.parts, rhs.Parts())
}

// Next implements Trait.
func (u *Unicode) Next(pos int, format Trait) error {
	start, end := u.Upstream()
	return nextInWindow(&u.parts, start, end, pos, format)
}

// Previous implements Trait.
func (u *Unicode) Previous(pos int, format Trait) error {
	start, end := u.Upstream()
	return previousInWindow(&u.parts, start, end, pos, format)
}

// Canonical implements Trait.
func (u *Unicode) Canonical() (string, error) {
	return renderParts(u.parts.items, partText)
}

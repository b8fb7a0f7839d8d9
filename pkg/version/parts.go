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

// MaxParts is the maximum number of parts a version can hold.
const MaxParts = 25

// Parts is the ordered list of parts of a version. It never grows beyond
// MaxParts.
type Parts struct {
	items []Part
}

// Len returns the number of parts.
func (s *Parts) Len() int { return len(s.items) }

// Empty reports whether there are no parts.
func (s *Parts) Empty() bool { return len(s.items) == 0 }

// At returns a copy of the part at index i.
func (s *Parts) At(i int) Part {
	s.check(i)
	return s.items[i]
}

// Ref returns a pointer to the part at index i, valid until the next
// structural change.
func (s *Parts) Ref(i int) *Part {
	s.check(i)
	return &s.items[i]
}

// Set replaces the part at index i.
func (s *Parts) Set(i int, p Part) {
	s.check(i)
	s.items[i] = p
}

// Append adds a part at the end. A full list returns ErrTooManyParts since
// the part count comes from parsed input; bad indexes and Resize past
// MaxParts are caller bugs and panic.
func (s *Parts) Append(p Part) error {
	if len(s.items) >= MaxParts {
		return ErrTooManyParts
	}
	s.items = append(s.items, p)
	return nil
}

// Insert adds a part before index i. i may equal Len. A full list returns
// ErrTooManyParts.
func (s *Parts) Insert(i int, p Part) error {
	if i < 0 || i > len(s.items) {
		contractViolation("trying to insert a part at a non-existent position")
	}
	if len(s.items) >= MaxParts {
		return ErrTooManyParts
	}
	s.items = append(s.items, Part{})
	copy(s.items[i+1:], s.items[i:])
	s.items[i] = p
	return nil
}

// Erase removes the part at index i.
func (s *Parts) Erase(i int) {
	if i < 0 || i >= len(s.items) {
		contractViolation("trying to erase a non-existent part")
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
}

// Resize truncates or extends (with integer zeroes) the list to n parts.
func (s *Parts) Resize(n int) {
	if n < 0 || n > MaxParts {
		contractViolation("requested too many parts")
	}
	for len(s.items) < n {
		s.items = append(s.items, Part{})
	}
	s.items = s.items[:n]
}

// Clear removes all the parts.
func (s *Parts) Clear() {
	s.items = s.items[:0]
}

// Slice returns a copy of the parts.
func (s *Parts) Slice() []Part {
	out := make([]Part, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Parts) check(i int) {
	if i < 0 || i >= len(s.items) {
		contractViolation("part index %d out of range [0, %d)", i, len(s.items))
	}
}

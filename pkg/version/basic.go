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
)

// Basic versions are integers separated by periods, e.g. "1.2.3".
type Basic struct {
	Unicode
}

// Dialect implements Trait.
func (b *Basic) Dialect() Dialect { return DialectBasic }

// IsValidCharacter only accepts digits.
func (b *Basic) IsValidCharacter(c rune) bool {
	return c >= '0' && c <= '9'
}

// Parse implements Trait.
func (b *Basic) Parse(v string) error {
	err := parseVersion(&b.parts, v, b)
	if errors.Is(err, ErrUnexpectedCharacter) {
		return fmt.Errorf("%w: %w", ErrBasicNotInteger, err)
	}
	return err
}

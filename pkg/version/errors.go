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

// Parse errors.
var (
	ErrEmptyInput          = errors.New("an empty input string cannot represent a valid version")
	ErrEmptyValue          = errors.New("a version value cannot be an empty string")
	ErrInvalidUTF8         = errors.New("input string includes an invalid code not representing a valid UTF-8 character")
	ErrUnexpectedCharacter = errors.New("found unexpected character")
	ErrIntegerTooLarge     = errors.New("integer too large for a valid version")
	ErrTooManyParts        = errors.New("trying to append more parts when maximum was already reached")
	ErrInvalidSeparator    = errors.New("separator cannot be a control other than U+0000 or a surrogate")
	ErrInvalidDelimiters   = errors.New("position of ':' and/or '-' is invalid")
	ErrEpochNotInteger     = errors.New("epoch must be a valid integer")
	ErrMustStartWithNumber = errors.New("a Debian version must always start with a number")
	ErrBasicNotInteger     = errors.New("basic versions only support integers separated by periods (.)")
	ErrDecimalShape        = errors.New("decimal versions must be one or two integers separated by a period (.)")
)

// Rendering, comparison and arithmetic errors.
var (
	ErrNoParts        = errors.New("no parts to output")
	ErrEmptyVersion   = errors.New("one or both of the input versions are empty")
	ErrInvalidVersion = errors.New("one or both of the input versions are not valid")
	ErrMaximumLimit   = errors.New("maximum limit reached; cannot increment version any further")
	ErrMinimumLimit   = errors.New("minimum limit reached; cannot decrement version any further")
	ErrNoUpstream     = errors.New("no parts in this version; cannot compute upstream start/end")
)

// ErrInvalidParameter is wrapped by every panic raised for a broken call
// contract (bad positions, out of range erase, oversized resize...).
var ErrInvalidParameter = errors.New("invalid parameter")

// contractViolation panics with an error wrapping ErrInvalidParameter.
func contractViolation(format string, args ...any) {
	panic(fmt.Errorf("%w: "+format, append([]any{ErrInvalidParameter}, args...)...))
}

func unexpectedCharacter(c rune) error {
	return fmt.Errorf("%w: U+%06X", ErrUnexpectedCharacter, c)
}

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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRPM_Canonical(t *testing.T) {
	tests := []struct {
		input    string
		want     string
		wantSize int
	}{
		{"3", "3.0", 1},
		{"1.0.0", "1.0", 3},
		{"0:q2.71-z3", "q2.71-z3", 6},
		{"0:2.71.3z-rc32.5", "2.71.3z-rc32.5", 8},
		{"1.3A", "1.3", 3},
		{"1+2", "1+2", 2},
		{"2.0^git1-1", "2.0^git1-1", 5},
		{"7:1.2_3-4", "7:1.2_3-4", 6},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var r RPM
			require.NoError(t, r.Parse(tt.input))
			assertCanonical(t, &r, tt.want)
			assert.Equal(t, tt.wantSize, r.Parts().Len())
		})
	}
}

func TestRPM_ParseErrors(t *testing.T) {
	tests := []struct {
		input   string
		wantErr error
		message string
	}{
		{input: "--", wantErr: ErrUnexpectedCharacter, message: "found unexpected character: U+00002D"},
		{input: "+-", wantErr: ErrEmptyValue},
		{input: "-751", wantErr: ErrInvalidDelimiters, message: `position of ':' and/or '-' is invalid in "-751"`},
		{input: ":1", wantErr: ErrInvalidDelimiters},
		{input: "3-2:1", wantErr: ErrInvalidDelimiters},
		{input: "x:1", wantErr: ErrEpochNotInteger},
		{input: "1.0-a@b", wantErr: ErrUnexpectedCharacter},
		{input: "", wantErr: ErrEmptyInput},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			var r RPM
			err := r.Parse(tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.message != "" {
				assert.EqualError(t, err, tt.message)
			}
		})
	}
}

func TestRPM_Compare(t *testing.T) {
	tests := []struct {
		lhs  string
		rhs  string
		want int
	}{
		{"1.1f", "1.1q", -1},
		{"1.2", "1.1q", 1},
		{"1.2", "1.1f", 1},
		{"1.0~rc1", "1.0", -1},
		{"1.0^git1", "1.0", 1},
		{"1.0^git1", "1.0.1", -1},
		{"1.a_b", "1.ab", 0},
		{"53A2z", "53a2z", -1},
		{"1:1.0", "2.0", 1},
		{"1.0-1", "1.0-2", -1},
		{"1.0", "1.0-1", -1},
		{"1.2", "1.2.0.0", 0},
		{"1.0+1", "1.0.1", 0},
	}

	for _, tt := range tests {
		t.Run(tt.lhs+" vs "+tt.rhs, func(t *testing.T) {
			var l, r RPM
			require.NoError(t, l.Parse(tt.lhs))
			require.NoError(t, r.Parse(tt.rhs))

			got, err := l.Compare(&r)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			back, err := r.Compare(&l)
			require.NoError(t, err)
			assert.Equal(t, -tt.want, back)
		})
	}
}

func TestRPM_CompareOtherDialect(t *testing.T) {
	var r RPM
	require.NoError(t, r.Parse("1.2.5"))
	var b Basic
	require.NoError(t, b.Parse("1.2.4"))

	got, err := r.Compare(&b)
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

func TestRPM_NextWithFormat(t *testing.T) {
	var format RPM
	require.NoError(t, format.Parse("9.9.9z.9"))

	var r RPM
	require.NoError(t, r.Parse("1.3.2"))

	for i := 1; i <= 9; i++ {
		require.NoError(t, r.Next(4, &format))
		assertCanonical(t, &r, fmt.Sprintf("1.3.2A.%d", i))
		assert.Equal(t, 5, r.Parts().Len())
	}

	require.NoError(t, r.Next(4, &format))
	assertCanonical(t, &r, "1.3.2B")
	assert.Equal(t, 4, r.Parts().Len())
}

func TestRPM_PreviousWithFormat(t *testing.T) {
	var format RPM
	require.NoError(t, format.Parse("9.9.9z.9"))

	var r RPM
	require.NoError(t, r.Parse("1.3.2A.2"))

	require.NoError(t, r.Previous(4, &format))
	assertCanonical(t, &r, "1.3.2A.1")

	require.NoError(t, r.Previous(4, &format))
	assertCanonical(t, &r, "1.3.2")
	assert.Equal(t, 3, r.Parts().Len())

	require.NoError(t, r.Previous(4, &format))
	assertCanonical(t, &r, "1.3.1z.9")
}

func TestRPM_PreviousString(t *testing.T) {
	var format RPM
	require.NoError(t, format.Parse("9.9"))

	var r RPM
	require.NoError(t, r.Parse("1.3C"))

	require.NoError(t, r.Previous(2, &format))
	assertCanonical(t, &r, "1.3B")

	require.NoError(t, r.Previous(2, &format))
	assertCanonical(t, &r, "1.3")
	assert.Equal(t, 2, r.Parts().Len())

	require.NoError(t, r.Previous(2, &format))
	assertCanonical(t, &r, "1.2.4294967295")

	require.NoError(t, r.Parse("1.3A"))
	require.NoError(t, r.Previous(2, &format))
	assertCanonical(t, &r, "1.2z")

	require.NoError(t, r.Previous(2, &format))
	assertCanonical(t, &r, "1.2y")
}

func TestRPM_EpochAndReleaseUntouched(t *testing.T) {
	var r RPM
	require.NoError(t, r.Parse("5:1.5.3-r5"))

	require.NoError(t, r.Next(2, nil))
	assertCanonical(t, &r, "5:1.5.4-r5")

	require.NoError(t, r.Next(0, nil))
	assertCanonical(t, &r, "5:2.0-r5")

	require.NoError(t, r.Previous(1, nil))
	assertCanonical(t, &r, "5:1.4294967295-r5")
}

func TestRPM_TooManyParts(t *testing.T) {
	var r RPM
	require.NoError(t, r.Parse("103:1.2.3.4.5-r5with6many8release9parts"))
	assert.Equal(t, 15, r.Parts().Len())
	assert.ErrorIs(t, r.Next(15, nil), ErrTooManyParts)
}

func TestRPM_Empty(t *testing.T) {
	var r RPM
	assert.ErrorIs(t, r.Next(0, nil), ErrNoUpstream)
	assert.ErrorIs(t, r.Previous(3, nil), ErrNoUpstream)
	_, err := r.Canonical()
	assert.ErrorIs(t, err, ErrNoParts)
}

func TestCompareRPMStrings(t *testing.T) {
	assert.Equal(t, -1, compareRPMStrings("~", ""))
	assert.Equal(t, 1, compareRPMStrings("^", ""))
	assert.Equal(t, -1, compareRPMStrings("", "A"))
	assert.Equal(t, -1, compareRPMStrings("Z", "a"))
	assert.Equal(t, 0, compareRPMStrings("__a", "a_"))
}

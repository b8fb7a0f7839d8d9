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

// Character ranks used when comparing the string parts of package versions.
var (
	debianOrder [256]int
	rpmOrder    [256]int
)

// rpmRanking lists the characters RPM strings may contain, lowest first.
// Index 0 of the table is the end of the string.
const rpmRanking = "~\x00+ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz^"

func init() {
	// dpkg: '~' sorts before the end of the string, letters before
	// everything else.
	for c := 1; c < len(debianOrder); c++ {
		switch {
		case c == '~':
			debianOrder[c] = -1
		case c >= '0' && c <= '9':
			debianOrder[c] = 0
		case isLetter(rune(c)):
			debianOrder[c] = c
		default:
			debianOrder[c] = c + 256
		}
	}

	for i := 0; i < len(rpmRanking); i++ {
		rpmOrder[rpmRanking[i]] = i + 1
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}

// compareDebianStrings compares two non-digit runs the way dpkg does.
func compareDebianStrings(a, b string) int {
	for i := 0; i < len(a) || i < len(b); i++ {
		var ac, bc int
		if i < len(a) {
			ac = debianOrder[a[i]]
		}
		if i < len(b) {
			bc = debianOrder[b[i]]
		}
		if ac != bc {
			return sign(ac - bc)
		}
	}
	return 0
}

// compareRPMStrings compares two string parts with the RPM ranking.
// Underscores are ignored.
func compareRPMStrings(a, b string) int {
	i, j := 0, 0
	for i < len(a) || j < len(b) {
		for i < len(a) && a[i] == '_' {
			i++
		}
		for j < len(b) && b[j] == '_' {
			j++
		}

		var ac, bc byte
		if i < len(a) {
			ac = a[i]
		}
		if j < len(b) {
			bc = b[j]
		}
		if r := sign(rpmOrder[ac] - rpmOrder[bc]); r != 0 {
			return r
		}
		i++
		j++
	}
	return 0
}

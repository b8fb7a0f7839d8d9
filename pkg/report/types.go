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

package report

import (
	"github.com/NVIDIA/versiontheca/pkg/header"
)

// Direction selects the step operation.
type Direction string

const (
	// DirectionNext increments a version.
	DirectionNext Direction = "next"

	// DirectionPrevious decrements a version.
	DirectionPrevious Direction = "previous"
)

// Result is the outcome for one input version.
type Result struct {
	Input  string `json:"input" yaml:"input"`
	Output string `json:"output,omitempty" yaml:"output,omitempty"`
	Valid  bool   `json:"valid" yaml:"valid"`
	Error  string `json:"error,omitempty" yaml:"error,omitempty"`
	Code   string `json:"code,omitempty" yaml:"code,omitempty"`
}

// CanonicalReport lists the canonical form of each input.
type CanonicalReport struct {
	header.Header `json:",inline" yaml:",inline"`

	Results []Result `json:"results" yaml:"results"`
	Invalid int      `json:"invalid" yaml:"invalid"`
}

// ComparisonReport holds the ordering of two versions. Holds is set when an
// operator was given.
type ComparisonReport struct {
	header.Header `json:",inline" yaml:",inline"`

	Left     string `json:"left" yaml:"left"`
	Right    string `json:"right" yaml:"right"`
	Operator string `json:"operator,omitempty" yaml:"operator,omitempty"`
	Result   int    `json:"result" yaml:"result"`
	Holds    *bool  `json:"holds,omitempty" yaml:"holds,omitempty"`
}

// StepReport lists the next or previous version of each input.
type StepReport struct {
	header.Header `json:",inline" yaml:",inline"`

	Direction Direction `json:"direction" yaml:"direction"`
	Level     int       `json:"level,omitempty" yaml:"level,omitempty"`
	Format    string    `json:"format,omitempty" yaml:"format,omitempty"`
	Results   []Result  `json:"results" yaml:"results"`
	Invalid   int       `json:"invalid" yaml:"invalid"`
}

// SortReport lists the inputs in ascending (or descending) order, in
// canonical form.
type SortReport struct {
	header.Header `json:",inline" yaml:",inline"`

	Reverse  bool     `json:"reverse" yaml:"reverse"`
	Versions []string `json:"versions" yaml:"versions"`
}

// Lines returns the plain text output for the results: the output of each
// valid result, in input order.
func Lines(results []Result) []string {
	lines := make([]string, 0, len(results))
	for _, r := range results {
		if r.Valid {
			lines = append(lines, r.Output)
		}
	}
	return lines
}

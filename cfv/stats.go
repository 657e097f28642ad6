// Copyright 2025 go-highway Authors
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

package cfv

import (
	"fmt"
	"strings"
)

// Stats counts occurrences of each code over one grid.
type Stats map[Code]int

// Add counts one occurrence of c.
func (s Stats) Add(c Code) { s[c]++ }

// Summary aggregates s by category.
func (s Stats) Summary() Summary {
	var sum Summary
	for code, n := range s {
		switch code.Category() {
		case Match:
			sum.Matches += n
		case Inaccuracy:
			sum.Inaccuracies += n
		case Mismatch:
			sum.Mismatches += n
		}
	}
	sum.Total = sum.Matches + sum.Inaccuracies + sum.Mismatches
	return sum
}

// Summary holds the aggregated counts of a Stats.
type Summary struct {
	Matches      int
	Inaccuracies int
	Mismatches   int
	Total        int
}

func (s Summary) percent(n int) float64 {
	if s.Total == 0 {
		return 0
	}
	return 100 * float64(n) / float64(s.Total)
}

// MatchRate returns the percentage of matches.
func (s Summary) MatchRate() float64 { return s.percent(s.Matches) }

// InaccuracyRate returns the percentage of inaccuracies.
func (s Summary) InaccuracyRate() float64 { return s.percent(s.Inaccuracies) }

// MismatchRate returns the percentage of mismatches.
func (s Summary) MismatchRate() float64 { return s.percent(s.Mismatches) }

// String returns the report statistics lines. The inaccuracy and mismatch
// lines are present only when the count is nonzero.
func (s Summary) String() string {
	lines := []string{fmt.Sprintf("match rate: %3.1f%%", s.MatchRate())}
	if s.Inaccuracies > 0 {
		lines = append(lines, fmt.Sprintf("inaccuracies rate: %3.1f%%", s.InaccuracyRate()))
	}
	if s.Mismatches > 0 {
		lines = append(lines, fmt.Sprintf("mismatch rate: %3.1f%%", s.MismatchRate()))
	}
	return strings.Join(lines, "\n")
}

// Rating is the qualitative grade of a Summary.
type Rating string

const (
	Perfect Rating = "PERFECT"
	Good    Rating = "GOOD"
	OK      Rating = "OK"
	Bad     Rating = "BAD"
	Poor    Rating = "POOR"
)

// Rating grades s: PERFECT when everything matches, GOOD above 90% matches,
// OK when nothing mismatches, BAD above 50% mismatches, POOR otherwise.
func (s Summary) Rating() Rating {
	switch {
	case s.Total > 0 && s.Matches == s.Total:
		return Perfect
	case s.MatchRate() > 90:
		return Good
	case s.Mismatches == 0:
		return OK
	case s.MismatchRate() > 50:
		return Bad
	}
	return Poor
}

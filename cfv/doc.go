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

// Package cfv validates elementary complex functions of a numeric backend
// against a reference backend over the whole complex plane.
//
// The package provides three building blocks and the orchestration that
// ties them together:
//
//   - PlaneSampler: a deterministic grid of complex samples covering
//     infinities, format extremes, subnormal boundaries, zero, and both axes.
//   - Compare: an 18-way classification of (reference, candidate) pairs into
//     an AgreementCode that keeps how much, and in which way, two values
//     disagree.
//   - Clusters: 8-connected grouping of equally coded grid cells, used to
//     pick one representative sample per problem region.
//
// Build evaluates a reference and a candidate Function on the sampled plane
// and returns a ComparisonGrid with per-code statistics.
//
// # Agreement codes
//
//	=       values are equal
//	c       values are close (diff < eps * norm)
//	1-9,A-F values differ by about eps * norm * 10**n
//	x       magnitudes are close (n equals the format precision)
//	X       values are different
//	~       both non-finite and of the same kind
//	I       reference finite, candidate infinite
//	N       candidate is nan but reference is not
//	M       reference is nan but candidate is not
//
// # Example Usage
//
//	ref, _ := stdlib.Open()
//	cand, _ := decomposed.Open()
//	grid, err := cfv.Build(
//	    ref.Function("square", cfv.Complex128, "cpu"),
//	    cand.Function("square", cfv.Complex64, "cpu"),
//	    cfv.BuildOptions{SizeRe: 15, SizeIm: 15})
//	if err != nil {
//	    return err
//	}
//	fmt.Println(grid.Map.Stats.Summary())
package cfv

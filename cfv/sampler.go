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
	"math"

	"gonum.org/v1/gonum/floats"
)

// PlaneSampler produces grids of complex samples covering the complex plane
// for one dtype.
type PlaneSampler struct {
	dtype  Dtype
	format FloatFormat
}

// NewPlaneSampler returns a sampler for d. Real dtypes are sampled on their
// complex counterpart.
func NewPlaneSampler(d Dtype) PlaneSampler {
	d = d.Complex()
	return PlaneSampler{dtype: d, format: d.Format()}
}

// Dtype returns the complex dtype of the produced samples.
func (s PlaneSampler) Dtype() Dtype { return s.dtype }

// Axis returns the 3+2*n points of one axis:
//
//	-inf, min, <sweep>, -tiny, 0, tiny, <sweep>, max, +inf
//
// where each sweep holds points logarithmically spaced between tiny and the
// format extreme. For n == 1 the axis is -inf, -tiny, 0, tiny, +inf, and for
// n == 0 it is -inf, 0, +inf.
//
// PRECONDITION: n >= 0.
func (s PlaneSampler) Axis(n int) []float64 {
	if n < 0 {
		panic(fmt.Sprintf("cfv: negative axis size %d", n))
	}
	f := s.format
	axis := make([]float64, 3+2*n)
	last := len(axis) - 1

	if n > 0 {
		left := logSweep(n, math.Abs(f.Min), f.Tiny)
		right := logSweep(n, f.Tiny, f.Max)
		for i := 0; i < n; i++ {
			axis[1+i] = s.dtype.RoundReal(-left[i])
			axis[n+2+i] = s.dtype.RoundReal(right[i])
		}
	}
	if n > 1 {
		axis[1] = f.Min
		axis[last-1] = f.Max
	}
	if n > 0 {
		axis[n] = -f.Tiny
		axis[n+2] = f.Tiny
	}
	axis[0] = math.Inf(-1)
	axis[last] = math.Inf(1)
	return axis
}

// logSweep returns n points logarithmically spaced from l to u inclusive.
func logSweep(n int, l, u float64) []float64 {
	if n == 1 {
		return []float64{l}
	}
	return floats.LogSpan(make([]float64, n), l, u)
}

// Sample returns the (3+2*sizeIm) x (3+2*sizeRe) grid
//
//	grid[row, col] = complex(realAxis[col], imagAxis[row])
//
// with rows ordered by ascending imaginary part.
//
// For example, NewPlaneSampler(Complex64).Sample(0, 0) is
//
//	[[-inf-infj, 0-infj, +inf-infj],
//	 [-inf+0j,   0+0j,   +inf+0j  ],
//	 [-inf+infj, 0+infj, +inf+infj]]
//
// PRECONDITION: sizeRe >= 0 and sizeIm >= 0.
func (s PlaneSampler) Sample(sizeRe, sizeIm int) Array {
	re := s.Axis(sizeRe)
	im := s.Axis(sizeIm)
	grid := NewArray(s.dtype, len(im), len(re))
	for row, y := range im {
		for col, x := range re {
			grid.Set(row, col, complex(x, y))
		}
	}
	return grid
}

// RealLine returns the real parts of the center row of grid as a 1-row array
// of the real counterpart dtype.
func RealLine(grid Array) Array {
	return grid.Row(grid.Rows / 2).Real()
}

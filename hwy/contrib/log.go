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

package contrib

import (
	"math"

	"github.com/ajroetker/go-cfv/hwy"
)

// Log32 computes the natural logarithm ln(x) for each lane of a float32 vector.
//
// Special cases:
//   - Log(+Inf) = +Inf
//   - Log(0) = -Inf
//   - Log(x) = NaN for x < 0
//   - Log(NaN) = NaN
var Log32 func(v hwy.Vec[float32]) hwy.Vec[float32]

// Log64 computes the natural logarithm for each lane of a float64 vector.
var Log64 func(v hwy.Vec[float64]) hwy.Vec[float64]

// Log computes the natural logarithm for each lane of the input vector.
//
// Example:
//
//	v := hwy.Load([]float32{1, math.E, 10})
//	result := contrib.Log(v)  // computes [0, 1, 2.302585]
func Log[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	var dummy T
	switch any(dummy).(type) {
	case float32:
		return any(Log32(any(v).(hwy.Vec[float32]))).(hwy.Vec[T])
	case float64:
		return any(Log64(any(v).(hwy.Vec[float64]))).(hwy.Vec[T])
	default:
		panic("unsupported float type")
	}
}

// Log10 computes log₁₀(x) = ln(x) / ln(10) for each lane.
func Log10[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	return hwy.Mul(Log(v), hwy.Broadcast(v, T(math.Log10E)))
}

type logParams[T hwy.Floats] struct {
	ln2Hi, ln2Lo T
	// coeffs of atanh(s)/s = 1 + s²/3 + s⁴/5 + ... in powers of s².
	coeffs []T
}

var (
	log32Params = logParams[float32]{
		ln2Hi:  0.693359375,
		ln2Lo:  -2.12194440e-4,
		coeffs: series[float32](6, func(k int) float64 { return 1 / float64(2*k+1) }),
	}
	log64Params = logParams[float64]{
		ln2Hi:  6.93147180369123816490e-01,
		ln2Lo:  1.90821492927058770002e-10,
		coeffs: series[float64](12, func(k int) float64 { return 1 / float64(2*k+1) }),
	}
)

func init() {
	Log32 = func(v hwy.Vec[float32]) hwy.Vec[float32] { return logBase(v, log32Params) }
	Log64 = func(v hwy.Vec[float64]) hwy.Vec[float64] { return logBase(v, log64Params) }
}

// logBase splits x = m * 2^e with m in [√½, √2) and evaluates
// ln(m) = 2 atanh(s), s = (m-1)/(m+1).
func logBase[T hwy.Floats](x hwy.Vec[T], p logParams[T]) hwy.Vec[T] {
	one := hwy.Broadcast(x, 1)
	m, e := hwy.Frexp(x)
	small := hwy.LessThan(m, hwy.Broadcast(x, T(math.Sqrt2/2)))
	m = hwy.IfThenElse(small, hwy.Add(m, m), m)
	e = hwy.IfThenElse(small, hwy.Sub(e, one), e)

	f := hwy.Sub(m, one)
	s := hwy.Div(f, hwy.Add(hwy.Broadcast(x, 2), f))
	lnm := hwy.Mul(hwy.Add(s, s), Horner(hwy.Mul(s, s), p.coeffs))

	y := hwy.FMA(e, hwy.Broadcast(x, p.ln2Lo), lnm)
	y = hwy.FMA(e, hwy.Broadcast(x, p.ln2Hi), y)

	zero := hwy.Broadcast(x, 0)
	y = hwy.IfThenElse(hwy.Equal(x, zero), hwy.Broadcast(x, T(math.Inf(-1))), y)
	y = hwy.IfThenElse(hwy.LessThan(x, zero), hwy.Broadcast(x, T(math.NaN())), y)
	y = hwy.IfThenElse(hwy.IsInf(x).And(hwy.GreaterThan(x, zero)), x, y)
	return hwy.IfThenElse(hwy.IsNaN(x), x, y)
}

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

// Exp32 computes e^x for each lane of a float32 vector.
//
// Special cases:
//   - Exp(+Inf) = +Inf
//   - Exp(-Inf) = 0
//   - Exp(NaN) = NaN
//   - Exp(x) = +Inf for x > 88.72 (overflow)
//   - Exp(x) = 0 for x < -103.97 (underflow past the subnormals)
var Exp32 func(v hwy.Vec[float32]) hwy.Vec[float32]

// Exp64 computes e^x for each lane of a float64 vector.
// Special cases are those of Exp32 with the float64 thresholds.
var Exp64 func(v hwy.Vec[float64]) hwy.Vec[float64]

// Exp computes e^x for each lane of the input vector.
//
// Example:
//
//	v := hwy.Load([]float32{0, 1, 2, -1})
//	result := contrib.Exp(v)  // computes [1, e, e², 1/e]
func Exp[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	var dummy T
	switch any(dummy).(type) {
	case float32:
		return any(Exp32(any(v).(hwy.Vec[float32]))).(hwy.Vec[T])
	case float64:
		return any(Exp64(any(v).(hwy.Vec[float64]))).(hwy.Vec[T])
	default:
		panic("unsupported float type")
	}
}

// expParams holds ln2 split in two so that k*ln2Hi is exact for every k
// Exp produces, and the overflow and underflow thresholds.
type expParams[T hwy.Floats] struct {
	ln2Hi, ln2Lo T
	coeffs       []T
	overflow     T
	underflow    T
}

var (
	exp32Params = expParams[float32]{
		ln2Hi:     0.693359375,
		ln2Lo:     -2.12194440e-4,
		coeffs:    series[float32](8, func(k int) float64 { return 1 / factorial(k) }),
		overflow:  88.72283905206835,
		underflow: -103.97207708399179,
	}
	exp64Params = expParams[float64]{
		ln2Hi:     6.93147180369123816490e-01,
		ln2Lo:     1.90821492927058770002e-10,
		coeffs:    series[float64](14, func(k int) float64 { return 1 / factorial(k) }),
		overflow:  709.782712893384,
		underflow: -745.1332191019412,
	}
)

func init() {
	Exp32 = func(v hwy.Vec[float32]) hwy.Vec[float32] { return expBase(v, exp32Params) }
	Exp64 = func(v hwy.Vec[float64]) hwy.Vec[float64] { return expBase(v, exp64Params) }
}

// expBase reduces x = k*ln2 + r with |r| <= ln2/2, evaluates the Taylor
// polynomial of e^r and scales by 2^k.
func expBase[T hwy.Floats](x hwy.Vec[T], p expParams[T]) hwy.Vec[T] {
	k := hwy.Round(hwy.Mul(x, hwy.Broadcast(x, T(1/math.Ln2))))
	r := hwy.FMA(k, hwy.Broadcast(x, -p.ln2Hi), x)
	r = hwy.FMA(k, hwy.Broadcast(x, -p.ln2Lo), r)

	y := hwy.Ldexp(Horner(r, p.coeffs), k)

	y = hwy.IfThenElse(hwy.GreaterThan(x, hwy.Broadcast(x, p.overflow)), hwy.Broadcast(x, T(math.Inf(1))), y)
	y = hwy.IfThenElse(hwy.LessThan(x, hwy.Broadcast(x, p.underflow)), hwy.Broadcast(x, 0), y)
	return hwy.IfThenElse(hwy.IsNaN(x), x, y)
}

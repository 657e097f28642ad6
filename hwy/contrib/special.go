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

import "github.com/ajroetker/go-cfv/hwy"

// Sinh32 computes sinh(x) = (e^x - e^-x) / 2 for each lane of a float32
// vector. Results for |x| near zero lose relative accuracy to cancellation.
//
// Special cases:
//   - Sinh(±Inf) = ±Inf
//   - Sinh(NaN) = NaN
var Sinh32 func(v hwy.Vec[float32]) hwy.Vec[float32]

// Sinh64 computes sinh(x) for each lane of a float64 vector.
var Sinh64 func(v hwy.Vec[float64]) hwy.Vec[float64]

// Sinh computes the hyperbolic sine for each lane of the input vector.
func Sinh[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	var dummy T
	switch any(dummy).(type) {
	case float32:
		return any(Sinh32(any(v).(hwy.Vec[float32]))).(hwy.Vec[T])
	case float64:
		return any(Sinh64(any(v).(hwy.Vec[float64]))).(hwy.Vec[T])
	default:
		panic("unsupported float type")
	}
}

// Cosh32 computes cosh(x) = (e^x + e^-x) / 2 for each lane of a float32
// vector.
//
// Special cases:
//   - Cosh(±Inf) = +Inf
//   - Cosh(NaN) = NaN
var Cosh32 func(v hwy.Vec[float32]) hwy.Vec[float32]

// Cosh64 computes cosh(x) for each lane of a float64 vector.
var Cosh64 func(v hwy.Vec[float64]) hwy.Vec[float64]

// Cosh computes the hyperbolic cosine for each lane of the input vector.
func Cosh[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	var dummy T
	switch any(dummy).(type) {
	case float32:
		return any(Cosh32(any(v).(hwy.Vec[float32]))).(hwy.Vec[T])
	case float64:
		return any(Cosh64(any(v).(hwy.Vec[float64]))).(hwy.Vec[T])
	default:
		panic("unsupported float type")
	}
}

// Tanh32 computes hyperbolic tangent tanh(x) = (e^2x - 1) / (e^2x + 1)
// for each lane of a float32 vector.
//
// Special cases:
//   - Tanh(±0) = ±0
//   - Tanh(±Inf) = ±1
//   - Tanh(NaN) = NaN
//
// The result is always in the range [-1, 1].
var Tanh32 func(v hwy.Vec[float32]) hwy.Vec[float32]

// Tanh64 computes hyperbolic tangent for each lane of a float64 vector.
var Tanh64 func(v hwy.Vec[float64]) hwy.Vec[float64]

// Tanh computes hyperbolic tangent for each lane of the input vector.
//
// Example:
//
//	v := hwy.Load([]float32{-2, -1, 0, 1, 2})
//	result := contrib.Tanh(v)
func Tanh[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	var dummy T
	switch any(dummy).(type) {
	case float32:
		return any(Tanh32(any(v).(hwy.Vec[float32]))).(hwy.Vec[T])
	case float64:
		return any(Tanh64(any(v).(hwy.Vec[float64]))).(hwy.Vec[T])
	default:
		panic("unsupported float type")
	}
}

func init() {
	Sinh32, Sinh64 = sinhBase[float32], sinhBase[float64]
	Cosh32, Cosh64 = coshBase[float32], coshBase[float64]
	Tanh32 = func(v hwy.Vec[float32]) hwy.Vec[float32] { return tanhBase(v, 9) }
	Tanh64 = func(v hwy.Vec[float64]) hwy.Vec[float64] { return tanhBase(v, 19) }
}

func expPair[T hwy.Floats](x hwy.Vec[T]) (ep, em hwy.Vec[T]) {
	return Exp(x), Exp(hwy.Neg(x))
}

func sinhBase[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	ep, em := expPair(x)
	return hwy.Mul(hwy.Sub(ep, em), hwy.Broadcast(x, 0.5))
}

func coshBase[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	ep, em := expPair(x)
	return hwy.Mul(hwy.Add(ep, em), hwy.Broadcast(x, 0.5))
}

// tanhBase saturates to ±1 beyond limit, where e^2x would overflow the
// quotient.
func tanhBase[T hwy.Floats](x hwy.Vec[T], limit T) hwy.Vec[T] {
	one := hwy.Broadcast(x, 1)
	e2 := Exp(hwy.Add(x, x))
	y := hwy.Div(hwy.Sub(e2, one), hwy.Add(e2, one))
	y = hwy.IfThenElse(hwy.GreaterThan(hwy.Abs(x), hwy.Broadcast(x, limit)), hwy.CopySign(one, x), y)
	return hwy.IfThenElse(hwy.Equal(x, hwy.Broadcast(x, 0)), x, y)
}

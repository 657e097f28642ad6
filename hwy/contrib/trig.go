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

// Sin32 computes sine for each lane of a float32 vector (input in radians).
//
// Special cases:
//   - Sin(±0) = ±0
//   - Sin(±Inf) = NaN
//   - Sin(NaN) = NaN
var Sin32 func(v hwy.Vec[float32]) hwy.Vec[float32]

// Sin64 computes sine for each lane of a float64 vector (input in radians).
var Sin64 func(v hwy.Vec[float64]) hwy.Vec[float64]

// Sin computes sine for each lane of the input vector.
//
// Example:
//
//	v := hwy.Load([]float32{0, math.Pi/2, math.Pi, 3*math.Pi/2})
//	result := contrib.Sin(v)  // computes [0, 1, 0, -1]
func Sin[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	var dummy T
	switch any(dummy).(type) {
	case float32:
		return any(Sin32(any(v).(hwy.Vec[float32]))).(hwy.Vec[T])
	case float64:
		return any(Sin64(any(v).(hwy.Vec[float64]))).(hwy.Vec[T])
	default:
		panic("unsupported float type")
	}
}

// Cos32 computes cosine for each lane of a float32 vector (input in radians).
//
// Special cases:
//   - Cos(±Inf) = NaN
//   - Cos(NaN) = NaN
var Cos32 func(v hwy.Vec[float32]) hwy.Vec[float32]

// Cos64 computes cosine for each lane of a float64 vector (input in radians).
var Cos64 func(v hwy.Vec[float64]) hwy.Vec[float64]

// Cos computes cosine for each lane of the input vector.
func Cos[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	var dummy T
	switch any(dummy).(type) {
	case float32:
		return any(Cos32(any(v).(hwy.Vec[float32]))).(hwy.Vec[T])
	case float64:
		return any(Cos64(any(v).(hwy.Vec[float64]))).(hwy.Vec[T])
	default:
		panic("unsupported float type")
	}
}

// SinCos32 computes both sine and cosine for each lane of a float32 vector.
// It shares one range reduction between the two results.
var SinCos32 func(v hwy.Vec[float32]) (sin, cos hwy.Vec[float32])

// SinCos64 computes both sine and cosine for each lane of a float64 vector.
var SinCos64 func(v hwy.Vec[float64]) (sin, cos hwy.Vec[float64])

// SinCos computes both sine and cosine for each lane of the input vector.
func SinCos[T hwy.Floats](v hwy.Vec[T]) (sin, cos hwy.Vec[T]) {
	var dummy T
	switch any(dummy).(type) {
	case float32:
		s, c := SinCos32(any(v).(hwy.Vec[float32]))
		return any(s).(hwy.Vec[T]), any(c).(hwy.Vec[T])
	case float64:
		s, c := SinCos64(any(v).(hwy.Vec[float64]))
		return any(s).(hwy.Vec[T]), any(c).(hwy.Vec[T])
	default:
		panic("unsupported float type")
	}
}

// Atan32 computes the inverse tangent for each lane of a float32 vector.
//
// Special cases:
//   - Atan(±0) = ±0
//   - Atan(±Inf) = ±π/2
//   - Atan(NaN) = NaN
var Atan32 func(v hwy.Vec[float32]) hwy.Vec[float32]

// Atan64 computes the inverse tangent for each lane of a float64 vector.
var Atan64 func(v hwy.Vec[float64]) hwy.Vec[float64]

// Atan computes the inverse tangent for each lane of the input vector.
func Atan[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	var dummy T
	switch any(dummy).(type) {
	case float32:
		return any(Atan32(any(v).(hwy.Vec[float32]))).(hwy.Vec[T])
	case float64:
		return any(Atan64(any(v).(hwy.Vec[float64]))).(hwy.Vec[T])
	default:
		panic("unsupported float type")
	}
}

// Atan2 computes the argument of (x, y) lane-wise from Atan(y/x) with
// quadrant correction. Signed zeros are honored; when both lanes are
// infinite the result is NaN.
func Atan2[T hwy.Floats](y, x hwy.Vec[T]) hwy.Vec[T] {
	zero := hwy.Broadcast(x, 0)
	pi := hwy.Broadcast(x, T(math.Pi))
	neg := hwy.SignBit(x)

	a := Atan(hwy.Div(y, x))
	a = hwy.IfThenElse(neg, hwy.Add(a, hwy.CopySign(pi, y)), a)
	a = hwy.IfThenElse(hwy.Equal(x, zero), hwy.CopySign(hwy.Broadcast(x, T(math.Pi/2)), y), a)
	onAxis := hwy.IfThenElse(neg, hwy.CopySign(pi, y), y)
	a = hwy.IfThenElse(hwy.Equal(y, zero), onAxis, a)
	return hwy.IfThenElse(hwy.IsNaN(x).Or(hwy.IsNaN(y)), hwy.Add(x, y), a)
}

// trigParams holds π/2 in three parts for Cody-Waite reduction and the
// Taylor coefficients of sin(r)/r and cos(r) in powers of r².
type trigParams[T hwy.Floats] struct {
	pio2 [3]T
	sin  []T
	cos  []T
	atan []T
}

var (
	trig32Params = trigParams[float32]{
		pio2: [3]float32{1.5703125, 4.837512969970703125e-4, 7.54978995489188216e-8},
		sin:  series[float32](6, func(k int) float64 { return alternating(k) / factorial(2*k+1) }),
		cos:  series[float32](7, func(k int) float64 { return alternating(k) / factorial(2*k) }),
		atan: series[float32](10, func(k int) float64 { return alternating(k) / float64(2*k+1) }),
	}
	trig64Params = trigParams[float64]{
		pio2: [3]float64{1.57079632673412561417e+00, 6.07710050650619224932e-11, 2.02226624879595063154e-21},
		sin:  series[float64](11, func(k int) float64 { return alternating(k) / factorial(2*k+1) }),
		cos:  series[float64](12, func(k int) float64 { return alternating(k) / factorial(2*k) }),
		atan: series[float64](21, func(k int) float64 { return alternating(k) / float64(2*k+1) }),
	}
)

func init() {
	SinCos32 = func(v hwy.Vec[float32]) (hwy.Vec[float32], hwy.Vec[float32]) { return sinCosBase(v, trig32Params) }
	SinCos64 = func(v hwy.Vec[float64]) (hwy.Vec[float64], hwy.Vec[float64]) { return sinCosBase(v, trig64Params) }
	Sin32 = func(v hwy.Vec[float32]) hwy.Vec[float32] { s, _ := SinCos32(v); return s }
	Sin64 = func(v hwy.Vec[float64]) hwy.Vec[float64] { s, _ := SinCos64(v); return s }
	Cos32 = func(v hwy.Vec[float32]) hwy.Vec[float32] { _, c := SinCos32(v); return c }
	Cos64 = func(v hwy.Vec[float64]) hwy.Vec[float64] { _, c := SinCos64(v); return c }
	Atan32 = func(v hwy.Vec[float32]) hwy.Vec[float32] { return atanBase(v, trig32Params) }
	Atan64 = func(v hwy.Vec[float64]) hwy.Vec[float64] { return atanBase(v, trig64Params) }
}

// sinCosBase reduces x = k*π/2 + r with |r| <= π/4 and selects the
// polynomial and sign by the quadrant k mod 4.
func sinCosBase[T hwy.Floats](x hwy.Vec[T], p trigParams[T]) (sin, cos hwy.Vec[T]) {
	k := hwy.Round(hwy.Mul(x, hwy.Broadcast(x, T(2/math.Pi))))
	r := x
	for _, c := range p.pio2 {
		r = hwy.FMA(k, hwy.Broadcast(x, -c), r)
	}
	r2 := hwy.Mul(r, r)
	sr := hwy.Mul(r, Horner(r2, p.sin))
	cr := Horner(r2, p.cos)

	q := hwy.Map(k, func(k T) T {
		m := math.Mod(float64(k), 4)
		if m < 0 {
			m += 4
		}
		return T(m)
	})
	swap := hwy.Equal(q, hwy.Broadcast(x, 1)).Or(hwy.Equal(q, hwy.Broadcast(x, 3)))
	sin = hwy.IfThenElse(swap, cr, sr)
	cos = hwy.IfThenElse(swap, sr, cr)

	sinNeg := hwy.GreaterThan(q, hwy.Broadcast(x, 1))
	cosNeg := hwy.Equal(q, hwy.Broadcast(x, 1)).Or(hwy.Equal(q, hwy.Broadcast(x, 2)))
	sin = hwy.IfThenElse(sinNeg, hwy.Neg(sin), sin)
	cos = hwy.IfThenElse(cosNeg, hwy.Neg(cos), cos)

	// Keep the sign of zero for sin(±0).
	sin = hwy.IfThenElse(hwy.Equal(x, hwy.Broadcast(x, 0)), x, sin)
	return sin, cos
}

// atanBase folds |x| into [0, tan(π/8)] with atan(x) = π/2 - atan(1/x) and
// atan(t) = π/4 + atan((t-1)/(t+1)), then evaluates the Taylor series.
func atanBase[T hwy.Floats](x hwy.Vec[T], p trigParams[T]) hwy.Vec[T] {
	one := hwy.Broadcast(x, 1)
	ax := hwy.Abs(x)
	big := hwy.GreaterThan(ax, one)
	t := hwy.IfThenElse(big, hwy.Div(one, ax), ax)
	mid := hwy.GreaterThan(t, hwy.Broadcast(x, T(math.Sqrt2-1)))
	t = hwy.IfThenElse(mid, hwy.Div(hwy.Sub(t, one), hwy.Add(t, one)), t)

	a := hwy.Mul(t, Horner(hwy.Mul(t, t), p.atan))
	a = hwy.IfThenElse(mid, hwy.Add(a, hwy.Broadcast(x, T(math.Pi/4))), a)
	a = hwy.IfThenElse(big, hwy.Sub(hwy.Broadcast(x, T(math.Pi/2)), a), a)
	return hwy.CopySign(a, x)
}

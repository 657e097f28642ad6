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

package hwy

import (
	"math"
	"testing"
)

func TestLoadStore(t *testing.T) {
	n := MaxLanes[float32]()
	src := make([]float32, n+3)
	for i := range src {
		src[i] = float32(i)
	}
	v := Load(src)
	if v.NumLanes() != n {
		t.Fatalf("Load: NumLanes = %d, want %d", v.NumLanes(), n)
	}
	dst := make([]float32, n)
	Store(v, dst)
	for i := range dst {
		if dst[i] != src[i] {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], src[i])
		}
	}

	tail := LoadN(src[n:], n)
	if tail.NumLanes() != 3 {
		t.Errorf("LoadN tail: NumLanes = %d, want 3", tail.NumLanes())
	}
}

func TestArithmetic(t *testing.T) {
	a := LoadN([]float64{1, 2, 3, 4}, 4)
	b := LoadN([]float64{4, 3, 2}, 4)
	cases := []struct {
		name string
		got  Vec[float64]
		want []float64
	}{
		{"Add", Add(a, b), []float64{5, 5, 5}},
		{"Sub", Sub(a, b), []float64{-3, -1, 1}},
		{"Mul", Mul(a, b), []float64{4, 6, 6}},
		{"Div", Div(a, b), []float64{0.25, 2.0 / 3, 1.5}},
		{"Min", Min(a, b), []float64{1, 2, 2}},
		{"Max", Max(a, b), []float64{4, 3, 3}},
		{"Neg", Neg(b), []float64{-4, -3, -2}},
		{"FMA", FMA(a, b, b), []float64{8, 9, 8}},
		{"Sqrt", Sqrt(b), []float64{2, math.Sqrt(3), math.Sqrt2}},
	}
	for _, tc := range cases {
		if tc.got.NumLanes() != len(tc.want) {
			t.Errorf("%s: NumLanes = %d, want %d", tc.name, tc.got.NumLanes(), len(tc.want))
			continue
		}
		for i, w := range tc.want {
			if got := tc.got.Lane(i); got != w {
				t.Errorf("%s lane %d = %v, want %v", tc.name, i, got, w)
			}
		}
	}
}

func TestFloat32Rounding(t *testing.T) {
	v := SetN[float32](3, 2)
	got := Sqrt(v).Lane(0)
	if want := float32(math.Sqrt(3)); got != want {
		t.Errorf("Sqrt = %v, want %v", got, want)
	}
	third := Div(SetN[float32](1, 1), SetN[float32](3, 1)).Lane(0)
	if third != float32(1)/float32(3) {
		t.Errorf("Div = %v, want float32 1/3", third)
	}
}

func TestSpecialMasks(t *testing.T) {
	inf, nan := math.Inf(1), math.NaN()
	v := LoadN([]float64{1, -inf, nan, math.Copysign(0, -1), inf}, 5)

	check := func(name string, m Mask[float64], want []bool) {
		t.Helper()
		for i, w := range want {
			if m.Lane(i) != w {
				t.Errorf("%s lane %d = %v, want %v", name, i, m.Lane(i), w)
			}
		}
	}
	check("IsNaN", IsNaN(v), []bool{false, false, true, false, false})
	check("IsInf", IsInf(v), []bool{false, true, false, false, true})
	check("IsFinite", IsFinite(v), []bool{true, false, false, true, false})
	check("SignBit", SignBit(v), []bool{false, true, false, true, false})

	if !Equal(v, v).And(IsNaN(v)).AllFalse() {
		t.Error("NaN lanes compare equal")
	}
}

func TestIfThenElse(t *testing.T) {
	a := LoadN([]float32{1, 2, 3}, 3)
	b := LoadN([]float32{9, 8, 7}, 3)
	got := IfThenElse(LessThan(a, SetN[float32](2.5, 3)), a, b)
	want := []float32{1, 2, 7}
	for i, w := range want {
		if got.Lane(i) != w {
			t.Errorf("lane %d = %v, want %v", i, got.Lane(i), w)
		}
	}
}

func TestFlushSubnormal(t *testing.T) {
	tiny := float32(0x1p-126)
	v := LoadN([]float32{tiny / 2, -tiny / 4, tiny, 1, 0}, 5)
	got := FlushSubnormal(v, tiny)
	want := []float32{0, 0, tiny, 1, 0}
	for i, w := range want {
		if got.Lane(i) != w {
			t.Errorf("lane %d = %v, want %v", i, got.Lane(i), w)
		}
	}
	if !math.Signbit(float64(got.Lane(1))) {
		t.Error("flushed negative subnormal lost its sign")
	}
}

func TestFrexpLdexp(t *testing.T) {
	v := LoadN([]float64{0.75, 8, -3e300, 1e-310}, 4)
	frac, exp := Frexp(v)
	back := Ldexp(frac, exp)
	for i := 0; i < v.NumLanes(); i++ {
		if back.Lane(i) != v.Lane(i) {
			t.Errorf("lane %d: Ldexp(Frexp(%v)) = %v", i, v.Lane(i), back.Lane(i))
		}
		if f := math.Abs(frac.Lane(i)); f < 0.5 || f >= 1 {
			t.Errorf("lane %d: frac %v not in [0.5, 1)", i, frac.Lane(i))
		}
	}
}

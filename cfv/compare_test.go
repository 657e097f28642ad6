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
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var compareScales = []float64{
	1, 10, 1e3, 1e-1, 1e-10, 1e20, 1e-20,
	-1, -10, -1e3, -1e-1, -1e-10, -1e20, -1e-20,
}

func TestCompareScaled(t *testing.T) {
	inf, nan := math.Inf(1), math.NaN()
	cases := []struct {
		ref, val float64
		want     string
	}{
		{0.1, 0.1, "="},
		{0.1234567, 9.1234567, "X"},
		{0.1234567, 0.0934567, "x"},
		{0.1234567, 0.1334567, "x"},
		{0.1234567, 0.1244567, "6"},
		{0.1234567, 0.1235567, "5"},
		{0.1234567, 0.1234667, "4"},
		{0.1234567, 0.1234577, "3"},
		{0.1234567, 0.1234568, "2"},
		{0.123456789, 0.123456779, "1c"},
		{0.123456789, 0.123456788, "=c"},
		{0.123456789, 0.123456780, "c"},
		{0.1, inf, "I"},
		{0.1, -inf, "I"},
		{0.1, nan, "N"},
		{inf, 0.1, "X"},
		{nan, 0.1, "M"},
		{inf, inf, "~"},
		{inf, -inf, "X"},
		{nan, nan, "~"},
	}
	for _, s := range compareScales {
		for _, tc := range cases {
			ref := NewValue(Complex64, complex(tc.ref*s, 0))
			val := NewValue(Complex64, complex(tc.val*s, 0))
			got := Compare(ref, val)
			if !strings.ContainsRune(tc.want, rune(got)) {
				t.Errorf("scale %g: Compare(%g, %g) = %q, want one of %q", s, tc.ref, tc.val, got, tc.want)
			}
		}
	}
}

func TestCompareFiniteness(t *testing.T) {
	inf, nan := math.Inf(1), math.NaN()
	kinds := []struct {
		name string
		z    complex128
	}{
		{"finite", complex(1.5, -2)},
		{"inf", complex(inf, 0)},
		{"-inf", complex(-inf, 1)},
		{"nan", complex(nan, 0)},
	}
	want := map[[2]string]Code{
		{"finite", "finite"}: CodeEqual,
		{"finite", "inf"}:    CodeInf,
		{"finite", "-inf"}:   CodeInf,
		{"finite", "nan"}:    CodeNaN,
		{"inf", "finite"}:    CodeDifferent,
		{"inf", "inf"}:       CodeSameKind,
		{"inf", "-inf"}:      CodeDifferent,
		{"inf", "nan"}:       CodeNaN,
		{"-inf", "finite"}:   CodeDifferent,
		{"-inf", "inf"}:      CodeDifferent,
		{"-inf", "-inf"}:     CodeSameKind,
		{"-inf", "nan"}:      CodeNaN,
		{"nan", "finite"}:    CodeMissing,
		{"nan", "inf"}:       CodeMissing,
		{"nan", "-inf"}:      CodeMissing,
		{"nan", "nan"}:       CodeSameKind,
	}
	for _, d := range []Dtype{Complex64, Complex128} {
		for _, r := range kinds {
			for _, v := range kinds {
				got := Compare(NewValue(d, r.z), NewValue(d, v.z))
				assert.Equal(t, want[[2]string{r.name, v.name}], got, "%v: ref %s, value %s", d, r.name, v.name)
			}
		}
	}
}

func TestCompareSignedZero(t *testing.T) {
	negZero := math.Copysign(0, -1)
	got := Compare(NewValue(Float64, 0), NewValue(Float64, complex(negZero, 0)))
	assert.Equal(t, CodeEqual, got)
}

func TestCompareExtremes(t *testing.T) {
	// Moduli of these values overflow float64 without rescaling.
	big := math.MaxFloat64
	ref := NewValue(Complex128, complex(big, big))
	assert.Equal(t, CodeEqual, Compare(ref, ref))
	assert.Equal(t, CodeClose, Compare(ref, NewValue(Complex128, complex(big, math.Nextafter(big, 0)))))
	assert.Equal(t, CodeDifferent, Compare(ref, NewValue(Complex128, complex(-big, big))))

	denorm := 0x1p-1074
	got := Compare(NewValue(Complex128, complex(denorm, 0)), NewValue(Complex128, complex(2*denorm, 0)))
	assert.Equal(t, CodeMagnitude, got)
}

func TestCompareDtypeMismatchPanics(t *testing.T) {
	assert.Panics(t, func() {
		Compare(NewValue(Complex64, 1), NewValue(Complex128, 1))
	})
}

func TestCompareWorkedExample(t *testing.T) {
	// diff ~ 1e-7, norm ~ 0.1235, eps = 2**-23: log10(6.8) rounds to 1.
	got := Compare(NewValue(Complex64, 0.1234567), NewValue(Complex64, 0.1234568))
	assert.Equal(t, Code('2'), got)
	assert.Equal(t, Inaccuracy, got.Category())
}

func TestCodeCategory(t *testing.T) {
	counts := map[Category]int{}
	for _, c := range Codes() {
		counts[c.Category()]++
	}
	assert.Equal(t, map[Category]int{Match: 3, Inaccuracy: 15, Mismatch: 5}, counts)
	assert.Equal(t, Unknown, Code('?').Category())
	assert.Len(t, Legend(), 9)
}

func TestFTZ(t *testing.T) {
	f := Float32Format
	assert.Equal(t, 0.0, f.FTZ(f.Tiny/2))
	assert.True(t, math.Signbit(f.FTZ(-f.Tiny/2)))
	assert.Equal(t, f.Tiny, f.FTZ(f.Tiny))
	assert.Equal(t, 1.0, f.FTZ(1))
	assert.True(t, math.IsInf(f.FTZ(math.Inf(-1)), -1))
	assert.True(t, math.IsNaN(f.FTZ(math.NaN())))

	v := FTZ(NewValue(Complex64, complex(f.Tiny/4, 3)))
	assert.Equal(t, complex(0, 3), v.Z)
	assert.Equal(t, Complex64, v.Dtype)
}

func TestValueToStr(t *testing.T) {
	f := Float32Format
	cases := []struct {
		x    float64
		want string
	}{
		{math.NaN(), "nan"},
		{math.Inf(1), "+inf"},
		{math.Inf(-1), "-inf"},
		{0, "0"},
		{f.Max, "max"},
		{f.Min, "min"},
		{f.Tiny, "tiny"},
		{-f.Tiny, "-tiny"},
		{2, "2"},
		{-2, "-2"},
		{40000, "4e4"},
		{1e-27, "1e-27"},
		{1.5e10, "2e10"},
		{6e-3, "6e-3"},
		{123, "1e2"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ValueToStr(Complex64, tc.x), "ValueToStr(%g)", tc.x)
	}
	require.Equal(t, "tiny", ValueToStr(Float64, Float64Format.Tiny))
	require.Equal(t, "1e-38", ValueToStr(Float64, Float32Format.Tiny))
}

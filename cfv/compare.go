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
	"math/cmplx"
	"strconv"
	"strings"
)

// Code is an AgreementCode: a one-character classification of how a
// candidate value compares to its reference value.
type Code byte

const (
	CodeEqual     Code = '='
	CodeClose     Code = 'c'
	CodeMagnitude Code = 'x'
	CodeDifferent Code = 'X'
	CodeSameKind  Code = '~'
	CodeInf       Code = 'I'
	CodeNaN       Code = 'N'
	CodeMissing   Code = 'M'
)

// Digits are the inaccuracy codes; Digits[n] marks a relative difference of
// about eps * 10**n.
const Digits = "123456789ABCDEF"

// Codes returns every code in legend order.
func Codes() []Code {
	codes := []Code{CodeEqual, CodeClose}
	for i := 0; i < len(Digits); i++ {
		codes = append(codes, Code(Digits[i]))
	}
	return append(codes, CodeMagnitude, CodeDifferent, CodeSameKind, CodeInf, CodeNaN, CodeMissing)
}

func (c Code) String() string { return string(rune(c)) }

// Category groups codes for the summary statistics.
type Category int

const (
	// Unknown is the category of bytes that are not codes.
	Unknown Category = iota
	Match
	Inaccuracy
	Mismatch
)

// Category returns the summary category of c.
func (c Code) Category() Category {
	switch c {
	case CodeEqual, CodeClose, CodeSameKind:
		return Match
	case CodeMagnitude, CodeDifferent, CodeNaN, CodeInf, CodeMissing:
		return Mismatch
	}
	if strings.IndexByte(Digits, byte(c)) >= 0 {
		return Inaccuracy
	}
	return Unknown
}

// LegendEntry describes one code, or a range of codes, of the legend.
type LegendEntry struct {
	Key         string
	Description string
}

// Legend returns the code descriptions in display order.
func Legend() []LegendEntry {
	return []LegendEntry{
		{"=", "values are equal (diff == 0)"},
		{"c", "values are close (diff < eps * norm)"},
		{"[1-F]", "values are close (diff < eps * norm * 10 ** n, n < resolution)"},
		{"x", "values magnitudes are close (diff is approx. eps * norm * 10 ** resolution)"},
		{"X", "values are different (diff >= eps * norm * 10 ** resolution or one is non-finite)"},
		{"~", "values are non-finite and of the same kind (-inf, inf, or nan)"},
		{"I", "one value is finite but other inf"},
		{"N", "one value is not nan but other is nan"},
		{"M", "one value is nan but other is not nan"},
	}
}

// Compare classifies value against reference.
//
// Both operands must have the same Dtype; a mismatch is a programming error
// and panics.
func Compare(reference, value Value) Code {
	if reference.Dtype != value.Dtype {
		panic(fmt.Sprintf("cfv: Compare dtype mismatch: reference %v, value %v", reference.Dtype, value.Dtype))
	}
	return CompareIn(reference.Dtype.Format(), reference.Z, value.Z)
}

// CompareIn classifies value against reference using format f. Real values
// are complex values with a zero imaginary part.
func CompareIn(f FloatFormat, reference, value complex128) Code {
	switch {
	case isFinite(reference):
		switch {
		case isFinite(value):
			return compareFinite(f, reference, value)
		case isInf(value):
			return CodeInf
		default:
			return CodeNaN
		}
	case isInf(reference):
		switch {
		case reference == value || sameRendering(reference, value):
			return CodeSameKind
		case isNaN(value):
			return CodeNaN
		default:
			return CodeDifferent
		}
	default:
		if isNaN(value) {
			return CodeSameKind
		}
		return CodeMissing
	}
}

func compareFinite(f FloatFormat, reference, value complex128) Code {
	if reference == value {
		return CodeEqual
	}
	reference, value = rescale(reference, value)
	diff := cmplx.Abs(reference - value)
	norm := math.Max(cmplx.Abs(reference), cmplx.Abs(value))
	if diff < f.Epsilon*norm {
		return CodeClose
	}
	n := math.RoundToEven(math.Log10(diff / norm / f.Epsilon))
	switch {
	case n == float64(f.Precision):
		return CodeMagnitude
	case n > float64(f.Precision):
		return CodeDifferent
	case n < 0:
		// diff >= eps*norm keeps n >= 0; rounding at the boundary can not
		// go below the first bucket.
		return Code(Digits[0])
	}
	return Code(Digits[int(n)])
}

// rescale multiplies both values by a common power of two so the largest
// part lies in [0.5, 1). Moduli of the rescaled values never overflow.
func rescale(a, b complex128) (complex128, complex128) {
	exp := math.MinInt
	for _, x := range [...]float64{real(a), imag(a), real(b), imag(b)} {
		if x == 0 {
			continue
		}
		if _, e := math.Frexp(x); e > exp {
			exp = e
		}
	}
	if exp == math.MinInt {
		return a, b
	}
	scale := func(z complex128) complex128 {
		return complex(math.Ldexp(real(z), -exp), math.Ldexp(imag(z), -exp))
	}
	return scale(a), scale(b)
}

func isFinite(z complex128) bool {
	return !math.IsInf(real(z), 0) && !math.IsNaN(real(z)) &&
		!math.IsInf(imag(z), 0) && !math.IsNaN(imag(z))
}

func isInf(z complex128) bool { return math.IsInf(real(z), 0) || math.IsInf(imag(z), 0) }

func isNaN(z complex128) bool { return math.IsNaN(real(z)) || math.IsNaN(imag(z)) }

// sameRendering reports whether a and b print the same: parts are equal, or
// both NaN regardless of sign.
func sameRendering(a, b complex128) bool {
	same := func(x, y float64) bool { return x == y || (math.IsNaN(x) && math.IsNaN(y)) }
	return same(real(a), real(b)) && same(imag(a), imag(b))
}

// FTZ flushes subnormal parts of v to signed zero.
func FTZ(v Value) Value {
	return Value{Dtype: v.Dtype, Z: v.Dtype.Format().FTZComplex(v.Z)}
}

var expReplacements = [][2]string{
	{"e-0", "e-"},
	{"e+0", "e"},
	{"e+", "e"},
	{"e0", ""},
}

// ValueToStr renders a real component of dtype d as a short axis label:
// "nan", "+inf", "-inf", "0", "max", "min", "tiny", "-tiny", or a
// one-digit scientific notation such as "2", "4e4" or "1e-27".
func ValueToStr(d Dtype, x float64) string {
	f := d.Format()
	switch {
	case math.IsNaN(x):
		return "nan"
	case math.IsInf(x, 1):
		return "+inf"
	case math.IsInf(x, -1):
		return "-inf"
	case x == 0:
		return "0"
	case x == f.Max:
		return "max"
	case x == f.Min:
		return "min"
	case x == f.Tiny:
		return "tiny"
	case x == -f.Tiny:
		return "-tiny"
	}
	s := strconv.FormatFloat(x, 'e', 0, 64)
	for _, r := range expReplacements {
		s = strings.ReplaceAll(s, r[0], r[1])
	}
	return s
}

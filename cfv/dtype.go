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
)

// Dtype identifies the floating-point representation of array elements.
type Dtype uint8

const (
	// Invalid is the zero Dtype.
	Invalid Dtype = iota
	Float32
	Float64
	Complex64
	Complex128
)

var dtypeNames = map[Dtype]string{
	Float32:    "float32",
	Float64:    "float64",
	Complex64:  "complex64",
	Complex128: "complex128",
}

// ParseDtype returns the Dtype with the given name, e.g. "complex64".
func ParseDtype(name string) (Dtype, error) {
	for d, n := range dtypeNames {
		if n == name {
			return d, nil
		}
	}
	return Invalid, fmt.Errorf("cfv: unknown dtype %q", name)
}

func (d Dtype) String() string {
	if n, ok := dtypeNames[d]; ok {
		return n
	}
	return fmt.Sprintf("Dtype(%d)", uint8(d))
}

// IsComplex reports whether d is a complex dtype.
func (d Dtype) IsComplex() bool { return d == Complex64 || d == Complex128 }

// Real returns the real counterpart of d (complex64 -> float32).
func (d Dtype) Real() Dtype {
	switch d {
	case Complex64:
		return Float32
	case Complex128:
		return Float64
	}
	return d
}

// Complex returns the complex counterpart of d (float64 -> complex128).
func (d Dtype) Complex() Dtype {
	switch d {
	case Float32:
		return Complex64
	case Float64:
		return Complex128
	}
	return d
}

// Format returns the floating-point format of the components of d.
func (d Dtype) Format() FloatFormat {
	switch d {
	case Float32, Complex64:
		return Float32Format
	case Float64, Complex128:
		return Float64Format
	}
	panic(fmt.Sprintf("cfv: no float format for %v", d))
}

// RoundReal rounds x to the component format of d.
func (d Dtype) RoundReal(x float64) float64 {
	if d.Format().Bits == 32 {
		return float64(float32(x))
	}
	return x
}

// Round coerces z to d: both parts are rounded to the component format, and
// the imaginary part is dropped when d is real.
func (d Dtype) Round(z complex128) complex128 {
	re := d.RoundReal(real(z))
	if !d.IsComplex() {
		return complex(re, 0)
	}
	return complex(re, d.RoundReal(imag(z)))
}

// FloatFormat describes a binary floating-point component format.
type FloatFormat struct {
	// Bits is the storage width, 32 or 64.
	Bits int
	// Min is the most negative finite value (-Max).
	Min float64
	// Max is the largest finite value.
	Max float64
	// Tiny is the smallest positive normal value.
	Tiny float64
	// Epsilon is the gap between 1 and the next representable value.
	Epsilon float64
	// Precision is the number of decimal digits the format resolves; it is
	// also the number of error-magnitude buckets used by Compare.
	Precision int
}

var (
	// Float32Format is the IEEE 754 binary32 format.
	Float32Format = FloatFormat{
		Bits:      32,
		Min:       -math.MaxFloat32,
		Max:       math.MaxFloat32,
		Tiny:      0x1p-126,
		Epsilon:   0x1p-23,
		Precision: 6,
	}
	// Float64Format is the IEEE 754 binary64 format.
	Float64Format = FloatFormat{
		Bits:      64,
		Min:       -math.MaxFloat64,
		Max:       math.MaxFloat64,
		Tiny:      0x1p-1022,
		Epsilon:   0x1p-52,
		Precision: 15,
	}
)

// FTZ flushes a finite nonzero x with |x| < f.Tiny to a zero of the same
// sign. Other values are returned unchanged.
func (f FloatFormat) FTZ(x float64) float64 {
	if x != 0 && math.Abs(x) < f.Tiny {
		return math.Copysign(0, x)
	}
	return x
}

// FTZComplex applies FTZ to both parts of z.
func (f FloatFormat) FTZComplex(z complex128) complex128 {
	return complex(f.FTZ(real(z)), f.FTZ(imag(z)))
}

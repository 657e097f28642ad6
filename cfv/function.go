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
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FunctionNames lists the elementary functions a batch run validates.
var FunctionNames = []string{
	"exp", "log", "log10",
	"sqrt", "square",
	"sin", "cos", "tan",
	"arcsin", "arccos", "arctan",
	"sinh", "cosh", "tanh",
	"arcsinh", "arccosh", "arctanh",
}

// IsFunctionName reports whether name is one of FunctionNames.
func IsFunctionName(name string) bool {
	for _, n := range FunctionNames {
		if n == name {
			return true
		}
	}
	return false
}

// Info identifies a Function.
type Info struct {
	// Library is the display name of the numeric library, e.g. "Go".
	Library string
	// Namespace is the library namespace used in titles, e.g. "cmplx".
	Namespace string
	// Name is the function name, one of FunctionNames.
	Name string
	// Dtype is the dtype the function computes in.
	Dtype Dtype
	// Device is the device the function runs on, e.g. "cpu".
	Device string
}

// Title returns the display title: "DEVICE\nnamespace.name on dtype plane".
func (i Info) Title() string {
	device := cases.Upper(language.Und).String(i.Device)
	return strings.TrimSpace(fmt.Sprintf("%s\n%s.%s on %v plane", device, i.Namespace, i.Name, i.Dtype))
}

// Slug returns a file-name friendly "library_dtype_device" identifier.
func (i Info) Slug() string {
	return fmt.Sprintf("%s_%v_%s", i.Library, i.Dtype, i.Device)
}

// Function is one named elementary function of a numeric library, bound to
// a dtype and a device.
type Function interface {
	// Info identifies the function.
	Info() Info

	// Probe reports whether the function can be exercised. A nil result means
	// available; otherwise the error wraps ErrBackendUnavailable or
	// ErrUnsupportedFunction.
	Probe() error

	// Evaluate applies the function to samples and returns the results
	// coerced to target. Real-typed samples are evaluated with the real
	// variant of the function at the function's real dtype; complex samples
	// at its complex dtype.
	Evaluate(samples Array, target Dtype) (Array, error)

	// ModuleVersion reports the library version, if it has one.
	ModuleVersion() (string, bool)

	// FlushesSubnormals reports whether the function's device is known to
	// flush subnormal results to zero.
	FlushesSubnormals() bool

	// Title returns the display title of the function.
	Title() string
}

// Library opens Functions of one numeric library.
type Library interface {
	// Name is the display name, e.g. "Go".
	Name() string
	// Namespace is the name used in titles and file names.
	Namespace() string
	// Version reports the library version, if it has one.
	Version() (string, bool)
	// Devices lists the device names the library knows about, available or not.
	Devices() []string
	// Function returns the named function at dtype on device. It never fails;
	// unavailability is reported by the Function's Probe.
	Function(name string, dtype Dtype, device string) Function
}

// Elementwise implements Function.Evaluate for libraries with per-element
// kernels. work is the function's complex dtype; cfn evaluates complex
// samples and rfn real samples. Inputs are cast to the working dtype before
// evaluation and results are rounded to it before the cast to target.
func Elementwise(work Dtype, samples Array, target Dtype, cfn func(complex128) complex128, rfn func(float64) float64) Array {
	if samples.Dtype.IsComplex() {
		in := samples.Astype(work.Complex())
		return in.Map(work.Complex(), cfn).Astype(target)
	}
	in := samples.Astype(work.Real())
	return in.Map(work.Real(), func(z complex128) complex128 {
		return complex(rfn(real(z)), 0)
	}).Astype(target)
}

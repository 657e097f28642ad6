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

// Package stdlib is the reference backend: complex functions from
// math/cmplx and their real variants from math. complex64 and float32
// evaluation widens to float64, evaluates, and rounds the result.
package stdlib

import (
	"fmt"
	"math"
	"math/cmplx"
	"runtime"

	"github.com/ajroetker/go-cfv/cfv"
)

const (
	// Name is the display name of the library.
	Name = "Go"
	// Namespace is the name used in titles.
	Namespace = "cmplx"
	// Device is the only device of the library.
	Device = "cpu"
)

type entry struct {
	complex func(complex128) complex128
	real    func(float64) float64
}

var functions = map[string]entry{
	"exp":     {cmplx.Exp, math.Exp},
	"log":     {cmplx.Log, math.Log},
	"log10":   {cmplx.Log10, math.Log10},
	"sqrt":    {cmplx.Sqrt, math.Sqrt},
	"square":  {func(z complex128) complex128 { return z * z }, func(x float64) float64 { return x * x }},
	"sin":     {cmplx.Sin, math.Sin},
	"cos":     {cmplx.Cos, math.Cos},
	"tan":     {cmplx.Tan, math.Tan},
	"arcsin":  {cmplx.Asin, math.Asin},
	"arccos":  {cmplx.Acos, math.Acos},
	"arctan":  {cmplx.Atan, math.Atan},
	"sinh":    {cmplx.Sinh, math.Sinh},
	"cosh":    {cmplx.Cosh, math.Cosh},
	"tanh":    {cmplx.Tanh, math.Tanh},
	"arcsinh": {cmplx.Asinh, math.Asinh},
	"arccosh": {cmplx.Acosh, math.Acosh},
	"arctanh": {cmplx.Atanh, math.Atanh},
}

// Library is an open handle on the standard library backend.
type Library struct{}

// Open returns the standard library backend. It never fails.
func Open() (*Library, error) { return &Library{}, nil }

func (*Library) Name() string      { return Name }
func (*Library) Namespace() string { return Namespace }
func (*Library) Devices() []string { return []string{Device} }

// Version returns the Go release the binary was built with.
func (*Library) Version() (string, bool) { return runtime.Version(), true }

// Function returns the named function at dtype on device.
func (l *Library) Function(name string, dtype cfv.Dtype, device string) cfv.Function {
	return &function{
		info: cfv.Info{Library: Name, Namespace: Namespace, Name: name, Dtype: dtype, Device: device},
	}
}

type function struct {
	info cfv.Info
}

func (f *function) Info() cfv.Info          { return f.info }
func (f *function) Title() string           { return f.info.Title() }
func (f *function) FlushesSubnormals() bool { return false }
func (f *function) ModuleVersion() (string, bool) {
	return fmt.Sprintf("math/cmplx %s", runtime.Version()), true
}

func (f *function) Probe() error {
	if f.info.Device != Device {
		return fmt.Errorf("%s device %q: %w", Name, f.info.Device, cfv.ErrBackendUnavailable)
	}
	if f.info.Dtype == cfv.Invalid {
		return fmt.Errorf("%s %s: invalid dtype: %w", Name, f.info.Name, cfv.ErrUnsupportedFunction)
	}
	if _, ok := functions[f.info.Name]; !ok {
		return fmt.Errorf("%s %s: %w", Name, f.info.Name, cfv.ErrUnsupportedFunction)
	}
	return nil
}

func (f *function) Evaluate(samples cfv.Array, target cfv.Dtype) (cfv.Array, error) {
	if err := f.Probe(); err != nil {
		return cfv.Array{}, err
	}
	e := functions[f.info.Name]
	return cfv.Elementwise(f.info.Dtype, samples, target, e.complex, e.real), nil
}

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

// Package lanes evaluates complex functions in batches of hwy lane vectors
// with the formulas accelerator libraries use: exp-based sinh and cosh, the
// logarithm of a scaled modulus, and no special-casing of signed zeros. A
// device is a dispatch level, which fixes the lane count, or "ftz", an
// emulated accelerator that flushes subnormal inputs and results to zero.
package lanes

import (
	"fmt"

	"github.com/ajroetker/go-cfv/cfv"
	"github.com/ajroetker/go-cfv/hwy"
	"github.com/ajroetker/go-cfv/hwy/contrib"
)

const (
	Name      = "Hwy"
	Namespace = "hwy"

	// DeviceFTZ is the flush-to-zero device. It runs at the host level.
	DeviceFTZ = "ftz"
)

// Library is the lanes backend.
type Library struct {
	host hwy.DispatchLevel
}

// Open returns the lanes backend bound to the level detected at init.
func Open() (*Library, error) {
	return &Library{host: hwy.CurrentLevel()}, nil
}

func (*Library) Name() string      { return Name }
func (*Library) Namespace() string { return Namespace }

// Version reports the host dispatch level and its vector width.
func (l *Library) Version() (string, bool) {
	return fmt.Sprintf("%s/%dB", l.host, l.host.Width()), true
}

// Devices returns scalar, the host level when it is not scalar, and ftz.
func (l *Library) Devices() []string {
	devices := []string{hwy.DispatchScalar.String()}
	if l.host != hwy.DispatchScalar {
		devices = append(devices, l.host.String())
	}
	return append(devices, DeviceFTZ)
}

func (l *Library) Function(name string, dtype cfv.Dtype, device string) cfv.Function {
	return &function{
		info: cfv.Info{Library: Name, Namespace: Namespace, Name: name, Dtype: dtype, Device: device},
		lib:  l,
	}
}

type function struct {
	info cfv.Info
	lib  *Library
}

func (f *function) Info() cfv.Info { return f.info }
func (f *function) Title() string  { return f.info.Title() }

func (f *function) FlushesSubnormals() bool { return f.info.Device == DeviceFTZ }

func (f *function) ModuleVersion() (string, bool) {
	v, _ := f.lib.Version()
	return fmt.Sprintf("%s %s", Namespace, v), true
}

// level returns the dispatch level of the device.
func (f *function) level() (hwy.DispatchLevel, error) {
	if f.info.Device == DeviceFTZ {
		return f.lib.host, nil
	}
	level, ok := hwy.ParseLevel(f.info.Device)
	if !ok {
		return 0, fmt.Errorf("%s: unknown device %q: %w", Name, f.info.Device, cfv.ErrBackendUnavailable)
	}
	if !hwy.Available(level) {
		return 0, fmt.Errorf("%s: %s not supported by this CPU: %w", Name, level, cfv.ErrBackendUnavailable)
	}
	return level, nil
}

func (f *function) Probe() error {
	if _, err := f.level(); err != nil {
		return err
	}
	if f.info.Dtype == cfv.Invalid {
		return fmt.Errorf("%s %s: invalid dtype: %w", Name, f.info.Name, cfv.ErrUnsupportedFunction)
	}
	if _, ok := kernels64[f.info.Name]; !ok {
		return fmt.Errorf("%s %s: %w", Name, f.info.Name, cfv.ErrUnsupportedFunction)
	}
	return nil
}

func (f *function) Evaluate(samples cfv.Array, target cfv.Dtype) (cfv.Array, error) {
	if err := f.Probe(); err != nil {
		return cfv.Array{}, err
	}
	level, _ := f.level()
	ftz := f.FlushesSubnormals()

	var out cfv.Array
	if f.info.Dtype.Real() == cfv.Float32 {
		out = run(kernels32[f.info.Name], hwy.LanesAt[float32](level), ftz, f.info.Dtype, samples)
	} else {
		out = run(kernels64[f.info.Name], hwy.LanesAt[float64](level), ftz, f.info.Dtype, samples)
	}
	return out.Astype(target), nil
}

// run splits samples into real and imaginary planes of T, applies k in
// vectors of lanes elements and joins the result at the work dtype.
func run[T hwy.Floats](k kernel[T], lanes int, ftz bool, work cfv.Dtype, samples cfv.Array) cfv.Array {
	isComplex := samples.Dtype.IsComplex()
	d := work.Real()
	if isComplex {
		d = work.Complex()
	}
	in := samples.Astype(d)
	tiny := T(d.Format().Tiny)

	n := in.Len()
	re, im := make([]T, n), make([]T, n)
	for i, z := range in.Data {
		re[i], im[i] = T(real(z)), T(imag(z))
	}
	outRe, outIm := make([]T, n), make([]T, n)

	if isComplex {
		contrib.Transform2(re, im, outRe, outIm, lanes, func(x, y hwy.Vec[T]) (hwy.Vec[T], hwy.Vec[T]) {
			if ftz {
				x, y = hwy.FlushSubnormal(x, tiny), hwy.FlushSubnormal(y, tiny)
			}
			a, b := k.complex(x, y)
			if ftz {
				a, b = hwy.FlushSubnormal(a, tiny), hwy.FlushSubnormal(b, tiny)
			}
			return a, b
		})
	} else {
		contrib.Transform(re, outRe, lanes, func(x hwy.Vec[T]) hwy.Vec[T] {
			if ftz {
				return hwy.FlushSubnormal(k.real(hwy.FlushSubnormal(x, tiny)), tiny)
			}
			return k.real(x)
		})
	}

	out := cfv.NewArray(d, in.Rows, in.Cols)
	for i := range out.Data {
		out.Data[i] = complex(float64(outRe[i]), float64(outIm[i]))
	}
	return out
}

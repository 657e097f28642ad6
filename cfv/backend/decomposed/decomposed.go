// Package decomposed evaluates complex functions by decomposing them into
// real elementary functions evaluated at the precision of the dtype. It is
// how a library without native complex kernels computes them, and it shows
// where the textbook formulas lose accuracy: cancellation near zeros,
// overflow of intermediate terms, and non-finite mixing.
package decomposed

import (
	"fmt"

	"github.com/ajroetker/go-cfv/cfv"
	"github.com/ajroetker/go-cfv/hwy"
	"github.com/ajroetker/go-cfv/hwy/contrib/math"
)

const (
	Name      = "Decomposed"
	Namespace = "decomposed"
	Device    = "cpu"
	version   = "0.1"
)

// Library is the decomposed backend.
type Library struct{}

// Open returns the decomposed backend.
func Open() (*Library, error) { return &Library{}, nil }

func (*Library) Name() string            { return Name }
func (*Library) Namespace() string       { return Namespace }
func (*Library) Devices() []string       { return []string{Device} }
func (*Library) Version() (string, bool) { return version, true }

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
	return fmt.Sprintf("%s %s", Namespace, version), true
}

func (f *function) Probe() error {
	if f.info.Device != Device {
		return fmt.Errorf("%s device %q: %w", Name, f.info.Device, cfv.ErrBackendUnavailable)
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
	var cfn func(complex128) complex128
	var rfn func(float64) float64
	if f.info.Dtype.Real() == cfv.Float32 {
		cfn, rfn = bind(kernels32[f.info.Name])
	} else {
		cfn, rfn = bind(kernels64[f.info.Name])
	}
	return cfv.Elementwise(f.info.Dtype, samples, target, cfn, rfn), nil
}

// bind adapts the F kernels to the complex128 element callbacks. Arguments
// are narrowed to F first so every intermediate is rounded to F.
func bind[F hwy.Floats](k kernel[F]) (func(complex128) complex128, func(float64) float64) {
	cfn := func(z complex128) complex128 {
		re, im := k.complex(F(real(z)), F(imag(z)))
		return complex(float64(re), float64(im))
	}
	rfn := func(x float64) float64 { return float64(k.real(F(x))) }
	return cfn, rfn
}

type kernel[F hwy.Floats] struct {
	complex func(x, y F) (F, F)
	real    func(x F) F
}

var (
	kernels32 = kernels[float32]()
	kernels64 = kernels[float64]()
)

func kernels[F hwy.Floats]() map[string]kernel[F] {
	return map[string]kernel[F]{
		"exp":    {cexp[F], math.Exp[F]},
		"log":    {clog[F], math.Log[F]},
		"log10":  {clog10[F], math.Log10[F]},
		"sqrt":   {csqrt[F], math.Sqrt[F]},
		"square": {csquare[F], func(x F) F { return x * x }},
		"sin":    {csin[F], math.Sin[F]},
		"cos":    {ccos[F], math.Cos[F]},
		"tan":    {ctan[F], math.Tan[F]},
		"sinh":   {csinh[F], sinh[F]},
		"cosh":   {ccosh[F], cosh[F]},
		"tanh":   {ctanh[F], math.Tanh[F]},
	}
}

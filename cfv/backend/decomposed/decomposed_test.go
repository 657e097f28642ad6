package decomposed

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-cfv/cfv"
)

var reference = map[string]func(complex128) complex128{
	"exp":    cmplx.Exp,
	"log":    cmplx.Log,
	"log10":  cmplx.Log10,
	"sqrt":   cmplx.Sqrt,
	"square": func(z complex128) complex128 { return z * z },
	"sin":    cmplx.Sin,
	"cos":    cmplx.Cos,
	"tan":    cmplx.Tan,
	"sinh":   cmplx.Sinh,
	"cosh":   cmplx.Cosh,
	"tanh":   cmplx.Tanh,
}

var points = []complex128{
	complex(0.5, 0.25),
	complex(-1.5, 2),
	complex(0.1, -0.3),
	complex(3, -0.5),
}

func row(d cfv.Dtype, zs ...complex128) cfv.Array {
	a := cfv.NewArray(d, 1, len(zs))
	for i, z := range zs {
		a.Set(0, i, z)
	}
	return a
}

func TestProbe(t *testing.T) {
	lib, err := Open()
	require.NoError(t, err)

	for name := range reference {
		assert.NoError(t, lib.Function(name, cfv.Complex64, Device).Probe(), name)
	}
	for _, name := range []string{"arcsin", "arccos", "arctan", "arcsinh", "arccosh", "arctanh"} {
		err := lib.Function(name, cfv.Complex64, Device).Probe()
		assert.True(t, errors.Is(err, cfv.ErrUnsupportedFunction), "%s: got %v", name, err)
	}
	err = lib.Function("exp", cfv.Complex64, "gpu").Probe()
	assert.True(t, errors.Is(err, cfv.ErrBackendUnavailable), "got %v", err)
}

func TestAccuracy(t *testing.T) {
	lib, _ := Open()
	for _, tc := range []struct {
		dtype cfv.Dtype
		tol   float64
	}{
		{cfv.Complex128, 1e-13},
		{cfv.Complex64, 1e-5},
	} {
		for name, ref := range reference {
			in := row(tc.dtype, points...)
			out, err := lib.Function(name, tc.dtype, Device).Evaluate(in, tc.dtype)
			require.NoError(t, err)
			for i, z := range in.Data {
				want := ref(z)
				got := out.At(0, i)
				if rel := cmplx.Abs(got-want) / cmplx.Abs(want); rel > tc.tol {
					t.Errorf("%v %s(%v) = %v, want %v (rel %g)", tc.dtype, name, z, got, want, rel)
				}
			}
		}
	}
}

func TestSpecialValues(t *testing.T) {
	lib, _ := Open()
	eval := func(name string, z complex128) complex128 {
		out, err := lib.Function(name, cfv.Complex128, Device).Evaluate(row(cfv.Complex128, z), cfv.Complex128)
		require.NoError(t, err)
		return out.At(0, 0)
	}

	assert.Equal(t, complex(0, 2), eval("sqrt", -4))
	assert.Equal(t, complex(math.Inf(1), 0), eval("exp", complex(math.Inf(1), 0)))
	assert.Equal(t, complex(math.Inf(1), math.Inf(-1)), eval("sqrt", complex(1, math.Inf(-1))))
	assert.Equal(t, complex128(0), eval("sqrt", 0))
	assert.Equal(t, complex(0, 1), eval("tan", complex(1, 1000)))
	assert.Equal(t, complex(-1, 0), eval("tanh", complex(-1000, 0)))

	// sin(iy) keeps the real part exactly zero.
	got := eval("sin", complex(0, 0.5))
	assert.Equal(t, 0.0, real(got))
	assert.InEpsilon(t, math.Sinh(0.5), imag(got), 1e-15)
}

func TestEvaluateReal(t *testing.T) {
	lib, _ := Open()
	in := row(cfv.Float64, 1e-10, 1, -2)
	out, err := lib.Function("sinh", cfv.Float64, Device).Evaluate(in, cfv.Complex128)
	require.NoError(t, err)
	assert.Equal(t, cfv.Complex128, out.Dtype)
	for i, z := range in.Data {
		want := math.Sinh(real(z))
		assert.InEpsilon(t, want, real(out.At(0, i)), 1e-15)
		assert.Equal(t, 0.0, imag(out.At(0, i)))
	}
}

package lanes

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-cfv/cfv"
	"github.com/ajroetker/go-cfv/hwy"
)

var reference = map[string]func(complex128) complex128{
	"exp":    cmplx.Exp,
	"log":    cmplx.Log,
	"log10":  cmplx.Log10,
	"sqrt":   cmplx.Sqrt,
	"square": func(z complex128) complex128 { return z * z },
	"sin":    cmplx.Sin,
	"cos":    cmplx.Cos,
	"sinh":   cmplx.Sinh,
	"cosh":   cmplx.Cosh,
	"tanh":   cmplx.Tanh,
}

// Seven points so every lane count leaves a tail.
var points = []complex128{
	complex(0.5, 0.25),
	complex(-1.5, 2),
	complex(0.1, -0.3),
	complex(3, -0.5),
	complex(-0.75, -1.25),
	complex(2, 0),
	complex(0, 1.5),
}

func row(d cfv.Dtype, zs ...complex128) cfv.Array {
	a := cfv.NewArray(d, 1, len(zs))
	for i, z := range zs {
		a.Set(0, i, z)
	}
	return a
}

func TestDevices(t *testing.T) {
	lib, err := Open()
	require.NoError(t, err)

	devices := lib.Devices()
	require.GreaterOrEqual(t, len(devices), 2)
	assert.Equal(t, "scalar", devices[0])
	assert.Equal(t, DeviceFTZ, devices[len(devices)-1])
	for _, d := range devices {
		assert.NoError(t, lib.Function("exp", cfv.Complex64, d).Probe(), d)
	}

	assert.True(t, lib.Function("exp", cfv.Complex64, DeviceFTZ).FlushesSubnormals())
	assert.False(t, lib.Function("exp", cfv.Complex64, "scalar").FlushesSubnormals())
}

func TestProbeErrors(t *testing.T) {
	lib, _ := Open()

	err := lib.Function("exp", cfv.Complex64, "tpu").Probe()
	assert.True(t, errors.Is(err, cfv.ErrBackendUnavailable), "got %v", err)

	err = lib.Function("tan", cfv.Complex64, "scalar").Probe()
	assert.True(t, errors.Is(err, cfv.ErrUnsupportedFunction), "got %v", err)

	for _, level := range hwy.Levels {
		err := lib.Function("exp", cfv.Complex64, level.String()).Probe()
		if hwy.Available(level) {
			assert.NoError(t, err, level.String())
		} else {
			assert.True(t, errors.Is(err, cfv.ErrBackendUnavailable), "%v: got %v", level, err)
		}
	}
}

func TestAccuracy(t *testing.T) {
	lib, _ := Open()
	for _, tc := range []struct {
		dtype cfv.Dtype
		tol   float64
	}{
		{cfv.Complex128, 1e-11},
		{cfv.Complex64, 1e-4},
	} {
		for name, ref := range reference {
			in := row(tc.dtype, points...)
			out, err := lib.Function(name, tc.dtype, "scalar").Evaluate(in, tc.dtype)
			require.NoError(t, err)
			require.Equal(t, tc.dtype, out.Dtype)
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

func TestLaneCountIndependence(t *testing.T) {
	lib, _ := Open()
	in := row(cfv.Complex64, points...)
	for name := range reference {
		want, err := lib.Function(name, cfv.Complex64, "scalar").Evaluate(in, cfv.Complex64)
		require.NoError(t, err)
		got, err := lib.Function(name, cfv.Complex64, hwy.CurrentName()).Evaluate(in, cfv.Complex64)
		require.NoError(t, err)
		assert.Equal(t, want.Data, got.Data, name)
	}
}

func TestRealLine(t *testing.T) {
	lib, _ := Open()
	in := row(cfv.Float64, 0.5, 2, 3, 10)
	out, err := lib.Function("log", cfv.Complex128, "scalar").Evaluate(in, cfv.Complex128)
	require.NoError(t, err)
	for i, z := range in.Data {
		assert.InEpsilon(t, math.Log(real(z)), real(out.At(0, i)), 1e-15)
		assert.Equal(t, 0.0, imag(out.At(0, i)))
	}
}

func TestFlushToZero(t *testing.T) {
	lib, _ := Open()
	in := row(cfv.Complex64, -100)

	out, err := lib.Function("exp", cfv.Complex64, "scalar").Evaluate(in, cfv.Complex64)
	require.NoError(t, err)
	assert.Greater(t, real(out.At(0, 0)), 0.0, "e^-100 is a float32 subnormal")

	out, err = lib.Function("exp", cfv.Complex64, DeviceFTZ).Evaluate(in, cfv.Complex64)
	require.NoError(t, err)
	assert.Equal(t, complex128(0), out.At(0, 0))

	// Inputs are flushed too; the square root of this subnormal is normal.
	sub := row(cfv.Float32, complex(math.SmallestNonzeroFloat32*16, 0))
	out, err = lib.Function("sqrt", cfv.Float32, DeviceFTZ).Evaluate(sub, cfv.Float32)
	require.NoError(t, err)
	assert.Equal(t, complex128(0), out.At(0, 0))
}

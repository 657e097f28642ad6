// Package math provides real elementary functions evaluated at the precision
// of their argument type. float32 results are the float64 result rounded
// once, which is correctly rounded except in rare double-rounding cases;
// float64 results are those of the standard library.
package math

import (
	stdmath "math"

	"github.com/ajroetker/go-cfv/hwy"
)

func apply[F hwy.Floats](x F, fn func(float64) float64) F { return F(fn(float64(x))) }

func apply2[F hwy.Floats](x, y F, fn func(float64, float64) float64) F {
	return F(fn(float64(x), float64(y)))
}

// Exp computes e^x.
func Exp[F hwy.Floats](x F) F { return apply(x, stdmath.Exp) }

// Expm1 computes e^x - 1, accurate for small x.
func Expm1[F hwy.Floats](x F) F { return apply(x, stdmath.Expm1) }

// Log computes ln(x).
func Log[F hwy.Floats](x F) F { return apply(x, stdmath.Log) }

// Log1p computes ln(1 + x), accurate for small x.
func Log1p[F hwy.Floats](x F) F { return apply(x, stdmath.Log1p) }

// Log10 computes log₁₀(x).
func Log10[F hwy.Floats](x F) F { return apply(x, stdmath.Log10) }

// Sqrt computes √x.
func Sqrt[F hwy.Floats](x F) F { return apply(x, stdmath.Sqrt) }

// Sin computes sin(x).
func Sin[F hwy.Floats](x F) F { return apply(x, stdmath.Sin) }

// Cos computes cos(x).
func Cos[F hwy.Floats](x F) F { return apply(x, stdmath.Cos) }

// Tan computes tan(x).
func Tan[F hwy.Floats](x F) F { return apply(x, stdmath.Tan) }

// Sinh computes sinh(x).
func Sinh[F hwy.Floats](x F) F { return apply(x, stdmath.Sinh) }

// Cosh computes cosh(x).
func Cosh[F hwy.Floats](x F) F { return apply(x, stdmath.Cosh) }

// Tanh computes tanh(x).
func Tanh[F hwy.Floats](x F) F { return apply(x, stdmath.Tanh) }

// Asin computes arcsin(x).
func Asin[F hwy.Floats](x F) F { return apply(x, stdmath.Asin) }

// Acos computes arccos(x).
func Acos[F hwy.Floats](x F) F { return apply(x, stdmath.Acos) }

// Atan computes arctan(x).
func Atan[F hwy.Floats](x F) F { return apply(x, stdmath.Atan) }

// Asinh computes arsinh(x).
func Asinh[F hwy.Floats](x F) F { return apply(x, stdmath.Asinh) }

// Acosh computes arcosh(x).
func Acosh[F hwy.Floats](x F) F { return apply(x, stdmath.Acosh) }

// Atanh computes artanh(x).
func Atanh[F hwy.Floats](x F) F { return apply(x, stdmath.Atanh) }

// Hypot computes √(x² + y²) without undue overflow.
func Hypot[F hwy.Floats](x, y F) F { return apply2(x, y, stdmath.Hypot) }

// Atan2 computes the argument of the point (x, y).
func Atan2[F hwy.Floats](y, x F) F { return apply2(y, x, stdmath.Atan2) }

// Copysign returns |x| with the sign of y.
func Copysign[F hwy.Floats](x, y F) F { return apply2(x, y, stdmath.Copysign) }

// Abs returns |x|.
func Abs[F hwy.Floats](x F) F { return apply(x, stdmath.Abs) }

// IsNaN reports whether x is NaN.
func IsNaN[F hwy.Floats](x F) bool { return x != x }

// IsInf reports whether x is infinite with the sign of sign, or of either
// sign when sign is 0.
func IsInf[F hwy.Floats](x F, sign int) bool { return stdmath.IsInf(float64(x), sign) }

// Inf returns an infinity of the sign of sign.
func Inf[F hwy.Floats](sign int) F { return F(stdmath.Inf(sign)) }

// NaN returns a quiet NaN.
func NaN[F hwy.Floats]() F { return F(stdmath.NaN()) }

// Max returns the largest finite value of F.
func Max[F hwy.Floats]() F {
	var zero F
	if _, ok := any(zero).(float32); ok {
		m := float32(stdmath.MaxFloat32)
		return F(m)
	}
	m := stdmath.MaxFloat64
	return F(m)
}

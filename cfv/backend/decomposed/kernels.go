package decomposed

import (
	stdmath "math"

	"github.com/ajroetker/go-cfv/hwy"
	"github.com/ajroetker/go-cfv/hwy/contrib/math"
)

// sinhcosh returns sinh(x) and cosh(x) from expm1, which keeps sinh
// accurate for small x.
func sinhcosh[F hwy.Floats](x F) (F, F) {
	e1m, e2m := math.Expm1(x), math.Expm1(-x)
	return (e1m - e2m) / 2, (2 + e1m + e2m) / 2
}

func sinh[F hwy.Floats](x F) F {
	s, _ := sinhcosh(x)
	return s
}

func cosh[F hwy.Floats](x F) F {
	_, c := sinhcosh(x)
	return c
}

func cexp[F hwy.Floats](x, y F) (F, F) {
	e := math.Exp(x)
	if y == 0 {
		return e, y
	}
	return e * math.Cos(y), e * math.Sin(y)
}

func clog[F hwy.Floats](x, y F) (F, F) {
	return math.Log(math.Hypot(x, y)), math.Atan2(y, x)
}

func clog10[F hwy.Floats](x, y F) (F, F) {
	return math.Log10(math.Hypot(x, y)), math.Atan2(y, x) * F(stdmath.Log10E)
}

// csqrt uses the half-angle formulas on the larger root to avoid
// cancellation.
func csqrt[F hwy.Floats](x, y F) (F, F) {
	switch {
	case x == 0 && y == 0:
		return 0, y
	case math.IsInf(y, 0):
		return math.Inf[F](1), y
	}
	t := math.Sqrt(math.Abs(x)/2 + math.Hypot(x, y)/2)
	if x >= 0 {
		return t, y / (2 * t)
	}
	return math.Abs(y) / (2 * t), math.Copysign(t, y)
}

func csquare[F hwy.Floats](x, y F) (F, F) {
	return (x - y) * (x + y), 2 * x * y
}

func csin[F hwy.Floats](x, y F) (F, F) {
	sn, cs := math.Sin(x), math.Cos(x)
	snh, csh := sinhcosh(y)
	if x == 0 {
		return sn, snh
	}
	return sn * csh, cs * snh
}

func ccos[F hwy.Floats](x, y F) (F, F) {
	sn, cs := math.Sin(x), math.Cos(x)
	snh, csh := sinhcosh(y)
	if x == 0 {
		return csh, -math.Copysign(0, x) * math.Copysign(1, y)
	}
	return cs * csh, -sn * snh
}

// ctan is (sin 2x + i sinh 2y) / (cos 2x + cosh 2y). The denominator
// overflows before the quotient does; the limit is taken there.
func ctan[F hwy.Floats](x, y F) (F, F) {
	s2, c2 := math.Sin(2*x), math.Cos(2*x)
	sh2, ch2 := sinhcosh(2 * y)
	d := c2 + ch2
	if math.IsInf(d, 1) {
		return math.Copysign(0, s2), math.Copysign(1, y)
	}
	return s2 / d, sh2 / d
}

func csinh[F hwy.Floats](x, y F) (F, F) {
	snh, csh := sinhcosh(x)
	if y == 0 {
		return snh, y
	}
	return snh * math.Cos(y), csh * math.Sin(y)
}

func ccosh[F hwy.Floats](x, y F) (F, F) {
	snh, csh := sinhcosh(x)
	if y == 0 {
		return csh, math.Copysign(0, x) * math.Copysign(1, y)
	}
	return csh * math.Cos(y), snh * math.Sin(y)
}

// ctanh is (sinh 2x + i sin 2y) / (cosh 2x + cos 2y), the rotation of ctan.
func ctanh[F hwy.Floats](x, y F) (F, F) {
	s2, c2 := math.Sin(2*y), math.Cos(2*y)
	sh2, ch2 := sinhcosh(2 * x)
	d := ch2 + c2
	if math.IsInf(d, 1) {
		return math.Copysign(1, x), math.Copysign(0, s2)
	}
	return sh2 / d, s2 / d
}

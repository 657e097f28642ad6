package lanes

import (
	"math"

	"github.com/ajroetker/go-cfv/hwy"
	"github.com/ajroetker/go-cfv/hwy/contrib"
)

type kernel[T hwy.Floats] struct {
	complex func(x, y hwy.Vec[T]) (hwy.Vec[T], hwy.Vec[T])
	real    func(x hwy.Vec[T]) hwy.Vec[T]
}

var (
	kernels32 = kernels[float32]()
	kernels64 = kernels[float64]()
)

func kernels[T hwy.Floats]() map[string]kernel[T] {
	return map[string]kernel[T]{
		"exp":    {cexp[T], contrib.Exp[T]},
		"log":    {clog[T], contrib.Log[T]},
		"log10":  {clog10[T], contrib.Log10[T]},
		"sqrt":   {csqrt[T], hwy.Sqrt[T]},
		"square": {csquare[T], func(x hwy.Vec[T]) hwy.Vec[T] { return hwy.Mul(x, x) }},
		"sin":    {csin[T], contrib.Sin[T]},
		"cos":    {ccos[T], contrib.Cos[T]},
		"sinh":   {csinh[T], contrib.Sinh[T]},
		"cosh":   {ccosh[T], contrib.Cosh[T]},
		"tanh":   {ctanh[T], contrib.Tanh[T]},
	}
}

// tanhLimit is where tanh saturates in T.
func tanhLimit[T hwy.Floats]() T {
	var zero T
	if _, ok := any(zero).(float32); ok {
		return 9
	}
	return 19
}

// modulus computes |x + iy| as hi * sqrt(1 + (lo/hi)^2).
func modulus[T hwy.Floats](x, y hwy.Vec[T]) hwy.Vec[T] {
	zero, one := hwy.Broadcast(x, 0), hwy.Broadcast(x, 1)
	ax, ay := hwy.Abs(x), hwy.Abs(y)
	hi, lo := hwy.Max(ax, ay), hwy.Min(ax, ay)
	r := hwy.Div(lo, hi)
	m := hwy.Mul(hi, hwy.Sqrt(hwy.FMA(r, r, one)))
	m = hwy.IfThenElse(hwy.Equal(hi, zero), zero, m)
	return hwy.IfThenElse(hwy.IsInf(ax).Or(hwy.IsInf(ay)), hwy.Broadcast(x, T(math.Inf(1))), m)
}

func cexp[T hwy.Floats](x, y hwy.Vec[T]) (hwy.Vec[T], hwy.Vec[T]) {
	e := contrib.Exp(x)
	s, c := contrib.SinCos(y)
	return hwy.Mul(e, c), hwy.Mul(e, s)
}

func clog[T hwy.Floats](x, y hwy.Vec[T]) (hwy.Vec[T], hwy.Vec[T]) {
	return contrib.Log(modulus(x, y)), contrib.Atan2(y, x)
}

func clog10[T hwy.Floats](x, y hwy.Vec[T]) (hwy.Vec[T], hwy.Vec[T]) {
	re, im := clog(x, y)
	k := hwy.Broadcast(x, T(math.Log10E))
	return hwy.Mul(re, k), hwy.Mul(im, k)
}

// csqrt is sqrt((|z|+x)/2) + i sign(y) sqrt((|z|-x)/2), with the halves
// taken before the sum.
func csqrt[T hwy.Floats](x, y hwy.Vec[T]) (hwy.Vec[T], hwy.Vec[T]) {
	zero, half := hwy.Broadcast(x, 0), hwy.Broadcast(x, 0.5)
	m := hwy.Mul(modulus(x, y), half)
	hx := hwy.Mul(x, half)
	// Max(zero, v) keeps NaN lanes of v.
	re := hwy.Sqrt(hwy.Max(zero, hwy.Add(m, hx)))
	im := hwy.Sqrt(hwy.Max(zero, hwy.Sub(m, hx)))
	return re, hwy.CopySign(im, y)
}

func csquare[T hwy.Floats](x, y hwy.Vec[T]) (hwy.Vec[T], hwy.Vec[T]) {
	re := hwy.Mul(hwy.Sub(x, y), hwy.Add(x, y))
	im := hwy.Mul(hwy.Add(x, x), y)
	return re, im
}

func csin[T hwy.Floats](x, y hwy.Vec[T]) (hwy.Vec[T], hwy.Vec[T]) {
	s, c := contrib.SinCos(x)
	return hwy.Mul(s, contrib.Cosh(y)), hwy.Mul(c, contrib.Sinh(y))
}

func ccos[T hwy.Floats](x, y hwy.Vec[T]) (hwy.Vec[T], hwy.Vec[T]) {
	s, c := contrib.SinCos(x)
	return hwy.Mul(c, contrib.Cosh(y)), hwy.Neg(hwy.Mul(s, contrib.Sinh(y)))
}

func csinh[T hwy.Floats](x, y hwy.Vec[T]) (hwy.Vec[T], hwy.Vec[T]) {
	s, c := contrib.SinCos(y)
	return hwy.Mul(contrib.Sinh(x), c), hwy.Mul(contrib.Cosh(x), s)
}

func ccosh[T hwy.Floats](x, y hwy.Vec[T]) (hwy.Vec[T], hwy.Vec[T]) {
	s, c := contrib.SinCos(y)
	return hwy.Mul(contrib.Cosh(x), c), hwy.Mul(contrib.Sinh(x), s)
}

// ctanh is (sinh 2x + i sin 2y) / (cosh 2x + cos 2y), saturated to
// sign(x) + 0i where |x| exceeds the tanh limit.
func ctanh[T hwy.Floats](x, y hwy.Vec[T]) (hwy.Vec[T], hwy.Vec[T]) {
	x2, y2 := hwy.Add(x, x), hwy.Add(y, y)
	s, c := contrib.SinCos(y2)
	d := hwy.Add(contrib.Cosh(x2), c)
	re, im := hwy.Div(contrib.Sinh(x2), d), hwy.Div(s, d)

	big := hwy.GreaterThan(hwy.Abs(x), hwy.Broadcast(x, tanhLimit[T]()))
	re = hwy.IfThenElse(big, hwy.CopySign(hwy.Broadcast(x, 1), x), re)
	im = hwy.IfThenElse(big, hwy.CopySign(hwy.Broadcast(x, 0), s), im)
	return re, im
}

package contrib

import "github.com/ajroetker/go-cfv/hwy"

// Horner evaluates a polynomial using Horner's method.
// Given coefficients [c0, c1, c2, ..., cn], computes:
//
//	p(x) = c0 + x*(c1 + x*(c2 + ... + x*cn))
//
// Coefficients are broadcast to the lane count of x.
func Horner[T hwy.Floats](x hwy.Vec[T], coeffs []T) hwy.Vec[T] {
	if len(coeffs) == 0 {
		return hwy.Broadcast(x, 0)
	}
	result := hwy.Broadcast(x, coeffs[len(coeffs)-1])
	for i := len(coeffs) - 2; i >= 0; i-- {
		result = hwy.FMA(result, x, hwy.Broadcast(x, coeffs[i]))
	}
	return result
}

// series returns n coefficients c[k] = term(k) converted to T.
func series[T hwy.Floats](n int, term func(k int) float64) []T {
	c := make([]T, n)
	for k := range c {
		c[k] = T(term(k))
	}
	return c
}

// factorial returns n! as a float64.
func factorial(n int) float64 {
	f := 1.0
	for i := 2; i <= n; i++ {
		f *= float64(i)
	}
	return f
}

// alternating returns +1 for even k and -1 for odd k.
func alternating(k int) float64 {
	if k%2 == 1 {
		return -1
	}
	return 1
}

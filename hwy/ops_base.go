package hwy

import "math"

// This file provides the pure Go implementations of the lane operations.
// Every level runs them; the level only decides the lane count.

// Load creates a vector from the first MaxLanes elements of src.
func Load[T Lanes](src []T) Vec[T] {
	return LoadN(src, MaxLanes[T]())
}

// LoadN creates a vector from the first n elements of src, or fewer when
// src is shorter.
func LoadN[T Lanes](src []T, n int) Vec[T] {
	n = min(n, len(src))
	data := make([]T, n)
	copy(data, src[:n])
	return Vec[T]{data: data}
}

// Store writes the lanes of v to dst. Lanes past len(dst) are dropped.
func Store[T Lanes](v Vec[T], dst []T) {
	copy(dst, v.data)
}

// Set creates a vector with all lanes set to value.
func Set[T Lanes](value T) Vec[T] {
	return SetN(value, MaxLanes[T]())
}

// SetN creates an n-lane vector with all lanes set to value.
func SetN[T Lanes](value T, n int) Vec[T] {
	data := make([]T, n)
	for i := range data {
		data[i] = value
	}
	return Vec[T]{data: data}
}

// Zero creates a vector with all lanes set to zero.
func Zero[T Lanes]() Vec[T] {
	return Vec[T]{data: make([]T, MaxLanes[T]())}
}

// Broadcast returns a vector with the lane count of like and all lanes set
// to value.
func Broadcast[T Lanes](like Vec[T], value T) Vec[T] {
	return SetN(value, len(like.data))
}

func unary[T Lanes](v Vec[T], fn func(T) T) Vec[T] {
	result := make([]T, len(v.data))
	for i, x := range v.data {
		result[i] = fn(x)
	}
	return Vec[T]{data: result}
}

func binary[T Lanes](a, b Vec[T], fn func(T, T) T) Vec[T] {
	n := min(len(a.data), len(b.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = fn(a.data[i], b.data[i])
	}
	return Vec[T]{data: result}
}

func compare[T Lanes](a, b Vec[T], fn func(T, T) bool) Mask[T] {
	n := min(len(a.data), len(b.data))
	bits := make([]bool, n)
	for i := 0; i < n; i++ {
		bits[i] = fn(a.data[i], b.data[i])
	}
	return Mask[T]{bits: bits}
}

// Map applies fn to every lane of v. Kernels use it for lanes that have no
// vector formulation.
func Map[T Lanes](v Vec[T], fn func(T) T) Vec[T] { return unary(v, fn) }

// Add performs element-wise addition.
func Add[T Lanes](a, b Vec[T]) Vec[T] {
	return binary(a, b, func(x, y T) T { return x + y })
}

// Sub performs element-wise subtraction.
func Sub[T Lanes](a, b Vec[T]) Vec[T] {
	return binary(a, b, func(x, y T) T { return x - y })
}

// Mul performs element-wise multiplication.
func Mul[T Lanes](a, b Vec[T]) Vec[T] {
	return binary(a, b, func(x, y T) T { return x * y })
}

// Div performs element-wise division.
func Div[T Floats](a, b Vec[T]) Vec[T] {
	return binary(a, b, func(x, y T) T { return x / y })
}

// Neg negates all lanes.
func Neg[T Lanes](v Vec[T]) Vec[T] {
	return unary(v, func(x T) T { return -x })
}

// Abs computes the absolute value of every lane. For floats the sign bit
// is cleared, so Abs(-0) is +0 and Abs(NaN) is NaN.
func Abs[T Floats](v Vec[T]) Vec[T] {
	return unary(v, func(x T) T { return T(math.Abs(float64(x))) })
}

// Min returns the element-wise minimum. A NaN lane in a yields b.
func Min[T Lanes](a, b Vec[T]) Vec[T] {
	return binary(a, b, func(x, y T) T {
		if x < y {
			return x
		}
		return y
	})
}

// Max returns the element-wise maximum. A NaN lane in a yields b.
func Max[T Lanes](a, b Vec[T]) Vec[T] {
	return binary(a, b, func(x, y T) T {
		if x > y {
			return x
		}
		return y
	})
}

// Sqrt computes the correctly rounded square root of every lane.
func Sqrt[T Floats](v Vec[T]) Vec[T] {
	return unary(v, func(x T) T { return T(math.Sqrt(float64(x))) })
}

// FMA computes a*b + c for every lane. float64 lanes are fused; float32
// lanes are computed exactly in float64 and rounded once.
func FMA[T Floats](a, b, c Vec[T]) Vec[T] {
	n := min(len(a.data), len(b.data), len(c.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		result[i] = T(math.FMA(float64(a.data[i]), float64(b.data[i]), float64(c.data[i])))
	}
	return Vec[T]{data: result}
}

// CopySign returns lanes with the magnitude of mag and the sign of sign.
func CopySign[T Floats](mag, sign Vec[T]) Vec[T] {
	return binary(mag, sign, func(x, y T) T { return T(math.Copysign(float64(x), float64(y))) })
}

// Round rounds every lane to the nearest integer, ties to even.
func Round[T Floats](v Vec[T]) Vec[T] {
	return unary(v, func(x T) T { return T(math.RoundToEven(float64(x))) })
}

// Ldexp multiplies every lane of v by 2**e, where e holds integral lanes.
// The result is rounded to T once.
func Ldexp[T Floats](v, e Vec[T]) Vec[T] {
	return binary(v, e, func(x, k T) T { return T(math.Ldexp(float64(x), int(k))) })
}

// Frexp splits every lane into a fraction in [0.5, 1) and an integral
// exponent such that v = frac * 2**exp. Zero, infinite and NaN lanes
// return themselves with a zero exponent.
func Frexp[T Floats](v Vec[T]) (frac, exp Vec[T]) {
	frac = Vec[T]{data: make([]T, len(v.data))}
	exp = Vec[T]{data: make([]T, len(v.data))}
	for i, x := range v.data {
		f, e := math.Frexp(float64(x))
		frac.data[i], exp.data[i] = T(f), T(e)
	}
	return frac, exp
}

// FlushSubnormal replaces subnormal lanes with a zero of the same sign.
// tiny is the smallest positive normal value of T.
func FlushSubnormal[T Floats](v Vec[T], tiny T) Vec[T] {
	return unary(v, func(x T) T {
		if x != 0 && x < tiny && x > -tiny {
			return T(math.Copysign(0, float64(x)))
		}
		return x
	})
}

// ReduceSum sums all lanes.
func ReduceSum[T Lanes](v Vec[T]) T {
	var sum T
	for _, x := range v.data {
		sum += x
	}
	return sum
}

// Equal performs element-wise equality comparison.
func Equal[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x == y })
}

// LessThan performs element-wise less-than comparison.
func LessThan[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x < y })
}

// GreaterThan performs element-wise greater-than comparison.
func GreaterThan[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x > y })
}

// IsNaN returns the lanes of v that are NaN.
func IsNaN[T Floats](v Vec[T]) Mask[T] {
	return compare(v, v, func(x, _ T) bool { return x != x })
}

// IsInf returns the lanes of v that are infinite.
func IsInf[T Floats](v Vec[T]) Mask[T] {
	return compare(v, v, func(x, _ T) bool { return math.IsInf(float64(x), 0) })
}

// IsFinite returns the lanes of v that are neither infinite nor NaN.
func IsFinite[T Floats](v Vec[T]) Mask[T] {
	return IsNaN(v).Or(IsInf(v)).Not()
}

// SignBit returns the lanes of v with the sign bit set, including -0.
func SignBit[T Floats](v Vec[T]) Mask[T] {
	return compare(v, v, func(x, _ T) bool { return math.Signbit(float64(x)) })
}

// IfThenElse selects a where mask is set and b elsewhere.
func IfThenElse[T Lanes](mask Mask[T], a, b Vec[T]) Vec[T] {
	n := min(len(mask.bits), len(a.data), len(b.data))
	result := make([]T, n)
	for i := 0; i < n; i++ {
		if mask.bits[i] {
			result[i] = a.data[i]
		} else {
			result[i] = b.data[i]
		}
	}
	return Vec[T]{data: result}
}

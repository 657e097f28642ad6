// Package contrib provides lane-wise transcendental functions for hwy
// vectors. The functions are polynomial approximations after range
// reduction, computed entirely in the lane type, the way vector math
// libraries for accelerators evaluate them.
//
// Every function has a float32 and a float64 implementation held in a
// function variable (Exp32, Exp64, ...) that is set at init and may be
// replaced; the generic wrapper (Exp, ...) dispatches on the lane type.
//
// # Mathematical Functions
//
// Exponential and Logarithmic:
//   - Exp: computes e^x
//   - Log: computes natural logarithm ln(x)
//   - Log10: computes log₁₀(x)
//
// Trigonometric:
//   - Sin, Cos: sine and cosine (input in radians)
//   - SinCos: both, sharing the range reduction
//   - Atan, Atan2: inverse tangent
//
// Hyperbolic:
//   - Sinh, Cosh: from exp(x) and exp(-x)
//   - Tanh: hyperbolic tangent
//
// # Accuracy
//
// Errors are a few ULP within the range-reduction limits. Outside them
// (|x| beyond about 1e5 for float32 sine and cosine) the reduction loses
// all significance; results stay in [-1, 1] but are not accurate. Sinh near
// zero cancels catastrophically. These are the usual tradeoffs of vector
// math libraries and are left as is.
//
// # Example Usage
//
//	func ProcessData(data []float32) []float32 {
//	    result := make([]float32, len(data))
//	    contrib.Transform(data, result, hwy.MaxLanes[float32](), contrib.Exp[float32])
//	    return result
//	}
package contrib

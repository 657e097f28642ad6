package contrib

import "github.com/ajroetker/go-cfv/hwy"

// Transform applies fn to input in vectors of lanes elements and writes the
// results to output. The tail is processed as a shorter vector.
// Caller must ensure len(output) >= len(input).
func Transform[T hwy.Floats](input, output []T, lanes int, fn func(hwy.Vec[T]) hwy.Vec[T]) {
	lanes = max(lanes, 1)
	for i := 0; i < len(input); i += lanes {
		hwy.Store(fn(hwy.LoadN(input[i:], lanes)), output[i:])
	}
}

// Transform2 applies a two-input, two-output kernel, such as a complex
// function on split real and imaginary parts, in vectors of lanes elements.
// Caller must ensure the outputs are at least as long as the inputs, and
// that both inputs have the same length.
func Transform2[T hwy.Floats](x, y, outX, outY []T, lanes int, fn func(x, y hwy.Vec[T]) (hwy.Vec[T], hwy.Vec[T])) {
	lanes = max(lanes, 1)
	for i := 0; i < len(x); i += lanes {
		a, b := fn(hwy.LoadN(x[i:], lanes), hwy.LoadN(y[i:], lanes))
		hwy.Store(a, outX[i:])
		hwy.Store(b, outY[i:])
	}
}

// ExpTransform applies exp(x) to each element.
func ExpTransform[T hwy.Floats](input, output []T) {
	Transform(input, output, hwy.MaxLanes[T](), Exp[T])
}

// LogTransform applies ln(x) to each element.
func LogTransform[T hwy.Floats](input, output []T) {
	Transform(input, output, hwy.MaxLanes[T](), Log[T])
}

// SinTransform applies sin(x) to each element.
func SinTransform[T hwy.Floats](input, output []T) {
	Transform(input, output, hwy.MaxLanes[T](), Sin[T])
}

// CosTransform applies cos(x) to each element.
func CosTransform[T hwy.Floats](input, output []T) {
	Transform(input, output, hwy.MaxLanes[T](), Cos[T])
}

// TanhTransform applies tanh(x) to each element.
func TanhTransform[T hwy.Floats](input, output []T) {
	Transform(input, output, hwy.MaxLanes[T](), Tanh[T])
}

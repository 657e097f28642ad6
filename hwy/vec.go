// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package hwy provides portable lane vectors in the style of Google
// Highway. A Vec holds MaxLanes elements of one lane type; operations are
// element-wise and never mix lane counts silently: the result of a binary
// operation has the lane count of its shorter operand.
//
// The dispatch level (scalar, sse2, avx2, avx512, neon) is detected once at
// package init with golang.org/x/sys/cpu and sets the vector width. Setting
// HWY_NO_SIMD forces scalar mode.
package hwy

import "unsafe"

// Floats is the set of floating-point lane types.
type Floats interface {
	~float32 | ~float64
}

// Integers is the set of integer lane types.
type Integers interface {
	~int32 | ~int64 | ~uint32 | ~uint64
}

// Lanes is the set of all lane types.
type Lanes interface {
	Floats | Integers
}

// Vec is a vector of lanes.
type Vec[T Lanes] struct {
	data []T
}

// Mask is a per-lane boolean.
type Mask[T Lanes] struct {
	bits []bool
}

// MaxLanes returns the number of T lanes in a vector at the current level.
func MaxLanes[T Lanes]() int {
	return LanesAt[T](currentLevel)
}

// LanesAt returns the number of T lanes in a vector at level.
func LanesAt[T Lanes](level DispatchLevel) int {
	var zero T
	return level.Width() / int(unsafe.Sizeof(zero))
}

// NumLanes returns the number of lanes held by v.
func (v Vec[T]) NumLanes() int { return len(v.data) }

// Data returns the lanes of v. The slice aliases v.
func (v Vec[T]) Data() []T { return v.data }

// Lane returns lane i of v.
func (v Vec[T]) Lane(i int) T { return v.data[i] }

// NumLanes returns the number of lanes held by m.
func (m Mask[T]) NumLanes() int { return len(m.bits) }

// Lane reports whether lane i of m is set.
func (m Mask[T]) Lane(i int) bool { return m.bits[i] }

// AllFalse reports whether no lane of m is set.
func (m Mask[T]) AllFalse() bool {
	for _, b := range m.bits {
		if b {
			return false
		}
	}
	return true
}

// And returns the lane-wise conjunction of m and o.
func (m Mask[T]) And(o Mask[T]) Mask[T] {
	n := min(len(m.bits), len(o.bits))
	bits := make([]bool, n)
	for i := range bits {
		bits[i] = m.bits[i] && o.bits[i]
	}
	return Mask[T]{bits: bits}
}

// Or returns the lane-wise disjunction of m and o.
func (m Mask[T]) Or(o Mask[T]) Mask[T] {
	n := min(len(m.bits), len(o.bits))
	bits := make([]bool, n)
	for i := range bits {
		bits[i] = m.bits[i] || o.bits[i]
	}
	return Mask[T]{bits: bits}
}

// Not returns the lane-wise negation of m.
func (m Mask[T]) Not() Mask[T] {
	bits := make([]bool, len(m.bits))
	for i, b := range m.bits {
		bits[i] = !b
	}
	return Mask[T]{bits: bits}
}

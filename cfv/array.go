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

package cfv

import "fmt"

// Array is a row-major 2-D array of elements of one Dtype.
//
// Elements are held as complex128. Every element of a 32-bit dtype is
// exactly representable in float32, and the imaginary part of every element
// of a real dtype is zero.
type Array struct {
	Dtype Dtype
	Rows  int
	Cols  int
	Data  []complex128
}

// NewArray returns a zero-filled rows x cols array of dtype d.
func NewArray(d Dtype, rows, cols int) Array {
	return Array{Dtype: d, Rows: rows, Cols: cols, Data: make([]complex128, rows*cols)}
}

// Len returns the number of elements.
func (a Array) Len() int { return len(a.Data) }

// At returns the element at (row, col).
func (a Array) At(row, col int) complex128 { return a.Data[row*a.Cols+col] }

// Set stores z at (row, col), rounded to the array dtype.
func (a Array) Set(row, col int, z complex128) { a.Data[row*a.Cols+col] = a.Dtype.Round(z) }

// Value returns the element at (row, col) tagged with the array dtype.
func (a Array) Value(row, col int) Value {
	return Value{Dtype: a.Dtype, Z: a.At(row, col)}
}

// SameShape reports whether a and b have the same number of rows and columns.
func (a Array) SameShape(b Array) bool { return a.Rows == b.Rows && a.Cols == b.Cols }

// Astype returns a copy of a converted to dtype d.
func (a Array) Astype(d Dtype) Array {
	out := NewArray(d, a.Rows, a.Cols)
	for i, z := range a.Data {
		out.Data[i] = d.Round(z)
	}
	return out
}

// Real returns the real parts of a as an array of the real counterpart dtype.
func (a Array) Real() Array { return a.Astype(a.Dtype.Real()) }

// Row returns a copy of row r as a 1 x Cols array.
func (a Array) Row(r int) Array {
	out := NewArray(a.Dtype, 1, a.Cols)
	copy(out.Data, a.Data[r*a.Cols:(r+1)*a.Cols])
	return out
}

// FlipRows returns a copy of a with the row order reversed.
func (a Array) FlipRows() Array {
	out := NewArray(a.Dtype, a.Rows, a.Cols)
	for r := 0; r < a.Rows; r++ {
		copy(out.Data[r*a.Cols:(r+1)*a.Cols], a.Data[(a.Rows-1-r)*a.Cols:(a.Rows-r)*a.Cols])
	}
	return out
}

// Map applies fn to every element and returns the result as dtype d.
func (a Array) Map(d Dtype, fn func(complex128) complex128) Array {
	out := NewArray(d, a.Rows, a.Cols)
	for i, z := range a.Data {
		out.Data[i] = d.Round(fn(z))
	}
	return out
}

func (a Array) String() string {
	return fmt.Sprintf("Array(%v, %dx%d)", a.Dtype, a.Rows, a.Cols)
}

// Value is a single element tagged with its Dtype.
type Value struct {
	Dtype Dtype
	Z     complex128
}

// NewValue returns z rounded to d.
func NewValue(d Dtype, z complex128) Value { return Value{Dtype: d, Z: d.Round(z)} }

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

import (
	"fmt"
	"strings"
)

// FTZMode selects when reference values are flushed to zero before
// classification.
type FTZMode int

const (
	// FTZAuto flushes when the candidate reports FlushesSubnormals.
	FTZAuto FTZMode = iota
	// FTZOn always flushes.
	FTZOn
	// FTZOff never flushes.
	FTZOff
)

var ftzModeNames = [...]string{"auto", "on", "off"}

func (m FTZMode) String() string {
	if m < 0 || int(m) >= len(ftzModeNames) {
		return fmt.Sprintf("FTZMode(%d)", int(m))
	}
	return ftzModeNames[m]
}

// ParseFTZMode parses "auto", "on" or "off". The empty string is FTZAuto.
func ParseFTZMode(s string) (FTZMode, error) {
	if s == "" {
		return FTZAuto, nil
	}
	for i, n := range ftzModeNames {
		if n == s {
			return FTZMode(i), nil
		}
	}
	return FTZAuto, fmt.Errorf("cfv: unknown ftz mode %q", s)
}

// BuildOptions configures Build.
type BuildOptions struct {
	// SizeRe and SizeIm are the sampler sizes; the grid is
	// (3+2*SizeIm) x (3+2*SizeRe).
	SizeRe, SizeIm int
	// FTZ selects when reference values are flushed.
	FTZ FTZMode
	// ImagAscending keeps rows in sampling order (imaginary part ascending).
	// By default the top row holds the +inf imaginary samples.
	ImagAscending bool
}

// Sample is a representative cell of a code cluster.
type Sample struct {
	Point     Point
	Input     Value
	Value     Value
	Reference Value
}

// Layer is one classified grid: codes, inputs, reference values and
// candidate values are co-indexed.
type Layer struct {
	Rows, Cols int
	Codes      []Code
	Inputs     Array
	References Array
	Values     Array
	Stats      Stats
}

// Code returns the code at (row, col).
func (l *Layer) Code(row, col int) Code { return l.Codes[row*l.Cols+col] }

// Line returns the codes of one row as text.
func (l *Layer) Line(row int) string {
	var b strings.Builder
	for _, c := range l.Codes[row*l.Cols : (row+1)*l.Cols] {
		b.WriteByte(byte(c))
	}
	return b.String()
}

// SampleIndices returns one representative point per cluster of code, per
// region, in region scan order. A point selected by two regions is listed
// once.
func (l *Layer) SampleIndices(code Code) []Point {
	var points []Point
	seen := make(map[Point]bool)
	for _, r := range Regions {
		w := r.Window(l.Rows, l.Cols)
		if w.Empty() {
			continue
		}
		cs := FindClusters(w, func(row, col int) bool { return l.Code(row, col) == code })
		for _, c := range cs.All() {
			p := c.CenterPoint()
			p = Point{p.Row + w.Row0, p.Col + w.Col0}
			if !seen[p] {
				seen[p] = true
				points = append(points, p)
			}
		}
	}
	return points
}

// Samples returns the (input, value, reference) triples at SampleIndices(code).
func (l *Layer) Samples(code Code) []Sample {
	points := l.SampleIndices(code)
	samples := make([]Sample, len(points))
	for i, p := range points {
		samples[i] = Sample{
			Point:     p,
			Input:     l.Inputs.Value(p.Row, p.Col),
			Value:     l.Values.Value(p.Row, p.Col),
			Reference: l.References.Value(p.Row, p.Col),
		}
	}
	return samples
}

// Classify compares values against references cell by cell. When ftz is
// set, reference values are flushed to zero first.
func Classify(inputs, references, values Array, ftz bool) (*Layer, error) {
	if !references.SameShape(values) || !inputs.SameShape(values) {
		return nil, fmt.Errorf("%w: inputs %dx%d, reference %dx%d, values %dx%d", ErrShapeMismatch,
			inputs.Rows, inputs.Cols, references.Rows, references.Cols, values.Rows, values.Cols)
	}
	if ftz {
		references = references.Map(references.Dtype, references.Dtype.Format().FTZComplex)
	}
	l := &Layer{
		Rows:       values.Rows,
		Cols:       values.Cols,
		Codes:      make([]Code, values.Len()),
		Inputs:     inputs,
		References: references,
		Values:     values,
		Stats:      make(Stats),
	}
	for i := range l.Codes {
		c := Compare(
			Value{Dtype: references.Dtype, Z: references.Data[i]},
			Value{Dtype: values.Dtype, Z: values.Data[i]},
		)
		l.Codes[i] = c
		l.Stats.Add(c)
	}
	return l, nil
}

// ComparisonGrid is the classification of a candidate function against a
// reference over the complex plane (Map) and over the real line (RealLine).
type ComparisonGrid struct {
	Reference Info
	Candidate Info
	// Dtype is the candidate dtype; all values are compared at it.
	Dtype          Dtype
	SizeRe, SizeIm int
	// FTZ reports whether reference values were flushed.
	FTZ bool
	// Map is the 2-D layer.
	Map *Layer
	// RealLine is the 1-row layer of real-typed inputs.
	RealLine *Layer
}

// Samples returns representative samples of code on the 2-D layer.
func (g *ComparisonGrid) Samples(code Code) []Sample { return g.Map.Samples(code) }

// RealLineSamples returns representative samples of code on the real line.
func (g *ComparisonGrid) RealLineSamples(code Code) []Sample { return g.RealLine.Samples(code) }

// Build samples the complex plane at the candidate dtype, evaluates both
// functions, and classifies the candidate values against the reference.
func Build(ref, cand Function, opts BuildOptions) (*ComparisonGrid, error) {
	if opts.SizeRe < 0 || opts.SizeIm < 0 {
		return nil, fmt.Errorf("%w: got %d x %d", ErrInvalidSize, opts.SizeRe, opts.SizeIm)
	}
	if err := ref.Probe(); err != nil {
		return nil, fmt.Errorf("reference %s: %w", ref.Info().Slug(), err)
	}
	if err := cand.Probe(); err != nil {
		return nil, fmt.Errorf("candidate %s: %w", cand.Info().Slug(), err)
	}

	target := cand.Info().Dtype.Complex()
	refDtype := ref.Info().Dtype.Complex()
	samples := NewPlaneSampler(target).Sample(opts.SizeRe, opts.SizeIm)
	line := RealLine(samples)

	refValues, err := evaluate(ref, samples.Astype(refDtype), target)
	if err != nil {
		return nil, err
	}
	values, err := evaluate(cand, samples, target)
	if err != nil {
		return nil, err
	}
	refLine, err := evaluate(ref, line.Astype(refDtype.Real()), target)
	if err != nil {
		return nil, err
	}
	lineValues, err := evaluate(cand, line, target)
	if err != nil {
		return nil, err
	}

	if !opts.ImagAscending {
		samples, refValues, values = samples.FlipRows(), refValues.FlipRows(), values.FlipRows()
	}

	ftz := opts.FTZ == FTZOn || (opts.FTZ == FTZAuto && cand.FlushesSubnormals())
	grid, err := Classify(samples, refValues, values, ftz)
	if err != nil {
		return nil, err
	}
	realLine, err := Classify(line.Astype(target), refLine, lineValues, ftz)
	if err != nil {
		return nil, err
	}
	return &ComparisonGrid{
		Reference: ref.Info(),
		Candidate: cand.Info(),
		Dtype:     target,
		SizeRe:    opts.SizeRe,
		SizeIm:    opts.SizeIm,
		FTZ:       ftz,
		Map:       grid,
		RealLine:  realLine,
	}, nil
}

func evaluate(f Function, samples Array, target Dtype) (Array, error) {
	out, err := f.Evaluate(samples, target)
	if err != nil {
		return Array{}, fmt.Errorf("evaluate %s.%s: %w", f.Info().Slug(), f.Info().Name, err)
	}
	if !out.SameShape(samples) {
		return Array{}, fmt.Errorf("%s.%s: %w", f.Info().Slug(), f.Info().Name, ErrShapeMismatch)
	}
	if out.Dtype != target {
		out = out.Astype(target)
	}
	return out, nil
}

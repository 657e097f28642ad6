// Package report renders comparison grids as plain-text reports: one code
// map per candidate function with its axes, titles and statistics, plus
// optional legend, version and sample sections.
package report

import (
	"fmt"
	"strconv"

	"github.com/ajroetker/go-cfv/cfv"
)

const (
	imagAxisWidth = 10
	voffset       = 1
	sampleWidth   = 55
)

// Options configures GenerateReport.
type Options struct {
	// SizeRe and SizeIm are the sampler sizes of each map. Zero is a
	// valid size.
	SizeRe, SizeIm int
	// FTZ selects when reference values are flushed.
	FTZ cfv.FTZMode
}

// Image is a report under construction.
type Image struct {
	canvas *Canvas
	grids  []*cfv.ComparisonGrid
}

// NewImage returns an empty report.
func NewImage() *Image {
	return &Image{canvas: NewCanvas(0, 0)}
}

// Canvas returns the underlying canvas.
func (img *Image) Canvas() *Canvas { return img.canvas }

// Grids returns the grids of every function in the order they were drawn.
func (img *Image) Grids() []*cfv.ComparisonGrid { return img.grids }

// Stats returns the summary of each drawn map.
func (img *Image) Stats() []cfv.Summary {
	out := make([]cfv.Summary, len(img.grids))
	for i, g := range img.grids {
		out[i] = g.Map.Stats.Summary()
	}
	return out
}

func (img *Image) String() string { return img.canvas.String() }

// GenerateReport compares every function of fns against ref and draws the
// maps side by side.
func (img *Image) GenerateReport(ref cfv.Function, fns []cfv.Function, opts Options) error {
	height, width := 2*opts.SizeIm+3, 2*opts.SizeRe+3
	for i, f := range fns {
		g, err := cfv.Build(ref, f, cfv.BuildOptions{SizeRe: opts.SizeRe, SizeIm: opts.SizeIm, FTZ: opts.FTZ})
		if err != nil {
			return fmt.Errorf("report %s: %w", f.Info().Name, err)
		}
		img.grids = append(img.grids, g)

		hoffset := i * (imagAxisWidth + width + 2)
		col := hoffset + imagAxisWidth
		img.insertLayer(voffset, col, g.Map)
		img.insertImagAxis(voffset, col-2, g.Dtype, g.Map.Inputs)

		img.canvas.Text(At(voffset+height+1), At(col), "real line:", Right)
		img.insertLayer(voffset+height+1, col, g.RealLine)
		img.insertRealAxis(voffset+height+2, col, g.Dtype, g.Map.Inputs)

		img.canvas.Text(At(voffset+height+5), At(col-8), f.Title()+"\nvs\n"+ref.Title(), Left)
		img.canvas.Text(At(voffset+height+10), At(hoffset), "\nStatistics:", Left)
		img.canvas.Text(At(voffset+height+12), At(hoffset+4), g.Map.Stats.Summary().String(), Left)
	}
	return nil
}

func (img *Image) insertLayer(row, col int, l *cfv.Layer) {
	img.canvas.Grow(row+l.Rows+1, col+l.Cols+1)
	for r := 0; r < l.Rows; r++ {
		for c := 0; c < l.Cols; c++ {
			img.canvas.Set(row+r, col+c, byte(l.Code(r, c)))
		}
	}
}

func (img *Image) insertImagAxis(row, col int, d cfv.Dtype, inputs cfv.Array) {
	for r := 0; r < inputs.Rows; r++ {
		label := cfv.ValueToStr(d, imag(inputs.At(r, 0))) + "j"
		img.canvas.Text(At(row+r), At(col), label, Right)
	}
}

// insertRealAxis draws a '^' tick on row and its label below it for the
// real parts of the first row of inputs. Ticks are placed from both ends
// toward zero; a label that would collide with the previous one is skipped.
func (img *Image) insertRealAxis(row, col int, d cfv.Dtype, inputs cfv.Array) {
	xs := make([]float64, inputs.Cols)
	for j := range xs {
		xs[j] = real(inputs.At(0, j))
	}
	img.realAxis(row, col, d, xs)
}

func (img *Image) realAxis(row, col int, d cfv.Dtype, xs []float64) {
	last := -10
	for j, x := range xs {
		label := cfv.ValueToStr(d, x)
		if label == "-tiny" {
			continue
		}
		if label == "0" {
			img.canvas.Set(row, col+j, '^')
			img.canvas.Text(At(row+1), At(col+j), label, Left)
			break
		}
		if j-len(label) <= last {
			continue
		}
		last = j
		img.canvas.Set(row, col+j, '^')
		img.canvas.Text(At(row+1), At(col+j+1), label, Right)
	}

	last = len(xs) + 10
	for j := len(xs) - 1; j >= 0; j-- {
		label := cfv.ValueToStr(d, xs[j])
		if label == "tiny" || label == "0" {
			break
		}
		if j+len(label) >= last-1 {
			continue
		}
		img.canvas.Set(row, col+j, '^')
		img.canvas.Text(At(row+1), At(col+j), label, Left)
		last = j
	}
}

// InsertText writes text at (row, col), left aligned.
func (img *Image) InsertText(row, col Coord, text string) {
	img.canvas.Text(row, col, text, Left)
}

// InsertHLine draws a horizontal line of ch across the report.
func (img *Image) InsertHLine(row Coord, ch byte) {
	img.canvas.HLine(row, ch)
}

// InsertLegend writes the code legend with the separating colons at col.
func (img *Image) InsertLegend(row, col Coord) {
	r, k := img.canvas.Resolve(row, col)
	img.canvas.Text(At(r), At(max(0, k-10)), "Legend:", Left)
	for i, e := range cfv.Legend() {
		line := At(r + i + 1)
		img.canvas.Text(line, At(k), ":", Left)
		img.canvas.Text(line, At(k-1), e.Key, Right)
		img.canvas.Text(line, At(k+2), e.Description, Left)
	}
}

// InsertSamples lists representative samples of each code of the last
// drawn map. Codes without samples are omitted; the section is omitted
// when no code has samples.
func (img *Image) InsertSamples(row, col Coord, codes []cfv.Code) {
	if len(img.grids) == 0 {
		return
	}
	g := img.grids[len(img.grids)-1]
	r, k := img.canvas.Resolve(row, col)

	i := 0
	for _, code := range codes {
		samples := g.Samples(code)
		if len(samples) == 0 {
			continue
		}
		img.canvas.Text(At(r+i), At(k), fmt.Sprintf("Samples with code %v:", code), Left)
		i++
		for _, s := range samples {
			line := fmt.Sprintf("%*s -> %*s %*s",
				sampleWidth, formatValue(s.Input),
				sampleWidth, formatValue(s.Value),
				sampleWidth, formatValue(s.Reference))
			img.canvas.Text(At(r+i), At(k), line, Left)
			i++
		}
	}
	if i > 0 {
		img.canvas.Text(At(r+i), At(k), "Legend:\n    <input> -> <value> <reference value>", Left)
	}
}

// formatValue prints v with the shortest digits that round-trip at its
// precision.
func formatValue(v cfv.Value) string {
	bits := 64
	if v.Dtype.Format().Bits == 32 {
		bits = 32
	}
	if v.Dtype.IsComplex() {
		return strconv.FormatComplex(v.Z, 'g', -1, 2*bits)
	}
	return strconv.FormatFloat(real(v.Z), 'g', -1, bits)
}

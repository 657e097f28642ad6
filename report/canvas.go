package report

import (
	"bytes"
	"strings"
)

// Coord is a row or column position on a Canvas. At(n) counts from the
// first row or column; End(n) counts from one past the last, so End(0)
// appends and End(-1) is the last row or column.
type Coord struct {
	n       int
	fromEnd bool
}

// At returns the absolute position n.
func At(n int) Coord { return Coord{n: n} }

// End returns the position n relative to the current size.
func End(n int) Coord { return Coord{n: n, fromEnd: true} }

func (c Coord) resolve(size int) int {
	if c.fromEnd {
		return size + c.n
	}
	return c.n
}

// Align selects how Text places a line relative to its column.
type Align int

const (
	// Left places the first character at the column.
	Left Align = iota
	// Right places the last character just before the column.
	Right
)

// Canvas is a growable grid of characters. Unwritten cells are spaces.
type Canvas struct {
	rows  [][]byte
	width int
}

// NewCanvas returns a blank height x width canvas.
func NewCanvas(height, width int) *Canvas {
	c := &Canvas{}
	c.Grow(height, width)
	return c
}

// Height returns the number of rows.
func (c *Canvas) Height() int { return len(c.rows) }

// Width returns the number of columns.
func (c *Canvas) Width() int { return c.width }

// Resolve converts row and col to absolute indices against the current
// size.
func (c *Canvas) Resolve(row, col Coord) (int, int) {
	return row.resolve(c.Height()), col.resolve(c.width)
}

// Grow extends the canvas to at least height rows and width columns.
func (c *Canvas) Grow(height, width int) {
	if width > c.width {
		for i, r := range c.rows {
			c.rows[i] = append(r, bytes.Repeat([]byte{' '}, width-c.width)...)
		}
		c.width = width
	}
	for len(c.rows) < height {
		c.rows = append(c.rows, bytes.Repeat([]byte{' '}, c.width))
	}
}

// ensure makes (row, col) a valid index. A negative col grows rows only.
func (c *Canvas) ensure(row, col int) {
	c.Grow(row+1, col+1)
}

// Set writes one character at absolute (row, col).
func (c *Canvas) Set(row, col int, ch byte) {
	c.ensure(row, col)
	c.rows[row][col] = ch
}

// Text writes text at (row, col). Each line of a multi-line text starts
// one row below the previous one, at the same column. A right-aligned
// line wider than the column keeps its trailing characters.
func (c *Canvas) Text(row, col Coord, text string, align Align) {
	r, k := c.Resolve(row, col)
	if strings.Contains(text, "\n") {
		for i, line := range splitLines(text) {
			c.Text(At(r+i), At(k), line, align)
		}
		return
	}
	switch align {
	case Right:
		c.ensure(r, k)
		if len(text) > k {
			text = text[len(text)-k:]
		}
		copy(c.rows[r][k-len(text):k], text)
	default:
		c.ensure(r, k+len(text)-1)
		copy(c.rows[r][k:], text)
	}
}

// HLine fills row with ch across the current width.
func (c *Canvas) HLine(row Coord, ch byte) {
	r, _ := c.Resolve(row, At(0))
	c.Text(At(r), At(0), strings.Repeat(string(ch), c.width), Left)
}

// Line returns row r without trailing spaces.
func (c *Canvas) Line(r int) string {
	return string(bytes.TrimRight(c.rows[r], " "))
}

// String returns the rows, right-trimmed, joined by newlines.
func (c *Canvas) String() string {
	lines := make([]string, len(c.rows))
	for i := range c.rows {
		lines[i] = c.Line(i)
	}
	return strings.Join(lines, "\n")
}

// splitLines splits at newlines; a trailing newline ends the last line
// instead of starting an empty one.
func splitLines(text string) []string {
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

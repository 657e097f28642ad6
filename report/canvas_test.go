package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanvasGrowsOnWrite(t *testing.T) {
	c := NewCanvas(0, 0)
	c.Text(At(2), At(3), "abc", Left)
	assert.Equal(t, 3, c.Height())
	assert.Equal(t, 6, c.Width())
	assert.Equal(t, "\n\n   abc", c.String())
}

func TestCanvasRightAlign(t *testing.T) {
	c := NewCanvas(1, 0)
	c.Text(At(0), At(8), "+infj", Right)
	assert.Equal(t, "   +infj", c.Line(0))
	assert.Equal(t, 9, c.Width())

	// Too wide for the column: the leading characters are dropped.
	c.Text(At(0), At(3), "12345", Right)
	assert.Equal(t, "345+infj", c.Line(0))
}

func TestCanvasMultiLine(t *testing.T) {
	c := NewCanvas(0, 0)
	c.Text(At(0), At(2), "a\nbc\n", Left)
	assert.Equal(t, 2, c.Height())
	assert.Equal(t, "  a\n  bc", c.String())

	// A leading newline leaves a blank row.
	c.Text(End(0), At(0), "\nnext", Left)
	assert.Equal(t, "  a\n  bc\n\nnext", c.String())
}

func TestCanvasEndCoords(t *testing.T) {
	c := NewCanvas(3, 5)
	r, k := c.Resolve(End(0), End(-1))
	assert.Equal(t, 3, r)
	assert.Equal(t, 4, k)

	c.Text(End(-1), At(0), "last", Left)
	assert.Equal(t, "\n\nlast", c.String())
}

func TestCanvasHLine(t *testing.T) {
	c := NewCanvas(2, 4)
	c.HLine(At(1), '-')
	assert.Equal(t, "\n----", c.String())
	c.HLine(End(0), '=')
	assert.Equal(t, "\n----\n====", c.String())
}

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

// Window is a half-open rectangle [Row0, Row1) x [Col0, Col1) of a grid.
type Window struct {
	Row0, Row1 int
	Col0, Col1 int
}

// Empty reports whether w contains no cells.
func (w Window) Empty() bool { return w.Row0 >= w.Row1 || w.Col0 >= w.Col1 }

// Region names one of the six fixed partitions of a grid.
type Region int

const (
	// RegionLowerRight holds rows below and columns right of the center.
	RegionLowerRight Region = iota
	// RegionUpperRight holds rows above and columns right of the center.
	RegionUpperRight
	// RegionLowerLeft holds rows below and columns left of the center.
	RegionLowerLeft
	// RegionUpperLeft holds rows above and columns left of the center.
	RegionUpperLeft
	// RegionCenterRow is the full center row.
	RegionCenterRow
	// RegionCenterColumn is the full center column.
	RegionCenterColumn
)

// Regions lists the regions in scan order.
var Regions = [...]Region{
	RegionLowerRight, RegionUpperRight, RegionLowerLeft,
	RegionUpperLeft, RegionCenterRow, RegionCenterColumn,
}

var regionNames = [...]string{
	"lower-right", "upper-right", "lower-left",
	"upper-left", "center-row", "center-column",
}

func (r Region) String() string { return regionNames[r] }

// Window returns the cells of region r in a rows x cols grid. "Upper" and
// "lower" refer to row indices, not to the sign of the imaginary part.
// Quadrants exclude the center row and column; the center lines span the
// whole grid.
func (r Region) Window(rows, cols int) Window {
	cr, cc := rows/2, cols/2
	switch r {
	case RegionLowerRight:
		return Window{cr + 1, rows, cc + 1, cols}
	case RegionUpperRight:
		return Window{0, cr, cc + 1, cols}
	case RegionLowerLeft:
		return Window{cr + 1, rows, 0, cc}
	case RegionUpperLeft:
		return Window{0, cr, 0, cc}
	case RegionCenterRow:
		return Window{cr, cr + 1, 0, cols}
	default:
		return Window{0, rows, cc, cc + 1}
	}
}

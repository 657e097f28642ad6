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
	"cmp"
	"math"
	"slices"
)

// Point is a (row, col) grid coordinate.
type Point struct {
	Row, Col int
}

// Compare orders points by row, then column.
func (p Point) Compare(q Point) int {
	return cmp.Or(cmp.Compare(p.Row, q.Row), cmp.Compare(p.Col, q.Col))
}

// kingOffsets are the 8-connectivity neighbor offsets: N, NE, E, SE, S, SW, W, NW.
var kingOffsets = [8]Point{
	{-1, 0}, {-1, 1}, {0, 1}, {1, 1},
	{1, 0}, {1, -1}, {0, -1}, {-1, -1},
}

// Cluster is a set of mutually 8-connected grid points.
type Cluster struct {
	members map[Point]struct{}
}

func newCluster() *Cluster {
	return &Cluster{members: make(map[Point]struct{})}
}

// Len returns the number of points in the cluster.
func (c *Cluster) Len() int { return len(c.members) }

// Contains reports whether p is a member of c.
func (c *Cluster) Contains(p Point) bool {
	_, ok := c.members[p]
	return ok
}

// Touches reports whether p is a member of c or king-adjacent to one.
func (c *Cluster) Touches(p Point) bool {
	if c.Contains(p) {
		return true
	}
	for _, d := range kingOffsets {
		if c.Contains(Point{p.Row + d.Row, p.Col + d.Col}) {
			return true
		}
	}
	return false
}

func (c *Cluster) add(p Point) { c.members[p] = struct{}{} }

func (c *Cluster) absorb(other *Cluster) {
	for p := range other.members {
		c.members[p] = struct{}{}
	}
}

// Points returns the members in row-major order.
func (c *Cluster) Points() []Point {
	points := make([]Point, 0, len(c.members))
	for p := range c.members {
		points = append(points, p)
	}
	slices.SortFunc(points, Point.Compare)
	return points
}

// Centroid returns the mean row and mean column of the members.
func (c *Cluster) Centroid() (row, col float64) {
	for p := range c.members {
		row += float64(p.Row)
		col += float64(p.Col)
	}
	n := float64(len(c.members))
	return row / n, col / n
}

// CenterPoint returns the member closest to the centroid in Manhattan
// distance. Ties go to the smallest point in row-major order.
//
// PRECONDITION: c is not empty.
func (c *Cluster) CenterPoint() Point {
	cr, cc := c.Centroid()
	var best Point
	bestDist := math.Inf(1)
	for _, p := range c.Points() {
		d := math.Abs(float64(p.Row)-cr) + math.Abs(float64(p.Col)-cc)
		if d < bestDist {
			best, bestDist = p, d
		}
	}
	return best
}

// Clusters partitions points into maximal 8-connected clusters as they are
// added.
type Clusters struct {
	clusters []*Cluster
}

// Add inserts p. A point touching no cluster starts a new one; a point
// touching several clusters bridges them, and they are merged into the
// earliest one.
func (cs *Clusters) Add(p Point) {
	var matching []int
	for i, c := range cs.clusters {
		if c.Touches(p) {
			matching = append(matching, i)
		}
	}

	switch len(matching) {
	case 0:
		c := newCluster()
		c.add(p)
		cs.clusters = append(cs.clusters, c)
	case 1:
		cs.clusters[matching[0]].add(p)
	default:
		target := cs.clusters[matching[0]]
		target.add(p)
		for i := len(matching) - 1; i >= 1; i-- {
			idx := matching[i]
			target.absorb(cs.clusters[idx])
			cs.clusters = slices.Delete(cs.clusters, idx, idx+1)
		}
	}
}

// Len returns the number of clusters.
func (cs *Clusters) Len() int { return len(cs.clusters) }

// All returns the clusters in creation order.
func (cs *Clusters) All() []*Cluster { return cs.clusters }

// FindClusters clusters the points of w for which match returns true,
// visiting w in row-major order. Points are relative to the window origin.
func FindClusters(w Window, match func(row, col int) bool) *Clusters {
	cs := &Clusters{}
	for r := w.Row0; r < w.Row1; r++ {
		for c := w.Col0; c < w.Col1; c++ {
			if match(r, c) {
				cs.Add(Point{r - w.Row0, c - w.Col0})
			}
		}
	}
	return cs
}

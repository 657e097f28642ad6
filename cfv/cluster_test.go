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
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClustersBlob(t *testing.T) {
	var cs Clusters
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			cs.Add(Point{r, c})
		}
	}
	require.Equal(t, 1, cs.Len())
	assert.Equal(t, 9, cs.All()[0].Len())
	assert.Equal(t, Point{1, 1}, cs.All()[0].CenterPoint())
}

func TestClustersSeparated(t *testing.T) {
	var cs Clusters
	cs.Add(Point{0, 0})
	cs.Add(Point{0, 2})
	require.Equal(t, 2, cs.Len())
	assert.Equal(t, Point{0, 0}, cs.All()[0].CenterPoint())
	assert.Equal(t, Point{0, 2}, cs.All()[1].CenterPoint())
}

func TestPointCompare(t *testing.T) {
	assert.Equal(t, -1, Point{0, 5}.Compare(Point{1, 0}))
	assert.Equal(t, 1, Point{1, 2}.Compare(Point{1, 1}))
	assert.Equal(t, 0, Point{2, 3}.Compare(Point{2, 3}))
}

func TestClustersDiagonalGap(t *testing.T) {
	var cs Clusters
	cs.Add(Point{0, 0})
	cs.Add(Point{3, 3})
	require.Equal(t, 2, cs.Len())
	assert.True(t, cs.All()[0].Contains(Point{0, 0}))
	assert.True(t, cs.All()[1].Contains(Point{3, 3}))

	w := Window{0, 4, 0, 4}
	found := FindClusters(w, func(row, col int) bool { return row == col && row%3 == 0 })
	assert.Equal(t, 2, found.Len())
}

func TestClustersDiagonalTouch(t *testing.T) {
	var cs Clusters
	cs.Add(Point{0, 0})
	cs.Add(Point{1, 1})
	cs.Add(Point{2, 0})
	require.Equal(t, 1, cs.Len())
	assert.Equal(t, 3, cs.All()[0].Len())
}

func TestClustersBridge(t *testing.T) {
	var cs Clusters
	for _, p := range []Point{{0, 0}, {2, 0}, {2, 1}, {2, 2}, {0, 2}} {
		cs.Add(p)
	}
	require.Equal(t, 3, cs.Len())

	// (1, 1) touches all three clusters.
	cs.Add(Point{1, 1})
	require.Equal(t, 1, cs.Len())
	c := cs.All()[0]
	assert.True(t, c.Contains(Point{1, 1}))
	want := []Point{{0, 0}, {0, 2}, {1, 1}, {2, 0}, {2, 1}, {2, 2}}
	if diff := cmp.Diff(want, c.Points()); diff != "" {
		t.Errorf("bridged cluster mismatch (-want +got):\n%s", diff)
	}
}

func TestClustersOrderIndependent(t *testing.T) {
	mask := []string{
		"XX..X",
		"X...X",
		"..X..",
		"....X",
		"XX.XX",
	}
	var points []Point
	for r, line := range mask {
		for c := range line {
			if line[c] == 'X' {
				points = append(points, Point{r, c})
			}
		}
	}
	partition := func(ps []Point) [][]Point {
		var cs Clusters
		for _, p := range ps {
			cs.Add(p)
		}
		var out [][]Point
		for _, c := range cs.All() {
			out = append(out, c.Points())
		}
		slices.SortFunc(out, func(a, b []Point) int { return a[0].Compare(b[0]) })
		return out
	}
	want := partition(points)
	assert.Len(t, want, 5)

	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 20; i++ {
		shuffled := slices.Clone(points)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		if diff := cmp.Diff(want, partition(shuffled)); diff != "" {
			t.Fatalf("partition depends on insertion order (-want +got):\n%s", diff)
		}
	}
}

func TestCenterPointTie(t *testing.T) {
	var cs Clusters
	cs.Add(Point{3, 4})
	cs.Add(Point{3, 5})
	assert.Equal(t, Point{3, 4}, cs.All()[0].CenterPoint())
}

func TestFindClustersWindow(t *testing.T) {
	w := Window{Row0: 2, Row1: 4, Col0: 1, Col1: 3}
	cs := FindClusters(w, func(row, col int) bool { return row == 3 && col == 2 })
	require.Equal(t, 1, cs.Len())
	assert.Equal(t, []Point{{1, 1}}, cs.All()[0].Points())
}

func TestRegionWindows(t *testing.T) {
	want := map[Region]Window{
		RegionLowerRight:   {3, 5, 4, 7},
		RegionUpperRight:   {0, 2, 4, 7},
		RegionLowerLeft:    {3, 5, 0, 3},
		RegionUpperLeft:    {0, 2, 0, 3},
		RegionCenterRow:    {2, 3, 0, 7},
		RegionCenterColumn: {0, 5, 3, 4},
	}
	for _, r := range Regions {
		assert.Equal(t, want[r], r.Window(5, 7), r.String())
	}
	assert.True(t, RegionUpperLeft.Window(1, 5).Empty())
	assert.False(t, RegionCenterRow.Window(1, 5).Empty())
}

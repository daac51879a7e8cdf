package astar_test

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fairway/astar"
	"github.com/katalvlaran/fairway/coursegrid"
	"github.com/katalvlaran/fairway/geom"
)

// buildGrid rasterizes level over a w×h fairway with the given cell size.
func buildGrid(t *testing.T, level *coursegrid.Level, w, h, cellSize float64) *coursegrid.Grid {
	t.Helper()
	g, err := coursegrid.Build(level, geom.Rect{W: w, H: h}, cellSize)
	require.NoError(t, err)
	return g
}

// validatePath asserts the structural path invariants: unblocked cells,
// strict 8-adjacency, and no corner-cutting diagonals.
func validatePath(t *testing.T, g *coursegrid.Grid, path []coursegrid.Coord) {
	t.Helper()
	for i, c := range path {
		require.True(t, g.InBounds(c.X, c.Y), "cell %v out of bounds", c)
		require.False(t, g.At(c.X, c.Y).Blocked, "cell %v is blocked", c)
		if i == 0 {
			continue
		}
		p := path[i-1]
		dx, dy := c.X-p.X, c.Y-p.Y
		require.False(t, dx == 0 && dy == 0, "repeated cell %v", c)
		require.LessOrEqual(t, abs(dx), 1, "non-adjacent step %v→%v", p, c)
		require.LessOrEqual(t, abs(dy), 1, "non-adjacent step %v→%v", p, c)
		if dx != 0 && dy != 0 {
			require.False(t, g.At(p.X+dx, p.Y).Blocked, "corner cut at %v→%v", p, c)
			require.False(t, g.At(p.X, p.Y+dy).Blocked, "corner cut at %v→%v", p, c)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

//----------------------------------------------------------------------------//
// Basic routing
//----------------------------------------------------------------------------//

// TestSearchStraightRow verifies the trivial open-field route and raw cost.
func TestSearchStraightRow(t *testing.T) {
	g := buildGrid(t, &coursegrid.Level{}, 200, 200, 20)
	res, err := astar.Search(g, coursegrid.Coord{X: 0, Y: 5}, coursegrid.Coord{X: 9, Y: 5})
	require.NoError(t, err)
	require.True(t, res.Found)
	require.Len(t, res.Path, 10)
	require.InDelta(t, 9.0, res.Cost, 1e-9) // 9 orthogonal steps at cost 1
	validatePath(t, g, res.Path)
}

// TestSearchDiagonal verifies diagonal weighting on an open field.
func TestSearchDiagonal(t *testing.T) {
	g := buildGrid(t, &coursegrid.Level{}, 200, 200, 20)
	res, err := astar.Search(g, coursegrid.Coord{X: 0, Y: 0}, coursegrid.Coord{X: 5, Y: 5})
	require.NoError(t, err)
	require.True(t, res.Found)
	require.Len(t, res.Path, 6)
	require.InDelta(t, 5*math.Sqrt2, res.Cost, 1e-9)
}

// TestSearchSameCell covers the start==goal contract.
func TestSearchSameCell(t *testing.T) {
	g := buildGrid(t, &coursegrid.Level{}, 100, 100, 20)
	c := coursegrid.Coord{X: 2, Y: 2}
	res, err := astar.Search(g, c, c)
	require.NoError(t, err)
	require.True(t, res.Found)
	require.Equal(t, []coursegrid.Coord{c}, res.Path)
	require.Zero(t, res.Cost)
}

// TestSearchClampsEndpoints verifies out-of-range coordinates cannot fault.
func TestSearchClampsEndpoints(t *testing.T) {
	g := buildGrid(t, &coursegrid.Level{}, 100, 100, 20)
	res, err := astar.Search(g, coursegrid.Coord{X: -10, Y: -10}, coursegrid.Coord{X: 100, Y: 100})
	require.NoError(t, err)
	require.True(t, res.Found)
	require.Equal(t, coursegrid.Coord{X: 0, Y: 0}, res.Path[0])
	require.Equal(t, coursegrid.Coord{X: 4, Y: 4}, res.Path[len(res.Path)-1])
}

// TestSearchNilGrid verifies the sentinel.
func TestSearchNilGrid(t *testing.T) {
	_, err := astar.Search(nil, coursegrid.Coord{}, coursegrid.Coord{})
	require.True(t, errors.Is(err, astar.ErrNilGrid))
}

//----------------------------------------------------------------------------//
// Obstacles, corners, constraints
//----------------------------------------------------------------------------//

// fullWallLevel blocks one full-height column with a single-cell gap at gapRow
// (gapRow < 0 means no gap).
func fullWallLevel(gapRow int) *coursegrid.Level {
	level := &coursegrid.Level{}
	if gapRow < 0 {
		level.Obstacles = []geom.Shape{geom.RectShape(geom.Rect{X: 40, Y: 0, W: 20, H: 200})}
		return level
	}
	top := float64(gapRow) * 20
	level.Obstacles = []geom.Shape{
		geom.RectShape(geom.Rect{X: 40, Y: 0, W: 20, H: top}),
		geom.RectShape(geom.Rect{X: 40, Y: top + 20, W: 20, H: 200 - top - 20}),
	}
	return level
}

// TestSearchUnreachable verifies a sealed wall yields Found=false, no error.
func TestSearchUnreachable(t *testing.T) {
	g := buildGrid(t, fullWallLevel(-1), 200, 200, 20)
	res, err := astar.Search(g, coursegrid.Coord{X: 0, Y: 5}, coursegrid.Coord{X: 9, Y: 5})
	require.NoError(t, err)
	require.False(t, res.Found)
	require.Nil(t, res.Path)
}

// TestSearchThroughGap verifies routing through the only opening, with all
// structural invariants held.
func TestSearchThroughGap(t *testing.T) {
	g := buildGrid(t, fullWallLevel(1), 200, 200, 20)
	res, err := astar.Search(g, coursegrid.Coord{X: 0, Y: 8}, coursegrid.Coord{X: 9, Y: 8})
	require.NoError(t, err)
	require.True(t, res.Found)
	validatePath(t, g, res.Path)
	// The route must pass the gap cell (2,1).
	require.Contains(t, res.Path, coursegrid.Coord{X: 2, Y: 1})
}

// TestBannedCellSealsGap verifies node bans forbid the only route.
func TestBannedCellSealsGap(t *testing.T) {
	g := buildGrid(t, fullWallLevel(1), 200, 200, 20)
	res, err := astar.Search(g,
		coursegrid.Coord{X: 0, Y: 8}, coursegrid.Coord{X: 9, Y: 8},
		astar.WithBannedCells(coursegrid.Coord{X: 2, Y: 1}))
	require.NoError(t, err)
	require.False(t, res.Found)
}

// TestBlockedEndpoint verifies a blocked start or goal is simply unreachable.
func TestBlockedEndpoint(t *testing.T) {
	g := buildGrid(t, fullWallLevel(-1), 200, 200, 20)
	res, err := astar.Search(g, coursegrid.Coord{X: 2, Y: 5}, coursegrid.Coord{X: 9, Y: 5})
	require.NoError(t, err)
	require.False(t, res.Found)
}

//----------------------------------------------------------------------------//
// Terrain costs
//----------------------------------------------------------------------------//

// TestSandRaisesCost verifies the search both avoids sand when it can and
// pays for it when it cannot.
func TestSandRaisesCost(t *testing.T) {
	open := buildGrid(t, &coursegrid.Level{}, 200, 200, 20)
	base, err := astar.Search(open, coursegrid.Coord{X: 0, Y: 5}, coursegrid.Coord{X: 9, Y: 5})
	require.NoError(t, err)

	// Sand column across the full height: unavoidable.
	sandy := buildGrid(t, &coursegrid.Level{
		Sand: []geom.Shape{geom.RectShape(geom.Rect{X: 80, Y: 0, W: 20, H: 200})},
	}, 200, 200, 20)
	res, err := astar.Search(sandy, coursegrid.Coord{X: 0, Y: 5}, coursegrid.Coord{X: 9, Y: 5})
	require.NoError(t, err)
	require.True(t, res.Found)
	require.Greater(t, res.Cost, base.Cost)
}

// TestSlopeBiasPrefersDownhill verifies the priority modulation steers the
// route while the reported cost stays raw.
func TestSlopeBiasPrefersDownhill(t *testing.T) {
	// Uniform eastward hill: a straight west→east run is all downhill.
	level := &coursegrid.Level{
		Hills: []coursegrid.Hill{
			{Area: geom.Rect{X: 0, Y: 0, W: 200, H: 200}, Dir: coursegrid.East, Strength: 1},
		},
	}
	g := buildGrid(t, level, 200, 200, 20)
	res, err := astar.Search(g, coursegrid.Coord{X: 0, Y: 5}, coursegrid.Coord{X: 9, Y: 5})
	require.NoError(t, err)
	require.True(t, res.Found)
	require.Len(t, res.Path, 10)
	// Raw cost: 9 steps × slope floor cost 1.25, no slope-search multiplier.
	require.InDelta(t, 9*coursegrid.SlopeFloorCost, res.Cost, 1e-9)
}

//----------------------------------------------------------------------------//
// Determinism
//----------------------------------------------------------------------------//

// TestSearchDeterministic verifies identical inputs give identical paths.
func TestSearchDeterministic(t *testing.T) {
	level := &coursegrid.Level{
		Obstacles: []geom.Shape{
			geom.RectShape(geom.Rect{X: 60, Y: 40, W: 20, H: 120}),
			geom.RectShape(geom.Rect{X: 120, Y: 0, W: 20, H: 120}),
		},
		Sand: []geom.Shape{geom.RectShape(geom.Rect{X: 0, Y: 140, W: 200, H: 20})},
	}
	g := buildGrid(t, level, 200, 200, 20)
	first, err := astar.Search(g, coursegrid.Coord{X: 0, Y: 0}, coursegrid.Coord{X: 9, Y: 9})
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := astar.Search(g, coursegrid.Coord{X: 0, Y: 0}, coursegrid.Coord{X: 9, Y: 9})
		require.NoError(t, err)
		require.True(t, reflect.DeepEqual(first, again), "run %d diverged", i)
	}
	validatePath(t, g, first.Path)
}

//----------------------------------------------------------------------------//
// PathCost
//----------------------------------------------------------------------------//

// TestPathCostMatchesSearch verifies the exported cost helper reproduces the
// cost Search reports, over mixed sand and sloped terrain.
func TestPathCostMatchesSearch(t *testing.T) {
	level := &coursegrid.Level{
		Sand: []geom.Shape{geom.RectShape(geom.Rect{X: 60, Y: 0, W: 40, H: 200})},
		Hills: []coursegrid.Hill{
			{Area: geom.Rect{X: 120, Y: 0, W: 60, H: 200}, Dir: coursegrid.East, Strength: 0.8},
		},
	}
	g := buildGrid(t, level, 200, 200, 20)
	res, err := astar.Search(g, coursegrid.Coord{X: 0, Y: 5}, coursegrid.Coord{X: 9, Y: 5})
	require.NoError(t, err)
	require.True(t, res.Found)
	require.InDelta(t, res.Cost, astar.PathCost(g, res.Path), 1e-12)

	// Degenerate paths cost nothing.
	require.Zero(t, astar.PathCost(g, nil))
	require.Zero(t, astar.PathCost(g, res.Path[:1]))
}

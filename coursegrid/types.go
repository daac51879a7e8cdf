// Package coursegrid defines the level model, cell/grid types, slope
// directions, and sentinel errors for the rasterization step.
package coursegrid

import (
	"errors"
	"math"

	"github.com/katalvlaran/fairway/geom"
)

// Sentinel errors for coursegrid operations.
var (
	// ErrBadCellSize indicates a non-positive cell size was supplied.
	ErrBadCellSize = errors.New("coursegrid: cell size must be positive")
)

// Terrain cost and slope constants shared with the estimators.
const (
	// MinCost is the baseline traversal cost of an open cell.
	MinCost = 1.0
	// SandCost is the traversal cost of a sand cell.
	SandCost = 3.0
	// SlopeFloorCost is the cost of a sloped cell that would otherwise be
	// at MinCost.
	SlopeFloorCost = 1.25
	// MaxSlopeStrength caps the aggregated per-cell slope magnitude.
	MaxSlopeStrength = 1.5
	// MinHillStrength and MaxHillStrength clamp authored hill strengths.
	MinHillStrength = 0.2
	MaxHillStrength = 2.0
)

// SlopeDir is one of the 8 compass directions a hill may point downhill.
type SlopeDir int

const (
	North SlopeDir = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// invSqrt2 scales the diagonal unit-vector components.
var invSqrt2 = 1 / math.Sqrt2

// Vector returns the unit downhill vector for d in screen coordinates
// (y grows downward, so North points toward negative y).
func (d SlopeDir) Vector() geom.Point {
	switch d {
	case North:
		return geom.Point{X: 0, Y: -1}
	case NorthEast:
		return geom.Point{X: invSqrt2, Y: -invSqrt2}
	case East:
		return geom.Point{X: 1, Y: 0}
	case SouthEast:
		return geom.Point{X: invSqrt2, Y: invSqrt2}
	case South:
		return geom.Point{X: 0, Y: 1}
	case SouthWest:
		return geom.Point{X: -invSqrt2, Y: invSqrt2}
	case West:
		return geom.Point{X: -1, Y: 0}
	case NorthWest:
		return geom.Point{X: -invSqrt2, Y: -invSqrt2}
	default:
		return geom.Point{}
	}
}

// Hill is a rectangular slope field pushing the ball toward Dir with the
// given Strength. Strength is clamped into [MinHillStrength, MaxHillStrength]
// during rasterization.
type Hill struct {
	Area     geom.Rect
	Dir      SlopeDir
	Strength float64
}

// Level is the resolved course geometry handed over by the editor.
// All collections are optional; nil means empty. The core never mutates
// input geometry.
type Level struct {
	// Tee is the start point of the hole.
	Tee geom.Point
	// Cup is the goal point; CupRadius may be zero when unknown.
	Cup       geom.Point
	CupRadius float64

	// Obstacles are solid shapes (rects and polygons) that block traversal.
	Obstacles []geom.Shape
	// Water shapes block traversal like obstacles.
	Water []geom.Shape
	// Sand shapes are passable at elevated cost.
	Sand []geom.Shape
	// Hills are rectangular slope fields.
	Hills []Hill
	// Bridges restore passability over anything blocked beneath them.
	Bridges []geom.Rect
	// Posts are circular obstacles blocked with an added clearance margin.
	Posts []geom.Circle
}

// ObstacleCount returns the number of solid-obstacle and water shapes,
// the quantity the unreachable-par fallback scales with.
func (l *Level) ObstacleCount() int {
	return len(l.Obstacles) + len(l.Water)
}

// Coord addresses a grid cell by column (X) and row (Y).
type Coord struct {
	X, Y int
}

// Cell is one rasterized unit of the fairway. Cells are immutable once
// Build returns.
type Cell struct {
	// Cost is the scalar traversal cost, ≥ MinCost.
	Cost float64
	// Blocked marks the cell untraversable.
	Blocked bool
	// Sand marks elevated-friction terrain.
	Sand bool
	// Slope is the normalized local downhill direction; zero when flat.
	Slope geom.Point
	// SlopeStrength is the capped magnitude of the aggregated slope,
	// in (0, MaxSlopeStrength]; zero when flat.
	SlopeStrength float64
}

// Sloped reports whether the cell carries any slope contribution.
func (c Cell) Sloped() bool { return c.SlopeStrength > 0 }

// Grid is the rasterized fairway: a flat row-major array of Cells plus the
// geometry needed to convert between world and cell space. Immutable once
// built.
type Grid struct {
	// Width and Height are the cell dimensions, each ≥ 1.
	Width, Height int
	// CellSize is the edge length of a cell in pixels.
	CellSize float64
	// Origin is the world position of the fairway's top-left corner.
	Origin geom.Point

	cells []Cell
}

// Index maps (x,y) to the row-major cell index: y·Width + x.
func (g *Grid) Index(x, y int) int { return y*g.Width + x }

// InBounds reports whether (x,y) lies within the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At returns the cell at (x,y). The caller must ensure (x,y) is in bounds.
func (g *Grid) At(x, y int) Cell { return g.cells[g.Index(x, y)] }

// CellCenter returns the world-space center of cell (x,y).
func (g *Grid) CellCenter(x, y int) geom.Point {
	return geom.Point{
		X: g.Origin.X + (float64(x)+0.5)*g.CellSize,
		Y: g.Origin.Y + (float64(y)+0.5)*g.CellSize,
	}
}

// CellAt converts a world point to the coordinate of the cell containing
// it, clamped into the grid so out-of-bounds points can never fault.
func (g *Grid) CellAt(p geom.Point) Coord {
	x := int(math.Floor((p.X - g.Origin.X) / g.CellSize))
	y := int(math.Floor((p.Y - g.Origin.Y) / g.CellSize))
	return Coord{X: clampInt(x, 0, g.Width-1), Y: clampInt(y, 0, g.Height-1)}
}

// neighborOffsets is the fixed 8-connected adjacency, clockwise from
// north. A fixed order keeps every consumer deterministic.
var neighborOffsets = [8][2]int{
	{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}

// NeighborOffsets returns the shared 8-connected offset table.
// The slice must not be modified.
func NeighborOffsets() [][2]int { return neighborOffsets[:] }

// BlockedNeighborCount returns how many of the up-to-8 neighbors of (x,y)
// are blocked or out of bounds. Out-of-bounds neighbors count as blocked so
// cells hugging the fairway boundary read as corridor contact.
func (g *Grid) BlockedNeighborCount(x, y int) int {
	n := 0
	for _, d := range neighborOffsets {
		nx, ny := x+d[0], y+d[1]
		if !g.InBounds(nx, ny) || g.At(nx, ny).Blocked {
			n++
		}
	}
	return n
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

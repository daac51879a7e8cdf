package par

import (
	"math"

	"github.com/katalvlaran/fairway/coursegrid"
)

// PathMetrics are the traversal statistics every estimator derives from a
// fixed cell path. Produced by MeasurePath; immutable afterwards.
type PathMetrics struct {
	// Cells is the path length in cells.
	Cells int
	// Turns counts direction changes between consecutive steps.
	Turns int
	// CorridorSum is the total blocked-neighbor count over all path cells.
	CorridorSum int
	// CorridorContact is CorridorSum averaged per path cell.
	CorridorContact float64
	// SandCells and SlopeCells tally terrain flags along the path.
	SandCells  int
	SlopeCells int
}

// MeasurePath walks path once and derives PathMetrics.
// Complexity: O(len(path)).
func MeasurePath(g *coursegrid.Grid, path []coursegrid.Coord) PathMetrics {
	m := PathMetrics{Cells: len(path)}
	if len(path) == 0 {
		return m
	}
	prevDX, prevDY := 0, 0
	for i, c := range path {
		m.CorridorSum += g.BlockedNeighborCount(c.X, c.Y)
		cell := g.At(c.X, c.Y)
		if cell.Sand {
			m.SandCells++
		}
		if cell.Sloped() {
			m.SlopeCells++
		}
		if i == 0 {
			continue
		}
		dx, dy := c.X-path[i-1].X, c.Y-path[i-1].Y
		if i > 1 && (dx != prevDX || dy != prevDY) {
			m.Turns++
		}
		prevDX, prevDY = dx, dy
	}
	m.CorridorContact = float64(m.CorridorSum) / float64(len(path))
	return m
}

// Strokes applies the shared stroke formula to a path of lengthPx pixels
// with metrics m: friction-scaled distance plus sand, turn, corridor and
// hill penalties. The kbest package layers its slope-momentum discounts on
// top of this value.
func (c Config) Strokes(lengthPx float64, m PathMetrics) float64 {
	strokes := lengthPx / c.ShotDistancePx()
	strokes += float64(m.SandCells) * c.SandPenaltyPerCell * (c.SandFrictionMultiplier / 6.0)
	strokes += math.Min(c.TurnPenaltyCap, float64(m.Turns)*c.TurnPenalty)
	strokes += math.Min(c.BankPenaltyCap, m.CorridorContact*c.BankWeight)
	if m.SlopeCells > 0 {
		coverage := math.Min(1, float64(m.SlopeCells)/math.Max(1, math.Floor(float64(m.Cells)*0.5)))
		strokes += c.HillBump * (0.5 + 0.5*coverage)
	}
	return strokes
}

// ParFromStrokes adds the opening stroke and clamps into [MinPar, MaxPar].
func ParFromStrokes(strokes float64) int {
	return ClampPar(int(math.Round(strokes + 1)))
}

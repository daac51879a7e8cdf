// Package par implements the single-path stroke estimator.
package par

import (
	"errors"
	"math"

	"github.com/katalvlaran/fairway/astar"
	"github.com/katalvlaran/fairway/coursegrid"
	"github.com/katalvlaran/fairway/geom"
)

// Sentinel errors for par operations.
var (
	// ErrNilLevel indicates a nil *coursegrid.Level was supplied.
	ErrNilLevel = errors.New("par: level is nil")
)

// PreviewPoint is one world-space sample of the found route, flagged for
// overlay rendering.
type PreviewPoint struct {
	Point geom.Point
	Sand  bool
	Slope bool
}

// Estimate is the outcome of one par analysis.
type Estimate struct {
	// Reachable reports whether a tee→cup route exists. When false, Par
	// comes from the straight-line fallback.
	Reachable bool
	// Par is the suggested stroke count, always in [MinPar, MaxPar].
	Par int
	// Strokes is the unrounded stroke estimate behind Par.
	Strokes float64
	// PathLengthPx is the raw-terrain path cost × cell size, or the
	// straight-line tee→cup distance when unreachable.
	PathLengthPx float64
	// Path is the found cell route; nil when unreachable.
	Path []coursegrid.Coord
	// Metrics are the traversal statistics of Path.
	Metrics PathMetrics
	// Preview is the world-space route with per-point terrain flags.
	Preview []PreviewPoint
	// Notes carries free-form diagnostics, e.g. the fallback notice.
	Notes []string
}

// EstimatePar analyses level over fairway at cellSize and suggests a par.
//
// Reachable: strokes = Config.Strokes over the found path; par =
// round(strokes+1) clamped to [2,7]. Unreachable: par =
// round(straight/FallbackShotPx + obstacles·FallbackObstacleWeight)
// clamped, with an explanatory note — never an error (the only
// user-visible failure category is "could not find a path").
//
// Complexity: one grid build plus one search: O(W×H×S + N log N).
func EstimatePar(level *coursegrid.Level, fairway geom.Rect, cellSize float64, cfg Config) (Estimate, error) {
	if level == nil {
		return Estimate{}, ErrNilLevel
	}
	g, err := coursegrid.Build(level, fairway, cellSize)
	if err != nil {
		return Estimate{}, err
	}

	res, err := astar.Search(g, g.CellAt(level.Tee), g.CellAt(level.Cup))
	if err != nil {
		return Estimate{}, err
	}
	if !res.Found {
		return Fallback(level, cfg), nil
	}

	m := MeasurePath(g, res.Path)
	lengthPx := res.Cost * cellSize
	strokes := cfg.Strokes(lengthPx, m)
	return Estimate{
		Reachable:    true,
		Par:          ParFromStrokes(strokes),
		Strokes:      strokes,
		PathLengthPx: lengthPx,
		Path:         res.Path,
		Metrics:      m,
		Preview:      previewOf(g, res.Path),
	}, nil
}

// Fallback is the documented no-path estimate: straight-line distance
// scaled by FallbackShotPx plus a per-obstacle increment, clamped to
// [MinPar, MaxPar]. The kbest diversifier reuses it when no route exists.
func Fallback(level *coursegrid.Level, cfg Config) Estimate {
	straight := level.Tee.Dist(level.Cup)
	raw := straight/cfg.FallbackShotPx + float64(level.ObstacleCount())*cfg.FallbackObstacleWeight
	return Estimate{
		Reachable:    false,
		Par:          ClampPar(int(math.Round(raw))),
		Strokes:      raw,
		PathLengthPx: straight,
		Notes:        []string{"no path between tee and cup; fallback estimate used"},
	}
}

// previewOf converts a cell path into world-space points with per-point
// terrain flags for overlay rendering.
func previewOf(g *coursegrid.Grid, path []coursegrid.Coord) []PreviewPoint {
	pts := make([]PreviewPoint, len(path))
	for i, c := range path {
		cell := g.At(c.X, c.Y)
		pts[i] = PreviewPoint{
			Point: g.CellCenter(c.X, c.Y),
			Sand:  cell.Sand,
			Slope: cell.Sloped(),
		}
	}
	return pts
}

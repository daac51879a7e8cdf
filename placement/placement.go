// Package placement implements cup-candidate scanning and goal linting.
package placement

import (
	"errors"
	"math"
	"sort"

	"github.com/katalvlaran/fairway/astar"
	"github.com/katalvlaran/fairway/coursegrid"
	"github.com/katalvlaran/fairway/geom"
	"github.com/katalvlaran/fairway/par"
)

// Sentinel errors for placement operations.
var (
	// ErrBadCount indicates a requested candidate count below 1.
	ErrBadCount = errors.New("placement: count must be at least 1")
)

// turnScoreWeight scales turns into score, in cell sizes.
const turnScoreWeight = 2.0

// Lint warning texts. Warnings are independent and non-exclusive.
const (
	WarnUnreachable = "cup is unreachable from the tee"
	WarnBypass      = "path appears to bypass obstacles"
	WarnEdge        = "cup very close to fairway edge"
)

// CupCandidate is one suggested cup position.
type CupCandidate struct {
	// Point is the candidate cup position (cell center) in world space.
	Point geom.Point
	// Score ranks candidates: longer, twistier, more corridor-hugging
	// routes score higher.
	Score float64
	// LengthPx is the raw-terrain route cost × cell size.
	LengthPx float64
	// Turns is the route's direction-change count.
	Turns int
}

// SuggestGoals proposes up to count alternate cup positions producing
// non-trivial holes, ranked by descending score and separated by at least
// the configured minimum distance.
func SuggestGoals(level *coursegrid.Level, fairway geom.Rect, cellSize float64, count int, cfg par.Config) ([]CupCandidate, error) {
	if count < 1 {
		return nil, ErrBadCount
	}
	if level == nil {
		return nil, par.ErrNilLevel
	}
	g, err := coursegrid.Build(level, fairway, cellSize)
	if err != nil {
		return nil, err
	}

	tee := g.CellAt(level.Tee)
	margin := cfg.EdgeMarginFor(cellSize)
	minTeeDist := cfg.MinTeeDistanceFrac * math.Max(fairway.W, fairway.H)
	bankWeight := cfg.CandidateBankWeightFor(cellSize)

	// Row-major scan keeps candidate ordering deterministic.
	var pool []CupCandidate
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.At(x, y).Blocked {
				continue
			}
			center := g.CellCenter(x, y)
			if center.X-fairway.X < margin || fairway.X+fairway.W-center.X < margin ||
				center.Y-fairway.Y < margin || fairway.Y+fairway.H-center.Y < margin {
				continue
			}
			if center.Dist(level.Tee) < minTeeDist {
				continue
			}
			if cfg.GoalRegion != nil && !cfg.GoalRegion.Contains(center) {
				continue
			}

			res, err := astar.Search(g, tee, coursegrid.Coord{X: x, Y: y})
			if err != nil {
				return nil, err
			}
			if !res.Found {
				continue
			}
			m := par.MeasurePath(g, res.Path)
			lengthPx := res.Cost * cellSize
			straight := center.Dist(level.Tee)
			// Too straight: a near-beeline with too few turns is trivial.
			if lengthPx < straight*cfg.MinStraightnessRatio && m.Turns < cfg.MinTurns {
				continue
			}

			pool = append(pool, CupCandidate{
				Point:    center,
				Score:    lengthPx + float64(m.Turns)*turnScoreWeight*cellSize + float64(m.CorridorSum)*bankWeight,
				LengthPx: lengthPx,
				Turns:    m.Turns,
			})
		}
	}

	// Descending score; row-major pool order breaks ties deterministically.
	sort.SliceStable(pool, func(i, j int) bool { return pool[i].Score > pool[j].Score })

	// Greedy spatial thinning.
	separation := cfg.SeparationFor(cellSize)
	var out []CupCandidate
	for _, cand := range pool {
		if len(out) == count {
			break
		}
		tooClose := false
		for _, kept := range out {
			if cand.Point.Dist(kept.Point) < separation {
				tooClose = true
				break
			}
		}
		if !tooClose {
			out = append(out, cand)
		}
	}
	return out, nil
}

// LintGoal flags suspicious properties of the current cup placement.
// An unreachable cup yields exactly one warning; otherwise the bypass and
// edge-proximity checks are independent and may both fire.
func LintGoal(level *coursegrid.Level, fairway geom.Rect, cellSize float64, cfg par.Config) ([]string, error) {
	if level == nil {
		return nil, par.ErrNilLevel
	}
	g, err := coursegrid.Build(level, fairway, cellSize)
	if err != nil {
		return nil, err
	}

	res, err := astar.Search(g, g.CellAt(level.Tee), g.CellAt(level.Cup))
	if err != nil {
		return nil, err
	}
	if !res.Found {
		return []string{WarnUnreachable}, nil
	}

	var warnings []string
	m := par.MeasurePath(g, res.Path)
	lengthPx := res.Cost * cellSize
	straight := level.Tee.Dist(level.Cup)
	if level.ObstacleCount() > 0 &&
		m.Turns <= 1 &&
		lengthPx < straight*cfg.MinStraightnessRatio &&
		m.CorridorContact < 1.0 {
		warnings = append(warnings, WarnBypass)
	}

	edge := cfg.EdgeMarginFor(cellSize)
	if level.Cup.X-fairway.X < edge || fairway.X+fairway.W-level.Cup.X < edge ||
		level.Cup.Y-fairway.Y < edge || fairway.Y+fairway.H-level.Cup.Y < edge {
		warnings = append(warnings, WarnEdge)
	}
	return warnings, nil
}

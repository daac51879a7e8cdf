// Package kbest implements the bounded route diversifier.
package kbest

import (
	"math"
	"sort"

	"github.com/katalvlaran/fairway/astar"
	"github.com/katalvlaran/fairway/coursegrid"
	"github.com/katalvlaran/fairway/geom"
	"github.com/katalvlaran/fairway/par"
)

// SuggestK proposes up to k materially different tee→cup routes over the
// rasterized level, each independently scored with slope-momentum effects.
// When the cup is unreachable the single-path fallback supplies the par
// and Candidates stays empty.
//
// Complexity: bounded by maxPoolSize constrained searches over the grid,
// O(maxPoolSize · N log N); the bound is independent of geometry.
func SuggestK(level *coursegrid.Level, fairway geom.Rect, cellSize float64, k int, cfg par.Config) (Suggestion, error) {
	if k < 1 {
		return Suggestion{}, ErrBadK
	}
	if level == nil {
		return Suggestion{}, par.ErrNilLevel
	}
	g, err := coursegrid.Build(level, fairway, cellSize)
	if err != nil {
		return Suggestion{}, err
	}

	start := g.CellAt(level.Tee)
	goal := g.CellAt(level.Cup)
	base, err := astar.Search(g, start, goal)
	if err != nil {
		return Suggestion{}, err
	}
	if !base.Found {
		fb := par.Fallback(level, cfg)
		return Suggestion{
			Reachable: false,
			BestIndex: -1,
			Par:       fb.Par,
			Notes:     fb.Notes,
		}, nil
	}

	// 1) Gather a bounded pool of raw routes.
	pool := gatherRoutes(g, start, goal, base)

	// 2) Score each route independently.
	scored := make([]Candidate, 0, len(pool))
	for _, route := range pool {
		scored = append(scored, analyze(g, route, cfg))
	}

	// 3) Collapse near-identical routes, keeping distinct play styles.
	kept := dedupe(scored)

	// 4) Ascending strokes, ties by pixel length; stable for determinism.
	sort.SliceStable(kept, func(i, j int) bool {
		if kept[i].Strokes != kept[j].Strokes {
			return kept[i].Strokes < kept[j].Strokes
		}
		return kept[i].LengthPx < kept[j].LengthPx
	})
	if len(kept) > k {
		kept = kept[:k]
	}

	return Suggestion{
		Reachable:  true,
		Candidates: kept,
		BestIndex:  0,
		Par:        kept[0].Par,
	}, nil
}

// gatherRoutes seeds the pool with the base path, one alternate per viable
// first step out of the start cell, and detours forced by banning sampled
// interior cells of known routes (depth ≤ maxDetourDepth).
func gatherRoutes(g *coursegrid.Grid, start, goal coursegrid.Coord, base astar.Result) [][]coursegrid.Coord {
	pool := [][]coursegrid.Coord{base.Path}

	// Immediate branch choices: force each legal first step, banning the
	// start cell so the alternate cannot fold back through it.
	for _, d := range coursegrid.NeighborOffsets() {
		if len(pool) >= maxPoolSize {
			break
		}
		nx, ny := start.X+d[0], start.Y+d[1]
		if !g.InBounds(nx, ny) || g.At(nx, ny).Blocked {
			continue
		}
		if d[0] != 0 && d[1] != 0 && cutsCorner(g, start, d) {
			continue
		}
		nb := coursegrid.Coord{X: nx, Y: ny}
		if nb == goal {
			continue
		}
		res, err := astar.Search(g, nb, goal, astar.WithBannedCells(start))
		if err != nil || !res.Found {
			continue
		}
		full := append([]coursegrid.Coord{start}, res.Path...)
		addRoute(&pool, full)
	}

	// Interior-cell banning, breadth-first over detour depth.
	frontier := [][]coursegrid.Coord{base.Path}
	for depth := 0; depth < maxDetourDepth && len(pool) < maxPoolSize; depth++ {
		var next [][]coursegrid.Coord
		for _, route := range frontier {
			samples := sampleInterior(route)
			for i, ban := range samples {
				if len(pool) >= maxPoolSize {
					break
				}
				// Ban one sampled cell, then the pair with its successor
				// sample, surfacing both small and wide detours.
				banSets := [][]coursegrid.Coord{{ban}}
				if i+1 < len(samples) {
					banSets = append(banSets, []coursegrid.Coord{ban, samples[i+1]})
				}
				for _, bans := range banSets {
					res, err := astar.Search(g, start, goal, astar.WithBannedCells(bans...))
					if err != nil || !res.Found {
						continue
					}
					if addRoute(&pool, res.Path) {
						next = append(next, res.Path)
					}
					if len(pool) >= maxPoolSize {
						break
					}
				}
			}
		}
		frontier = next
	}

	return pool
}

// addRoute appends route unless an identical cell sequence is pooled
// already. Reports whether the route was new.
func addRoute(pool *[][]coursegrid.Coord, route []coursegrid.Coord) bool {
	for _, have := range *pool {
		if equalRoute(have, route) {
			return false
		}
	}
	*pool = append(*pool, route)
	return true
}

func equalRoute(a, b []coursegrid.Coord) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// sampleInterior picks up to interiorSamples cells at evenly spaced
// positions strictly between a route's endpoints.
func sampleInterior(route []coursegrid.Coord) []coursegrid.Coord {
	interior := len(route) - 2
	if interior < 1 {
		return nil
	}
	n := interiorSamples
	if interior < n {
		n = interior
	}
	out := make([]coursegrid.Coord, 0, n)
	for i := 1; i <= n; i++ {
		idx := i * (interior + 1) / (n + 1)
		if idx < 1 {
			idx = 1
		}
		if idx > interior {
			idx = interior
		}
		c := route[idx]
		if len(out) == 0 || out[len(out)-1] != c {
			out = append(out, c)
		}
	}
	return out
}

// cutsCorner mirrors the search's anti-corner-cutting rule for first-step
// viability checks.
func cutsCorner(g *coursegrid.Grid, from coursegrid.Coord, d [2]int) bool {
	if x, y := from.X+d[0], from.Y; !g.InBounds(x, y) || g.At(x, y).Blocked {
		return true
	}
	x, y := from.X, from.Y+d[1]
	return !g.InBounds(x, y) || g.At(x, y).Blocked
}

// analyze independently derives a Candidate for a fixed path: the shared
// par metrics plus the slope-momentum pass, then the adjusted strokes.
func analyze(g *coursegrid.Grid, path []coursegrid.Coord, cfg par.Config) Candidate {
	c := Candidate{
		Path:    path,
		Metrics: par.MeasurePath(g, path),
	}
	lengthPx := astar.PathCost(g, path) * g.CellSize
	c.LengthPx = lengthPx

	// Momentum pass: per-step alignment of travel with the local slope.
	for i := 1; i < len(path); i++ {
		prev, cur := path[i-1], path[i]
		a := g.At(prev.X, prev.Y)
		b := g.At(cur.X, cur.Y)
		avgStrength := (a.SlopeStrength + b.SlopeStrength) / 2
		if avgStrength <= 0 {
			continue
		}
		slope := a.Slope.Add(b.Slope).Scale(0.5).Normalize()
		dx, dy := float64(cur.X-prev.X), float64(cur.Y-prev.Y)
		stepLen := math.Hypot(dx, dy)
		align := (slope.X*dx + slope.Y*dy) / stepLen
		contribution := align * avgStrength * stepLen
		switch {
		case align > alignmentEpsilon:
			c.DownhillMomentum += contribution
			if contribution >= cfg.AutoAssistThreshold {
				c.AutoAssistSegments++
			}
		case align < -alignmentEpsilon:
			c.UphillResistance += -contribution
		}
	}

	strokes := cfg.Strokes(lengthPx, c.Metrics)
	strokes -= math.Min(cfg.DownhillBonusCap, c.DownhillMomentum*cfg.DownhillBonusFactor)
	if c.AutoAssistSegments >= cfg.AutoAssistSegmentMin ||
		c.DownhillMomentum-c.UphillResistance > cfg.MomentumThreshold {
		strokes -= cfg.MomentumBonus
	}
	if strokes < cfg.StrokeFloor {
		strokes = cfg.StrokeFloor
	}
	c.Strokes = strokes
	c.Par = par.ParFromStrokes(strokes)
	return c
}

// dedupe collapses candidates that share ≥ overlapSameRoute of their cells,
// keeping the lower-stroke variant unless their slope-assist metrics differ
// materially, in which case both survive as distinct play styles.
func dedupe(cands []Candidate) []Candidate {
	var kept []Candidate
	for _, c := range cands {
		merged := false
		for i := range kept {
			if overlapFraction(kept[i].Path, c.Path) < overlapSameRoute {
				continue
			}
			if distinctStyles(kept[i], c) {
				continue
			}
			if c.Strokes < kept[i].Strokes {
				kept[i] = c
			}
			merged = true
			break
		}
		if !merged {
			kept = append(kept, c)
		}
	}
	return kept
}

// distinctStyles reports whether two overlapping routes still read as
// different plays: a material momentum gap or assist-segment gap.
func distinctStyles(a, b Candidate) bool {
	if math.Abs(a.DownhillMomentum-b.DownhillMomentum) >= momentumGapDistinct {
		return true
	}
	gap := a.AutoAssistSegments - b.AutoAssistSegments
	if gap < 0 {
		gap = -gap
	}
	return gap >= assistGapDistinct
}

// overlapFraction is |cells(a) ∩ cells(b)| over the smaller path's cell
// count.
func overlapFraction(a, b []coursegrid.Coord) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	set := make(map[coursegrid.Coord]struct{}, len(a))
	for _, c := range a {
		set[c] = struct{}{}
	}
	shared := 0
	for _, c := range b {
		if _, ok := set[c]; ok {
			shared++
		}
	}
	minLen := len(a)
	if len(b) < minLen {
		minLen = len(b)
	}
	return float64(shared) / float64(minLen)
}

package coursegrid

import (
	"math"

	"github.com/katalvlaran/fairway/geom"
)

// PostClearance returns the margin added around every post radius when
// blocking cells: max(6, round(cellSize·0.4)) pixels.
func PostClearance(cellSize float64) float64 {
	return math.Max(6, math.Round(cellSize*0.4))
}

// Build rasterizes level geometry over the fairway rectangle into a Grid
// with cellSize-pixel cells. Dimensions are ceil(fairway.W/cellSize) by
// ceil(fairway.H/cellSize), each floored to 1, so degenerate fairways
// still yield a usable 1×1 grid. Returns ErrBadCellSize when cellSize ≤ 0.
//
// Each cell is classified from its center point:
//
//  1. solid obstacles, water, and post discs (inflated by PostClearance)
//     block the cell;
//  2. a bridge rectangle over the center un-blocks it;
//  3. the first matching sand shape raises cost to SandCost;
//  4. overlapping hills contribute clamped direction vectors whose
//     normalized sum becomes the cell slope (strength capped at
//     MaxSlopeStrength), bumping a still-minimum cost to SlopeFloorCost.
//
// Complexity: O(W×H×S) time with S = total shape count, O(W×H) memory.
func Build(level *Level, fairway geom.Rect, cellSize float64) (*Grid, error) {
	if cellSize <= 0 {
		return nil, ErrBadCellSize
	}

	w := int(math.Ceil(fairway.W / cellSize))
	h := int(math.Ceil(fairway.H / cellSize))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	g := &Grid{
		Width:    w,
		Height:   h,
		CellSize: cellSize,
		Origin:   geom.Point{X: fairway.X, Y: fairway.Y},
		cells:    make([]Cell, w*h),
	}

	clearance := PostClearance(cellSize)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g.cells[g.Index(x, y)] = classify(level, g.CellCenter(x, y), clearance)
		}
	}

	return g, nil
}

// classify computes the Cell for one center point following the fixed
// precedence documented on Build.
func classify(level *Level, center geom.Point, clearance float64) Cell {
	cell := Cell{Cost: MinCost}

	// 1) Solid terrain: obstacles, water, inflated posts.
	if geom.AnyContains(level.Obstacles, center) ||
		geom.AnyContains(level.Water, center) ||
		nearAnyPost(level.Posts, center, clearance) {
		cell.Blocked = true
	}

	// 2) Bridges restore passability over whatever blocked the center.
	if cell.Blocked {
		for _, b := range level.Bridges {
			if b.Contains(center) {
				cell.Blocked = false
				break
			}
		}
	}

	// 3) Sand: first matching shape wins, no stacking.
	if !cell.Blocked && geom.AnyContains(level.Sand, center) {
		cell.Sand = true
		cell.Cost = math.Max(cell.Cost, SandCost)
	}

	// 4) Slope accumulation across every overlapping hill.
	var sum geom.Point
	for _, hill := range level.Hills {
		if !hill.Area.Contains(center) {
			continue
		}
		s := clampFloat(hill.Strength, MinHillStrength, MaxHillStrength)
		sum = sum.Add(hill.Dir.Vector().Scale(s))
	}
	if l := sum.Len(); l > 1e-12 {
		cell.Slope = sum.Normalize()
		cell.SlopeStrength = math.Min(l, MaxSlopeStrength)
		if cell.Cost == MinCost {
			cell.Cost = SlopeFloorCost
		}
	}

	return cell
}

// nearAnyPost reports whether p lies within radius+clearance of any post.
func nearAnyPost(posts []geom.Circle, p geom.Point, clearance float64) bool {
	for _, post := range posts {
		r := post.R + clearance
		dx, dy := p.X-post.X, p.Y-post.Y
		if dx*dx+dy*dy <= r*r {
			return true
		}
	}
	return false
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

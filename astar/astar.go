// Package astar implements weighted A* over a coursegrid, in the
// lazy-decrease-key style: improvements push duplicate heap entries and
// stale ones are discarded when popped.
package astar

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/fairway/coursegrid"
)

// Search finds a minimum-cost 8-connected path from start to goal on g.
// Out-of-range coordinates are clamped into the grid before lookup, so no
// indexing fault is possible. A blocked start or goal cell, like an
// exhausted search, yields Found=false — unreachable is a normal result.
//
// The search priority of a step is
//
//	weight(1 or √2) × avg(endpoint costs) × slopeFactor
//
// with slopeFactor = clamp(1 + 0.5·uphill·s − 0.15·downhill·s, 0.75, 1.6),
// where uphill/downhill come from the dot product of the normalized step
// direction with the averaged endpoint slope, and s is the averaged slope
// strength. Result.Cost is then recomputed over the final path WITHOUT the
// slope factor (Σ stepWeight × arrivalCell.Cost).
//
// Complexity: O(N log N) time, O(N) memory, N = grid cell count.
func Search(g *coursegrid.Grid, start, goal coursegrid.Coord, opts ...Option) (Result, error) {
	// 1) Validate and apply options.
	if g == nil {
		return Result{}, ErrNilGrid
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Clamp endpoints into the grid.
	start = clampCoord(g, start)
	goal = clampCoord(g, goal)

	// 3) Blocked endpoints can never sit on a valid path.
	if g.At(start.X, start.Y).Blocked || g.At(goal.X, goal.Y).Blocked {
		return Result{}, nil
	}

	// 4) Trivial route: start equals goal.
	if start == goal {
		return Result{Found: true, Path: []coursegrid.Coord{start}, Cost: 0}, nil
	}

	r := newRunner(g, cfg, start, goal)
	if !r.process() {
		return Result{}, nil
	}

	path := r.reconstruct()
	return Result{Found: true, Path: path, Cost: PathCost(g, path)}, nil
}

// runner holds the mutable state of one Search execution.
type runner struct {
	g       *coursegrid.Grid
	cfg     Options
	goal    coursegrid.Coord
	gScore  []float64 // best known cost-so-far per cell
	parent  []int32   // predecessor cell index, -1 when unset
	closed  []bool    // finalized cells
	pq      nodePQ
	seq     int // insertion counter for stable tie-breaking
	goalIdx int
}

func newRunner(g *coursegrid.Grid, cfg Options, start, goal coursegrid.Coord) *runner {
	n := g.Width * g.Height
	r := &runner{
		g:       g,
		cfg:     cfg,
		goal:    goal,
		gScore:  make([]float64, n),
		parent:  make([]int32, n),
		closed:  make([]bool, n),
		pq:      make(nodePQ, 0, n/4+8),
		goalIdx: g.Index(goal.X, goal.Y),
	}
	for i := range r.gScore {
		r.gScore[i] = math.Inf(1)
		r.parent[i] = -1
	}
	startIdx := g.Index(start.X, start.Y)
	r.gScore[startIdx] = 0
	heap.Init(&r.pq)
	r.push(start, octile(start, goal))
	return r
}

// push inserts a cell with priority f, stamping the insertion sequence so
// equal priorities pop first-inserted-first.
func (r *runner) push(c coursegrid.Coord, f float64) {
	heap.Push(&r.pq, &nodeItem{coord: c, f: f, seq: r.seq})
	r.seq++
}

// process runs the expansion loop. Returns true once the goal is finalized.
func (r *runner) process() bool {
	g := r.g
	for r.pq.Len() > 0 {
		// 1) Pop the lowest-priority open cell.
		item := heap.Pop(&r.pq).(*nodeItem)
		cur := item.coord
		idx := g.Index(cur.X, cur.Y)

		// 2) Discard stale lazy-decrease-key entries.
		if r.closed[idx] {
			continue
		}

		// 3) Banned cells are skipped at pop time: routes may approach them
		//    but never pass through.
		if _, banned := r.cfg.Banned[cur]; banned {
			continue
		}

		// 4) Finalize. Reaching the goal ends the search.
		r.closed[idx] = true
		if idx == r.goalIdx {
			return true
		}

		// 5) Relax every legal neighbor in fixed clockwise order.
		curCell := g.At(cur.X, cur.Y)
		for _, d := range coursegrid.NeighborOffsets() {
			nx, ny := cur.X+d[0], cur.Y+d[1]
			if !g.InBounds(nx, ny) {
				continue
			}
			next := g.At(nx, ny)
			if next.Blocked {
				continue
			}
			diagonal := d[0] != 0 && d[1] != 0
			// No corner-cutting: a diagonal step is illegal when either
			// flanking orthogonal neighbor is blocked.
			if diagonal && r.cutsCorner(cur, d) {
				continue
			}

			weight := 1.0
			if diagonal {
				weight = math.Sqrt2
			}
			stepCost := weight * (curCell.Cost + next.Cost) / 2 * slopeFactor(curCell, next, d)

			nIdx := g.Index(nx, ny)
			tentative := r.gScore[idx] + stepCost
			if tentative >= r.gScore[nIdx] {
				continue
			}
			r.gScore[nIdx] = tentative
			r.parent[nIdx] = int32(idx)
			nc := coursegrid.Coord{X: nx, Y: ny}
			r.push(nc, tentative+octile(nc, r.goal))
		}
	}
	return false
}

// cutsCorner reports whether the diagonal step d from cur squeezes between
// blocked orthogonal neighbors.
func (r *runner) cutsCorner(cur coursegrid.Coord, d [2]int) bool {
	g := r.g
	sx, sy := cur.X+d[0], cur.Y
	if !g.InBounds(sx, sy) || g.At(sx, sy).Blocked {
		return true
	}
	sx, sy = cur.X, cur.Y+d[1]
	return !g.InBounds(sx, sy) || g.At(sx, sy).Blocked
}

// reconstruct walks parent links goal→start and reverses.
func (r *runner) reconstruct() []coursegrid.Coord {
	g := r.g
	var rev []coursegrid.Coord
	for idx := r.goalIdx; idx >= 0; idx = int(r.parent[idx]) {
		rev = append(rev, coursegrid.Coord{X: idx % g.Width, Y: idx / g.Width})
	}
	path := make([]coursegrid.Coord, len(rev))
	for i, c := range rev {
		path[len(rev)-1-i] = c
	}
	return path
}

// slopeFactor computes the priority multiplier for a step along offset d,
// from the dot product of the normalized step direction with the averaged
// endpoint slope.
func slopeFactor(from, to coursegrid.Cell, d [2]int) float64 {
	avgStrength := (from.SlopeStrength + to.SlopeStrength) / 2
	if avgStrength <= 0 {
		return 1
	}
	avg := from.Slope.Add(to.Slope).Scale(0.5).Normalize()
	inv := 1.0
	if d[0] != 0 && d[1] != 0 {
		inv = 1 / math.Sqrt2
	}
	align := avg.X*float64(d[0])*inv + avg.Y*float64(d[1])*inv
	uphill := math.Max(0, -align)
	downhill := math.Max(0, align)
	f := 1 + uphillFactor*uphill*avgStrength - downhillFactor*downhill*avgStrength
	return clamp(f, minSlopeFactor, maxSlopeFactor)
}

// octile is the admissible 8-connected heuristic: max(dx,dy) + (√2−1)·min.
func octile(a, b coursegrid.Coord) float64 {
	dx := math.Abs(float64(a.X - b.X))
	dy := math.Abs(float64(a.Y - b.Y))
	if dx < dy {
		dx, dy = dy, dx
	}
	return dx + (math.Sqrt2-1)*dy
}

// PathCost sums stepWeight × arrivalCell.Cost along path, deliberately
// ignoring the slope-search multiplier so the published cost reflects raw
// terrain difficulty. Diagonal steps weigh √2, others 1. It is the single
// definition of a route's reported cost; Result.Cost and every downstream
// length derive from it.
func PathCost(g *coursegrid.Grid, path []coursegrid.Coord) float64 {
	total := 0.0
	for i := 1; i < len(path); i++ {
		w := 1.0
		if path[i].X != path[i-1].X && path[i].Y != path[i-1].Y {
			w = math.Sqrt2
		}
		total += w * g.At(path[i].X, path[i].Y).Cost
	}
	return total
}

func clampCoord(g *coursegrid.Grid, c coursegrid.Coord) coursegrid.Coord {
	if c.X < 0 {
		c.X = 0
	}
	if c.X >= g.Width {
		c.X = g.Width - 1
	}
	if c.Y < 0 {
		c.Y = 0
	}
	if c.Y >= g.Height {
		c.Y = g.Height - 1
	}
	return c
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// nodeItem is one open-set entry: a cell, its f-priority, and the insertion
// sequence used to break ties deterministically.
type nodeItem struct {
	coord coursegrid.Coord
	f     float64
	seq   int
}

// nodePQ is a min-heap of *nodeItem ordered by f, first-inserted-wins on
// equal priority. Lazy decrease-key: improved cells are re-pushed and stale
// entries skipped via the closed set.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}
	return pq[i].seq < pq[j].seq
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return item
}

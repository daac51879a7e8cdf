// Package astar defines the search result, constraint options, and
// sentinel errors for the weighted grid search.
package astar

import (
	"errors"

	"github.com/katalvlaran/fairway/coursegrid"
)

// Sentinel errors for astar operations.
var (
	// ErrNilGrid indicates a nil *coursegrid.Grid was passed to Search.
	ErrNilGrid = errors.New("astar: grid is nil")
)

// Slope-modulation constants applied to the search priority (never to the
// reported path cost).
const (
	// uphillFactor scales the uphill (against-slope) cost increase.
	uphillFactor = 0.5
	// downhillFactor scales the downhill (with-slope) cost decrease.
	downhillFactor = 0.15
	// minSlopeFactor and maxSlopeFactor clamp the combined multiplier.
	minSlopeFactor = 0.75
	maxSlopeFactor = 1.6
)

// Result is the outcome of one Search call.
type Result struct {
	// Found reports whether any route exists. false is a normal outcome,
	// never an error.
	Found bool
	// Path is the cell sequence from start to goal inclusive; nil when
	// Found is false. Consecutive cells are 8-adjacent and unblocked.
	Path []coursegrid.Coord
	// Cost is the raw-terrain path cost: Σ stepWeight × arrivalCell.Cost,
	// without the slope-search multiplier. Zero for a one-cell path.
	Cost float64
}

// Options configures a Search call.
type Options struct {
	// Banned cells are skipped whenever popped as the expansion node,
	// forbidding routes through them while leaving them available as
	// unreached alternatives.
	Banned map[coursegrid.Coord]struct{}
}

// Option is a functional option for configuring Search.
type Option func(*Options)

// WithBannedCells forbids routing through the given cells. Repeated use
// accumulates into one ban set.
func WithBannedCells(cells ...coursegrid.Coord) Option {
	return func(o *Options) {
		if o.Banned == nil {
			o.Banned = make(map[coursegrid.Coord]struct{}, len(cells))
		}
		for _, c := range cells {
			o.Banned[c] = struct{}{}
		}
	}
}

// DefaultOptions returns an Options with no constraints.
func DefaultOptions() Options { return Options{} }

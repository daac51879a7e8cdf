// Package kbest defines the candidate/result types and sentinel errors of
// the route diversifier.
package kbest

import (
	"errors"

	"github.com/katalvlaran/fairway/coursegrid"
	"github.com/katalvlaran/fairway/par"
)

// Sentinel errors for kbest operations.
var (
	// ErrBadK indicates a requested candidate count below 1.
	ErrBadK = errors.New("kbest: K must be at least 1")
)

// Diversification bounds and thresholds.
const (
	// maxPoolSize caps how many distinct raw paths the diversifier keeps
	// before scoring; together with maxDetourDepth it bounds worst-case
	// work independent of geometry.
	maxPoolSize = 12
	// maxDetourDepth bounds the constrained re-search recursion.
	maxDetourDepth = 2
	// interiorSamples is how many spaced interior cells are drawn per
	// path as ban sites.
	interiorSamples = 5

	// alignmentEpsilon separates downhill from uphill step alignments.
	alignmentEpsilon = 0.05

	// overlapSameRoute is the cell-overlap fraction (against the shorter
	// path) at which two candidates count as one route.
	overlapSameRoute = 0.6
	// momentumGapDistinct and assistGapDistinct keep overlapping routes
	// apart when their slope-assist profiles differ materially.
	momentumGapDistinct = 0.6
	assistGapDistinct   = 2
)

// Candidate is one scored route proposal.
type Candidate struct {
	// Path is the route's cell sequence, tee to cup.
	Path []coursegrid.Coord
	// LengthPx is the raw-terrain path cost × cell size.
	LengthPx float64
	// Metrics are the shared traversal statistics of Path.
	Metrics par.PathMetrics
	// DownhillMomentum sums alignment·strength·stepLength over steps
	// aligned with the slope beyond +0.05.
	DownhillMomentum float64
	// UphillResistance sums the same magnitude over steps aligned against
	// the slope beyond −0.05.
	UphillResistance float64
	// AutoAssistSegments counts steps whose individual downhill
	// contribution reaches Config.AutoAssistThreshold — free rolling.
	AutoAssistSegments int
	// Strokes is the momentum-adjusted stroke estimate.
	Strokes float64
	// Par is round(Strokes+1) clamped to [par.MinPar, par.MaxPar].
	Par int
}

// Suggestion is the outcome of one SuggestK call.
type Suggestion struct {
	// Reachable is false when no tee→cup route exists; Candidates is then
	// empty and Par comes from the single-path fallback.
	Reachable bool
	// Candidates holds at most K routes, ascending by Strokes.
	Candidates []Candidate
	// BestIndex points at the lowest-stroke candidate (always 0 when any
	// exist, −1 otherwise).
	BestIndex int
	// Par is the best candidate's par, or the fallback par.
	Par int
	// Notes carries diagnostics, e.g. the fallback notice.
	Notes []string
}

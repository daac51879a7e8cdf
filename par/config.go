package par

import "github.com/katalvlaran/fairway/geom"

// Par bounds for every estimator branch.
const (
	// MinPar and MaxPar clamp every suggested par.
	MinPar = 2
	MaxPar = 7
)

// Config gathers every tunable of the difficulty analyses with named,
// independently-defaulted fields. Zero-valued "auto" fields (EdgeMargin,
// MinSeparation, CandidateBankWeight) are resolved against the current
// cell size at the point of use.
type Config struct {
	// BaselineShotPx is the pixel distance one comfortable stroke covers
	// at reference friction. Default 320.
	BaselineShotPx float64
	// ReferenceFrictionK is the friction coefficient BaselineShotPx was
	// calibrated against. Default 1.2.
	ReferenceFrictionK float64
	// FrictionK is the live physics friction coefficient; the effective
	// shot distance scales by ReferenceFrictionK/FrictionK. Default 1.2.
	FrictionK float64

	// SandFrictionMultiplier is the live sand friction multiplier; the
	// sand penalty scales by SandFrictionMultiplier/6. Default 6.
	SandFrictionMultiplier float64
	// SandPenaltyPerCell is the stroke penalty per sand cell on the path,
	// before friction scaling. Default 0.01.
	SandPenaltyPerCell float64

	// TurnPenalty is the stroke penalty per direction change, capped by
	// TurnPenaltyCap. Defaults 0.08 and 1.5.
	TurnPenalty    float64
	TurnPenaltyCap float64

	// BankWeight converts average corridor contact (blocked neighbors per
	// path cell) into strokes, capped by BankPenaltyCap. Defaults 0.12
	// and 1.0.
	BankWeight     float64
	BankPenaltyCap float64

	// HillBump is the flat stroke penalty for slope presence, scaled by
	// 0.5+0.5·coverage. Default 0.18.
	HillBump float64

	// DownhillBonusFactor converts downhill momentum into a stroke
	// discount, capped by DownhillBonusCap. Defaults 0.18 and 1.6.
	DownhillBonusFactor float64
	DownhillBonusCap    float64

	// AutoAssistThreshold is the per-step downhill contribution at or
	// above which a step counts as a free-rolling assist segment.
	// Default 0.6.
	AutoAssistThreshold float64
	// AutoAssistSegmentMin is the assist-segment count from which the
	// momentum bonus applies. Default 3.
	AutoAssistSegmentMin int
	// MomentumThreshold is the net momentum (downhill − uphill) above
	// which the momentum bonus applies. Default 1.35.
	MomentumThreshold float64
	// MomentumBonus is the extra stroke discount granted by either
	// trigger above. Default 0.45.
	MomentumBonus float64
	// StrokeFloor bounds the stroke estimate from below after all
	// discounts. Default 0.35.
	StrokeFloor float64

	// FallbackShotPx divides the straight-line distance in the
	// unreachable fallback. Default 260.
	FallbackShotPx float64
	// FallbackObstacleWeight is the fallback's per-obstacle-shape stroke
	// increment. Default 0.3.
	FallbackObstacleWeight float64

	// EdgeMargin keeps goal candidates and lint checks away from the
	// fairway boundary, in pixels. 0 means auto: max(20, 2·cellSize).
	EdgeMargin float64
	// MinStraightnessRatio marks a path "too straight" when its length is
	// below straightLine·ratio. Default 1.08.
	MinStraightnessRatio float64
	// MinTurns is the turn count below which a too-straight path is
	// rejected as a goal candidate. Default 0 (never reject on turns
	// unless configured stricter).
	MinTurns int
	// MinSeparation is the minimum pixel distance between suggested goal
	// points. 0 means auto: 6·cellSize.
	MinSeparation float64
	// MinTeeDistanceFrac floors the tee→candidate distance at this
	// fraction of the fairway's larger dimension. Default 0.25.
	MinTeeDistanceFrac float64
	// CandidateBankWeight scales the corridor-contact sum in the goal
	// candidate score. 0 means auto: cellSize·0.5.
	CandidateBankWeight float64
	// GoalRegion optionally restricts goal candidates to one containment
	// region; nil disables the test.
	GoalRegion *geom.Shape
}

// DefaultConfig returns the canonical tunables. Every analysis accepts a
// Config so callers can override any field independently.
func DefaultConfig() Config {
	return Config{
		BaselineShotPx:         320,
		ReferenceFrictionK:     1.2,
		FrictionK:              1.2,
		SandFrictionMultiplier: 6.0,
		SandPenaltyPerCell:     0.01,
		TurnPenalty:            0.08,
		TurnPenaltyCap:         1.5,
		BankWeight:             0.12,
		BankPenaltyCap:         1.0,
		HillBump:               0.18,
		DownhillBonusFactor:    0.18,
		DownhillBonusCap:       1.6,
		AutoAssistThreshold:    0.6,
		AutoAssistSegmentMin:   3,
		MomentumThreshold:      1.35,
		MomentumBonus:          0.45,
		StrokeFloor:            0.35,
		FallbackShotPx:         260,
		FallbackObstacleWeight: 0.3,
		MinStraightnessRatio:   1.08,
		MinTeeDistanceFrac:     0.25,
	}
}

// ShotDistancePx returns the friction-scaled effective shot distance:
// BaselineShotPx · ReferenceFrictionK / FrictionK.
func (c Config) ShotDistancePx() float64 {
	return c.BaselineShotPx * c.ReferenceFrictionK / c.FrictionK
}

// EdgeMarginFor resolves the auto edge margin for a cell size.
func (c Config) EdgeMarginFor(cellSize float64) float64 {
	if c.EdgeMargin > 0 {
		return c.EdgeMargin
	}
	if m := 2 * cellSize; m > 20 {
		return m
	}
	return 20
}

// SeparationFor resolves the auto candidate separation for a cell size.
func (c Config) SeparationFor(cellSize float64) float64 {
	if c.MinSeparation > 0 {
		return c.MinSeparation
	}
	return 6 * cellSize
}

// CandidateBankWeightFor resolves the auto candidate bank weight.
func (c Config) CandidateBankWeightFor(cellSize float64) float64 {
	if c.CandidateBankWeight > 0 {
		return c.CandidateBankWeight
	}
	return cellSize * 0.5
}

// ClampPar clamps p into [MinPar, MaxPar].
func ClampPar(p int) int {
	if p < MinPar {
		return MinPar
	}
	if p > MaxPar {
		return MaxPar
	}
	return p
}

// Package par converts found routes into bounded stroke-count ("par")
// suggestions consistent with the editor's friction model, and hosts the
// one configuration structure shared by every fairway analysis.
//
// What:
//
//   - Config names every tunable with its default in a single place, so
//     numeric constants cannot drift between call sites. DefaultConfig()
//     returns the canonical values.
//   - Estimate builds the grid, searches tee→cup, and derives a par in
//     [2,7]: a friction-scaled distance term plus sand, turn, corridor and
//     hill penalties, plus one opening stroke.
//   - An unreachable cup is a normal outcome: the estimate falls back to
//     round(straightLine/260 + obstacles·0.3), clamped, with an explanatory
//     note — never an error.
//   - MeasurePath exposes the shared traversal metrics (turns, corridor
//     contact, terrain tallies) reused by the kbest and placement packages.
//   - Estimate carries a world-space path preview (ordered points with
//     per-point sand/slope flags) for overlay rendering by the caller.
//
// Stroke model:
//
//	strokes = lengthPx / (BaselineShotPx · ReferenceFrictionK / FrictionK)
//	        + sandCells · SandPenaltyPerCell · SandFrictionMultiplier/6
//	        + min(TurnPenaltyCap, turns · TurnPenalty)
//	        + min(BankPenaltyCap, corridorContact · BankWeight)
//	        + hill bump scaled by slope coverage (when any path cell slopes)
//	par     = clamp(round(strokes + 1), 2, 7)
//
// Reported path length uses the search's raw terrain cost (× cell size);
// slope-assist effects on strokes live exclusively in the kbest momentum
// pass, keeping both estimators consistent about what "length" means.
//
// Errors:
//
//   - ErrNilLevel: a nil *coursegrid.Level was supplied.
//   - coursegrid.ErrBadCellSize propagates from grid construction.
//
// Determinism: pure function of its arguments; identical calls return
// identical estimates.
package par

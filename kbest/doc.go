// Package kbest proposes several materially different near-optimal routes
// for a hole and scores each one independently, including slope-momentum
// effects the single-path estimator deliberately ignores.
//
// What:
//
//   - SuggestK runs the base search, then surfaces alternates two ways:
//     one re-search per viable first step out of the tee cell (immediate
//     branch choices), and constrained re-searches that ban one or two
//     interior cells sampled at spaced intervals along known routes.
//   - Every candidate is re-measured by a dedicated traversal pass that
//     adds downhill momentum, uphill resistance, and auto-assist segment
//     counts on top of the shared par metrics; strokes then subtract a
//     capped momentum discount and, past either momentum trigger, a flat
//     bonus, floored at Config.StrokeFloor.
//   - Two candidates are the same route when their cell overlap (relative
//     to the shorter path) reaches 0.6; the lower-stroke variant wins
//     unless their slope-assist profiles differ materially (momentum gap
//     ≥ 0.6 or assist-segment gap ≥ 2), in which case both survive as
//     distinct play styles.
//   - Results sort ascending by strokes (path length breaks ties) and are
//     truncated to K; the suggestion's par is the best candidate's, or the
//     single-path fallback when nothing is reachable.
//
// Why:
//
//   - A hole's difficulty is not one number: a tight corridor and a long
//     downhill sweep can both reach the cup in three strokes. Surfacing
//     the distinct routes lets the author judge the hole as played.
//
// Bounded work:
//
//   - Detour generation recurses at most 2 levels deep, samples a fixed
//     number of interior cells per path, and stops growing the pool at a
//     fixed size, so worst-case runtime is independent of geometry
//     complexity (the property keeping re-evaluation interactive).
//
// Errors:
//
//   - ErrBadK: K < 1.
//   - par.ErrNilLevel and coursegrid.ErrBadCellSize propagate.
//
// Determinism: fixed sampling positions, fixed neighbor order, stable
// sorting; identical inputs yield identical suggestions.
package kbest

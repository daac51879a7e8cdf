// Package coursegrid rasterizes hand-authored course geometry into an
// immutable traversability grid, the substrate every other fairway
// analysis consumes.
//
// What:
//
//   - Level bundles a tee, a cup, and optional shape collections per
//     terrain class: solid obstacles, water, sand, slope fields ("hills"),
//     bridges, and circular posts.
//   - Build samples the center of every grid cell and classifies it with a
//     fixed precedence: solid/water/post blocking, then bridge un-blocking,
//     then sand cost elevation, then slope-field accumulation.
//   - Grid is a flat row-major array of Cells with O(1) index math,
//     clamped world↔cell conversion, and a blocked-neighbor counter used
//     as the corridor-contact primitive.
//
// Why:
//
//   - The analysis core re-evaluates on every geometry edit; a single
//     uniform rasterization pass keeps that cheap and deterministic.
//
// Classification precedence (per cell center):
//
//  1. Blocked when inside any obstacle or water shape, or within
//     post radius + clearance of a post (clearance = max(6, round(0.4·cell))).
//  2. Bridges un-block: a blocked center inside a bridge rect is passable.
//  3. Sand (first matching shape wins) raises cost to 3 and sets the flag.
//  4. Overlapping slope fields contribute direction vectors scaled by their
//     clamped strength; the sum is renormalized, strength capped at 1.5,
//     and a cell still at minimum cost is bumped to 1.25.
//
// Degenerate inputs:
//
//   - Grid dimensions are ceil(w/cell) × ceil(h/cell), each floored to 1,
//     so a zero-area fairway or an oversized cell never fails.
//   - Missing shape collections are empty, never an error.
//   - The only rejected input is a non-positive cell size (ErrBadCellSize).
//
// Complexity:
//
//   - Build: O(W×H×S) where S is the total shape count. Memory: O(W×H).
package coursegrid

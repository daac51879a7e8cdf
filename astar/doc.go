// Package astar finds minimum-cost 8-connected routes across a coursegrid
// with terrain- and slope-aware step weights.
//
// What:
//
//   - Search computes one lowest-cost path between two cells using A* with
//     the octile-distance heuristic (admissible because the minimum cell
//     cost is 1).
//   - Orthogonal steps weigh 1, diagonal steps √2, each multiplied by the
//     average terrain cost of the two endpoint cells.
//   - Diagonal moves are rejected when either flanking orthogonal neighbor
//     is blocked, so routes never cut through a wall corner.
//   - Slope fields modulate the search priority only: moving uphill costs
//     up to 1.6× more, downhill down to 0.75×. The reported Result.Cost is
//     recomputed over the final path from raw terrain cost alone, so the
//     published length reflects terrain difficulty rather than the slope
//     bias steering the search.
//   - WithBannedCells forbids routing through specific cells: a banned cell
//     is skipped whenever it is popped for expansion.
//
// Why:
//
//   - Par estimation, route diversification, and cup placement all reduce
//     to "cheapest route between two cells on this grid"; one search with
//     constraint hooks serves them all.
//
// Determinism:
//
//   - The open set is a binary min-heap (container/heap) with
//     first-inserted-wins tie-breaking on equal priority via a sequence
//     number, and neighbors expand in a fixed clockwise order. Identical
//     inputs always yield the identical path. A linear-scan open set would
//     behave the same on editor-sized grids; the heap keeps large grids
//     fast without changing results.
//
// Errors:
//
//   - ErrNilGrid: a nil *coursegrid.Grid was supplied.
//   - An unreachable goal is NOT an error: Result.Found is false.
//
// Complexity:
//
//   - Time: O(N log N) with N = W×H cells (lazy decrease-key pushes).
//   - Memory: O(N).
package astar

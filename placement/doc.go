// Package placement scans a rasterized course for viable alternate cup
// positions and lints the current cup for suspiciously easy routes.
//
// What:
//
//   - SuggestGoals builds the grid once, then searches tee→cell for every
//     unblocked cell that sits outside the edge margin and far enough from
//     the tee (a quarter of the fairway's larger dimension). Cells whose
//     route is unreachable, too straight for the configured turn minimum,
//     or outside an optional containment region are rejected. Survivors
//     score by length + turns·2·cellSize + corridorSum·bankWeight, sort
//     descending, and are kept greedily at ≥ 6·cellSize separation.
//   - LintGoal searches tee→cup and returns independent warnings: exactly
//     one when the cup is unreachable; "path appears to bypass obstacles"
//     when obstacles exist yet the route is near-straight, near-turnless
//     and hugs nothing; "cup very close to fairway edge" when the cup sits
//     within max(2·cellSize, 20) of the boundary.
//
// Why:
//
//   - A cup the search reaches in a straight, uncontested line makes a
//     trivial hole; surfacing better placements and flagging weak ones
//     keeps authored levels interesting without manual playtesting.
//
// Errors:
//
//   - par.ErrNilLevel, ErrBadCount; coursegrid.ErrBadCellSize propagates.
//
// Complexity:
//
//   - SuggestGoals: one search per eligible cell, O(W×H · N log N) worst
//     case; the edge margin and tee-distance floor prune most cells on
//     editor-sized grids.
//   - LintGoal: one build plus one search.
package placement

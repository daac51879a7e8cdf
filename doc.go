// Package fairway is a deterministic difficulty-analysis engine for
// hand-authored 2D course geometry — the numbers behind a miniature-golf
// level editor.
//
// 🚀 What is fairway?
//
//	A pure, dependency-light library that turns authored terrain into
//	playable insight:
//		• Rasterization: obstacles, water, sand, hills, bridges and posts
//		  become a traversability grid (coursegrid)
//		• Routing: weighted A* with slope-aware priorities and strict
//		  anti-corner-cutting (astar)
//		• Par estimation: friction-scaled stroke counts bounded to [2,7] (par)
//		• Route diversity: K materially different ways to play a hole (kbest)
//		• Placement tooling: better cup positions and too-easy-hole linting
//		  (placement)
//
// ✨ Why choose fairway?
//
//   - Deterministic – identical inputs always produce identical outputs
//   - Interactive – every analysis is a bounded pure function, cheap enough
//     to re-run on each edit
//   - Honest failure – an unreachable cup is a result with a fallback
//     estimate, never an exception
//   - Pure Go – no cgo, no rendering, no I/O
//
// Package layout:
//
//	geom/       — points, rects, polygons, circles, tagged Shape containment
//	coursegrid/ — level model and terrain rasterization
//	astar/      — weighted 8-connected search with constraint hooks
//	par/        — configuration home and single-path stroke estimator
//	kbest/      — bounded K-best route diversifier with slope momentum
//	placement/  — cup candidate scanning and goal linting
//
// Quick ASCII example:
//
//	tee ●───────▒▒▒───────○ cup        ▒ sand: cost 3
//	        ░░░░░░░                    ░ hill: slope-biased search
//
// Start with par.EstimatePar for the one-call analysis, or compose the lower
// layers directly for custom tooling.
package fairway

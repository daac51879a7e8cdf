// Package geom provides the 2D primitives shared by every terrain
// classification step in fairway: points, rectangles, polygons, circles,
// and a tagged-variant Shape with a single containment dispatch.
//
// What:
//
//   - Point, Rect, Polygon, Circle value types in a shared pixel space.
//   - Shape: a tagged union (KindRect | KindPolygon | KindCircle) with one
//     Contains(Point) method, so obstacle, water and sand handling can never
//     diverge in their containment rules.
//   - Small vector helpers (Add, Sub, Scale, Dot, Len, Normalize, Dist)
//     used by the slope-field math in coursegrid and astar.
//
// Why:
//
//   - Rasterization classifies every grid cell against many shapes; a single
//     shared predicate keeps the rules identical across terrain classes.
//
// Containment rules:
//
//   - Rect: closed on all edges (boundary points are inside).
//   - Polygon: ray-casting even-odd rule; the ring is treated as closed even
//     when the last vertex does not repeat the first. Fewer than 3 vertices
//     never contains anything.
//   - Circle: closed disk (distance ≤ radius).
//
// Complexity:
//
//   - Rect/Circle containment: O(1).
//   - Polygon containment: O(n) in the vertex count.
package geom

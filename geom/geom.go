package geom

import "math"

// Point is a location in the shared 2D pixel coordinate space.
type Point struct {
	X, Y float64
}

// Add returns p + q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p − q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Scale returns p scaled by s.
func (p Point) Scale(s float64) Point { return Point{p.X * s, p.Y * s} }

// Dot returns the dot product p·q.
func (p Point) Dot(q Point) float64 { return p.X*q.X + p.Y*q.Y }

// Len returns the Euclidean length of p treated as a vector.
func (p Point) Len() float64 { return math.Hypot(p.X, p.Y) }

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 { return p.Sub(q).Len() }

// Normalize returns p scaled to unit length, or the zero vector when
// p has (near-)zero length.
func (p Point) Normalize() Point {
	l := p.Len()
	if l < 1e-12 {
		return Point{}
	}
	return Point{p.X / l, p.Y / l}
}

// Rect is an axis-aligned rectangle: origin (X,Y) plus extents (W,H).
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether p lies inside r, boundary included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// Polygon is an ordered ring of vertices. The ring is treated as closed:
// an edge from the last vertex back to the first is always implied.
type Polygon []Point

// Contains reports whether p lies inside the polygon under the even-odd
// (ray-casting) rule. Polygons with fewer than 3 vertices never contain
// any point.
func (pg Polygon) Contains(p Point) bool {
	n := len(pg)
	if n < 3 {
		return false
	}
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		vi, vj := pg[i], pg[j]
		// Edge (vj→vi) crosses the horizontal ray from p?
		if (vi.Y > p.Y) != (vj.Y > p.Y) &&
			p.X < (vj.X-vi.X)*(p.Y-vi.Y)/(vj.Y-vi.Y)+vi.X {
			inside = !inside
		}
	}
	return inside
}

// Circle is a closed disk with center (X,Y) and radius R.
type Circle struct {
	X, Y, R float64
}

// Contains reports whether p lies inside the circle, boundary included.
func (c Circle) Contains(p Point) bool {
	dx, dy := p.X-c.X, p.Y-c.Y
	return dx*dx+dy*dy <= c.R*c.R
}

// Center returns the circle's center point.
func (c Circle) Center() Point { return Point{c.X, c.Y} }

package geom

// Kind discriminates the variants of Shape.
type Kind int

const (
	// KindRect marks a Shape holding an axis-aligned rectangle.
	KindRect Kind = iota
	// KindPolygon marks a Shape holding a closed polygon ring.
	KindPolygon
	// KindCircle marks a Shape holding a closed disk.
	KindCircle
)

// Shape is a tagged variant over the three primitive shapes. Every terrain
// classification step dispatches containment through Shape.Contains, so the
// rules for obstacles, water and sand can never drift apart.
//
// A Shape is immutable once constructed; construct via RectShape,
// PolygonShape or CircleShape.
type Shape struct {
	kind Kind
	rect Rect
	poly Polygon
	circ Circle
}

// RectShape wraps r as a Shape.
func RectShape(r Rect) Shape { return Shape{kind: KindRect, rect: r} }

// PolygonShape wraps a copy of ring as a Shape. The input slice is copied
// so later caller mutation cannot leak into the Shape.
func PolygonShape(ring Polygon) Shape {
	cp := make(Polygon, len(ring))
	copy(cp, ring)
	return Shape{kind: KindPolygon, poly: cp}
}

// CircleShape wraps c as a Shape.
func CircleShape(c Circle) Shape { return Shape{kind: KindCircle, circ: c} }

// Kind returns the variant tag of s.
func (s Shape) Kind() Kind { return s.kind }

// Contains dispatches the containment test on the variant tag.
// Degenerate polygons (<3 vertices) never contain any point.
// Complexity: O(1) for rect/circle, O(n) for polygon.
func (s Shape) Contains(p Point) bool {
	switch s.kind {
	case KindRect:
		return s.rect.Contains(p)
	case KindPolygon:
		return s.poly.Contains(p)
	case KindCircle:
		return s.circ.Contains(p)
	default:
		return false
	}
}

// AnyContains reports whether any shape in shapes contains p.
// Complexity: O(Σ shape cost); short-circuits on the first hit.
func AnyContains(shapes []Shape, p Point) bool {
	for _, s := range shapes {
		if s.Contains(p) {
			return true
		}
	}
	return false
}

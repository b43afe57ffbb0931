package advanced

import "github.com/pkg/errors"

type Polygon struct {
	Points []Point
}

// Twice the signed area, positive for counterclockwise polygons.
func (poly Polygon) SignedArea() float64 {
	var sum float64
	for i, p := range poly.Points {
		q := poly.Points[CircularIndex(i+1, len(poly.Points))]
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum
}

func (poly Polygon) IsCCW() bool {
	return poly.SignedArea() > 0
}

func (poly Polygon) Reverse() Polygon {
	newPoly := Polygon{}
	for i := len(poly.Points) - 1; i >= 0; i-- {
		newPoly.Points = append(newPoly.Points, poly.Points[i])
	}
	return newPoly
}

// Even-odd point-in-polygon. Output is not defined for points exactly on the
// boundary.
func (poly Polygon) ContainsPointByEvenOdd(p Point) bool {
	return poly.CrossingCount(p)%2 == 1
}

// Count the edges crossed by a ray cast from p in the +X direction.
func (poly Polygon) CrossingCount(p Point) int {
	crossingCount := 0
	for i, vertex := range poly.Points {
		nextVertex := poly.Points[CircularIndex(i+1, len(poly.Points))]
		if (vertex.Y > p.Y) == (nextVertex.Y > p.Y) {
			continue
		}
		x := vertex.X + (p.Y-vertex.Y)*(nextVertex.X-vertex.X)/(nextVertex.Y-vertex.Y)
		if x > p.X {
			crossingCount++
		}
	}
	return crossingCount
}

// Is the polygon free of self-intersections? Edges may not cross, a vertex may
// not touch an edge other than its own two, and neighboring edges may not fold
// back over each other.
func (poly Polygon) IsSimple() bool {
	n := len(poly.Points)
	for i := 0; i < n; i++ {
		a, b := poly.Points[i], poly.Points[CircularIndex(i+1, n)]
		for j := i + 1; j < n; j++ {
			c, d := poly.Points[j], poly.Points[CircularIndex(j+1, n)]
			var bad bool
			switch {
			case j == i+1:
				bad = foldsBack(a, b, d)
			case i == 0 && j == n-1:
				bad = foldsBack(c, a, b)
			default:
				bad = edgesTouch(a, b, c, d)
			}
			if bad {
				return false
			}
		}
	}
	return true
}

// Do the closed segments ab and cd share any point?
func edgesTouch(a, b, c, d Point) bool {
	return SegmentsIntersect(a, b, c, d) ||
		onSegment(a, c, d) || onSegment(b, c, d) ||
		onSegment(c, a, b) || onSegment(d, a, b)
}

// Do the consecutive edges ab and bc overlap beyond their shared point b?
func foldsBack(a, b, c Point) bool {
	return onSegment(c, a, b) || onSegment(a, b, c)
}

// Incrementally collects a simple polygon inside an outer triangle, one point
// at a time, the way an interactive editor would. Every rejected point or
// close leaves the builder untouched.
type PolygonBuilder struct {
	outer  [3]Point
	points []Point
	closed bool
}

func NewPolygonBuilder(outer [3]Point) *PolygonBuilder {
	return &PolygonBuilder{outer: counterclockwise(outer)}
}

// Append a point. The new edge from the previous point may not cross or touch
// any edge already placed, and the point itself must be new.
func (b *PolygonBuilder) Add(p Point) error {
	if b.closed {
		return ErrPolygonClosed
	}
	if !PointInTriangle(p, b.outer[0], b.outer[1], b.outer[2]) {
		return errors.Wrapf(ErrOutOfBounds, "point %v", p)
	}
	for i, q := range b.points {
		if q == p {
			return errors.Wrapf(ErrSelfIntersectingInput, "point %v is already point %d", p, i)
		}
	}
	if len(b.points) > 0 {
		last := b.points[len(b.points)-1]
		if b.touchesExisting(last, p) {
			return errors.Wrapf(ErrSelfIntersectingInput, "edge %v-%v", last, p)
		}
	}
	b.points = append(b.points, p)
	return nil
}

// Close the polygon with an edge from the last point back to the first.
func (b *PolygonBuilder) Close() (Polygon, error) {
	if b.closed {
		return Polygon{}, ErrPolygonClosed
	}
	if len(b.points) < 3 {
		return Polygon{}, errors.Wrapf(ErrTooFewPoints, "have %d", len(b.points))
	}
	first, last := b.points[0], b.points[len(b.points)-1]
	if b.touchesExisting(last, first) {
		return Polygon{}, errors.Wrapf(ErrSelfIntersectingInput, "closing edge %v-%v", last, first)
	}
	b.closed = true
	return b.Polygon(), nil
}

// The points collected so far.
func (b *PolygonBuilder) Polygon() Polygon {
	points := make([]Point, len(b.points))
	copy(points, b.points)
	return Polygon{Points: points}
}

func (b *PolygonBuilder) Len() int {
	return len(b.points)
}

// Check a new edge pq, where p is the last point placed. The edge ending at p,
// and the first edge when q closes the polygon, only need to not fold back.
func (b *PolygonBuilder) touchesExisting(p, q Point) bool {
	for i := 1; i < len(b.points); i++ {
		c, d := b.points[i-1], b.points[i]
		var bad bool
		switch {
		case d == p:
			bad = foldsBack(c, p, q)
		case c == q:
			bad = foldsBack(p, q, d)
		default:
			bad = edgesTouch(p, q, c, d)
		}
		if bad {
			return true
		}
	}
	return false
}

func counterclockwise(t [3]Point) [3]Point {
	if Orientation(t[0], t[1], t[2]) < 0 {
		t[1], t[2] = t[2], t[1]
	}
	return t
}

package advanced

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Geometric predicates used by the planar graph and the locator. All of them
// are plain sign tests on float64 orientation values; there is no epsilon
// fudging, so points exactly on an edge are reported consistently as "on",
// which the strict predicates treat as outside.

func (p Point) Vec() r2.Vec {
	return r2.Vec{X: p.X, Y: p.Y}
}

func pointFromVec(v r2.Vec) Point {
	return Point{X: v.X, Y: v.Y}
}

// Twice the signed area of triangle abc. Positive means the turn a→b→c is
// counterclockwise.
func Orientation(a, b, c Point) float64 {
	return r2.Cross(r2.Sub(b.Vec(), a.Vec()), r2.Sub(c.Vec(), a.Vec()))
}

// Is p strictly inside the counterclockwise triangle abc? Points on an edge or
// a vertex are outside.
func PointInTriangle(p, a, b, c Point) bool {
	return Orientation(a, b, p) > 0 && Orientation(b, c, p) > 0 && Orientation(c, a, p) > 0
}

// Like PointInTriangle, but points on the boundary count as inside.
func PointInClosedTriangle(p, a, b, c Point) bool {
	return Orientation(a, b, p) >= 0 && Orientation(b, c, p) >= 0 && Orientation(c, a, p) >= 0
}

// Do the open segments ab and cd properly cross? Each segment's endpoints must
// lie strictly on opposite sides of the other. Collinear overlap and touching
// at an endpoint are not crossings.
func SegmentsIntersect(a, b, c, d Point) bool {
	return oppositeSides(Orientation(a, b, c), Orientation(a, b, d)) &&
		oppositeSides(Orientation(c, d, a), Orientation(c, d, b))
}

func oppositeSides(o1, o2 float64) bool {
	return (o1 > 0 && o2 < 0) || (o1 < 0 && o2 > 0)
}

// Does any edge of t1 properly cross an edge of t2, or does any corner of one
// lie strictly inside the other? Both triangles must be counterclockwise.
func TrianglesIntersect(t1, t2 [3]Point) bool {
	for i := 0; i < 3; i++ {
		a, b := t1[i], t1[(i+1)%3]
		for j := 0; j < 3; j++ {
			c, d := t2[j], t2[(j+1)%3]
			if SegmentsIntersect(a, b, c, d) {
				return true
			}
		}
		if PointInTriangle(t1[i], t2[0], t2[1], t2[2]) || PointInTriangle(t2[i], t1[0], t1[1], t1[2]) {
			return true
		}
	}
	return false
}

// TrianglesIntersect misses one configuration that vertex removal produces
// regularly: a triangle nested inside another while sharing part of its
// boundary. This happens whenever the removed vertex lands exactly on a
// diagonal of the re-triangulated hole:
/*
	a-------b
	|\  O  /|
	| \   / |
	|   v   |    O = (a, v, b) lies inside T = (a, d, b), because v is on
	|    \  |    the new diagonal ad
	|     \ |
	c-------d
*/
// No edges properly cross and no corner is strictly inside, but the interiors
// overlap. A nested triangle always has its centroid strictly inside the other,
// so checking centroids covers it.
func TrianglesOverlap(t1, t2 [3]Point) bool {
	if TrianglesIntersect(t1, t2) {
		return true
	}
	c1 := Centroid(t1)
	c2 := Centroid(t2)
	return PointInTriangle(c1, t2[0], t2[1], t2[2]) || PointInTriangle(c2, t1[0], t1[1], t1[2])
}

func Centroid(t [3]Point) Point {
	sum := r2.Add(r2.Add(t[0].Vec(), t[1].Vec()), t[2].Vec())
	return pointFromVec(r2.Scale(1.0/3, sum))
}

// Unsigned area of the triangle.
func TriangleArea(t [3]Point) float64 {
	return math.Abs(Orientation(t[0], t[1], t[2])) / 2
}

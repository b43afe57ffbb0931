// Planar point location with Kirkpatrick's triangulation hierarchy.
//
// Given a simple polygon inside a fixed outer triangle, this package builds a
// sequence of progressively coarser triangulations, linked by a DAG, and
// answers "which triangle contains this point?" by walking the DAG down from
// the single coarsest triangle. Queries take O(log n) steps.
//
// The machinery lives in the advanced package, which also exposes the
// step-wise builder and locator.
package kirkpatrick

import "github.com/osuushi/kirkpatrick/advanced"

type Point = advanced.Point
type Polygon = advanced.Polygon
type VertexID = advanced.VertexID
type TriangleID = advanced.TriangleID
type Hierarchy = advanced.Hierarchy
type Option = advanced.Option

var (
	DefaultOuterTriangle = advanced.DefaultOuterTriangle
	CanvasOuterTriangle  = advanced.CanvasOuterTriangle

	ErrOutOfBounds           = advanced.ErrOutOfBounds
	ErrSelfIntersectingInput = advanced.ErrSelfIntersectingInput
	ErrTooFewPoints          = advanced.ErrTooFewPoints
	ErrNotBuilt              = advanced.ErrNotBuilt
)

var (
	WithOuterTriangle = advanced.WithOuterTriangle
	WithMaxDegree     = advanced.WithMaxDegree
	WithTriangulator  = advanced.WithTriangulator
	WithLogger        = advanced.WithLogger
)

// Build a fully reduced hierarchy for a simple polygon, given in either
// winding. Every point must be strictly inside the outer triangle.
func Build(points []Point, opts ...Option) (*Hierarchy, error) {
	h, err := advanced.NewHierarchy(points, opts...)
	if err != nil {
		return nil, err
	}
	if err := h.Build(); err != nil {
		return nil, err
	}
	return h, nil
}

// Build a hierarchy and locate a single point in it.
func Locate(points []Point, p Point, opts ...Option) (TriangleID, error) {
	h, err := Build(points, opts...)
	if err != nil {
		return 0, err
	}
	return h.Locate(p)
}

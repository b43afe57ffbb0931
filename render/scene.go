// Debug drawings of a hierarchy level, as PNG, SVG, or inline in an iTerm
// compatible terminal.
package render

import (
	"math"

	"github.com/osuushi/kirkpatrick/advanced"
	"github.com/pkg/errors"
)

const (
	DefaultSize    = 600
	DefaultPadding = 20
)

type Options struct {
	// The level to draw. Level 0 is the finest.
	Level int
	// Length of the longer side of the image, in pixels
	Size float64
	// Pixels around the drawn area
	Padding float64
	// Fit the view to the whole outer triangle instead of the polygon.
	// Triangles reaching outside the view are clipped.
	FitOuter bool
	// Mark a query point, and the triangle the descent visits on this level
	Query *advanced.Point
	// Label each triangle with its id
	Labels bool
}

// Everything needed to draw one level, already transformed into image space
// (origin at the top left, Y down).
type scene struct {
	width, height float64
	triangles     []sceneTriangle
	boundary      []advanced.Point
	query         *advanced.Point
}

type sceneTriangle struct {
	id          advanced.TriangleID
	corners     [3]advanced.Point
	inner       bool
	highlighted bool
}

func newScene(h *advanced.Hierarchy, opts Options) (*scene, error) {
	g := h.Graph()
	if opts.Level < 0 || opts.Level >= g.LevelCount() {
		return nil, errors.Errorf("level %d out of range, hierarchy has %d levels", opts.Level, g.LevelCount())
	}
	if opts.Size <= 0 {
		opts.Size = DefaultSize
	}
	if opts.Padding == 0 {
		opts.Padding = DefaultPadding
	}
	if opts.Padding < 0 || 2*opts.Padding >= opts.Size {
		return nil, errors.Errorf("padding %g does not fit in size %g", opts.Padding, opts.Size)
	}

	var fit []advanced.Point
	for _, v := range h.Boundary() {
		fit = append(fit, g.Point(v))
	}
	if opts.FitOuter {
		outer := h.OuterTriangle()
		fit = outer[:]
	}
	if opts.Query != nil {
		fit = append(fit, *opts.Query)
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range fit {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	extent := math.Max(maxX-minX, maxY-minY)
	if extent == 0 {
		extent = 1
	}
	scale := (opts.Size - 2*opts.Padding) / extent

	s := &scene{
		width:  math.Round(scale*(maxX-minX) + 2*opts.Padding),
		height: math.Round(scale*(maxY-minY) + 2*opts.Padding),
	}
	// Flip so the origin is at the bottom left
	transform := func(p advanced.Point) advanced.Point {
		return advanced.Point{
			X: opts.Padding + (p.X-minX)*scale,
			Y: s.height - opts.Padding - (p.Y-minY)*scale,
		}
	}

	highlighted := make(advanced.TriangleSet)
	if opts.Query != nil {
		d, err := h.Begin(*opts.Query)
		if err != nil {
			return nil, err
		}
		for d.State == advanced.Descending {
			d = h.Advance(d)
		}
		for _, t := range d.Path {
			highlighted.Add(t)
		}
		q := transform(*opts.Query)
		s.query = &q
	}

	for _, t := range g.Level(opts.Level) {
		points := g.TrianglePoints(t)
		s.triangles = append(s.triangles, sceneTriangle{
			id:          t,
			corners:     [3]advanced.Point{transform(points[0]), transform(points[1]), transform(points[2])},
			inner:       h.IsInner(t),
			highlighted: highlighted.Contains(t),
		})
	}
	for _, v := range h.Boundary() {
		s.boundary = append(s.boundary, transform(g.Point(v)))
	}
	return s, nil
}

func (t sceneTriangle) center() advanced.Point {
	return advanced.Centroid(t.corners)
}

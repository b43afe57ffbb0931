package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo/float"
	"github.com/osuushi/kirkpatrick/advanced"
)

func SVG(h *advanced.Hierarchy, opts Options, w io.Writer) error {
	s, err := newScene(h, opts)
	if err != nil {
		return err
	}

	canvas := svg.New(w)
	canvas.Start(s.width, s.height)
	canvas.Title(fmt.Sprintf("%s level %d", h.Name(), opts.Level))
	canvas.Rect(0, 0, s.width, s.height, "fill:black")

	canvas.Gstyle("stroke:cyan;stroke-width:1")
	for _, t := range s.triangles {
		fill := "none"
		switch {
		case t.highlighted:
			fill = "orange"
		case t.inner:
			fill = "green"
		}
		xs := []float64{t.corners[0].X, t.corners[1].X, t.corners[2].X}
		ys := []float64{t.corners[0].Y, t.corners[1].Y, t.corners[2].Y}
		canvas.Polygon(xs, ys, fmt.Sprintf(`id="t%d"`, t.id), "fill:"+fill)
	}
	canvas.Gend()

	xs := make([]float64, len(s.boundary))
	ys := make([]float64, len(s.boundary))
	for i, p := range s.boundary {
		xs[i], ys[i] = p.X, p.Y
	}
	canvas.Polygon(xs, ys, "fill:none;stroke:white;stroke-width:2")

	if opts.Labels {
		canvas.Gstyle("fill:white;font-size:10px;text-anchor:middle")
		for _, t := range s.triangles {
			center := t.center()
			canvas.Text(center.X, center.Y, fmt.Sprint(t.id))
		}
		canvas.Gend()
	}

	if s.query != nil {
		canvas.Circle(s.query.X, s.query.Y, 4, "fill:red")
	}
	canvas.End()
	return nil
}

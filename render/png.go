package render

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/kirkpatrick/advanced"
	"github.com/pkg/errors"
)

// Draw a level of the hierarchy.
func Image(h *advanced.Hierarchy, opts Options) (image.Image, error) {
	s, err := newScene(h, opts)
	if err != nil {
		return nil, err
	}
	return s.draw(opts).Image(), nil
}

func PNG(h *advanced.Hierarchy, opts Options, w io.Writer) error {
	s, err := newScene(h, opts)
	if err != nil {
		return err
	}
	return s.draw(opts).EncodePNG(w)
}

// Print a level of the hierarchy in the terminal (iTerm only).
func Imgcat(h *advanced.Hierarchy, opts Options, w io.Writer) error {
	img, err := Image(h, opts)
	if err != nil {
		return err
	}
	return imgcat.CatImage(img, w)
}

// Write a level of the hierarchy to a .png or .svg file.
func WriteFile(h *advanced.Hierarchy, opts Options, path string) error {
	var write func(*advanced.Hierarchy, Options, io.Writer) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		write = PNG
	case ".svg":
		write = SVG
	default:
		return errors.Errorf("cannot render to %q, expected a .png or .svg file", path)
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(h, opts, file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func (s *scene) draw(opts Options) *gg.Context {
	c := gg.NewContext(int(s.width), int(s.height))
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, s.width, s.height)
	c.Fill()

	c.SetLineWidth(1)
	for _, t := range s.triangles {
		c.MoveTo(t.corners[0].X, t.corners[0].Y)
		c.LineTo(t.corners[1].X, t.corners[1].Y)
		c.LineTo(t.corners[2].X, t.corners[2].Y)
		c.ClosePath()
		switch {
		case t.highlighted:
			c.SetRGB(1, 0.5, 0)
			c.FillPreserve()
		case t.inner:
			c.SetRGB(0, 0.5, 0)
			c.FillPreserve()
		}
		c.SetRGB(0, 1, 1)
		c.Stroke()
	}

	// Polygon outline on top
	c.SetLineWidth(2)
	c.SetRGB(1, 1, 1)
	for i, p := range s.boundary {
		if i == 0 {
			c.MoveTo(p.X, p.Y)
		} else {
			c.LineTo(p.X, p.Y)
		}
	}
	c.ClosePath()
	c.Stroke()

	if opts.Labels {
		c.SetRGB(1, 1, 1)
		for _, t := range s.triangles {
			center := t.center()
			c.DrawStringAnchored(fmt.Sprint(t.id), center.X, center.Y, 0.5, 0.5)
		}
	}

	if s.query != nil {
		c.SetRGB(1, 0, 0)
		c.DrawCircle(s.query.X, s.query.Y, 4)
		c.Fill()
	}
	return c
}

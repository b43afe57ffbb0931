package polyio

import (
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/kirkpatrick/advanced"
	"github.com/pkg/errors"
)

// Read every <polygon> element in an SVG document, in document order. Only the
// points attribute is used; transforms and styles are ignored.
func ReadSVG(in io.Reader) ([][]advanced.Point, error) {
	rootEl, err := svgparser.Parse(in, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	var polygons [][]advanced.Point
	for i, polygonEl := range rootEl.FindAll("polygon") {
		points, err := ParsePoints(polygonEl.Attributes["points"])
		if err != nil {
			return nil, errors.Wrapf(err, "polygon %d", i)
		}
		polygons = append(polygons, points)
	}
	if len(polygons) == 0 {
		return nil, errors.New("no polygons found")
	}
	return polygons, nil
}

// Parse an SVG points list. Coordinates may be separated by commas, whitespace
// or both, so "1,2 3,4" and "1 2 3 4" are the same list.
func ParsePoints(s string) ([]advanced.Point, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates in %q", s)
	}
	points := make([]advanced.Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid x value %q", fields[i])
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid y value %q", fields[i+1])
		}
		points = append(points, advanced.Point{X: x, Y: y})
	}
	return points, nil
}

// Read polygons in the named format, "text" or "svg".
func Read(in io.Reader, format string) ([][]advanced.Point, error) {
	switch format {
	case "text":
		return ReadText(in)
	case "svg":
		return ReadSVG(in)
	}
	return nil, errors.Errorf("unknown input format %q", format)
}

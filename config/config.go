// YAML configuration for building hierarchies.
package config

import (
	"io"
	"os"

	"github.com/osuushi/kirkpatrick/advanced"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Config struct {
	// Three [x, y] pairs
	OuterTriangle [][]float64 `yaml:"outer_triangle"`
	MaxDegree     int         `yaml:"max_degree"`
	// auto, earcut or clip
	Triangulator string `yaml:"triangulator"`
	// Input format: text or svg
	Format string `yaml:"format"`
}

func Default() Config {
	outer := advanced.DefaultOuterTriangle
	return Config{
		OuterTriangle: [][]float64{
			{outer[0].X, outer[0].Y},
			{outer[1].X, outer[1].Y},
			{outer[2].X, outer[2].Y},
		},
		MaxDegree:    advanced.DefaultMaxDegree,
		Triangulator: "auto",
		Format:       "text",
	}
}

// Read a config file. Keys missing from the file keep their default values.
func Load(path string) (Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "opening config")
	}
	defer file.Close()
	c, err := Parse(file)
	if err != nil {
		return Config{}, errors.Wrapf(err, "config %s", path)
	}
	return c, nil
}

func Parse(in io.Reader) (Config, error) {
	c := Default()
	decoder := yaml.NewDecoder(in)
	decoder.KnownFields(true)
	if err := decoder.Decode(&c); err != nil && err != io.EOF {
		return Config{}, errors.Wrap(err, "decoding yaml")
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Validate() error {
	outer, err := c.Outer()
	if err != nil {
		return err
	}
	if advanced.Orientation(outer[0], outer[1], outer[2]) == 0 {
		return errors.Errorf("outer_triangle %v is degenerate", c.OuterTriangle)
	}
	if c.MaxDegree < 3 {
		return errors.Errorf("max_degree must be at least 3, got %d", c.MaxDegree)
	}
	if _, err := TriangulatorByName(c.Triangulator); err != nil {
		return err
	}
	switch c.Format {
	case "text", "svg":
	default:
		return errors.Errorf("format must be text or svg, got %q", c.Format)
	}
	return nil
}

func (c Config) Outer() ([3]advanced.Point, error) {
	var outer [3]advanced.Point
	if len(c.OuterTriangle) != 3 {
		return outer, errors.Errorf("outer_triangle needs 3 points, got %d", len(c.OuterTriangle))
	}
	for i, pair := range c.OuterTriangle {
		if len(pair) != 2 {
			return outer, errors.Errorf("outer_triangle point %d needs 2 coordinates, got %d", i, len(pair))
		}
		outer[i] = advanced.Point{X: pair[0], Y: pair[1]}
	}
	return outer, nil
}

func TriangulatorByName(name string) (advanced.Triangulator, error) {
	switch name {
	case "auto", "":
		return advanced.DefaultTriangulator(), nil
	case "earcut":
		return advanced.Earcut{}, nil
	case "clip":
		return advanced.EarClipper{}, nil
	}
	return nil, errors.Errorf("triangulator must be auto, earcut or clip, got %q", name)
}

// Hierarchy options for this config.
func (c Config) Options() ([]advanced.Option, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	outer, _ := c.Outer()
	triangulator, _ := TriangulatorByName(c.Triangulator)
	return []advanced.Option{
		advanced.WithOuterTriangle(outer),
		advanced.WithMaxDegree(c.MaxDegree),
		advanced.WithTriangulator(triangulator),
	}, nil
}

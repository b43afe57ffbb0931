package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/kirkpatrick/advanced"
	"github.com/osuushi/kirkpatrick/config"
	"github.com/osuushi/kirkpatrick/polyio"
	"github.com/osuushi/kirkpatrick/render"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Build point location hierarchies from the command line. Input is a polygon,
// either as newline separated "x y" points, or as an SVG file with a <polygon>
// element. If the input holds more than one polygon, only the first is used.
var (
	app        = kingpin.New("kirkpatrick", "Kirkpatrick point location over a simple polygon.")
	verbose    = app.Flag("verbose", "Trace hierarchy construction and queries.").Short('v').Bool()
	configPath = app.Flag("config", "YAML config file.").Short('c').ExistingFile()
	format     = app.Flag("format", "Input format, overriding the config.").Enum("text", "svg")

	buildCmd   = app.Command("build", "Build a hierarchy and summarize its levels.")
	buildInput = buildCmd.Arg("input", "Polygon file (default stdin).").String()

	locateCmd    = app.Command("locate", "Locate points in a polygon's hierarchy.")
	locateTrace  = locateCmd.Flag("trace", "Print every step of each descent.").Bool()
	locateInput  = locateCmd.Flag("input", "Polygon file (default stdin).").Short('i').String()
	locatePoints = locateCmd.Arg("points", "Query points, as X,Y.").Required().Strings()

	renderCmd      = app.Command("render", "Draw a level of a polygon's hierarchy.")
	renderInput    = renderCmd.Flag("input", "Polygon file (default stdin).").Short('i').String()
	renderOut      = renderCmd.Flag("out", "Output .png or .svg file.").Short('o').String()
	renderLevel    = renderCmd.Flag("level", "Level to draw, 0 being the finest.").Default("0").Int()
	renderLocate   = renderCmd.Flag("locate", "Mark the descent of a query point, as X,Y.").String()
	renderImgcat   = renderCmd.Flag("imgcat", "Also print the image in the terminal (iTerm only).").Bool()
	renderLabels   = renderCmd.Flag("labels", "Label triangles with their ids.").Bool()
	renderFitOuter = renderCmd.Flag("fit-outer", "Fit the view to the outer triangle.").Bool()
)

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))
	logger := log.New(os.Stderr, "", log.Ltime)

	c := config.Default()
	if *configPath != "" {
		var err error
		c, err = config.Load(*configPath)
		app.FatalIfError(err, "")
	}
	if *format != "" {
		c.Format = *format
	}
	opts, err := c.Options()
	app.FatalIfError(err, "")
	if *verbose {
		opts = append(opts, advanced.WithLogger(logger.Printf))
	}

	switch command {
	case buildCmd.FullCommand():
		h, err := buildHierarchy(*buildInput, c.Format, opts, logger)
		app.FatalIfError(err, "build")
		printLevels(os.Stdout, h)

	case locateCmd.FullCommand():
		h, err := buildHierarchy(*locateInput, c.Format, opts, logger)
		app.FatalIfError(err, "locate")
		for _, arg := range *locatePoints {
			p, err := polyio.ParsePoint(arg)
			app.FatalIfError(err, "locate")
			app.FatalIfError(locate(os.Stdout, h, p, *locateTrace), "locate")
		}

	case renderCmd.FullCommand():
		if *renderOut == "" && !*renderImgcat {
			app.Fatalf("render needs --out, --imgcat, or both")
		}
		h, err := buildHierarchy(*renderInput, c.Format, opts, logger)
		app.FatalIfError(err, "render")
		renderOpts := render.Options{
			Level:    *renderLevel,
			Labels:   *renderLabels,
			FitOuter: *renderFitOuter,
		}
		if *renderLocate != "" {
			p, err := polyio.ParsePoint(*renderLocate)
			app.FatalIfError(err, "render")
			renderOpts.Query = &p
		}
		if *renderOut != "" {
			app.FatalIfError(render.WriteFile(h, renderOpts, *renderOut), "render")
		}
		if *renderImgcat {
			app.FatalIfError(render.Imgcat(h, renderOpts, os.Stdout), "render")
		}
	}
}

func buildHierarchy(path string, format string, opts []advanced.Option, logger *log.Logger) (*advanced.Hierarchy, error) {
	in := io.Reader(os.Stdin)
	if path != "" && path != "-" {
		file, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		in = file
	}

	polygons, err := polyio.Read(in, format)
	if err != nil {
		return nil, err
	}
	if len(polygons) == 0 {
		return nil, errors.New("no polygon in input")
	}
	if len(polygons) > 1 {
		logger.Printf("read %d polygons, using the first", len(polygons))
	}

	h, err := advanced.NewHierarchy(polygons[0], opts...)
	if err != nil {
		return nil, err
	}
	if err := h.Build(); err != nil {
		return nil, err
	}
	return h, nil
}

func printLevels(w io.Writer, h *advanced.Hierarchy) {
	fmt.Fprintln(w, h)
	g := h.Graph()
	for i, level := range g.Levels() {
		fmt.Fprintf(w, "level %d: %d triangles\n", i, len(level))
	}
	root, _ := h.Root()
	fmt.Fprintf(w, "root: %s\n", h.DbgName(root))
}

func locate(w io.Writer, h *advanced.Hierarchy, p advanced.Point, trace bool) error {
	d, err := h.Begin(p)
	if err != nil {
		return err
	}
	for d.State == advanced.Descending {
		if trace {
			fmt.Fprintf(w, "  %v: level %d triangle %s\n", p, d.Level, h.DbgName(d.Current))
		}
		d = h.Advance(d)
	}

	tri := h.Graph().Triangle(d.Current)
	where := aurora.Red("outside").String()
	if h.IsInner(d.Current) {
		where = aurora.Green("inside").String()
	}
	fmt.Fprintf(w, "%v: triangle %d %v (%s)\n", p, d.Current, tri.V, where)
	return nil
}

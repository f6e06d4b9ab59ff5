// Command planar runs the geometry engines over points read from stdin.
//
// Input is newline separated points in the form "x y". Blank lines and lines
// starting with # are ignored. The fill command instead reads a grid of digits,
// one row per line.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/planar/astar"
	"github.com/osuushi/planar/closest"
	"github.com/osuushi/planar/dbg"
	"github.com/osuushi/planar/floodfill"
	"github.com/osuushi/planar/geom"
	"github.com/osuushi/planar/hull"
	"github.com/osuushi/planar/internal/config"
	"github.com/osuushi/planar/proximity"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, aurora.Red(err))
		os.Exit(1)
	}
}

type cli struct {
	app    *kingpin.Application
	stdout io.Writer

	configPath *string
	verbose    *bool
	trace      *bool
	noColor    *bool
	pngPath    *string
	imgcat     *bool

	closest         *kingpin.CmdClause
	closestStrategy *string

	hull         *kingpin.CmdClause
	hullStrategy *string

	graph       *kingpin.CmdClause
	graphBounds *string

	path          *kingpin.CmdClause
	pathFrom      *int
	pathTo        *int
	pathHeuristic *string
	pathBounds    *string

	fill      *kingpin.CmdClause
	fillRow   *int
	fillCol   *int
	fillValue *int
}

func newCLI(stdout, stderr io.Writer) *cli {
	c := &cli{
		app:    kingpin.New("planar", "Closest pairs, convex hulls, proximity graphs and paths over points read from stdin."),
		stdout: stdout,
	}
	c.app.UsageWriter(stdout)
	c.app.ErrorWriter(stderr)
	c.app.Terminate(nil)

	c.configPath = c.app.Flag("config", "TOML config file.").PlaceHolder("FILE").ExistingFile()
	c.verbose = c.app.Flag("verbose", "Log at debug level.").Short('v').Bool()
	c.trace = c.app.Flag("trace", "Log every A* expansion.").Bool()
	c.noColor = c.app.Flag("no-color", "Disable colored output.").Bool()
	c.pngPath = c.app.Flag("png", "Draw the result to a PNG file.").PlaceHolder("FILE").String()
	c.imgcat = c.app.Flag("imgcat", "Print the drawing to the terminal (iTerm only).").Bool()

	c.closest = c.app.Command("closest", "Find the closest pair of points.")
	c.closestStrategy = c.closest.Flag("strategy", "Closest pair strategy.").Enum(closest.StrategyNames()...)

	c.hull = c.app.Command("hull", "Compute the convex hull.")
	c.hullStrategy = c.hull.Flag("strategy", "Hull strategy.").Enum(hull.StrategyNames()...)

	c.graph = c.app.Command("graph", "Build the Voronoi proximity graph.")
	c.graphBounds = c.graph.Flag("bounds", "Clipping box as min_x,min_y,max_x,max_y.").String()

	c.path = c.app.Command("path", "Find the cheapest path between two points of the proximity graph.")
	c.pathFrom = c.path.Arg("from", "Index of the start point.").Required().Int()
	c.pathTo = c.path.Arg("to", "Index of the goal point.").Required().Int()
	c.pathHeuristic = c.path.Flag("heuristic", "A* heuristic.").Enum(astar.HeuristicNames()...)
	c.pathBounds = c.path.Flag("bounds", "Clipping box as min_x,min_y,max_x,max_y.").String()

	c.fill = c.app.Command("fill", "Flood fill a grid of digits.")
	c.fillRow = c.fill.Arg("row", "Start row.").Required().Int()
	c.fillCol = c.fill.Arg("col", "Start column.").Required().Int()
	c.fillValue = c.fill.Arg("value", "Digit to fill with.").Required().Int()
	return c
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	c := newCLI(stdout, stderr)
	command, err := c.app.Parse(args)
	if err != nil {
		return err
	}

	log := logrus.New()
	log.Out = stderr
	log.Level = logrus.InfoLevel
	if *c.verbose {
		log.Level = logrus.DebugLevel
	}
	if *c.trace {
		log.Level = logrus.TraceLevel
	}

	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"closest":   cfg.Closest,
		"hull":      cfg.Hull,
		"heuristic": cfg.Heuristic,
		"bounds":    fmt.Sprintf("%+v", cfg.Bounds),
	}).Debug("configuration")

	out := &printer{w: stdout, au: aurora.NewAurora(!*c.noColor)}

	if command == c.fill.FullCommand() {
		return c.runFill(stdin, out)
	}

	points, err := readPoints(stdin)
	if err != nil {
		return err
	}
	log.WithField("points", len(points)).Debug("read input")

	var scene *dbg.Scene
	switch command {
	case c.closest.FullCommand():
		scene, err = runClosest(points, cfg, out)
	case c.hull.FullCommand():
		scene, err = runHull(points, cfg, out)
	case c.graph.FullCommand():
		scene, err = runGraph(points, cfg, out)
	case c.path.FullCommand():
		scene, err = runPath(points, cfg, *c.pathFrom, *c.pathTo, log, out)
	default:
		err = errors.Errorf("unhandled command %q", command)
	}
	if err != nil {
		return err
	}
	return c.draw(scene, log)
}

// Start from the config file, or defaults, and let flags override it.
func (c *cli) loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if *c.configPath != "" {
		var err error
		if cfg, err = config.LoadFile(*c.configPath); err != nil {
			return nil, err
		}
	}

	for _, override := range []struct {
		value  string
		target interface{ UnmarshalText([]byte) error }
	}{
		{*c.closestStrategy, &cfg.Closest},
		{*c.hullStrategy, &cfg.Hull},
		{*c.pathHeuristic, &cfg.Heuristic},
	} {
		if override.value == "" {
			continue
		}
		if err := override.target.UnmarshalText([]byte(override.value)); err != nil {
			return nil, err
		}
	}

	for _, bounds := range []string{*c.graphBounds, *c.pathBounds} {
		if bounds == "" {
			continue
		}
		parsed, err := parseBounds(bounds)
		if err != nil {
			return nil, err
		}
		cfg.Bounds = parsed
	}
	return cfg, cfg.Validate()
}

func (c *cli) draw(scene *dbg.Scene, log logrus.FieldLogger) error {
	if scene == nil || (*c.pngPath == "" && !*c.imgcat) {
		return nil
	}
	path := *c.pngPath
	if path == "" {
		path = "/tmp/planar.png"
	}
	if *c.imgcat {
		if err := scene.Imgcat(path, c.stdout); err != nil {
			return err
		}
	} else if err := scene.SavePNG(path); err != nil {
		return err
	}
	log.WithField("path", path).Info("saved drawing")
	return nil
}

func parseBounds(s string) (config.Bounds, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return config.Bounds{}, errors.Errorf("bounds %q: want min_x,min_y,max_x,max_y", s)
	}
	var values [4]float64
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return config.Bounds{}, errors.Wrapf(err, "bounds %q", s)
		}
		values[i] = v
	}
	return config.Bounds{MinX: values[0], MinY: values[1], MaxX: values[2], MaxY: values[3]}, nil
}

func runClosest(points []geom.Point, cfg *config.Config, out *printer) (*dbg.Scene, error) {
	pair, err := closest.Find(points, cfg.Closest)
	if err != nil {
		return nil, err
	}
	out.heading("closest pair (%v)", cfg.Closest)
	out.point(pair.I, points[pair.I])
	out.point(pair.J, points[pair.J])
	out.value("distance", pair.Distance)
	return &dbg.Scene{
		Points:    points,
		Highlight: []geom.Point{points[pair.I], points[pair.J]},
	}, nil
}

func runHull(points []geom.Point, cfg *config.Config, out *printer) (*dbg.Scene, error) {
	polygon, err := hull.Compute(points, cfg.Hull)
	if err != nil {
		return nil, err
	}
	out.heading("convex hull (%v), %d vertices", cfg.Hull, polygon.VertexCount())
	for _, p := range polygon.Open().Points {
		out.point(indexOf(points, p), p)
	}
	out.value("area", polygon.SignedArea())
	return &dbg.Scene{Points: points, Hull: polygon}, nil
}

func runGraph(points []geom.Point, cfg *config.Config, out *printer) (*dbg.Scene, error) {
	g, err := proximity.Build(points, cfg.Bounds.BBox())
	if err != nil {
		return nil, err
	}
	out.heading("proximity graph, %d nodes, %d edges", g.Len(), len(g.Edges))
	for _, edge := range g.Edges {
		out.edge(edge)
	}
	return graphScene(g), nil
}

func runPath(points []geom.Point, cfg *config.Config, from, to int, log logrus.FieldLogger, out *printer) (*dbg.Scene, error) {
	g, err := proximity.Build(points, cfg.Bounds.BBox())
	if err != nil {
		return nil, err
	}
	path, err := astar.FindPath(g, from, to, astar.WithHeuristic(cfg.Heuristic), astar.WithLogger(log))
	if err != nil {
		return nil, err
	}
	out.heading("path %d -> %d (%v), %d nodes", from, to, cfg.Heuristic, len(path.Nodes))
	positions := make([]geom.Point, len(path.Nodes))
	for i, node := range path.Nodes {
		positions[i] = g.Position(node)
		out.point(node, positions[i])
	}
	out.value("cost", path.Cost)

	scene := graphScene(g)
	scene.Path = positions
	return scene, nil
}

func graphScene(g *proximity.Graph) *dbg.Scene {
	scene := &dbg.Scene{Cells: g.Cells}
	for _, node := range g.Nodes {
		scene.Points = append(scene.Points, node.Point)
	}
	for _, edge := range g.Edges {
		scene.Segments = append(scene.Segments, [2]geom.Point{g.Position(edge.A), g.Position(edge.B)})
	}
	return scene
}

func (c *cli) runFill(stdin io.Reader, out *printer) error {
	rows, err := readLines(stdin)
	if err != nil {
		return err
	}
	grid, err := floodfill.Parse(rows)
	if err != nil {
		return err
	}
	changed, err := floodfill.Fill(grid, floodfill.Cell{Row: *c.fillRow, Col: *c.fillCol}, *c.fillValue)
	if err != nil {
		return err
	}
	out.heading("filled %d cells", changed)
	out.grid(grid, *c.fillValue)
	return nil
}

func indexOf(points []geom.Point, p geom.Point) int {
	for i, q := range points {
		if q == p {
			return i
		}
	}
	return -1
}

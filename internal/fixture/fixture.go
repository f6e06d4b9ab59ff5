// Package fixture loads the point set fixtures shared by the engine tests.
package fixture

import (
	"embed"
	"log"
	"strconv"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/planar/geom"
)

// Point set fixtures are svg files in the fixtures/ directory. Every <circle>
// element is one point, at (cx, cy), in document order. This is not a general
// svg reader. If anything goes wrong, it exits.

//go:embed fixtures
var fixtures embed.FS

func Load(name string) []geom.Point {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	circles := rootEl.FindAll("circle")
	if len(circles) == 0 {
		log.Fatalf("No circles found in fixture %q", name)
	}

	points := make([]geom.Point, 0, len(circles))
	for _, circleEl := range circles {
		x, err := strconv.ParseFloat(circleEl.Attributes["cx"], 64)
		if err != nil {
			log.Fatalf("Invalid cx value %q in fixture %q: %v", circleEl.Attributes["cx"], name, err)
		}
		y, err := strconv.ParseFloat(circleEl.Attributes["cy"], 64)
		if err != nil {
			log.Fatalf("Invalid cy value %q in fixture %q: %v", circleEl.Attributes["cy"], name, err)
		}
		points = append(points, geom.Point{X: x, Y: y})
	}
	return points
}

package hull

import (
	"github.com/osuushi/planar/geom"
)

// QuickHull. The leftmost and rightmost points are always on the hull, and the
// segment between them splits the remaining points into those below it and
// those above it. Each side is then hulled recursively against that segment.
//
// The result starts at the leftmost point and runs counterclockwise, along
// the lower chain first.
func quickHull(points []geom.Point) geom.Polygon {
	a := points[leftmost(points)]
	b := points[rightmost(points)]
	if a == b {
		geom.Throw(&geom.DegenerateGeometryError{Op: "quickhull", Reason: "all points coincide"})
	}

	var above, below []geom.Point
	for _, p := range points {
		switch geom.Orientation(a, b, p) {
		case 1:
			above = append(above, p)
		case -1:
			below = append(below, p)
		}
	}

	result := []geom.Point{a}
	result = append(result, findHull(below, a, b)...)
	result = append(result, b)
	result = append(result, findHull(above, b, a)...)
	return geom.Polygon{Points: result}.Close()
}

// Hull vertices strictly between p and q, in order from p to q. Every point in
// set is to the right of the directed edge p->q.
func findHull(set []geom.Point, p, q geom.Point) []geom.Point {
	if len(set) == 0 {
		return nil
	}

	farthest := set[0]
	farthestDistance := geom.MustDistancePointToLine(p, q, farthest)
	for _, candidate := range set[1:] {
		d := geom.MustDistancePointToLine(p, q, candidate)
		if d > farthestDistance {
			farthest = candidate
			farthestDistance = d
		}
	}

	// Anything inside the triangle p, farthest, q is done with. What's left is
	// outside one of the two new edges.
	var outsidePC, outsideCQ []geom.Point
	for _, candidate := range set {
		if candidate == farthest || geom.PointInTriangle(candidate, p, farthest, q) {
			continue
		}
		if geom.Orientation(p, farthest, candidate) < 0 {
			outsidePC = append(outsidePC, candidate)
		} else if geom.Orientation(farthest, q, candidate) < 0 {
			outsideCQ = append(outsideCQ, candidate)
		}
	}

	result := findHull(outsidePC, p, farthest)
	result = append(result, farthest)
	return append(result, findHull(outsideCQ, farthest, q)...)
}

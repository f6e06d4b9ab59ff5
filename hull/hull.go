// Convex hulls of point sets.
//
// Every strategy returns a closed, counterclockwise polygon: the first vertex
// is repeated as the last. Three collinear points come back as a degenerate
// triangle with no winding. Only input points appear as vertices.
package hull

import (
	"github.com/osuushi/planar/geom"
	"github.com/pkg/errors"
)

// Compute the convex hull of points. At least three points are required.
// Exactly three points are returned as a closed triangle starting at the first
// point, turned counterclockwise if needed, without checking for collinearity.
//
// The input is expected to be in general position. Collinear points on the
// hull boundary are not guaranteed to be kept or dropped consistently across
// strategies.
func Compute(points []geom.Point, strategy Strategy) (result geom.Polygon, err error) {
	if err := geom.RequirePoints("convex hull", points, 3); err != nil {
		return geom.Polygon{}, err
	}
	if len(points) == 3 {
		a, b, c := points[0], points[1], points[2]
		if geom.Orientation(a, b, c) < 0 {
			b, c = c, b
		}
		return geom.Polygon{Points: []geom.Point{a, b, c}}.Close(), nil
	}

	defer func() {
		recoveredErr := geom.Recover(recover())
		if recoveredErr != nil {
			result = geom.Polygon{}
			err = errors.Wrapf(recoveredErr, "%v hull", strategy)
		}
	}()

	switch strategy {
	case QuickHull:
		return quickHull(points), nil
	case GrahamScan:
		return grahamScan(points), nil
	case Incremental:
		return incremental(points), nil
	}
	return geom.Polygon{}, errors.Errorf("unknown hull strategy %v", strategy)
}

// Leftmost point, breaking x ties by lower y. The first such point wins.
func leftmost(points []geom.Point) int {
	best := 0
	for i, p := range points {
		q := points[best]
		if p.X < q.X || (p.X == q.X && p.Y < q.Y) {
			best = i
		}
	}
	return best
}

// Rightmost point, breaking x ties by higher y.
func rightmost(points []geom.Point) int {
	best := 0
	for i, p := range points {
		q := points[best]
		if p.X > q.X || (p.X == q.X && p.Y > q.Y) {
			best = i
		}
	}
	return best
}

package geom

import "math"

const radToDeg = 180 / math.Pi

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// Sign of the cross product (b-a) x (c-a). Positive means a->b->c turns
// counterclockwise, negative means clockwise, and zero means collinear.
func Orientation(a, b, c Point) int {
	return sign(b.Sub(a).Cross(c.Sub(a)))
}

// The same cross product as Orientation, with the opposite sign. A result of
// 1 means c is to the right of the directed line a->b. Graham scan and the
// triangle test are phrased in terms of this.
func Side(a, b, c Point) int {
	return sign((b.Y-a.Y)*(c.X-a.X) - (b.X-a.X)*(c.Y-a.Y))
}

// Perpendicular distance from point to the infinite line through lineP1 and
// lineP2.
func DistancePointToLine(lineP1, lineP2, point Point) (float64, error) {
	length := Distance(lineP1, lineP2)
	if length == 0 {
		return 0, degenerate("DistancePointToLine", "line points coincide")
	}
	area := lineP2.Sub(lineP1).Cross(point.Sub(lineP1))
	return math.Abs(area) / length, nil
}

// Unsigned angle between two vectors, in degrees within [0, 180].
func AngleBetween(u, v Point) (float64, error) {
	denominator := u.Norm() * v.Norm()
	if denominator == 0 {
		return 0, degenerate("AngleBetween", "zero length vector")
	}
	// Rounding can push the cosine a hair past 1, which acos turns into NaN
	cos := math.Max(-1, math.Min(1, u.Dot(v)/denominator))
	return math.Acos(cos) * radToDeg, nil
}

// A point is inside the triangle when it is on the same side of all three
// edges. The sides must be exactly equal, so a point on an edge (side 0) only
// counts when it lies on all three, which only happens for a degenerate
// triangle.
func PointInTriangle(p, a, b, c Point) bool {
	d1 := Side(a, b, p)
	d2 := Side(b, c, p)
	d3 := Side(c, a, p)
	return d1 == d2 && d2 == d3
}

// Angle sum point in polygon. Sums the angles subtended by each polygon edge
// as seen from p, and checks that the total rounds to a full turn. This is
// sensitive near the boundary: a point on an edge sees that edge at 180
// degrees, so it usually reads as inside.
//
// The polygon may be given open or closed. p landing exactly on a vertex is a
// DegenerateGeometryError, since the angle there is undefined.
func PointInPolygon(p Point, polygon Polygon) (bool, error) {
	points := polygon.Open().Points
	if len(points) < 3 {
		return false, nil
	}
	var total float64
	for i, vertex := range points {
		next := points[CircularIndex(i+1, len(points))]
		angle, err := AngleBetween(vertex.Sub(p), next.Sub(p))
		if err != nil {
			return false, err
		}
		total += angle
	}
	return math.Round(total) == 360, nil
}

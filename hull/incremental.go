package hull

import (
	"github.com/osuushi/planar/geom"
)

// Incremental hull. Points are added in x order to a running hull seeded with
// the first three. A point already inside the running hull is skipped.
// Otherwise it replaces the chain of hull vertices it can see, which are
// exactly the vertices that become interior once it is added.
//
// This needs the seed triangle to be non-degenerate, and is only expected to
// give exact results for points in general position.
func incremental(points []geom.Point) geom.Polygon {
	sorted, _ := geom.SortByX(geom.Dedupe(points))
	if len(sorted) < 3 {
		geom.Throw(&geom.InsufficientInputError{Op: "incremental hull", Need: 3, Got: len(sorted)})
	}

	a, b, c := sorted[0], sorted[1], sorted[2]
	switch geom.Orientation(a, b, c) {
	case 0:
		geom.Throw(&geom.DegenerateGeometryError{Op: "incremental hull", Reason: "collinear seed triangle"})
	case -1:
		b, c = c, b
	}
	hull := []geom.Point{a, b, c}

	for _, p := range sorted[3:] {
		if geom.MustPointInPolygon(p, geom.Polygon{Points: hull}) {
			continue
		}
		hull = addVisible(hull, p)
	}

	return geom.Polygon{Points: hull}.Close()
}

// Add p to a counterclockwise hull, removing the vertices p can see past.
func addVisible(hull []geom.Point, p geom.Point) []geom.Point {
	n := len(hull)
	visible := func(i int) bool {
		i = geom.CircularIndex(i, n)
		return geom.Orientation(hull[i], hull[geom.CircularIndex(i+1, n)], p) < 0
	}

	// Visible edges form one contiguous run. Find where it starts and ends.
	first, last := -1, -1
	for i := 0; i < n; i++ {
		if visible(i) && !visible(i-1) {
			first = i
		}
		if visible(i) && !visible(i+1) {
			last = i
		}
	}
	if first == -1 {
		// Either nothing is visible (p is inside or on the boundary), or every
		// edge is, which a convex hull can't produce.
		return hull
	}

	// Keep the vertices from the end of the last visible edge around to the
	// start of the first one, then close the gap with p.
	result := make([]geom.Point, 0, n+1)
	for i := last + 1; ; i++ {
		vertex := hull[geom.CircularIndex(i, n)]
		result = append(result, vertex)
		if geom.CircularIndex(i, n) == first {
			break
		}
	}
	return append(result, p)
}

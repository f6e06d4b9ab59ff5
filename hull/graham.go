package hull

import (
	"sort"

	"github.com/osuushi/planar/geom"
)

var xAxis = geom.Point{X: 1, Y: 0}

// Graham scan. The pivot is the first point with the lowest y value, so every
// other point sits at an angle between 0 and 180 degrees from the positive x
// axis around it. Points are visited in order of that angle.
//
// Each visited point is pushed onto the hull, then checked against the point
// after it. If the path from the previous hull point through the new point to
// the next one turns clockwise, the new point cannot be on the hull. It is
// dropped from the candidates, and the previous hull point is popped too so
// that it gets rechecked against the new next point. The last point is
// checked against the first candidate.
func grahamScan(points []geom.Point) geom.Polygon {
	pivotIndex := 0
	for i, p := range points {
		if p.Y < points[pivotIndex].Y {
			pivotIndex = i
		}
	}
	pivot := points[pivotIndex]

	candidates := make([]geom.Point, 0, len(points)-1)
	angles := make(map[geom.Point]float64, len(points)-1)
	for _, p := range points {
		// Copies of the pivot have no angle, and can't add anything to the hull
		if p == pivot {
			continue
		}
		candidates = append(candidates, p)
		angles[p] = geom.MustAngleBetween(xAxis, pivot.To(p))
	}
	if len(candidates) < 2 {
		geom.Throw(&geom.DegenerateGeometryError{Op: "graham scan", Reason: "fewer than three distinct points"})
	}

	sort.SliceStable(candidates, func(a, b int) bool {
		angleA, angleB := angles[candidates[a]], angles[candidates[b]]
		if angleA != angleB {
			return angleA < angleB
		}
		return geom.Distance(pivot, candidates[a]) < geom.Distance(pivot, candidates[b])
	})

	// Points at the same angle are on one ray from the pivot, and only the
	// farthest of them can be a hull vertex. It sorts last in its run.
	filtered := candidates[:0]
	for i, p := range candidates {
		if i+1 < len(candidates) && angles[candidates[i+1]] == angles[p] {
			continue
		}
		filtered = append(filtered, p)
	}
	candidates = filtered

	hull := geom.PointStack{pivot}
	i := 0
	for i < len(candidates) {
		current := candidates[i]
		hull.Push(current)
		previous, _ := hull.PeekAt(1)
		next := candidates[geom.CircularIndex(i+1, len(candidates))]

		if geom.Side(previous, current, next) == 1 {
			hull.Pop()
			candidates = append(candidates[:i], candidates[i+1:]...)
			// Step back so the previous point is checked again. The pivot is never
			// removed.
			if i > 0 {
				hull.Pop()
				i--
			}
		} else {
			i++
		}
	}

	return geom.Polygon{Points: hull}.Close()
}

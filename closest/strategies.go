package closest

import (
	"math"

	"github.com/osuushi/planar/geom"
)

// Every pair in [lo, hi). The first pair to reach the minimum wins.
func bruteForce(points []geom.Point, lo, hi int) Pair {
	best := noPair
	for i := lo; i < hi; i++ {
		for j := i + 1; j < hi; j++ {
			d := geom.Distance(points[i], points[j])
			if d < best.Distance {
				best = Pair{I: i, J: j, Distance: d}
			}
		}
	}
	return best
}

// Sweep a vertical line across x-sorted points. h is the width of the window
// behind the line, and starts as the distance between the first two points.
// Only pairs closer than h on both axes get a full distance check.
//
// Improvements found while scanning from point i go into newH, and the window
// only shrinks to newH once i is done. h never grows, so no pair closer than
// the final answer can be filtered out.
func lineSweep(sorted []geom.Point) Pair {
	n := len(sorted)
	best := Pair{I: 0, J: 1, Distance: geom.Distance(sorted[0], sorted[1])}
	h := best.Distance
	newH := h
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			// No abs needed, since the points are sorted by x
			if sorted[j].X-sorted[i].X >= h {
				continue
			}
			if math.Abs(sorted[i].Y-sorted[j].Y) >= h {
				continue
			}
			d := geom.Distance(sorted[i], sorted[j])
			if d < newH {
				newH = d
				best = Pair{I: i, J: j, Distance: d}
			}
		}
		h = newH
	}
	return best
}

// Classic divide and conquer over x-sorted points in [lo, hi). The range is
// split at the median index, so runs of equal x still divide. The strip
// around the dividing line is checked with every pair, which is O(k^2) in the
// strip size rather than the y-sorted linear scan.
func divideAndConquer(sorted []geom.Point, lo, hi int) Pair {
	n := hi - lo
	if n <= 3 {
		return bruteForce(sorted, lo, hi)
	}

	mid := lo + n/2
	midX := sorted[mid].X
	best := divideAndConquer(sorted, lo, mid)
	if right := divideAndConquer(sorted, mid, hi); right.closerThan(best) {
		best = right
	}

	var strip []int
	for i := lo; i < hi; i++ {
		if math.Abs(sorted[i].X-midX) < best.Distance {
			strip = append(strip, i)
		}
	}
	for a := 0; a < len(strip); a++ {
		for b := a + 1; b < len(strip); b++ {
			d := geom.Distance(sorted[strip[a]], sorted[strip[b]])
			if d < best.Distance {
				best = Pair{I: strip[a], J: strip[b], Distance: d}
			}
		}
	}
	return best
}

// Closest pair of points, with three interchangeable strategies. All of them
// agree on the minimum distance; when several pairs share it, which pair is
// reported depends on the strategy's traversal order.
package closest

import (
	"math"

	"github.com/osuushi/planar/geom"
	"github.com/pkg/errors"
)

// Indices of the two closest points, in terms of the caller's input order,
// with I < J.
type Pair struct {
	I, J     int
	Distance float64
}

var noPair = Pair{I: -1, J: -1, Distance: math.Inf(1)}

// Find the closest pair among points. Points do not need to be sorted; the
// sweep and divide and conquer strategies sort a copy and map the result back.
func Find(points []geom.Point, strategy Strategy) (Pair, error) {
	if err := geom.RequirePoints("closest pair", points, 2); err != nil {
		return Pair{}, err
	}

	switch strategy {
	case BruteForce:
		return bruteForce(points, 0, len(points)), nil
	case LineSweep:
		sorted, order := geom.SortByX(points)
		return lineSweep(sorted).remap(order), nil
	case DivideAndConquer:
		sorted, order := geom.SortByX(points)
		return divideAndConquer(sorted, 0, len(sorted)).remap(order), nil
	}
	return Pair{}, errors.Errorf("unknown closest pair strategy %v", strategy)
}

// Line sweep over points that are already sorted by x. The returned indices
// refer to the sorted slice.
func SweepSorted(sorted []geom.Point) (Pair, error) {
	if err := geom.RequirePoints("closest pair", sorted, 2); err != nil {
		return Pair{}, err
	}
	if !geom.IsSortedByX(sorted) {
		return Pair{}, errors.New("line sweep requires points sorted by x")
	}
	return lineSweep(sorted), nil
}

func (p Pair) remap(order []int) Pair {
	return newPair(order[p.I], order[p.J], p.Distance)
}

func newPair(i, j int, distance float64) Pair {
	if j < i {
		i, j = j, i
	}
	return Pair{I: i, J: j, Distance: distance}
}

func (p Pair) closerThan(other Pair) bool {
	return p.Distance < other.Distance
}

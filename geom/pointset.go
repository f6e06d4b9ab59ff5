package geom

import (
	"math/rand"
	"sort"
)

// Stable sort by x. Returns the sorted copy, and the permutation mapping each
// sorted position back to its index in the input, so that results computed on
// the sorted points can be reported in terms of the caller's order.
func SortByX(points []Point) (sorted []Point, order []int) {
	order = make([]int, len(points))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return points[order[a]].X < points[order[b]].X
	})
	sorted = make([]Point, len(points))
	for i, idx := range order {
		sorted[i] = points[idx]
	}
	return sorted, order
}

func IsSortedByX(points []Point) bool {
	return sort.SliceIsSorted(points, func(a, b int) bool {
		return points[a].X < points[b].X
	})
}

// Drop exact duplicates, keeping the first occurrence of each point.
func Dedupe(points []Point) []Point {
	seen := make(map[Point]struct{}, len(points))
	result := make([]Point, 0, len(points))
	for _, p := range points {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		result = append(result, p)
	}
	return result
}

// A fixed, hand picked set of sixteen points in general position.
func SamplePoints() []Point {
	return []Point{
		{-13, 0.5},
		{-10.5, -11.5},
		{-10, 9},
		{-4.5, -2},
		{-1, 8.5},
		{0.5, 6},
		{0.5, -12},
		{2, 12.5},
		{3.5, 11},
		{5.5, 3},
		{5.5, -7},
		{5, 11.5},
		{6.5, 3.2},
		{7, -10},
		{9, -5},
		{11.5, -4},
	}
}

// n points uniformly distributed in [-amplitude, amplitude] on both axes.
func RandomPoints(rng *rand.Rand, n int, amplitude float64) []Point {
	points := make([]Point, n)
	for i := range points {
		points[i] = Point{
			X: (rng.Float64()*2 - 1) * amplitude,
			Y: (rng.Float64()*2 - 1) * amplitude,
		}
	}
	return points
}

// Computational geometry on point sets in the plane: closest pairs, convex
// hulls, Voronoi proximity graphs and A* paths over them, plus flood fill on
// integer grids.
//
// This package is a thin facade. The engines live in their own packages
// (closest, hull, proximity, astar, floodfill) for callers who want more
// control.
package planar

import (
	"github.com/osuushi/planar/astar"
	"github.com/osuushi/planar/closest"
	"github.com/osuushi/planar/floodfill"
	"github.com/osuushi/planar/geom"
	"github.com/osuushi/planar/hull"
	"github.com/osuushi/planar/proximity"
)

type Point = geom.Point
type Polygon = geom.Polygon
type BBox = geom.BBox
type Pair = closest.Pair
type Graph = proximity.Graph
type Path = astar.Path
type Cell = floodfill.Cell

type ClosestStrategy = closest.Strategy
type HullStrategy = hull.Strategy

const (
	LineSweep        = closest.LineSweep
	BruteForce       = closest.BruteForce
	DivideAndConquer = closest.DivideAndConquer

	QuickHull   = hull.QuickHull
	GrahamScan  = hull.GrahamScan
	Incremental = hull.Incremental
)

// Find the two closest points. Pair indices refer to points.
func ClosestPair(points []Point, strategy ClosestStrategy) (result Pair, err error) {
	defer func() {
		if recoveredErr := geom.Recover(recover()); recoveredErr != nil {
			result = Pair{}
			err = recoveredErr
		}
	}()
	return closest.Find(points, strategy)
}

// Compute the convex hull of points as a closed, counterclockwise polygon.
func ConvexHull(points []Point, strategy HullStrategy) (Polygon, error) {
	return hull.Compute(points, strategy)
}

// Connect points whose Voronoi cells touch inside bounds. Node i of the
// result is points[i].
func BuildGraph(points []Point, bounds BBox) (*Graph, error) {
	return proximity.Build(points, bounds)
}

// Cheapest path between two nodes of a graph built by BuildGraph, using the
// Euclidean heuristic unless an option says otherwise.
func FindPath(g *Graph, start, goal int, opts ...astar.Option) (Path, error) {
	return astar.FindPath(g, start, goal, opts...)
}

// Path between the graph nodes nearest to two arbitrary points. An empty graph
// gives an InsufficientInputError.
func FindPathBetween(g *Graph, from, to Point, opts ...astar.Option) (Path, error) {
	start, err := nearestNode(g, from)
	if err != nil {
		return Path{}, err
	}
	goal, err := nearestNode(g, to)
	if err != nil {
		return Path{}, err
	}
	return astar.FindPath(g, start, goal, opts...)
}

func nearestNode(g *Graph, p Point) (int, error) {
	node, ok := g.Nearest(p)
	if !ok {
		return 0, &geom.InsufficientInputError{Op: "path between points", Need: 1, Got: g.Len()}
	}
	return node, nil
}

// Repaint the region of grid connected to start. Returns the number of cells
// changed.
func FloodFill(grid [][]int, start Cell, value int) (int, error) {
	return floodfill.Fill(grid, start, value)
}

// A* search over proximity graphs.
//
// Search state lives in records owned by a single FindPath call, never on the
// graph, so any number of searches can run over one graph at the same time as
// long as nothing rebuilds it.
package astar

import (
	"github.com/osuushi/planar/dbg"
	"github.com/osuushi/planar/geom"
	"github.com/osuushi/planar/proximity"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// What the search needs from a graph. *proximity.Graph implements it.
type Graph interface {
	Len() int
	Position(node int) geom.Point
	Neighbors(node int) []proximity.Neighbor
}

type Path struct {
	// Node indices from start to goal, inclusive
	Nodes []int
	// Sum of the edge weights along the path
	Cost float64
}

type options struct {
	heuristic HeuristicFunc
	log       logrus.FieldLogger
	err       error
}

type Option func(*options)

func WithHeuristic(h Heuristic) Option {
	return func(o *options) {
		fn, err := h.Func()
		if err != nil {
			o.err = err
			return
		}
		o.heuristic = fn
	}
}

func WithHeuristicFunc(fn HeuristicFunc) Option {
	return func(o *options) {
		o.heuristic = fn
	}
}

// Log each expansion at trace level.
func WithLogger(log logrus.FieldLogger) Option {
	return func(o *options) {
		o.log = log
	}
}

// One visit to a node. Every expansion creates fresh records, so the open
// list can hold several records for the same node, reached along different
// paths. Existing records are never updated in place.
type record struct {
	node    int
	g, h, f float64
	parent  *record
}

// Find a path from start to goal. The open list is scanned linearly for the
// lowest f, and the first minimum wins ties.
//
// When a neighbor is reached, it is only added to the open list if no open
// record for the same node already has a g at least as low. There is no
// decrease-key: a better route to a node already in the open list adds a
// second record beside the first. Records for nodes that were closed in the
// meantime are skipped when they come up.
func FindPath(graph Graph, start, goal int, opts ...Option) (Path, error) {
	o := options{heuristic: EuclideanDistance}
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Path{}, o.err
	}

	for _, node := range []int{start, goal} {
		if node < 0 || node >= graph.Len() {
			return Path{}, &InvalidNodeError{Index: node, Count: graph.Len()}
		}
	}

	trace := o.log != nil && traceEnabled(o.log)
	goalPoint := graph.Position(goal)

	open := []*record{{node: start}}
	closed := make(map[int]struct{})
	for len(open) > 0 {
		currentIndex := 0
		for i := 1; i < len(open); i++ {
			if open[i].f < open[currentIndex].f {
				currentIndex = i
			}
		}
		current := open[currentIndex]
		open = append(open[:currentIndex], open[currentIndex+1:]...)

		if _, ok := closed[current.node]; ok {
			continue
		}
		closed[current.node] = struct{}{}

		if trace {
			o.log.WithFields(logrus.Fields{
				"record": dbg.Name(current),
				"parent": dbg.Name(current.parent),
				"node":   current.node,
				"g":      current.g,
				"f":      current.f,
				"open":   len(open),
			}).Trace("expanding")
		}

		if current.node == goal {
			return current.path(), nil
		}

		for _, neighbor := range graph.Neighbors(current.node) {
			if _, ok := closed[neighbor.Node]; ok {
				continue
			}
			child := &record{
				node:   neighbor.Node,
				g:      current.g + neighbor.Weight,
				parent: current,
			}
			if hasOpenRecordAsGood(open, child) {
				continue
			}
			child.h = o.heuristic(graph.Position(child.node), goalPoint)
			child.f = child.g + child.h
			open = append(open, child)
		}
	}

	return Path{}, &PathNotFoundError{Start: start, Goal: goal}
}

func hasOpenRecordAsGood(open []*record, child *record) bool {
	for _, r := range open {
		if r.node == child.node && r.g <= child.g {
			return true
		}
	}
	return false
}

func (r *record) path() Path {
	var nodes []int
	for current := r; current != nil; current = current.parent {
		nodes = append(nodes, current.node)
	}
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}
	return Path{Nodes: nodes, Cost: r.g}
}

// Sum of edge weights along nodes. Consecutive nodes must be adjacent; when
// parallel edges connect them, the lightest is used.
func PathCost(graph Graph, nodes []int) (float64, error) {
	var cost float64
	for i := 1; i < len(nodes); i++ {
		from, to := nodes[i-1], nodes[i]
		if from < 0 || from >= graph.Len() {
			return 0, &InvalidNodeError{Index: from, Count: graph.Len()}
		}
		weight, found := 0.0, false
		for _, neighbor := range graph.Neighbors(from) {
			if neighbor.Node == to && (!found || neighbor.Weight < weight) {
				weight, found = neighbor.Weight, true
			}
		}
		if !found {
			return 0, errors.Errorf("nodes %d and %d are not adjacent", from, to)
		}
		cost += weight
	}
	return cost, nil
}

func traceEnabled(log logrus.FieldLogger) bool {
	switch l := log.(type) {
	case *logrus.Logger:
		return l.IsLevelEnabled(logrus.TraceLevel)
	case *logrus.Entry:
		return l.Logger.IsLevelEnabled(logrus.TraceLevel)
	}
	return true
}

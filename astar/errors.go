package astar

import "fmt"

// The open list ran out before the goal was reached, so the goal is in a
// different component from the start.
type PathNotFoundError struct {
	Start, Goal int
}

func (e *PathNotFoundError) Error() string {
	return fmt.Sprintf("no path from node %d to node %d", e.Start, e.Goal)
}

type InvalidNodeError struct {
	Index int
	Count int
}

func (e *InvalidNodeError) Error() string {
	return fmt.Sprintf("node %d out of range for graph with %d nodes", e.Index, e.Count)
}

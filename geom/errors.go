package geom

import (
	"fmt"
)

// Returned when an algorithm is handed fewer points than it can work with.
// Closest pair needs two points, convex hull needs three.
type InsufficientInputError struct {
	Op   string
	Need int
	Got  int
}

func (e *InsufficientInputError) Error() string {
	return fmt.Sprintf("%s: need at least %d points, got %d", e.Op, e.Need, e.Got)
}

// Returned instead of letting a NaN escape. Zero length vectors have no angle,
// and a line through two equal points has no direction.
type DegenerateGeometryError struct {
	Op     string
	Reason string
}

func (e *DegenerateGeometryError) Error() string {
	return fmt.Sprintf("%s: degenerate geometry: %s", e.Op, e.Reason)
}

func insufficient(op string, need, got int) error {
	return &InsufficientInputError{Op: op, Need: need, Got: got}
}

// Check that a point set has at least `need` points, returning an
// InsufficientInputError otherwise.
func RequirePoints(op string, points []Point, need int) error {
	if len(points) < need {
		return insufficient(op, need, len(points))
	}
	return nil
}

func degenerate(op, reason string) error {
	return &DegenerateGeometryError{Op: op, Reason: reason}
}

package geom

import "github.com/pkg/errors"

// Threading errors up and down the recursive hull and closest pair code would
// add a lot of noise for failures that can only happen on degenerate input.
// Instead, those paths panic through Throw, and the public entry points of
// each engine recover with Recover to convert back to an error.

type thrown struct {
	err error
}

// Panic with an error that Recover will convert back to an error.
func Throw(err error) {
	panic(thrown{errors.WithStack(err)})
}

// Panic with a formatted error.
func Throwf(format string, args ...interface{}) {
	panic(thrown{errors.Errorf(format, args...)})
}

// Meant to be called as Recover(recover()) inside a deferred function. Returns
// the thrown error, or nil if nothing panicked. Panics that did not come from
// Throw are re-raised.
func Recover(r interface{}) error {
	if r == nil {
		return nil
	}
	if t, ok := r.(thrown); ok {
		return t.err
	}
	panic(r)
}

// Unwrap the error from a panicking predicate, for callers that have already
// established the input is not degenerate.
func must(value float64, err error) float64 {
	if err != nil {
		Throw(err)
	}
	return value
}

func MustAngleBetween(u, v Point) float64 {
	return must(AngleBetween(u, v))
}

func MustDistancePointToLine(lineP1, lineP2, point Point) float64 {
	return must(DistancePointToLine(lineP1, lineP2, point))
}

func MustPointInPolygon(p Point, polygon Polygon) bool {
	inside, err := PointInPolygon(p, polygon)
	if err != nil {
		Throw(err)
	}
	return inside
}

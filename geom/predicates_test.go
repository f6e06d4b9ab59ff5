package geom

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistance(t *testing.T) {
	assert.Equal(t, 5.0, Distance(Point{0, 0}, Point{3, 4}))
	assert.Equal(t, 5.0, Point{3, 4}.DistanceTo(Point{0, 0}))
	assert.Equal(t, 0.0, Distance(Point{1, 1}, Point{1, 1}))
}

func TestOrientation(t *testing.T) {
	a, b := Point{0, 0}, Point{1, 0}
	assert.Equal(t, 1, Orientation(a, b, Point{0, 1}), "left turn")
	assert.Equal(t, -1, Orientation(a, b, Point{0, -1}), "right turn")
	assert.Equal(t, 0, Orientation(a, b, Point{5, 0}), "collinear")

	for _, c := range []Point{{0, 1}, {0, -1}, {5, 0}, {-3, 7}} {
		assert.Equal(t, -Orientation(a, b, c), Side(a, b, c))
	}
}

func TestDistancePointToLine(t *testing.T) {
	d, err := DistancePointToLine(Point{0, 0}, Point{4, 0}, Point{1, 3})
	require.NoError(t, err)
	assert.InDelta(t, 3, d, epsilon)

	// The line is infinite, so points past the ends measure to the extension
	d, err = DistancePointToLine(Point{0, 0}, Point{1, 1}, Point{10, 0})
	require.NoError(t, err)
	assert.InDelta(t, 10/math.Sqrt2, d, epsilon)

	_, err = DistancePointToLine(Point{2, 2}, Point{2, 2}, Point{0, 0})
	var degenerateErr *DegenerateGeometryError
	assert.True(t, errors.As(err, &degenerateErr))
}

func TestAngleBetween(t *testing.T) {
	cases := []struct {
		u, v     Point
		expected float64
	}{
		{Point{1, 0}, Point{0, 1}, 90},
		{Point{1, 0}, Point{0, -1}, 90},
		{Point{1, 0}, Point{-1, 0}, 180},
		{Point{2, 0}, Point{7, 0}, 0},
		{Point{1, 0}, Point{1, 1}, 45},
	}
	for _, c := range cases {
		angle, err := AngleBetween(c.u, c.v)
		require.NoError(t, err)
		assert.InDelta(t, c.expected, angle, epsilon, "angle between %v and %v", c.u, c.v)
	}

	// Parallel vectors whose cosine rounds above 1 must not produce NaN
	angle, err := AngleBetween(Point{0.1, 0.3}, Point{0.3, 0.9})
	require.NoError(t, err)
	assert.False(t, math.IsNaN(angle))

	_, err = AngleBetween(Point{0, 0}, Point{1, 0})
	var degenerateErr *DegenerateGeometryError
	assert.True(t, errors.As(err, &degenerateErr))
}

func TestPointInTriangle(t *testing.T) {
	a, b, c := Point{0, 0}, Point{4, 0}, Point{0, 4}
	assert.True(t, PointInTriangle(Point{1, 1}, a, b, c))
	assert.True(t, PointInTriangle(Point{1, 1}, a, c, b), "winding does not matter")
	assert.False(t, PointInTriangle(Point{5, 5}, a, b, c))
	assert.False(t, PointInTriangle(Point{-1, 1}, a, b, c))

	// Boundary: a point on one edge has side 0 there and the same nonzero side
	// on the other two, so it is reported outside.
	assert.False(t, PointInTriangle(Point{2, 0}, a, b, c))
	assert.False(t, PointInTriangle(a, a, b, c))
}

func TestPointInPolygon(t *testing.T) {
	square := Polygon{Points: []Point{{0, 0}, {4, 0}, {4, 4}, {0, 4}}}

	for _, poly := range []Polygon{square, square.Close(), square.Reverse()} {
		inside, err := PointInPolygon(Point{2, 2}, poly)
		require.NoError(t, err)
		assert.True(t, inside)

		inside, err = PointInPolygon(Point{1, 3.5}, poly)
		require.NoError(t, err)
		assert.True(t, inside)

		inside, err = PointInPolygon(Point{5, 5}, poly)
		require.NoError(t, err)
		assert.False(t, inside)

		inside, err = PointInPolygon(Point{-0.5, 2}, poly)
		require.NoError(t, err)
		assert.False(t, inside)
	}

	t.Run("boundary", func(t *testing.T) {
		// The edge containing the point is seen at 180 degrees, so the sum still
		// comes to a full turn. Edge points read as inside.
		inside, err := PointInPolygon(Point{2, 0}, square)
		require.NoError(t, err)
		assert.True(t, inside)

		_, err = PointInPolygon(Point{4, 4}, square)
		var degenerateErr *DegenerateGeometryError
		assert.True(t, errors.As(err, &degenerateErr), "vertex has no defined angle")
	})

	t.Run("too few points", func(t *testing.T) {
		inside, err := PointInPolygon(Point{0, 0}, Polygon{Points: []Point{{1, 1}, {2, 2}}})
		require.NoError(t, err)
		assert.False(t, inside)
	})
}

func TestOnBoundary(t *testing.T) {
	square := Polygon{Points: []Point{{0, 0}, {4, 0}, {4, 4}, {0, 4}}}.Close()
	assert.True(t, square.OnBoundary(Point{2, 0}))
	assert.True(t, square.OnBoundary(Point{4, 4}))
	assert.True(t, square.OnBoundary(Point{0, 3}))
	assert.False(t, square.OnBoundary(Point{2, 2}))
	assert.False(t, square.OnBoundary(Point{6, 0}), "collinear with an edge but past its end")
	assert.True(t, square.HasVertex(Point{4, 0}))
	assert.False(t, square.HasVertex(Point{2, 0}))
}

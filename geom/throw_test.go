package geom

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestRecover(t *testing.T) {
	testFn := func(shouldThrow bool, shouldPanic bool) (err error) {
		defer func() {
			recoveredErr := Recover(recover())
			if recoveredErr != nil {
				err = recoveredErr
			}
		}()

		if shouldThrow {
			Throwf("kaboom!")
		}

		if shouldPanic {
			panic("true panic")
		}

		return nil
	}

	t.Run("with throw", func(t *testing.T) {
		err := testFn(true, false)
		assert.EqualError(t, err, "kaboom!")
	})

	t.Run("with real panic", func(t *testing.T) {
		assert.Panics(t, func() {
			testFn(false, true)
		})
	})

	t.Run("no error", func(t *testing.T) {
		err := testFn(false, false)
		assert.NoError(t, err)
	})

	t.Run("typed error survives", func(t *testing.T) {
		err := func() (err error) {
			defer func() { err = Recover(recover()) }()
			MustAngleBetween(Point{}, Point{1, 0})
			return nil
		}()
		var degenerateErr *DegenerateGeometryError
		assert.True(t, errors.As(err, &degenerateErr))
		assert.Equal(t, "AngleBetween", degenerateErr.Op)
	})

	t.Run("runtime errors are not swallowed", func(t *testing.T) {
		assert.Panics(t, func() {
			func() {
				defer func() { Recover(recover()) }()
				var points []Point
				_ = points[3]
			}()
		})
	})
}

func TestRequirePoints(t *testing.T) {
	assert.NoError(t, RequirePoints("test", SamplePoints(), 3))
	err := RequirePoints("test", []Point{{1, 1}}, 2)
	var insufficientErr *InsufficientInputError
	assert.True(t, errors.As(err, &insufficientErr))
	assert.Equal(t, 2, insufficientErr.Need)
	assert.Equal(t, 1, insufficientErr.Got)
	assert.EqualError(t, err, "test: need at least 2 points, got 1")
}

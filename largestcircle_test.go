package voronoi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindLargestEmptyCircleNoVertices(t *testing.T) {
	v, err := New([]Point{NewPoint(0, 0), NewPoint(10, 10)})
	require.NoError(t, err)
	require.NoError(t, v.Process())

	circles, err := v.FindLargestEmptyCircle()
	require.NoError(t, err)
	assert.Empty(t, circles)
}

func TestFindLargestEmptyCircleKeepsTies(t *testing.T) {
	// Two side-by-side 100x100 squares, each contributing its own center
	// vertex. Both are equidistant (70.710678...) from their own square's
	// four corners and far enough from the other square's sites that
	// neither disk is pierced by it, so both tie for the maximum radius.
	v := &Voronoi{
		sites: []Point{
			NewPoint(0, 0), NewPoint(100, 0), NewPoint(0, 100), NewPoint(100, 100),
			NewPoint(200, 0), NewPoint(300, 0), NewPoint(200, 100), NewPoint(300, 100),
		},
		voronoiVertices: []Point{NewPoint(50, 50), NewPoint(250, 50)},
		processed:       true,
	}

	circles, err := v.FindLargestEmptyCircle()
	require.NoError(t, err)
	require.Len(t, circles, 2)

	for _, c := range circles {
		assert.InDelta(t, 50.0, c.Y, 1e-9)
		assert.InDelta(t, 70.71067811865476, c.R, 1e-9)
	}
	assert.InDelta(t, 50.0, circles[0].X, 1e-9)
	assert.InDelta(t, 250.0, circles[1].X, 1e-9)
}

// A vertex exactly coincident with a site has radius zero and is never
// reported, since a strictly positive radius is required to overtake the
// zero-initialized max.
func TestFindLargestEmptyCircleRejectsZeroRadius(t *testing.T) {
	v := &Voronoi{
		sites:           []Point{NewPoint(0, 0), NewPoint(100, 0)},
		voronoiVertices: []Point{NewPoint(0, 0)},
		processed:       true,
	}

	circles, err := v.FindLargestEmptyCircle()
	require.NoError(t, err)
	assert.Empty(t, circles)
}

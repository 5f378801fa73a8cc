package voronoi

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPerturbPreservesXAndNudgesY(t *testing.T) {
	sites := []Point{NewPoint(1, 1), NewPoint(2, 2), NewPoint(3, 3)}
	out := Perturb(sites, rand.New(rand.NewSource(1)))

	require := assert.New(t)
	require.Len(out, len(sites))
	for i, p := range out {
		require.Equal(sites[i].X, p.X)
		require.Greater(p.Y, sites[i].Y)
		require.Less(p.Y-sites[i].Y, 1e-6)
	}
}

func TestPerturbDoesNotMutateInput(t *testing.T) {
	sites := []Point{NewPoint(5, 5)}
	original := sites[0]
	Perturb(sites, rand.New(rand.NewSource(2)))
	assert.Equal(t, original, sites[0])
}

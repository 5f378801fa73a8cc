package voronoi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectDuplicatesFindsExactCoincidence(t *testing.T) {
	sites := []Point{NewPoint(1, 1), NewPoint(2, 2), NewPoint(1, 1)}
	dups := detectDuplicates(sites, 0)
	assert.Equal(t, []int{2}, dups)
}

func TestDetectDuplicatesNoneForDistinctSites(t *testing.T) {
	sites := []Point{NewPoint(1, 1), NewPoint(2, 2), NewPoint(3, 3)}
	dups := detectDuplicates(sites, 0)
	assert.Empty(t, dups)
}

func TestDetectDuplicatesRespectsEpsilon(t *testing.T) {
	sites := []Point{NewPoint(1, 1), NewPoint(1.0000001, 1)}
	assert.Empty(t, detectDuplicates(sites, 0))
	assert.Equal(t, []int{1}, detectDuplicates(sites, 1e-5))
}

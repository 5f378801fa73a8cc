package numeric_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/reikathr/fortunes-geokom/numeric"
)

func TestFloatEquals(t *testing.T) {
	assert.True(t, numeric.FloatEquals(1.0, 1.0000001, 1e-5))
	assert.False(t, numeric.FloatEquals(1.0, 1.1, 1e-5))
}

func TestFloatGreaterThan(t *testing.T) {
	assert.True(t, numeric.FloatGreaterThan(2.0, 1.0, 1e-9))
	assert.False(t, numeric.FloatGreaterThan(1.0000001, 1.0, 1e-5))
}

func TestFloatLessThan(t *testing.T) {
	assert.True(t, numeric.FloatLessThan(1.0, 2.0, 1e-9))
	assert.False(t, numeric.FloatLessThan(1.0000001, 1.0, 1e-5))
}

func TestFloatLessThanOrEqualTo(t *testing.T) {
	assert.True(t, numeric.FloatLessThanOrEqualTo(1.0, 1.0, 1e-9))
	assert.True(t, numeric.FloatLessThanOrEqualTo(0.9, 1.0, 1e-9))
	assert.False(t, numeric.FloatLessThanOrEqualTo(1.1, 1.0, 1e-9))
}

func TestSnapToEpsilon(t *testing.T) {
	assert.Equal(t, 2.0, numeric.SnapToEpsilon(2.0000000001, 1e-6))
	assert.Equal(t, 2.1, numeric.SnapToEpsilon(2.1, 1e-9))
}

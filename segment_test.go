package voronoi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSegmentFinishSetsEndOnce(t *testing.T) {
	s := NewSegment(NewPoint(0, 0))
	assert.False(t, s.Done)
	assert.Nil(t, s.End)

	s.Finish(NewPoint(1, 1))
	assert.True(t, s.Done)
	require := assert.New(t)
	require.NotNil(s.End)
	require.Equal(NewPoint(1, 1), *s.End)

	s.Finish(NewPoint(99, 99))
	assert.Equal(t, NewPoint(1, 1), *s.End)
}

package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemoveDuplicatesAndCollinear_RemovesExactDuplicate(t *testing.T) {
	pts := []XY{{0, 0}, {1, 0}, {1, 0}, {1, 1}, {0, 1}}
	got := RemoveDuplicatesAndCollinear(pts, 1e-4)
	assert.Equal(t, []XY{{0, 0}, {1, 0}, {1, 1}, {0, 1}}, got)
}

func TestRemoveDuplicatesAndCollinear_RemovesCollinearPoint(t *testing.T) {
	pts := []XY{{0, 0}, {1, 0}, {2, 0}, {2, 1}, {0, 1}}
	got := RemoveDuplicatesAndCollinear(pts, 1e-4)
	assert.Equal(t, []XY{{0, 0}, {2, 0}, {2, 1}, {0, 1}}, got)
}

func TestRemoveDuplicatesAndCollinear_StopsAtTriangle(t *testing.T) {
	pts := []XY{{0, 0}, {1, 0}, {2, 0}, {1, 1}}
	got := RemoveDuplicatesAndCollinear(pts, 1e-4)
	assert.GreaterOrEqual(t, len(got), 3)
}

func TestCompareVertexSweep_DescendingYThenAscendingX(t *testing.T) {
	assert.True(t, vertexSweepLess(XY{0, 1}, XY{0, 0}))
	assert.True(t, vertexSweepLess(XY{0, 0}, XY{1, 0}))
	assert.False(t, vertexSweepLess(XY{0, 0}, XY{0, 0}))
}

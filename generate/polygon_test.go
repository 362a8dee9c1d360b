package generate_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/missinglink/polytri/generate"
	"github.com/missinglink/polytri/geom"
)

func TestRegularPolygon_IsCounterClockwise(t *testing.T) {
	pts := generate.RegularPolygon(geom.XY{0, 0}, 5, 6)
	assert.Equal(t, geom.WindingCounterClockwise, geom.WindingOrderOf(pts))
}

func TestRegularPolygon_RejectsTooFewSides(t *testing.T) {
	assert.Panics(t, func() {
		generate.RegularPolygon(geom.XY{0, 0}, 5, 2)
	})
}

func TestRandomPolygon_IsCCWAndInitializes(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for trial := 0; trial < 20; trial++ {
		pts := generate.RandomPolygon(rnd, geom.XY{0, 0}, 10, 15)
		assert.Equal(t, geom.WindingCounterClockwise, geom.WindingOrderOf(pts))
		_, err := geom.InitCCW(pts)
		require.NoError(t, err)
	}
}

func TestRandomMonotonePolygon_TriangulatesCleanly(t *testing.T) {
	rnd := rand.New(rand.NewSource(2))
	for trial := 0; trial < 20; trial++ {
		pts := generate.RandomMonotonePolygon(rnd, geom.XY{0, 0}, 10, 20, 5, 5)
		_, indices, err := geom.Triangulate(pts)
		require.NoError(t, err)
		assert.Len(t, indices, len(pts)-2)
	}
}

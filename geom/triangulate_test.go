package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_UnitSquare(t *testing.T) {
	d, err := Build(square())
	require.NoError(t, err)

	_, indices, err := d.ExtractTriangles()
	require.NoError(t, err)
	assert.Len(t, indices, 2)
}

func TestBuild_PreservesArea(t *testing.T) {
	pts := []XY{{0, 0}, {4, 0}, {4, 1}, {2, 1}, {2, 3}, {0, 3}} // L-shape, has a reflex vertex
	want := SignedArea(pts)

	d, err := Build(pts)
	require.NoError(t, err)

	points, indices, err := d.ExtractTriangles()
	require.NoError(t, err)

	var got float32
	for _, tri := range indices {
		a, b, c := points[tri[0]].XY(), points[tri[1]].XY(), points[tri[2]].XY()
		got += Cross(b.Sub(a), c.Sub(a))
	}
	assert.InDelta(t, want, got, 1e-3)
}

func TestBuild_AllFacesAreTriangles(t *testing.T) {
	pts := []XY{{0, 0}, {4, 0}, {4, 1}, {2, 1}, {2, 3}, {0, 3}}
	d, err := Build(pts)
	require.NoError(t, err)

	for f := range d.BoundedFaces() {
		assert.Equal(t, 3, f.Degree())
	}
}

func TestSplitToMonotone_SplitVertexGetsAtLeastOneDiagonal(t *testing.T) {
	// A rectangle with a notch cut up into its bottom edge: (1, 2) is a
	// split vertex (reflex, both neighbors below it). The L-shape used by
	// the tests above is already y-monotone and gets no diagonal here.
	pts := []XY{{0, 0}, {1, 2}, {2, 0}, {2, 3}, {0, 3}}
	d, err := InitCCW(pts)
	require.NoError(t, err)

	require.NoError(t, SplitToMonotone(d))
	assert.Greater(t, d.NumFaces(), 2)
}

func TestQuadFastPath_SplitsIntoTwoTriangles(t *testing.T) {
	// A non-square convex quad, to exercise splitQuad rather than the
	// general monotone-chain path.
	pts := []XY{{0, 0}, {3, 0}, {4, 2}, {1, 3}}
	d, err := Build(pts)
	require.NoError(t, err)

	_, indices, err := d.ExtractTriangles()
	require.NoError(t, err)
	assert.Len(t, indices, 2)
}

func TestBuild_TriangleIsAlreadyMonotone(t *testing.T) {
	pts := []XY{{0, 0}, {1, 0}, {0, 1}}
	d, err := Build(pts)
	require.NoError(t, err)

	_, indices, err := d.ExtractTriangles()
	require.NoError(t, err)
	assert.Len(t, indices, 1)
}

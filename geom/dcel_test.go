package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square() []XY {
	return []XY{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
}

func TestInitCCW_RejectsTooFewVertices(t *testing.T) {
	_, err := InitCCW([]XY{{0, 0}, {1, 0}})
	assert.ErrorIs(t, err, ErrTooFewVertices)
}

func TestInitCCW_RejectsClockwiseWinding(t *testing.T) {
	cw := []XY{{0, 0}, {0, 1}, {1, 1}, {1, 0}}
	_, err := InitCCW(cw)
	assert.ErrorIs(t, err, ErrNotCounterClockwise)
}

func TestInitCCW_TwinSymmetry(t *testing.T) {
	d, err := InitCCW(square())
	require.NoError(t, err)

	for h := range d.HalfEdges() {
		assert.True(t, h.Twin().Twin().Equal(h))
		assert.True(t, h.Twin().Origin().Equal(h.Destination()))
	}
}

func TestInitCCW_NextPrevSymmetry(t *testing.T) {
	d, err := InitCCW(square())
	require.NoError(t, err)

	for h := range d.HalfEdges() {
		assert.True(t, h.Next().Prev().Equal(h))
		assert.True(t, h.Prev().Next().Equal(h))
	}
}

func TestInitCCW_FaceConsistency(t *testing.T) {
	d, err := InitCCW(square())
	require.NoError(t, err)

	for f := range d.Faces() {
		for h := range f.Boundary() {
			assert.True(t, h.IncidentFace().Equal(f))
		}
	}
}

func TestAddDiagonal_RejectsOuterFace(t *testing.T) {
	d, err := InitCCW(square())
	require.NoError(t, err)

	outer := d.OuterFace().OuterComponent()
	_, _, err = d.AddDiagonal(outer, outer.Next().Next(), EdgeAssignNone)
	assert.ErrorIs(t, err, ErrOuterFace)
}

func TestAddDiagonal_RejectsAdjacentEdges(t *testing.T) {
	d, err := InitCCW(square())
	require.NoError(t, err)

	a := d.InnerFace().OuterComponent()
	_, _, err = d.AddDiagonal(a, a.Next(), EdgeAssignNone)
	assert.ErrorIs(t, err, ErrAlreadyAdjacent)
}

func TestAddDiagonal_SplitsSquareIntoTwoTriangles(t *testing.T) {
	d, err := InitCCW(square())
	require.NoError(t, err)

	a := d.InnerFace().OuterComponent() // 0 -> 1
	b := a.Next().Next()                // 2 -> 3
	_, _, err = d.AddDiagonal(a, b, EdgeAssignNone)
	require.NoError(t, err)

	assert.Equal(t, 3, d.NumFaces())
	for f := range d.BoundedFaces() {
		assert.Equal(t, 3, f.Degree())
	}
}

func TestEulerFormula_HoldsAfterTriangulation(t *testing.T) {
	pts := generatePentagonWithReflexVertex()
	d, err := Build(pts)
	require.NoError(t, err)

	v := d.NumVertices()
	e := d.NumHalfEdges() / 2
	f := d.NumFaces() // includes the outer face
	assert.Equal(t, 2, v-e+f)
}

func generatePentagonWithReflexVertex() []XY {
	return []XY{
		{0, 0},
		{2, 0},
		{1, 1}, // reflex, but a regular vertex in sweep order (one neighbor above, one below)
		{2, 2},
		{0, 2},
	}
}

func TestFacesOnVertex_SharedVertexSeesBothTriangles(t *testing.T) {
	d, err := InitCCW(square())
	require.NoError(t, err)

	a := d.InnerFace().OuterComponent()
	b := a.Next().Next()
	_, _, err = d.AddDiagonal(a, b, EdgeAssignNone)
	require.NoError(t, err)

	origin := a.Origin()
	count := 0
	for range origin.FacesOnVertex() {
		count++
	}
	assert.Equal(t, 2, count) // the two triangles; the outer face is skipped
}

package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePolygonWKT_ClosedRing(t *testing.T) {
	pts, err := ParsePolygonWKT("POLYGON ((0 0, 1 0, 1 1, 0 1, 0 0))")
	require.NoError(t, err)
	assert.Equal(t, []XY{{0, 0}, {1, 0}, {1, 1}, {0, 1}}, pts)
}

func TestParsePolygonWKT_NegativeCoordinates(t *testing.T) {
	pts, err := ParsePolygonWKT("polygon((-1 -1, 1 -1, 0 1))")
	require.NoError(t, err)
	assert.Equal(t, []XY{{-1, -1}, {1, -1}, {0, 1}}, pts)
}

func TestParsePolygonWKT_RejectsTrailingGarbage(t *testing.T) {
	_, err := ParsePolygonWKT("POLYGON ((0 0, 1 0, 0 1)) POLYGON ((0 0, 1 0, 0 1))")
	assert.Error(t, err)
}

func TestParsePolygonWKT_RoundTripsThroughInitCCW(t *testing.T) {
	pts, err := ParsePolygonWKT("POLYGON ((0 0, 2 0, 2 2, 0 2))")
	require.NoError(t, err)
	_, err = InitCCW(pts)
	assert.NoError(t, err)
}

package navfile_test

import (
	"strings"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/navgraph/navfile"
	"github.com/katalvlaran/navgraph/vec3"
)

func TestPathLineString(t *testing.T) {
	path := []vec3.Vector3{
		vec3.New(3, 7, 4),
		vec3.New(0, 2, 4),
		vec3.New(0, 0, 0),
	}

	ls := navfile.PathLineString(path)
	require.Equal(t, orb.LineString{{3, 4}, {0, 4}, {0, 0}}, ls, "Y is dropped, order kept")
	require.InDelta(t, 7.0, navfile.GroundLength(path), 1e-9)
}

func TestPathWKT(t *testing.T) {
	path := []vec3.Vector3{vec3.New(1, 0, 2), vec3.New(1.5, 9, -2)}

	s := navfile.PathWKT(path)
	require.True(t, strings.HasPrefix(s, "LINESTRING"), s)

	back, err := wkt.UnmarshalLineString(s)
	require.NoError(t, err)
	require.Equal(t, orb.LineString{{1, 2}, {1.5, -2}}, back)
}

func TestGroundLength_Degenerate(t *testing.T) {
	require.Zero(t, navfile.GroundLength(nil))
	require.Zero(t, navfile.GroundLength([]vec3.Vector3{vec3.New(1, 2, 3)}))
	require.Empty(t, navfile.PathLineString(nil))
}

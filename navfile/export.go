package navfile

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
	"github.com/paulmach/orb/planar"

	"github.com/katalvlaran/navgraph/vec3"
)

// PathLineString projects a positional path onto the ground plane: X stays
// X, Z becomes the second coordinate, and height (Y) is dropped. Point
// order is kept, so a destination-first path stays destination-first.
func PathLineString(path []vec3.Vector3) orb.LineString {
	ls := make(orb.LineString, 0, len(path))
	for _, p := range path {
		ls = append(ls, orb.Point{float64(p.X), float64(p.Z)})
	}

	return ls
}

// PathWKT returns the ground projection of path as a WKT LINESTRING.
func PathWKT(path []vec3.Vector3) string {
	return wkt.MarshalString(PathLineString(path))
}

// GroundLength returns the length of the ground projection of path.
func GroundLength(path []vec3.Vector3) float64 {
	return planar.Length(PathLineString(path))
}

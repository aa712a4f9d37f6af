package spatial

import (
	"github.com/dhconnelly/rtreego"

	"github.com/katalvlaran/navgraph/astar"
	"github.com/katalvlaran/navgraph/vec3"
)

const (
	dims       = 3
	minEntries = 25
	maxEntries = 50

	// pointTolerance is the half-extent of the box stored for each vertex.
	// rtreego rejects zero-length rectangles.
	pointTolerance = 1e-6
)

// vertexEntry stores one vertex in the R-tree.
type vertexEntry struct {
	index    int
	position vec3.Vector3
	bbox     rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *vertexEntry) Bounds() rtreego.Rect { return e.bbox }

// Index is a 3D R-tree over vertex positions.
type Index struct {
	tree *rtreego.Rtree
}

// NewIndex snapshots every vertex position of g.
// Complexity: O(V log V).
func NewIndex(g *astar.Graph) *Index {
	tree := rtreego.NewTree(dims, minEntries, maxEntries)
	for i, v := range g.Vertices() {
		tree.Insert(&vertexEntry{
			index:    i,
			position: v.Position,
			bbox:     point(v.Position).ToRect(pointTolerance),
		})
	}

	return &Index{tree: tree}
}

// Len returns the number of indexed vertices.
func (idx *Index) Len() int { return idx.tree.Size() }

// Nearest returns the index of the vertex closest to p, or false when the
// index is empty. Among equally distant vertices any one may be returned;
// use astar.Graph.ClosestVertexTo when the lowest index must win.
func (idx *Index) Nearest(p vec3.Vector3) (int, bool) {
	if idx.tree.Size() == 0 {
		return -1, false
	}
	e, ok := idx.tree.NearestNeighbor(point(p)).(*vertexEntry)
	if !ok || e == nil {
		return -1, false
	}

	return e.index, true
}

// NearestK returns up to k vertex indices ordered from nearest to farthest.
func (idx *Index) NearestK(p vec3.Vector3, k int) []int {
	if k <= 0 || idx.tree.Size() == 0 {
		return nil
	}
	if n := idx.tree.Size(); k > n {
		k = n
	}

	out := make([]int, 0, k)
	for _, obj := range idx.tree.NearestNeighbors(k, point(p)) {
		if e, ok := obj.(*vertexEntry); ok && e != nil {
			out = append(out, e.index)
		}
	}

	return out
}

// Within returns the indices of every vertex whose position lies inside the
// sphere of the given radius around p, in no particular order.
func (idx *Index) Within(p vec3.Vector3, radius float32) []int {
	if radius < 0 || idx.tree.Size() == 0 {
		return nil
	}

	box := point(p).ToRect(float64(radius) + pointTolerance)
	limit := radius * radius
	var out []int
	for _, obj := range idx.tree.SearchIntersect(box) {
		e := obj.(*vertexEntry)
		if e.position.SqrDistance(p) <= limit {
			out = append(out, e.index)
		}
	}

	return out
}

func point(v vec3.Vector3) rtreego.Point {
	return rtreego.Point{float64(v.X), float64(v.Y), float64(v.Z)}
}

// File: graph.go
// Role: Vertex storage, linking and index maintenance.
//
// Invariants:
//   - A vertex's index is its slot in g.vertices.
//   - RemoveVertex and InsertVertex renumber every neighbour reference so it
//     keeps pointing at the same logical vertex.
//   - AddVertex and PopVertex only touch the tail; no renumbering is needed
//     beyond dropping references to the popped vertex.
package astar

import (
	"fmt"
	"math"

	"github.com/katalvlaran/navgraph/vec3"
)

// Len returns the number of vertices.
func (g *Graph) Len() int { return len(g.vertices) }

// Vertices returns the backing vertex slice. Callers may read it freely;
// writes must respect the neighbour-index invariants.
func (g *Graph) Vertices() []Vertex { return g.vertices }

// SetVertices replaces the whole vertex set. Neighbour indices are neither
// validated nor renumbered; see Validate.
func (g *Graph) SetVertices(vs []Vertex) { g.vertices = vs }

// MaxSearchIterations returns the search iteration cap (negative = unbounded).
func (g *Graph) MaxSearchIterations() int { return g.maxSearchIterations }

// SetMaxSearchIterations changes the search iteration cap for every
// following search.
func (g *Graph) SetMaxSearchIterations(n int) { g.maxSearchIterations = n }

// Vertex returns a copy of the vertex at i. The neighbour slice is copied
// too, so later renumbering does not reach the result.
func (g *Graph) Vertex(i int) (Vertex, bool) {
	if i < 0 || i >= len(g.vertices) {
		return Vertex{}, false
	}

	v := g.vertices[i]
	v.Neighbours = append([]uint32(nil), v.Neighbours...)

	return v, true
}

// MutableVertex returns a pointer to the vertex at i for in-place edits.
// The pointer is invalidated by any operation that grows or shifts the
// vertex slice.
func (g *Graph) MutableVertex(i int) (*Vertex, bool) {
	if i < 0 || i >= len(g.vertices) {
		return nil, false
	}

	return &g.vertices[i], true
}

// AddVertex appends v and returns its index.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(v Vertex) int {
	g.vertices = append(g.vertices, v)

	return len(g.vertices) - 1
}

// PopVertex removes the last vertex and drops every reference to it.
// Returns false on an empty graph.
// Complexity: O(V + E).
func (g *Graph) PopVertex() (Vertex, bool) {
	if len(g.vertices) == 0 {
		return Vertex{}, false
	}

	return g.RemoveVertex(len(g.vertices) - 1), true
}

// RemoveVertex removes the vertex at index and returns it.
//
// Every reference equal to index is deleted from the remaining vertices and
// every reference above index is decremented. Panics if index is out of
// range.
// Complexity: O(V + E).
func (g *Graph) RemoveVertex(index int) Vertex {
	if index < 0 || index >= len(g.vertices) {
		panic(fmt.Sprintf("astar: RemoveVertex index %d out of range [0,%d)", index, len(g.vertices)))
	}

	removed := g.vertices[index]
	g.vertices = append(g.vertices[:index], g.vertices[index+1:]...)

	target := uint32(index)
	for vi := range g.vertices {
		nbs := g.vertices[vi].Neighbours
		kept := nbs[:0]
		for _, n := range nbs {
			switch {
			case n == target:
				continue
			case n > target:
				n--
			}
			kept = append(kept, n)
		}
		g.vertices[vi].Neighbours = kept
	}

	return removed
}

// InsertVertex places v at index, shifting later vertices one slot up, and
// increments every reference >= index in every vertex (v included). Nothing
// is linked to v automatically. Panics if index > Len().
// Complexity: O(V + E).
func (g *Graph) InsertVertex(index int, v Vertex) {
	if index < 0 || index > len(g.vertices) {
		panic(fmt.Sprintf("astar: InsertVertex index %d out of range [0,%d]", index, len(g.vertices)))
	}

	// v may share its neighbour array with a stored vertex; each array must
	// be renumbered exactly once.
	v.Neighbours = append([]uint32(nil), v.Neighbours...)

	g.vertices = append(g.vertices, Vertex{})
	copy(g.vertices[index+1:], g.vertices[index:])
	g.vertices[index] = v

	target := uint32(index)
	for vi := range g.vertices {
		nbs := g.vertices[vi].Neighbours
		for ni := range nbs {
			if nbs[ni] >= target {
				nbs[ni]++
			}
		}
	}
}

// LinkUnidirect adds the edge a→b unless it already exists. It is a silent
// no-op when a is out of range; b is not checked.
func (g *Graph) LinkUnidirect(a, b int) {
	if a < 0 || a >= len(g.vertices) {
		return
	}
	v := &g.vertices[a]
	if v.HasNeighbour(uint32(b)) {
		return
	}
	v.Neighbours = append(v.Neighbours, uint32(b))
}

// LinkBidirect adds both a→b and b→a.
func (g *Graph) LinkBidirect(a, b int) {
	g.LinkUnidirect(a, b)
	g.LinkUnidirect(b, a)
}

// ClosestVertexTo returns the index of the vertex nearest to point, or false
// on an empty graph. Ties keep the lowest index.
// Complexity: O(V).
func (g *Graph) ClosestVertexTo(point vec3.Vector3) (int, bool) {
	closest := -1
	best := float32(math.MaxFloat32)
	for i := range g.vertices {
		d := g.vertices[i].Position.SqrDistance(point)
		if closest < 0 || d < best {
			closest, best = i, d
		}
	}

	return closest, closest >= 0
}

// Validate reports the first self-loop or dangling neighbour index as a
// *PathError. It never mutates the graph.
func (g *Graph) Validate() error {
	n := uint32(len(g.vertices))
	for i := range g.vertices {
		for _, nb := range g.vertices[i].Neighbours {
			if nb == uint32(i) {
				return cyclicReference(i)
			}
			if nb >= n {
				return invalidIndex(int(nb))
			}
		}
	}

	return nil
}

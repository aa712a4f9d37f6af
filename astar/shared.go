package astar

import (
	"sync"

	"github.com/katalvlaran/navgraph/vec3"
)

// SharedGraph guards a Graph with a sync.RWMutex. Searches and queries take
// the read lock and may run in parallel; mutations take the write lock.
type SharedGraph struct {
	mu sync.RWMutex
	g  *Graph
}

// NewSharedGraph wraps g. The caller must stop using g directly.
func NewSharedGraph(g *Graph) *SharedGraph {
	if g == nil {
		g = NewGraph()
	}

	return &SharedGraph{g: g}
}

// Read runs fn with the read lock held. fn must not mutate the graph.
func (s *SharedGraph) Read(fn func(g *Graph)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.g)
}

// Write runs fn with the write lock held.
func (s *SharedGraph) Write(fn func(g *Graph)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.g)
}

// Len returns the number of vertices.
func (s *SharedGraph) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.g.Len()
}

// BuildIndexedPath is Graph.BuildIndexedPath under the read lock.
func (s *SharedGraph) BuildIndexedPath(from, to int, dst []int) ([]int, PathKind, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.g.BuildIndexedPath(from, to, dst)
}

// BuildPositionalPath is Graph.BuildPositionalPath under the read lock.
func (s *SharedGraph) BuildPositionalPath(from, to int, dst []vec3.Vector3) ([]vec3.Vector3, PathKind, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.g.BuildPositionalPath(from, to, dst)
}

// ClosestVertexTo is Graph.ClosestVertexTo under the read lock.
func (s *SharedGraph) ClosestVertexTo(p vec3.Vector3) (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.g.ClosestVertexTo(p)
}

// Vertex is Graph.Vertex under the read lock. The result owns its
// neighbour slice, so it stays valid after the lock is released.
func (s *SharedGraph) Vertex(i int) (Vertex, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.g.Vertex(i)
}

// AddVertex is Graph.AddVertex under the write lock.
func (s *SharedGraph) AddVertex(v Vertex) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.g.AddVertex(v)
}

// InsertVertex is Graph.InsertVertex under the write lock.
func (s *SharedGraph) InsertVertex(index int, v Vertex) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.g.InsertVertex(index, v)
}

// RemoveVertex is Graph.RemoveVertex under the write lock.
func (s *SharedGraph) RemoveVertex(index int) Vertex {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.g.RemoveVertex(index)
}

// PopVertex is Graph.PopVertex under the write lock.
func (s *SharedGraph) PopVertex() (Vertex, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.g.PopVertex()
}

// LinkUnidirect is Graph.LinkUnidirect under the write lock.
func (s *SharedGraph) LinkUnidirect(a, b int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.g.LinkUnidirect(a, b)
}

// LinkBidirect is Graph.LinkBidirect under the write lock.
func (s *SharedGraph) LinkBidirect(a, b int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.g.LinkBidirect(a, b)
}

// SetMaxSearchIterations is Graph.SetMaxSearchIterations under the write lock.
func (s *SharedGraph) SetMaxSearchIterations(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.g.SetMaxSearchIterations(n)
}

package astar

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/navgraph/vec3"
)

// DefaultMaxSearchIterations is the iteration cap of a freshly built Graph.
const DefaultMaxSearchIterations = 1000

// Sentinel errors returned by the search entry points and by Validate.
var (
	// ErrEmptyGraph indicates that the graph has no vertices.
	ErrEmptyGraph = errors.New("astar: graph is empty")

	// ErrInvalidIndex indicates that a begin, end or neighbour index is out of bounds.
	ErrInvalidIndex = errors.New("astar: invalid vertex index")

	// ErrCyclicReference indicates that a vertex lists itself as a neighbour.
	ErrCyclicReference = errors.New("astar: cyclic reference found")

	// ErrHitMaxSearchIterations indicates that the search ran out of its
	// iteration budget. The output path still holds the best prefix found.
	ErrHitMaxSearchIterations = errors.New("astar: hit max search iterations")
)

// PathError carries the payload of a failed search. Err is one of the
// sentinel errors above; Index is the offending vertex index, or the
// iteration limit for ErrHitMaxSearchIterations, or -1 for ErrEmptyGraph.
type PathError struct {
	Err   error
	Index int
}

// Error implements the error interface.
func (e *PathError) Error() string {
	switch e.Err {
	case ErrEmptyGraph:
		return e.Err.Error()
	case ErrHitMaxSearchIterations:
		return fmt.Sprintf("%v: limit %d", e.Err, e.Index)
	default:
		return fmt.Sprintf("%v: %d", e.Err, e.Index)
	}
}

// Unwrap exposes the sentinel for errors.Is.
func (e *PathError) Unwrap() error { return e.Err }

func invalidIndex(i int) error { return &PathError{Err: ErrInvalidIndex, Index: i} }

func cyclicReference(i int) error { return &PathError{Err: ErrCyclicReference, Index: i} }

func hitMaxIterations(n int) error { return &PathError{Err: ErrHitMaxSearchIterations, Index: n} }

var errEmpty = &PathError{Err: ErrEmptyGraph, Index: -1}

// PathKind tells whether a search reached its destination.
type PathKind int

const (
	// Full means the path ends at the requested destination.
	Full PathKind = iota
	// Partial means the path ends at the best vertex discovered before the
	// search ran out of candidates or iterations.
	Partial
)

// String returns "full" or "partial".
func (k PathKind) String() string {
	switch k {
	case Full:
		return "full"
	case Partial:
		return "partial"
	default:
		return fmt.Sprintf("PathKind(%d)", int(k))
	}
}

// Vertex is one navigable point of a Graph.
//
// Neighbours holds outgoing edges as indices into the owning graph's vertex
// slice. GPenalty multiplies the cost of entering this vertex; values above
// 1 mark the vertex as harder to traverse.
type Vertex struct {
	Position   vec3.Vector3
	Neighbours []uint32
	GPenalty   float32
}

// NewVertex returns an unlinked vertex at position with a penalty of 1.
func NewVertex(position vec3.Vector3) Vertex {
	return Vertex{Position: position, GPenalty: 1}
}

// HasNeighbour reports whether i is among v's outgoing edges.
func (v *Vertex) HasNeighbour(i uint32) bool {
	for _, n := range v.Neighbours {
		if n == i {
			return true
		}
	}

	return false
}

// ClearNeighbours drops every outgoing edge of v.
func (v *Vertex) ClearNeighbours() { v.Neighbours = v.Neighbours[:0] }

// GraphOption configures a Graph before use.
type GraphOption func(g *Graph)

// WithMaxSearchIterations sets the search iteration cap. A negative value
// disables the cap.
func WithMaxSearchIterations(n int) GraphOption {
	return func(g *Graph) { g.maxSearchIterations = n }
}

// WithVertices seeds the graph with vs without validating neighbour indices.
func WithVertices(vs []Vertex) GraphOption {
	return func(g *Graph) { g.vertices = vs }
}

// Graph is a dense, index-addressed weighted graph searched with A*.
//
// A vertex's identity is its position in the vertex slice. Graph is not
// safe for concurrent mutation; concurrent searches on an unchanging graph
// are safe. Use SharedGraph when mutations and searches interleave.
type Graph struct {
	vertices            []Vertex
	maxSearchIterations int
}

// NewGraph creates an empty Graph with a cap of DefaultMaxSearchIterations.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{maxSearchIterations: DefaultMaxSearchIterations}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Package astar implements a weighted navigation graph and an anytime A*
// search over it.
//
// Overview:
//
//   - A Graph is a dense slice of Vertex values. A vertex's index is its
//     identity; edges are directed neighbour indices stored on the source
//     vertex. Link both ways with LinkBidirect for two-way traversal.
//   - Every vertex has a position and a GPenalty multiplier that makes
//     entering it more expensive (rough terrain, crowded areas) without
//     changing topology.
//   - RemoveVertex and InsertVertex renumber neighbour indices across the
//     whole graph, so edges keep pointing at the same logical vertices.
//
// Search semantics:
//
//   - Edge cost and heuristic are both squared Euclidean distances, so the
//     search minimises that cost, not geometric path length.
//   - The search is anytime: when the destination cannot be reached it
//     returns the best prefix it found as a Partial path instead of failing.
//   - Paths are returned destination first: path[0] is the reached vertex,
//     path[len-1] is the origin.
//   - Duplicate queue entries for a vertex are allowed; a per-search
//     "searched" flag only prevents pushing already expanded vertices.
//
// Iteration budget:
//
//	MaxSearchIterations (default 1000, negative = unbounded) caps the main
//	loop. Exhausting the queue yields a Partial success, while completing
//	the last permitted iteration yields ErrHitMaxSearchIterations with the
//	best prefix still returned.
//
// Errors (sentinel, wrapped in *PathError):
//
//   - ErrEmptyGraph             – the graph has no vertices.
//   - ErrInvalidIndex           – a begin/end/neighbour index is out of range.
//   - ErrCyclicReference        – a vertex lists itself as a neighbour.
//   - ErrHitMaxSearchIterations – the iteration budget ran out.
//
// Concurrency:
//
//	A *Graph may serve many searches at once as long as nobody mutates it.
//	SharedGraph wraps a Graph in a sync.RWMutex for mixed workloads.
//
// Example:
//
//	g := astar.NewGraph()
//	a := g.AddVertex(astar.NewVertex(vec3.New(0, 0, 0)))
//	b := g.AddVertex(astar.NewVertex(vec3.New(1, 0, 0)))
//	g.LinkBidirect(a, b)
//	path, kind, err := g.BuildPositionalPath(a, b, nil)
package astar

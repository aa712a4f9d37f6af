// File: search.go
// Role: Anytime A* over the index-addressed graph.
//
// The search never mutates the graph: the open queue, the searched flags and
// every candidate path are allocated per call, so any number of searches may
// share one unchanging *Graph.
package astar

import (
	"container/heap"

	"github.com/katalvlaran/navgraph/vec3"
)

// BuildIndexedPath searches from → to and appends the result to dst[:0].
//
// The returned path runs destination first: path[0] is the reached vertex
// and path[len-1] is from. The kind is Full when path[0] == to.
//
// Validation (in order):
//  1. Empty graph: ErrEmptyGraph, empty path.
//  2. to out of range: ErrInvalidIndex, empty path.
//  3. from == to: Full single-vertex path, no search.
//
// Search:
//   - Candidates are ordered by lower f score, then lower f - g.
//   - Entering neighbour n from c costs |c - n|² * n.GPenalty; the heuristic
//     is |n - goal|².
//   - A vertex is flagged searched after its neighbours are pushed; flagged
//     vertices are never pushed again, but queued duplicates are still
//     popped and expanded.
//   - The best candidate popped so far is remembered. Popping a candidate
//     that ends at to stops the search with a Full path.
//   - An empty queue ends the search with the best candidate as a Partial
//     path. Completing the last permitted iteration (MaxSearchIterations-1)
//     returns ErrHitMaxSearchIterations together with the best candidate.
//
// Errors other than ErrHitMaxSearchIterations leave the returned path empty.
// The returned kind is Partial whenever err != nil.
//
// Complexity: O(I · d · log Q) time for I iterations, degree d and queue size Q.
func (g *Graph) BuildIndexedPath(from, to int, dst []int) ([]int, PathKind, error) {
	dst = dst[:0]
	n := len(g.vertices)

	// 1) Fast paths.
	if n == 0 {
		return dst, Partial, errEmpty
	}
	if to < 0 || to >= n {
		return dst, Partial, invalidIndex(to)
	}
	if from == to {
		return append(dst, to), Full, nil
	}

	// 2) Per-search state.
	goal := g.vertices[to].Position
	searched := make([]bool, n)
	open := make(pathQueue, 0, 64)
	heap.Push(&open, seedPath(from))

	var best *partialPath
	capped := false
	limit := g.maxSearchIterations

	// 3) Main loop.
	for iteration := 0; limit < 0 || iteration < limit; iteration++ {
		if open.Len() == 0 {
			break
		}

		current := heap.Pop(&open).(*partialPath)
		ci := current.last()
		if ci == to {
			best = current
			break
		}
		if best == nil || current.better(best) {
			best = current
		}

		if ci < 0 || ci >= n {
			return dst, Partial, invalidIndex(ci)
		}
		cv := &g.vertices[ci]

		for _, raw := range cv.Neighbours {
			if raw == uint32(ci) {
				return dst, Partial, cyclicReference(ci)
			}
			if raw >= uint32(n) {
				return dst, Partial, invalidIndex(int(raw))
			}
			ni := int(raw)
			if searched[ni] {
				continue
			}

			nv := &g.vertices[ni]
			gScore := current.gScore + cv.Position.SqrDistance(nv.Position)*nv.GPenalty
			fScore := gScore + heuristic(nv.Position, goal)
			heap.Push(&open, current.extend(ni, gScore, fScore))
		}

		searched[ci] = true

		if iteration == limit-1 {
			capped = true
		}
	}

	// 4) Reconstruct destination-first.
	if best != nil {
		for i := len(best.vertices) - 1; i >= 0; i-- {
			dst = append(dst, best.vertices[i])
		}
	}

	if capped {
		return dst, Partial, hitMaxIterations(limit)
	}
	if len(dst) > 0 && dst[0] == to {
		return dst, Full, nil
	}

	return dst, Partial, nil
}

// BuildPositionalPath runs BuildIndexedPath and maps each index to its
// vertex position, keeping the destination-first order, the kind and the
// error. On ErrHitMaxSearchIterations the best-effort positions are still
// returned.
func (g *Graph) BuildPositionalPath(from, to int, dst []vec3.Vector3) ([]vec3.Vector3, PathKind, error) {
	dst = dst[:0]

	indices, kind, err := g.BuildIndexedPath(from, to, nil)
	for _, i := range indices {
		if i < 0 || i >= len(g.vertices) {
			return dst[:0], Partial, invalidIndex(i)
		}
		dst = append(dst, g.vertices[i].Position)
	}

	return dst, kind, err
}

// heuristic is the squared distance to the goal, consistent with the
// squared-distance edge cost.
func heuristic(a, goal vec3.Vector3) float32 { return a.SqrDistance(goal) }

package astar

import "math"

// partialPath is a candidate path prefix on the open queue. vertices runs
// from the search origin to the candidate's frontier vertex.
type partialPath struct {
	vertices []int
	gScore   float32
	fScore   float32
}

// seedPath starts a search at origin. Its f score is the maximum float so
// that any scored extension ranks above it.
func seedPath(origin int) *partialPath {
	return &partialPath{vertices: []int{origin}, fScore: math.MaxFloat32}
}

// last returns the frontier vertex.
func (p *partialPath) last() int { return p.vertices[len(p.vertices)-1] }

// extend copies p and appends next with the given scores. Prefixes are
// shared by many candidates, so the slice is never appended in place.
func (p *partialPath) extend(next int, g, f float32) *partialPath {
	vs := make([]int, len(p.vertices)+1)
	copy(vs, p.vertices)
	vs[len(p.vertices)] = next

	return &partialPath{vertices: vs, gScore: g, fScore: f}
}

// better reports whether p ranks strictly above o: lower f score first,
// then lower remaining estimate (f - g). Both use float total ordering.
func (p *partialPath) better(o *partialPath) bool {
	if c := totalCmp(p.fScore, o.fScore); c != 0 {
		return c < 0
	}

	return totalCmp(p.fScore-p.gScore, o.fScore-o.gScore) < 0
}

// totalCmp orders float32 values as IEEE 754 totalOrder does, so NaN and
// signed zeros have a fixed place and the heap stays well-formed.
func totalCmp(a, b float32) int {
	ka, kb := totalKey(a), totalKey(b)
	switch {
	case ka < kb:
		return -1
	case ka > kb:
		return 1
	default:
		return 0
	}
}

func totalKey(f float32) int32 {
	bits := int32(math.Float32bits(f))

	return bits ^ int32(uint32(bits>>31)>>1)
}

// pathQueue is a container/heap of candidates; the best candidate pops first.
// Duplicate entries for one vertex are allowed.
type pathQueue []*partialPath

// Len returns the number of queued candidates.
func (q pathQueue) Len() int { return len(q) }

// Less orders by better so heap.Pop yields the best candidate.
func (q pathQueue) Less(i, j int) bool { return q[i].better(q[j]) }

// Swap swaps two candidates.
func (q pathQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

// Push appends x, which must be a *partialPath.
func (q *pathQueue) Push(x interface{}) { *q = append(*q, x.(*partialPath)) }

// Pop removes and returns the last element.
func (q *pathQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]

	return item
}

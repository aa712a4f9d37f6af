package astar_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/navgraph/astar"
	"github.com/katalvlaran/navgraph/vec3"
)

// ------------------------------------------------------------------------
// 1. Validation and fast paths.
// ------------------------------------------------------------------------

func TestBuildPositionalPath_EmptyGraph(t *testing.T) {
	g := astar.NewGraph()
	for _, tc := range [][2]int{{0, 0}, {0, 1}, {5, 3}, {-1, -1}} {
		path, kind, err := g.BuildPositionalPath(tc[0], tc[1], []vec3.Vector3{{X: 1}})
		require.ErrorIs(t, err, astar.ErrEmptyGraph, "from=%d to=%d", tc[0], tc[1])
		require.Empty(t, path)
		require.Equal(t, astar.Partial, kind)
	}
}

func TestBuildIndexedPath_TargetOutOfBounds(t *testing.T) {
	g := triangle()
	for _, to := range []int{3, 100, -1} {
		path, _, err := g.BuildIndexedPath(0, to, []int{7, 7, 7})
		require.ErrorIs(t, err, astar.ErrInvalidIndex)
		require.Empty(t, path)

		var pe *astar.PathError
		require.True(t, errors.As(err, &pe))
		require.Equal(t, to, pe.Index)
	}

	pos, _, err := g.BuildPositionalPath(1, 3, nil)
	require.ErrorIs(t, err, astar.ErrInvalidIndex)
	require.Empty(t, pos)
}

func TestBuildIndexedPath_SourceOutOfBounds(t *testing.T) {
	g := triangle()
	path, _, err := g.BuildIndexedPath(9, 0, nil)
	require.ErrorIs(t, err, astar.ErrInvalidIndex)
	require.Empty(t, path)

	var pe *astar.PathError
	require.True(t, errors.As(err, &pe))
	require.Equal(t, 9, pe.Index)
}

func TestBuildPositionalPath_Trivial(t *testing.T) {
	g := triangle()
	for i := 0; i < g.Len(); i++ {
		path, kind, err := g.BuildPositionalPath(i, i, nil)
		require.NoError(t, err)
		require.Equal(t, astar.Full, kind)
		require.Equal(t, []vec3.Vector3{g.Vertices()[i].Position}, path)
	}
}

// ------------------------------------------------------------------------
// 2. Full paths.
// ------------------------------------------------------------------------

func TestBuildIndexedPath_LineDestinationFirst(t *testing.T) {
	g := astar.NewGraph()
	line(g, 4, 0)

	path, kind, err := g.BuildIndexedPath(0, 3, nil)
	require.NoError(t, err)
	require.Equal(t, astar.Full, kind)
	require.Equal(t, []int{3, 2, 1, 0}, path)

	pos, kind, err := g.BuildPositionalPath(3, 0, nil)
	require.NoError(t, err)
	require.Equal(t, astar.Full, kind)
	require.Equal(t, []vec3.Vector3{
		vec3.New(0, 0, 0), vec3.New(1, 0, 0), vec3.New(2, 0, 0), vec3.New(3, 0, 0),
	}, pos)
}

func TestBuildIndexedPath_ReusesBuffer(t *testing.T) {
	g := astar.NewGraph()
	line(g, 3, 0)

	buf := make([]int, 5, 16)
	path, _, err := g.BuildIndexedPath(0, 2, buf)
	require.NoError(t, err)
	require.Equal(t, []int{2, 1, 0}, path)
	require.Equal(t, 16, cap(path), "buffer capacity should be reused")
}

// TestBuildIndexedPath_RandomGrid runs 1000 random searches on a 40×40 grid
// and checks every result is a Full, grid-adjacent, destination-first path.
func TestBuildIndexedPath_RandomGrid(t *testing.T) {
	const n = 40
	g := astar.NewGraph()
	gridGraph(g, n, 0)

	rng := rand.New(rand.NewSource(42))
	var path []vec3.Vector3
	for i := 0; i < 1000; i++ {
		from, to := rng.Intn(n*n), rng.Intn(n*n)

		var kind astar.PathKind
		var err error
		path, kind, err = g.BuildPositionalPath(from, to, path)
		require.NoError(t, err, "from=%d to=%d", from, to)
		require.Equal(t, astar.Full, kind, "from=%d to=%d", from, to)
		require.NotEmpty(t, path)

		require.Equal(t, g.Vertices()[to].Position, path[0])
		require.Equal(t, g.Vertices()[from].Position, path[len(path)-1])
		for j := 1; j < len(path); j++ {
			require.LessOrEqual(t, float64(path[j-1].Distance(path[j])), math.Sqrt2)
		}
	}
}

func TestBuildIndexedPath_PenaltySteersAround(t *testing.T) {
	// 0 at the origin, 3 two units along X, 1 and 2 on either side.
	build := func(roughSide int) *astar.Graph {
		g := astar.NewGraph()
		g.AddVertex(astar.NewVertex(vec3.New(0, 0, 0)))
		g.AddVertex(astar.NewVertex(vec3.New(1, 0, 1)))
		g.AddVertex(astar.NewVertex(vec3.New(1, 0, -1)))
		g.AddVertex(astar.NewVertex(vec3.New(2, 0, 0)))
		g.LinkBidirect(0, 1)
		g.LinkBidirect(0, 2)
		g.LinkBidirect(1, 3)
		g.LinkBidirect(2, 3)
		v, _ := g.MutableVertex(roughSide)
		v.GPenalty = 10

		return g
	}

	path, kind, err := build(1).BuildIndexedPath(0, 3, nil)
	require.NoError(t, err)
	require.Equal(t, astar.Full, kind)
	require.Equal(t, []int{3, 2, 0}, path)

	path, _, err = build(2).BuildIndexedPath(0, 3, nil)
	require.NoError(t, err)
	require.Equal(t, []int{3, 1, 0}, path)
}

// ------------------------------------------------------------------------
// 3. Partial paths and the iteration budget.
// ------------------------------------------------------------------------

// TestBuildIndexedPath_PartialStopsAtBoundary searches from a five-vertex
// chain towards an unreachable chain further along X. The best prefix ends
// at the chain's last vertex, the one facing the goal.
func TestBuildIndexedPath_PartialStopsAtBoundary(t *testing.T) {
	g := astar.NewGraph()
	line(g, 5, 0)  // 0..4 at x=0..4
	line(g, 3, 10) // 5..7 at x=10..12

	path, kind, err := g.BuildIndexedPath(0, 5, nil)
	require.NoError(t, err)
	require.Equal(t, astar.Partial, kind)
	require.Equal(t, []int{4, 3, 2, 1, 0}, path)

	pos, kind, err := g.BuildPositionalPath(0, 5, nil)
	require.NoError(t, err)
	require.Equal(t, astar.Partial, kind)
	require.Equal(t, vec3.New(4, 0, 0), pos[0])
	require.Equal(t, vec3.New(0, 0, 0), pos[len(pos)-1])
}

func TestBuildIndexedPath_DisconnectedIslands(t *testing.T) {
	const n = 10
	g := astar.NewGraph()
	a := gridGraph(g, n, 0)
	b := gridGraph(g, n, n+5)

	from := a + 5*n
	to := b + 5*n + 3

	path, kind, err := g.BuildIndexedPath(from, to, nil)
	require.Equal(t, astar.Partial, kind)
	if err != nil {
		require.ErrorIs(t, err, astar.ErrHitMaxSearchIterations)
	}
	require.NotEmpty(t, path)
	require.Equal(t, from, path[len(path)-1])
	for _, i := range path {
		require.Less(t, i, b, "path must stay on the origin island")
	}
}

func TestBuildIndexedPath_DirectedEdge(t *testing.T) {
	g := astar.NewGraph()
	g.AddVertex(astar.NewVertex(vec3.New(0, 0, 0)))
	g.AddVertex(astar.NewVertex(vec3.New(1, 0, 0)))
	g.LinkUnidirect(0, 1)

	path, kind, err := g.BuildIndexedPath(0, 1, nil)
	require.NoError(t, err)
	require.Equal(t, astar.Full, kind)
	require.Equal(t, []int{1, 0}, path)

	path, kind, err = g.BuildIndexedPath(1, 0, nil)
	require.NoError(t, err)
	require.Equal(t, astar.Partial, kind)
	require.Equal(t, []int{1}, path)
}

func TestBuildIndexedPath_IterationCap(t *testing.T) {
	const n = 40
	g := astar.NewGraph(astar.WithMaxSearchIterations(5))
	gridGraph(g, n, 0)

	from, to := 0, n*n-1
	path, kind, err := g.BuildIndexedPath(from, to, nil)
	require.NotEqual(t, astar.Full, kind)
	if err != nil {
		require.ErrorIs(t, err, astar.ErrHitMaxSearchIterations)
		var pe *astar.PathError
		require.True(t, errors.As(err, &pe))
		require.Equal(t, 5, pe.Index)
	}
	require.NotEmpty(t, path, "best prefix must be returned even when capped")
	require.Equal(t, from, path[len(path)-1])
	require.NotEqual(t, to, path[0])

	pos, kind, err := g.BuildPositionalPath(from, to, nil)
	require.ErrorIs(t, err, astar.ErrHitMaxSearchIterations)
	require.Equal(t, astar.Partial, kind)
	require.Len(t, pos, len(path))
}

// TestBuildIndexedPath_CapVersusExhaustion pins the asymmetry between a
// capped search (error) and an exhausted queue (Partial success).
func TestBuildIndexedPath_CapVersusExhaustion(t *testing.T) {
	g := astar.NewGraph()
	g.AddVertex(astar.NewVertex(vec3.New(0, 0, 0))) // isolated origin
	g.AddVertex(astar.NewVertex(vec3.New(3, 0, 0)))

	// With one iteration the only expansion is also the last permitted one.
	g.SetMaxSearchIterations(1)
	path, kind, err := g.BuildIndexedPath(0, 1, nil)
	require.ErrorIs(t, err, astar.ErrHitMaxSearchIterations)
	require.Equal(t, astar.Partial, kind)
	require.Equal(t, []int{0}, path)

	// A second iteration finds the queue empty first.
	g.SetMaxSearchIterations(2)
	path, kind, err = g.BuildIndexedPath(0, 1, nil)
	require.NoError(t, err)
	require.Equal(t, astar.Partial, kind)
	require.Equal(t, []int{0}, path)

	g.SetMaxSearchIterations(-1)
	path, kind, err = g.BuildIndexedPath(0, 1, nil)
	require.NoError(t, err)
	require.Equal(t, astar.Partial, kind)
	require.Equal(t, []int{0}, path)
}

func TestBuildIndexedPath_FoundOnLastIteration(t *testing.T) {
	g := astar.NewGraph()
	line(g, 2, 0)

	// Iteration 0 expands the origin, iteration 1 pops the goal.
	g.SetMaxSearchIterations(2)
	path, kind, err := g.BuildIndexedPath(0, 1, nil)
	require.NoError(t, err)
	require.Equal(t, astar.Full, kind)
	require.Equal(t, []int{1, 0}, path)
}

// ------------------------------------------------------------------------
// 4. Malformed graphs.
// ------------------------------------------------------------------------

func TestBuildIndexedPath_SelfLoop(t *testing.T) {
	g := astar.NewGraph()
	line(g, 3, 0)
	v, _ := g.MutableVertex(1)
	v.Neighbours = append(v.Neighbours, 1)

	path, _, err := g.BuildIndexedPath(0, 2, nil)
	require.ErrorIs(t, err, astar.ErrCyclicReference)
	require.Empty(t, path)

	var pe *astar.PathError
	require.True(t, errors.As(err, &pe))
	require.Equal(t, 1, pe.Index)
	assert.Contains(t, err.Error(), "cyclic reference")
}

func TestBuildIndexedPath_DanglingNeighbour(t *testing.T) {
	g := astar.NewGraph()
	g.SetVertices([]astar.Vertex{
		{Position: vec3.New(0, 0, 0), Neighbours: []uint32{2}, GPenalty: 1},
		{Position: vec3.New(1, 0, 0), GPenalty: 1},
	})

	path, _, err := g.BuildIndexedPath(0, 1, nil)
	require.ErrorIs(t, err, astar.ErrInvalidIndex)
	require.Empty(t, path)

	var pe *astar.PathError
	require.True(t, errors.As(err, &pe))
	require.Equal(t, 2, pe.Index)
}

// TestBuildIndexedPath_HugeNeighbourIndex checks the bound is applied to the
// raw uint32, so the top of the range is reported instead of indexing.
func TestBuildIndexedPath_HugeNeighbourIndex(t *testing.T) {
	g := astar.NewGraph()
	g.SetVertices([]astar.Vertex{
		{Position: vec3.New(0, 0, 0), Neighbours: []uint32{math.MaxUint32, 1 << 31}, GPenalty: 1},
		{Position: vec3.New(1, 0, 0), GPenalty: 1},
	})

	var path []int
	var err error
	require.NotPanics(t, func() { path, _, err = g.BuildIndexedPath(0, 1, nil) })
	require.ErrorIs(t, err, astar.ErrInvalidIndex)
	require.Empty(t, path)
}

func TestPathKind_String(t *testing.T) {
	require.Equal(t, "full", astar.Full.String())
	require.Equal(t, "partial", astar.Partial.String())
	require.Equal(t, "PathKind(9)", astar.PathKind(9).String())
}

func TestPathError_Messages(t *testing.T) {
	g := astar.NewGraph()
	_, _, err := g.BuildIndexedPath(0, 0, nil)
	require.EqualError(t, err, "astar: graph is empty")

	line(g, 2, 0)
	_, _, err = g.BuildIndexedPath(0, 4, nil)
	require.EqualError(t, err, "astar: invalid vertex index: 4")

	g.AddVertex(astar.NewVertex(vec3.New(50, 0, 0)))
	g.SetMaxSearchIterations(1)
	_, _, err = g.BuildIndexedPath(0, 2, nil)
	require.EqualError(t, err, "astar: hit max search iterations: limit 1")
}

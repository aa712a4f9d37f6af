package astar_test

import (
	"github.com/katalvlaran/navgraph/astar"
	"github.com/katalvlaran/navgraph/vec3"
)

// gridGraph builds an n×n grid on the XZ plane with unit spacing. Cell (x,z)
// has index z*n + x + offset and is linked both ways to its 4-neighbours.
// offsetX shifts every position along X, so two grids can sit side by side.
func gridGraph(g *astar.Graph, n int, offsetX float32) (first int) {
	first = g.Len()
	for z := 0; z < n; z++ {
		for x := 0; x < n; x++ {
			g.AddVertex(astar.NewVertex(vec3.New(float32(x)+offsetX, 0, float32(z))))
		}
	}
	for z := 0; z < n; z++ {
		for x := 0; x < n; x++ {
			i := first + z*n + x
			if x+1 < n {
				g.LinkBidirect(i, i+1)
			}
			if z+1 < n {
				g.LinkBidirect(i, i+n)
			}
		}
	}

	return first
}

// triangle builds three vertices linked 0-1, 1-2, 2-0 in that order.
func triangle() *astar.Graph {
	g := astar.NewGraph()
	g.AddVertex(astar.NewVertex(vec3.New(0, 0, 0)))
	g.AddVertex(astar.NewVertex(vec3.New(1, 0, 0)))
	g.AddVertex(astar.NewVertex(vec3.New(0, 0, 1)))
	g.LinkBidirect(0, 1)
	g.LinkBidirect(1, 2)
	g.LinkBidirect(2, 0)

	return g
}

// line builds count vertices along +X starting at startX, linked as a chain.
func line(g *astar.Graph, count int, startX float32) (first int) {
	first = g.Len()
	for i := 0; i < count; i++ {
		g.AddVertex(astar.NewVertex(vec3.New(startX+float32(i), 0, 0)))
		if i > 0 {
			g.LinkBidirect(first+i-1, first+i)
		}
	}

	return first
}

func neighbours(g *astar.Graph, i int) []uint32 {
	v, ok := g.Vertex(i)
	if !ok {
		return nil
	}

	return v.Neighbours
}

// Package gridgraph turns a 2D grid of integer cell values into an
// astar.Graph. It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8), with optional corner cutting
//   - Conversion to a navigation graph whose vertex index is y*Width + x
//   - Identification of connected components ("islands") of walkable cells
//
// Cells with value < LandThreshold are blocked; cells with value ≥ LandThreshold
// are walkable and their value becomes the vertex penalty.
package gridgraph

import (
	"math"

	"github.com/katalvlaran/navgraph/astar"
	"github.com/katalvlaran/navgraph/vec3"
)

var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs, ErrBadCellSize if
// opts.CellSize <= 0.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	if !(opts.CellSize > 0) {
		return nil, ErrBadCellSize
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	offsets := offsets4
	if opts.Conn == Conn8 {
		offsets = offsets8
	}

	return &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            opts.Conn,
		LandThreshold:   opts.LandThreshold,
		CellSize:        opts.CellSize,
		CutCorners:      opts.CutCorners,
		neighborOffsets: offsets,
	}, nil
}

// From2D is NewGridGraph with default options and the given connectivity.
func From2D(values [][]int, conn Connectivity) (*GridGraph, error) {
	opts := DefaultGridOptions()
	opts.Conn = conn

	return NewGridGraph(values, opts)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// Walkable reports whether (x,y) is inside the grid and not blocked.
func (gg *GridGraph) Walkable(x, y int) bool {
	return gg.InBounds(x, y) && gg.CellValues[y][x] >= gg.LandThreshold
}

// Index maps (x,y) to a row-major index: y*Width + x.
func (gg *GridGraph) Index(x, y int) (int, error) {
	if !gg.InBounds(x, y) {
		return -1, ErrOutOfBounds
	}

	return gg.index(x, y), nil
}

// index is Index without the bounds check.
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}

// CellAt returns the cell stored at a row-major index.
func (gg *GridGraph) CellAt(idx int) (Cell, error) {
	if idx < 0 || idx >= gg.Width*gg.Height {
		return Cell{}, ErrOutOfBounds
	}
	x, y := gg.Coordinate(idx)

	return Cell{X: x, Y: y, Value: gg.CellValues[y][x]}, nil
}

// Position returns the world-space centre of (x,y) on the XZ plane.
func (gg *GridGraph) Position(x, y int) vec3.Vector3 {
	return vec3.New(float32(x)*gg.CellSize, 0, float32(y)*gg.CellSize)
}

// CellOf maps a world-space point to the cell whose centre is nearest on the
// XZ plane. The Y component is ignored.
func (gg *GridGraph) CellOf(p vec3.Vector3) (x, y int, ok bool) {
	x = int(math.Round(float64(p.X / gg.CellSize)))
	y = int(math.Round(float64(p.Z / gg.CellSize)))

	return x, y, gg.InBounds(x, y)
}

// penalty converts a walkable cell value into a vertex penalty (at least 1).
func (gg *GridGraph) penalty(x, y int) float32 {
	if v := gg.CellValues[y][x]; v > 1 {
		return float32(v)
	}

	return 1
}

// diagonalOpen reports whether the move (x,y)→(x+dx,y+dy) is allowed under
// the corner-cutting policy.
func (gg *GridGraph) diagonalOpen(x, y, dx, dy int) bool {
	if dx == 0 || dy == 0 || gg.CutCorners {
		return true
	}

	return gg.Walkable(x+dx, y) && gg.Walkable(x, y+dy)
}

// ToNavGraph converts the grid into an *astar.Graph.
//
// Every cell becomes the vertex at index y*Width + x, positioned by
// Position. Walkable cells carry their value as GPenalty (at least 1) and
// link to each walkable neighbour according to gg.Conn; blocked cells stay
// as unlinked vertices so indices remain row-major.
// Complexity: O(W×H×d) time, Memory: O(W×H×d).
func (gg *GridGraph) ToNavGraph(opts ...astar.GraphOption) *astar.Graph {
	g := astar.NewGraph(opts...)
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			v := astar.NewVertex(gg.Position(x, y))
			if gg.Walkable(x, y) {
				v.GPenalty = gg.penalty(x, y)
			}
			g.AddVertex(v)
		}
	}
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if !gg.Walkable(x, y) {
				continue
			}
			u := gg.index(x, y)
			for _, d := range gg.neighborOffsets {
				nx, ny := x+d[0], y+d[1]
				if !gg.Walkable(nx, ny) || !gg.diagonalOpen(x, y, d[0], d[1]) {
					continue
				}
				// The reverse edge is added when (nx,ny) is visited.
				g.LinkUnidirect(u, gg.index(nx, ny))
			}
		}
	}

	return g
}

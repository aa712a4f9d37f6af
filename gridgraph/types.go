package gridgraph

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Cell represents a single grid cell with its coordinates and stored value.
type Cell struct {
	X, Y  int // Coordinates within the grid
	Value int // Original grid value at (X, Y)
}

// GridOptions contains tunable parameters for grid analysis.
type GridOptions struct {
	// LandThreshold specifies the minimum cell value considered walkable.
	LandThreshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
	// CellSize is the world-space distance between neighbouring cell centres.
	CellSize float32
	// CutCorners lets Conn8 diagonals pass between two blocked orthogonal
	// cells. When false a diagonal needs both orthogonal cells walkable.
	CutCorners bool
}

// DefaultGridOptions returns a GridOptions with default settings:
// LandThreshold=1 (values ≥1 are walkable), Conn=Conn4, CellSize=1,
// no corner cutting.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		LandThreshold: 1,
		Conn:          Conn4,
		CellSize:      1,
	}
}

// GridGraph treats a 2D integer grid as a navigation graph. It is immutable once built.
// CellValues[y][x] holds the original input value; walkable cells use it as
// their traversal penalty.
type GridGraph struct {
	Width, Height   int
	CellValues      [][]int
	Conn            Connectivity
	LandThreshold   int
	CellSize        float32
	CutCorners      bool
	neighborOffsets [][2]int
}

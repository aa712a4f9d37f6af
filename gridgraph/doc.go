// Package gridgraph treats a 2D grid of cells as a navigation graph,
// enabling island analysis and A* searches over tile maps.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid with tunable LandThreshold.
//   - Identifies connected components ("islands") of cells with value ≥ LandThreshold.
//   - Converts to an *astar.Graph: one vertex per cell, cell value as traversal
//     penalty, walkable neighbours linked both ways.
//
// Why:
//
//   - Game maps: tile-based agents walking over terrain of varying cost.
//   - Diagnostics: an unreachable goal lies on a different island than the agent,
//     which explains Partial search results.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)    (d = number of neighbors, 4 or 8).
//   - ToNavGraph:          O(W×H×d), Memory: O(W×H×d).
//
// Options:
//
//   - GridOptions.LandThreshold: minimum value considered walkable.
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//   - GridOptions.CellSize: world distance between cell centres.
//   - GridOptions.CutCorners: allow diagonal moves past blocked corners.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadCellSize: CellSize is not positive.
//   - ErrOutOfBounds: a coordinate or index lies outside the grid.
package gridgraph

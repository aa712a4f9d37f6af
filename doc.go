// Package navgraph is an in-memory navigation graph for games and
// simulations: waypoints in 3D space, directed links between them, and an
// anytime A* search that always hands back the best path it found.
//
// 🚀 What is navgraph?
//
//	A small library with a thin tooling layer around it:
//		• astar:     index-addressed Graph, vertex renumbering, A* search
//		• gridgraph: tile maps → navigation graphs, islands of walkable cells
//		• spatial:   R-tree snapping of world points onto the nearest vertex
//		• navfile:   YAML documents, hot reload, WKT export of found paths
//		• termview:  terminal rendering of a grid and a path
//		• vec3:      the float32 point type shared by all of the above
//
// ✨ Why navgraph?
//
//   - Anytime search: a capped search still returns its best partial path
//   - Stable indices: removing or inserting a vertex renumbers every link
//   - Read-only search: any number of goroutines may search one graph
//   - SharedGraph: RWMutex wrapper when mutations and searches interleave
//
// Layout:
//
//	astar/        Graph, Vertex, PathKind, PathError, SharedGraph
//	gridgraph/    GridGraph, Conn4/Conn8, ToNavGraph, ConnectedComponents
//	spatial/      Index (Nearest, NearestK, Within)
//	navfile/      GraphDocument, GridDocument, Watcher, PathWKT
//	termview/     Renderer, Frame, View
//	cmd/navpath/  command-line search over graph and grid documents
//
// Quick ASCII example:
//
//	    0───1
//	    │   │
//	    3───2
//
//	BuildIndexedPath(0, 2, nil) → [2 1 0] or [2 3 0], Full
//	(destination first)
//
//	go get github.com/katalvlaran/navgraph
package navgraph

// Package navfile stores navigation graphs and tile grids as YAML documents,
// watches those documents for edits, and exports found paths as ground-plane
// geometry.
//
// A graph document lists vertices in index order:
//
//	version: 1
//	max_search_iterations: 1000
//	vertices:
//	  - position: [0, 0, 0]
//	    neighbours: [1]
//	  - position: [1, 0, 0]
//	    penalty: 2
//	    neighbours: [0]
//
// A grid document holds integer cell rows plus the gridgraph options:
//
//	conn: 8
//	land_threshold: 1
//	cell_size: 2
//	cells:
//	  - [1, 1, 0]
//	  - [1, 3, 1]
//
// Exported paths are projected onto the XZ plane (Y is height) and encoded
// with github.com/paulmach/orb.
package navfile

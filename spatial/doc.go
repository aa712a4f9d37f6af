// Package spatial answers "which vertex is nearest to this point?" for an
// astar.Graph without scanning every vertex.
//
// An Index is a snapshot: it records vertex positions when it is built and
// does not follow later graph mutations. Rebuild it after adding, removing or
// inserting vertices.
//
// Example:
//
//	idx := spatial.NewIndex(g)
//	start, _ := idx.Nearest(playerPos)
//	goal, _ := idx.Nearest(targetPos)
//	path, kind, err := g.BuildIndexedPath(start, goal, nil)
package spatial

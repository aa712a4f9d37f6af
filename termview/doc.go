// Package termview draws a gridgraph.GridGraph and a search result in a
// terminal using tcell.
//
// Each grid cell is one character:
//
//	#    blocked
//	.    walkable, penalty 1
//	2-9  walkable with that penalty
//	+    walkable, penalty above 9
//	*    on the path
//	S G  search origin and requested goal
//
// Below the grid a status line shows the path kind, its length and any
// caller-supplied message. Drawing goes through the small Canvas interface,
// so tests can render into a plain buffer.
package termview

// Package geom implements simple-polygon triangulation on top of a doubly
// connected edge list (DCEL).
//
// A polygon is triangulated in two passes, following de Berg et al.,
// Computational Geometry (3rd ed.), chapter 3: the interior is first split
// into y-monotone sub-polygons by a sweep that inserts diagonals at split
// and merge vertices, then each monotone sub-polygon is triangulated by a
// stack-based sweep of its own. That sweep orders the sub-polygon's
// vertices with a sort (O(n log n)) rather than a linear merge of its two
// chains; the stack pass over the ordered vertices is linear.
//
// Vertices, half-edges and faces are handles: a backing *Dcel pointer plus
// an integer index into one of the Dcel's three parallel storage arrays.
// Handles are cheap to copy and remain valid across AddDiagonal calls,
// which only ever append to those arrays.
package geom

package geom

import "github.com/google/btree"

// VertexKind classifies a polygon vertex relative to its two boundary
// neighbors and the sweep direction, following de Berg et al.'s
// monotone-partition sweep.
type VertexKind int8

const (
	KindRegular VertexKind = iota
	KindStart
	KindSplit
	KindStop
	KindMerge
)

func (k VertexKind) String() string {
	switch k {
	case KindStart:
		return "Start"
	case KindSplit:
		return "Split"
	case KindStop:
		return "Stop"
	case KindMerge:
		return "Merge"
	default:
		return "Regular"
	}
}

// classifyVertex determines vi's kind from the positions of its two
// polygon-boundary neighbors. below reports whether a neighbor is swept
// after vi (i.e. lower, or same height and further right); isConvex
// reports whether the interior angle at vi, for a counter-clockwise
// polygon, is less than pi.
func classifyVertex(prev, cur, next XY) VertexKind {
	prevBelow := vertexSweepLess(cur, prev)
	nextBelow := vertexSweepLess(cur, next)

	incoming := cur.Sub(prev)
	outgoing := next.Sub(cur)
	isConvex := Cross(incoming, outgoing) > 0

	switch {
	case prevBelow && nextBelow:
		if isConvex {
			return KindStart
		}
		return KindSplit
	case !prevBelow && !nextBelow:
		if isConvex {
			return KindStop
		}
		return KindMerge
	default:
		return KindRegular
	}
}

// eOut returns the original boundary half-edge leading out of vertex i,
// i.e. the edge from vertex i to vertex (i+1) mod n created by InitCCW.
// This indexing is stable across AddDiagonal calls: diagonals only
// append new half-edges, they never renumber the original n.
func (d *Dcel) eOut(i int32) HalfEdgeHandle { return d.HalfEdge(i) }

// eIn returns the original boundary half-edge leading into vertex i.
func (d *Dcel) eIn(i int32, n int32) HalfEdgeHandle {
	return d.HalfEdge((i - 1 + n) % n)
}

type statusEntry struct {
	edge   HalfEdgeHandle
	helper VertexHandle
}

// sweepStatus is the ordered set of boundary edges with the polygon
// interior to their right that currently cross the sweep line, each
// tagged with its "helper" vertex. A plain slice with linear scans is
// enough here: the status only ever holds O(split+merge count) entries
// at once, and every operation inspects at most that many.
type sweepStatus struct {
	entries []statusEntry
}

func (s *sweepStatus) insert(edge HalfEdgeHandle, helper VertexHandle) {
	s.entries = append(s.entries, statusEntry{edge, helper})
}

func (s *sweepStatus) remove(edge HalfEdgeHandle) {
	for i, e := range s.entries {
		if e.edge.Equal(edge) {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return
		}
	}
}

func (s *sweepStatus) updateHelper(edge HalfEdgeHandle, helper VertexHandle) {
	for i, e := range s.entries {
		if e.edge.Equal(edge) {
			s.entries[i].helper = helper
			return
		}
	}
}

func (s *sweepStatus) helper(edge HalfEdgeHandle) (VertexHandle, error) {
	for _, e := range s.entries {
		if e.edge.Equal(edge) {
			return e.helper, nil
		}
	}
	return VertexHandle{}, ErrHelperMissing
}

// findLeft returns the entry whose edge, at the given sweep height, has
// the greatest x-coordinate strictly less than v's — the edge directly
// to the left of v.
func (s *sweepStatus) findLeft(v XY, sweepY float32) (HalfEdgeHandle, error) {
	best := HalfEdgeHandle{}
	bestX := float32(0)
	found := false
	for _, e := range s.entries {
		x, ok := halfEdgeXAtSweep(e.edge, sweepY)
		if !ok || x >= v[0] {
			continue
		}
		if !found || x > bestX {
			bestX, best, found = x, e.edge, true
		}
	}
	if !found {
		return HalfEdgeHandle{}, ErrNoLeftEdge
	}
	return best, nil
}

// vertexEventItem orders vertex indices by compareVertexSweep, so a
// google/btree tree built from them yields the sweep visiting order
// under an in-order (Ascend) walk.
type vertexEventItem struct {
	d   *Dcel
	idx int32
}

func (a vertexEventItem) Less(than btree.Item) bool {
	b := than.(vertexEventItem)
	return compareVertexSweep(a.d.Vertex(a.idx).Position(), b.d.Vertex(b.idx).Position()) < 0
}

// sweepEventOrder computes the order SplitToMonotone visits vertices in.
// A btree is sorted once and drained by an in-order walk; this is no
// faster than a plain sort for the static, all-at-once case here, but it
// is the same event-queue structure a segment-intersection sweep over
// this Dcel's edges would use. The sweep status, by contrast, is the
// plain slice in sweepStatus.
func sweepEventOrder(d *Dcel, n int32) []int32 {
	tree := btree.New(32)
	for i := int32(0); i < n; i++ {
		tree.ReplaceOrInsert(vertexEventItem{d, i})
	}
	order := make([]int32, 0, n)
	tree.Ascend(func(item btree.Item) bool {
		order = append(order, item.(vertexEventItem).idx)
		return true
	})
	return order
}

// SplitToMonotone partitions the Dcel's current interior into y-monotone
// faces by sweeping its vertices top to bottom and inserting a diagonal
// at every split and merge vertex. It assumes the Dcel was produced by
// InitCCW and has not yet had any diagonals added.
func SplitToMonotone(d *Dcel) error {
	n := int32(d.NumVertices())
	order := sweepEventOrder(d, n)

	status := &sweepStatus{}

	for _, vi := range order {
		prevI := (vi - 1 + n) % n
		nextI := (vi + 1) % n
		v := d.Vertex(vi)
		kind := classifyVertex(d.Vertex(prevI).Position(), v.Position(), d.Vertex(nextI).Position())

		switch kind {
		case KindStart:
			status.insert(d.eOut(vi), v)
		case KindSplit:
			left, err := status.findLeft(v.Position(), v.Position()[1])
			if err != nil {
				return err
			}
			helper, err := status.helper(left)
			if err != nil {
				return err
			}
			if _, _, err := d.AddDiagonalBetweenVertices(v, helper, EdgeAssignNone); err != nil {
				return err
			}
			status.updateHelper(left, v)
			status.insert(d.eOut(vi), v)
		case KindStop:
			in := d.eIn(vi, n)
			helper, err := status.helper(in)
			if err == nil && helper.data().chain == chainMergeMarker {
				if _, _, err := d.AddDiagonalBetweenVertices(v, helper, EdgeAssignNone); err != nil {
					return err
				}
			}
			status.remove(in)
		case KindMerge:
			in := d.eIn(vi, n)
			helper, err := status.helper(in)
			if err == nil && helper.data().chain == chainMergeMarker {
				if _, _, err := d.AddDiagonalBetweenVertices(v, helper, EdgeAssignNone); err != nil {
					return err
				}
			}
			status.remove(in)

			left, err := status.findLeft(v.Position(), v.Position()[1])
			if err == nil {
				helperLeft, err := status.helper(left)
				if err == nil && helperLeft.data().chain == chainMergeMarker {
					if _, _, err := d.AddDiagonalBetweenVertices(v, helperLeft, EdgeAssignNone); err != nil {
						return err
					}
				}
				status.updateHelper(left, v)
			}
			v.data().chain = chainMergeMarker
		case KindRegular:
			// The interior lies to the right of v exactly when its outgoing
			// edge heads downward (ties broken toward positive x), i.e. when
			// the next vertex is below v in sweep order.
			nextBelow := vertexSweepLess(v.Position(), d.Vertex(nextI).Position())
			if nextBelow {
				// Interior lies to the right of v: same treatment as Stop,
				// using the edge leading into v.
				in := d.eIn(vi, n)
				helper, err := status.helper(in)
				if err == nil && helper.data().chain == chainMergeMarker {
					if _, _, err := d.AddDiagonalBetweenVertices(v, helper, EdgeAssignNone); err != nil {
						return err
					}
				}
				status.remove(in)
				status.insert(d.eOut(vi), v)
			} else {
				// Interior lies to the left of v.
				left, err := status.findLeft(v.Position(), v.Position()[1])
				if err != nil {
					return err
				}
				helper, err := status.helper(left)
				if err == nil && helper.data().chain == chainMergeMarker {
					if _, _, err := d.AddDiagonalBetweenVertices(v, helper, EdgeAssignNone); err != nil {
						return err
					}
				}
				status.updateHelper(left, v)
			}
		}
	}

	// Clear the merge-vertex marker left on Chain; monotone triangulation
	// assigns its own left/right chain labels afterwards.
	for i := range d.vertices {
		d.vertices[i].chain = ChainNone
	}

	return nil
}

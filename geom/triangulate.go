package geom

import "sort"

// monotoneEvent is one entry of the sweep order built over a single
// monotone face's boundary.
type monotoneEvent struct {
	v     VertexHandle
	chain Chain
}

// topAndBottom returns the face's highest and lowest vertices in sweep
// order, found by a single walk of its boundary.
func topAndBottom(f FaceHandle) (top, bottom VertexHandle) {
	first := true
	for h := range f.Boundary() {
		v := h.Origin()
		if first {
			top, bottom = v, v
			first = false
			continue
		}
		if vertexSweepLess(v.Position(), top.Position()) {
			top = v
		}
		if vertexSweepLess(bottom.Position(), v.Position()) {
			bottom = v
		}
	}
	return top, bottom
}

// labelChains walks f's boundary starting at top, assigning ChainLeft to
// every vertex from top up to and including bottom, then ChainRight to
// every vertex from bottom's successor back to (but excluding) top.
//
// top's label is load-bearing: it can remain on the merge stack for
// several iterations of the triangulation loop below and must compare
// correctly against later vertices. bottom's label is never consulted —
// it is always handled as the final, unconditional fan-out vertex.
func labelChains(f FaceHandle, top, bottom VertexHandle) {
	var startEdge HalfEdgeHandle
	for h := range top.HalfEdgesOnVertex() {
		if h.IncidentFace().Equal(f) {
			startEdge = h
			break
		}
	}

	h := startEdge
	for {
		h.Origin().SetChain(ChainLeft)
		if h.Origin().Equal(bottom) {
			h = h.Next()
			break
		}
		h = h.Next()
	}
	for !h.Origin().Equal(top) {
		h.Origin().SetChain(ChainRight)
		h = h.Next()
	}
}

// isInside reports whether the diagonal from candidate to prevVertex stays
// inside the monotone polygon, judged by the turn at apex: the vertex
// popped just before prevVertex, already joined to candidate by an edge
// or an earlier diagonal. The sign convention flips between chains
// because the two chains are traversed in opposite directions.
func isInside(chain Chain, apex, prevVertex, candidate XY) bool {
	prevEdge := prevVertex.Sub(apex)
	currEdge := candidate.Sub(apex)
	alpha := OrientedAngle(prevEdge, currEdge)
	if chain == ChainLeft {
		return alpha <= 0
	}
	return alpha >= 0
}

// diagonalEdgeAssign picks which endpoint of a newly added diagonal
// should have its incident edge pointer moved onto the diagonal: the one
// swept later, so that a subsequent AddDiagonal search starting from
// that vertex begins inside the still-unprocessed remainder of the face.
func diagonalEdgeAssign(a, b VertexHandle) EdgeAssign {
	if vertexSweepLess(a.Position(), b.Position()) {
		return EdgeAssignDestination
	}
	return EdgeAssignOrigin
}

// closingEdgeAssign is used for the final, unconditional fan triangulated
// against the bottom vertex: the endpoint "above" the diagonal's
// direction, relative to straight up, keeps the rewritten incident edge.
func closingEdgeAssign(a, b VertexHandle) EdgeAssign {
	direction := b.Position().Sub(a.Position())
	if OrientedAngle(XY{0, 1}, direction) > 0 {
		return EdgeAssignOrigin
	}
	return EdgeAssignDestination
}

// TriangulateMonotone triangulates a single y-monotone face in place,
// following de Berg et al.'s linear-time stack algorithm: sweep the
// face's vertices top to bottom, maintaining a stack of vertices that
// still might see each other across the interior, and insert a diagonal
// whenever that visibility test succeeds.
//
// f must be y-monotone; TriangulateMonotone does not verify this, it is
// the caller's responsibility (normally SplitToMonotone's postcondition).
func TriangulateMonotone(d *Dcel, f FaceHandle) error {
	top, bottom := topAndBottom(f)
	if top.Equal(bottom) {
		return nil
	}
	labelChains(f, top, bottom)

	var events []monotoneEvent
	for h := range f.Boundary() {
		events = append(events, monotoneEvent{h.Origin(), h.Origin().Chain()})
	}
	sort.Slice(events, func(i, j int) bool {
		return vertexSweepLess(events[i].v.Position(), events[j].v.Position())
	})
	if len(events) < 3 {
		return nil
	}

	type stackEntry struct {
		v     VertexHandle
		chain Chain
	}
	stack := []stackEntry{
		{events[0].v, events[0].chain},
		{events[1].v, events[1].chain},
	}

	addDiagonal := func(a, b VertexHandle) error {
		_, _, err := d.AddDiagonalBetweenVertices(a, b, diagonalEdgeAssign(a, b))
		return err
	}

	for i := 2; i < len(events)-1; i++ {
		cur := events[i]
		topOfStack := stack[len(stack)-1]

		if cur.chain != topOfStack.chain {
			for j := len(stack) - 1; j > 0; j-- {
				if err := addDiagonal(cur.v, stack[j].v); err != nil {
					return err
				}
			}
			last := stack[len(stack)-1]
			stack = []stackEntry{last, {cur.v, cur.chain}}
			continue
		}

		last := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for len(stack) > 0 {
			below := stack[len(stack)-1]
			if !isInside(cur.chain, last.v.Position(), below.v.Position(), cur.v.Position()) {
				break
			}
			if err := addDiagonal(cur.v, below.v); err != nil {
				return err
			}
			last = below
			stack = stack[:len(stack)-1]
		}
		stack = append(stack, last, cur)
	}

	bottomVertex := events[len(events)-1].v
	for j := 1; j < len(stack)-1; j++ {
		if _, _, err := d.AddDiagonalBetweenVertices(bottomVertex, stack[j].v, closingEdgeAssign(bottomVertex, stack[j].v)); err != nil {
			return err
		}
	}

	return nil
}

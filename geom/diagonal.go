package geom

// AddDiagonal splits the face shared by a and b by inserting a diagonal
// between a.Origin() and b.Origin(). a and b must be distinct half-edges
// bounding the same face, not already connected by that face's cycle
// (i.e. neither already follows the other), and that face must not be
// the outer face.
//
// It returns the two new half-edges making up the diagonal: the first
// has origin a.Origin() and lies on the newly created face; the second
// has origin b.Origin() and lies on the face that a and b originally
// shared (which keeps its original index).
//
// This mirrors splitFaceInternal: allocate one new vertex-disjoint pair
// of half-edges and one new face, rewire the four neighboring pointers,
// walk one of the two resulting cycles to relabel its incident face, and
// finally apply edgeAssign so that a future AddDiagonal search starting
// from either endpoint of the diagonal sees a consistent edge fan.
func (d *Dcel) AddDiagonal(a, b HalfEdgeHandle, assign EdgeAssign) (HalfEdgeHandle, HalfEdgeHandle, error) {
	if err := d.checkReady(); err != nil {
		return HalfEdgeHandle{}, HalfEdgeHandle{}, err
	}
	if err := d.canSplitFace(a, b); err != nil {
		return HalfEdgeHandle{}, HalfEdgeHandle{}, err
	}

	oldFaceIdx := a.data().incidentFace
	newFaceIdx := int32(len(d.faces))
	d.faces = append(d.faces, faceData{})

	edge1Idx := int32(len(d.halfEdges))
	edge2Idx := edge1Idx + 1
	d.halfEdges = append(d.halfEdges, halfEdgeData{}, halfEdgeData{})

	edge1 := HalfEdgeHandle{d, edge1Idx} // a.Origin() -> b.Origin()
	edge2 := HalfEdgeHandle{d, edge2Idx} // b.Origin() -> a.Origin()

	prevA, prevB := a.Prev(), b.Prev()

	*edge1.data() = halfEdgeData{
		origin: a.data().origin,
		twin:   edge2Idx,
		prev:   prevA.idx,
		next:   b.idx,
	}
	*edge2.data() = halfEdgeData{
		origin:       b.data().origin,
		incidentFace: oldFaceIdx,
		twin:         edge1Idx,
		prev:         prevB.idx,
		next:         a.idx,
	}

	prevA.data().next = edge1Idx
	prevB.data().next = edge2Idx
	a.data().prev = edge2Idx
	b.data().prev = edge1Idx

	// edge1's cycle (edge1, b, ..., prevA) becomes the new face; edge2's
	// cycle (edge2, a, ..., prevB) keeps the old face index.
	d.faces[oldFaceIdx].outerComponent = edge2Idx
	d.faces[newFaceIdx].outerComponent = edge1Idx

	for cur := edge1; ; {
		cur.data().incidentFace = newFaceIdx
		cur = cur.Next()
		if cur.idx == edge1Idx {
			break
		}
	}

	switch assign {
	case EdgeAssignOrigin:
		edge1.Origin().setIncidentEdge(edge1)
	case EdgeAssignDestination:
		edge2.Origin().setIncidentEdge(edge2)
	}

	return edge1, edge2, nil
}

// canSplitFace reports whether AddDiagonal(a, b, ...) is well-formed.
func (d *Dcel) canSplitFace(a, b HalfEdgeHandle) error {
	if a.Equal(b) {
		return ErrEdgesAreEqual
	}
	if !a.IncidentFace().Equal(b.IncidentFace()) {
		return ErrDifferentFaces
	}
	if a.IsOuter() {
		return ErrOuterFace
	}
	if a.Next().Equal(b) || b.Next().Equal(a) {
		return ErrAlreadyAdjacent
	}
	// Faces in this Dcel are always single cycles (no holes), so sharing
	// an incident face already implies b lies on a's cycle. The explicit
	// walk guards against future extensions that might violate that.
	found := false
	limit := len(d.halfEdges)
	for cur := a; limit >= 0; limit-- {
		if cur.Equal(b) {
			found = true
			break
		}
		cur = cur.Next()
		if cur.Equal(a) {
			break
		}
	}
	if !found {
		return ErrNotOnSameCycle
	}
	return nil
}

// AddDiagonalFromVertex splits the face containing half-edge a's incident
// face by connecting a.Origin() to vertex v. It searches v's edge fan
// (via Prev().Twin(), i.e. walking counter-clockwise around v) for a half-edge
// whose incident face can legally be split against a, mirroring the
// vertex-form overload of splitFace: the search exists because, after
// earlier splits, v may be incident to more than one face, only one of
// which shares a boundary with a's.
func (d *Dcel) AddDiagonalFromVertex(a HalfEdgeHandle, v VertexHandle, assign EdgeAssign) (HalfEdgeHandle, HalfEdgeHandle, error) {
	start := v.IncidentEdge()
	cur := start
	limit := len(d.halfEdges)
	for i := 0; i < limit; i++ {
		if err := d.canSplitFace(a, cur); err == nil {
			return d.AddDiagonal(a, cur, assign)
		}
		cur = cur.Prev().Twin()
		if cur.Equal(start) {
			break
		}
	}
	return HalfEdgeHandle{}, HalfEdgeHandle{}, ErrNoSharedFace
}

// AddDiagonalBetweenVertices connects vertices u and v with a diagonal,
// searching both of their edge fans for a compatible pair of half-edges.
// This is the most general (and least efficient) of the four AddDiagonal
// shapes; prefer the half-edge forms when a half-edge is already at hand
// from a sweep or a face walk.
func (d *Dcel) AddDiagonalBetweenVertices(u, v VertexHandle, assign EdgeAssign) (HalfEdgeHandle, HalfEdgeHandle, error) {
	start := u.IncidentEdge()
	cur := start
	limit := len(d.halfEdges)
	for i := 0; i < limit; i++ {
		if he, _, err := d.AddDiagonalFromVertex(cur, v, assign); err == nil {
			return he, he.Twin(), nil
		}
		cur = cur.Prev().Twin()
		if cur.Equal(start) {
			break
		}
	}
	return HalfEdgeHandle{}, HalfEdgeHandle{}, ErrNoSharedFace
}

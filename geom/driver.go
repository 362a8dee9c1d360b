package geom

// Triangulate runs the full two-phase pipeline on a simple,
// counter-clockwise polygon and returns the flattened triangle mesh: a
// vertex array and one index triple per triangle.
//
// It is the library's single entry point for callers who don't need the
// intermediate Dcel; Build gives access to that Dcel for callers who do
// (e.g. to walk FacesOnVertex for a point-in-polygon style query).
func Triangulate(points []XY) ([]Point3, [][3]int32, error) {
	d, err := Build(points)
	if err != nil {
		return nil, nil, err
	}
	return d.ExtractTriangles()
}

// Build runs the monotone-partition and monotone-triangulation passes on
// a freshly initialized Dcel and returns it fully triangulated.
func Build(points []XY) (*Dcel, error) {
	d, err := InitCCW(points)
	if err != nil {
		return nil, err
	}
	if err := SplitToMonotone(d); err != nil {
		return nil, err
	}
	if err := triangulateAllFaces(d); err != nil {
		return nil, err
	}
	return d, nil
}

// triangulateAllFaces triangulates every bounded face produced by
// SplitToMonotone. Faces are enumerated up front because
// TriangulateMonotone appends new faces as it runs; iterating a live
// Faces() sequence while splitting would visit those new faces too,
// which is also correct (they're already triangles, and the loop below
// would simply no-op on them) but enumerating first keeps the pass
// order predictable and matches a straightforward reading of the
// algorithm as "first partition, then triangulate what partition made".
func triangulateAllFaces(d *Dcel) error {
	faces := make([]FaceHandle, 0, d.NumFaces()-1)
	for f := range d.BoundedFaces() {
		faces = append(faces, f)
	}

	for _, f := range faces {
		switch f.Degree() {
		case 3:
			continue
		case 4:
			if err := splitQuad(d, f); err != nil {
				return err
			}
		default:
			if err := TriangulateMonotone(d, f); err != nil {
				return err
			}
		}
	}
	return nil
}

// splitQuad triangulates a quadrilateral face by connecting the vertex
// with the largest interior angle to its opposite vertex — the diagonal
// that avoids slivers when the quad is close to its interior angle
// extremes. This is a fast path around the general monotone-chain
// algorithm, which would otherwise have to allocate a sweep order and a
// merge stack for a shape that only ever has one correct answer to check.
func splitQuad(d *Dcel, f FaceHandle) error {
	var corners [4]HalfEdgeHandle
	i := 0
	for h := range f.Boundary() {
		corners[i] = h
		i++
	}

	worstIdx := 0
	worstAngle := float32(0)
	for i, h := range corners {
		prev := h.Prev()
		incoming := h.Origin().Position().Sub(prev.Origin().Position())
		outgoing := h.Next().Origin().Position().Sub(h.Origin().Position())
		turn := OrientedAngle(incoming, outgoing)
		interior := pi32 - turn
		if interior > worstAngle {
			worstAngle, worstIdx = interior, i
		}
	}

	a := corners[worstIdx]
	opposite := corners[(worstIdx+2)%4]
	av, ov := a.Origin(), opposite.Origin()
	_, _, err := d.AddDiagonal(a, opposite, diagonalEdgeAssign(av, ov))
	return err
}

package geom

// ExtractTriangles returns the vertex positions and per-triangle vertex
// index triples for every bounded face in the Dcel. It requires the Dcel
// to have already been fully triangulated (every bounded face has
// exactly three edges); ErrNonTriangularFace is returned otherwise,
// mirroring extractTriangles's debug-only non-triangular check, promoted
// here to an always-on one since this library has no separate debug
// build.
func (d *Dcel) ExtractTriangles() (points []Point3, indices [][3]int32, err error) {
	if err := d.checkReady(); err != nil {
		return nil, nil, err
	}
	points = make([]Point3, len(d.vertices))
	for i, v := range d.vertices {
		points[i] = NewPoint3(v.position)
	}

	indices = make([][3]int32, 0, len(d.faces)-1)
	for f := range d.BoundedFaces() {
		var tri [3]int32
		n := 0
		for h := range f.Boundary() {
			if n == 3 {
				return nil, nil, ErrNonTriangularFace
			}
			tri[n] = h.Origin().idx
			n++
		}
		if n != 3 {
			return nil, nil, ErrNonTriangularFace
		}
		indices = append(indices, tri)
	}
	return points, indices, nil
}

package geom

import "iter"

// Faces returns an iterator over every face in the Dcel, including the
// outer face.
func (d *Dcel) Faces() iter.Seq[FaceHandle] {
	return func(yield func(FaceHandle) bool) {
		for i := range d.faces {
			if !yield(FaceHandle{d, int32(i)}) {
				return
			}
		}
	}
}

// BoundedFaces returns an iterator over every face except the outer one.
func (d *Dcel) BoundedFaces() iter.Seq[FaceHandle] {
	return func(yield func(FaceHandle) bool) {
		for i := 1; i < len(d.faces); i++ {
			if !yield(FaceHandle{d, int32(i)}) {
				return
			}
		}
	}
}

// HalfEdges returns an iterator over every half-edge in the Dcel.
func (d *Dcel) HalfEdges() iter.Seq[HalfEdgeHandle] {
	return func(yield func(HalfEdgeHandle) bool) {
		for i := range d.halfEdges {
			if !yield(HalfEdgeHandle{d, int32(i)}) {
				return
			}
		}
	}
}

// Vertices returns an iterator over every vertex in the Dcel.
func (d *Dcel) Vertices() iter.Seq[VertexHandle] {
	return func(yield func(VertexHandle) bool) {
		for i := range d.vertices {
			if !yield(VertexHandle{d, int32(i)}) {
				return
			}
		}
	}
}

// Cycle returns an iterator over the half-edges of the face cycle that h
// belongs to, starting at h and following Next() around.
func (h HalfEdgeHandle) Cycle() iter.Seq[HalfEdgeHandle] {
	return func(yield func(HalfEdgeHandle) bool) {
		start := h
		cur := h
		for {
			if !yield(cur) {
				return
			}
			cur = cur.Next()
			if cur.Equal(start) {
				return
			}
		}
	}
}

// Boundary returns an iterator over the half-edges bounding this face,
// equivalent to f.OuterComponent().Cycle().
func (f FaceHandle) Boundary() iter.Seq[HalfEdgeHandle] {
	return f.OuterComponent().Cycle()
}

// Vertices returns an iterator over the origins of this face's boundary
// half-edges, in cycle order.
func (f FaceHandle) Vertices() iter.Seq[VertexHandle] {
	return func(yield func(VertexHandle) bool) {
		for h := range f.Boundary() {
			if !yield(h.Origin()) {
				return
			}
		}
	}
}

// Degree counts this face's boundary edges by walking its cycle once.
func (f FaceHandle) Degree() int {
	n := 0
	for range f.Boundary() {
		n++
	}
	return n
}

// FacesOnVertex returns an iterator over the distinct bounded faces
// incident to v, obtained by walking v's edge fan via Twin().Next() (the
// standard "rotate clockwise around the origin" DCEL idiom) and skipping
// the outer face.
func (v VertexHandle) FacesOnVertex() iter.Seq[FaceHandle] {
	return func(yield func(FaceHandle) bool) {
		start := v.IncidentEdge()
		cur := start
		for {
			if f := cur.IncidentFace(); !f.IsOuter() {
				if !yield(f) {
					return
				}
			}
			cur = cur.Twin().Next()
			if cur.Equal(start) {
				return
			}
		}
	}
}

// HalfEdgesOnVertex returns an iterator over the half-edges originating
// at v, in the same rotational order as FacesOnVertex.
func (v VertexHandle) HalfEdgesOnVertex() iter.Seq[HalfEdgeHandle] {
	return func(yield func(HalfEdgeHandle) bool) {
		start := v.IncidentEdge()
		cur := start
		for {
			if !yield(cur) {
				return
			}
			cur = cur.Twin().Next()
			if cur.Equal(start) {
				return
			}
		}
	}
}

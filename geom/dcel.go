package geom

// outerFaceIndex and innerFaceIndex mirror initializeFromCCWVertices's
// fixed layout: the unbounded outer face is always index 0, the
// polygon's single inner face is always index 1.
const (
	outerFaceIndex = 0
	innerFaceIndex = 1
)

type vertexData struct {
	position     XY
	chain        Chain
	incidentEdge int32
}

type halfEdgeData struct {
	origin       int32
	incidentFace int32
	twin         int32
	prev         int32
	next         int32
}

type faceData struct {
	outerComponent int32
}

// Dcel is a doubly connected edge list seeded from a single simple,
// counter-clockwise polygon. It starts with exactly two faces (the
// unbounded outer face and the polygon's interior) and grows by one face
// and one pair of half-edges per AddDiagonal call.
//
// The zero value is not usable; construct one with InitCCW.
type Dcel struct {
	vertices  []vertexData
	halfEdges []halfEdgeData
	faces     []faceData
	ready     bool
}

// VertexHandle, HalfEdgeHandle and FaceHandle are cheap-to-copy references
// into a Dcel's backing arrays. They remain valid for the lifetime of the
// Dcel: AddDiagonal only ever appends, it never reallocates an existing
// index into a new one.
type VertexHandle struct {
	d   *Dcel
	idx int32
}

type HalfEdgeHandle struct {
	d   *Dcel
	idx int32
}

type FaceHandle struct {
	d   *Dcel
	idx int32
}

// Index returns the handle's position in its Dcel's backing array.
func (v VertexHandle) Index() int32   { return v.idx }
func (h HalfEdgeHandle) Index() int32 { return h.idx }
func (f FaceHandle) Index() int32     { return f.idx }

// IsValid reports whether the handle refers to a live Dcel.
func (v VertexHandle) IsValid() bool   { return v.d != nil }
func (h HalfEdgeHandle) IsValid() bool { return h.d != nil }
func (f FaceHandle) IsValid() bool     { return f.d != nil }

func (v VertexHandle) data() *vertexData     { return &v.d.vertices[v.idx] }
func (h HalfEdgeHandle) data() *halfEdgeData { return &h.d.halfEdges[h.idx] }
func (f FaceHandle) data() *faceData         { return &f.d.faces[f.idx] }

// Position returns the vertex's 2D coordinate.
func (v VertexHandle) Position() XY { return v.data().position }

// Chain returns the chain label assigned to this vertex during monotone
// triangulation. It is ChainNone before TriangulateMonotone runs.
func (v VertexHandle) Chain() Chain { return v.data().chain }

// SetChain overwrites the vertex's chain label.
func (v VertexHandle) SetChain(c Chain) { v.data().chain = c }

// IncidentEdge returns some half-edge having this vertex as its origin.
func (v VertexHandle) IncidentEdge() HalfEdgeHandle {
	return HalfEdgeHandle{v.d, v.data().incidentEdge}
}

// setIncidentEdge rewrites the vertex's incident half-edge pointer.
func (v VertexHandle) setIncidentEdge(h HalfEdgeHandle) { v.data().incidentEdge = h.idx }

// Equal reports whether two handles refer to the same vertex of the same
// Dcel.
func (v VertexHandle) Equal(o VertexHandle) bool { return v.d == o.d && v.idx == o.idx }

// Origin returns the half-edge's origin vertex.
func (h HalfEdgeHandle) Origin() VertexHandle { return VertexHandle{h.d, h.data().origin} }

// Destination returns the origin of this half-edge's twin, i.e. the
// vertex the edge points to.
func (h HalfEdgeHandle) Destination() VertexHandle { return h.Twin().Origin() }

// Twin returns the oppositely-directed half-edge sharing the same two
// vertices.
func (h HalfEdgeHandle) Twin() HalfEdgeHandle { return HalfEdgeHandle{h.d, h.data().twin} }

// Next returns the next half-edge around this edge's incident face.
func (h HalfEdgeHandle) Next() HalfEdgeHandle { return HalfEdgeHandle{h.d, h.data().next} }

// Prev returns the previous half-edge around this edge's incident face.
func (h HalfEdgeHandle) Prev() HalfEdgeHandle { return HalfEdgeHandle{h.d, h.data().prev} }

// IncidentFace returns the face this half-edge bounds, staying to its
// left when walking origin -> destination.
func (h HalfEdgeHandle) IncidentFace() FaceHandle { return FaceHandle{h.d, h.data().incidentFace} }

// Equal reports whether two handles refer to the same half-edge of the
// same Dcel.
func (h HalfEdgeHandle) Equal(o HalfEdgeHandle) bool { return h.d == o.d && h.idx == o.idx }

// IsOuter reports whether this half-edge bounds the unbounded outer face.
func (h HalfEdgeHandle) IsOuter() bool { return h.data().incidentFace == outerFaceIndex }

// OuterComponent returns a half-edge on this face's boundary cycle.
func (f FaceHandle) OuterComponent() HalfEdgeHandle {
	return HalfEdgeHandle{f.d, f.data().outerComponent}
}

// IsOuter reports whether this is the single unbounded face created by
// InitCCW.
func (f FaceHandle) IsOuter() bool { return f.idx == outerFaceIndex }

// Equal reports whether two handles refer to the same face of the same
// Dcel.
func (f FaceHandle) Equal(o FaceHandle) bool { return f.d == o.d && f.idx == o.idx }

// InitCCW builds a Dcel from a simple polygon's vertices, given in
// counter-clockwise order. It fails closed: a clockwise or degenerate
// loop is rejected rather than silently reversed, and fewer than three
// vertices is rejected outright.
//
// This mirrors initializeFromCCWVertices's fixed half-edge layout: for n
// vertices there are 2n half-edges, edge i and edge i+n are twins, the
// inner face (index 1) owns edges [0, n) and the outer face (index 0)
// owns edges [n, 2n), traversed in the opposite direction.
func InitCCW(points []XY) (*Dcel, error) {
	n := len(points)
	if n < 3 {
		return nil, ErrTooFewVertices
	}
	if WindingOrderOf(points) != WindingCounterClockwise {
		return nil, ErrNotCounterClockwise
	}

	d := &Dcel{
		vertices:  make([]vertexData, n),
		halfEdges: make([]halfEdgeData, 2*n),
		faces:     make([]faceData, 2),
	}

	for i, p := range points {
		d.vertices[i] = vertexData{position: p, incidentEdge: int32(i)}
	}

	for i := 0; i < n; i++ {
		next := (i + 1) % n
		prevI := (i - 1 + n) % n
		inner := int32(i)
		outer := int32(i + n)

		d.halfEdges[inner] = halfEdgeData{
			origin:       int32(i),
			incidentFace: innerFaceIndex,
			twin:         outer,
			next:         int32(next),
			prev:         int32(prevI),
		}
		d.halfEdges[outer] = halfEdgeData{
			origin:       int32(next),
			incidentFace: outerFaceIndex,
			twin:         inner,
			// The outer face's cycle runs in the opposite direction.
			next: int32(prevI) + int32(n),
			prev: int32(next) + int32(n),
		}
	}

	d.faces[innerFaceIndex] = faceData{outerComponent: 0}
	d.faces[outerFaceIndex] = faceData{outerComponent: int32(n)}
	d.ready = true

	return d, nil
}

// Init3D is a convenience wrapper accepting the Point3 shape, dropping Z.
func Init3D(points []Point3) (*Dcel, error) {
	xys := make([]XY, len(points))
	for i, p := range points {
		xys[i] = p.XY()
	}
	return InitCCW(xys)
}

// NumVertices returns the number of vertices in the Dcel. AddDiagonal
// never introduces a vertex, only edges and a face, so this is fixed
// after InitCCW.
func (d *Dcel) NumVertices() int { return len(d.vertices) }

// NumHalfEdges returns the number of half-edges, including those created
// by AddDiagonal.
func (d *Dcel) NumHalfEdges() int { return len(d.halfEdges) }

// NumFaces returns the number of faces, including the outer face and
// those created by AddDiagonal.
func (d *Dcel) NumFaces() int { return len(d.faces) }

// Vertex returns a handle to the vertex at index i.
func (d *Dcel) Vertex(i int32) VertexHandle { return VertexHandle{d, i} }

// HalfEdge returns a handle to the half-edge at index i.
func (d *Dcel) HalfEdge(i int32) HalfEdgeHandle { return HalfEdgeHandle{d, i} }

// Face returns a handle to the face at index i.
func (d *Dcel) Face(i int32) FaceHandle { return FaceHandle{d, i} }

// checkReady reports ErrUninitialized for a zero-value or nil Dcel.
// AddDiagonal and ExtractTriangles check this first, since a zero-value
// Dcel's empty slices would otherwise fail with an out-of-range panic
// instead of a reportable error; the other operations do not check it.
func (d *Dcel) checkReady() error {
	if d == nil || !d.ready {
		return ErrUninitialized
	}
	return nil
}

// InnerFace returns the face created by InitCCW, before any diagonal has
// split it. Once AddDiagonal has been called this is just one of
// possibly several bounded faces.
func (d *Dcel) InnerFace() FaceHandle { return FaceHandle{d, innerFaceIndex} }

// OuterFace returns the single unbounded face.
func (d *Dcel) OuterFace() FaceHandle { return FaceHandle{d, outerFaceIndex} }

package geom

import "errors"

// Sentinel errors returned by the Dcel. All of them indicate a violated
// precondition: either malformed input (NotCounterClockwise) or a caller
// bug (everything raised from AddDiagonal). None are recoverable; the
// library never retries or partially commits a mutation.
var (
	ErrNotCounterClockwise = errors.New("geom: vertices are not wound counter-clockwise")
	ErrUninitialized       = errors.New("geom: dcel has not been initialized")
	ErrTooFewVertices      = errors.New("geom: at least 3 vertices are required")

	ErrEdgesAreEqual  = errors.New("geom: half-edges are equal")
	ErrDifferentFaces = errors.New("geom: half-edges do not share an incident face")
	ErrAlreadyAdjacent = errors.New("geom: half-edges are already connected")
	ErrOuterFace       = errors.New("geom: cannot split the outer face")
	ErrNotOnSameCycle  = errors.New("geom: half-edges do not lie on the same face cycle")
	ErrNoSharedFace    = errors.New("geom: vertices do not share a bounded face")

	ErrHelperMissing = errors.New("geom: sweep status has no helper recorded for this edge")
	ErrNoLeftEdge    = errors.New("geom: sweep status has no edge to the left of this vertex")

	ErrNonTriangularFace = errors.New("geom: encountered a non-triangular face during extraction")
)

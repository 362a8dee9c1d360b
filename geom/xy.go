package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// XY is a 2D point or vector, backed by mathgl's float32 Vec2. All
// arithmetic in this package is naive float32, matching the library's
// non-goal of floating-point robustness.
type XY = mgl32.Vec2

// Point3 is the 3D convenience shape accepted by Init3D and returned by
// ExtractTriangles; Z is ignored on input and always zero on output.
type Point3 struct {
	X, Y, Z float32
}

// XY drops the Z component.
func (p Point3) XY() XY {
	return XY{p.X, p.Y}
}

// NewPoint3 lifts a 2D point into the 3D convenience shape with Z = 0.
func NewPoint3(p XY) Point3 {
	return Point3{p[0], p[1], 0}
}

// Cross computes the 2D cross product (the Z component of the 3D cross
// product of (a, 0) and (b, 0)). Its sign gives the orientation of the
// turn from a to b.
func Cross(a, b XY) float32 {
	return a[0]*b[1] - b[0]*a[1]
}

// SignedArea returns twice the signed area enclosed by the boundary loop.
// Positive means counter-clockwise, negative clockwise, zero degenerate.
func SignedArea(pts []XY) float32 {
	var sum float32
	n := len(pts)
	for i := 0; i < n; i++ {
		sum += Cross(pts[i], pts[(i+1)%n])
	}
	return sum
}

// WindingOrder classifies a closed loop by its signed area.
type WindingOrder int

const (
	WindingUndefined WindingOrder = iota
	WindingCounterClockwise
	WindingClockwise
)

func (w WindingOrder) String() string {
	switch w {
	case WindingCounterClockwise:
		return "CounterClockwise"
	case WindingClockwise:
		return "Clockwise"
	default:
		return "Undefined"
	}
}

// WindingOrderOf classifies a vertex loop by the sign of SignedArea.
func WindingOrderOf(pts []XY) WindingOrder {
	area := SignedArea(pts)
	switch {
	case area > 0:
		return WindingCounterClockwise
	case area < 0:
		return WindingClockwise
	default:
		return WindingUndefined
	}
}

// OrientedAngle returns the angle, in (-pi, pi], by which a must be
// rotated to reach b. A positive result means b is a counter-clockwise
// rotation of a. Both vectors are normalized internally; the zero vector
// yields a zero angle.
func OrientedAngle(a, b XY) float32 {
	la, lb := a.Len(), b.Len()
	if la == 0 || lb == 0 {
		return 0
	}
	a = a.Mul(1 / la)
	b = b.Mul(1 / lb)
	return float32(math.Atan2(float64(Cross(a, b)), float64(a.Dot(b))))
}

// sweepIntersect finds where the segment (origin, destination) crosses the
// horizontal line y = sweepY. r is the fraction along the segment; the
// intersection is found when r lies in [0, 1], which naively tolerates an
// endpoint lying exactly on the sweep line.
func sweepIntersect(origin, destination XY, sweepY float32) (XY, bool) {
	denom := origin[1] - destination[1]
	if denom == 0 {
		// Horizontal edge: treat it as not crossing the sweep line, unless
		// it lies exactly on it, in which case the origin is as good an
		// answer as any point on the segment.
		if origin[1] == sweepY {
			return origin, true
		}
		return XY{}, false
	}
	r := (origin[1] - sweepY) / denom
	if r < 0 || r > 1 {
		return XY{}, false
	}
	return lerp(origin, destination, r), true
}

func lerp(a, b XY, t float32) XY {
	return XY{
		a[0] + (b[0]-a[0])*t,
		a[1] + (b[1]-a[1])*t,
	}
}

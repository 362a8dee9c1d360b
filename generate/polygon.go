package generate

import (
	"math"
	"math/rand"

	"github.com/missinglink/polytri/geom"
)

// RegularPolygon computes a regular polygon circumscribed by a circle
// with the given center and radius, wound counter-clockwise as InitCCW
// requires. sides must be at least 3.
func RegularPolygon(center geom.XY, radius float32, sides int) []geom.XY {
	if sides < 3 {
		panic("generate: a polygon needs at least 3 sides")
	}
	pts := make([]geom.XY, sides)
	for i := 0; i < sides; i++ {
		angle := float64(i) / float64(sides) * 2 * math.Pi
		pts[i] = geom.XY{
			center[0] + float32(math.Cos(angle))*radius,
			center[1] + float32(math.Sin(angle))*radius,
		}
	}
	return pts
}

// RandomPolygon generates a simple, counter-clockwise, star-shaped
// polygon by walking a unit circle and perturbing each vertex's radius
// with Perlin noise, then scaling and recentering the result.
//
// numPoints must be at least 3. The shape is star-shaped around
// center by construction (radius is always positive), so it is always
// simple, but it is not in general y-monotone.
func RandomPolygon(rnd *rand.Rand, center geom.XY, radius float32, numPoints int) []geom.XY {
	if numPoints < 3 {
		panic("generate: a polygon needs at least 3 points")
	}
	noise := newPerlin1D(rnd, numPoints)
	pts := make([]geom.XY, numPoints)
	dAngle := 2 * math.Pi / float64(numPoints)
	for i := 0; i < numPoints; i++ {
		angle := float64(i) * dAngle
		// 0.4 per step keeps consecutive samples correlated (a smooth
		// wobble) without wrapping the noise lattice more than once
		// around the loop.
		n := noise.sample(float64(i) * 0.4)
		r := radius * (1 + float32(n)*0.4)
		pts[i] = geom.XY{
			center[0] + float32(math.Cos(angle))*r,
			center[1] + float32(math.Sin(angle))*r,
		}
	}
	return pts
}

// RandomMonotonePolygon generates a simple, counter-clockwise,
// y-monotone polygon by independently perturbing a left chain and a
// right chain of points between a top vertex at center + (0, height/2)
// and a bottom vertex at center + (0, -height/2).
//
// leftCount and rightCount are the number of interior points on each
// chain (not counting the shared top and bottom vertices); each must be
// at least 1.
func RandomMonotonePolygon(rnd *rand.Rand, center geom.XY, width, height float32, leftCount, rightCount int) []geom.XY {
	if leftCount < 1 || rightCount < 1 {
		panic("generate: each chain needs at least one interior point")
	}

	top := geom.XY{center[0], center[1] + height/2}
	bottom := geom.XY{center[0], center[1] - height/2}

	// For a counter-clockwise ring, the boundary must run top -> bottom
	// down the left side, then bottom -> top up the right side. The left
	// chain runs top -> bottom with x in [-1, -0.1]; the right chain runs
	// bottom -> top with x in [0.1, 1].
	left := monotoneChain(rnd, center, width/2, height, leftCount, -1.0, -0.1, true)
	right := monotoneChain(rnd, center, width/2, height, rightCount, 0.1, 1.0, false)

	pts := make([]geom.XY, 0, 2+leftCount+rightCount)
	pts = append(pts, top)
	pts = append(pts, left...)
	pts = append(pts, bottom)
	pts = append(pts, right...)
	return pts
}

// monotoneChain samples count points with y strictly decreasing (if
// topToBottom) or strictly increasing, and x noise-perturbed within
// [xMin, xMax] of halfWidth.
func monotoneChain(rnd *rand.Rand, center geom.XY, halfWidth, height float32, count int, xMin, xMax float64, topToBottom bool) []geom.XY {
	noise := newPerlin1D(rnd, count)
	pts := make([]geom.XY, count)
	for i := 0; i < count; i++ {
		// Evenly spaced bands across the open interval so no two points
		// of this chain tie in y.
		t := float64(i+1) / float64(count+1)
		if !topToBottom {
			t = 1 - t
		}
		y := center[1] + height*(0.5-float32(t))

		// Sample between lattice points: gradient noise is zero at every
		// integer x, which would leave the chain unperturbed.
		n := noise.sample(float64(i) + 0.5)
		x := xMin + (xMax-xMin)*(0.5+0.5*n)
		pts[i] = geom.XY{
			center[0] + float32(x)*halfWidth,
			y,
		}
	}
	return pts
}

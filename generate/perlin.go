// Package generate builds test and demonstration polygons: regular
// polygons, and Perlin-noise-perturbed random and monotone polygons for
// exercising the triangulator against organic, non-axis-aligned shapes.
package generate

import (
	"math"
	"math/rand"
)

// perlin1D is a one-dimensional Perlin gradient noise generator, used to
// perturb a polygon generator's radius or offset smoothly as it walks
// around (or along) the shape instead of jumping between independent
// random samples at each vertex.
type perlin1D struct {
	gradients []float64
}

func newPerlin1D(rnd *rand.Rand, cells int) *perlin1D {
	gradients := make([]float64, cells+1)
	for i := range gradients {
		gradients[i] = rnd.Float64()*2 - 1
	}
	return &perlin1D{gradients: gradients}
}

// sample evaluates the noise at x, where x must lie within [0, cells].
func (p *perlin1D) sample(x float64) float64 {
	x0 := int(math.Floor(x))
	x1 := x0 + 1
	if x1 >= len(p.gradients) {
		x1 = len(p.gradients) - 1
	}
	t := x - float64(x0)

	n0 := p.gradients[x0] * t
	n1 := p.gradients[x1] * (t - 1)

	fade := t * t * t * (t*(t*6-15) + 10)
	return lerp(n0, n1, fade)
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

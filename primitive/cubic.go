package primitive

import (
	"math"

	"alignkit/geom"
)

// Cubic is the cubic parabola y = C3·x³, the classic railway transition
// approximation. Unlike the spirals it is defined as a polynomial of the
// abscissa; FrameAt converts arc length to abscissa with an ITP solve so
// the primitive keeps the arc-length parameter contract.
type Cubic struct {
	C3 float64
}

// abscissa solves for x such that the arc length from 0 to x equals s.
// The arc length function is odd and grows at least as fast as |x|, so the
// root is bracketed by [0, s] (or [s, 0] for negative s).
func (c Cubic) abscissa(s float64) float64 {
	if s == 0 {
		return 0
	}
	speed := func(x float64) float64 {
		d := 3 * c.C3 * x * x
		return math.Sqrt(1 + d*d)
	}
	arclen := func(x float64) float64 {
		return integrate(speed, 0, x)
	}
	const epsilon = 1e-12
	a, b := min(s, 0.0), max(s, 0.0)
	f := func(x float64) float64 { return arclen(x) - s }
	return solveITP(f, a, b, epsilon, 1, 0.2/(b-a), f(a), f(b))
}

func (c Cubic) FrameAt(s float64) geom.Frame {
	x := c.abscissa(s)
	dy := 3 * c.C3 * x * x
	norm := math.Sqrt(1 + dy*dy)
	return geom.Frame{
		Origin:    geom.Pt(x, c.C3*x*x*x),
		Tangent:   geom.Vec(1/norm, dy/norm),
		Curvature: 6 * c.C3 * x / (norm * norm * norm),
	}
}

package primitive

import (
	"math"

	"alignkit/geom"
)

// Grade primitives describe vertical profiles in the (distance-along,
// height) plane. Their parameter is horizontal distance, not arc length,
// and their placements never rotate: the distance axis must stay aligned
// with stationing. Gradients are expressed as rise over run.

// GradeLine is a constant gradient.
type GradeLine struct {
	Gradient float64
}

func (g GradeLine) FrameAt(u float64) geom.Frame {
	n := math.Hypot(1, g.Gradient)
	return geom.Frame{
		Origin:  geom.Pt(u, g.Gradient*u),
		Tangent: geom.Vec(1/n, g.Gradient/n),
	}
}

// GradeParabola is the parabolic vertical curve blending StartGradient into
// EndGradient over the horizontal length L.
type GradeParabola struct {
	StartGradient float64
	EndGradient   float64
	Length        float64
}

func (g GradeParabola) FrameAt(u float64) geom.Frame {
	rate := (g.EndGradient - g.StartGradient) / g.Length
	grad := g.StartGradient + rate*u
	n := math.Hypot(1, grad)
	return geom.Frame{
		Origin:    geom.Pt(u, g.StartGradient*u+0.5*rate*u*u),
		Tangent:   geom.Vec(1/n, grad/n),
		Curvature: rate / (n * n * n),
	}
}

// GradeArc is the circular vertical curve. Radius is signed: positive is a
// sag (center above the curve), negative a crest. The arc is tangent to
// StartGradient at the local origin.
type GradeArc struct {
	Radius        float64
	StartGradient float64
}

func (g GradeArc) FrameAt(u float64) geom.Frame {
	n := math.Hypot(1, g.StartGradient)
	// Center sits one radius along the leftward normal of the start
	// direction.
	xc := -g.Radius * g.StartGradient / n
	zc := g.Radius / n
	dx := u - xc
	root := math.Sqrt(g.Radius*g.Radius - dx*dx)
	z := zc - math.Copysign(root, g.Radius)
	grad := math.Copysign(1, g.Radius) * dx / root
	gn := math.Hypot(1, grad)
	return geom.Frame{
		Origin:    geom.Pt(u, z),
		Tangent:   geom.Vec(1/gn, grad/gn),
		Curvature: 1 / g.Radius,
	}
}

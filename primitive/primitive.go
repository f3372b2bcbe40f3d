package primitive

import (
	"math"

	"alignkit/geom"
)

// Primitive is a parametric curve evaluated in local coordinates. The
// parameter is arc length for horizontal primitives and horizontal distance
// for grade primitives; it may be negative, as curve segments can start at
// a negative offset along their parent curve.
type Primitive interface {
	// FrameAt evaluates the local frame at parameter s: position, unit
	// tangent, and signed curvature.
	FrameAt(s float64) geom.Frame
}

// Line is the straight primitive: the local +X axis.
type Line struct{}

func (Line) FrameAt(s float64) geom.Frame {
	return geom.Frame{
		Origin:  geom.Pt(s, 0),
		Tangent: geom.Vec(1, 0),
	}
}

// Circle is the circular arc primitive. Radius is signed: positive curves
// left, negative curves right. The circle passes through the local origin
// heading +X.
type Circle struct {
	Radius float64
}

func (c Circle) FrameAt(s float64) geom.Frame {
	th := s / c.Radius
	sin, cos := math.Sincos(th)
	return geom.Frame{
		Origin:    geom.Pt(c.Radius*sin, c.Radius*(1-cos)),
		Tangent:   geom.Vec(cos, sin),
		Curvature: 1 / c.Radius,
	}
}

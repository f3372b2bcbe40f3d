package synth

import (
	"math"

	"alignkit/geom"
	"alignkit/primitive"
)

// CurvePrimitive is the geometric counterpart of one business segment (or
// one half of a Helmert-family segment): a parent parametric curve, a
// placement, a start offset and signed extent along the parent, and the
// transition code describing continuity with the next primitive.
type CurvePrimitive struct {
	Parent    primitive.Primitive
	Placement geom.Placement
	// Placement3 is set for cant primitives, whose frames leave the plane.
	Placement3 *geom.Placement3
	// Offset is the parent-curve parameter at which the segment begins.
	// Clothoids not starting from zero curvature begin partway along (or
	// before the origin of) their parent spiral.
	Offset float64
	// Extent is the signed parameter range covered. A negative extent runs
	// the parent curve backwards; circular arcs carry length·sign(radius).
	Extent     float64
	Transition TransitionCode

	// Segment points back at the business segment this primitive realizes:
	// *segment.Horizontal, *segment.Vertical, or *segment.Cant. The sentinel
	// primitive of a bare curve has no segment.
	Segment any

	owner *CompositeCurve
}

// Length returns the unsigned length of the primitive.
func (p *CurvePrimitive) Length() float64 {
	return math.Abs(p.Extent)
}

// IsSentinel reports whether this is a trailing zero-length primitive.
func (p *CurvePrimitive) IsSentinel() bool {
	return p.Extent == 0
}

// Owner returns the composite curve the primitive is attached to, or nil.
func (p *CurvePrimitive) Owner() *CompositeCurve {
	return p.owner
}

// FrameAt evaluates the primitive at distance d from its start, in parent
// coordinates of its placement. d runs over [0, Length].
func (p *CurvePrimitive) FrameAt(d float64) geom.Frame {
	dir := 1.0
	if p.Extent < 0 {
		dir = -1
	}
	start := p.localFrame(p.Offset, dir)
	cur := p.localFrame(p.Offset+d*dir, dir)
	rot := p.Placement.RefDirection.Angle() - start.Tangent.Angle()
	return geom.Frame{
		Origin:    p.Placement.Location.Translate(cur.Origin.Sub(start.Origin).Rotate(rot)),
		Tangent:   cur.Tangent.Rotate(rot),
		Curvature: cur.Curvature,
	}
}

// localFrame evaluates the parent curve, reversing the tangent and
// curvature when the primitive runs the parent backwards.
func (p *CurvePrimitive) localFrame(s, dir float64) geom.Frame {
	f := p.Parent.FrameAt(s)
	if dir < 0 {
		f.Tangent = f.Tangent.Negate()
		f.Curvature = -f.Curvature
	}
	return f
}

// StartFrame returns the frame at the beginning of the primitive.
func (p *CurvePrimitive) StartFrame() geom.Frame {
	return p.FrameAt(0)
}

// EndFrame returns the frame at the end of the primitive.
func (p *CurvePrimitive) EndFrame() geom.Frame {
	return p.FrameAt(p.Length())
}

package synth

import (
	"fmt"
	"math"

	"alignkit/geom"
)

// CurveKind distinguishes the three curve layers.
type CurveKind int

const (
	PlaneKind CurveKind = iota
	GradientKind
	CantKind
)

var kindNames = [...]string{"plane", "gradient", "cant"}

func (k CurveKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// CompositeCurve is an ordered sequence of curve primitives terminated,
// once non-empty, by exactly one zero-length sentinel primitive that
// anchors the end of the curve.
type CompositeCurve struct {
	kind  CurveKind
	prims []*CurvePrimitive
}

// Kind returns the curve's layer kind.
func (c *CompositeCurve) Kind() CurveKind {
	return c.kind
}

// Primitives returns the primitives in order, sentinel last.
func (c *CompositeCurve) Primitives() []*CurvePrimitive {
	return c.prims
}

// Empty reports whether the curve has no primitives at all, not even a
// sentinel.
func (c *CompositeCurve) Empty() bool {
	return len(c.prims) == 0
}

// HasSentinel reports whether the curve's last primitive is the zero-length
// sentinel.
func (c *CompositeCurve) HasSentinel() bool {
	return len(c.prims) > 0 && c.prims[len(c.prims)-1].IsSentinel()
}

// Sentinel returns the trailing zero-length primitive, or nil.
func (c *CompositeCurve) Sentinel() *CurvePrimitive {
	if !c.HasSentinel() {
		return nil
	}
	return c.prims[len(c.prims)-1]
}

// LastReal returns the last primitive with nonzero extent, or nil.
func (c *CompositeCurve) LastReal() *CurvePrimitive {
	for i := len(c.prims) - 1; i >= 0; i-- {
		if !c.prims[i].IsSentinel() {
			return c.prims[i]
		}
	}
	return nil
}

// Reset detaches and discards all primitives, leaving the curve empty.
// Callers rebuilding a representation map fresh primitives afterwards.
func (c *CompositeCurve) Reset() {
	for _, p := range c.prims {
		p.owner = nil
	}
	c.prims = nil
}

// Length returns the total unsigned length of the curve.
func (c *CompositeCurve) Length() float64 {
	var sum float64
	for _, p := range c.prims {
		sum += p.Length()
	}
	return sum
}

// FrameAt evaluates the curve at distance d from its start. Distances at
// primitive boundaries evaluate on the later primitive; d at the exact end
// of the curve evaluates the end frame of the last real primitive.
func (c *CompositeCurve) FrameAt(d float64) (geom.Frame, error) {
	if c.LastReal() == nil {
		return geom.Frame{}, fmt.Errorf("evaluating empty %s curve: %w", c.kind, ErrTypeMismatch)
	}
	if d < 0 || d > c.Length()+1e-9 {
		return geom.Frame{}, fmt.Errorf("distance %g outside curve of length %g: %w", d, c.Length(), ErrTypeMismatch)
	}
	var acc float64
	for _, p := range c.prims {
		l := p.Length()
		if d <= acc+l && !p.IsSentinel() {
			return p.FrameAt(d - acc), nil
		}
		acc += l
	}
	last := c.LastReal()
	return last.EndFrame(), nil
}

// PlaneCurve is the composite of a horizontal layout's primitives.
type PlaneCurve struct {
	CompositeCurve
}

// NewPlaneCurve returns an empty plane curve.
func NewPlaneCurve() *PlaneCurve {
	return &PlaneCurve{CompositeCurve{kind: PlaneKind}}
}

// GradientCurve wraps a plane curve and adds the vertical profile.
type GradientCurve struct {
	CompositeCurve
	Base *PlaneCurve
}

// NewGradientCurve returns an empty gradient curve over base.
func NewGradientCurve(base *PlaneCurve) *GradientCurve {
	return &GradientCurve{CompositeCurve{kind: GradientKind}, base}
}

// FrameAt3 evaluates the spatial frame at distance d along the base curve:
// the plane position lifted to the profile height, with the tangent pitched
// by the gradient.
func (g *GradientCurve) FrameAt3(d float64) (geom.Frame3, error) {
	pf, err := g.Base.FrameAt(d)
	if err != nil {
		return geom.Frame3{}, err
	}
	vf, err := g.CompositeCurve.FrameAt(d)
	if err != nil {
		return geom.Frame3{}, err
	}
	grad := vf.Tangent.Y / vf.Tangent.X
	n := math.Hypot(1, grad)
	return geom.Frame3{
		Origin:    pf.Origin.Lift(vf.Origin.Y),
		Tangent:   pf.Tangent.Mul(1 / n).Lift(grad / n),
		Axis:      geom.Vec3{Z: 1},
		Curvature: pf.Curvature,
	}, nil
}

// SegmentedReferenceCurve wraps a gradient curve and adds cant: its frames
// are the gradient frames rolled about the tangent by the cant angle, with
// the origin lifted by half the combined cant.
type SegmentedReferenceCurve struct {
	CompositeCurve
	Base *GradientCurve
	// RailHeadDistance is the gauge distance between rail heads over which
	// the combined cant is measured.
	RailHeadDistance float64
}

// NewSegmentedReferenceCurve returns an empty segmented reference curve
// over base.
func NewSegmentedReferenceCurve(base *GradientCurve, railHead float64) *SegmentedReferenceCurve {
	return &SegmentedReferenceCurve{CompositeCurve{kind: CantKind}, base, railHead}
}

// CantAt returns the combined cant at distance d along the base curve. The
// cant primitives' parent-curve curvature carries cant scaled by the rail
// head distance.
func (s *SegmentedReferenceCurve) CantAt(d float64) (float64, error) {
	cf, err := s.CompositeCurve.FrameAt(d)
	if err != nil {
		return 0, err
	}
	return cf.Curvature * s.RailHeadDistance, nil
}

// FrameAt3 evaluates the canted spatial frame at distance d.
func (s *SegmentedReferenceCurve) FrameAt3(d float64) (geom.Frame3, error) {
	base, err := s.Base.FrameAt3(d)
	if err != nil {
		return geom.Frame3{}, err
	}
	cant, err := s.CantAt(d)
	if err != nil {
		return geom.Frame3{}, err
	}
	sin := cant / s.RailHeadDistance
	psi := math.Asin(math.Max(-1, math.Min(1, sin)))
	sp, cp := math.Sincos(psi)
	t := base.Tangent
	up := base.Axis
	// Roll the axis about the tangent by the cant angle (Rodrigues).
	dot := t.Dot(up)
	axis := geom.Vec3{
		X: up.X*cp + (t.Y*up.Z-t.Z*up.Y)*sp + t.X*dot*(1-cp),
		Y: up.Y*cp + (t.Z*up.X-t.X*up.Z)*sp + t.Y*dot*(1-cp),
		Z: up.Z*cp + (t.X*up.Y-t.Y*up.X)*sp + t.Z*dot*(1-cp),
	}
	base.Origin = base.Origin.Translate(geom.Vec3{Z: cant / 2})
	base.Axis = axis
	return base, nil
}

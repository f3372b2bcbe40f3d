package synth

import "alignkit/geom"

// Evaluator produces local frames on curve primitives. The engine treats
// the evaluator as an external, stateless collaborator: it must be a pure
// function of the primitive and the distance, safe to call repeatedly.
type Evaluator interface {
	// Evaluate returns the frame at distance d from the primitive's start.
	// When withCurvature is false the curvature of the result is zeroed;
	// implementations backed by expensive differentiation may skip the
	// computation entirely.
	Evaluate(p *CurvePrimitive, d float64, withCurvature bool) (geom.Frame, error)
}

// ClosedForm is the default evaluator: every primitive family in this
// module has a closed-form frame, so evaluation is direct.
type ClosedForm struct{}

func (ClosedForm) Evaluate(p *CurvePrimitive, d float64, withCurvature bool) (geom.Frame, error) {
	f := p.FrameAt(d)
	if !withCurvature {
		f.Curvature = 0
	}
	return f, nil
}

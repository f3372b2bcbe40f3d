package synth

import (
	"fmt"
	"math"
)

// DefaultTolerance is the default position tolerance for transition
// classification: one millimeter in project length units.
const DefaultTolerance = 1e-3

// Classifier assigns transition codes to adjacent curve primitives by
// comparing the end frame of one against the start frame of the next
// through the evaluator.
type Classifier struct {
	Eval Evaluator
}

// Classify compares a's end frame with b's start frame and returns the
// strongest continuity code that holds. Both primitives must belong to the
// same curve. A non-positive tolerance selects DefaultTolerance.
//
// The tiers are strict: when positions do not meet, the code is
// Discontinuous regardless of tangent or curvature agreement.
func (c Classifier) Classify(a, b *CurvePrimitive, tolerance float64) (TransitionCode, error) {
	if a.owner == nil || a.owner != b.owner {
		return Discontinuous, fmt.Errorf("classify: %w", ErrCrossCurveComparison)
	}
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	endA, err := c.Eval.Evaluate(a, a.Length(), true)
	if err != nil {
		return Discontinuous, fmt.Errorf("classify: end frame: %w", err)
	}
	startB, err := c.Eval.Evaluate(b, 0, true)
	if err != nil {
		return Discontinuous, fmt.Errorf("classify: start frame: %w", err)
	}
	if endA.Origin.Distance(startB.Origin) > tolerance {
		return Discontinuous, nil
	}
	if endA.Tangent.Sub(startB.Tangent).Hypot() > tolerance {
		return Continuous, nil
	}
	if math.Abs(endA.Curvature-startB.Curvature) > tolerance {
		return ContSameGradient, nil
	}
	return ContSameGradientSameCurvature, nil
}

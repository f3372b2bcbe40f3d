package synth

import (
	"fmt"

	"alignkit/geom"
	"alignkit/primitive"
)

// Builder appends curve primitives to composite curves while maintaining
// the sentinel invariant and the transition codes of every boundary it
// touches. The zero value uses the closed-form evaluator and the default
// tolerance.
type Builder struct {
	Eval      Evaluator
	Tolerance float64
}

func (b *Builder) evaluator() Evaluator {
	if b.Eval == nil {
		return ClosedForm{}
	}
	return b.Eval
}

// Append inserts p before c's sentinel. The new primitive becomes the last
// real primitive and starts out Discontinuous; the boundary before it and
// the boundary at the sentinel are then reclassified, and the sentinel's
// placement is recomputed from p's end frame. Appending to an empty curve
// skips all classification.
//
// A primitive already attached to a curve is rejected with ErrAlreadyOwned.
func (b *Builder) Append(p *CurvePrimitive, c *CompositeCurve) error {
	if p.owner != nil {
		return fmt.Errorf("append to %s curve: %w", c.kind, ErrAlreadyOwned)
	}
	p.owner = c
	p.Transition = Discontinuous
	if c.Empty() {
		c.prims = append(c.prims, p)
		return nil
	}

	cl := Classifier{Eval: b.evaluator()}
	sent := c.Sentinel()
	if sent == nil {
		prev := c.prims[len(c.prims)-1]
		c.prims = append(c.prims, p)
		code, err := cl.Classify(prev, p, b.Tolerance)
		if err != nil {
			return err
		}
		prev.Transition = code
		return nil
	}

	// Swap positions with the sentinel.
	c.prims[len(c.prims)-1] = p
	c.prims = append(c.prims, sent)

	if len(c.prims) >= 3 {
		prev := c.prims[len(c.prims)-3]
		code, err := cl.Classify(prev, p, b.Tolerance)
		if err != nil {
			return err
		}
		prev.Transition = code
	}

	if err := b.mirrorSentinel(sent, p); err != nil {
		return err
	}
	code, err := cl.Classify(p, sent, b.Tolerance)
	if err != nil {
		return err
	}
	p.Transition = code
	return nil
}

// EnsureSentinel synthesizes the trailing zero-length primitive when the
// curve has none. Its placement mirrors the last real primitive's end frame
// (position and tangent), or the local origin heading +X on an empty curve.
// Calling it again without an intervening append reports created == false
// and has no effect.
func (b *Builder) EnsureSentinel(c *CompositeCurve) (created bool, err error) {
	if c.HasSentinel() {
		return false, nil
	}
	sent := &CurvePrimitive{owner: c, Transition: Discontinuous}
	last := c.LastReal()
	if last == nil {
		switch c.kind {
		case GradientKind:
			sent.Parent = primitive.GradeLine{}
		default:
			sent.Parent = primitive.Line{}
		}
		sent.Placement = geom.IdentityPlacement
	} else if err := b.mirrorSentinel(sent, last); err != nil {
		return false, err
	}
	c.prims = append(c.prims, sent)
	if last != nil {
		cl := Classifier{Eval: b.evaluator()}
		code, err := cl.Classify(last, sent, b.Tolerance)
		if err != nil {
			return false, err
		}
		last.Transition = code
	}
	return true, nil
}

// mirrorSentinel points the sentinel at the end frame of the given last
// real primitive. Only position and tangent are mirrored; the sentinel's
// parent curve is straight.
func (b *Builder) mirrorSentinel(sent, last *CurvePrimitive) error {
	end, err := b.evaluator().Evaluate(last, last.Length(), false)
	if err != nil {
		return fmt.Errorf("sentinel placement: %w", err)
	}
	switch sent.owner.kind {
	case GradientKind:
		sent.Parent = primitive.GradeLine{Gradient: end.Tangent.Y / end.Tangent.X}
	default:
		sent.Parent = primitive.Line{}
	}
	sent.Placement = geom.PlacementFromFrame(end)
	sent.Placement3 = last.Placement3
	sent.Offset = 0
	sent.Extent = 0
	return nil
}

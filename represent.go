package alignkit

import (
	"fmt"

	"github.com/google/uuid"

	"alignkit/geom"
	"alignkit/segment"
	"alignkit/synth"
)

// EnsureSentinel synthesizes the trailing zero-length segments and
// primitives on every layout and curve of the alignment that lacks one,
// creating the matching end-of-layout referents. Calling it twice without
// an intervening append is a no-op: created reports whether anything was
// synthesized.
func (o *Orchestrator) EnsureSentinel() (created bool, err error) {
	c, err := o.ensureHorizontalSentinel()
	if err != nil {
		return created, err
	}
	created = created || c

	profiles := []*Alignment{o.root}
	profiles = append(profiles, o.root.Children...)
	for _, a := range profiles {
		c, err := o.ensureProfileSentinels(a)
		if err != nil {
			return created, err
		}
		created = created || c
	}
	return created, nil
}

func (o *Orchestrator) ensureHorizontalSentinel() (created bool, err error) {
	a := o.root
	c, err := o.builder.EnsureSentinel(&a.Plane.CompositeCurve)
	if err != nil {
		return false, err
	}
	created = c
	if a.Horizontal.HasSentinel() {
		return created, nil
	}
	at := a.Plane.Sentinel().Placement
	sent := &segment.Horizontal{
		ID:             uuid.New(),
		Type:           segment.Line,
		StartPoint:     at.Location,
		StartDirection: at.RefDirection.Angle(),
	}
	a.Horizontal.segs = append(a.Horizontal.segs, sent)

	var lastType *segment.HorizontalType
	if lr := a.Horizontal.LastReal(); lr != nil {
		lastType = &lr.Type
	}
	dist := a.Horizontal.Length()
	a.hEnd = a.Ledger.AddReferent(dist, a.StartStation+dist,
		o.horizontalLabel(lastType, nil), sent)
	a.hEnd.Frame = geom.Frame{Origin: at.Location, Tangent: at.RefDirection}
	return true, nil
}

func (o *Orchestrator) ensureProfileSentinels(a *Alignment) (created bool, err error) {
	if a.Vertical != nil {
		c, err := o.builder.EnsureSentinel(&a.Gradient.CompositeCurve)
		if err != nil {
			return created, err
		}
		created = created || c
		if !a.Vertical.HasSentinel() {
			at := a.Gradient.Sentinel().Placement
			grad := 0.0
			if at.RefDirection.X != 0 {
				grad = at.RefDirection.Y / at.RefDirection.X
			}
			sent := &segment.Vertical{
				ID:             uuid.New(),
				Type:           segment.ConstantGradient,
				StartDistAlong: at.Location.X,
				StartHeight:    at.Location.Y,
				StartGradient:  grad,
				EndGradient:    grad,
			}
			a.Vertical.segs = append(a.Vertical.segs, sent)
			var lastType *segment.VerticalType
			if lr := a.Vertical.LastReal(); lr != nil {
				lastType = &lr.Type
			}
			a.vEnd = a.Ledger.AddReferent(at.Location.X, a.StartStation+at.Location.X,
				o.verticalLabel(lastType, nil), sent)
			a.vEnd.Frame = geom.Frame{Origin: at.Location, Tangent: at.RefDirection}
			created = true
		}
	}
	if a.Cant != nil {
		c, err := o.builder.EnsureSentinel(&a.Reference.CompositeCurve)
		if err != nil {
			return created, err
		}
		created = created || c
		if !a.Cant.HasSentinel() {
			dist := a.Cant.Length()
			cant := 0.0
			if lr := a.Cant.LastReal(); lr != nil {
				cant = lr.EndCant
			}
			sent := &segment.Cant{
				ID:             uuid.New(),
				Type:           segment.ConstantCant,
				StartDistAlong: dist,
				StartCant:      cant,
				EndCant:        cant,
			}
			a.Cant.segs = append(a.Cant.segs, sent)
			var lastType *segment.CantType
			if lr := a.Cant.LastReal(); lr != nil {
				lastType = &lr.Type
			}
			a.cEnd = a.Ledger.AddReferent(dist, a.StartStation+dist,
				o.cantLabel(lastType, nil), sent)
			created = true
		}
	}
	return created, nil
}

// BuildRepresentation rebuilds every curve of the alignment from its
// business layouts from scratch: the shared plane curve, then each
// profile's gradient and reference curves. Referents and segments are
// untouched; only the geometric representation is recreated.
func (o *Orchestrator) BuildRepresentation() error {
	a := o.root
	a.Plane.Reset()
	for _, seg := range a.Horizontal.Segments() {
		if seg.IsSentinel() {
			continue
		}
		prims, err := synth.MapHorizontal(seg, o.cantLookup)
		if err != nil {
			return fmt.Errorf("rebuild horizontal: %w", err)
		}
		for _, p := range prims {
			if err := o.builder.Append(p, &a.Plane.CompositeCurve); err != nil {
				return fmt.Errorf("rebuild horizontal: %w", err)
			}
		}
	}
	if _, err := o.builder.EnsureSentinel(&a.Plane.CompositeCurve); err != nil {
		return err
	}

	profiles := []*Alignment{a}
	profiles = append(profiles, a.Children...)
	for _, p := range profiles {
		if err := o.rebuildProfile(p); err != nil {
			return err
		}
	}
	return nil
}

func (o *Orchestrator) rebuildProfile(a *Alignment) error {
	if a.Vertical != nil {
		a.Gradient.Reset()
		for _, seg := range a.Vertical.Segments() {
			if seg.IsSentinel() {
				continue
			}
			prims, err := synth.MapVertical(seg)
			if err != nil {
				return fmt.Errorf("rebuild vertical %q: %w", a.Name, err)
			}
			for _, p := range prims {
				if err := o.builder.Append(p, &a.Gradient.CompositeCurve); err != nil {
					return fmt.Errorf("rebuild vertical %q: %w", a.Name, err)
				}
			}
		}
		if _, err := o.builder.EnsureSentinel(&a.Gradient.CompositeCurve); err != nil {
			return err
		}
	}
	if a.Cant != nil {
		a.Reference.Reset()
		at := geom.IdentityPlacement
		for _, seg := range a.Cant.Segments() {
			if seg.IsSentinel() {
				continue
			}
			prims, err := synth.MapCant(seg, o.railHead, at)
			if err != nil {
				return fmt.Errorf("rebuild cant %q: %w", a.Name, err)
			}
			for _, p := range prims {
				if err := o.builder.Append(p, &a.Reference.CompositeCurve); err != nil {
					return fmt.Errorf("rebuild cant %q: %w", a.Name, err)
				}
			}
			at = geom.PlacementFromFrame(prims[len(prims)-1].EndFrame())
		}
		if _, err := o.builder.EnsureSentinel(&a.Reference.CompositeCurve); err != nil {
			return err
		}
	}
	return nil
}

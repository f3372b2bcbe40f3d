package alignkit

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"alignkit/geom"
	"alignkit/segment"
	"alignkit/station"
	"alignkit/synth"
)

var (
	// ErrNoHorizontal is returned by operations that need horizontal
	// geometry before any horizontal segment was appended.
	ErrNoHorizontal = errors.New("alignkit: alignment has no horizontal geometry")
	// ErrNoVertical is returned when a cant segment is appended to a
	// profile without a vertical layout.
	ErrNoVertical = errors.New("alignkit: cant requires a vertical profile")
)

// DefaultRailHeadDistance is the rail head spacing of standard gauge
// track, in meters, used to convert cant to cant angle when no project
// value is configured.
const DefaultRailHeadDistance = 1.5

// Orchestrator is the top-level facade over one alignment: incremental
// segment appends, PI-method batch layout, and the structural fork that
// lets several vertical profiles reuse one horizontal layout. All
// operations are synchronous single-writer mutations; every append commits
// independently, so a failed batch leaves a valid truncated alignment.
type Orchestrator struct {
	root    *Alignment
	profile *Alignment

	builder   synth.Builder
	namer     station.Namer
	units     station.Units
	railHead  float64
	tolerance float64
	state     State
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithEvaluator substitutes the curve evaluator used for classification
// and sentinel placement.
func WithEvaluator(e synth.Evaluator) Option {
	return func(o *Orchestrator) { o.builder.Eval = e }
}

// WithNamer substitutes the referent naming strategy.
func WithNamer(n station.Namer) Option {
	return func(o *Orchestrator) { o.namer = n }
}

// WithUnits selects the station formatting convention.
func WithUnits(u station.Units) Option {
	return func(o *Orchestrator) { o.units = u }
}

// WithTolerance sets the transition classification tolerance.
func WithTolerance(t float64) Option {
	return func(o *Orchestrator) {
		o.tolerance = t
		o.builder.Tolerance = t
	}
}

// WithRailHeadDistance sets the rail head spacing used to convert cant
// values to cant angles.
func WithRailHeadDistance(d float64) Option {
	return func(o *Orchestrator) { o.railHead = d }
}

// New returns an orchestrator over a fresh, empty alignment starting at
// the given station.
func New(name string, startStation float64, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		railHead: DefaultRailHeadDistance,
	}
	for _, opt := range opts {
		opt(o)
	}
	o.root = &Alignment{
		Name:         name,
		StartStation: startStation,
		Horizontal:   &HorizontalLayout{},
		Ledger:       station.NewLedger(o.units),
		Plane:        synth.NewPlaneCurve(),
	}
	o.profile = o.root
	return o
}

// Alignment returns the root alignment.
func (o *Orchestrator) Alignment() *Alignment {
	return o.root
}

// State returns the layout-completeness state.
func (o *Orchestrator) State() State {
	return o.state
}

// StationAsString formats the station at the given distance along the
// alignment.
func (o *Orchestrator) StationAsString(distAlong float64) string {
	return o.units.FormatStation(o.root.StartStation + distAlong)
}

// GetTransitionCode classifies the boundary between two curve primitives
// of the same curve. A non-positive tolerance selects the orchestrator's
// configured tolerance.
func (o *Orchestrator) GetTransitionCode(a, b *synth.CurvePrimitive, tolerance float64) (synth.TransitionCode, error) {
	if tolerance <= 0 {
		tolerance = o.tolerance
	}
	cl := synth.Classifier{Eval: o.evaluator()}
	return cl.Classify(a, b, tolerance)
}

func (o *Orchestrator) evaluator() synth.Evaluator {
	if o.builder.Eval == nil {
		return synth.ClosedForm{}
	}
	return o.builder.Eval
}

// cantLookup resolves a Viennese bend's paired cant segment by ID. The
// first cant layout found wins: the root's own, then the children's in
// creation order. When two profiles carry a cant segment with the same ID
// the earlier profile shadows the later one.
func (o *Orchestrator) cantLookup(id uuid.UUID) (synth.CantRef, bool) {
	layouts := make([]*CantLayout, 0, 1+len(o.root.Children))
	if o.root.Cant != nil {
		layouts = append(layouts, o.root.Cant)
	}
	for _, child := range o.root.Children {
		if child.Cant != nil {
			layouts = append(layouts, child.Cant)
		}
	}
	for _, l := range layouts {
		for _, seg := range l.Segments() {
			if seg.ID == id {
				return synth.CantRef{Seg: seg, RailHeadDistance: o.railHead}, true
			}
		}
	}
	return synth.CantRef{}, false
}

// AppendHorizontal maps the segment onto curve primitives, splices them
// before the plane curve's sentinel, inserts the business segment before
// the layout's sentinel, and updates the ledger: one referent for the new
// segment's start boundary, and the end referent moved and renamed. The
// segment's start point and direction are taken as given; a gap or kink
// against the previous segment is recorded in the transition codes, not
// repaired. Returns the end frame of the appended geometry.
func (o *Orchestrator) AppendHorizontal(seg *segment.Horizontal) (geom.Frame, error) {
	a := o.root
	if seg.ID == uuid.Nil {
		seg.ID = uuid.New()
	}
	startDist := a.Horizontal.Length()

	prims, err := synth.MapHorizontal(seg, o.cantLookup)
	if err != nil {
		return geom.Frame{}, err
	}
	for _, p := range prims {
		if err := o.builder.Append(p, &a.Plane.CompositeCurve); err != nil {
			return geom.Frame{}, err
		}
	}
	if _, err := o.builder.EnsureSentinel(&a.Plane.CompositeCurve); err != nil {
		return geom.Frame{}, err
	}

	var prevType *segment.HorizontalType
	if prev := a.Horizontal.LastReal(); prev != nil {
		prevType = &prev.Type
	}
	a.Horizontal.insert(seg)
	end := prims[len(prims)-1].EndFrame()
	endDist := startDist + seg.Length

	if sent := a.Horizontal.Sentinel(); sent != nil {
		sent.StartPoint = end.Origin
		sent.StartDirection = end.Tangent.Angle()
	} else {
		a.Horizontal.segs = append(a.Horizontal.segs, &segment.Horizontal{
			ID:             uuid.New(),
			Type:           segment.Line,
			StartPoint:     end.Origin,
			StartDirection: end.Tangent.Angle(),
		})
		a.hEnd = a.Ledger.AddReferent(endDist, a.StartStation+endDist,
			o.horizontalLabel(&seg.Type, nil), a.Horizontal.Sentinel())
	}

	ref := a.Ledger.AddReferent(startDist, a.StartStation+startDist,
		o.horizontalLabel(prevType, &seg.Type), seg)
	ref.Frame = prims[0].StartFrame()
	o.moveEnd(a.Ledger, a.hEnd, endDist, o.horizontalLabel(&seg.Type, nil), end)

	if o.state == StateEmpty {
		o.state = StateHorizontalOnly
	}
	return end, nil
}

// NewVerticalProfile begins a new vertical profile and returns the
// alignment that owns it. The first profile lives on the root alignment;
// beginning a second one forks the structure, moving the existing
// vertical and cant layouts, curves, and referents onto an implicit
// "default" child, and every profile from then on onto its own child
// reusing the shared plane curve.
func (o *Orchestrator) NewVerticalProfile() (*Alignment, error) {
	if o.root.Plane.Empty() {
		return nil, fmt.Errorf("new vertical profile: %w", ErrNoHorizontal)
	}
	if o.root.Vertical == nil && len(o.root.Children) == 0 {
		o.root.Vertical = &VerticalLayout{}
		o.root.Gradient = synth.NewGradientCurve(o.root.Plane)
		o.profile = o.root
		if o.state < StateWithVertical {
			o.state = StateWithVertical
		}
		return o.root, nil
	}
	if o.root.Vertical != nil {
		o.forkToChild()
	}
	child := &Alignment{
		Name:         fmt.Sprintf("profile-%d", len(o.root.Children)+1),
		StartStation: o.root.StartStation,
		Vertical:     &VerticalLayout{},
		Ledger:       station.NewLedger(o.units),
		Plane:        o.root.Plane,
		Parent:       o.root,
	}
	child.Gradient = synth.NewGradientCurve(child.Plane)
	o.root.Children = append(o.root.Children, child)
	o.profile = child
	return child, nil
}

// forkToChild moves the root's vertical and cant layouts, their curves,
// and their referents onto an implicit "default" child. Referent and
// segment identities are preserved: entities are moved, never recreated.
func (o *Orchestrator) forkToChild() {
	root := o.root
	child := &Alignment{
		Name:         "default",
		StartStation: root.StartStation,
		Vertical:     root.Vertical,
		Cant:         root.Cant,
		Ledger:       station.NewLedger(o.units),
		Plane:        root.Plane,
		Gradient:     root.Gradient,
		Reference:    root.Reference,
		Parent:       root,
		vEnd:         root.vEnd,
		cEnd:         root.cEnd,
	}
	root.Vertical, root.Cant = nil, nil
	root.Gradient, root.Reference = nil, nil
	root.vEnd, root.cEnd = nil, nil

	for _, r := range append([]*station.Referent(nil), root.Ledger.Referents()...) {
		switch r.Segment.(type) {
		case *segment.Vertical, *segment.Cant:
			root.Ledger.Remove(r)
			child.Ledger.Adopt(r)
		}
	}
	root.Children = append(root.Children, child)
}

// AppendVertical appends a vertical segment to the current profile,
// beginning the first profile implicitly. Returns the end frame in the
// (distance, height) plane.
func (o *Orchestrator) AppendVertical(seg *segment.Vertical) (geom.Frame, error) {
	if o.profile.Vertical == nil {
		if _, err := o.NewVerticalProfile(); err != nil {
			return geom.Frame{}, err
		}
	}
	a := o.profile
	if seg.ID == uuid.Nil {
		seg.ID = uuid.New()
	}

	prims, err := synth.MapVertical(seg)
	if err != nil {
		return geom.Frame{}, err
	}
	for _, p := range prims {
		if err := o.builder.Append(p, &a.Gradient.CompositeCurve); err != nil {
			return geom.Frame{}, err
		}
	}
	if _, err := o.builder.EnsureSentinel(&a.Gradient.CompositeCurve); err != nil {
		return geom.Frame{}, err
	}

	var prevType *segment.VerticalType
	if prev := a.Vertical.LastReal(); prev != nil {
		prevType = &prev.Type
	}
	a.Vertical.insert(seg)
	end := prims[len(prims)-1].EndFrame()
	endGrad := end.Tangent.Y / end.Tangent.X

	if sent := a.Vertical.Sentinel(); sent != nil {
		sent.StartDistAlong = end.Origin.X
		sent.StartHeight = end.Origin.Y
		sent.StartGradient = endGrad
		sent.EndGradient = endGrad
	} else {
		a.Vertical.segs = append(a.Vertical.segs, &segment.Vertical{
			ID:             uuid.New(),
			Type:           segment.ConstantGradient,
			StartDistAlong: end.Origin.X,
			StartHeight:    end.Origin.Y,
			StartGradient:  endGrad,
			EndGradient:    endGrad,
		})
		a.vEnd = a.Ledger.AddReferent(end.Origin.X, a.StartStation+end.Origin.X,
			o.verticalLabel(&seg.Type, nil), a.Vertical.Sentinel())
	}

	ref := a.Ledger.AddReferent(seg.StartDistAlong, a.StartStation+seg.StartDistAlong,
		o.verticalLabel(prevType, &seg.Type), seg)
	ref.Frame = prims[0].StartFrame()
	o.moveEnd(a.Ledger, a.vEnd, end.Origin.X, o.verticalLabel(&seg.Type, nil), end)

	if o.state < StateWithVertical {
		o.state = StateWithVertical
	}
	return end, nil
}

// AppendCant appends a cant segment to the current profile. The profile
// must already have a vertical layout. Cant primitives chain in their
// trace space onto the previous cant primitive's end frame. Returns the
// end frame of the cant trace.
func (o *Orchestrator) AppendCant(seg *segment.Cant) (geom.Frame, error) {
	a := o.profile
	if a.Vertical == nil {
		return geom.Frame{}, fmt.Errorf("append cant: %w", ErrNoVertical)
	}
	if seg.ID == uuid.Nil {
		seg.ID = uuid.New()
	}
	if a.Cant == nil {
		a.Cant = &CantLayout{}
		a.Reference = synth.NewSegmentedReferenceCurve(a.Gradient, o.railHead)
	}
	at := geom.IdentityPlacement
	if last := a.Reference.LastReal(); last != nil {
		at = geom.PlacementFromFrame(last.EndFrame())
	}

	prims, err := synth.MapCant(seg, o.railHead, at)
	if err != nil {
		return geom.Frame{}, err
	}
	for _, p := range prims {
		if err := o.builder.Append(p, &a.Reference.CompositeCurve); err != nil {
			return geom.Frame{}, err
		}
	}
	if _, err := o.builder.EnsureSentinel(&a.Reference.CompositeCurve); err != nil {
		return geom.Frame{}, err
	}

	var prevType *segment.CantType
	if prev := a.Cant.LastReal(); prev != nil {
		prevType = &prev.Type
	}
	startDist := seg.StartDistAlong
	a.Cant.insert(seg)
	end := prims[len(prims)-1].EndFrame()
	endDist := startDist + seg.Length

	if sent := a.Cant.Sentinel(); sent != nil {
		sent.StartDistAlong = endDist
		sent.StartCant = seg.EndCant
		sent.EndCant = seg.EndCant
	} else {
		a.Cant.segs = append(a.Cant.segs, &segment.Cant{
			ID:             uuid.New(),
			Type:           segment.ConstantCant,
			StartDistAlong: endDist,
			StartCant:      seg.EndCant,
			EndCant:        seg.EndCant,
		})
		a.cEnd = a.Ledger.AddReferent(endDist, a.StartStation+endDist,
			o.cantLabel(&seg.Type, nil), a.Cant.Sentinel())
	}

	ref := a.Ledger.AddReferent(startDist, a.StartStation+startDist,
		o.cantLabel(prevType, &seg.Type), seg)
	ref.Frame = prims[0].StartFrame()
	o.moveEnd(a.Ledger, a.cEnd, endDist, o.cantLabel(&seg.Type, nil), end)

	o.state = StateWithCant
	return end, nil
}

// moveEnd repositions an end-of-layout referent within its ledger and
// refreshes its cached frame.
func (o *Orchestrator) moveEnd(l *station.Ledger, r *station.Referent, dist float64, label string, frame geom.Frame) {
	l.RenameAndReposition(r, dist, label)
	r.Frame = frame
}

func (o *Orchestrator) horizontalLabel(prev, next *segment.HorizontalType) string {
	if o.namer != nil {
		return o.namer.HorizontalLabel(prev, next)
	}
	return station.TableNamer{}.HorizontalLabel(prev, next)
}

func (o *Orchestrator) verticalLabel(prev, next *segment.VerticalType) string {
	if o.namer != nil {
		return o.namer.VerticalLabel(prev, next)
	}
	return station.TableNamer{}.VerticalLabel(prev, next)
}

func (o *Orchestrator) cantLabel(prev, next *segment.CantType) string {
	if o.namer != nil {
		return o.namer.CantLabel(prev, next)
	}
	return station.TableNamer{}.CantLabel(prev, next)
}

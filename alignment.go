package alignkit

import (
	"alignkit/station"
	"alignkit/synth"
)

// Alignment is the root entity of one alignment (or one vertical/cant
// profile of a shared horizontal, when held as a child): its business
// layouts, its stationing ledger, and the derived layered curves.
//
// A root alignment owns the horizontal layout and plane curve. While it
// carries at most one vertical profile the vertical and cant layouts live
// directly on it; once a second profile is added they move onto child
// alignments that reuse the shared plane curve as their base.
type Alignment struct {
	Name         string
	StartStation float64

	Horizontal *HorizontalLayout
	Vertical   *VerticalLayout
	Cant       *CantLayout

	Ledger *station.Ledger

	Plane     *synth.PlaneCurve
	Gradient  *synth.GradientCurve
	Reference *synth.SegmentedReferenceCurve

	Parent   *Alignment
	Children []*Alignment

	// End-of-layout referents, moved and renamed on every append.
	hEnd, vEnd, cEnd *station.Referent
}

// State is the layout-completeness state of an alignment under the
// orchestrator.
type State int

const (
	StateEmpty State = iota
	StateHorizontalOnly
	StateWithVertical
	StateWithCant
)

var stateNames = [...]string{"EMPTY", "HORIZONTAL_ONLY", "WITH_VERTICAL", "WITH_CANT"}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

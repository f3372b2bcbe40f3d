package station

import "alignkit/segment"

// Namer derives the label of a segment boundary from the types on either
// side of it. A nil type marks the boundary with the outside of the
// layout: (nil, seg) is the beginning of the alignment and (seg, nil) its
// end, anchored by the sentinel. Implementations are injected into the
// orchestrator; the zero value of TableNamer is the default.
type Namer interface {
	HorizontalLabel(prev, next *segment.HorizontalType) string
	VerticalLabel(prev, next *segment.VerticalType) string
	CantLabel(prev, next *segment.CantType) string
}

// TableNamer is the built-in label vocabulary, following the surveying
// convention of naming boundaries by the curve classes they join: tangent
// (T), circular curve (C), transition spiral (S) horizontally, and their
// vertical (V-prefixed) counterparts.
type TableNamer struct{}

func horizontalClass(t segment.HorizontalType) byte {
	switch t {
	case segment.Line:
		return 'T'
	case segment.CircularArc:
		return 'C'
	default:
		return 'S'
	}
}

// HorizontalLabel implements the classic stationing abbreviations: PC and
// PT around a simple curve, TS/SC/CS/ST around a spiraled one, PCC between
// compound curves, POB and POE at the ends.
func (TableNamer) HorizontalLabel(prev, next *segment.HorizontalType) string {
	switch {
	case prev == nil:
		return "POB"
	case next == nil:
		return "POE"
	}
	a, b := horizontalClass(*prev), horizontalClass(*next)
	switch {
	case a == 'T' && b == 'C':
		return "PC"
	case a == 'C' && b == 'T':
		return "PT"
	case a == 'T' && b == 'S':
		return "TS"
	case a == 'S' && b == 'C':
		return "SC"
	case a == 'C' && b == 'S':
		return "CS"
	case a == 'S' && b == 'T':
		return "ST"
	case a == 'C' && b == 'C':
		return "PCC"
	case a == 'S' && b == 'S':
		return "SS"
	default:
		return "POT"
	}
}

// VerticalLabel mirrors the horizontal vocabulary onto the profile: VPC
// and VPT around a vertical curve, VPI between grades, VPOB and VPOE at
// the ends.
func (TableNamer) VerticalLabel(prev, next *segment.VerticalType) string {
	grade := func(t segment.VerticalType) bool { return t == segment.ConstantGradient }
	switch {
	case prev == nil:
		return "VPOB"
	case next == nil:
		return "VPOE"
	case grade(*prev) && !grade(*next):
		return "VPC"
	case !grade(*prev) && grade(*next):
		return "VPT"
	case grade(*prev) && grade(*next):
		return "VPI"
	default:
		return "VPCC"
	}
}

// CantLabel names superelevation boundaries: a transition beginning or
// ending against constant cant, or the alignment ends.
func (TableNamer) CantLabel(prev, next *segment.CantType) string {
	constant := func(t segment.CantType) bool { return t == segment.ConstantCant }
	switch {
	case prev == nil:
		return "CPOB"
	case next == nil:
		return "CPOE"
	case constant(*prev) && !constant(*next):
		return "CTS"
	case !constant(*prev) && constant(*next):
		return "CST"
	default:
		return "CPT"
	}
}

package station

import (
	"sort"

	"alignkit/geom"
)

// Referent is a named key point at a station. Referents are owned by a
// Ledger and kept sorted by station; the sentinel's referent is renamed
// and repositioned on every append.
type Referent struct {
	// Name is the transition label, e.g. "PC" or "VPT".
	Name    string
	Station float64
	// DistAlong is the distance along the alignment from its start; the
	// station is this distance shifted by the alignment's start station.
	DistAlong float64
	// Frame caches the absolute placement resolved at DistAlong. It is
	// refreshed by whoever repositions the referent.
	Frame geom.Frame
	// Segment points back at the business segment whose boundary this
	// referent marks.
	Segment any
}

// Ledger is the ordered set of referents of one alignment. Insertion keeps
// the set sorted by station, stable with respect to ties.
type Ledger struct {
	units Units
	refs  []*Referent
}

// NewLedger returns an empty ledger formatting stations per units.
func NewLedger(units Units) *Ledger {
	return &Ledger{units: units}
}

// Units returns the ledger's formatting units.
func (l *Ledger) Units() Units {
	return l.units
}

// Referents returns the referents in station order.
func (l *Ledger) Referents() []*Referent {
	return l.refs
}

// AddReferent inserts a named referent. Equal stations keep insertion
// order, so a boundary referent added after the sentinel's referent was
// moved past it stays behind it.
func (l *Ledger) AddReferent(distAlong, station float64, label string, seg any) *Referent {
	r := &Referent{Name: label, Station: station, DistAlong: distAlong, Segment: seg}
	l.insert(r)
	return r
}

// RenameAndReposition moves a referent to a new distance along and gives
// it a new label. The station shifts by the same amount as the distance,
// and the ledger is re-sorted.
func (l *Ledger) RenameAndReposition(r *Referent, newDistAlong float64, newLabel string) {
	for i, have := range l.refs {
		if have == r {
			l.refs = append(l.refs[:i], l.refs[i+1:]...)
			break
		}
	}
	r.Station += newDistAlong - r.DistAlong
	r.DistAlong = newDistAlong
	r.Name = newLabel
	l.insert(r)
}

// Remove detaches a referent from the ledger, reporting whether it was
// present. The referent itself is untouched, so it can be re-inserted into
// another ledger without losing identity.
func (l *Ledger) Remove(r *Referent) bool {
	for i, have := range l.refs {
		if have == r {
			l.refs = append(l.refs[:i], l.refs[i+1:]...)
			return true
		}
	}
	return false
}

// Adopt inserts a referent built elsewhere, keeping the ledger sorted.
func (l *Ledger) Adopt(r *Referent) {
	l.insert(r)
}

// StationAsString formats a station value per the ledger's units.
func (l *Ledger) StationAsString(v float64) string {
	return l.units.FormatStation(v)
}

func (l *Ledger) insert(r *Referent) {
	i := sort.Search(len(l.refs), func(i int) bool {
		return l.refs[i].Station > r.Station
	})
	l.refs = append(l.refs, nil)
	copy(l.refs[i+1:], l.refs[i:])
	l.refs[i] = r
}

// Package station maintains the stationing ledger of an alignment: named
// referents keyed by station, the label vocabulary for segment-transition
// naming, and station string formatting.
package station

import (
	"strconv"
	"strings"
)

// Units selects the station formatting convention of the project.
type Units int

const (
	// Metric stations break three digits from the right with three
	// decimals: 350.0 formats as "0+350.000".
	Metric Units = iota
	// Imperial stations are hundred-foot stations, breaking two digits
	// from the right with two decimals: 350.0 formats as "3+50.00".
	Imperial
)

func (u Units) String() string {
	if u == Imperial {
		return "imperial"
	}
	return "metric"
}

// FormatStation renders a station value with the plus-separator convention
// of the units.
func (u Units) FormatStation(v float64) string {
	sep, dec := 3, 3
	if u == Imperial {
		sep, dec = 2, 2
	}
	var sb strings.Builder
	if v < 0 {
		sb.WriteByte('-')
		v = -v
	}
	s := strconv.FormatFloat(v, 'f', dec, 64)
	dot := strings.IndexByte(s, '.')
	whole, frac := s[:dot], s[dot:]
	if len(whole) <= sep {
		sb.WriteByte('0')
		sb.WriteByte('+')
		for i := len(whole); i < sep; i++ {
			sb.WriteByte('0')
		}
		sb.WriteString(whole)
	} else {
		sb.WriteString(whole[:len(whole)-sep])
		sb.WriteByte('+')
		sb.WriteString(whole[len(whole)-sep:])
	}
	sb.WriteString(frac)
	return sb.String()
}

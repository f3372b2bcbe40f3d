package station

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alignkit/segment"
)

func TestFormatStation(t *testing.T) {
	cases := []struct {
		units Units
		v     float64
		want  string
	}{
		{Imperial, 350, "3+50.00"},
		{Imperial, 0, "0+00.00"},
		{Imperial, 100, "1+00.00"},
		{Imperial, 12345.678, "123+45.68"},
		{Imperial, -350, "-3+50.00"},
		{Metric, 350, "0+350.000"},
		{Metric, 1350.5, "1+350.500"},
		{Metric, 0.25, "0+000.250"},
		{Metric, 1234567.89, "1234+567.890"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.units.FormatStation(tc.v), "%s %g", tc.units, tc.v)
	}
}

func TestLedgerSortedInsertion(t *testing.T) {
	l := NewLedger(Metric)
	l.AddReferent(200, 200, "PT", nil)
	l.AddReferent(0, 0, "POB", nil)
	l.AddReferent(100, 100, "PC", nil)

	var names []string
	for _, r := range l.Referents() {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"POB", "PC", "PT"}, names)
}

func TestLedgerStableTies(t *testing.T) {
	l := NewLedger(Metric)
	a := l.AddReferent(100, 100, "a", nil)
	b := l.AddReferent(100, 100, "b", nil)
	require.Len(t, l.Referents(), 2)
	assert.Same(t, a, l.Referents()[0])
	assert.Same(t, b, l.Referents()[1])
}

func TestRenameAndReposition(t *testing.T) {
	l := NewLedger(Imperial)
	l.AddReferent(0, 100, "POB", nil)
	end := l.AddReferent(0, 100, "POE", nil)

	// The sentinel's referent moves to the new end of the alignment and
	// its station shifts by the same distance.
	l.RenameAndReposition(end, 250, "POE")
	assert.Equal(t, 250.0, end.DistAlong)
	assert.Equal(t, 350.0, end.Station)
	assert.Same(t, end, l.Referents()[len(l.Referents())-1])
	assert.Equal(t, "3+50.00", l.StationAsString(end.Station))
}

func TestTableNamerHorizontal(t *testing.T) {
	var n TableNamer
	line := segment.Line
	arc := segment.CircularArc
	clothoid := segment.Clothoid
	bloss := segment.BlossCurve

	assert.Equal(t, "POB", n.HorizontalLabel(nil, &line))
	assert.Equal(t, "POE", n.HorizontalLabel(&arc, nil))
	assert.Equal(t, "PC", n.HorizontalLabel(&line, &arc))
	assert.Equal(t, "PT", n.HorizontalLabel(&arc, &line))
	assert.Equal(t, "TS", n.HorizontalLabel(&line, &clothoid))
	assert.Equal(t, "SC", n.HorizontalLabel(&clothoid, &arc))
	assert.Equal(t, "CS", n.HorizontalLabel(&arc, &bloss))
	assert.Equal(t, "ST", n.HorizontalLabel(&bloss, &line))
	assert.Equal(t, "PCC", n.HorizontalLabel(&arc, &arc))
	assert.Equal(t, "SS", n.HorizontalLabel(&clothoid, &bloss))
	assert.Equal(t, "POT", n.HorizontalLabel(&line, &line))
}

func TestTableNamerVerticalAndCant(t *testing.T) {
	var n TableNamer
	grade := segment.ConstantGradient
	parab := segment.ParabolicArc

	assert.Equal(t, "VPOB", n.VerticalLabel(nil, &grade))
	assert.Equal(t, "VPOE", n.VerticalLabel(&parab, nil))
	assert.Equal(t, "VPC", n.VerticalLabel(&grade, &parab))
	assert.Equal(t, "VPT", n.VerticalLabel(&parab, &grade))
	assert.Equal(t, "VPI", n.VerticalLabel(&grade, &grade))

	constCant := segment.ConstantCant
	linear := segment.LinearTransition
	assert.Equal(t, "CPOB", n.CantLabel(nil, &constCant))
	assert.Equal(t, "CPOE", n.CantLabel(&linear, nil))
	assert.Equal(t, "CTS", n.CantLabel(&constCant, &linear))
	assert.Equal(t, "CST", n.CantLabel(&linear, &constCant))
}

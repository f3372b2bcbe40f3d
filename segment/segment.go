// Package segment defines the business-logic description of alignment
// segments: one closed type enum per layout kind and the immutable
// parameter sets that the geometry mappers consume.
package segment

import (
	"github.com/google/uuid"

	"alignkit/geom"
)

// HorizontalType enumerates the horizontal segment families.
type HorizontalType int

const (
	Line HorizontalType = iota
	CircularArc
	Clothoid
	Cubic
	HelmertCurve
	BlossCurve
	CosineCurve
	SineCurve
	VienneseBend
)

var horizontalNames = [...]string{
	"LINE", "CIRCULARARC", "CLOTHOID", "CUBIC", "HELMERTCURVE",
	"BLOSSCURVE", "COSINECURVE", "SINECURVE", "VIENNESEBEND",
}

func (t HorizontalType) String() string {
	if t < 0 || int(t) >= len(horizontalNames) {
		return "UNKNOWN"
	}
	return horizontalNames[t]
}

// VerticalType enumerates the vertical segment families.
type VerticalType int

const (
	ConstantGradient VerticalType = iota
	ParabolicArc
	CircularArcVertical
)

var verticalNames = [...]string{"CONSTANTGRADIENT", "PARABOLICARC", "CIRCULARARC"}

func (t VerticalType) String() string {
	if t < 0 || int(t) >= len(verticalNames) {
		return "UNKNOWN"
	}
	return verticalNames[t]
}

// CantType enumerates the cant segment families.
type CantType int

const (
	ConstantCant CantType = iota
	LinearTransition
	HelmertCant
	BlossCant
	CosineCant
	SineCant
	VienneseBendCant
)

var cantNames = [...]string{
	"CONSTANTCANT", "LINEARTRANSITION", "HELMERTCURVE",
	"BLOSSCURVE", "COSINECURVE", "SINECURVE", "VIENNESEBEND",
}

func (t CantType) String() string {
	if t < 0 || int(t) >= len(cantNames) {
		return "UNKNOWN"
	}
	return cantNames[t]
}

// Horizontal is the parameter set of one horizontal segment. Radii are
// signed: positive curves left, negative right; a zero radius means
// straight (infinite radius). A zero Length marks the sentinel segment.
type Horizontal struct {
	ID             uuid.UUID
	Type           HorizontalType
	StartPoint     geom.Point
	StartDirection float64 // radians
	StartRadius    float64
	EndRadius      float64
	Length         float64

	// GravityHeight is the gravity centerline height of a Viennese bend.
	GravityHeight float64
	// CantSegmentID pairs a Viennese bend with the cant segment whose
	// cant-angle change shapes its lower-order terms.
	CantSegmentID uuid.UUID
}

// Vertical is the parameter set of one vertical segment. Distances and
// lengths are measured along the horizontal alignment.
type Vertical struct {
	ID             uuid.UUID
	Type           VerticalType
	StartDistAlong float64
	Length         float64
	StartHeight    float64
	StartGradient  float64
	EndGradient    float64
	// Radius is the signed radius of a circular vertical curve; unused by
	// the other families.
	Radius float64
}

// Cant is the parameter set of one cant segment. Cant values are the
// combined superelevation across the rail gauge.
type Cant struct {
	ID             uuid.UUID
	Type           CantType
	StartDistAlong float64
	Length         float64
	StartCant      float64
	EndCant        float64
}

// IsSentinel reports whether the segment is the trailing zero-length
// sentinel of its layout.
func (s *Horizontal) IsSentinel() bool { return s.Length == 0 }

func (s *Vertical) IsSentinel() bool { return s.Length == 0 }

func (s *Cant) IsSentinel() bool { return s.Length == 0 }

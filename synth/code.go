package synth

// TransitionCode classifies the continuity between a curve primitive and
// its successor. The tiers are strictly ordered: each code implies all
// weaker ones.
type TransitionCode int

const (
	// Discontinuous: positions do not meet within tolerance. Also the code
	// of the last primitive of a curve, which has no successor.
	Discontinuous TransitionCode = iota
	// Continuous: positions meet.
	Continuous
	// ContSameGradient: positions and tangents meet.
	ContSameGradient
	// ContSameGradientSameCurvature: positions, tangents, and curvatures meet.
	ContSameGradientSameCurvature
)

var codeNames = [...]string{
	"DISCONTINUOUS",
	"CONTINUOUS",
	"CONTSAMEGRADIENT",
	"CONTSAMEGRADIENTSAMECURVATURE",
}

func (c TransitionCode) String() string {
	if c < 0 || int(c) >= len(codeNames) {
		return "UNKNOWN"
	}
	return codeNames[c]
}

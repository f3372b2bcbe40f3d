package synth

import "errors"

// Sentinel errors for curve synthesis. All are local precondition
// violations reported immediately to the caller; none are retried.
var (
	// ErrUnsupportedSegmentType indicates an unknown predefined segment type.
	ErrUnsupportedSegmentType = errors.New("synth: unsupported predefined segment type")

	// ErrTypeMismatch indicates the wrong layout, segment, or curve kind was
	// passed to an operation.
	ErrTypeMismatch = errors.New("synth: layout, segment, or curve kind mismatch")

	// ErrCrossCurveComparison indicates transition classification was
	// requested across unrelated curves.
	ErrCrossCurveComparison = errors.New("synth: transition classification across unrelated curves")

	// ErrAlreadyOwned indicates an attempt to insert a curve primitive that
	// is already attached to a curve.
	ErrAlreadyOwned = errors.New("synth: curve primitive already attached to a curve")

	// ErrDegenerateGeometry indicates a zero-length real segment or an
	// otherwise unusable parameter set. Zero-valued polynomial terms are not
	// degenerate: they are omitted during mapping.
	ErrDegenerateGeometry = errors.New("synth: degenerate segment geometry")
)

package geom

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func TestVecAngleRoundTrip(t *testing.T) {
	for _, th := range []float64{0, 0.25, -1.5, math.Pi / 2, 3} {
		v := VecFromAngle(th)
		if d := math.Abs(v.Angle() - th); d > 1e-12 {
			t.Errorf("angle %g round-tripped to %g", th, v.Angle())
		}
		if d := math.Abs(v.Hypot() - 1); d > 1e-12 {
			t.Errorf("VecFromAngle(%g) is not a unit vector", th)
		}
	}
}

func TestVecRotate(t *testing.T) {
	v := Vec(1, 0).Rotate(math.Pi / 2)
	diff(t, Vec(0, 1), v, cmpopts.EquateApprox(0, 1e-12))

	// Perp matches a +90° rotation.
	w := Vec(3, -2)
	diff(t, w.Rotate(math.Pi/2), w.Perp(), cmpopts.EquateApprox(0, 1e-12))
}

func TestPlacementApply(t *testing.T) {
	// A placement at (10, 5) heading +Y maps local (2, 0) to (10, 7).
	p := PlacementAt(Pt(10, 5), math.Pi/2)
	f := p.Apply(Frame{Origin: Pt(2, 0), Tangent: Vec(1, 0), Curvature: 0.5})
	diff(t, Frame{Origin: Pt(10, 7), Tangent: Vec(0, 1), Curvature: 0.5}, f,
		cmpopts.EquateApprox(0, 1e-12))
}

func TestPlacementFromFrame(t *testing.T) {
	f := Frame{Origin: Pt(1, 2), Tangent: VecFromAngle(0.3)}
	p := PlacementFromFrame(f)
	// Applying the local identity frame reproduces f.
	diff(t, f, p.Apply(Frame{Tangent: Vec(1, 0)}), cmpopts.EquateApprox(0, 1e-12))
}

func TestFrame3Normal(t *testing.T) {
	f := Frame3{Tangent: Vec3{X: 1}, Axis: Vec3{Z: 1}}
	diff(t, Vec3{Y: 1}, f.Normal(), cmpopts.EquateApprox(0, 1e-12))
}

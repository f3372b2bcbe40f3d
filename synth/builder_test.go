package synth

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"

	"alignkit/geom"
	"alignkit/primitive"
	"alignkit/segment"
)

func linePrim(at geom.Placement, length float64) *CurvePrimitive {
	return &CurvePrimitive{Parent: primitive.Line{}, Placement: at, Extent: length}
}

func TestEnsureSentinelIdempotent(t *testing.T) {
	var b Builder
	c := NewPlaneCurve()

	created, err := b.EnsureSentinel(&c.CompositeCurve)
	if err != nil {
		t.Fatal(err)
	}
	if !created {
		t.Error("first call did not create the sentinel")
	}
	created, err = b.EnsureSentinel(&c.CompositeCurve)
	if err != nil {
		t.Fatal(err)
	}
	if created {
		t.Error("second call created a second sentinel")
	}
	if len(c.Primitives()) != 1 {
		t.Fatalf("got %d primitives, want 1", len(c.Primitives()))
	}
	diff(t, geom.IdentityPlacement, c.Sentinel().Placement)
}

func TestAppendMaintainsSentinel(t *testing.T) {
	var b Builder
	c := NewPlaneCurve()
	if _, err := b.EnsureSentinel(&c.CompositeCurve); err != nil {
		t.Fatal(err)
	}

	p1 := linePrim(geom.IdentityPlacement, 100)
	if err := b.Append(p1, &c.CompositeCurve); err != nil {
		t.Fatal(err)
	}
	if got := c.Primitives(); len(got) != 2 || !got[1].IsSentinel() {
		t.Fatalf("after first append: %d primitives, sentinel last = %v", len(got), got[len(got)-1].IsSentinel())
	}
	// The sentinel mirrors the new end of the curve.
	diff(t, geom.Pt(100, 0), c.Sentinel().Placement.Location, cmpopts.EquateApprox(0, 1e-12))
	if p1.Transition != ContSameGradientSameCurvature {
		t.Errorf("line to collinear sentinel = %v, want ContSameGradientSameCurvature", p1.Transition)
	}

	// A tangent arc: position and tangent meet, curvature does not.
	p2 := &CurvePrimitive{
		Parent:    primitive.Circle{Radius: 200},
		Placement: geom.PlacementAt(geom.Pt(100, 0), 0),
		Extent:    100,
	}
	if err := b.Append(p2, &c.CompositeCurve); err != nil {
		t.Fatal(err)
	}
	if p1.Transition != ContSameGradient {
		t.Errorf("line to tangent arc = %v, want ContSameGradient", p1.Transition)
	}
	end := p2.EndFrame()
	diff(t, end.Origin, c.Sentinel().Placement.Location, cmpopts.EquateApprox(0, 1e-12))
	diff(t, end.Tangent, c.Sentinel().Placement.RefDirection, cmpopts.EquateApprox(0, 1e-12))
	// Curvature does not survive into the straight sentinel.
	if p2.Transition != ContSameGradient {
		t.Errorf("arc to sentinel = %v, want ContSameGradient", p2.Transition)
	}
}

func TestAppendRejectsOwned(t *testing.T) {
	var b Builder
	c1 := NewPlaneCurve()
	c2 := NewPlaneCurve()
	p := linePrim(geom.IdentityPlacement, 50)
	if err := b.Append(p, &c1.CompositeCurve); err != nil {
		t.Fatal(err)
	}
	if err := b.Append(p, &c2.CompositeCurve); !errors.Is(err, ErrAlreadyOwned) {
		t.Errorf("got %v, want ErrAlreadyOwned", err)
	}
}

func TestClassifyTiers(t *testing.T) {
	var b Builder
	cl := Classifier{Eval: ClosedForm{}}
	c := NewPlaneCurve()

	p1 := linePrim(geom.IdentityPlacement, 100)
	if err := b.Append(p1, &c.CompositeCurve); err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name string
		next *CurvePrimitive
		want TransitionCode
	}{
		{"gap", linePrim(geom.PlacementAt(geom.Pt(100, 5), 0), 50), Discontinuous},
		{"kink", linePrim(geom.PlacementAt(geom.Pt(100, 0), math.Pi/4), 50), Continuous},
		{"tangent arc", &CurvePrimitive{
			Parent:    primitive.Circle{Radius: 300},
			Placement: geom.PlacementAt(geom.Pt(100, 0), 0),
			Extent:    50,
		}, ContSameGradient},
		{"collinear", linePrim(geom.PlacementAt(geom.Pt(100, 0), 0), 50), ContSameGradientSameCurvature},
	}
	for _, tc := range cases {
		tc.next.owner = p1.Owner()
		got, err := cl.Classify(p1, tc.next, 0)
		if err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if got != tc.want {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestClassifyCrossCurve(t *testing.T) {
	var b Builder
	cl := Classifier{Eval: ClosedForm{}}
	c1 := NewPlaneCurve()
	c2 := NewPlaneCurve()
	p1 := linePrim(geom.IdentityPlacement, 10)
	p2 := linePrim(geom.PlacementAt(geom.Pt(10, 0), 0), 10)
	if err := b.Append(p1, &c1.CompositeCurve); err != nil {
		t.Fatal(err)
	}
	if err := b.Append(p2, &c2.CompositeCurve); err != nil {
		t.Fatal(err)
	}
	if _, err := cl.Classify(p1, p2, 0); !errors.Is(err, ErrCrossCurveComparison) {
		t.Errorf("got %v, want ErrCrossCurveComparison", err)
	}
}

func TestGradientSentinelCarriesEndGradient(t *testing.T) {
	var b Builder
	plane := NewPlaneCurve()
	grad := NewGradientCurve(plane)

	seg := &segment.Vertical{
		Type:          segment.ParabolicArc,
		Length:        20,
		StartHeight:   10,
		StartGradient: -0.05,
		EndGradient:   0.05,
	}
	prims, err := MapVertical(seg)
	if err != nil {
		t.Fatal(err)
	}
	if err := b.Append(prims[0], &grad.CompositeCurve); err != nil {
		t.Fatal(err)
	}
	if _, err := b.EnsureSentinel(&grad.CompositeCurve); err != nil {
		t.Fatal(err)
	}
	sentLine, ok := grad.Sentinel().Parent.(primitive.GradeLine)
	if !ok {
		t.Fatalf("gradient sentinel parent is %T, want GradeLine", grad.Sentinel().Parent)
	}
	if math.Abs(sentLine.Gradient-0.05) > 1e-9 {
		t.Errorf("sentinel gradient = %g, want 0.05", sentLine.Gradient)
	}
	// The parabola continues into the end gradient without a kink.
	if got := prims[0].Transition; got != ContSameGradient {
		t.Errorf("parabola to sentinel = %v, want ContSameGradient", got)
	}
}

func TestCompositeCurveFrameAt(t *testing.T) {
	var b Builder
	c := NewPlaneCurve()
	if err := b.Append(linePrim(geom.IdentityPlacement, 100), &c.CompositeCurve); err != nil {
		t.Fatal(err)
	}
	arc := &CurvePrimitive{
		Parent:    primitive.Circle{Radius: 100},
		Placement: geom.PlacementAt(geom.Pt(100, 0), 0),
		Extent:    100 * math.Pi / 2,
	}
	if err := b.Append(arc, &c.CompositeCurve); err != nil {
		t.Fatal(err)
	}
	if _, err := b.EnsureSentinel(&c.CompositeCurve); err != nil {
		t.Fatal(err)
	}

	f, err := c.FrameAt(50)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, geom.Pt(50, 0), f.Origin, cmpopts.EquateApprox(0, 1e-12))

	// The exact end lands on the quarter-circle's end frame, not on the
	// sentinel.
	f, err = c.FrameAt(c.Length())
	if err != nil {
		t.Fatal(err)
	}
	diff(t, geom.Pt(200, 100), f.Origin, cmpopts.EquateApprox(0, 1e-9))
	diff(t, geom.Vec(0, 1), f.Tangent, cmpopts.EquateApprox(0, 1e-9))

	if _, err := c.FrameAt(-1); err == nil {
		t.Error("negative distance accepted")
	}
	if _, err := c.FrameAt(c.Length() + 1); err == nil {
		t.Error("distance past the end accepted")
	}
}

func TestSegmentedReferenceCurveCant(t *testing.T) {
	var b Builder
	plane := NewPlaneCurve()
	if err := b.Append(linePrim(geom.IdentityPlacement, 200), &plane.CompositeCurve); err != nil {
		t.Fatal(err)
	}
	grad := NewGradientCurve(plane)
	vseg := &segment.Vertical{Type: segment.ConstantGradient, Length: 200, StartHeight: 5, StartGradient: 0}
	vprims, err := MapVertical(vseg)
	if err != nil {
		t.Fatal(err)
	}
	if err := b.Append(vprims[0], &grad.CompositeCurve); err != nil {
		t.Fatal(err)
	}

	ref := NewSegmentedReferenceCurve(grad, 1.5)
	cseg := &segment.Cant{Type: segment.LinearTransition, Length: 200, StartCant: 0, EndCant: 0.15}
	cprims, err := MapCant(cseg, 1.5, geom.IdentityPlacement)
	if err != nil {
		t.Fatal(err)
	}
	if err := b.Append(cprims[0], &ref.CompositeCurve); err != nil {
		t.Fatal(err)
	}

	got, err := ref.CantAt(200)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(got-0.15) > 1e-9 {
		t.Errorf("cant at end = %g, want 0.15", got)
	}
	got, err = ref.CantAt(100)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(got-0.075) > 1e-9 {
		t.Errorf("cant at midpoint = %g, want 0.075", got)
	}

	f, err := ref.FrameAt3(200)
	if err != nil {
		t.Fatal(err)
	}
	// Origin lifted by the profile height plus half the cant.
	if want := 5 + 0.075; math.Abs(f.Origin.Z-want) > 1e-9 {
		t.Errorf("end height = %g, want %g", f.Origin.Z, want)
	}
	psi := math.Asin(0.15 / 1.5)
	diff(t, geom.Vec3{Y: -math.Sin(psi), Z: math.Cos(psi)}, f.Axis, cmpopts.EquateApprox(0, 1e-9))
}

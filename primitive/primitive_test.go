package primitive

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"

	"alignkit/geom"
)

func TestLineFrame(t *testing.T) {
	f := Line{}.FrameAt(250)
	diff(t, geom.Frame{Origin: geom.Pt(250, 0), Tangent: geom.Vec(1, 0)}, f)
}

func TestCircleSemicircle(t *testing.T) {
	const r = 400.0
	f := Circle{Radius: r}.FrameAt(math.Pi * r)
	diff(t, geom.Frame{
		Origin:    geom.Pt(0, 2*r),
		Tangent:   geom.Vec(-1, 0),
		Curvature: 1 / r,
	}, f, cmpopts.EquateApprox(0, 1e-9))

	// Negative radius mirrors across the x axis.
	g := Circle{Radius: -r}.FrameAt(math.Pi * r)
	diff(t, geom.Frame{
		Origin:    geom.Pt(0, -2*r),
		Tangent:   geom.Vec(-1, 0),
		Curvature: -1 / r,
	}, g, cmpopts.EquateApprox(0, 1e-9))
}

func TestClothoidSeries(t *testing.T) {
	// One-term polynomial spiral with A = 100, evaluated at s = 50, against
	// the truncated Fresnel series.
	const a = 100.0
	const s = 50.0
	sp := PolySpiral{}
	sp.Terms[1] = Coef(a)

	if k, want := sp.Kappa(s), s/(a*a); math.Abs(k-want) > 1e-15 {
		t.Errorf("got curvature %g, want %g", k, want)
	}
	if th, want := sp.Theta(s), s*s/(2*a*a); math.Abs(th-want) > 1e-15 {
		t.Errorf("got deflection %g, want %g", th, want)
	}

	f := sp.FrameAt(s)
	wantX := s - math.Pow(s, 5)/(40*math.Pow(a, 4)) + math.Pow(s, 9)/(3456*math.Pow(a, 8)) -
		math.Pow(s, 13)/(599040*math.Pow(a, 12))
	wantY := math.Pow(s, 3)/(6*a*a) - math.Pow(s, 7)/(336*math.Pow(a, 6)) +
		math.Pow(s, 11)/(42240*math.Pow(a, 10))
	diff(t, geom.Pt(wantX, wantY), f.Origin, cmpopts.EquateApprox(0, 1e-8))
	diff(t, geom.VecFromAngle(sp.Theta(s)), f.Tangent, cmpopts.EquateApprox(0, 1e-12))

	// A negative coefficient mirrors the spiral.
	sm := PolySpiral{}
	sm.Terms[1] = Coef(-a)
	g := sm.FrameAt(s)
	diff(t, geom.Pt(f.Origin.X, -f.Origin.Y), g.Origin, cmpopts.EquateApprox(0, 1e-12))
	if g.Curvature != -f.Curvature {
		t.Errorf("mirrored curvature: got %g, want %g", g.Curvature, -f.Curvature)
	}
}

func TestPolySpiralNegativeArcLength(t *testing.T) {
	// A clothoid run backwards from its origin: curvature is odd in s,
	// deflection even. The exit half of a symmetric transition pair is
	// evaluated this way.
	sp := PolySpiral{}
	sp.Terms[1] = Coef(100.0)
	const s = 50.0
	if k := sp.Kappa(-s); math.Abs(k+sp.Kappa(s)) > 1e-15 {
		t.Errorf("Kappa(-s) = %g, want %g", k, -sp.Kappa(s))
	}
	if th := sp.Theta(-s); math.Abs(th-sp.Theta(s)) > 1e-15 {
		t.Errorf("Theta(-s) = %g, want %g", th, sp.Theta(s))
	}
}

func TestPolySpiralUnsetTermsAreLine(t *testing.T) {
	var sp PolySpiral
	f := sp.FrameAt(123)
	diff(t, geom.Frame{Origin: geom.Pt(123, 0), Tangent: geom.Vec(1, 0)}, f,
		cmpopts.EquateApprox(0, 1e-12))
}

func TestCosineSpiralConstOnly(t *testing.T) {
	// With only the constant term set, the cosine spiral degenerates to a
	// circular arc of radius A0.
	const r = 300.0
	c := CosineSpiral{Const: Coef(r), Length: 80}
	f := c.FrameAt(60)
	diff(t, Circle{Radius: r}.FrameAt(60), f, cmpopts.EquateApprox(0, 1e-9))
}

func TestCosineSpiralTransition(t *testing.T) {
	// Transition from straight to radius 500 over 100: κ(s) must hit the
	// mean curvature at midpoint and the full curvature at the end.
	const l, r = 100.0, 500.0
	c := CosineSpiral{
		Const:  Coef(1 / (0.5 / r)),    // c0 = κ1/2
		Cosine: Coef(1 / (-0.5 / r)),   // c1 = −κ1/2
		Length: l,
	}
	if k := c.Kappa(0); math.Abs(k) > 1e-15 {
		t.Errorf("start curvature = %g, want 0", k)
	}
	if k := c.Kappa(l / 2); math.Abs(k-0.5/r) > 1e-15 {
		t.Errorf("midpoint curvature = %g, want %g", k, 0.5/r)
	}
	if k := c.Kappa(l); math.Abs(k-1/r) > 1e-15 {
		t.Errorf("end curvature = %g, want %g", k, 1/r)
	}
}

func TestSineSpiralTransition(t *testing.T) {
	const l, r = 120.0, 800.0
	dk := 1 / r
	c := SineSpiral{
		Linear: Coef(1 / dk),
		Sine:   Coef(1 / (-dk / (2 * math.Pi))),
		Length: l,
	}
	// Curvature starts and ends with zero slope and hits the endpoints
	// exactly.
	if k := c.Kappa(0); math.Abs(k) > 1e-15 {
		t.Errorf("start curvature = %g, want 0", k)
	}
	if k := c.Kappa(l); math.Abs(k-dk) > 1e-12 {
		t.Errorf("end curvature = %g, want %g", k, dk)
	}
	eps := 1e-4
	if d := (c.Kappa(eps) - c.Kappa(0)) / eps; math.Abs(d) > 1e-6 {
		t.Errorf("start curvature slope = %g, want ~0", d)
	}
	if th := c.Theta(0); th != 0 {
		t.Errorf("Theta(0) = %g, want 0", th)
	}
}

func TestCubicParabola(t *testing.T) {
	// C3 = 1/(6RL) is the standard cubic transition to radius R over
	// abscissa L.
	const r, l = 1000.0, 100.0
	c := Cubic{C3: 1 / (6 * r * l)}

	// Arc length at x = L is slightly more than L.
	s := integrate(func(x float64) float64 {
		d := 3 * c.C3 * x * x
		return math.Sqrt(1 + d*d)
	}, 0, l)
	if s <= l {
		t.Fatalf("arc length %g not greater than abscissa %g", s, l)
	}

	f := c.FrameAt(s)
	diff(t, geom.Pt(l, c.C3*l*l*l), f.Origin, cmpopts.EquateApprox(0, 1e-6))

	wantSlope := 3 * c.C3 * l * l
	if got := f.Tangent.Y / f.Tangent.X; math.Abs(got-wantSlope) > 1e-9 {
		t.Errorf("end slope = %g, want %g", got, wantSlope)
	}

	// Negative parameter mirrors through the origin.
	g := c.FrameAt(-s)
	diff(t, geom.Pt(-l, -c.C3*l*l*l), g.Origin, cmpopts.EquateApprox(0, 1e-6))
}

func TestGradeLine(t *testing.T) {
	f := GradeLine{Gradient: 0.02}.FrameAt(500)
	diff(t, geom.Pt(500, 10), f.Origin, cmpopts.EquateApprox(0, 1e-12))
	if got := f.Tangent.Y / f.Tangent.X; math.Abs(got-0.02) > 1e-15 {
		t.Errorf("gradient = %g, want 0.02", got)
	}
}

func TestGradeParabola(t *testing.T) {
	g := GradeParabola{StartGradient: -0.01, EndGradient: 0.03, Length: 200}
	f := g.FrameAt(200)
	// End height is the mean gradient times the length.
	diff(t, geom.Pt(200, 2), f.Origin, cmpopts.EquateApprox(0, 1e-12))
	if got := f.Tangent.Y / f.Tangent.X; math.Abs(got-0.03) > 1e-12 {
		t.Errorf("end gradient = %g, want 0.03", got)
	}
	// Sag curve: positive curvature.
	if f.Curvature <= 0 {
		t.Errorf("sag curvature = %g, want > 0", f.Curvature)
	}
}

func TestGradeArc(t *testing.T) {
	g := GradeArc{Radius: 2000, StartGradient: -0.02}
	f0 := g.FrameAt(0)
	diff(t, geom.Pt(0, 0), f0.Origin, cmpopts.EquateApprox(0, 1e-12))
	if got := f0.Tangent.Y / f0.Tangent.X; math.Abs(got+0.02) > 1e-12 {
		t.Errorf("start gradient = %g, want -0.02", got)
	}
	// Over a short run the circular curve matches the equivalent parabola.
	f := g.FrameAt(40)
	grad := f.Tangent.Y / f.Tangent.X
	if want := -0.02 + 40.0/2000.0; math.Abs(grad-want) > 1e-4 {
		t.Errorf("gradient after 40 = %g, want ~%g", grad, want)
	}
}

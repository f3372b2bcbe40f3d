package synth

import (
	"fmt"
	"math"

	"github.com/google/uuid"

	"alignkit/geom"
	"alignkit/primitive"
	"alignkit/segment"
)

// CantRef resolves a Viennese bend's paired cant segment.
type CantRef struct {
	Seg *segment.Cant
	// RailHeadDistance converts the cant values to cant angles.
	RailHeadDistance float64
}

// CantLookup resolves the cant segment paired with a horizontal Viennese
// bend by its cross-reference ID.
type CantLookup func(id uuid.UUID) (CantRef, bool)

// spiralTerm derives the normalized spiral coefficient for the k-th order
// term of a curvature polynomial κ(u) = Σ κ_k·u^k (u = s/length):
//
//	a_k = κ_k·length², A_k = length^((k+2)/(k+1)) · |a_k|^(−1/(k+1)) · sign(a_k)
//
// A term whose physical coefficient is exactly zero is omitted, not
// zero-filled; this is a normalization rule, not an approximation.
func spiralTerm(k int, kappaK, length float64) primitive.Term {
	a := kappaK * length * length
	if a == 0 {
		return primitive.Term{}
	}
	abs := math.Pow(length, float64(k+2)/float64(k+1)) * math.Pow(math.Abs(a), -1/float64(k+1))
	return primitive.Coef(math.Copysign(abs, a))
}

// reciprocalTerm is the normalization used by the trigonometric spirals:
// the stored coefficient is the reciprocal of the physical one, with zero
// omitted.
func reciprocalTerm(c float64) primitive.Term {
	if c == 0 {
		return primitive.Term{}
	}
	return primitive.Coef(1 / c)
}

// curvatureOf converts a signed radius to a curvature. A zero radius means
// straight.
func curvatureOf(radius float64) float64 {
	if radius == 0 {
		return 0
	}
	return 1 / radius
}

// fitSpiral builds the polynomial spiral for a curvature polynomial given
// as (order, coefficient) pairs over the normalized parameter u = s/length.
func fitSpiral(length float64, kappas map[int]float64) primitive.PolySpiral {
	var sp primitive.PolySpiral
	for k, kap := range kappas {
		sp.Terms[k] = spiralTerm(k, kap, length)
	}
	return sp
}

// helmertHalves maps a Helmert (Schramm) transition onto its two
// half-spirals. The curvature law is κ0 + 2Δκ·u² on the first half and
// κ0 + Δκ·(−1 + 4u − 2u²) on the second, re-expressed per half-length.
// The second half's placement is chained onto the first half's end frame.
func helmertHalves(placement geom.Placement, k0, k1, length float64) []*CurvePrimitive {
	dk := k1 - k0
	half := length / 2
	km := k0 + dk/2

	first := &CurvePrimitive{
		Parent:    fitSpiral(half, map[int]float64{0: k0, 2: dk / 2}),
		Placement: placement,
		Extent:    half,
	}
	second := &CurvePrimitive{
		Parent:    fitSpiral(half, map[int]float64{0: km, 1: dk, 2: -dk / 2}),
		Placement: geom.PlacementFromFrame(first.EndFrame()),
		Extent:    half,
	}
	return []*CurvePrimitive{first, second}
}

// MapHorizontal maps one horizontal segment onto its curve primitives: one
// for most families, two for the Helmert curve. It is pure: for all
// families except the Viennese bend it depends only on the parameter set;
// the Viennese bend additionally reads its paired cant segment through
// cants.
func MapHorizontal(seg *segment.Horizontal, cants CantLookup) ([]*CurvePrimitive, error) {
	if seg.Length <= 0 {
		return nil, fmt.Errorf("horizontal segment %v of length %g: %w", seg.Type, seg.Length, ErrDegenerateGeometry)
	}
	placement := geom.PlacementAt(seg.StartPoint, seg.StartDirection)
	k0 := curvatureOf(seg.StartRadius)
	k1 := curvatureOf(seg.EndRadius)
	dk := k1 - k0
	l := seg.Length

	var prims []*CurvePrimitive
	switch seg.Type {
	case segment.Line:
		prims = []*CurvePrimitive{{
			Parent:    primitive.Line{},
			Placement: placement,
			Extent:    l,
		}}

	case segment.CircularArc:
		r := seg.StartRadius
		if r == 0 {
			return nil, fmt.Errorf("circular arc with infinite radius: %w", ErrDegenerateGeometry)
		}
		prims = []*CurvePrimitive{{
			Parent:    primitive.Circle{Radius: math.Abs(r)},
			Placement: placement,
			Extent:    math.Copysign(l, r),
		}}

	case segment.Clothoid:
		if dk == 0 {
			return nil, fmt.Errorf("clothoid between equal curvatures %g: %w", k0, ErrDegenerateGeometry)
		}
		// A pure spiral has no constant term; a nonzero start curvature is
		// reached by starting partway along the parent. The offset's sign
		// follows which end radius is larger.
		sp := fitSpiral(l, map[int]float64{1: dk})
		prims = []*CurvePrimitive{{
			Parent:    sp,
			Placement: placement,
			Offset:    k0 * l / dk,
			Extent:    l,
		}}

	case segment.Cubic:
		if dk == 0 {
			return nil, fmt.Errorf("cubic between equal curvatures %g: %w", k0, ErrDegenerateGeometry)
		}
		prims = []*CurvePrimitive{{
			Parent:    primitive.Cubic{C3: dk / (6 * l)},
			Placement: placement,
			Offset:    k0 * l / dk,
			Extent:    l,
		}}

	case segment.HelmertCurve:
		prims = helmertHalves(placement, k0, k1, l)

	case segment.BlossCurve:
		prims = []*CurvePrimitive{{
			Parent:    fitSpiral(l, map[int]float64{0: k0, 2: 3 * dk, 3: -2 * dk}),
			Placement: placement,
			Extent:    l,
		}}

	case segment.CosineCurve:
		prims = []*CurvePrimitive{{
			Parent: primitive.CosineSpiral{
				Const:  reciprocalTerm((k0 + k1) / 2),
				Cosine: reciprocalTerm(-dk / 2),
				Length: l,
			},
			Placement: placement,
			Extent:    l,
		}}

	case segment.SineCurve:
		prims = []*CurvePrimitive{{
			Parent: primitive.SineSpiral{
				Const:  reciprocalTerm(k0),
				Linear: reciprocalTerm(dk),
				Sine:   reciprocalTerm(-dk / (2 * math.Pi)),
				Length: l,
			},
			Placement: placement,
			Extent:    l,
		}}

	case segment.VienneseBend:
		if cants == nil {
			return nil, fmt.Errorf("viennese bend %v requires a cant lookup: %w", seg.ID, ErrTypeMismatch)
		}
		ref, ok := cants(seg.CantSegmentID)
		if !ok {
			return nil, fmt.Errorf("viennese bend %v: no cant segment %v: %w", seg.ID, seg.CantSegmentID, ErrTypeMismatch)
		}
		prims = []*CurvePrimitive{{
			Parent:    vienneseSpiral(k0, dk, l, seg.GravityHeight, ref),
			Placement: placement,
			Extent:    l,
		}}

	default:
		return nil, fmt.Errorf("horizontal segment type %d: %w", seg.Type, ErrUnsupportedSegmentType)
	}

	for _, p := range prims {
		p.Segment = seg
	}
	return prims, nil
}

// vienneseSpiral derives the 7-term polynomial spiral of a Viennese bend.
// The quartic through septic terms carry the curvature change along the
// septic smoothstep Δκ·(35u⁴ − 84u⁵ + 70u⁶ − 20u⁷), whose first three
// derivatives vanish at both ends. The cant angle ramps by Δψ along the
// same smoothstep, and its second derivative in u,
// Δψ·(420u² − 1680u³ + 2100u⁴ − 840u⁵), scaled by the gravity height,
// bends the running line. That sway vanishes at both ends together with
// its integral, so start and end curvature stay κ0 and κ1. With no cant
// change the quadratic and cubic terms are zero and omitted.
func vienneseSpiral(k0, dk, l, gravityHeight float64, ref CantRef) primitive.PolySpiral {
	psi0 := cantAngle(ref.Seg.StartCant, ref.RailHeadDistance)
	psi1 := cantAngle(ref.Seg.EndCant, ref.RailHeadDistance)
	sway := gravityHeight * (psi1 - psi0) / (l * l)
	return fitSpiral(l, map[int]float64{
		0: k0,
		2: 420 * sway,
		3: -1680 * sway,
		4: 35*dk + 2100*sway,
		5: -84*dk - 840*sway,
		6: 70 * dk,
		7: -20 * dk,
	})
}

func cantAngle(cant, railHead float64) float64 {
	return math.Asin(math.Max(-1, math.Min(1, cant/railHead)))
}

// MapVertical maps one vertical segment onto its grade primitive. Vertical
// placements never rotate the distance axis; the reference direction is
// the start gradient direction so that local grade coordinates pass
// through unrotated.
func MapVertical(seg *segment.Vertical) ([]*CurvePrimitive, error) {
	if seg.Length <= 0 {
		return nil, fmt.Errorf("vertical segment %v of length %g: %w", seg.Type, seg.Length, ErrDegenerateGeometry)
	}
	var parent primitive.Primitive
	switch seg.Type {
	case segment.ConstantGradient:
		parent = primitive.GradeLine{Gradient: seg.StartGradient}
	case segment.ParabolicArc:
		parent = primitive.GradeParabola{
			StartGradient: seg.StartGradient,
			EndGradient:   seg.EndGradient,
			Length:        seg.Length,
		}
	case segment.CircularArcVertical:
		r := seg.Radius
		if r == 0 {
			// Fit the radius to the gradient change when it isn't given.
			dth := math.Atan(seg.EndGradient) - math.Atan(seg.StartGradient)
			if dth == 0 {
				return nil, fmt.Errorf("circular vertical curve between equal gradients: %w", ErrDegenerateGeometry)
			}
			r = seg.Length / dth
		}
		parent = primitive.GradeArc{Radius: r, StartGradient: seg.StartGradient}
	default:
		return nil, fmt.Errorf("vertical segment type %d: %w", seg.Type, ErrUnsupportedSegmentType)
	}

	n := math.Hypot(1, seg.StartGradient)
	p := &CurvePrimitive{
		Parent: parent,
		Placement: geom.Placement{
			Location:     geom.Pt(seg.StartDistAlong, seg.StartHeight),
			RefDirection: geom.Vec(1/n, seg.StartGradient/n),
		},
		Extent:  seg.Length,
		Segment: seg,
	}
	return []*CurvePrimitive{p}, nil
}

// MapCant maps one cant segment onto its curve primitives, mirroring the
// horizontal family treatment onto the rail-gauge geometry: the parent
// curve's curvature function carries the combined cant scaled by the rail
// head distance, so the same boundary-fit pattern applies at each order.
// Cant primitives chain in their trace space; at is the end frame of the
// preceding cant primitive (the curve origin for the first segment).
// The 3D placement's axis is rolled about the tangent by the start cant
// angle, with the origin lifted by half the combined cant.
func MapCant(seg *segment.Cant, railHead float64, at geom.Placement) ([]*CurvePrimitive, error) {
	if seg.Length <= 0 {
		return nil, fmt.Errorf("cant segment %v of length %g: %w", seg.Type, seg.Length, ErrDegenerateGeometry)
	}
	if railHead <= 0 {
		return nil, fmt.Errorf("rail head distance %g: %w", railHead, ErrDegenerateGeometry)
	}
	k0 := seg.StartCant / railHead
	k1 := seg.EndCant / railHead
	dk := k1 - k0
	l := seg.Length
	placement := at

	var prims []*CurvePrimitive
	switch seg.Type {
	case segment.ConstantCant:
		var parent primitive.Primitive = primitive.Line{}
		if k0 != 0 {
			parent = primitive.Circle{Radius: 1 / k0}
		}
		prims = []*CurvePrimitive{{Parent: parent, Placement: placement, Extent: l}}

	case segment.LinearTransition:
		prims = []*CurvePrimitive{{
			Parent:    fitSpiral(l, map[int]float64{0: k0, 1: dk}),
			Placement: placement,
			Extent:    l,
		}}

	case segment.HelmertCant:
		prims = helmertHalves(placement, k0, k1, l)

	case segment.BlossCant:
		prims = []*CurvePrimitive{{
			Parent:    fitSpiral(l, map[int]float64{0: k0, 2: 3 * dk, 3: -2 * dk}),
			Placement: placement,
			Extent:    l,
		}}

	case segment.CosineCant:
		prims = []*CurvePrimitive{{
			Parent: primitive.CosineSpiral{
				Const:  reciprocalTerm((k0 + k1) / 2),
				Cosine: reciprocalTerm(-dk / 2),
				Length: l,
			},
			Placement: placement,
			Extent:    l,
		}}

	case segment.SineCant:
		prims = []*CurvePrimitive{{
			Parent: primitive.SineSpiral{
				Const:  reciprocalTerm(k0),
				Linear: reciprocalTerm(dk),
				Sine:   reciprocalTerm(-dk / (2 * math.Pi)),
				Length: l,
			},
			Placement: placement,
			Extent:    l,
		}}

	case segment.VienneseBendCant:
		prims = []*CurvePrimitive{{
			Parent: fitSpiral(l, map[int]float64{
				0: k0, 4: 35 * dk, 5: -84 * dk, 6: 70 * dk, 7: -20 * dk,
			}),
			Placement: placement,
			Extent:    l,
		}}

	default:
		return nil, fmt.Errorf("cant segment type %d: %w", seg.Type, ErrUnsupportedSegmentType)
	}

	psi := cantAngle(seg.StartCant, railHead)
	sp, cp := math.Sincos(psi)
	for _, p := range prims {
		p.Segment = seg
		p.Placement3 = &geom.Placement3{
			Location:     geom.Pt3(seg.StartDistAlong, 0, seg.StartCant/2),
			Axis:         geom.Vec3{Y: -sp, Z: cp},
			RefDirection: geom.Vec3{X: 1},
		}
	}
	return prims, nil
}

package primitive

import (
	"math"

	"alignkit/geom"
)

// Term is an optional spiral coefficient. A term whose physical coefficient
// is exactly zero is left unset rather than zero-filled; unset terms do not
// contribute to the curvature function.
type Term struct {
	Set bool
	A   float64
}

// Coef returns a set term with coefficient a.
func Coef(a float64) Term {
	return Term{Set: true, A: a}
}

// PolySpiral is an Nth-order polynomial spiral: a curve whose curvature is
// a polynomial in arc length. Terms[k] holds the normalized coefficient A_k
// of the k-th order term; the curvature function is
//
//	κ(s) = Σ sign(A_k) · s^k / |A_k|^(k+1)
//
// so that A_0 is a radius, A_1 the classic clothoid parameter, and so on.
// The clothoid, the Bloss curve, the Helmert half-spirals, and the Viennese
// bend are all instances of this type.
type PolySpiral struct {
	Terms [8]Term
}

// Kappa returns the curvature at arc length s. s may be negative: spirals
// entered partway along run their parent curve from before the origin.
func (p PolySpiral) Kappa(s float64) float64 {
	var k float64
	pow := 1.0
	for ord, term := range p.Terms {
		if term.Set {
			k += pow / math.Pow(math.Abs(term.A), float64(ord+1)) * math.Copysign(1, term.A)
		}
		pow *= s
	}
	return k
}

// Theta returns the deflection angle at arc length s, the integral of the
// curvature from 0 to s.
func (p PolySpiral) Theta(s float64) float64 {
	var th float64
	pow := s
	for ord, term := range p.Terms {
		if term.Set {
			th += pow / (float64(ord+1) * math.Pow(math.Abs(term.A), float64(ord+1))) * math.Copysign(1, term.A)
		}
		pow *= s
	}
	return th
}

func (p PolySpiral) FrameAt(s float64) geom.Frame {
	return geom.Frame{
		Origin:    spiralPosition(p.Theta, s),
		Tangent:   geom.VecFromAngle(p.Theta(s)),
		Curvature: p.Kappa(s),
	}
}

// CosineSpiral is the cosine transition spiral over a segment of length L:
//
//	κ(s) = 1/A0 + (1/A1)·cos(πs/L)
//
// with unset terms omitted.
type CosineSpiral struct {
	Const  Term
	Cosine Term
	Length float64
}

func (c CosineSpiral) Kappa(s float64) float64 {
	var k float64
	if c.Const.Set {
		k += 1 / c.Const.A
	}
	if c.Cosine.Set {
		k += math.Cos(math.Pi*s/c.Length) / c.Cosine.A
	}
	return k
}

func (c CosineSpiral) Theta(s float64) float64 {
	var th float64
	if c.Const.Set {
		th += s / c.Const.A
	}
	if c.Cosine.Set {
		th += c.Length / math.Pi * math.Sin(math.Pi*s/c.Length) / c.Cosine.A
	}
	return th
}

func (c CosineSpiral) FrameAt(s float64) geom.Frame {
	return geom.Frame{
		Origin:    spiralPosition(c.Theta, s),
		Tangent:   geom.VecFromAngle(c.Theta(s)),
		Curvature: c.Kappa(s),
	}
}

// SineSpiral is the sine transition spiral over a segment of length L:
//
//	κ(s) = 1/A0 + (1/A1)·(s/L) + (1/A2)·sin(2πs/L)
//
// with unset terms omitted.
type SineSpiral struct {
	Const  Term
	Linear Term
	Sine   Term
	Length float64
}

func (c SineSpiral) Kappa(s float64) float64 {
	var k float64
	if c.Const.Set {
		k += 1 / c.Const.A
	}
	if c.Linear.Set {
		k += s / c.Length / c.Linear.A
	}
	if c.Sine.Set {
		k += math.Sin(2*math.Pi*s/c.Length) / c.Sine.A
	}
	return k
}

func (c SineSpiral) Theta(s float64) float64 {
	var th float64
	if c.Const.Set {
		th += s / c.Const.A
	}
	if c.Linear.Set {
		th += s * s / (2 * c.Length * c.Linear.A)
	}
	if c.Sine.Set {
		th -= c.Length / (2 * math.Pi) * (math.Cos(2*math.Pi*s/c.Length) - 1) / c.Sine.A
	}
	return th
}

func (c SineSpiral) FrameAt(s float64) geom.Frame {
	return geom.Frame{
		Origin:    spiralPosition(c.Theta, s),
		Tangent:   geom.VecFromAngle(c.Theta(s)),
		Curvature: c.Kappa(s),
	}
}

package primitive

import (
	"math"

	"alignkit/geom"
)

// Table of Legendre-Gauss quadrature coefficients, adapted from:
// <https://pomax.github.io/bezierinfo/legendre-gauss.html>
var gaussLegendreCoeffs16 = [...][2]float64{
	{0.1894506104550685, -0.0950125098376374},
	{0.1894506104550685, 0.0950125098376374},
	{0.1826034150449236, -0.2816035507792589},
	{0.1826034150449236, 0.2816035507792589},
	{0.1691565193950025, -0.4580167776572274},
	{0.1691565193950025, 0.4580167776572274},
	{0.1495959888165767, -0.6178762444026438},
	{0.1495959888165767, 0.6178762444026438},
	{0.1246289712555339, -0.7554044083550030},
	{0.1246289712555339, 0.7554044083550030},
	{0.0951585116824928, -0.8656312023878318},
	{0.0951585116824928, 0.8656312023878318},
	{0.0622535239386479, -0.9445750230732326},
	{0.0622535239386479, 0.9445750230732326},
	{0.0271524594117541, -0.9894009349916499},
	{0.0271524594117541, 0.9894009349916499},
}

// integrate evaluates ∫ f over [a, b] with 16-point Gauss–Legendre
// quadrature on a single panel.
func integrate(f func(float64) float64, a, b float64) float64 {
	mid := 0.5 * (a + b)
	half := 0.5 * (b - a)
	var sum float64
	for _, wx := range gaussLegendreCoeffs16 {
		sum += wx[0] * f(mid+half*wx[1])
	}
	return sum * half
}

// spiralPosition integrates (cos θ, sin θ) from 0 to s for a closed-form
// deflection angle θ. The interval is split into panels so that no panel
// sweeps more than a fraction of a radian, which keeps the 16-point rule
// well past double precision for any segment a mapper produces.
func spiralPosition(theta func(float64) float64, s float64) geom.Point {
	if s == 0 {
		return geom.Point{}
	}
	sweep := math.Abs(theta(s) - theta(0))
	n := int(math.Ceil(sweep/0.25)) + 1
	var x, y float64
	step := s / float64(n)
	for i := 0; i < n; i++ {
		a := float64(i) * step
		b := a + step
		x += integrate(func(t float64) float64 { return math.Cos(theta(t)) }, a, b)
		y += integrate(func(t float64) float64 { return math.Sin(theta(t)) }, a, b)
	}
	return geom.Pt(x, y)
}

// solveITP solves f for a zero crossing over the bracket [a, b] using the
// ITP method, with k2 hardwired to 2. It assumes ya ≤ 0 and yb ≥ 0. See
// "An Enhancement of the Bisection Method Average Performance Preserving
// Minmax Optimality" (https://dl.acm.org/doi/10.1145/3423597).
func solveITP(f func(float64) float64, a, b, epsilon float64, n0 int, k1, ya, yb float64) float64 {
	n1_2 := int(max(math.Ceil(math.Log2((b-a)/epsilon))-1.0, 0.0))
	nmax := n0 + n1_2
	scaledEpsilon := epsilon * float64(uint64(1)<<nmax)
	for b-a > 2.0*epsilon {
		x1_2 := 0.5 * (a + b)
		r := scaledEpsilon - 0.5*(b-a)
		xf := (yb*a - ya*b) / (yb - ya)
		sigma := x1_2 - xf
		delta := k1 * ((b - a) * (b - a))
		var xt float64
		if delta <= math.Abs(x1_2-xf) {
			xt = xf + math.Copysign(delta, sigma)
		} else {
			xt = x1_2
		}
		var xitp float64
		if math.Abs(xt-x1_2) <= r {
			xitp = xt
		} else {
			xitp = x1_2 - math.Copysign(r, sigma)
		}
		yitp := f(xitp)
		if yitp > 0.0 {
			b = xitp
			yb = yitp
		} else if yitp < 0.0 {
			a = xitp
			ya = yitp
		} else {
			return xitp
		}
		scaledEpsilon *= 0.5
	}
	return 0.5 * (a + b)
}

// Package primitive provides the parametric curve primitives that alignment
// segments map onto: the line, the circular arc, polynomial spirals up to
// septic order, the cosine and sine spirals, and the cubic parabola, plus
// the grade primitives used by vertical profiles.
//
// Horizontal primitives are parameterized by arc length and evaluated in
// local coordinates: each primitive passes through the local origin at
// parameter 0 heading along +X, and a placement positions it in the
// alignment plane. Grade primitives are parameterized by horizontal
// distance instead, as vertical profiles are stationed against the
// horizontal layout.
//
// Spirals store a closed-form deflection angle θ(s); positions are
// recovered by Gauss–Legendre quadrature of (cos θ, sin θ).
package primitive

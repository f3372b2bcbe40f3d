package geom

import (
	"fmt"
	"math"
)

// Point is a point in the alignment plane. For horizontal geometry the axes
// are easting/northing; for vertical geometry they are distance-along and
// height.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

// Translate returns the point moved by v.
func (pt Point) Translate(v Vec2) Point {
	return Point{X: pt.X + v.X, Y: pt.Y + v.Y}
}

// Sub computes pt−o as a vector.
func (pt Point) Sub(o Point) Vec2 {
	return Vec2{X: pt.X - o.X, Y: pt.Y - o.Y}
}

// Lerp linearly interpolates between two points.
func (pt Point) Lerp(o Point, t float64) Point {
	return pt.Translate(o.Sub(pt).Mul(t))
}

// Midpoint returns the midpoint of two points.
func (pt Point) Midpoint(o Point) Point {
	return Point{X: 0.5 * (pt.X + o.X), Y: 0.5 * (pt.Y + o.Y)}
}

// Distance returns the euclidean distance between two points.
func (pt Point) Distance(o Point) float64 {
	return math.Hypot(pt.X-o.X, pt.Y-o.Y)
}

// IsNaN reports whether at least one of x and y is NaN.
func (pt Point) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y)
}

// Point3 is a point in three dimensions, used for cant (superelevation)
// placements where the reference curve leaves the horizontal plane.
type Point3 struct {
	X float64
	Y float64
	Z float64
}

// Pt3 returns the point (x, y, z).
func Pt3(x, y, z float64) Point3 {
	return Point3{X: x, Y: y, Z: z}
}

func (pt Point3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", pt.X, pt.Y, pt.Z)
}

// Translate returns the point moved by v.
func (pt Point3) Translate(v Vec3) Point3 {
	return Point3{X: pt.X + v.X, Y: pt.Y + v.Y, Z: pt.Z + v.Z}
}

// Sub computes pt−o as a vector.
func (pt Point3) Sub(o Point3) Vec3 {
	return Vec3{X: pt.X - o.X, Y: pt.Y - o.Y, Z: pt.Z - o.Z}
}

// Lift places a plane point at height z.
func (pt Point) Lift(z float64) Point3 {
	return Point3{X: pt.X, Y: pt.Y, Z: z}
}

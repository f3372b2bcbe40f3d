package geom

// Frame is a local frame on a plane curve: a position, the unit tangent at
// that position, and the signed curvature (positive turning left).
type Frame struct {
	Origin    Point
	Tangent   Vec2
	Curvature float64
}

// Normal returns the leftward unit normal of the frame.
func (f Frame) Normal() Vec2 {
	return f.Tangent.Perp()
}

// Frame3 is a local frame on a spatial curve. Axis is the local "up"
// direction; for canted track it is tilted about the tangent.
type Frame3 struct {
	Origin    Point3
	Tangent   Vec3
	Axis      Vec3
	Curvature float64
}

// Normal returns the third frame direction, Axis × Tangent.
func (f Frame3) Normal() Vec3 {
	return f.Axis.Cross(f.Tangent)
}

// Placement positions local curve coordinates in the alignment plane: a
// location and a unit reference direction that the local +X axis maps onto.
type Placement struct {
	Location     Point
	RefDirection Vec2
}

// IdentityPlacement is the placement at the origin heading +X.
var IdentityPlacement = Placement{RefDirection: Vec2{X: 1}}

// PlacementAt returns the placement with the given location and heading
// angle in radians.
func PlacementAt(loc Point, direction float64) Placement {
	return Placement{Location: loc, RefDirection: VecFromAngle(direction)}
}

// PlacementFromFrame returns the placement whose origin and reference
// direction coincide with the frame's position and tangent.
func PlacementFromFrame(f Frame) Placement {
	return Placement{Location: f.Origin, RefDirection: f.Tangent}
}

// Apply expresses a local frame in the placement's parent coordinates.
// Curvature is rotation-invariant and passes through unchanged.
func (p Placement) Apply(local Frame) Frame {
	th := p.RefDirection.Angle()
	return Frame{
		Origin:    p.Location.Translate(local.Origin.Sub(Point{}).Rotate(th)),
		Tangent:   local.Tangent.Rotate(th),
		Curvature: local.Curvature,
	}
}

// Placement3 positions local curve coordinates in space. Axis is the local
// Z (up) direction and RefDirection the local X direction.
type Placement3 struct {
	Location     Point3
	Axis         Vec3
	RefDirection Vec3
}

// Package geom provides the small set of 2D and 3D vector types the
// alignment engine is built on: points, vectors, local curve frames
// (position, tangent, curvature), and placements that position local curve
// coordinates in the alignment plane or in space.
//
// The plane convention is y-up mathematical: a positive rotation turns the
// positive x direction into positive y, and positive curvature turns left.
package geom

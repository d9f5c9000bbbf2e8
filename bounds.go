package aabb

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// FromMinMax creates a box from two opposite corners.
// The corners may be given in any order.
func FromMinMax(lo, hi mgl64.Vec3) *AABB {
	return New(lo, hi.Sub(lo))
}

// FromPoints returns the tightest box around the given points, or nil if there are none.
func FromPoints(points ...mgl64.Vec3) *AABB {
	if len(points) == 0 {
		return nil
	}

	lo, hi := points[0], points[0]
	for _, p := range points[1:] {
		lo = vecMin(lo, p)
		hi = vecMax(hi, p)
	}

	return FromMinMax(lo, hi)
}

// FromSphere bounds a sphere. The result does not depend on any rotation.
func FromSphere(center mgl64.Vec3, radius float64) *AABB {
	r := math.Abs(radius)
	radiusVec := mgl64.Vec3{r, r, r}

	return FromMinMax(center.Sub(radiusVec), center.Add(radiusVec))
}

// FromOrientedBox bounds a box of the given half extents, rotated by rotation
// and centered on position. rotation must be a unit quaternion.
func FromOrientedBox(position mgl64.Vec3, rotation mgl64.Quat, halfExtents mgl64.Vec3) *AABB {
	h := vecAbs(halfExtents)

	// the 8 corners in local space
	corners := [8]mgl64.Vec3{
		{-h.X(), -h.Y(), -h.Z()},
		{+h.X(), -h.Y(), -h.Z()},
		{-h.X(), +h.Y(), -h.Z()},
		{+h.X(), +h.Y(), -h.Z()},
		{-h.X(), -h.Y(), +h.Z()},
		{+h.X(), -h.Y(), +h.Z()},
		{-h.X(), +h.Y(), +h.Z()},
		{+h.X(), +h.Y(), +h.Z()},
	}

	worldCorner := rotation.Rotate(corners[0]).Add(position)
	lo, hi := worldCorner, worldCorner

	for i := 1; i < len(corners); i++ {
		worldCorner = rotation.Rotate(corners[i]).Add(position)
		lo = vecMin(lo, worldCorner)
		hi = vecMax(hi, worldCorner)
	}

	return FromMinMax(lo, hi)
}

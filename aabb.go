package aabb

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// AABB represents an axis-aligned bounding box.
// It is stored as a base corner (minimum on every axis), a max corner and the
// extent it was created with. The extent is kept verbatim, so it may be negative.
type AABB struct {
	base mgl64.Vec3
	max  mgl64.Vec3
	vec  mgl64.Vec3
	mag  float64
}

// New creates a box spanning from origin to origin+extent.
// Negative extent components are accepted: base and max are normalized so that
// base is the minimum corner and max the maximum corner.
func New(origin, extent mgl64.Vec3) *AABB {
	opposite := origin.Add(extent)

	return &AABB{
		base: vecMin(origin, opposite),
		max:  vecMax(origin, opposite),
		vec:  extent,
		mag:  extent.Len(),
	}
}

// Width returns the x component of the extent given at construction
func (a *AABB) Width() float64 { return a.vec[0] }

// Height returns the y component of the extent given at construction
func (a *AABB) Height() float64 { return a.vec[1] }

// Depth returns the z component of the extent given at construction
func (a *AABB) Depth() float64 { return a.vec[2] }

func (a *AABB) X0() float64 { return a.base[0] }
func (a *AABB) Y0() float64 { return a.base[1] }
func (a *AABB) Z0() float64 { return a.base[2] }

func (a *AABB) X1() float64 { return a.max[0] }
func (a *AABB) Y1() float64 { return a.max[1] }
func (a *AABB) Z1() float64 { return a.max[2] }

// Base returns the minimum corner
func (a *AABB) Base() mgl64.Vec3 { return a.base }

// Max returns the maximum corner
func (a *AABB) Max() mgl64.Vec3 { return a.max }

// Extent returns the extent vector as it was given to New
func (a *AABB) Extent() mgl64.Vec3 { return a.vec }

// Magnitude returns the length of the extent vector
func (a *AABB) Magnitude() float64 { return a.mag }

// Size returns max - base
func (a *AABB) Size() mgl64.Vec3 {
	return a.max.Sub(a.base)
}

// Center returns the midpoint between base and max
func (a *AABB) Center() mgl64.Vec3 {
	return a.base.Add(a.max).Mul(0.5)
}

// Volume returns the volume enclosed by base and max
func (a *AABB) Volume() float64 {
	size := a.Size()
	return size.X() * size.Y() * size.Z()
}

// Clone returns an independent copy of the box
func (a *AABB) Clone() *AABB {
	clone := *a
	return &clone
}

// Translate moves both corners by delta. The extent is unchanged.
// The receiver is modified in place and returned.
func (a *AABB) Translate(delta mgl64.Vec3) *AABB {
	a.max = a.max.Add(delta)
	a.base = a.base.Add(delta)
	return a
}

// SetPosition moves the box so that its base corner sits at origin.
// max is recomputed as origin + extent without normalization: a box created
// with a negative extent ends up with base > max on that axis.
func (a *AABB) SetPosition(origin mgl64.Vec3) *AABB {
	a.max = origin.Add(a.vec)
	a.base = origin
	return a
}

// Expand returns a new box enclosing both a and other, whether they intersect or not.
// This is the geometric union of the two boxes; see Union for the overlap region.
func (a *AABB) Expand(other *AABB) *AABB {
	lo := vecMin(other.base, a.base)
	hi := vecMax(other.max, a.max)

	return New(lo, hi.Sub(lo))
}

// Intersects checks if two AABBs overlap.
// Boxes sharing only a face, an edge or a corner are considered intersecting.
func (a *AABB) Intersects(other *AABB) bool {
	if other.base[0] > a.max[0] {
		return false
	}
	if other.base[1] > a.max[1] {
		return false
	}
	if other.base[2] > a.max[2] {
		return false
	}
	if other.max[0] < a.base[0] {
		return false
	}
	if other.max[1] < a.base[1] {
		return false
	}
	if other.max[2] < a.base[2] {
		return false
	}

	return true
}

// Union returns the region shared by a and other, or nil if they do not intersect.
//
// Despite its name, Union computes the intersection of the two volumes. The
// enclosing box of both is returned by Expand.
func (a *AABB) Union(other *AABB) *AABB {
	if !a.Intersects(other) {
		return nil
	}

	lo := vecMax(other.base, a.base)
	hi := vecMin(other.max, a.max)

	return New(lo, hi.Sub(lo))
}

// Touches reports whether a and other intersect with a zero-volume overlap,
// i.e. they only share a face, an edge or a corner.
func (a *AABB) Touches(other *AABB) bool {
	overlap := a.Union(other)

	return overlap != nil &&
		(overlap.Width() == 0 || overlap.Height() == 0 || overlap.Depth() == 0)
}

// ContainsPoint checks if a point is inside the AABB, faces included
func (a *AABB) ContainsPoint(point mgl64.Vec3) bool {
	return point.X() >= a.base.X() && point.X() <= a.max.X() &&
		point.Y() >= a.base.Y() && point.Y() <= a.max.Y() &&
		point.Z() >= a.base.Z() && point.Z() <= a.max.Z()
}

// Contains checks if other lies entirely inside a, faces included
func (a *AABB) Contains(other *AABB) bool {
	return a.ContainsPoint(other.base) && a.ContainsPoint(other.max)
}

func (a *AABB) String() string {
	return fmt.Sprintf("AABB{base:%s max:%s extent:%s}", formatVec(a.base), formatVec(a.max), formatVec(a.vec))
}

func formatVec(v mgl64.Vec3) string {
	return fmt.Sprintf("[%g %g %g]", v[0], v[1], v[2])
}

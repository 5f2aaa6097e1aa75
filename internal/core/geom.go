// Package core provides the pure value types shared by the simulation and
// the terminal host: vectors, rectangles, collision predicates, the screen
// buffer and the per-frame input surface. It has no external dependencies
// (especially no Bubble Tea) so game logic stays testable.
package core

import "math"

// Rect is an axis-aligned bounding box in world units.
type Rect struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// NewRect creates a rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Left returns the x-coordinate of the left edge.
func (r Rect) Left() float64 { return r.X }

// Top returns the y-coordinate of the top edge.
func (r Rect) Top() float64 { return r.Y }

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the center point of the rectangle.
func (r Rect) Center() Vector {
	return Vector{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Circle is a collision circle.
type Circle struct {
	C Vector
	R float64
}

// AABBOverlap reports whether a and b overlap.
// Rectangles that only share an edge do not overlap.
func AABBOverlap(a, b Rect) bool {
	if a.Right() <= b.Left() || b.Right() <= a.Left() {
		return false
	}
	if a.Bottom() <= b.Top() || b.Bottom() <= a.Top() {
		return false
	}
	return true
}

// CircleOverlap reports whether the centers of a and b are closer than the
// sum of their radii. Tangent circles do not overlap.
func CircleOverlap(a, b Circle) bool {
	return a.C.Dist(b.C) < a.R+b.R
}

// PointInRect reports whether p lies inside r, edges included.
func PointInRect(p Vector, r Rect) bool {
	return p.X >= r.Left() && p.X <= r.Right() && p.Y >= r.Top() && p.Y <= r.Bottom()
}

// PointInCircle reports whether p lies inside c, boundary included.
func PointInCircle(p Vector, c Circle) bool {
	return p.DistSq(c.C) <= c.R*c.R
}

// LineLine reports whether segment a1-a2 crosses segment b1-b2.
// Parallel (and collinear) segments never intersect.
func LineLine(a1, a2, b1, b2 Vector) bool {
	den := (b2.X-b1.X)*(a1.Y-a2.Y) - (a1.X-a2.X)*(b2.Y-b1.Y)
	if den == 0 {
		return false
	}
	ua := ((b2.X-b1.X)*(a1.Y-b1.Y) - (b2.Y-b1.Y)*(a1.X-b1.X)) / den
	ub := ((a2.X-a1.X)*(a1.Y-b1.Y) - (a2.Y-a1.Y)*(a1.X-b1.X)) / den
	return ua >= 0 && ua <= 1 && ub >= 0 && ub <= 1
}

// SegmentRectIntersect reports whether the segment p1-p2 touches r: either
// endpoint lies inside r or the segment crosses one of its four edges.
func SegmentRectIntersect(p1, p2 Vector, r Rect) bool {
	if PointInRect(p1, r) || PointInRect(p2, r) {
		return true
	}

	tl := Vec(r.Left(), r.Top())
	tr := Vec(r.Right(), r.Top())
	bl := Vec(r.Left(), r.Bottom())
	br := Vec(r.Right(), r.Bottom())

	return LineLine(p1, p2, tl, tr) ||
		LineLine(p1, p2, tr, br) ||
		LineLine(p1, p2, br, bl) ||
		LineLine(p1, p2, bl, tl)
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}

// LerpF interpolates between a and b.
func LerpF(a, b, t float64) float64 {
	return a + (b-a)*t
}

// MapRange maps v from [inMin, inMax] onto [outMin, outMax].
// A degenerate input range maps everything to outMin.
func MapRange(v, inMin, inMax, outMin, outMax float64) float64 {
	if inMax == inMin {
		return outMin
	}
	return outMin + (v-inMin)*(outMax-outMin)/(inMax-inMin)
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

package core

import (
	"fmt"
	"math"
)

// vectorTolerance is the per-axis tolerance used by Vector.Equals.
const vectorTolerance = 0.0001

// Vector is a 2D vector in world units.
//
// Pointer methods mutate the receiver and return it so updates can be
// chained on hot paths (pos.Add(vel.Times(dt)).Limit(max)). Value methods
// and the package-level functions never touch their operands.
type Vector struct {
	X, Y float64
}

// Vec creates a vector from its components.
func Vec(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

// Zero returns the zero vector.
func Zero() Vector { return Vector{} }

// One returns the vector (1, 1).
func One() Vector { return Vector{X: 1, Y: 1} }

// Up returns the unit vector pointing up the screen (negative Y).
func Up() Vector { return Vector{X: 0, Y: -1} }

// Down returns the unit vector pointing down the screen.
func Down() Vector { return Vector{X: 0, Y: 1} }

// Left returns the unit vector pointing left.
func Left() Vector { return Vector{X: -1, Y: 0} }

// Right returns the unit vector pointing right.
func Right() Vector { return Vector{X: 1, Y: 0} }

// FromAngle returns a vector with the given angle (radians) and magnitude.
func FromAngle(angle, magnitude float64) Vector {
	return Vector{X: math.Cos(angle) * magnitude, Y: math.Sin(angle) * magnitude}
}

// RandomUnit returns a unit vector with a random direction drawn from r.
func RandomUnit(r interface{ Float64() float64 }) Vector {
	return FromAngle(r.Float64()*2*math.Pi, 1)
}

// AddV returns a + b.
func AddV(a, b Vector) Vector { return Vector{X: a.X + b.X, Y: a.Y + b.Y} }

// SubV returns a - b.
func SubV(a, b Vector) Vector { return Vector{X: a.X - b.X, Y: a.Y - b.Y} }

// ScaleV returns v * s.
func ScaleV(v Vector, s float64) Vector { return Vector{X: v.X * s, Y: v.Y * s} }

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Vector) float64 { return a.Dist(b) }

// Lerp returns the linear interpolation between a and b at t.
func Lerp(a, b Vector, t float64) Vector {
	return Vector{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
}

// Set replaces both components.
func (v *Vector) Set(x, y float64) *Vector {
	v.X, v.Y = x, y
	return v
}

// Copy replaces v with o.
func (v *Vector) Copy(o Vector) *Vector {
	v.X, v.Y = o.X, o.Y
	return v
}

// Add adds o to v in place.
func (v *Vector) Add(o Vector) *Vector {
	v.X += o.X
	v.Y += o.Y
	return v
}

// Sub subtracts o from v in place.
func (v *Vector) Sub(o Vector) *Vector {
	v.X -= o.X
	v.Y -= o.Y
	return v
}

// Scale multiplies v by s in place.
func (v *Vector) Scale(s float64) *Vector {
	v.X *= s
	v.Y *= s
	return v
}

// Div divides v by s in place. Division by zero leaves v unchanged.
func (v *Vector) Div(s float64) *Vector {
	if s == 0 {
		return v
	}
	v.X /= s
	v.Y /= s
	return v
}

// Normalize scales v to unit length. A zero vector stays zero.
func (v *Vector) Normalize() *Vector {
	m := v.Mag()
	if m == 0 {
		return v
	}
	return v.Div(m)
}

// SetMagnitude rescales v to length m, keeping its direction.
func (v *Vector) SetMagnitude(m float64) *Vector {
	return v.Normalize().Scale(m)
}

// Limit clamps the length of v to max, keeping its direction.
func (v *Vector) Limit(max float64) *Vector {
	if v.MagSq() > max*max {
		v.SetMagnitude(max)
	}
	return v
}

// Rotate rotates v by angle radians in place.
func (v *Vector) Rotate(angle float64) *Vector {
	cos, sin := math.Cos(angle), math.Sin(angle)
	v.X, v.Y = v.X*cos-v.Y*sin, v.X*sin+v.Y*cos
	return v
}

// LerpTo moves v toward target by fraction t.
func (v *Vector) LerpTo(target Vector, t float64) *Vector {
	v.X += (target.X - v.X) * t
	v.Y += (target.Y - v.Y) * t
	return v
}

// Reflect mirrors v about the normal n: v' = v - 2(v·n)n.
// n is expected to be unit length.
func (v *Vector) Reflect(n Vector) *Vector {
	d := 2 * v.Dot(n)
	v.X -= d * n.X
	v.Y -= d * n.Y
	return v
}

// Plus returns v + o.
func (v Vector) Plus(o Vector) Vector { return AddV(v, o) }

// Minus returns v - o.
func (v Vector) Minus(o Vector) Vector { return SubV(v, o) }

// Times returns v * s.
func (v Vector) Times(s float64) Vector { return ScaleV(v, s) }

// Normalized returns a unit-length copy of v, or zero for a zero vector.
func (v Vector) Normalized() Vector {
	c := v
	c.Normalize()
	return c
}

// Rotated returns a copy of v rotated by angle radians.
func (v Vector) Rotated(angle float64) Vector {
	c := v
	c.Rotate(angle)
	return c
}

// Mag returns the length of v.
func (v Vector) Mag() float64 { return math.Sqrt(v.MagSq()) }

// MagSq returns the squared length of v.
func (v Vector) MagSq() float64 { return v.X*v.X + v.Y*v.Y }

// Dot returns the dot product of v and o.
func (v Vector) Dot(o Vector) float64 { return v.X*o.X + v.Y*o.Y }

// Cross returns the z component of the 3D cross product of v and o.
func (v Vector) Cross(o Vector) float64 { return v.X*o.Y - v.Y*o.X }

// Dist returns the distance between v and o.
func (v Vector) Dist(o Vector) float64 { return math.Sqrt(v.DistSq(o)) }

// DistSq returns the squared distance between v and o.
func (v Vector) DistSq(o Vector) float64 {
	dx, dy := v.X-o.X, v.Y-o.Y
	return dx*dx + dy*dy
}

// Angle returns the direction of v in radians.
func (v Vector) Angle() float64 { return math.Atan2(v.Y, v.X) }

// AngleTo returns the direction from v to o in radians.
func (v Vector) AngleTo(o Vector) float64 { return math.Atan2(o.Y-v.Y, o.X-v.X) }

// IsZero reports whether both components are exactly zero.
func (v Vector) IsZero() bool { return v.X == 0 && v.Y == 0 }

// Equals compares v and o with a small per-axis tolerance.
func (v Vector) Equals(o Vector) bool {
	return math.Abs(v.X-o.X) < vectorTolerance && math.Abs(v.Y-o.Y) < vectorTolerance
}

// Clone returns a copy of v.
func (v Vector) Clone() Vector { return v }

func (v Vector) String() string {
	return fmt.Sprintf("(%.2f, %.2f)", v.X, v.Y)
}

// Package steering implements force-based autonomous motion for point-mass
// agents: a Vec2 value type, the Agent motion state and a library of
// steering behaviors (seek, flee, arrive, pursue, evade, wander, separation,
// obstacle avoidance, boundary containment).
//
// Behaviors only compute forces. Callers accumulate the forces they want with
// ApplyForce and call Integrate exactly once per tick.
package steering

import "math"

// Vec2 is a 2D vector. It is always passed and stored by value.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{X: x, Y: y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// FromAngle returns a vector of the given magnitude pointing at angle radians.
func FromAngle(angle, magnitude float64) Vec2 {
	return Vec2{X: math.Cos(angle) * magnitude, Y: math.Sin(angle) * magnitude}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Div returns v divided by s. Division by zero yields the zero vector.
func (v Vec2) Div(s float64) Vec2 {
	if s == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / s, Y: v.Y / s}
}

// Mag returns the Euclidean length.
func (v Vec2) Mag() float64 {
	return math.Hypot(v.X, v.Y)
}

// MagSq returns the squared length.
func (v Vec2) MagSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// IsZero reports whether both components are zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Normalize returns the unit vector in the direction of v, or the zero
// vector when v has no direction.
func (v Vec2) Normalize() Vec2 {
	m := v.Mag()
	if m == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / m, Y: v.Y / m}
}

// SetMag returns v rescaled to length m. A zero vector stays zero.
func (v Vec2) SetMag(m float64) Vec2 {
	return v.Normalize().Scale(m)
}

// Limit clamps the length of v to max, preserving direction.
func (v Vec2) Limit(max float64) Vec2 {
	sq := v.MagSq()
	if sq <= max*max || sq == 0 {
		return v
	}
	return v.Scale(max / math.Sqrt(sq))
}

// Heading returns the angle of v in radians. The zero vector has heading 0.
func (v Vec2) Heading() float64 {
	return math.Atan2(v.Y, v.X)
}

// Dist returns the distance between two points.
func (v Vec2) Dist(o Vec2) float64 {
	return math.Hypot(v.X-o.X, v.Y-o.Y)
}

// Remap linearly maps value from [inMin, inMax] onto [outMin, outMax].
// The result is not clamped. A degenerate input range returns outMin.
func Remap(value, inMin, inMax, outMin, outMax float64) float64 {
	if inMax == inMin {
		return outMin
	}
	return outMin + (value-inMin)*(outMax-outMin)/(inMax-inMin)
}

package steering

import "math"

// Default motion limits for a freshly created agent.
const (
	DefaultMaxSpeed = 4.0
	DefaultMaxForce = 0.3
	DefaultRadius   = 16.0

	// LookAhead is the number of ticks pursue/evade extrapolate a target's velocity.
	LookAhead = 6.0

	// AheadDistance is how far in front of the agent obstacle avoidance probes.
	AheadDistance = 60.0
)

// WanderState holds the wander circle parameters of an agent.
type WanderState struct {
	Theta    float64 // current angle on the wander circle, radians
	Radius   float64 // radius of the wander circle
	Distance float64 // projection distance of the circle center ahead of the agent
	Jitter   float64 // bound of the per-tick random angle increment
}

// DefaultWander returns the wander parameters every agent starts with.
func DefaultWander() WanderState {
	return WanderState{
		Theta:    math.Pi / 2,
		Radius:   50,
		Distance: 80,
		Jitter:   0.3,
	}
}

// Agent is the motion state shared by every mobile entity.
// Entity kinds embed an Agent and choose which behaviors to combine.
type Agent struct {
	Pos Vec2
	Vel Vec2
	Acc Vec2 // accumulated force since the last Integrate

	MaxSpeed float64
	MaxForce float64
	Radius   float64

	Wander WanderState
}

// NewAgent creates an agent at pos with zero velocity and default limits.
func NewAgent(pos Vec2) Agent {
	return Agent{
		Pos:      pos,
		MaxSpeed: DefaultMaxSpeed,
		MaxForce: DefaultMaxForce,
		Radius:   DefaultRadius,
		Wander:   DefaultWander(),
	}
}

// ApplyForce accumulates a force into the acceleration.
func (a *Agent) ApplyForce(f Vec2) {
	a.Acc = a.Acc.Add(f)
}

// Integrate advances the agent by one tick: velocity += acceleration,
// velocity clamped to MaxSpeed, position += velocity, acceleration reset.
// It must run exactly once per agent per tick.
func (a *Agent) Integrate() {
	a.Vel = a.Vel.Add(a.Acc).Limit(a.MaxSpeed)
	a.Pos = a.Pos.Add(a.Vel)
	a.Acc = Vec2{}
}

// WithMaxSpeed runs fn with MaxSpeed temporarily set to speed and restores
// the previous value afterwards, even if fn panics.
func (a *Agent) WithMaxSpeed(speed float64, fn func()) {
	saved := a.MaxSpeed
	a.MaxSpeed = speed
	defer func() { a.MaxSpeed = saved }()
	fn()
}

// Body returns the agent's collision circle.
func (a *Agent) Body() Circle {
	return Circle{Center: a.Pos, R: a.Radius}
}

// Circle is a circular body used for collision and avoidance queries.
type Circle struct {
	Center Vec2
	R      float64
}

// Overlaps reports whether two circles touch: center distance strictly
// below the sum of radii.
func (c Circle) Overlaps(o Circle) bool {
	return c.Center.Dist(o.Center) < c.R+o.R
}

// Contains reports whether p lies strictly inside the circle.
func (c Circle) Contains(p Vec2) bool {
	return c.Center.Dist(p) < c.R
}

// Nearest returns the index of the item closest to from and its distance.
// pos extracts an item's position. Ties go to the earliest item.
// ok is false when items is empty.
func Nearest[T any](from Vec2, items []T, pos func(T) Vec2) (idx int, dist float64, ok bool) {
	idx, dist = -1, math.Inf(1)
	for i, it := range items {
		d := from.Dist(pos(it))
		if d < dist {
			idx, dist = i, d
		}
	}
	return idx, dist, idx >= 0
}

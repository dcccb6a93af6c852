package steering

// Rand is the random source used by Wander.
type Rand interface {
	Float64() float64
}

// steer converts a desired velocity into a force limited to MaxForce.
func (a *Agent) steer(desired Vec2) Vec2 {
	return desired.Sub(a.Vel).Limit(a.MaxForce)
}

// Seek returns a force steering toward target at full speed.
// A target at the agent's own position yields a zero force.
func (a *Agent) Seek(target Vec2) Vec2 {
	dir := target.Sub(a.Pos)
	if dir.IsZero() {
		return Vec2{}
	}
	return a.steer(dir.SetMag(a.MaxSpeed))
}

// Flee returns a force steering directly away from target.
// A target at the agent's own position yields a zero force.
func (a *Agent) Flee(target Vec2) Vec2 {
	dir := a.Pos.Sub(target)
	if dir.IsZero() {
		return Vec2{}
	}
	return a.steer(dir.SetMag(a.MaxSpeed))
}

// Arrive behaves like Seek outside slowRadius. Inside it the desired speed
// ramps linearly from MaxSpeed down to 0 at the target. At the target the
// desired velocity is zero, so the force brakes the current velocity.
func (a *Agent) Arrive(target Vec2, slowRadius float64) Vec2 {
	dir := target.Sub(a.Pos)
	d := dir.Mag()
	if d == 0 {
		return a.steer(Vec2{})
	}
	speed := a.MaxSpeed
	if d < slowRadius {
		speed = Remap(d, 0, slowRadius, 0, a.MaxSpeed)
	}
	return a.steer(dir.SetMag(speed))
}

// predict extrapolates a moving target LookAhead ticks forward.
func predict(pos, vel Vec2) Vec2 {
	return pos.Add(vel.Scale(LookAhead))
}

// Pursue seeks the predicted future position of other.
func (a *Agent) Pursue(other Agent) Vec2 {
	return a.Seek(predict(other.Pos, other.Vel))
}

// Evade flees the predicted future position of other.
func (a *Agent) Evade(other Agent) Vec2 {
	return a.Flee(predict(other.Pos, other.Vel))
}

// WanderForce projects the wander circle ahead of the agent, picks the point
// at the current wander angle and returns a force of exactly MaxForce toward
// it. The wander angle then drifts by a uniform increment in ±Jitter.
// This is the only behavior that updates agent state.
func (a *Agent) WanderForce(rng Rand) Vec2 {
	w := &a.Wander
	point := a.Vel.SetMag(w.Distance).Add(a.Pos)
	theta := w.Theta + a.Vel.Heading()
	point = point.Add(FromAngle(theta, w.Radius))

	w.Theta += (rng.Float64()*2 - 1) * w.Jitter

	return point.Sub(a.Pos).SetMag(a.MaxForce)
}

// Separation repels the agent from every peer closer than radius with an
// inverse-square weight. Peers at distance zero (the agent itself or an
// exactly coincident peer) are skipped. No qualifying neighbor yields zero.
func (a *Agent) Separation(peers []Vec2, radius float64) Vec2 {
	var sum Vec2
	n := 0
	for _, p := range peers {
		d := a.Pos.Dist(p)
		if d == 0 || d >= radius {
			continue
		}
		sum = sum.Add(a.Pos.Sub(p).Div(d * d))
		n++
	}
	if n == 0 {
		return Vec2{}
	}
	return a.steer(sum.Div(float64(n)).SetMag(a.MaxSpeed))
}

// AvoidObstacles probes AheadDistance units along the current heading and
// pushes away from the nearest obstacle overlapping the probe point.
// The force may reach twice MaxForce. No threatening obstacle yields zero.
func (a *Agent) AvoidObstacles(obstacles []Circle) Vec2 {
	ahead := a.Vel.SetMag(AheadDistance).Add(a.Pos)

	closest := -1
	closestDist := 0.0
	for i, o := range obstacles {
		d := ahead.Dist(o.Center)
		if d >= o.R+a.Radius {
			continue
		}
		if closest < 0 || d < closestDist {
			closest, closestDist = i, d
		}
	}
	if closest < 0 {
		return Vec2{}
	}
	return ahead.Sub(obstacles[closest].Center).SetMag(a.MaxSpeed).Limit(a.MaxForce * 2)
}

// Boundaries keeps the agent inside a width×height arena. Within margin of
// an edge the matching velocity component is replaced by ±MaxSpeed pointing
// inward. Both axes are handled independently, so corners push diagonally.
func (a *Agent) Boundaries(margin, width, height float64) Vec2 {
	desired := a.Vel
	hit := false

	switch {
	case a.Pos.X < margin:
		desired.X = a.MaxSpeed
		hit = true
	case a.Pos.X > width-margin:
		desired.X = -a.MaxSpeed
		hit = true
	}
	switch {
	case a.Pos.Y < margin:
		desired.Y = a.MaxSpeed
		hit = true
	case a.Pos.Y > height-margin:
		desired.Y = -a.MaxSpeed
		hit = true
	}

	if !hit {
		return Vec2{}
	}
	return a.steer(desired.SetMag(a.MaxSpeed))
}

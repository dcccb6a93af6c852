package steering

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

type fixedRand float64

func (r fixedRand) Float64() float64 { return float64(r) }

func assertVec(t *testing.T, want, got Vec2) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, eps, "x")
	assert.InDelta(t, want.Y, got.Y, eps, "y")
}

func TestIntegrateClampsVelocity(t *testing.T) {
	a := NewAgent(V(0, 0))
	forces := []Vec2{V(10, 0), V(-3, 7), V(0.1, 0.1), V(100, -100), V(0, 0)}

	for i := 0; i < 50; i++ {
		a.ApplyForce(forces[i%len(forces)])
		a.ApplyForce(forces[(i+1)%len(forces)])
		a.Integrate()

		assert.LessOrEqual(t, a.Vel.Mag(), a.MaxSpeed+eps)
		assert.True(t, a.Acc.IsZero(), "acceleration must be reset after Integrate")
	}
}

func TestIntegrateAdvancesOnce(t *testing.T) {
	a := NewAgent(V(10, 10))
	a.ApplyForce(V(1, 0))
	a.ApplyForce(V(0, 2))
	a.Integrate()

	assertVec(t, V(1, 2), a.Vel)
	assertVec(t, V(11, 12), a.Pos)
}

func TestSeekFlee(t *testing.T) {
	a := NewAgent(V(0, 0))

	seek := a.Seek(V(100, 0))
	assertVec(t, V(a.MaxForce, 0), seek)

	flee := a.Flee(V(100, 0))
	assertVec(t, V(-a.MaxForce, 0), flee)
}

func TestSeekFleeAtOwnPosition(t *testing.T) {
	a := NewAgent(V(5, 5))
	a.Vel = V(2, 1)

	assert.True(t, a.Seek(V(5, 5)).IsZero())
	assert.True(t, a.Flee(V(5, 5)).IsZero())
}

func TestArriveMatchesSeekOutsideRadius(t *testing.T) {
	tests := []struct {
		name   string
		target Vec2
		vel    Vec2
	}{
		{"exactly at radius", V(80, 0), V(0, 0)},
		{"far away", V(300, 200), V(1, -1)},
		{"behind", V(-90, 5), V(3, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := NewAgent(V(0, 0))
			a.Vel = tc.vel
			assertVec(t, a.Seek(tc.target), a.Arrive(tc.target, 80))
		})
	}
}

func TestArriveRampsInsideRadius(t *testing.T) {
	a := NewAgent(V(0, 0))
	a.MaxForce = 100 // expose the desired velocity

	f := a.Arrive(V(40, 0), 80)
	assertVec(t, V(a.MaxSpeed/2, 0), f)
}

func TestArriveAtTargetBrakes(t *testing.T) {
	a := NewAgent(V(10, 10))
	a.Vel = V(3, 0)

	f := a.Arrive(V(10, 10), 80)
	assert.Less(t, f.X, 0.0)
	assert.InDelta(t, a.MaxForce, f.Mag(), eps)

	a.Vel = Vec2{}
	assert.True(t, a.Arrive(V(10, 10), 80).IsZero())
}

func TestPursueEvadeStationaryTarget(t *testing.T) {
	a := NewAgent(V(0, 0))
	a.Vel = V(1, 2)
	target := NewAgent(V(50, -30))

	assertVec(t, a.Seek(target.Pos), a.Pursue(target))
	assertVec(t, a.Flee(target.Pos), a.Evade(target))
}

func TestPursueLeadsMovingTarget(t *testing.T) {
	a := NewAgent(V(0, 0))
	a.MaxForce = 100
	target := NewAgent(V(100, 0))
	target.Vel = V(0, 10)

	// predicted point is (100, 60)
	f := a.Pursue(target)
	want := V(100, 60).SetMag(a.MaxSpeed)
	assertVec(t, want, f)
}

func TestWanderForceMagnitudeAndDrift(t *testing.T) {
	a := NewAgent(V(200, 200))
	a.Vel = V(1, 0)
	start := a.Wander.Theta

	f := a.WanderForce(fixedRand(1))
	assert.InDelta(t, a.MaxForce, f.Mag(), eps)
	assert.InDelta(t, start+a.Wander.Jitter, a.Wander.Theta, eps)

	a.WanderForce(fixedRand(0))
	assert.InDelta(t, start, a.Wander.Theta, eps)

	a.WanderForce(fixedRand(0.5))
	assert.InDelta(t, start, a.Wander.Theta, eps)
}

func TestWanderFromRest(t *testing.T) {
	a := NewAgent(V(0, 0))
	// zero heading, theta pi/2 points the wander target straight down
	f := a.WanderForce(fixedRand(0.5))
	assertVec(t, V(0, a.MaxForce), f)
}

func TestSeparationNoNeighbors(t *testing.T) {
	a := NewAgent(V(0, 0))
	a.Vel = V(2, 2)

	tests := []struct {
		name  string
		peers []Vec2
	}{
		{"nil", nil},
		{"only self", []Vec2{V(0, 0)}},
		{"out of radius", []Vec2{V(50, 0), V(0, -60)}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.True(t, a.Separation(tc.peers, 50).IsZero())
		})
	}
}

func TestSeparationPushesAway(t *testing.T) {
	a := NewAgent(V(0, 0))
	f := a.Separation([]Vec2{V(10, 0), V(0, 0)}, 50)

	assert.Less(t, f.X, 0.0)
	assert.InDelta(t, 0, f.Y, eps)
	assert.LessOrEqual(t, f.Mag(), a.MaxForce+eps)
}

func TestSeparationInverseSquareWeighting(t *testing.T) {
	a := NewAgent(V(0, 0))
	a.MaxForce = 100
	// near peer on the left dominates far peer on the right
	f := a.Separation([]Vec2{V(-5, 0), V(40, 0)}, 50)
	assert.Greater(t, f.X, 0.0)
}

func TestAvoidObstacles(t *testing.T) {
	a := NewAgent(V(0, 0))
	a.Vel = V(2, 0)

	assert.True(t, a.AvoidObstacles(nil).IsZero(), "no obstacles")
	assert.True(t, a.AvoidObstacles([]Circle{{Center: V(60, 200), R: 30}}).IsZero(), "obstacle out of path")

	f := a.AvoidObstacles([]Circle{{Center: V(60, 10), R: 30}})
	require.False(t, f.IsZero())
	assert.Less(t, f.Y, 0.0, "pushes away from obstacle center")
	assert.InDelta(t, 2*a.MaxForce, f.Mag(), eps)
}

func TestAvoidObstaclesNearestOnly(t *testing.T) {
	a := NewAgent(V(0, 0))
	a.Vel = V(1, 0)
	a.MaxForce = 100

	// ahead point is (60, 0); the obstacle below is nearer
	obstacles := []Circle{
		{Center: V(60, -30), R: 40},
		{Center: V(60, 10), R: 40},
	}
	f := a.AvoidObstacles(obstacles)
	assertVec(t, V(0, -a.MaxSpeed), f)
}

func TestAvoidObstaclesTieFirstWins(t *testing.T) {
	a := NewAgent(V(0, 0))
	a.Vel = V(1, 0)
	a.MaxForce = 100

	obstacles := []Circle{
		{Center: V(60, 20), R: 30},
		{Center: V(60, -20), R: 30},
	}
	f := a.AvoidObstacles(obstacles)
	assertVec(t, V(0, -a.MaxSpeed), f)
}

func TestBoundaries(t *testing.T) {
	const margin, w, h = 40.0, 800.0, 600.0

	tests := []struct {
		name string
		pos  Vec2
		vel  Vec2
		wantX, wantY int // sign of the expected force component, 0 means none
	}{
		{"center", V(400, 300), V(3, 3), 0, 0},
		{"just inside left margin", V(margin+1, 300), V(-3, 0), 0, 0},
		{"left edge", V(margin-1, 300), V(-3, 0), 1, 0},
		{"left edge at rest", V(margin-1, 300), V(0, 0), 1, 0},
		{"right edge", V(w-margin+1, 300), V(2, 1), -1, 0},
		{"top edge", V(400, margin-1), V(0, -2), 0, 1},
		{"bottom edge", V(400, h-5), V(0, 2), 0, -1},
		{"top-left corner", V(5, 5), V(-1, -1), 1, 1},
		{"bottom-right corner", V(w-5, h-5), V(0, 0), -1, -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := NewAgent(tc.pos)
			a.Vel = tc.vel
			f := a.Boundaries(margin, w, h)

			assert.Equal(t, tc.wantX, sign(f.X), "x sign of %v", f)
			if tc.wantX == 0 && tc.wantY == 0 {
				assert.True(t, f.IsZero())
				return
			}
			if tc.wantY != 0 {
				assert.Equal(t, tc.wantY, sign(f.Y), "y sign of %v", f)
			}
			assert.LessOrEqual(t, f.Mag(), a.MaxForce+eps)
		})
	}
}

func TestBoundariesSteersBackInside(t *testing.T) {
	const margin = 40.0
	a := NewAgent(V(margin-1, 300))
	a.Vel = V(-a.MaxSpeed, 0)

	for i := 0; i < 200 && a.Pos.X <= margin; i++ {
		a.ApplyForce(a.Boundaries(margin, 800, 600))
		a.Integrate()
	}
	assert.Greater(t, a.Pos.X, margin)
}

func TestWithMaxSpeedRestores(t *testing.T) {
	a := NewAgent(V(0, 0))
	a.MaxSpeed = 2.5

	a.WithMaxSpeed(0.75, func() {
		assert.Equal(t, 0.75, a.MaxSpeed)
		a.ApplyForce(V(10, 0))
		a.Integrate()
	})
	assert.Equal(t, 2.5, a.MaxSpeed)
	assert.InDelta(t, 0.75, a.Vel.Mag(), eps)

	assert.Panics(t, func() {
		a.WithMaxSpeed(0.1, func() { panic("boom") })
	})
	assert.Equal(t, 2.5, a.MaxSpeed)
}

func TestNearest(t *testing.T) {
	id := func(v Vec2) Vec2 { return v }

	_, _, ok := Nearest(V(0, 0), []Vec2(nil), id)
	assert.False(t, ok)

	idx, d, ok := Nearest(V(0, 0), []Vec2{V(10, 0), V(3, 4), V(-5, 0)}, id)
	require.True(t, ok)
	assert.Equal(t, 1, idx)
	assert.InDelta(t, 5, d, eps)
}

func TestCircleOverlaps(t *testing.T) {
	a := Circle{Center: V(0, 0), R: 10}
	assert.True(t, a.Overlaps(Circle{Center: V(15, 0), R: 6}))
	assert.False(t, a.Overlaps(Circle{Center: V(16, 0), R: 6}), "touching is not overlapping")
	assert.True(t, a.Contains(V(0, 9.9)))
}

func TestVecHelpers(t *testing.T) {
	assert.True(t, Vec2{}.Normalize().IsZero())
	assert.True(t, Vec2{}.SetMag(5).IsZero())
	assert.InDelta(t, 5, V(3, 4).Mag(), eps)
	assertVec(t, V(0.6, 0.8), V(3, 4).Normalize())
	assertVec(t, V(3, 4), V(3, 4).Limit(10))
	assertVec(t, V(0.6, 0.8), V(3, 4).Limit(1))
	assert.InDelta(t, math.Pi/2, V(0, 1).Heading(), eps)
	assert.InDelta(t, 3, Remap(0, 0, 150, 3, 0.5), eps)
	assert.InDelta(t, 0.5, Remap(150, 0, 150, 3, 0.5), eps)
	assert.InDelta(t, 1.75, Remap(75, 0, 150, 3, 0.5), eps)
}

func sign(v float64) int {
	switch {
	case v > eps:
		return 1
	case v < -eps:
		return -1
	default:
		return 0
	}
}

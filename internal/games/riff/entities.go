package riff

import (
	"math"

	"github.com/vovakirdan/riffrun/internal/config"
	"github.com/vovakirdan/riffrun/internal/core"
	"github.com/vovakirdan/riffrun/internal/steering"
)

// ObstacleKind is the cosmetic category of an obstacle.
type ObstacleKind int

const (
	ObstacleTreeA ObstacleKind = iota
	ObstacleTreeB
	ObstacleRock
)

// String returns the category name.
func (k ObstacleKind) String() string {
	switch k {
	case ObstacleTreeA:
		return "tree-a"
	case ObstacleTreeB:
		return "tree-b"
	case ObstacleRock:
		return "rock"
	default:
		return "unknown"
	}
}

// Obstacle is an immobile circular body.
type Obstacle struct {
	Pos    steering.Vec2
	Radius float64
	Kind   ObstacleKind
}

// Body returns the collision circle.
func (o Obstacle) Body() steering.Circle {
	return steering.Circle{Center: o.Pos, R: o.Radius}
}

// ZoneKind selects the speed override a zone applies.
type ZoneKind int

const (
	ZoneBoost ZoneKind = iota
	ZonePenalty
)

// String returns the zone kind name.
func (k ZoneKind) String() string {
	if k == ZoneBoost {
		return "boost"
	}
	return "penalty"
}

// Zone is a circular area that overrides the player's max speed while occupied.
type Zone struct {
	Pos    steering.Vec2
	Radius float64
	Kind   ZoneKind
}

// Contains reports whether p is strictly inside the zone.
func (z Zone) Contains(p steering.Vec2) bool {
	return z.Pos.Dist(p) < z.Radius
}

// Note is a stationary collectible.
type Note struct {
	steering.Agent
	Variant int // cosmetic, 0..2
}

func newNote(pos steering.Vec2, cfg config.NoteConfig, rng *core.RNG) Note {
	a := steering.NewAgent(pos)
	a.MaxSpeed = 0
	a.Radius = cfg.Radius
	return Note{Agent: a, Variant: rng.Intn(3)}
}

// PowerKind is the effect a power source grants.
type PowerKind int

const (
	PowerDash PowerKind = iota
	PowerShield
	PowerSlowMo
)

// String returns the power name.
func (k PowerKind) String() string {
	switch k {
	case PowerDash:
		return "dash"
	case PowerShield:
		return "shield"
	case PowerSlowMo:
		return "slowmo"
	default:
		return "unknown"
	}
}

// PowerUp is a wandering power source.
type PowerUp struct {
	steering.Agent
	Kind PowerKind
}

func newPowerUp(pos steering.Vec2, kind PowerKind, cfg config.PowerUpConfig) PowerUp {
	a := steering.NewAgent(pos)
	a.MaxSpeed = cfg.MaxSpeed
	a.MaxForce = cfg.MaxForce
	a.Radius = cfg.Radius
	return PowerUp{Agent: a, Kind: kind}
}

// ApplyBehaviors wanders while avoiding obstacles and staying in the arena,
// then integrates once.
func (p *PowerUp) ApplyBehaviors(obstacles []steering.Circle, width, height float64, rng steering.Rand, cfg config.PowerUpConfig) {
	p.ApplyForce(p.WanderForce(rng).Scale(cfg.WanderWeight))
	p.ApplyForce(p.AvoidObstacles(obstacles).Scale(cfg.AvoidWeight))
	p.ApplyForce(p.Boundaries(cfg.BoundaryMargin, width, height).Scale(cfg.BoundaryWeight))
	p.Integrate()
}

// ParticleKind tags what emitted a particle.
type ParticleKind int

const (
	ParticleNote ParticleKind = iota
	ParticleDash
	ParticleShield
	ParticleSlowMo
	ParticleDecay
)

// powerParticle maps a power kind to its burst tag.
func powerParticle(k PowerKind) ParticleKind {
	switch k {
	case PowerShield:
		return ParticleShield
	case PowerSlowMo:
		return ParticleSlowMo
	default:
		return ParticleDash
	}
}

// Particle constants.
const (
	particleLife    = 255.0
	particleFade    = 5.0
	particleGravity = 0.1
)

// Particle is a short-lived point with gravity. It carries no collision.
type Particle struct {
	Pos  steering.Vec2
	Vel  steering.Vec2
	Life float64
	Size float64
	Kind ParticleKind
}

func newParticle(pos steering.Vec2, kind ParticleKind, rng *core.RNG) Particle {
	angle := rng.Range(0, 2*math.Pi)
	return Particle{
		Pos:  pos,
		Vel:  steering.FromAngle(angle, rng.Range(1, 3)),
		Life: particleLife,
		Size: rng.Range(3, 8),
		Kind: kind,
	}
}

// Update applies gravity, moves the particle and fades it.
func (p *Particle) Update() {
	p.Vel.Y += particleGravity
	p.Pos = p.Pos.Add(p.Vel)
	p.Life -= particleFade
}

// Dead reports whether the particle has faded out.
func (p Particle) Dead() bool {
	return p.Life <= 0
}

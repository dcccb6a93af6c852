package riff

import (
	"github.com/vovakirdan/riffrun/internal/config"
	"github.com/vovakirdan/riffrun/internal/core"
	"github.com/vovakirdan/riffrun/internal/steering"
)

// Tier is the threat class of a zombie.
type Tier int

const (
	TierDangerous Tier = iota
	TierCommonA
	TierCommonB
)

// String returns the tier name.
func (t Tier) String() string {
	switch t {
	case TierDangerous:
		return "dangerous"
	case TierCommonA:
		return "common-a"
	default:
		return "common-b"
	}
}

// Zombie pursues the player.
type Zombie struct {
	steering.Agent
	Tier Tier

	decayTimer int
}

// newZombie rolls speed, force and tier. multiplier is the difficulty at
// spawn time and is baked into MaxSpeed.
func newZombie(pos steering.Vec2, multiplier float64, cfg config.ZombieConfig, rng *core.RNG) Zombie {
	a := steering.NewAgent(pos)
	a.MaxSpeed = rng.Range(cfg.SpeedMin, cfg.SpeedMax) * multiplier
	a.MaxForce = rng.Range(cfg.ForceMin, cfg.ForceMax)
	a.Radius = cfg.Radius

	z := Zombie{Agent: a}
	roll := rng.Float64()
	common := (1 - cfg.DangerousChance) / 2
	switch {
	case roll < cfg.DangerousChance:
		z.Tier = TierDangerous
		z.MaxSpeed *= cfg.DangerousSpeedMult
		z.Radius = cfg.DangerousRadius
	case roll < cfg.DangerousChance+common:
		z.Tier = TierCommonA
	default:
		z.Tier = TierCommonB
	}
	return z
}

// ApplyBehaviors combines pursuit of the player with separation from peers,
// obstacle avoidance and containment, then integrates once.
// It reports whether a decay particle is due this tick.
func (z *Zombie) ApplyBehaviors(player steering.Agent, peers []steering.Vec2, obstacles []steering.Circle, width, height float64, cfg config.ZombieConfig) bool {
	z.ApplyForce(z.Pursue(player).Scale(cfg.PursueWeight))
	z.ApplyForce(z.Separation(peers, cfg.SeparationRadius).Scale(cfg.SeparationWeight))
	z.ApplyForce(z.AvoidObstacles(obstacles).Scale(cfg.AvoidWeight))
	z.ApplyForce(z.Boundaries(cfg.BoundaryMargin, width, height).Scale(cfg.BoundaryWeight))
	z.Integrate()

	z.decayTimer++
	if z.decayTimer > cfg.DecayTicks {
		z.decayTimer = 0
		return true
	}
	return false
}

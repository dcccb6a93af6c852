package riff

import (
	"math"

	"github.com/vovakirdan/riffrun/internal/config"
	"github.com/vovakirdan/riffrun/internal/steering"
)

// Player is the controlled agent. It steers itself from the pointer, nearby
// threats and notes, and keeps the combo, dash and power bookkeeping.
type Player struct {
	steering.Agent
	cfg config.PlayerConfig

	Notes      int
	Score      int
	Combo      float64
	MaxCombo   float64
	ComboTimer int

	DashReady    bool
	DashCooldown int

	Shield      bool
	ShieldTimer int
	SlowMo      bool
	SlowMoTimer int

	trail []steering.Vec2
}

// NewPlayer creates a player at pos with combo 1 and dash available.
func NewPlayer(pos steering.Vec2, cfg config.PlayerConfig) *Player {
	a := steering.NewAgent(pos)
	a.MaxSpeed = cfg.MaxSpeed
	a.MaxForce = cfg.MaxForce
	a.Radius = cfg.Radius
	return &Player{
		Agent:     a,
		cfg:       cfg,
		Combo:     1,
		MaxCombo:  1,
		DashReady: true,
		trail:     make([]steering.Vec2, 0, max(cfg.TrailLength, 0)+1),
	}
}

// ApplyBehaviors runs one tick of player motion:
//   - flee every threat within ThreatRadius, weighted higher when closer
//   - seek the nearest note while fewer than SeekMaxThreats threats are close
//   - arrive at the pointer, avoid obstacles, stay inside the arena
//   - the first zone containing the player overrides its max speed
//
// It integrates once, records the trail and advances all timers.
func (p *Player) ApplyBehaviors(pointer steering.Vec2, threats, notes []steering.Vec2, obstacles []steering.Circle, zones []Zone, width, height float64) {
	cfg := p.cfg

	danger := 0
	var flee steering.Vec2
	for _, t := range threats {
		d := p.Pos.Dist(t)
		if d >= cfg.ThreatRadius {
			continue
		}
		danger++
		w := steering.Remap(d, 0, cfg.ThreatRadius, cfg.FleeWeightNear, cfg.FleeWeightFar)
		flee = flee.Add(p.Flee(t).Scale(w))
	}

	var seek steering.Vec2
	if danger < cfg.SeekMaxThreats {
		if i, _, ok := steering.Nearest(p.Pos, notes, identity); ok {
			seek = p.Seek(notes[i]).Scale(cfg.SeekWeight)
		}
	}

	p.ApplyForce(flee)
	p.ApplyForce(seek)
	p.ApplyForce(p.Arrive(pointer, cfg.ArriveRadius).Scale(cfg.ArriveWeight))
	p.ApplyForce(p.AvoidObstacles(obstacles).Scale(cfg.AvoidWeight))
	p.ApplyForce(p.Boundaries(cfg.BoundaryMargin, width, height).Scale(cfg.BoundaryWeight))

	p.MaxSpeed = p.zoneSpeed(zones)
	p.Integrate()

	keep := max(cfg.TrailLength, 0)
	p.trail = append(p.trail, p.Pos)
	if len(p.trail) > keep {
		p.trail = append(p.trail[:0], p.trail[len(p.trail)-keep:]...)
	}

	p.UpdateTimers()
}

func identity(v steering.Vec2) steering.Vec2 { return v }

// zoneSpeed returns the speed cap for the current position. Only the first
// containing zone counts; outside every zone the nominal speed applies.
func (p *Player) zoneSpeed(zones []Zone) float64 {
	for _, z := range zones {
		if !z.Contains(p.Pos) {
			continue
		}
		if z.Kind == ZoneBoost {
			return p.cfg.BoostSpeed
		}
		return p.cfg.PenaltySpeed
	}
	return p.cfg.MaxSpeed
}

// CollectNote bumps the combo, restarts its hold timer and returns the
// points awarded: floor(NotePoints * combo).
func (p *Player) CollectNote() int {
	p.Notes++
	p.Combo = math.Min(p.Combo+p.cfg.ComboStep, p.cfg.ComboMax)
	p.MaxCombo = math.Max(p.MaxCombo, p.Combo)
	p.ComboTimer = p.cfg.ComboHoldTicks

	points := int(math.Floor(float64(p.cfg.NotePoints) * p.Combo))
	p.Score += points
	return points
}

// ActivatePower applies a power source effect and its score bonus.
func (p *Player) ActivatePower(kind PowerKind) {
	switch kind {
	case PowerDash:
		p.DashReady = true
		p.DashCooldown = 0
	case PowerShield:
		p.Shield = true
		p.ShieldTimer = p.cfg.ShieldTicks
	case PowerSlowMo:
		p.SlowMo = true
		p.SlowMoTimer = p.cfg.SlowMoTicks
	}
	p.Score += p.cfg.PowerPoints
}

// CanDash reports whether a dash would fire now.
func (p *Player) CanDash() bool {
	return p.DashReady && p.DashCooldown == 0
}

// Dash teleports the player toward pointer by at most DashDistance and
// starts the cooldown. It does nothing while cooling down.
func (p *Player) Dash(pointer steering.Vec2) bool {
	if !p.CanDash() {
		return false
	}
	p.Pos = p.Pos.Add(pointer.Sub(p.Pos).Limit(p.cfg.DashDistance))
	p.DashCooldown = p.cfg.DashCooldown
	p.DashReady = p.DashCooldown == 0
	return true
}

// UpdateTimers advances combo decay, dash cooldown and power timers by one
// tick. Timers never go below zero.
func (p *Player) UpdateTimers() {
	if p.ComboTimer > 0 {
		p.ComboTimer--
	} else {
		p.Combo = math.Max(1, p.Combo-p.cfg.ComboDecay)
	}

	if p.DashCooldown > 0 {
		p.DashCooldown--
	}
	if p.DashCooldown == 0 {
		p.DashReady = true
	}

	if p.ShieldTimer > 0 {
		p.ShieldTimer--
	}
	p.Shield = p.ShieldTimer > 0

	if p.SlowMoTimer > 0 {
		p.SlowMoTimer--
	}
	p.SlowMo = p.SlowMoTimer > 0
}

// Trail returns a copy of the recent positions, oldest first.
func (p *Player) Trail() []steering.Vec2 {
	out := make([]steering.Vec2, len(p.trail))
	copy(out, p.trail)
	return out
}

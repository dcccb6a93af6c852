package riff

import (
	"fmt"
	"slices"

	"github.com/vovakirdan/riffrun/internal/core"
	"github.com/vovakirdan/riffrun/internal/steering"
)

// HUD is a read-only view of the values a display shows every tick.
type HUD struct {
	Score   int
	Notes   int
	Target  int // 0 when the session has no collection target
	Combo   string
	Seconds int
	Level   float64 // difficulty multiplier

	DashReady bool
	Shield    bool
	SlowMo    bool

	Outcome Outcome
}

// PowerFlags returns the active power labels in a stable order.
func (h HUD) PowerFlags() []string {
	var flags []string
	if h.DashReady {
		flags = append(flags, "DASH")
	}
	if h.Shield {
		flags = append(flags, "SHIELD")
	}
	if h.SlowMo {
		flags = append(flags, "SLOW")
	}
	return flags
}

// HUD returns the current display snapshot.
func (w *World) HUD() HUD {
	p := w.Player
	return HUD{
		Score:     p.Score,
		Notes:     p.Notes,
		Target:    w.Target(),
		Combo:     formatCombo(p.Combo),
		Seconds:   int(w.elapsed),
		Level:     w.multiplier,
		DashReady: p.CanDash(),
		Shield:    p.Shield,
		SlowMo:    p.SlowMo,
		Outcome:   w.outcome,
	}
}

// Frame is a copy of everything a renderer draws. Mutating it does not
// affect the simulation.
type Frame struct {
	Zones     []Zone
	Obstacles []Obstacle
	Notes     []Note
	PowerUps  []PowerUp
	Zombies   []Zombie
	Particles []Particle

	Player steering.Vec2
	Trail  []steering.Vec2
	Shield bool

	HUD   HUD
	Stats core.SessionStats
}

// Frame returns a render snapshot of the current tick.
func (w *World) Frame() Frame {
	return Frame{
		Zones:     slices.Clone(w.Zones),
		Obstacles: slices.Clone(w.Obstacles),
		Notes:     slices.Clone(w.Notes),
		PowerUps:  slices.Clone(w.PowerUps),
		Zombies:   slices.Clone(w.Zombies),
		Particles: slices.Clone(w.Particles),
		Player:    w.Player.Pos,
		Trail:     w.Player.Trail(),
		Shield:    w.Player.Shield,
		HUD:       w.HUD(),
		Stats:     w.Stats(),
	}
}

func formatCombo(c float64) string {
	return fmt.Sprintf("x%.1f", c)
}

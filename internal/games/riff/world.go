package riff

import (
	"math"
	"slices"

	"github.com/vovakirdan/riffrun/internal/config"
	"github.com/vovakirdan/riffrun/internal/core"
	"github.com/vovakirdan/riffrun/internal/steering"
)

// Outcome is the state of a session.
type Outcome int

const (
	Playing Outcome = iota
	Won
	Lost
)

// String returns the outcome label.
func (o Outcome) String() string {
	switch o {
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "playing"
	}
}

// Burst sizes.
const (
	noteBurst  = 15
	powerBurst = 20
	dashBurst  = 20
)

// TickInput is everything the host provides for one tick.
type TickInput struct {
	Pointer steering.Vec2
	Dash    bool
	Elapsed float64 // session seconds, monotonic
	Width   float64 // current arena size
	Height  float64
}

// TickEvents summarizes what happened during one tick.
type TickEvents struct {
	Collected int
	Powers    int
	Spawned   int  // zombies spawned
	Dashed    bool
	Ended     bool // the session ended on this tick
}

// World owns every entity of a session and advances them one tick at a time.
// It is not safe for concurrent use; hosts serialize Tick calls.
type World struct {
	cfg     config.RiffConfig
	rng     *core.RNG
	ramp    *config.DifficultyRamp
	endless bool

	width, height float64

	Player    *Player
	Zombies   []Zombie
	Notes     []Note
	PowerUps  []PowerUp
	Obstacles []Obstacle
	Zones     []Zone
	Particles []Particle

	obstacleBodies []steering.Circle

	ticks      int
	spawnTimer int
	elapsed    float64
	multiplier float64
	outcome    Outcome
}

// NewWorld lays out a fresh arena of the given size: player at the center,
// obstacles, zones, the note floor and the initial zombies.
// An endless world has no collection target.
func NewWorld(cfg config.RiffConfig, seed int64, width, height float64, endless bool) *World {
	w := &World{
		cfg:        cfg,
		rng:        core.NewRNG(seed),
		ramp:       config.NewDifficultyRamp(cfg.Difficulty),
		endless:    endless,
		width:      width,
		height:     height,
		multiplier: 1,
	}
	w.Player = NewPlayer(steering.V(width/2, height/2), cfg.Player)
	w.layoutArena()
	for len(w.Notes) < cfg.Notes.MinCount {
		w.spawnNote()
	}
	for range cfg.Zombies.Initial {
		w.spawnZombie()
	}
	return w
}

// Tick advances the session by one frame. The phases run in a fixed order:
// difficulty and spawning, notes, power sources, zombies, player, particles.
// Once the session has ended Tick does nothing.
func (w *World) Tick(in TickInput) TickEvents {
	var ev TickEvents
	if w.outcome != Playing {
		return ev
	}

	if in.Width > 0 && in.Height > 0 {
		w.width, w.height = in.Width, in.Height
	}
	w.ticks++

	// Difficulty ramp and hazard spawns
	w.elapsed = math.Max(w.elapsed, in.Elapsed)
	w.multiplier = w.ramp.Multiplier(w.elapsed)
	w.spawnTimer++
	if float64(w.spawnTimer) > w.ramp.SpawnInterval(w.elapsed) {
		w.spawnZombie()
		w.spawnTimer = 0
		ev.Spawned++
	}

	for len(w.Notes) < w.cfg.Notes.MinCount {
		w.spawnNote()
	}
	if w.rng.Float64() < w.cfg.PowerUps.SpawnChance && len(w.PowerUps) < w.cfg.PowerUps.MaxActive {
		w.spawnPowerUp()
	}

	p := w.Player
	body := p.Body()

	// Notes
	for i := len(w.Notes) - 1; i >= 0; i-- {
		n := w.Notes[i]
		if !body.Overlaps(n.Body()) {
			continue
		}
		p.CollectNote()
		w.burst(n.Pos, noteBurst, ParticleNote)
		w.Notes = slices.Delete(w.Notes, i, i+1)
		ev.Collected++

		if target := w.cfg.Session.TargetNotes; !w.endless && target > 0 && p.Notes >= target {
			return w.end(Won, ev)
		}
	}

	// Power sources
	for i := len(w.PowerUps) - 1; i >= 0; i-- {
		pu := &w.PowerUps[i]
		pu.ApplyBehaviors(w.obstacleBodies, w.width, w.height, w.rng, w.cfg.PowerUps)
		if !body.Overlaps(pu.Body()) {
			continue
		}
		p.ActivatePower(pu.Kind)
		w.burst(pu.Pos, powerBurst, powerParticle(pu.Kind))
		w.PowerUps = slices.Delete(w.PowerUps, i, i+1)
		ev.Powers++
	}

	// Zombies see each other as they were at the start of this phase
	peers := make([]steering.Vec2, len(w.Zombies))
	for i := range w.Zombies {
		peers[i] = w.Zombies[i].Pos
	}
	factor := 1.0
	if p.SlowMo {
		factor = w.cfg.Session.SlowMoFactor
	}
	for i := len(w.Zombies) - 1; i >= 0; i-- {
		z := &w.Zombies[i]
		var emit bool
		z.WithMaxSpeed(z.MaxSpeed*factor, func() {
			emit = z.ApplyBehaviors(p.Agent, peers, w.obstacleBodies, w.width, w.height, w.cfg.Zombies)
		})
		if emit {
			jitter := steering.V(w.rng.Range(-5, 5), w.rng.Range(-5, 5))
			w.Particles = append(w.Particles, newParticle(z.Pos.Add(jitter), ParticleDecay, w.rng))
		}
		if !p.Shield && body.Overlaps(z.Body()) {
			return w.end(Lost, ev)
		}
	}

	// Player
	if in.Dash && p.Dash(in.Pointer) {
		w.burst(p.Pos, dashBurst, ParticleDash)
		ev.Dashed = true
	}
	threats := make([]steering.Vec2, len(w.Zombies))
	for i := range w.Zombies {
		threats[i] = w.Zombies[i].Pos
	}
	notes := make([]steering.Vec2, len(w.Notes))
	for i := range w.Notes {
		notes[i] = w.Notes[i].Pos
	}
	p.ApplyBehaviors(in.Pointer, threats, notes, w.obstacleBodies, w.Zones, w.width, w.height)

	w.updateParticles()
	return ev
}

// UpdateParticles advances and prunes particles without touching the
// simulation. Hosts call it after the session ends so bursts can settle.
func (w *World) UpdateParticles() {
	w.updateParticles()
}

func (w *World) updateParticles() {
	for i := len(w.Particles) - 1; i >= 0; i-- {
		w.Particles[i].Update()
		if w.Particles[i].Dead() {
			w.Particles = slices.Delete(w.Particles, i, i+1)
		}
	}
}

func (w *World) end(o Outcome, ev TickEvents) TickEvents {
	w.outcome = o
	ev.Ended = true
	return ev
}

func (w *World) burst(at steering.Vec2, n int, kind ParticleKind) {
	for range n {
		w.Particles = append(w.Particles, newParticle(at, kind, w.rng))
	}
}

// Outcome returns the session state.
func (w *World) Outcome() Outcome {
	return w.outcome
}

// Size returns the arena dimensions used by the last tick.
func (w *World) Size() (width, height float64) {
	return w.width, w.height
}

// Ticks returns the number of ticks processed while playing.
func (w *World) Ticks() int {
	return w.ticks
}

// Elapsed returns the session time in seconds as of the last tick.
func (w *World) Elapsed() float64 {
	return w.elapsed
}

// Multiplier returns the difficulty multiplier as of the last tick.
func (w *World) Multiplier() float64 {
	return w.multiplier
}

// Target returns the number of notes needed to win, or 0 if there is none.
func (w *World) Target() int {
	if w.endless {
		return 0
	}
	return w.cfg.Session.TargetNotes
}

// Stats returns the final session figures.
func (w *World) Stats() core.SessionStats {
	return core.SessionStats{
		Notes:    w.Player.Notes,
		Score:    w.Player.Score,
		Seconds:  int(w.elapsed),
		MaxCombo: core.RoundCombo(w.Player.MaxCombo),
	}
}

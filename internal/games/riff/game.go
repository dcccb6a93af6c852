// Package riff implements the riffrun session: the player collects notes in
// an arena of obstacles and speed zones while zombies pursue it. Every mobile
// entity moves through the steering package; World is the simulation clock
// and Game adapts it to the platform's fixed-tick game interface.
package riff

import (
	"time"

	"github.com/vovakirdan/riffrun/internal/config"
	"github.com/vovakirdan/riffrun/internal/core"
	"github.com/vovakirdan/riffrun/internal/registry"
	"github.com/vovakirdan/riffrun/internal/steering"
)

// Game IDs registered by this package.
const (
	IDCampaign = "riff"
	IDEndless  = "riff_endless"
)

// Game adapts World to registry.Game. It maps terminal cells to arena units,
// tracks the pointer cell and measures elapsed time excluding pauses.
type Game struct {
	id      string
	endless bool
	cfg     config.RiffConfig

	world    *World
	runtime  core.RuntimeConfig
	viewport core.Viewport

	pointer core.Pointer

	now         func() time.Time
	started     time.Time
	pausedAt    time.Time
	pausedTotal time.Duration
	paused      bool
}

// New creates a campaign game with the default configuration.
func New() *Game {
	return newGame(IDCampaign, false)
}

// NewEndless creates a game without a collection target.
func NewEndless() *Game {
	return newGame(IDEndless, true)
}

func newGame(id string, endless bool) *Game {
	return &Game{
		id:       id,
		endless:  endless,
		cfg:      config.DefaultRiffConfig(),
		viewport: core.DefaultViewport(),
		now:      time.Now,
	}
}

// Configure replaces the configuration used by the next Reset.
func (g *Game) Configure(cfg config.RiffConfig) {
	g.cfg = cfg
}

// SetClock replaces the time source. Intended for tests and headless runs.
func (g *Game) SetClock(now func() time.Time) {
	g.now = now
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.endless {
		return "Riff Run (Endless)"
	}
	return "Riff Run"
}

// Reset starts a new session sized to the screen.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	w, h := g.viewport.ArenaSize(cfg.ScreenW, cfg.ScreenH)
	g.world = NewWorld(g.cfg, cfg.Seed, w, h, g.endless)
	g.pointer = core.Pointer{X: cfg.ScreenW / 2, Y: cfg.ScreenH / 2}
	g.started = g.now()
	g.pausedTotal = 0
	g.paused = false
}

// Resize updates the screen size. The session continues; the arena bounds
// follow the new size from the next tick on.
func (g *Game) Resize(screenW, screenH int) {
	g.runtime.ScreenW = screenW
	g.runtime.ScreenH = screenH
	g.pointer.X = core.Clamp(g.pointer.X, 0, max(0, screenW-1))
	g.pointer.Y = core.Clamp(g.pointer.Y, g.viewport.OffsetRow, max(g.viewport.OffsetRow, screenH-1))
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.world.Outcome() != Playing {
		g.world.UpdateParticles()
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.togglePause()
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.movePointer(in)

	arenaW, arenaH := g.viewport.ArenaSize(g.runtime.ScreenW, g.runtime.ScreenH)
	px, py := g.viewport.ToArena(g.pointer.X, g.pointer.Y)
	ev := g.world.Tick(TickInput{
		Pointer: steering.V(px, py),
		Dash:    in.Has(core.ActionDash),
		Elapsed: g.elapsed().Seconds(),
		Width:   arenaW,
		Height:  arenaH,
	})

	return core.StepResult{
		State:     g.State(),
		Collected: ev.Collected,
		Ended:     ev.Ended,
	}
}

func (g *Game) togglePause() {
	if g.paused {
		g.pausedTotal += g.now().Sub(g.pausedAt)
		g.paused = false
		return
	}
	g.pausedAt = g.now()
	g.paused = true
}

// movePointer applies mouse position and arrow nudges to the pointer cell.
func (g *Game) movePointer(in core.InputFrame) {
	if in.HasPointer {
		g.pointer = in.Pointer
	}
	if in.Has(core.ActionLeft) {
		g.pointer.X -= 2
	}
	if in.Has(core.ActionRight) {
		g.pointer.X += 2
	}
	if in.Has(core.ActionUp) {
		g.pointer.Y--
	}
	if in.Has(core.ActionDown) {
		g.pointer.Y++
	}
	g.Resize(g.runtime.ScreenW, g.runtime.ScreenH)
}

// elapsed returns session time with paused spans removed.
func (g *Game) elapsed() time.Duration {
	d := g.now().Sub(g.started) - g.pausedTotal
	if d < 0 {
		return 0
	}
	return d
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	o := g.world.Outcome()
	return core.GameState{
		Score:    g.world.Player.Score,
		GameOver: o != Playing,
		Won:      o == Won,
		Paused:   g.paused,
	}
}

// Session returns the session figures. They are final once the game is over.
func (g *Game) Session() core.SessionStats {
	return g.world.Stats()
}

// Frame returns a copy of what the renderer draws this tick.
func (g *Game) Frame() Frame {
	return g.world.Frame()
}

// Pointer returns the current pointer cell.
func (g *Game) Pointer() core.Pointer {
	return g.pointer
}

// Register the game with the registry
func init() {
	registry.Register(IDCampaign, func() registry.Game {
		return New()
	})
	registry.Register(IDEndless, func() registry.Game {
		return NewEndless()
	})
}

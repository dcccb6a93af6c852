package riff

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/riffrun/internal/core"
	"github.com/vovakirdan/riffrun/internal/steering"
)

// Glyphs used by the terminal renderer.
const (
	glyphZoneBoost   = '░'
	glyphZonePenalty = '▒'
	glyphTree        = '♣'
	glyphRock        = '●'
	glyphNote        = '♪'
	glyphZombie      = 'Z'
	glyphPlayer      = '@'
	glyphTrail       = '·'
	glyphPointer     = '+'
	glyphParticle    = '*'
	glyphFading      = '.'
)

var noteGlyphs = [...]rune{'♪', '♫', '♬'}

var powerGlyphs = map[PowerKind]rune{
	PowerDash:   '⚡',
	PowerShield: '♥',
	PowerSlowMo: '◷',
}

var powerColors = map[PowerKind]core.Color{
	PowerDash:   core.ColorBrightYellow,
	PowerShield: core.ColorBrightRed,
	PowerSlowMo: core.ColorBrightMagenta,
}

var particleColors = map[ParticleKind]core.Color{
	ParticleNote:   core.ColorMagenta,
	ParticleDash:   core.ColorYellow,
	ParticleShield: core.ColorRed,
	ParticleSlowMo: core.ColorBrightMagenta,
	ParticleDecay:  core.ColorGreen,
}

// Render draws the arena, the entities, the HUD row and the end banner.
func (g *Game) Render(dst *core.Screen) {
	f := g.world.Frame()
	v := g.viewport

	disc := func(pos steering.Vec2, radius float64, r rune, c core.Color) {
		col, row := v.ToCell(pos.X, pos.Y)
		dst.DrawDisc(col, row, radius/v.UnitsPerCol, radius/v.UnitsPerRow, r, c)
	}
	dot := func(pos steering.Vec2, r rune, c core.Color) {
		col, row := v.ToCell(pos.X, pos.Y)
		if row < v.OffsetRow {
			return
		}
		dst.SetColored(col, row, r, c)
	}

	for _, z := range f.Zones {
		if z.Kind == ZoneBoost {
			disc(z.Pos, z.Radius, glyphZoneBoost, core.ColorCyan)
		} else {
			disc(z.Pos, z.Radius, glyphZonePenalty, core.ColorOrange)
		}
	}

	for _, o := range f.Obstacles {
		if o.Kind == ObstacleRock {
			disc(o.Pos, o.Radius, glyphRock, core.ColorGray)
		} else {
			disc(o.Pos, o.Radius, glyphTree, core.ColorGreen)
		}
	}

	for _, n := range f.Notes {
		dot(n.Pos, noteGlyphs[n.Variant%len(noteGlyphs)], core.ColorBrightMagenta)
	}

	for _, p := range f.PowerUps {
		dot(p.Pos, powerGlyphs[p.Kind], powerColors[p.Kind])
	}

	for _, z := range f.Zombies {
		c := core.ColorBrightGreen
		if z.Tier == TierDangerous {
			c = core.ColorBrightRed
		}
		dot(z.Pos, glyphZombie, c)
	}

	// crosshair sits under the trail and the player
	if f.HUD.Outcome == Playing {
		dst.SetColored(g.pointer.X, g.pointer.Y, glyphPointer, core.ColorBrightWhite)
	}

	for _, t := range f.Trail {
		dot(t, glyphTrail, core.ColorOrange)
	}

	playerColor := core.ColorBrightYellow
	if f.Shield {
		playerColor = core.ColorBrightCyan
	}
	dot(f.Player, glyphPlayer, playerColor)

	for _, p := range f.Particles {
		r := glyphParticle
		if p.Life < particleLife/2 {
			r = glyphFading
		}
		dot(p.Pos, r, particleColors[p.Kind])
	}

	g.renderHUD(dst, f.HUD)

	switch {
	case f.HUD.Outcome == Won:
		g.renderBanner(dst, f.Stats, "YOU WIN!", core.ColorBrightGreen)
	case f.HUD.Outcome == Lost:
		g.renderBanner(dst, f.Stats, "GAME OVER", core.ColorBrightRed)
	case g.paused:
		g.renderBanner(dst, f.Stats, "PAUSED", core.ColorBrightYellow)
	}
}

func (g *Game) renderHUD(dst *core.Screen, h HUD) {
	notes := fmt.Sprintf("%d", h.Notes)
	if h.Target > 0 {
		notes = fmt.Sprintf("%d/%d", h.Notes, h.Target)
	}
	line := fmt.Sprintf(" SCORE %d  NOTES %s  COMBO %s  TIME %ds  LVL %.2f ", h.Score, notes, h.Combo, h.Seconds, h.Level)
	dst.FillRect(core.NewRect(0, 0, dst.Width(), 1), ' ', core.ColorDefault)
	dst.DrawTextColored(0, 0, line, core.ColorBrightWhite)

	if flags := h.PowerFlags(); len(flags) > 0 {
		text := " " + strings.Join(flags, " ") + " "
		dst.DrawTextColored(dst.Width()-len(text), 0, text, core.ColorBrightYellow)
	}
}

func (g *Game) renderBanner(dst *core.Screen, stats core.SessionStats, title string, c core.Color) {
	lines := []string{
		title,
		"",
		fmt.Sprintf("Notes %d  Score %d", stats.Notes, stats.Score),
		fmt.Sprintf("Time %ds  Max combo x%.1f", stats.Seconds, stats.MaxCombo),
	}
	if title == "PAUSED" {
		lines = []string{title, "", "P to resume"}
	} else {
		lines = append(lines, "", "R restart  Q quit")
	}

	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	box := core.CenteredRect(dst.Width(), dst.Height(), width+4, len(lines)+2)
	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, c)
	for i, l := range lines {
		x := box.X + (box.W-len([]rune(l)))/2
		dst.DrawTextColored(x, box.Y+1+i, l, c)
	}
}

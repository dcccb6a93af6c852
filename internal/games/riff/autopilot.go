package riff

import "github.com/vovakirdan/riffrun/internal/steering"

// Autopilot builds the input for a headless tick: aim at the nearest note
// (the arena center when none exist) and dash once a zombie is closer than
// dashRange. Elapsed is left for the caller to fill.
func Autopilot(w *World, dashRange float64) TickInput {
	width, height := w.Size()
	in := TickInput{
		Pointer: steering.V(width/2, height/2),
		Width:   width,
		Height:  height,
	}

	p := w.Player
	if i, _, ok := steering.Nearest(p.Pos, w.Notes, notePos); ok {
		in.Pointer = w.Notes[i].Pos
	}
	if _, d, ok := steering.Nearest(p.Pos, w.Zombies, zombiePos); ok && d < dashRange {
		in.Dash = p.CanDash()
	}
	return in
}

func notePos(n Note) steering.Vec2     { return n.Pos }
func zombiePos(z Zombie) steering.Vec2 { return z.Pos }

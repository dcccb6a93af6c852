package riff

import (
	"github.com/vovakirdan/riffrun/internal/steering"
)

// rangeIn draws uniformly from [margin, dim-margin]. Arenas too small for the
// margin collapse to their center line.
func (w *World) rangeIn(margin, dim float64) float64 {
	lo, hi := margin, dim-margin
	if hi <= lo {
		return dim / 2
	}
	return w.rng.Range(lo, hi)
}

func (w *World) randomPoint(margin float64) steering.Vec2 {
	return steering.V(w.rangeIn(margin, w.width), w.rangeIn(margin, w.height))
}

// layoutArena places the static obstacles and zones.
func (w *World) layoutArena() {
	a := w.cfg.Arena

	w.Obstacles = make([]Obstacle, 0, a.Obstacles)
	for range a.Obstacles {
		pos := w.randomPoint(a.ObstacleMargin)
		kind := ObstacleKind(w.rng.Intn(3))
		r := w.rng.Range(a.TreeRadiusMin, a.TreeRadiusMax)
		if kind == ObstacleRock {
			r = w.rng.Range(a.RockRadiusMin, a.RockRadiusMax)
		}
		w.Obstacles = append(w.Obstacles, Obstacle{Pos: pos, Radius: r, Kind: kind})
	}
	w.obstacleBodies = make([]steering.Circle, len(w.Obstacles))
	for i, o := range w.Obstacles {
		w.obstacleBodies[i] = o.Body()
	}

	w.Zones = make([]Zone, 0, a.BoostZones+a.PenaltyZones)
	for range a.BoostZones {
		w.Zones = append(w.Zones, Zone{Pos: w.randomPoint(a.ZoneMargin), Radius: a.ZoneRadius, Kind: ZoneBoost})
	}
	for range a.PenaltyZones {
		w.Zones = append(w.Zones, Zone{Pos: w.randomPoint(a.ZoneMargin), Radius: a.ZoneRadius, Kind: ZonePenalty})
	}
}

// spawnZombie places a zombie just outside a random arena edge with the
// current difficulty multiplier.
func (w *World) spawnZombie() {
	off := w.cfg.Zombies.SpawnOffset
	var pos steering.Vec2
	switch w.rng.Intn(4) {
	case 0: // top
		pos = steering.V(w.rng.Range(0, w.width), -off)
	case 1: // right
		pos = steering.V(w.width+off, w.rng.Range(0, w.height))
	case 2: // bottom
		pos = steering.V(w.rng.Range(0, w.width), w.height+off)
	default: // left
		pos = steering.V(-off, w.rng.Range(0, w.height))
	}
	w.Zombies = append(w.Zombies, newZombie(pos, w.multiplier, w.cfg.Zombies, w.rng))
}

func (w *World) spawnNote() {
	pos := w.randomPoint(w.cfg.Notes.SpawnMargin)
	w.Notes = append(w.Notes, newNote(pos, w.cfg.Notes, w.rng))
}

func (w *World) spawnPowerUp() {
	pos := w.randomPoint(w.cfg.PowerUps.SpawnMargin)
	kind := PowerKind(w.rng.Intn(3))
	w.PowerUps = append(w.PowerUps, newPowerUp(pos, kind, w.cfg.PowerUps))
}

// Package config provides YAML-based configuration loading and difficulty
// management for riffrun. Every tuning constant of the simulation lives here.
package config

import (
	"errors"
	"fmt"
)

// RiffConfig contains all configuration for a riff session.
type RiffConfig struct {
	Player     PlayerConfig  `yaml:"player"`
	Zombies    ZombieConfig  `yaml:"zombies"`
	PowerUps   PowerUpConfig `yaml:"powerups"`
	Notes      NoteConfig    `yaml:"notes"`
	Arena      ArenaConfig   `yaml:"arena"`
	Difficulty RampConfig    `yaml:"difficulty"`
	Session    SessionConfig `yaml:"session"`
}

// PlayerConfig defines the controlled agent: motion limits, behavior weights,
// combo and power timers.
type PlayerConfig struct {
	MaxSpeed     float64 `yaml:"max_speed"`
	MaxForce     float64 `yaml:"max_force"`
	Radius       float64 `yaml:"radius"`
	BoostSpeed   float64 `yaml:"boost_speed"`   // max speed inside a boost zone
	PenaltySpeed float64 `yaml:"penalty_speed"` // max speed inside a penalty zone

	ThreatRadius   float64 `yaml:"threat_radius"`
	FleeWeightNear float64 `yaml:"flee_weight_near"` // flee weight at distance 0
	FleeWeightFar  float64 `yaml:"flee_weight_far"`  // flee weight at threat_radius
	SeekMaxThreats int     `yaml:"seek_max_threats"` // seek notes only below this many threats
	SeekWeight     float64 `yaml:"seek_weight"`
	ArriveRadius   float64 `yaml:"arrive_radius"`
	ArriveWeight   float64 `yaml:"arrive_weight"`
	AvoidWeight    float64 `yaml:"avoid_weight"`
	BoundaryMargin float64 `yaml:"boundary_margin"`
	BoundaryWeight float64 `yaml:"boundary_weight"`
	TrailLength    int     `yaml:"trail_length"`

	ComboStep      float64 `yaml:"combo_step"`
	ComboMax       float64 `yaml:"combo_max"`
	ComboHoldTicks int     `yaml:"combo_hold_ticks"`
	ComboDecay     float64 `yaml:"combo_decay"`
	NotePoints     int     `yaml:"note_points"` // points per note before the combo multiplier

	DashDistance float64 `yaml:"dash_distance"`
	DashCooldown int     `yaml:"dash_cooldown"`
	ShieldTicks  int     `yaml:"shield_ticks"`
	SlowMoTicks  int     `yaml:"slowmo_ticks"`
	PowerPoints  int     `yaml:"power_points"`
}

// ZombieConfig defines pursuer spawning and steering.
type ZombieConfig struct {
	Initial            int     `yaml:"initial"`
	SpeedMin           float64 `yaml:"speed_min"`
	SpeedMax           float64 `yaml:"speed_max"`
	ForceMin           float64 `yaml:"force_min"`
	ForceMax           float64 `yaml:"force_max"`
	Radius             float64 `yaml:"radius"`
	DangerousChance    float64 `yaml:"dangerous_chance"`
	DangerousSpeedMult float64 `yaml:"dangerous_speed_mult"`
	DangerousRadius    float64 `yaml:"dangerous_radius"`
	SpawnOffset        float64 `yaml:"spawn_offset"` // distance outside the arena edge
	DecayTicks         int     `yaml:"decay_ticks"`

	PursueWeight     float64 `yaml:"pursue_weight"`
	SeparationRadius float64 `yaml:"separation_radius"`
	SeparationWeight float64 `yaml:"separation_weight"`
	AvoidWeight      float64 `yaml:"avoid_weight"`
	BoundaryMargin   float64 `yaml:"boundary_margin"`
	BoundaryWeight   float64 `yaml:"boundary_weight"`
}

// PowerUpConfig defines wandering power sources.
type PowerUpConfig struct {
	MaxSpeed       float64 `yaml:"max_speed"`
	MaxForce       float64 `yaml:"max_force"`
	Radius         float64 `yaml:"radius"`
	WanderWeight   float64 `yaml:"wander_weight"`
	AvoidWeight    float64 `yaml:"avoid_weight"`
	BoundaryMargin float64 `yaml:"boundary_margin"`
	BoundaryWeight float64 `yaml:"boundary_weight"`
	SpawnChance    float64 `yaml:"spawn_chance"` // per tick
	MaxActive      int     `yaml:"max_active"`
	SpawnMargin    float64 `yaml:"spawn_margin"`
}

// NoteConfig defines collectibles.
type NoteConfig struct {
	Radius      float64 `yaml:"radius"`
	MinCount    int     `yaml:"min_count"`
	SpawnMargin float64 `yaml:"spawn_margin"`
}

// ArenaConfig defines the static layout generated at session start.
type ArenaConfig struct {
	Obstacles      int     `yaml:"obstacles"`
	ObstacleMargin float64 `yaml:"obstacle_margin"`
	RockRadiusMin  float64 `yaml:"rock_radius_min"`
	RockRadiusMax  float64 `yaml:"rock_radius_max"`
	TreeRadiusMin  float64 `yaml:"tree_radius_min"`
	TreeRadiusMax  float64 `yaml:"tree_radius_max"`
	BoostZones     int     `yaml:"boost_zones"`
	PenaltyZones   int     `yaml:"penalty_zones"`
	ZoneRadius     float64 `yaml:"zone_radius"`
	ZoneMargin     float64 `yaml:"zone_margin"`
}

// RampConfig defines how difficulty grows with elapsed time.
type RampConfig struct {
	Enabled         bool    `yaml:"enabled"`
	SecondsPerLevel float64 `yaml:"seconds_per_level"` // +1 multiplier every N seconds
	BaseInterval    float64 `yaml:"base_interval"`     // ticks between hazard spawns at t=0
	IntervalStep    float64 `yaml:"interval_step"`     // ticks removed per elapsed second
	MinInterval     float64 `yaml:"min_interval"`
}

// SessionConfig defines termination and global modifiers.
type SessionConfig struct {
	TargetNotes  int     `yaml:"target_notes"` // 0 disables the win condition
	SlowMoFactor float64 `yaml:"slowmo_factor"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. An empty name means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// Validate reports every setting that would make the simulation degenerate.
func (c RiffConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	nonNegative := func(name string, v float64) {
		if v < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative, got %v", name, v))
		}
	}

	positive("player.max_speed", c.Player.MaxSpeed)
	positive("player.max_force", c.Player.MaxForce)
	positive("player.radius", c.Player.Radius)
	positive("player.boost_speed", c.Player.BoostSpeed)
	positive("player.penalty_speed", c.Player.PenaltySpeed)
	positive("player.threat_radius", c.Player.ThreatRadius)
	positive("player.arrive_radius", c.Player.ArriveRadius)
	positive("player.combo_max", c.Player.ComboMax)
	positive("zombies.speed_min", c.Zombies.SpeedMin)
	positive("zombies.force_min", c.Zombies.ForceMin)
	positive("zombies.radius", c.Zombies.Radius)
	positive("zombies.dangerous_radius", c.Zombies.DangerousRadius)
	positive("powerups.max_speed", c.PowerUps.MaxSpeed)
	positive("powerups.radius", c.PowerUps.Radius)
	positive("notes.radius", c.Notes.Radius)
	positive("arena.zone_radius", c.Arena.ZoneRadius)
	positive("difficulty.seconds_per_level", c.Difficulty.SecondsPerLevel)
	positive("session.slowmo_factor", c.Session.SlowMoFactor)

	nonNegative("player.trail_length", float64(c.Player.TrailLength))
	nonNegative("player.seek_max_threats", float64(c.Player.SeekMaxThreats))
	nonNegative("player.combo_step", c.Player.ComboStep)
	nonNegative("player.combo_decay", c.Player.ComboDecay)
	nonNegative("player.combo_hold_ticks", float64(c.Player.ComboHoldTicks))
	nonNegative("player.dash_distance", c.Player.DashDistance)
	nonNegative("player.dash_cooldown", float64(c.Player.DashCooldown))
	nonNegative("player.shield_ticks", float64(c.Player.ShieldTicks))
	nonNegative("player.slowmo_ticks", float64(c.Player.SlowMoTicks))

	if c.Player.ComboMax < 1 {
		errs = append(errs, fmt.Errorf("player.combo_max must be at least 1, got %v", c.Player.ComboMax))
	}
	if c.Zombies.SpeedMax < c.Zombies.SpeedMin {
		errs = append(errs, errors.New("zombies.speed_max must not be below speed_min"))
	}
	if c.Zombies.ForceMax < c.Zombies.ForceMin {
		errs = append(errs, errors.New("zombies.force_max must not be below force_min"))
	}
	if c.Notes.MinCount < 0 {
		errs = append(errs, fmt.Errorf("notes.min_count must not be negative, got %d", c.Notes.MinCount))
	}
	if c.Session.TargetNotes < 0 {
		errs = append(errs, fmt.Errorf("session.target_notes must not be negative, got %d", c.Session.TargetNotes))
	}
	if c.Difficulty.MinInterval <= 0 || c.Difficulty.MinInterval > c.Difficulty.BaseInterval {
		errs = append(errs, fmt.Errorf("difficulty.min_interval must be in (0, base_interval], got %v", c.Difficulty.MinInterval))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid riff config: %w", errors.Join(errs...))
	}
	return nil
}

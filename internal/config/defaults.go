package config

import (
	_ "embed"
)

//go:embed defaults/riff.yaml
var defaultRiffYAML []byte

// DefaultRiffConfig returns the built-in configuration.
// It mirrors defaults/riff.yaml and is used when the embedded file cannot be parsed.
func DefaultRiffConfig() RiffConfig {
	return RiffConfig{
		Player: PlayerConfig{
			MaxSpeed:       7,
			MaxForce:       0.5,
			Radius:         30,
			BoostSpeed:     10,
			PenaltySpeed:   3,
			ThreatRadius:   150,
			FleeWeightNear: 3,
			FleeWeightFar:  0.5,
			SeekMaxThreats: 2,
			SeekWeight:     1.5,
			ArriveRadius:   80,
			ArriveWeight:   2,
			AvoidWeight:    2.5,
			BoundaryMargin: 40,
			BoundaryWeight: 3,
			TrailLength:    15,
			ComboStep:      0.5,
			ComboMax:       5,
			ComboHoldTicks: 180,
			ComboDecay:     0.1,
			NotePoints:     100,
			DashDistance:   150,
			DashCooldown:   180,
			ShieldTicks:    300,
			SlowMoTicks:    240,
			PowerPoints:    500,
		},
		Zombies: ZombieConfig{
			Initial:            2,
			SpeedMin:           1.5,
			SpeedMax:           2.5,
			ForceMin:           0.15,
			ForceMax:           0.25,
			Radius:             25,
			DangerousChance:    0.15,
			DangerousSpeedMult: 1.3,
			DangerousRadius:    22,
			SpawnOffset:        50,
			DecayTicks:         15,
			PursueWeight:       1.5,
			SeparationRadius:   50,
			SeparationWeight:   2,
			AvoidWeight:        2,
			BoundaryMargin:     30,
			BoundaryWeight:     1.5,
		},
		PowerUps: PowerUpConfig{
			MaxSpeed:       1.5,
			MaxForce:       0.2,
			Radius:         20,
			WanderWeight:   1,
			AvoidWeight:    1.5,
			BoundaryMargin: 50,
			BoundaryWeight: 2,
			SpawnChance:    0.003,
			MaxActive:      3,
			SpawnMargin:    100,
		},
		Notes: NoteConfig{
			Radius:      18,
			MinCount:    10,
			SpawnMargin: 80,
		},
		Arena: ArenaConfig{
			Obstacles:      12,
			ObstacleMargin: 100,
			RockRadiusMin:  30,
			RockRadiusMax:  40,
			TreeRadiusMin:  40,
			TreeRadiusMax:  60,
			BoostZones:     4,
			PenaltyZones:   4,
			ZoneRadius:     80,
			ZoneMargin:     150,
		},
		Difficulty: RampConfig{
			Enabled:         true,
			SecondsPerLevel: 30,
			BaseInterval:    140,
			IntervalStep:    1.5,
			MinInterval:     70,
		},
		Session: SessionConfig{
			TargetNotes:  30,
			SlowMoFactor: 0.3,
		},
	}
}

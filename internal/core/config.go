package core

import "math"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the session has ended (won or lost)
	Won      bool // Set together with GameOver when the collection target was reached
	Paused   bool // Whether the game is paused
}

// Outcome returns a short label for the session result.
func (s GameState) Outcome() string {
	switch {
	case s.Won:
		return "won"
	case s.GameOver:
		return "lost"
	default:
		return "playing"
	}
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State GameState

	// Collected is the number of notes picked up during this tick.
	Collected int
	// Ended is true only on the tick the session transitioned to game over.
	Ended bool
}

// SessionStats are the final figures of a finished session.
type SessionStats struct {
	Notes    int     // notes collected
	Score    int     // final score
	Seconds  int     // elapsed whole seconds, paused time excluded
	MaxCombo float64 // highest combo reached, one decimal place
}

// RoundCombo rounds a combo multiplier to one decimal place.
func RoundCombo(c float64) float64 {
	return math.Round(c*10) / 10
}

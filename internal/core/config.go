package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int    // Screen width in characters
	ScreenH  int    // Screen height in characters
	TickRate int    // Simulation ticks per second (default 60)
	Seed     int64  // RNG seed for deterministic gameplay
	Player   string // Name recorded with saved runs
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

// GameState represents the current state of a run.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Fruits sliced across all levels
	Level    int  // Current level, 1-based
	GameOver bool // Whether the run has ended
	Won      bool // Whether the run ended by clearing the last level
	Paused   bool // Whether the run is paused
}

// EventKind identifies something notable that happened during an update.
type EventKind int

const (
	EventHit EventKind = iota
	EventLevelUp
	EventGameOver
	EventRestart
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventHit:
		return "hit"
	case EventLevelUp:
		return "level_up"
	case EventGameOver:
		return "game_over"
	case EventRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// Event is a single notable occurrence, tagged with the level it happened on.
type Event struct {
	Kind  EventKind
	Level int
}

// StepResult is returned by Game.Update() after advancing the simulation.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether an event of the given kind occurred.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

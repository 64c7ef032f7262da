package game

import "github.com/vovakirdan/fruit-slicer/internal/core"

// Phase is the run's position in the state machine.
type Phase int

const (
	PhasePlaying Phase = iota
	PhasePaused
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// EndReason explains why a run reached PhaseGameOver.
type EndReason int

const (
	ReasonNone EndReason = iota
	ReasonTimeExpired
	ReasonMaxLevelCleared
)

// String returns the reason as stored with saved runs.
func (r EndReason) String() string {
	switch r {
	case ReasonTimeExpired:
		return "time_expired"
	case ReasonMaxLevelCleared:
		return "max_level_cleared"
	default:
		return "none"
	}
}

// Session is the scalar progress state of a run.
type Session struct {
	Level      int
	Hits       int // Hits this level
	Target     int // Hits needed to clear this level
	TimeLeft   float64
	BannerLeft float64 // Seconds the level-up banner keeps showing
	Score      int     // Hits across all levels
	Phase      Phase
	Reason     EndReason
}

// Progress returns hits/target in [0, 1].
func (s Session) Progress() float64 {
	if s.Target <= 0 {
		return 0
	}
	return core.ClampF(float64(s.Hits)/float64(s.Target), 0, 1)
}

// startLevel resets per-level state and clears the field.
func (w *World) startLevel(level int) {
	s := &w.Session
	s.Level = level
	s.Hits = 0
	s.Target = w.cfg.Target(level)
	s.TimeLeft = w.cfg.TimeBudget(level)
	s.BannerLeft = 0
	if level > 1 {
		s.BannerLeft = w.cfg.Levels.BannerSeconds
	}
	w.clearEntities()
	w.fireCooldown = 0
}

// completeLevel advances to the next level, or ends the run after the last.
func (w *World) completeLevel() core.Event {
	s := &w.Session
	if s.Level >= w.cfg.Levels.MaxLevel {
		w.end(ReasonMaxLevelCleared)
		return core.Event{Kind: core.EventGameOver, Level: s.Level}
	}
	w.startLevel(s.Level + 1)
	return core.Event{Kind: core.EventLevelUp, Level: s.Level}
}

// end enters the terminal phase.
func (w *World) end(reason EndReason) {
	w.Session.Phase = PhaseGameOver
	w.Session.Reason = reason
	w.Session.BannerLeft = 0
}

package game

import (
	"math"
	"time"

	"github.com/vovakirdan/fruit-slicer/internal/config"
	"github.com/vovakirdan/fruit-slicer/internal/core"
)

// HUDRows is the number of screen rows above the playfield.
const HUDRows = 1

// maxCatchUp bounds the simulated time a single Update may run.
const maxCatchUp = 250 * time.Millisecond

// defaultSimRate applies when the config leaves field.sim_rate unset.
const defaultSimRate = 120

// Game drives a World at a fixed step rate and maps platform input onto it.
// The step rate comes from field.sim_rate; the frame rate only decides how
// many steps each Update runs.
type Game struct {
	cfg     config.SlicerConfig
	runtime core.RuntimeConfig
	world   *World

	step     time.Duration // Fixed simulation step
	maxSteps int           // Steps one Update may run
	acc      time.Duration // Unsimulated time
	targetX  float64       // Sticky pointer target
	best     int           // Best stored score, for the HUD
}

// New creates a game with the given configuration.
func New(cfg config.SlicerConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the identifier used for score storage.
func (g *Game) ID() string {
	return "slicer"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Fruit Slicer"
}

// Config returns the game configuration.
func (g *Game) Config() config.SlicerConfig {
	return g.cfg
}

// Reset starts a fresh run at level 1.
func (g *Game) Reset(rc core.RuntimeConfig) {
	if rc.TickRate <= 0 {
		rc.TickRate = 60
	}
	g.runtime = rc

	rate := g.cfg.Field.SimRate
	if rate <= 0 {
		rate = defaultSimRate
	}
	g.step = time.Second / time.Duration(rate)
	g.maxSteps = max(int(maxCatchUp/g.step), 1)
	g.acc = 0

	w, h := fieldSize(rc.ScreenW, rc.ScreenH)
	g.world = NewWorld(&g.cfg, w, h, rc.Seed)
	g.targetX = g.world.ShipX
}

// Resize adapts the playfield to a new screen size without touching the run.
func (g *Game) Resize(screenW, screenH int) {
	g.runtime.ScreenW = screenW
	g.runtime.ScreenH = screenH
	if g.world == nil {
		return
	}
	g.world.Resize(fieldSize(screenW, screenH))
	g.targetX = g.world.clampShipX(g.targetX)
}

// fieldSize converts screen cells into playfield cells.
func fieldSize(screenW, screenH int) (int, int) {
	return screenW, screenH - HUDRows
}

// SetBest sets the best stored score shown on the HUD.
func (g *Game) SetBest(score int) {
	g.best = score
}

// Update applies input and advances the simulation by elapsed wall time
// in fixed steps.
func (g *Game) Update(elapsed time.Duration, in core.InputFrame) core.StepResult {
	var events []core.Event
	s := &g.world.Session

	if in.Has(core.ActionRestart) && s.Phase != PhasePlaying {
		g.restart()
		events = append(events, core.Event{Kind: core.EventRestart, Level: 1})
		return core.StepResult{State: g.State(), Events: events}
	}

	if in.Has(core.ActionPause) {
		g.togglePause()
	}

	g.applyPointer(in)

	if s.Phase != PhasePlaying {
		g.acc = 0
		return core.StepResult{State: g.State()}
	}

	g.acc += max(elapsed, 0)
	dt := g.step.Seconds()
	for steps := 0; g.acc >= g.step && steps < g.maxSteps; steps++ {
		events = append(events, Step(g.world, Input{TargetX: g.targetX}, dt)...)
		g.acc -= g.step
		if s.Phase != PhasePlaying {
			g.acc = 0
			break
		}
	}
	// Drop backlog the catch-up limit could not absorb
	g.acc = min(g.acc, g.step)

	return core.StepResult{State: g.State(), Events: events}
}

// applyPointer updates the ship target from pointer and key input.
// Input is ignored unless the run is playing, so the ship does not jump
// on resume.
func (g *Game) applyPointer(in core.InputFrame) {
	if g.world.Session.Phase != PhasePlaying {
		return
	}
	if in.HasPointer {
		// Centre of the pointed-at cell
		g.targetX = float64(in.PointerX) + 0.5
	}
	step := float64(g.cfg.Player.KeyStep)
	if in.Has(core.ActionLeft) {
		g.targetX -= step
	}
	if in.Has(core.ActionRight) {
		g.targetX += step
	}
	g.targetX = g.world.clampShipX(g.targetX)
}

func (g *Game) togglePause() {
	g.SetPaused(g.world.Session.Phase == PhasePlaying)
}

// SetPaused pauses or resumes the run. It has no effect after game over.
func (g *Game) SetPaused(paused bool) {
	s := &g.world.Session
	switch {
	case paused && s.Phase == PhasePlaying:
		s.Phase = PhasePaused
	case !paused && s.Phase == PhasePaused:
		s.Phase = PhasePlaying
	}
}

// restart begins a new run with a seed drawn from the previous run's RNG.
func (g *Game) restart() {
	rc := g.runtime
	rc.Seed = g.world.rng.Int63()
	g.Reset(rc)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	s := g.world.Session
	return core.GameState{
		Score:    s.Score,
		Level:    s.Level,
		GameOver: s.Phase == PhaseGameOver,
		Won:      s.Reason == ReasonMaxLevelCleared,
		Paused:   s.Phase == PhasePaused,
	}
}

// Session returns the run's progress state.
func (g *Game) Session() Session {
	return g.world.Session
}

// HUD holds display-ready progress values.
type HUD struct {
	Level    int
	MaxLevel int
	Hits     int
	Target   int
	Progress float64 // hits/target in [0, 1]
	TimeLeft int     // Whole seconds, rounded up
	Score    int
	Best     int
	Banner   string // Non-empty while the level-up banner shows
}

// HUD returns the values shown in the status row and overlays.
func (g *Game) HUD() HUD {
	s := g.world.Session
	h := HUD{
		Level:    s.Level,
		MaxLevel: g.cfg.Levels.MaxLevel,
		Hits:     s.Hits,
		Target:   s.Target,
		Progress: s.Progress(),
		TimeLeft: int(math.Ceil(s.TimeLeft)),
		Score:    s.Score,
		Best:     max(g.best, s.Score),
	}
	if s.BannerLeft > 0 && s.Phase != PhaseGameOver {
		h.Banner = levelBanner(s.Level)
	}
	return h
}

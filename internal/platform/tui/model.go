package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/fruit-slicer/internal/core"
	"github.com/vovakirdan/fruit-slicer/internal/game"
	"github.com/vovakirdan/fruit-slicer/internal/storage"
)

// footerRows is the number of rows below the game screen.
const footerRows = 1

// statusDuration is how long a status message replaces the help line.
const statusDuration = 3 * time.Second

// Game is the contract between the frame loop and a game.
// *game.Game implements it.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	Resize(screenW, screenH int)
	Update(elapsed time.Duration, in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
	SetPaused(paused bool)
	SetBest(score int)
}

// RunStore persists finished runs.
// *storage.Store implements it.
type RunStore interface {
	RunLister
	SaveRun(r storage.RunResult) (string, error)
	HighScore(player string) (int, error)
}

// Options holds the optional collaborators of a Model.
type Options struct {
	Store         RunStore    // nil disables run history
	Logger        *log.Logger // nil discards logs
	Styles        ColorStyles // nil uses the default renderer
	ScreenshotDir string      // empty disables screenshots
}

// Model is the Bubble Tea model for a single player's game.
type Model struct {
	game       Game
	screen     *core.Screen
	config     core.RuntimeConfig
	opts       Options
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	lastTick   time.Time
	playTime   time.Duration // Unpaused time in the current run
	runSaved   bool          // Whether the current run has been recorded
	quitting   bool

	board       *ScoreboardModel
	boardPaused bool // The scoreboard paused a running game

	status      string
	statusUntil time.Time
}

// NewModel creates a Bubble Tea model for the given game and starts a run.
func NewModel(g Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Styles == nil {
		opts.Styles = NewColorStyles(nil)
	}

	gameH := max(cfg.ScreenH-footerRows, 0)
	g.Reset(core.RuntimeConfig{
		ScreenW:  cfg.ScreenW,
		ScreenH:  gameH,
		TickRate: cfg.TickRate,
		Seed:     cfg.Seed,
		Player:   cfg.Player,
	})

	h := help.New()
	h.Width = cfg.ScreenW

	m := Model{
		game:       g,
		screen:     core.NewScreen(cfg.ScreenW, gameH),
		config:     cfg,
		opts:       opts,
		keys:       DefaultKeyMap(),
		help:       h,
		inputFrame: core.NewInputFrame(),
		gameState:  g.State(),
	}
	m.refreshBest()
	return m
}

// Init names the terminal window and starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle(m.game.Title()),
		tickCmd(m.config.TickRate),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.board != nil {
			return m.updateBoard(msg)
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		if x, ok := pointerX(msg); ok && m.board == nil {
			m.inputFrame.Point(x)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	switch action := m.keys.MapKey(msg); action {
	case core.ActionNone:
	case core.ActionQuit:
		return m.quit()
	case core.ActionScoreboard:
		m.openBoard()
	default:
		m.inputFrame.Set(action)
	}
	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	if !m.gameState.GameOver {
		m.saveRun("quit")
	}
	m.quitting = true
	return m, tea.Quit
}

// openBoard shows the scoreboard and pauses a running game.
// Input queued since the last tick is applied first, so a pause the user
// just pressed is not mistaken for a running game.
func (m *Model) openBoard() {
	m.flushInput()

	board := NewScoreboardModel(m.opts.Store, m.config.ScreenW, m.config.ScreenH)
	m.board = &board
	m.boardPaused = !m.gameState.Paused && !m.gameState.GameOver
	if m.boardPaused {
		m.game.SetPaused(true)
		m.gameState = m.game.State()
	}
}

// flushInput hands queued input to the game without advancing time.
func (m *Model) flushInput() {
	result := m.game.Update(0, m.inputFrame)
	m.inputFrame.Clear()
	m.gameState = result.State
	for _, e := range result.Events {
		m.handleEvent(e)
	}
}

// updateBoard forwards input to the scoreboard overlay.
func (m Model) updateBoard(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.board.Update(msg)
	board, ok := next.(ScoreboardModel)
	if !ok {
		return m, cmd
	}

	switch {
	case board.IsQuitting():
		m.board = nil
		return m.quit()
	case board.Closed():
		m.board = nil
		if m.boardPaused {
			m.game.SetPaused(false)
			m.gameState = m.game.State()
		}
		m.boardPaused = false
		return m, cmd
	}

	m.board = &board
	return m, cmd
}

// handleResize adapts the screen without restarting the run.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height

	gameH := max(msg.Height-footerRows, 0)
	m.screen.Resize(msg.Width, gameH)
	m.game.Resize(msg.Width, gameH)
	m.help.Width = msg.Width

	if m.board != nil {
		m.board.SetSize(msg.Width, msg.Height)
	}
	return m, nil
}

// handleTick advances the game by the time since the previous frame.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	now := time.Time(msg)
	elapsed := frameElapsed(m.lastTick, now, m.config.TickRate)
	m.lastTick = now

	wasRunning := !m.gameState.Paused && !m.gameState.GameOver
	result := m.game.Update(elapsed, m.inputFrame)
	m.inputFrame.Clear()
	m.gameState = result.State

	if wasRunning && !result.State.Paused {
		m.playTime += elapsed
	}
	for _, e := range result.Events {
		m.handleEvent(e)
	}

	if m.status != "" && now.After(m.statusUntil) {
		m.status = ""
	}

	return m, tickCmd(m.config.TickRate)
}

// handleEvent reacts to game events with logging and persistence.
func (m *Model) handleEvent(e core.Event) {
	logger := m.opts.Logger
	switch e.Kind {
	case core.EventLevelUp:
		logger.Debug("level up", "player", m.config.Player, "level", e.Level)

	case core.EventGameOver:
		reason := endReason(m.gameState)
		logger.Info("game over",
			"player", m.config.Player,
			"score", m.gameState.Score,
			"level", m.gameState.Level,
			"reason", reason,
		)
		m.saveRun(reason)

	case core.EventRestart:
		logger.Debug("restart", "player", m.config.Player)
		m.playTime = 0
		m.runSaved = false
		m.refreshBest()
	}
}

// endReason names how a finished run ended.
func endReason(st core.GameState) string {
	if st.Won {
		return game.ReasonMaxLevelCleared.String()
	}
	return game.ReasonTimeExpired.String()
}

// saveRun records the current run once. Runs without hits are not kept.
func (m *Model) saveRun(reason string) {
	if m.runSaved {
		return
	}
	m.runSaved = true

	st := m.game.State()
	if m.opts.Store == nil || st.Score == 0 {
		return
	}

	id, err := m.opts.Store.SaveRun(storage.RunResult{
		Player:   m.config.Player,
		Score:    st.Score,
		Level:    st.Level,
		Reason:   reason,
		Duration: m.playTime,
	})
	if err != nil {
		// Best-effort save, game continues regardless
		m.opts.Logger.Warn("could not save run", "error", err)
		return
	}
	m.opts.Logger.Info("run saved", "id", id, "player", m.config.Player, "score", st.Score)
}

// refreshBest loads the stored high score into the HUD.
func (m *Model) refreshBest() {
	if m.opts.Store == nil {
		return
	}
	best, err := m.opts.Store.HighScore("")
	if err != nil {
		m.opts.Logger.Warn("could not load high score", "error", err)
		return
	}
	m.game.SetBest(best)
}

// saveScreenshot saves the current screen to a text file.
func (m *Model) saveScreenshot() {
	if m.opts.ScreenshotDir == "" {
		m.setStatus("screenshots are disabled")
		return
	}

	m.game.Render(m.screen)

	if err := os.MkdirAll(m.opts.ScreenshotDir, 0o755); err != nil {
		m.opts.Logger.Warn("could not create screenshot directory", "error", err)
		m.setStatus("screenshot failed")
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.opts.ScreenshotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("could not save screenshot", "error", err)
		m.setStatus("screenshot failed")
		return
	}
	m.opts.Logger.Debug("screenshot saved", "path", path)
	m.setStatus("saved " + path)
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusUntil = m.lastTick.Add(statusDuration)
}

var footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.board != nil {
		return m.board.View()
	}

	m.game.Render(m.screen)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen, m.opts.Styles))
	if m.config.ScreenH > footerRows {
		footer := m.status
		if footer == "" {
			footer = m.help.View(m.keys)
		}
		b.WriteString("\n")
		b.WriteString(footerStyle.Render(footer))
	}
	return b.String()
}

// Run starts the Bubble Tea program for a local player.
func Run(g Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(g, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(), // Pointer steering without a pressed button
	)

	_, err := p.Run()
	return err
}

// DefaultScreenshotDir returns ~/.slicer/screenshots.
func DefaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".slicer", "screenshots")
}

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/vovakirdan/fruit-slicer/internal/config"
	"github.com/vovakirdan/fruit-slicer/internal/core"
)

// MenuChoice is what the player picked on the title screen.
type MenuChoice int

const (
	MenuChoiceNone MenuChoice = iota
	MenuChoicePlay
	MenuChoiceScores
	MenuChoiceQuit
)

// MenuItem is one selectable line of the title screen.
type MenuItem struct {
	Title  string
	Hint   string
	Choice MenuChoice
	Preset config.DifficultyPreset // Only set for play items
}

// DefaultMenuItems lists one play entry per difficulty, then scores and quit.
func DefaultMenuItems() []MenuItem {
	return []MenuItem{
		{Title: "Easy", Hint: "slower fruit, fewer spawns", Choice: MenuChoicePlay, Preset: config.DifficultyEasy},
		{Title: "Normal", Hint: "the standard campaign", Choice: MenuChoicePlay, Preset: config.DifficultyNormal},
		{Title: "Hard", Hint: "faster fruit, busier sky", Choice: MenuChoicePlay, Preset: config.DifficultyHard},
		{Title: "Fixed", Hint: "level 1 pace all the way", Choice: MenuChoicePlay, Preset: config.DifficultyFixed},
		{Title: "High Scores", Choice: MenuChoiceScores},
		{Title: "Quit", Choice: MenuChoiceQuit},
	}
}

// MenuKeyMap defines the key bindings for the title screen.
type MenuKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Select     key.Binding
	Scoreboard key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Scoreboard, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Select}, {k.Scoreboard, k.Quit}}
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Scoreboard: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MenuModel is the Bubble Tea model for the title screen.
type MenuModel struct {
	items  []MenuItem
	cursor int
	width  int
	height int
	best   int
	config core.RuntimeConfig
	keys   MenuKeyMap
	help   help.Model
	choice MenuChoice
}

// NewMenuModel creates a title screen with the cursor on the given preset.
func NewMenuModel(cfg core.RuntimeConfig, preset config.DifficultyPreset, best int) MenuModel {
	h := help.New()
	h.Width = cfg.ScreenW

	items := DefaultMenuItems()
	cursor := 0
	for i, item := range items {
		if item.Choice == MenuChoicePlay && item.Preset == preset {
			cursor = i
		}
	}

	return MenuModel{
		items:  items,
		cursor: cursor,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		best:   best,
		config: cfg,
		keys:   DefaultMenuKeyMap(),
		help:   h,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.choice = MenuChoiceQuit
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Select):
		m.choice = m.items[m.cursor].Choice
		return m, tea.Quit

	case key.Matches(msg, m.keys.Scoreboard):
		m.choice = MenuChoiceScores
		return m, tea.Quit
	}

	return m, nil
}

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuCursorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	menuDimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	menuFruitsDisplay = "🍎 🍊 🍋 🍉 🍇 🍓 🍒 🍑"
)

// View renders the menu.
func (m MenuModel) View() string {
	if m.choice != MenuChoiceNone {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("F R U I T   S L I C E R"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(menuFruitsDisplay, m.width))
	b.WriteString("\n\n")
	if m.best > 0 {
		b.WriteString(centerText(menuDimStyle.Render("BEST "+humanize.Comma(int64(m.best))), m.width))
		b.WriteString("\n\n")
	}

	for i, item := range m.items {
		line := "  " + item.Title
		if i == m.cursor {
			line = menuCursorStyle.Render("> " + item.Title)
			if item.Hint != "" {
				line += menuDimStyle.Render("  " + item.Hint)
			}
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(menuDimStyle.Render(m.help.View(m.keys)), m.width))
	b.WriteString("\n")

	return b.String()
}

// Choice returns what the player picked, MenuChoiceNone while undecided.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// Selected returns the highlighted item.
func (m MenuModel) Selected() MenuItem {
	return m.items[m.cursor]
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Choice MenuChoice
	Preset config.DifficultyPreset
	Config core.RuntimeConfig
}

// RunMenu runs the title screen and returns the selection result.
func RunMenu(cfg core.RuntimeConfig, preset config.DifficultyPreset, best int) (MenuResult, error) {
	model := NewMenuModel(cfg, preset, best)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Choice: MenuChoiceQuit, Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok || m.Choice() == MenuChoiceNone {
		return MenuResult{Choice: MenuChoiceQuit, Config: cfg}, nil
	}

	result := MenuResult{
		Choice: m.Choice(),
		Preset: preset,
		Config: m.Config(),
	}
	if m.Choice() == MenuChoicePlay {
		result.Preset = m.Selected().Preset
	}
	return result, nil
}

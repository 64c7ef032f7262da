package game

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/fruit-slicer/internal/config"
	"github.com/vovakirdan/fruit-slicer/internal/core"
)

const (
	progressBarWidth = 10
	progressFull     = '█'
	progressEmpty    = '░'
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	w := g.world

	// Playfield, back to front
	g.drawGlyph(dst, w.ShipX, w.ShipY(), g.shipGlyph(), core.ColorBrightWhite)
	for _, b := range w.Bullets {
		g.drawGlyph(dst, b.X, b.Y, b.Glyph, core.ColorBrightCyan)
	}
	for _, f := range w.Fruits {
		g.drawGlyph(dst, f.X, f.Y, f.Glyph, core.ColorDefault)
	}
	for _, p := range w.Particles {
		if c, ok := core.Faded(core.ColorDefault, p.Alpha); ok {
			g.drawGlyph(dst, p.X, p.Y, p.Glyph, c)
		}
	}

	hud := g.HUD()
	g.drawHUD(dst, hud)

	if hud.Banner != "" {
		row := HUDRows + int(w.Height)/3
		dst.DrawTextCenteredColor(row, hud.Banner, core.ColorBrightYellow)
	}

	s := w.Session
	switch s.Phase {
	case PhasePaused:
		g.drawCenteredMessage(dst, "PAUSED", "P to resume  |  R to restart", core.ColorBrightCyan)
	case PhaseGameOver:
		title, c := "TIME'S UP", core.ColorBrightRed
		if s.Reason == ReasonMaxLevelCleared {
			title, c = "YOU WIN!", core.ColorBrightGreen
		}
		sub := fmt.Sprintf("Level %d  Score %d  |  R to restart", s.Level, s.Score)
		g.drawCenteredMessage(dst, title, sub, c)
	}
}

// drawGlyph places an entity glyph centred on its playfield position.
func (g *Game) drawGlyph(dst *core.Screen, x, y float64, r rune, c core.Color) {
	row := HUDRows + int(math.Floor(y))
	if row < HUDRows {
		return
	}
	col := int(math.Floor(x))
	if core.TextWidth(string(r)) == 2 {
		col--
	}
	dst.SetColor(col, row, r, c)
}

func (g *Game) shipGlyph() rune {
	return config.Glyph(g.cfg.Player.Glyph)
}

// drawHUD writes the status row.
func (g *Game) drawHUD(dst *core.Screen, h HUD) {
	dst.DrawHLine(0, 0, dst.Width(), ' ', core.ColorDefault)

	x := 1
	put := func(text string, c core.Color) {
		dst.DrawTextColor(x, 0, text, c)
		x += core.TextWidth(text)
	}

	put(fmt.Sprintf("LEVEL %d/%d", h.Level, h.MaxLevel), core.ColorBrightYellow)
	put(fmt.Sprintf("  HITS %d/%d ", h.Hits, h.Target), core.ColorWhite)
	put(progressBar(h.Progress, progressBarWidth), core.ColorGreen)

	timeColor := core.ColorWhite
	if h.TimeLeft <= 10 {
		timeColor = core.ColorBrightRed
	}
	put(fmt.Sprintf("  TIME %d", h.TimeLeft), timeColor)
	put(fmt.Sprintf("  SCORE %d", h.Score), core.ColorBrightWhite)
	put(fmt.Sprintf("  BEST %d", h.Best), core.ColorGray)
}

// progressBar renders frac in [0, 1] as a bar of the given width.
func progressBar(frac float64, width int) string {
	filled := core.Clamp(int(math.Round(frac*float64(width))), 0, width)
	return strings.Repeat(string(progressFull), filled) +
		strings.Repeat(string(progressEmpty), width-filled)
}

func levelBanner(level int) string {
	return fmt.Sprintf("LEVEL %d", level)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string, c core.Color) {
	boxW := max(core.TextWidth(title), core.TextWidth(subtitle)) + 4
	box := core.CenteredRect(dst.Width(), dst.Height(), boxW, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, c)

	titleX := box.X + (box.W-core.TextWidth(title))/2
	dst.DrawTextColor(titleX, box.Y+1, title, c)

	subtitleX := box.X + (box.W-core.TextWidth(subtitle))/2
	dst.DrawText(subtitleX, box.Y+3, subtitle)
}

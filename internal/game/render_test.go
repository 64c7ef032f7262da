package game

import (
	"strings"
	"testing"

	"github.com/vovakirdan/fruit-slicer/internal/core"
)

func TestGameRender(t *testing.T) {
	g := newTestGame(42)
	screen := core.NewScreen(80, 24)

	g.Render(screen)

	hud := screen.Row(0)
	for _, want := range []string{"LEVEL 1/50", "HITS 0/10", "TIME 35", "SCORE 0", "BEST 0"} {
		if !strings.Contains(hud, want) {
			t.Errorf("HUD row missing %q: %q", want, hud)
		}
	}

	// Ship is centred on the last row, its wide glyph starting one column left
	if got := screen.GetCell(39, 23).Rune; got != '🚀' {
		t.Errorf("Expected ship at (39, 23), got %q", got)
	}
}

func TestRenderEntities(t *testing.T) {
	g := newTestGame(1)
	g.world.Fruits = append(g.world.Fruits, Fruit{X: 20.5, Y: 4.2, Size: 2, Glyph: '🍉'})
	g.world.Bullets = append(g.world.Bullets, Bullet{X: 60.5, Y: 10, Size: 1, Glyph: '🔪'})
	g.world.Particles = append(g.world.Particles,
		Particle{X: 5, Y: 8, Alpha: 0.9, Glyph: '🍋'},
		Particle{X: 70, Y: 8, Alpha: 0.1, Glyph: '🍋'},
	)
	screen := core.NewScreen(80, 24)

	g.Render(screen)

	if got := screen.GetCell(19, 5).Rune; got != '🍉' {
		t.Errorf("Expected fruit at (19, 5), got %q", got)
	}
	if got := screen.GetCell(59, 11).Rune; got != '🔪' {
		t.Errorf("Expected bullet at (59, 11), got %q", got)
	}
	if got := screen.GetCell(4, 9).Rune; got != '🍋' {
		t.Errorf("Expected visible particle at (4, 9), got %q", got)
	}
	if got := screen.GetCell(69, 9).Rune; got != ' ' {
		t.Errorf("Faint particle should not be drawn, got %q", got)
	}
}

func TestRenderSkipsAboveField(t *testing.T) {
	g := newTestGame(1)
	g.world.Fruits = append(g.world.Fruits, Fruit{X: 6, Y: -0.5, Size: 2, Glyph: '🍉'})
	screen := core.NewScreen(80, 24)

	g.Render(screen)

	if strings.ContainsRune(screen.Row(0), '🍉') {
		t.Error("Fruit above the field should not overwrite the HUD")
	}
}

func TestRenderOverlays(t *testing.T) {
	tests := []struct {
		name  string
		setup func(g *Game)
		want  string
	}{
		{"paused", func(g *Game) { g.world.Session.Phase = PhasePaused }, "PAUSED"},
		{"time up", func(g *Game) { g.world.end(ReasonTimeExpired) }, "TIME'S UP"},
		{"victory", func(g *Game) { g.world.end(ReasonMaxLevelCleared) }, "YOU WIN!"},
		{"banner", func(g *Game) { g.world.startLevel(2) }, "LEVEL 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(1)
			tt.setup(g)
			screen := core.NewScreen(80, 24)

			g.Render(screen)

			// Skip the HUD row, which always shows the level
			body := strings.SplitN(screen.String(), "\n", 2)[1]
			if !strings.Contains(body, tt.want) {
				t.Errorf("Expected %q on screen:\n%s", tt.want, screen.String())
			}
		})
	}
}

func TestProgressBar(t *testing.T) {
	tests := []struct {
		frac float64
		want string
	}{
		{0, "░░░░░"},
		{0.4, "██░░░"},
		{1, "█████"},
		{1.5, "█████"},
		{-1, "░░░░░"},
	}

	for _, tt := range tests {
		if got := progressBar(tt.frac, 5); got != tt.want {
			t.Errorf("progressBar(%v) = %q, expected %q", tt.frac, got, tt.want)
		}
	}
}

package game

// Snapshot captures the game state for determinism testing and screenshots.
type Snapshot struct {
	Tick      uint64
	Level     int
	Hits      int
	Target    int
	Score     int
	TimeLeft  float64
	ShipX     float64
	Bullets   int
	Fruits    int
	Particles int
	Phase     string
	Reason    string
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	w := g.world
	s := w.Session
	return Snapshot{
		Tick:      w.Tick,
		Level:     s.Level,
		Hits:      s.Hits,
		Target:    s.Target,
		Score:     s.Score,
		TimeLeft:  s.TimeLeft,
		ShipX:     w.ShipX,
		Bullets:   len(w.Bullets),
		Fruits:    len(w.Fruits),
		Particles: len(w.Particles),
		Phase:     s.Phase.String(),
		Reason:    s.Reason.String(),
	}
}

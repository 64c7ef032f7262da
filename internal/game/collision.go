package game

import "github.com/vovakirdan/fruit-slicer/internal/core"

// HitRadius returns the center distance below which a bullet slices a fruit.
func HitRadius(b Bullet, f Fruit) float64 {
	return f.Size/2.2 + b.Size/3
}

// Collides reports whether b and f overlap. Vertical distance is scaled by
// the cell aspect so the test is round on screen.
func Collides(b Bullet, f Fruit, aspect float64) bool {
	return core.Dist(b.X, b.Y, f.X, f.Y, aspect) < HitRadius(b, f)
}

// resolveCollisions tests every bullet against every fruit.
// Each fruit and each bullet takes part in at most one hit. Hit entities are
// marked during the scan and filtered out afterwards. Reaching the level
// target stops the scan; that last slice is spawned after the level change
// so the new level's clear does not remove it.
func (w *World) resolveCollisions() []core.Event {
	if len(w.Bullets) == 0 || len(w.Fruits) == 0 {
		return nil
	}

	s := &w.Session
	aspect := w.cfg.Field.CellAspect
	bulletHit := make([]bool, len(w.Bullets))
	fruitHit := make([]bool, len(w.Fruits))
	var events []core.Event
	var last *Fruit

scan:
	for bi := range w.Bullets {
		for fi := range w.Fruits {
			if fruitHit[fi] || !Collides(w.Bullets[bi], w.Fruits[fi], aspect) {
				continue
			}

			bulletHit[bi] = true
			fruitHit[fi] = true
			s.Hits++
			s.Score++
			events = append(events, core.Event{Kind: core.EventHit, Level: s.Level})

			if s.Hits >= s.Target {
				f := w.Fruits[fi]
				last = &f
				break scan
			}
			w.spawnSlice(w.Fruits[fi])
			break
		}
	}

	w.Bullets = filterBullets(w.Bullets, bulletHit)
	w.Fruits = filterFruits(w.Fruits, fruitHit)

	if last != nil {
		events = append(events, w.completeLevel())
		w.spawnSlice(*last)
	}
	return events
}

func filterBullets(bullets []Bullet, hit []bool) []Bullet {
	kept := bullets[:0]
	for i, b := range bullets {
		if !hit[i] {
			kept = append(kept, b)
		}
	}
	return kept
}

func filterFruits(fruits []Fruit, hit []bool) []Fruit {
	kept := fruits[:0]
	for i, f := range fruits {
		if !hit[i] {
			kept = append(kept, f)
		}
	}
	return kept
}

package game

import "github.com/vovakirdan/fruit-slicer/internal/core"

// Step advances the world by dt seconds.
// All randomness comes from the world's own RNG, so equal seeds, inputs and
// step lengths give equal results. Returns the events that occurred.
func Step(w *World, in Input, dt float64) []core.Event {
	s := &w.Session
	if dt <= 0 || s.Phase != PhasePlaying {
		return nil
	}
	w.Tick++

	w.steer(in.TargetX, dt)

	// Time runs out before anything else moves
	s.TimeLeft -= dt
	if s.TimeLeft <= 0 {
		s.TimeLeft = 0
		w.end(ReasonTimeExpired)
		return []core.Event{{Kind: core.EventGameOver, Level: s.Level}}
	}
	s.BannerLeft = max(s.BannerLeft-dt, 0)

	w.autoFire(dt)
	w.Bullets = moveBullets(w.Bullets, dt)

	w.maybeSpawnFruit(dt)
	w.Fruits = moveFruits(w.Fruits, w.Height, dt)

	events := w.resolveCollisions()
	if s.Phase != PhasePlaying {
		return events
	}

	w.Particles = updateParticles(w.Particles, w.cfg.Particles.FadePerSecond, dt)
	return events
}

// moveBullets advances bullets upward and drops those past the top edge.
func moveBullets(bullets []Bullet, dt float64) []Bullet {
	kept := bullets[:0]
	for _, b := range bullets {
		b.Y -= b.Speed * dt
		if b.Y+b.Size/2 < 0 {
			continue
		}
		kept = append(kept, b)
	}
	return kept
}

// moveFruits advances fruits downward and drops those past the bottom edge.
func moveFruits(fruits []Fruit, height, dt float64) []Fruit {
	kept := fruits[:0]
	for _, f := range fruits {
		f.Y += f.Speed * dt
		f.Rotation += f.RotationSpeed * dt
		if f.Y-f.Size/2 > height {
			continue
		}
		kept = append(kept, f)
	}
	return kept
}

// updateParticles integrates slice halves and drops fully faded ones.
func updateParticles(particles []Particle, fade, dt float64) []Particle {
	kept := particles[:0]
	for _, p := range particles {
		p.VY += p.Gravity * dt
		p.X += p.VX * dt
		p.Y += p.VY * dt
		p.Rotation += p.RotationSpeed * dt
		p.Alpha -= fade * dt
		if p.Alpha <= 0 {
			continue
		}
		kept = append(kept, p)
	}
	return kept
}

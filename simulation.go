package celebrate

// StepStats summarizes one simulation step.
type StepStats struct {
	Stepped   int // particles advanced
	Reaped    int // particles removed for life or bounds
	Detonated int // rockets replaced by a burst
	Spawned   int // particles inserted by detonations
}

// Simulation advances the store by one frame.
type Simulation struct {
	cfg     *Config
	surface *Surface
	// detonate inserts the burst for a rocket that reached its apex.
	detonate func(x, y float64)

	blasts []Vec2
}

// NewSimulation returns a simulation bound to cfg and the surface bounds.
// detonate may be nil, in which case rockets vanish at their apex.
func NewSimulation(cfg *Config, surface *Surface, detonate func(x, y float64)) *Simulation {
	return &Simulation{cfg: cfg, surface: surface, detonate: detonate}
}

// Step integrates every live particle once, removes expired ones and then
// detonates the rockets that reached their apex. Particles created by a
// detonation are appended after the pass and first move on the next step.
func (sim *Simulation) Step(store *Store) StepStats {
	var stats StepStats
	cfg := sim.cfg
	floor := sim.surface.Height() + cfg.ReapMargin

	sim.blasts = sim.blasts[:0]
	items := store.items
	w := 0
	for i := range items {
		p := &items[i]
		stats.Stepped++

		p.X += p.VX
		p.Y += p.VY
		p.VY += cfg.Gravity * sim.gravityScale(p.Kind)

		keep := true
		switch p.Kind {
		case KindRocket:
			// A rocket that stops climbing before its apex detonates where
			// it is, so every rocket is guaranteed to leave the store.
			if p.Y <= p.ApexY || p.VY >= 0 {
				sim.blasts = append(sim.blasts, Vec2{p.X, p.Y})
				keep = false
			}
		case KindConfetti:
			p.Rot += p.VRot
			p.VX *= cfg.ConfettiDamping
			p.VY *= cfg.ConfettiDamping
			keep = sim.age(p, floor)
		case KindSpark:
			p.VX *= cfg.SparkDamping
			p.VY *= cfg.SparkDamping
			keep = sim.age(p, floor)
		default:
			unknownKind(p.Kind)
		}

		if !keep {
			if p.Kind != KindRocket {
				stats.Reaped++
			}
			continue
		}
		if w != i {
			items[w] = *p
		}
		w++
	}
	store.items = items[:w]

	for _, b := range sim.blasts {
		before := store.Len()
		if sim.detonate != nil {
			sim.detonate(b.X, b.Y)
		}
		stats.Detonated++
		stats.Spawned += store.Len() - before
	}
	return stats
}

// age burns one frame of life, refreshes opacity and reports whether the
// particle survives.
func (sim *Simulation) age(p *Particle, floor float64) bool {
	p.Life--
	p.Alpha = clamp01(p.Life / sim.cfg.FadeFrames)
	return p.Life > 0 && p.Y <= floor
}

func (sim *Simulation) gravityScale(k Kind) float64 {
	switch k {
	case KindRocket:
		return sim.cfg.RocketGravity
	case KindSpark:
		return sim.cfg.SparkGravity
	case KindConfetti:
		return sim.cfg.ConfettiGravity
	default:
		unknownKind(k)
		return 0
	}
}

package celebrate

import (
	"math"
	"math/rand/v2"
)

// Emitter creates particles. Spawn methods only insert into the store;
// Celebrate additionally schedules the follow-up bursts and arms the loop.
type Emitter struct {
	store   *Store
	surface *Surface
	sched   *Scheduler
	loop    *Loop
	cfg     *Config
	rng     *rand.Rand

	reducedMotion bool
	emit          func(Event)
}

// NewEmitter wires an emitter over the given store. A nil rng uses the
// global source.
func NewEmitter(store *Store, surface *Surface, sched *Scheduler, loop *Loop, cfg *Config, rng *rand.Rand) *Emitter {
	return &Emitter{
		store:   store,
		surface: surface,
		sched:   sched,
		loop:    loop,
		cfg:     cfg,
		rng:     rng,
	}
}

// SetReducedMotion limits Celebrate to its opening confetti burst.
func (e *Emitter) SetReducedMotion(enabled bool) {
	e.reducedMotion = enabled
}

// SpawnConfettiBurst inserts count confetti flakes at (x, y), thrown into the
// upper half-plane. A count of zero or less does nothing.
func (e *Emitter) SpawnConfettiBurst(x, y float64, count int) {
	c := &e.cfg.Confetti
	for i := 0; i < count; i++ {
		speed := c.Speed.Random(e.rng)
		angle := e.uniform(-math.Pi, 0)
		e.store.Add(Particle{
			Kind:  KindConfetti,
			X:     x,
			Y:     y,
			VX:    math.Cos(angle) * speed * c.SpreadX.Random(e.rng),
			VY:    math.Sin(angle) * speed * c.SpreadY.Random(e.rng),
			Rot:   e.uniform(0, 2*math.Pi),
			VRot:  c.Spin.Random(e.rng),
			Size:  c.Size.Random(e.rng),
			Shape: e.shape(),
			Life:  c.Life.Random(e.rng),
			Alpha: 1,
		})
	}
}

// SpawnFirework inserts one rocket just below the bottom edge at x.
func (e *Emitter) SpawnFirework(x float64) {
	r := &e.cfg.Rocket
	h := e.surface.Height()
	e.store.Add(Particle{
		Kind:  KindRocket,
		X:     x,
		Y:     h + r.StartOffset,
		VX:    r.Drift.Random(e.rng),
		VY:    -r.Speed.Random(e.rng),
		ApexY: h * r.Apex.Random(e.rng),
		Alpha: 1,
	})
}

// explode is the detonation producer: a ring of sparks plus a smaller
// confetti burst just below the blast.
func (e *Emitter) explode(x, y float64) {
	ex := &e.cfg.Explosion
	for i := 0; i < ex.Sparks; i++ {
		a := e.uniform(0, 2*math.Pi)
		s := ex.Speed.Random(e.rng)
		e.store.Add(Particle{
			Kind:  KindSpark,
			X:     x,
			Y:     y,
			VX:    math.Cos(a) * s,
			VY:    math.Sin(a) * s,
			Size:  ex.Size.Random(e.rng),
			Life:  ex.Life.Random(e.rng),
			Alpha: 1,
		})
	}
	e.SpawnConfettiBurst(x, y+ex.ConfettiOffsetY, ex.Confetti)
	e.notify(Event{Type: EventDetonate, X: x, Y: y, Count: ex.Sparks + max(ex.Confetti, 0)})
}

// Celebrate fires the full sequence: a large burst above center, a row of
// fireworks and the delayed side bursts. It arms the loop if idle.
func (e *Emitter) Celebrate() {
	cel := &e.cfg.Celebration
	w := e.surface.Width()
	before := e.store.Len()

	e.SpawnConfettiBurst(w/2, cel.BurstY, cel.BurstCount)
	if !e.reducedMotion {
		for _, fx := range cel.Fireworks {
			e.SpawnFirework(w * fx)
		}
		for _, f := range cel.Followups {
			e.sched.After(f.Delay, func() {
				e.SpawnConfettiBurst(e.surface.Width()*f.X, f.Y, f.Count)
				e.loop.Arm()
			})
		}
	}

	e.notify(Event{Type: EventCelebrate, X: w / 2, Y: cel.BurstY, Count: e.store.Len() - before})
	e.loop.Arm()
}

func (e *Emitter) notify(ev Event) {
	if e.emit != nil {
		e.emit(ev)
	}
}

func (e *Emitter) uniform(lo, hi float64) float64 {
	return Range{lo, hi}.Random(e.rng)
}

func (e *Emitter) shape() Shape {
	if e.rng != nil {
		return Shape(e.rng.IntN(shapeCount))
	}
	return Shape(rand.IntN(shapeCount))
}

package celebrate

import (
	"math/rand/v2"
	"time"
)

// Engine owns the particle store and wires the emitter, simulation, loop and
// scheduler over it. It has no ebiten dependency and can be driven by any
// frame source.
type Engine struct {
	cfg     Config
	store   *Store
	surface *Surface
	sched   *Scheduler
	sim     *Simulation
	loop    *Loop
	emitter *Emitter
	sink    EventSink
}

// NewEngine builds an idle engine. A nil rng uses the global source.
func NewEngine(cfg Config, surface *Surface, rng *rand.Rand) *Engine {
	e := &Engine{
		cfg:     cfg,
		store:   NewStore(),
		surface: surface,
		sched:   NewScheduler(),
	}
	e.sim = NewSimulation(&e.cfg, surface, nil)
	e.loop = NewLoop(e.store, e.sim)
	e.emitter = NewEmitter(e.store, surface, e.sched, e.loop, &e.cfg, rng)
	e.sim.detonate = e.emitter.explode
	e.emitter.emit = e.emit

	e.loop.OnStart = func() { e.emit(Event{Type: EventLoopStart}) }
	e.loop.OnIdle = func() { e.emit(Event{Type: EventLoopIdle}) }
	return e
}

// Celebrate triggers the full celebration.
func (e *Engine) Celebrate() {
	e.emitter.Celebrate()
}

// Burst inserts a confetti burst and arms the loop.
func (e *Engine) Burst(x, y float64, count int) {
	e.emitter.SpawnConfettiBurst(x, y, count)
	e.loop.Arm()
}

// Launch inserts one firework at x and arms the loop.
func (e *Engine) Launch(x float64) {
	e.emitter.SpawnFirework(x)
	e.loop.Arm()
}

// Advance moves the deferred-burst clock by dt, then runs one frame tick.
// It reports whether a simulation step ran.
func (e *Engine) Advance(dt time.Duration) bool {
	e.sched.Advance(dt)
	return e.loop.Tick()
}

// SetEventSink sets the optional lifecycle event receiver.
func (e *Engine) SetEventSink(sink EventSink) {
	e.sink = sink
}

// SetReducedMotion limits Celebrate to its opening confetti burst.
func (e *Engine) SetReducedMotion(enabled bool) {
	e.emitter.SetReducedMotion(enabled)
}

// Idle reports whether the loop is stopped with nothing left to land.
func (e *Engine) Idle() bool {
	return !e.loop.Running() && e.sched.Pending() == 0
}

// Config returns a pointer to the live configuration.
func (e *Engine) Config() *Config { return &e.cfg }

// Store returns the particle store.
func (e *Engine) Store() *Store { return e.store }

// Surface returns the drawing surface.
func (e *Engine) Surface() *Surface { return e.surface }

// Loop returns the frame loop.
func (e *Engine) Loop() *Loop { return e.loop }

// Emitter returns the particle emitter.
func (e *Engine) Emitter() *Emitter { return e.emitter }

// Scheduler returns the deferred-burst scheduler.
func (e *Engine) Scheduler() *Scheduler { return e.sched }

func (e *Engine) emit(ev Event) {
	if e.sink == nil {
		return
	}
	ev.Frame = e.loop.frames
	e.sink.EmitEvent(ev)
}

package celebrate

import (
	"math"
	"testing"
	"time"
)

func TestSpawnConfettiBurstCount(t *testing.T) {
	e := newTestEngine(800, 600)
	e.emitter.SpawnConfettiBurst(400, 300, 5)

	if e.store.Len() != 5 {
		t.Fatalf("Len = %d, want 5", e.store.Len())
	}
	if e.store.Count(KindConfetti) != 5 {
		t.Errorf("confetti = %d, want 5", e.store.Count(KindConfetti))
	}
	if e.loop.Running() {
		t.Error("spawning alone should not arm the loop")
	}
}

func TestSpawnConfettiBurstZeroIsNoop(t *testing.T) {
	e := newTestEngine(800, 600)
	e.emitter.SpawnConfettiBurst(400, 300, 0)
	e.emitter.SpawnConfettiBurst(400, 300, -3)
	if e.store.Len() != 0 {
		t.Errorf("Len = %d, want 0", e.store.Len())
	}
}

func TestSpawnConfettiBurstRanges(t *testing.T) {
	e := newTestEngine(800, 600)
	cfg := e.Config().Confetti
	e.emitter.SpawnConfettiBurst(100, 200, 500)

	maxSpeed := cfg.Speed.Max * math.Max(cfg.SpreadX.Max, cfg.SpreadY.Max)
	for i, p := range e.store.Particles() {
		if p.X != 100 || p.Y != 200 {
			t.Fatalf("particle %d at (%v, %v), want (100, 200)", i, p.X, p.Y)
		}
		if p.VY > 0 {
			t.Errorf("particle %d VY = %v, want <= 0 (upper half-plane)", i, p.VY)
		}
		if math.Hypot(p.VX, p.VY) > maxSpeed {
			t.Errorf("particle %d speed %v exceeds %v", i, math.Hypot(p.VX, p.VY), maxSpeed)
		}
		if !cfg.Size.Contains(p.Size) || !cfg.Life.Contains(p.Life) || !cfg.Spin.Contains(p.VRot) {
			t.Errorf("particle %d out of range: %+v", i, p)
		}
		if p.Rot < 0 || p.Rot >= 2*math.Pi {
			t.Errorf("particle %d Rot = %v", i, p.Rot)
		}
		if p.Shape >= shapeCount {
			t.Errorf("particle %d Shape = %v", i, p.Shape)
		}
		if p.Alpha != 1 {
			t.Errorf("particle %d Alpha = %v, want 1", i, p.Alpha)
		}
	}
}

func TestSpawnConfettiBurstUsesEveryShape(t *testing.T) {
	e := newTestEngine(800, 600)
	e.emitter.SpawnConfettiBurst(0, 0, 300)
	seen := map[Shape]bool{}
	for _, p := range e.store.Particles() {
		seen[p.Shape] = true
	}
	if len(seen) != shapeCount {
		t.Errorf("shapes seen = %v, want all %d", seen, shapeCount)
	}
}

func TestSpawnFirework(t *testing.T) {
	e := newTestEngine(800, 600)
	cfg := e.Config().Rocket
	e.emitter.SpawnFirework(200)

	if e.store.Len() != 1 {
		t.Fatalf("Len = %d, want 1", e.store.Len())
	}
	p := e.store.At(0)
	if p.Kind != KindRocket {
		t.Fatalf("Kind = %v, want rocket", p.Kind)
	}
	assertNear(t, "X", p.X, 200)
	assertNear(t, "Y", p.Y, 620)
	if p.VY >= 0 || -p.VY < cfg.Speed.Min || -p.VY > cfg.Speed.Max {
		t.Errorf("VY = %v, want in [-%v, -%v]", p.VY, cfg.Speed.Max, cfg.Speed.Min)
	}
	if !cfg.Drift.Contains(p.VX) {
		t.Errorf("VX = %v, outside %v", p.VX, cfg.Drift)
	}
	if p.ApexY < 600*cfg.Apex.Min || p.ApexY > 600*cfg.Apex.Max {
		t.Errorf("ApexY = %v, want in [90, 210]", p.ApexY)
	}
}

func TestExplodeProducesSparksAndConfetti(t *testing.T) {
	e := newTestEngine(800, 600)
	e.emitter.explode(300, 150)

	if e.store.Count(KindSpark) != 90 {
		t.Errorf("sparks = %d, want 90", e.store.Count(KindSpark))
	}
	if e.store.Count(KindConfetti) != 70 {
		t.Errorf("confetti = %d, want 70", e.store.Count(KindConfetti))
	}
	for _, p := range e.store.Particles() {
		switch p.Kind {
		case KindSpark:
			if p.X != 300 || p.Y != 150 {
				t.Fatalf("spark at (%v, %v), want (300, 150)", p.X, p.Y)
			}
		case KindConfetti:
			if p.Y != 190 {
				t.Fatalf("confetti Y = %v, want 190", p.Y)
			}
		}
	}
}

func TestCelebrateInsertsBurstAndFireworks(t *testing.T) {
	e := newTestEngine(800, 600)
	e.Celebrate()

	if e.store.Count(KindConfetti) != 140 {
		t.Errorf("confetti = %d, want 140", e.store.Count(KindConfetti))
	}
	if e.store.Count(KindRocket) != 3 {
		t.Errorf("rockets = %d, want 3", e.store.Count(KindRocket))
	}
	var xs []float64
	for _, p := range e.store.Particles() {
		switch p.Kind {
		case KindConfetti:
			if p.X != 400 || p.Y != 40 {
				t.Fatalf("burst origin (%v, %v), want (400, 40)", p.X, p.Y)
			}
		case KindRocket:
			xs = append(xs, p.X)
		}
	}
	if len(xs) == 3 && (xs[0] != 200 || xs[1] != 400 || xs[2] != 600) {
		t.Errorf("rocket xs = %v, want [200 400 600]", xs)
	}
	if !e.loop.Running() {
		t.Error("Celebrate should arm the loop")
	}
	if e.sched.Pending() != 2 {
		t.Errorf("pending followups = %d, want 2", e.sched.Pending())
	}
}

func TestCelebrateFollowupsLandOnSchedule(t *testing.T) {
	e := newTestEngine(800, 600)
	e.emitter.Celebrate()
	confetti := e.store.Count(KindConfetti)
	// The opening burst is followed by the rockets, so followups start at Len.
	n := e.store.Len()

	e.sched.Advance(219 * time.Millisecond)
	if got := e.store.Count(KindConfetti); got != confetti {
		t.Fatalf("confetti before 220ms = %d, want %d", got, confetti)
	}

	e.sched.Advance(time.Millisecond)
	if got := e.store.Count(KindConfetti); got != confetti+90 {
		t.Fatalf("confetti at 220ms = %d, want %d", got, confetti+90)
	}
	if got := e.store.Len() - n; got != 90 {
		t.Fatalf("first followup inserted %d, want 90", got)
	}
	for _, p := range e.store.Particles()[n:] {
		if p.Kind != KindConfetti || p.X != 160 || p.Y != 60 {
			t.Fatalf("first followup %v at (%v, %v), want confetti at (160, 60)", p.Kind, p.X, p.Y)
		}
	}
	n = e.store.Len()

	e.sched.Advance(100 * time.Millisecond)
	if got := e.store.Count(KindConfetti); got != confetti+180 {
		t.Fatalf("confetti at 320ms = %d, want %d", got, confetti+180)
	}
	for _, p := range e.store.Particles()[n:] {
		if p.Kind != KindConfetti || p.X != 640 || p.Y != 60 {
			t.Fatalf("second followup %v at (%v, %v), want confetti at (640, 60)", p.Kind, p.X, p.Y)
		}
	}
}

func TestFollowupRearmsIdleLoop(t *testing.T) {
	e := newTestEngine(800, 600)
	e.Celebrate()

	// Drain and stop the loop before the deferred bursts are due.
	e.store.Clear()
	e.loop.Tick()
	if e.loop.Running() {
		t.Fatal("loop should be idle after draining")
	}

	e.sched.Advance(220 * time.Millisecond)
	if !e.loop.Running() {
		t.Error("followup burst should re-arm the loop")
	}
	if e.store.Len() != 90 {
		t.Errorf("Len = %d, want 90", e.store.Len())
	}
}

func TestCelebrateReducedMotion(t *testing.T) {
	e := newTestEngine(800, 600)
	e.SetReducedMotion(true)
	e.Celebrate()

	if e.store.Count(KindRocket) != 0 {
		t.Errorf("rockets = %d, want 0", e.store.Count(KindRocket))
	}
	if e.store.Count(KindConfetti) != 140 {
		t.Errorf("confetti = %d, want 140", e.store.Count(KindConfetti))
	}
	if e.sched.Pending() != 0 {
		t.Errorf("pending = %d, want 0", e.sched.Pending())
	}
}

func TestCelebrateNotifies(t *testing.T) {
	e := newTestEngine(800, 600)
	var got []Event
	e.SetEventSink(sinkFunc(func(ev Event) { got = append(got, ev) }))
	e.Celebrate()

	if len(got) != 2 {
		t.Fatalf("events = %v, want celebrate + loop-start", got)
	}
	if got[0].Type != EventCelebrate || got[0].Count != 143 {
		t.Errorf("event 0 = %+v", got[0])
	}
	if got[1].Type != EventLoopStart {
		t.Errorf("event 1 = %+v", got[1])
	}
}

type sinkFunc func(Event)

func (f sinkFunc) EmitEvent(ev Event) { f(ev) }

package celebrate

import (
	"testing"
	"time"
)

func TestLoopStartsIdle(t *testing.T) {
	e := newTestEngine(800, 600)
	if e.loop.State() != LoopIdle || e.loop.Running() {
		t.Errorf("state = %v, want idle", e.loop.State())
	}
	if e.loop.Tick() {
		t.Error("Tick on an idle loop should not step")
	}
	if e.loop.Frames() != 0 {
		t.Errorf("Frames = %d, want 0", e.loop.Frames())
	}
}

func TestLoopArmIsIdempotent(t *testing.T) {
	e := newTestEngine(800, 600)
	starts := 0
	e.loop.OnStart = func() { starts++ }

	if !e.loop.Arm() {
		t.Error("first Arm should start the loop")
	}
	if e.loop.Arm() {
		t.Error("second Arm should be a no-op")
	}
	if starts != 1 {
		t.Errorf("OnStart ran %d times, want 1", starts)
	}
}

func TestLoopOneStepPerTick(t *testing.T) {
	e := newTestEngine(800, 600)
	e.Burst(400, 300, 5)
	e.Burst(400, 300, 5) // a second trigger does not add a second driver

	life := make([]float64, e.store.Len())
	for i, p := range e.store.Particles() {
		life[i] = p.Life
	}
	if !e.loop.Tick() {
		t.Fatal("Tick should step a running loop")
	}
	for i, p := range e.store.Particles() {
		assertNear(t, "life", p.Life, life[i]-1)
	}
	if e.loop.Frames() != 1 {
		t.Errorf("Frames = %d, want 1", e.loop.Frames())
	}
}

func TestLoopEmptyStoreStopsBeforeStepping(t *testing.T) {
	e := newTestEngine(800, 600)
	idles := 0
	e.loop.OnIdle = func() { idles++ }
	e.loop.Arm()

	if e.loop.Tick() {
		t.Error("Tick on an empty store should not step")
	}
	if e.loop.Running() || idles != 1 || e.loop.Frames() != 0 {
		t.Errorf("running=%v idles=%d frames=%d", e.loop.Running(), idles, e.loop.Frames())
	}
}

func TestLoopDrainsAndGoesIdle(t *testing.T) {
	e := newTestEngine(800, 600)
	e.Burst(400, 300, 5)

	frames := 0
	for e.loop.Running() && frames < 10000 {
		e.Advance(0)
		frames++
	}
	if e.loop.Running() {
		t.Fatal("loop never went idle")
	}
	if e.store.Len() != 0 {
		t.Errorf("Len = %d, want 0", e.store.Len())
	}
	// Confetti lives at most 130 frames.
	if frames > int(e.Config().Confetti.Life.Max)+1 {
		t.Errorf("took %d frames to drain", frames)
	}
}

func TestLoopIdleDoesNoWork(t *testing.T) {
	e := newTestEngine(800, 600)
	e.Burst(400, 300, 5)
	for e.loop.Running() {
		e.Advance(0)
	}
	frames := e.loop.Frames()

	for i := 0; i < 100; i++ {
		if e.Advance(time.Second / 60) {
			t.Fatal("idle loop stepped")
		}
	}
	if e.loop.Frames() != frames {
		t.Errorf("Frames = %d, want %d", e.loop.Frames(), frames)
	}
}

func TestLoopRestartsOnNextTrigger(t *testing.T) {
	e := newTestEngine(800, 600)
	var got []EventType
	e.SetEventSink(sinkFunc(func(ev Event) { got = append(got, ev.Type) }))

	e.Burst(100, 100, 3)
	for e.loop.Running() {
		e.Advance(0)
	}
	e.Burst(100, 100, 3)
	if !e.loop.Running() {
		t.Fatal("second trigger should restart the loop")
	}

	want := []EventType{EventLoopStart, EventLoopIdle, EventLoopStart}
	if len(got) != len(want) {
		t.Fatalf("events = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestEngineIdleWaitsForFollowups(t *testing.T) {
	e := newTestEngine(800, 600)
	e.Celebrate()
	e.store.Clear()
	e.Advance(0)

	if e.loop.Running() {
		t.Fatal("loop should have stopped on an empty store")
	}
	if e.Idle() {
		t.Error("engine is not idle while followups are pending")
	}
	for i := 0; i < 2000 && !e.Idle(); i++ {
		e.Advance(time.Second / 60)
	}
	if !e.Idle() {
		t.Error("engine never went idle")
	}
}

func TestLoopStateString(t *testing.T) {
	if LoopIdle.String() != "idle" || LoopRunning.String() != "running" {
		t.Error("state names mismatch")
	}
}

func TestEventFrameNumbersStepInProgress(t *testing.T) {
	e := newTestEngine(800, 600)
	var got []Event
	e.SetEventSink(sinkFunc(func(ev Event) { got = append(got, ev) }))

	e.store.Add(Particle{Kind: KindRocket, X: 400, Y: 151, VY: -5, ApexY: 150})
	e.loop.Arm()
	e.loop.Tick()
	if len(got) != 2 || got[1].Type != EventDetonate {
		t.Fatalf("events = %+v, want start then detonate", got)
	}
	if got[0].Frame != 0 {
		t.Errorf("start frame = %d, want 0", got[0].Frame)
	}
	if got[1].Frame != 1 || got[1].Frame != e.loop.Frames() {
		t.Errorf("detonate frame = %d, loop frames = %d; want 1", got[1].Frame, e.loop.Frames())
	}

	// A store that drains in the next step reports that same step as idle.
	e.store.Clear()
	e.store.Add(Particle{Kind: KindSpark, X: 1, Y: 1, Life: 1})
	got = got[:0]
	e.loop.Tick()
	if len(got) != 1 || got[0].Type != EventLoopIdle || got[0].Frame != 2 {
		t.Errorf("events = %+v, want idle at frame 2", got)
	}
}

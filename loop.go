package celebrate

// LoopState is the frame loop's run state.
type LoopState uint8

const (
	LoopIdle    LoopState = iota // no frame steps are executed
	LoopRunning                  // one step per Tick until the store drains
)

func (s LoopState) String() string {
	if s == LoopRunning {
		return "running"
	}
	return "idle"
}

// Loop drives the simulation one step per Tick while particles remain.
// It never schedules itself: the owner calls Tick once per display frame and
// the loop decides whether that frame does any work.
type Loop struct {
	store *Store
	sim   *Simulation

	state  LoopState
	frames uint64
	last   StepStats

	// OnStart runs when Arm moves the loop out of idle.
	OnStart func()
	// OnIdle runs when the loop stops because the store drained.
	OnIdle func()
}

// NewLoop returns an idle loop over store.
func NewLoop(store *Store, sim *Simulation) *Loop {
	return &Loop{store: store, sim: sim}
}

// Arm starts the loop if it is idle and reports whether it did. Arming a
// running loop is a no-op, so there is never more than one driver per store.
func (l *Loop) Arm() bool {
	if l.state == LoopRunning {
		return false
	}
	l.state = LoopRunning
	if l.OnStart != nil {
		l.OnStart()
	}
	return true
}

// Tick executes one frame step if the loop is running and reports whether a
// step ran. An empty store stops the loop before stepping; a store that
// drains during the step stops it afterwards.
func (l *Loop) Tick() bool {
	if l.state != LoopRunning {
		return false
	}
	if l.store.Len() == 0 {
		l.stop()
		return false
	}
	// Events raised during the step carry the number of the step in progress.
	l.frames++
	l.last = l.sim.Step(l.store)
	if l.store.Len() == 0 {
		l.stop()
	}
	return true
}

func (l *Loop) stop() {
	l.state = LoopIdle
	l.store.Clear()
	if l.OnIdle != nil {
		l.OnIdle()
	}
}

// State returns the current run state.
func (l *Loop) State() LoopState {
	return l.state
}

// Running reports whether the loop is armed.
func (l *Loop) Running() bool {
	return l.state == LoopRunning
}

// Frames returns the number of steps executed since construction.
func (l *Loop) Frames() uint64 {
	return l.frames
}

// LastStep returns the stats of the most recent step.
func (l *Loop) LastStep() StepStats {
	return l.last
}

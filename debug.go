package celebrate

import (
	"fmt"
	"os"
	"time"
)

// debugStats holds per-frame timing and particle metrics.
// Only populated when Scene.debug is true.
type debugStats struct {
	stepTime  time.Duration
	drawTime  time.Duration
	step      StepStats
	particles int
	vertices  int
}

// debugLog prints timing and particle stats to stderr.
func (s *Scene) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[celebrate] frame %d | step: %v | draw: %v | particles: %d | vertices: %d\n",
		s.engine.loop.Frames(), stats.stepTime, stats.drawTime, stats.particles, stats.vertices)
	_, _ = fmt.Fprintf(os.Stderr,
		"[celebrate] stepped: %d | reaped: %d | detonated: %d | spawned: %d\n",
		stats.step.Stepped, stats.step.Reaped, stats.step.Detonated, stats.step.Spawned)
}

// debugMaxParticles is the store size above which a warning is printed.
const debugMaxParticles = 5000

// debugCheckStore warns on stderr when the store grows past the threshold,
// which usually means triggers are arriving faster than particles expire.
func debugCheckStore(n int) bool {
	if n <= debugMaxParticles {
		return false
	}
	_, _ = fmt.Fprintf(os.Stderr, "[celebrate] warning: %d live particles exceeds %d\n",
		n, debugMaxParticles)
	return true
}

// logLoopEvent prints loop transitions in debug mode.
func (s *Scene) logLoopEvent(ev Event) {
	if !s.debug {
		return
	}
	switch ev.Type {
	case EventLoopStart, EventLoopIdle:
		_, _ = fmt.Fprintf(os.Stderr, "[celebrate] loop %s at frame %d\n", ev.Type, ev.Frame)
	}
}

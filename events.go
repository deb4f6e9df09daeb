package celebrate

// EventType identifies a lifecycle event of the celebration.
type EventType uint8

const (
	EventCelebrate EventType = iota // Celebrate was triggered
	EventDetonate                   // a rocket reached its apex
	EventLoopStart                  // the frame loop left idle
	EventLoopIdle                   // the store drained and the loop stopped
	EventAurora                     // an aurora burst started
)

func (t EventType) String() string {
	switch t {
	case EventCelebrate:
		return "celebrate"
	case EventDetonate:
		return "detonate"
	case EventLoopStart:
		return "loop-start"
	case EventLoopIdle:
		return "loop-idle"
	case EventAurora:
		return "aurora"
	default:
		return "unknown"
	}
}

// Event carries lifecycle data to an EventSink. Count is the number of
// particles inserted, when that applies. Frame is the loop's step count: a
// detonation in the first step reports 1, and so does the idle event that
// follows it in the same step.
type Event struct {
	Type  EventType
	X, Y  float64
	Count int
	Frame uint64
}

// EventSink is the interface for optional ECS or telemetry integration.
// When set on an Engine, lifecycle events are forwarded to it synchronously
// on the update goroutine.
type EventSink interface {
	EmitEvent(event Event)
}

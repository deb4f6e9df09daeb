package ecs

import (
	"github.com/phanxgames/celebrate"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// CelebrationEventType is the Donburi event type for celebrate lifecycle
// events.
var CelebrationEventType = events.NewEventType[celebrate.Event]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Events are
// published to CelebrationEventType and delivered on ProcessEvents.
func NewDonburiSink(world donburi.World) celebrate.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event celebrate.Event) {
	CelebrationEventType.Publish(s.world, event)
}

// CelebrationStats accumulates totals from processed events.
type CelebrationStats struct {
	Celebrations int
	Detonations  int
	Auroras      int
	Particles    int // particles inserted by celebrations and detonations
	Runs         int // loop start to idle cycles completed
	LastFrame    uint64
}

// Stats is the component holding CelebrationStats.
var Stats = donburi.NewComponentType[CelebrationStats]()

// TrackStats creates an entity carrying a Stats component and subscribes a
// handler that updates it from every processed event.
func TrackStats(world donburi.World) donburi.Entity {
	entity := world.Create(Stats)
	CelebrationEventType.Subscribe(world, func(w donburi.World, ev celebrate.Event) {
		if !w.Valid(entity) {
			return
		}
		st := Stats.Get(w.Entry(entity))
		st.LastFrame = ev.Frame
		switch ev.Type {
		case celebrate.EventCelebrate:
			st.Celebrations++
			st.Particles += ev.Count
		case celebrate.EventDetonate:
			st.Detonations++
			st.Particles += ev.Count
		case celebrate.EventAurora:
			st.Auroras++
		case celebrate.EventLoopIdle:
			st.Runs++
		}
	})
	return entity
}

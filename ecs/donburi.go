package ecs

import (
	"github.com/phanxgames/hero"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// SectionEventType carries hero.Event values through a donburi world. A Section
// emits at most one mount and one unmount per lifecycle, one event per ticker
// phrase change, one when the scroll hint retires and one on the first scroll.
var SectionEventType = events.NewEventType[hero.Event]()

type worldSink struct {
	world donburi.World
}

// NewWorldSink returns a hero.EventSink that queues every Section event on
// world. The Section emits synchronously from its clock callbacks; subscribers
// only see the events when SectionEventType.ProcessEvents runs, so a system
// can drain them once per tick alongside the rest of the world.
func NewWorldSink(world donburi.World) hero.EventSink {
	return &worldSink{world: world}
}

func (s *worldSink) EmitEvent(event hero.Event) {
	SectionEventType.Publish(s.world, event)
}

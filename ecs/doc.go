// Package ecs queues hero Section events on a [Donburi] world.
//
// Attach [NewWorldSink] to a Section and subscribe to [SectionEventType];
// mount, unmount, ticker and hint events then arrive in the systems that call
// ProcessEvents, in the order the Section emitted them.
//
//	section.SetEventSink(ecs.NewWorldSink(world))
//	ecs.SectionEventType.Subscribe(world, onSectionEvent)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs

package ecs

import (
	"testing"

	"github.com/phanxgames/hero"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewWorldSink(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewWorldSink(world)
	if sink == nil {
		t.Fatal("NewWorldSink returned nil")
	}
}

func TestWorldSinkQueuesUntilProcessed(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewWorldSink(world)

	var received []hero.Event
	SectionEventType.Subscribe(world, func(w donburi.World, e hero.Event) {
		received = append(received, e)
	})

	sink.EmitEvent(hero.Event{Type: hero.EventTickerAdvanced, TickerIndex: 2, Elapsed: 5.6})
	sink.EmitEvent(hero.Event{Type: hero.EventHintHidden, Reason: hero.HideScroll, Progress: 0.25})

	if len(received) != 0 {
		t.Fatalf("events delivered before ProcessEvents: %d", len(received))
	}
	SectionEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}

	e0 := received[0]
	if e0.Type != hero.EventTickerAdvanced || e0.TickerIndex != 2 {
		t.Errorf("event 0: %+v", e0)
	}

	e1 := received[1]
	if e1.Type != hero.EventHintHidden || e1.Reason != hero.HideScroll || e1.Progress != 0.25 {
		t.Errorf("event 1: %+v", e1)
	}
}

func TestWorldSinkImplementsEventSink(t *testing.T) {
	world := donburi.NewWorld()
	var sink hero.EventSink = NewWorldSink(world)
	_ = sink // compile-time interface check
}

func TestWorldSinkSectionLifecycle(t *testing.T) {
	world := donburi.NewWorld()

	var types []hero.EventType
	SectionEventType.Subscribe(world, func(w donburi.World, e hero.Event) {
		types = append(types, e.Type)
	})

	section := hero.NewSection(hero.DefaultConfig())
	section.SetEventSink(NewWorldSink(world))
	clock := hero.NewClock()

	section.Mount(clock, 1280, 720)
	clock.Advance(3.0)
	section.Unmount()
	events.ProcessAllEvents(world)

	// Mount, ticker tick at 2.8s, hint timeout at 3s, unmount.
	want := []hero.EventType{
		hero.EventMounted,
		hero.EventTickerAdvanced,
		hero.EventHintHidden,
		hero.EventUnmounted,
	}
	if len(types) != len(want) {
		t.Fatalf("got %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, types[i], want[i])
		}
	}
}

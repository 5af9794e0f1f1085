package hero

import (
	"math"
	"reflect"
	"testing"
)

func TestClockAfterFiresOnce(t *testing.T) {
	c := NewClock()
	calls := 0
	tm := c.After(1, func() { calls++ })

	c.Advance(0.5)
	if calls != 0 {
		t.Fatalf("fired early: calls = %d", calls)
	}
	c.Advance(0.5)
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
	c.Advance(10)
	if calls != 1 {
		t.Errorf("one-shot fired again: calls = %d", calls)
	}
	if tm.Active() {
		t.Error("fired one-shot timer should not be active")
	}
}

func TestClockEveryCatchesUp(t *testing.T) {
	c := NewClock()
	var at []float64
	c.Every(2.8, func() { at = append(at, c.Now()) })

	c.Advance(14.1)
	if len(at) != 5 {
		t.Fatalf("fired %d times, want 5", len(at))
	}
	for i, got := range at {
		want := 2.8 * float64(i+1)
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("fire %d at %v, want %v", i, got, want)
		}
	}
	if math.Abs(c.Now()-14.1) > 1e-12 {
		t.Errorf("Now = %v, want 14.1", c.Now())
	}
}

func TestClockFiresInDeadlineThenRegistrationOrder(t *testing.T) {
	c := NewClock()
	var order []string
	c.Every(0.5, func() { order = append(order, "B") })
	c.After(1, func() { order = append(order, "A") })
	c.After(0.25, func() { order = append(order, "C") })

	c.Advance(1)
	want := []string{"C", "B", "B", "A"}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}
}

func TestClockStop(t *testing.T) {
	c := NewClock()
	calls := 0
	tm := c.Every(1, func() { calls++ })
	c.Advance(1.5)
	tm.Stop()
	tm.Stop()
	c.Advance(5)
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}

	var nilTimer *Timer
	nilTimer.Stop()
	if nilTimer.Active() {
		t.Error("nil timer should not be active")
	}
}

func TestClockTimerStopsItself(t *testing.T) {
	c := NewClock()
	calls := 0
	var tm *Timer
	tm = c.Every(0.1, func() {
		calls++
		if calls == 3 {
			tm.Stop()
		}
	})
	c.Advance(2)
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
	if c.Active() != 0 {
		t.Errorf("Active = %d, want 0", c.Active())
	}
}

func TestClockCallbackSchedulesTimer(t *testing.T) {
	c := NewClock()
	var fired []float64
	c.After(1, func() {
		c.After(0.5, func() { fired = append(fired, c.Now()) })
	})
	c.Advance(2)
	if len(fired) != 1 || math.Abs(fired[0]-1.5) > 1e-12 {
		t.Errorf("nested timer fired at %v, want [1.5]", fired)
	}
}

func TestClockIgnoresBadSteps(t *testing.T) {
	c := NewClock()
	c.Advance(-1)
	c.Advance(0)
	c.Advance(math.NaN())
	c.Advance(math.Inf(1))
	if c.Now() != 0 {
		t.Errorf("Now = %v, want 0", c.Now())
	}
}

func TestClockEveryNonPositiveInterval(t *testing.T) {
	c := NewClock()
	tm := c.Every(0, func() { t.Error("should never fire") })
	if tm.Active() {
		t.Error("zero-interval timer should be stopped")
	}
	c.Advance(1)
}

func TestClockActiveCountsDrivers(t *testing.T) {
	c := NewClock()
	tm := c.Every(1, func() {})
	once := c.Play(Timeline{Duration: 1})
	loop := c.Play(Timeline{Duration: 1, Repeat: RepeatLoop})

	if got := c.Active(); got != 3 {
		t.Fatalf("Active = %d, want 3", got)
	}

	c.Advance(1)
	if got := c.Active(); got != 2 {
		t.Errorf("after one-shot playback finished: Active = %d, want 2", got)
	}
	if once.Stopped() {
		t.Error("a finished playback is not stopped, only done")
	}

	tm.Stop()
	loop.Stop()
	if got := c.Active(); got != 0 {
		t.Errorf("after stopping: Active = %d, want 0", got)
	}
}

func TestPlaybackElapsedAndFreeze(t *testing.T) {
	c := NewClock()
	c.Advance(2)
	p := c.Play(Timeline{Duration: 1.6, Repeat: RepeatLoop})

	c.Advance(2)
	if math.Abs(p.Elapsed()-2) > 1e-12 {
		t.Errorf("Elapsed = %v, want 2", p.Elapsed())
	}
	if math.Abs(p.Local()-0.4) > 1e-9 {
		t.Errorf("Local = %v, want 0.4", p.Local())
	}

	p.Stop()
	p.Stop()
	c.Advance(5)
	if math.Abs(p.Elapsed()-2) > 1e-12 {
		t.Errorf("Elapsed after Stop = %v, want frozen at 2", p.Elapsed())
	}

	var nilPlayback *Playback
	nilPlayback.Stop()
	if !nilPlayback.Stopped() {
		t.Error("nil playback should report stopped")
	}
}

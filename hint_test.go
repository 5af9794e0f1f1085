package hero

import (
	"math"
	"testing"
)

func TestHintPulse(t *testing.T) {
	c := NewClock()
	h := NewHintController(DefaultConfig().Hint)
	h.Mount(c)

	f := h.Frame()
	if f.State != HintVisible || !f.Pulsing {
		t.Fatalf("at mount: %+v, want visible and pulsing", f)
	}
	if f.MarkerY != 0 || f.MarkerOpacity != 1 || f.Opacity != 1 {
		t.Errorf("at mount: %+v, want marker at rest", f)
	}

	c.Advance(0.8)
	f = h.Frame()
	if math.Abs(f.MarkerY-22) > 1e-4 || math.Abs(f.MarkerOpacity-0.6) > 1e-4 {
		t.Errorf("at 0.8s: y %v opacity %v, want 22/0.6", f.MarkerY, f.MarkerOpacity)
	}

	c.Advance(0.8)
	f = h.Frame()
	if math.Abs(f.MarkerY) > 1e-4 {
		t.Errorf("at 1.6s: y %v, want back at 0", f.MarkerY)
	}
}

func TestHintTimeout(t *testing.T) {
	c := NewClock()
	h := NewHintController(DefaultConfig().Hint)
	var reasons []HideReason
	h.OnHide = func(r HideReason) { reasons = append(reasons, r) }
	h.Mount(c)

	c.Advance(2.99)
	if !h.Visible() {
		t.Fatal("hint hid before the timeout")
	}
	c.Advance(0.02)
	if h.Visible() {
		t.Fatal("hint should hide at the timeout")
	}
	if h.Reason() != HideTimeout || h.HiddenAt() != 3 {
		t.Errorf("reason %v at %v, want timeout at 3", h.Reason(), h.HiddenAt())
	}
	if len(reasons) != 1 {
		t.Errorf("OnHide called %d times, want 1", len(reasons))
	}
	if h.Pulsing() {
		t.Error("pulse should stop when the hint hides")
	}
	if got := c.Active(); got != 0 {
		t.Errorf("Active = %d after hide, want 0", got)
	}
}

func TestHintScrollBeforeTimeout(t *testing.T) {
	c := NewClock()
	h := NewHintController(DefaultConfig().Hint)
	calls := 0
	h.OnHide = func(HideReason) { calls++ }
	h.Mount(c)

	c.Advance(1)
	h.OnScroll()
	h.OnScroll()
	if h.State() != HintHidden || h.Reason() != HideScroll {
		t.Fatalf("state %v reason %v, want hidden by scroll", h.State(), h.Reason())
	}

	c.Advance(5)
	if calls != 1 {
		t.Errorf("OnHide called %d times, want 1", calls)
	}
	if h.Reason() != HideScroll {
		t.Errorf("timeout overwrote the reason: %v", h.Reason())
	}
}

func TestHintFadeOut(t *testing.T) {
	c := NewClock()
	h := NewHintController(DefaultConfig().Hint)
	h.Mount(c)

	c.Advance(1)
	h.OnScroll()
	if f := h.Frame(); f.Opacity != 1 {
		t.Errorf("opacity at hide = %v, want 1", f.Opacity)
	}
	c.Advance(0.3)
	if f := h.Frame(); math.Abs(f.Opacity-0.5) > 1e-3 {
		t.Errorf("opacity mid-fade = %v, want 0.5", f.Opacity)
	}
	c.Advance(0.4)
	if f := h.Frame(); f.Opacity != 0 {
		t.Errorf("opacity after fade = %v, want 0", f.Opacity)
	}
}

func TestHintUnmountWhileVisible(t *testing.T) {
	c := NewClock()
	h := NewHintController(DefaultConfig().Hint)
	h.Mount(c)
	c.Advance(1)

	h.Unmount()
	if h.Visible() || h.Reason() != HideUnmount {
		t.Errorf("after Unmount: state %v reason %v", h.State(), h.Reason())
	}
	if got := c.Active(); got != 0 {
		t.Errorf("Active = %d after Unmount, want 0", got)
	}
	h.Unmount()
}

func TestHintNeverReturns(t *testing.T) {
	c := NewClock()
	h := NewHintController(DefaultConfig().Hint)
	h.OnScroll()
	h.Mount(c)

	if h.Visible() {
		t.Fatal("a hidden hint must stay hidden")
	}
	if got := c.Active(); got != 0 {
		t.Errorf("Mount of a hidden hint started %d drivers", got)
	}
}

func TestHintStrings(t *testing.T) {
	if HintVisible.String() != "visible" || HintHidden.String() != "hidden" {
		t.Error("unexpected HintState names")
	}
	names := map[HideReason]string{
		HideNone: "none", HideScroll: "scroll", HideTimeout: "timeout", HideUnmount: "unmount",
	}
	for r, want := range names {
		if r.String() != want {
			t.Errorf("%d.String() = %q, want %q", r, r.String(), want)
		}
	}
}

package hero

import (
	"math"
	"testing"
)

func mountedButton(t *testing.T) (*Button, *Clock) {
	t.Helper()
	c := NewClock()
	b := NewButton(DefaultConfig().Button)
	b.Mount(c)
	return b, c
}

func TestHitRectContains(t *testing.T) {
	r := HitRect{X: 10, Y: 20, Width: 100, Height: 50}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 50, 40, true},
		{"top-left corner", 10, 20, true},
		{"bottom-right corner", 110, 70, true},
		{"outside left", 5, 40, false},
		{"outside right", 115, 40, false},
		{"outside top", 50, 15, false},
		{"outside bottom", 50, 75, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("HitRect.Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestHitRectScaled(t *testing.T) {
	r := HitRect{X: 0.1, Y: 0.5, Width: 0.25, Height: 0.1}.Scaled(Vec2{X: 1000, Y: 800})
	want := HitRect{X: 100, Y: 400, Width: 250, Height: 80}
	if math.Abs(r.X-want.X) > 1e-9 || math.Abs(r.Y-want.Y) > 1e-9 ||
		math.Abs(r.Width-want.Width) > 1e-9 || math.Abs(r.Height-want.Height) > 1e-9 {
		t.Errorf("Scaled = %+v, want %+v", r, want)
	}
}

func TestButtonRestsUntilHovered(t *testing.T) {
	b, c := mountedButton(t)
	c.Advance(2)
	f := b.Frame(Vec2{X: 1280, Y: 800})
	if f.Hovered || f.OffsetY != 0 || f.Shadow != 0 {
		t.Errorf("resting frame = %+v, want no lift and no shadow", f)
	}
	if f.Label != DefaultConfig().Button.Label {
		t.Errorf("Label = %q", f.Label)
	}
}

func TestButtonHoverLiftsAndSettles(t *testing.T) {
	b, c := mountedButton(t)
	vp := Vec2{X: 1280, Y: 800}
	c.Advance(1)

	if !b.SetHovered(true) {
		t.Fatal("SetHovered(true) should report a change")
	}
	c.Advance(0.175)
	f := b.Frame(vp)
	if f.OffsetY > -3 || f.OffsetY <= -4 {
		t.Errorf("mid-lift offset = %v, want between -4 and -3 (ease-out)", f.OffsetY)
	}

	c.Advance(0.175)
	f = b.Frame(vp)
	if math.Abs(f.OffsetY+4) > 1e-6 || math.Abs(f.Shadow-1) > 1e-6 {
		t.Errorf("lifted frame = %+v, want offset -4 shadow 1", f)
	}

	if !b.SetHovered(false) {
		t.Fatal("SetHovered(false) should report a change")
	}
	c.Advance(0.35)
	f = b.Frame(vp)
	if math.Abs(f.OffsetY) > 1e-6 || math.Abs(f.Shadow) > 1e-6 || f.Hovered {
		t.Errorf("settled frame = %+v, want back at rest", f)
	}
}

func TestButtonReversalStartsFromCurrentLift(t *testing.T) {
	b, c := mountedButton(t)
	vp := Vec2{X: 1280, Y: 800}

	b.SetHovered(true)
	c.Advance(0.1)
	before := b.Frame(vp).OffsetY

	b.SetHovered(false)
	after := b.Frame(vp).OffsetY
	if math.Abs(after-before) > 1e-5 {
		t.Errorf("leave jumped from %v to %v", before, after)
	}
	if before >= 0 {
		t.Errorf("offset after 0.1s of hover = %v, want lifted", before)
	}
}

func TestButtonRepeatedHoverIsNoop(t *testing.T) {
	b, c := mountedButton(t)
	b.SetHovered(true)
	c.Advance(0.2)
	if b.SetHovered(true) {
		t.Error("repeated SetHovered(true) should report no change")
	}
	c.Advance(0.15)
	if f := b.Frame(Vec2{}); math.Abs(f.OffsetY+4) > 1e-6 {
		t.Errorf("offset = %v, want -4; a repeated hover must not restart the tween", f.OffsetY)
	}
}

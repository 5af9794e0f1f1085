package hero

import "github.com/tanema/gween/ease"

// HitRect is an axis-aligned rectangular hit area.
type HitRect struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Scaled treats r as fractions of a viewport and returns it in viewport
// units.
func (r HitRect) Scaled(viewport Vec2) HitRect {
	return HitRect{
		X:      r.X * viewport.X,
		Y:      r.Y * viewport.Y,
		Width:  r.Width * viewport.X,
		Height: r.Height * viewport.Y,
	}
}

// ButtonFrame is the sampled call-to-action button. Rect is in viewport
// units; OffsetY is the hover lift (negative is up) and Shadow the drop
// shadow strength in [0, 1].
type ButtonFrame struct {
	Label   string
	Rect    HitRect
	Hovered bool
	OffsetY float64
	Shadow  float64
}

// Button is the call-to-action under the ticker. Hovering lifts it and
// raises its shadow; leaving settles it back. Each hover change starts a new
// tween from wherever the previous one had got to, so a quick leave never
// jumps.
type Button struct {
	label    string
	bounds   HitRect
	lift     float64
	duration float64
	fn       ease.TweenFunc

	clock     *Clock
	hovered   bool
	changedAt float64

	// TranslateY carries the lift and Opacity the shadow strength.
	state LayerParams
	tween *TweenGroup
}

// NewButton creates a resting button from cfg.
func NewButton(cfg ButtonConfig) *Button {
	b := &Button{
		label:    cfg.Label,
		bounds:   cfg.Bounds,
		lift:     cfg.Lift,
		duration: cfg.Duration,
		fn:       EaseNamed(cfg.Ease, EaseOutReveal),
	}
	b.tween = TweenSlide(&b.state, 0, 0, 0, 0, float32(b.duration), b.fn)
	return b
}

// Mount attaches the button to c. Hover transitions are timed on c; they are
// sampled, not driven, so the button registers nothing on the clock.
func (b *Button) Mount(c *Clock) {
	b.clock = c
	b.changedAt = c.Now()
}

// Rect returns the button's hit area for the given viewport.
func (b *Button) Rect(viewport Vec2) HitRect {
	return b.bounds.Scaled(viewport)
}

// SetHovered records the pointer-over state and reports whether it changed.
func (b *Button) SetHovered(hovered bool) bool {
	if hovered == b.hovered {
		return false
	}
	now := b.now()
	b.tween.Seek(now - b.changedAt)
	from := b.state

	var shadow, offset float64
	if hovered {
		shadow, offset = 1, -b.lift
	}
	b.tween = TweenSlide(&b.state, from.Opacity, shadow, from.TranslateY, offset, float32(b.duration), b.fn)
	b.hovered = hovered
	b.changedAt = now
	return true
}

// Hovered reports whether the pointer is over the button.
func (b *Button) Hovered() bool { return b.hovered }

// Frame samples the hover transition at the clock's current time.
func (b *Button) Frame(viewport Vec2) ButtonFrame {
	b.tween.Seek(b.now() - b.changedAt)
	return ButtonFrame{
		Label:   b.label,
		Rect:    b.Rect(viewport),
		Hovered: b.hovered,
		OffsetY: b.state.TranslateY,
		Shadow:  b.state.Opacity,
	}
}

func (b *Button) now() float64 {
	if b.clock == nil {
		return 0
	}
	return b.clock.Now()
}

package hero

import "github.com/tanema/gween/ease"

// TickerSlot is one status string as currently drawn.
type TickerSlot struct {
	Index   int
	Text    string
	Params  LayerParams
	Visible bool
}

// TickerFrame is the sampled ticker: the current value and, during a
// crossfade, the outgoing one. At most these two are ever visible.
type TickerFrame struct {
	Current  TickerSlot
	Previous TickerSlot
}

// Ticker rotates through a fixed list of status strings. A periodic timer
// advances the cursor by one every interval, wrapping at the end of the list;
// each change crossfades the outgoing value out while the new one slides in.
type Ticker struct {
	items    []string
	interval float64
	fade     float64

	index     int
	prev      int
	changedAt float64

	clock *Clock
	timer *Timer

	in, out           LayerParams
	inTween, outTween *TweenGroup

	// OnAdvance, when set, is called after every advance with the new index.
	OnAdvance func(index int)
}

// NewTicker creates a ticker over items from cfg. It stays on index 0 until
// Start.
func NewTicker(cfg TickerConfig) *Ticker {
	t := &Ticker{
		items:    append([]string(nil), cfg.Items...),
		interval: cfg.Interval,
		fade:     cfg.Fade,
		prev:     -1,
	}
	fn := EaseNamed(cfg.Ease, ease.InOutQuad)
	t.in, t.out = IdentityParams, IdentityParams
	t.inTween = TweenSlide(&t.in, 0, 1, cfg.Offset, 0, float32(cfg.Fade), fn)
	t.outTween = TweenSlide(&t.out, 1, 0, 0, -cfg.Offset, float32(cfg.Fade), fn)
	return t
}

// Start mounts the ticker on c: the first item fades in and the interval
// driver starts. Starting a running ticker is a no-op.
func (t *Ticker) Start(c *Clock) {
	if t.timer.Active() {
		return
	}
	t.clock = c
	t.changedAt = c.Now()
	t.prev = -1
	t.timer = c.Every(t.interval, t.Advance)
}

// Stop cancels the interval driver. Safe to call repeatedly.
func (t *Ticker) Stop() {
	t.timer.Stop()
}

// Running reports whether the interval driver is active.
func (t *Ticker) Running() bool {
	return t.timer.Active()
}

// Advance moves the cursor to the next item, wrapping modulo the list length.
// With an empty list it does nothing.
func (t *Ticker) Advance() {
	if len(t.items) == 0 {
		return
	}
	t.prev = t.index
	t.index = (t.index + 1) % len(t.items)
	if t.clock != nil {
		t.changedAt = t.clock.Now()
	}
	if t.OnAdvance != nil {
		t.OnAdvance(t.index)
	}
}

// Index returns the cursor.
func (t *Ticker) Index() int { return t.index }

// Len returns the number of items.
func (t *Ticker) Len() int { return len(t.items) }

// Current returns the item under the cursor, or "" for an empty ticker.
func (t *Ticker) Current() string {
	if len(t.items) == 0 {
		return ""
	}
	return t.items[t.index]
}

// Frame samples the crossfade at the clock's current time.
func (t *Ticker) Frame() TickerFrame {
	var now float64
	if t.clock != nil {
		now = t.clock.Now()
	}
	return t.FrameAt(now - t.changedAt)
}

// FrameAt samples the crossfade since seconds after the last change.
func (t *Ticker) FrameAt(since float64) TickerFrame {
	var f TickerFrame
	if len(t.items) == 0 {
		return f
	}
	t.inTween.Seek(since)
	f.Current = TickerSlot{
		Index:   t.index,
		Text:    t.items[t.index],
		Params:  t.in,
		Visible: true,
	}
	if t.prev >= 0 && since < t.fade {
		t.outTween.Seek(since)
		f.Previous = TickerSlot{
			Index:   t.prev,
			Text:    t.items[t.prev],
			Params:  t.out,
			Visible: true,
		}
	}
	return f
}

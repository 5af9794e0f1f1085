package hero

import "github.com/tanema/gween/ease"

// Stagger describes a sequence of identical reveals whose start times are
// offset by a fixed per-item increment: item i starts at BaseDelay + i*Stride.
type Stagger struct {
	BaseDelay float64
	Stride    float64
	Duration  float64
	Ease      ease.TweenFunc
}

// Start returns the start time of item i.
func (s Stagger) Start(i int) float64 {
	if i < 0 {
		i = 0
	}
	return s.BaseDelay + float64(i)*s.Stride
}

// Timeline returns the non-repeating timeline of item i.
func (s Stagger) Timeline(i int) Timeline {
	return Timeline{
		Delay:    s.Start(i),
		Duration: s.Duration,
		Ease:     s.Ease,
		Repeat:   RepeatNone,
	}
}

// End returns the instant the last of n items completes. With no items the
// stagger ends at BaseDelay.
func (s Stagger) End(n int) float64 {
	if n <= 0 {
		return s.BaseDelay
	}
	return s.Timeline(n - 1).End()
}

// reveal is one staggered item: its timeline, the parameters it writes and the
// tween group writing them.
type reveal struct {
	timeline Timeline
	params   LayerParams
	group    *TweenGroup
}

func (r *reveal) sample(elapsed float64) {
	r.group.Seek(r.timeline.Local(elapsed))
}

// Headline runs the per-line entrance of the headline and, strictly after the
// last line has finished, the subtitle entrance. Both run once per mount.
type Headline struct {
	stagger  Stagger
	lines    []reveal
	subtitle reveal
	out      []LayerParams
}

// NewHeadline builds the reveal sequence for n headline lines from cfg.
func NewHeadline(n int, cfg HeadlineConfig) *Headline {
	if n < 0 {
		n = 0
	}
	fn := EaseNamed(cfg.Ease, EaseOutReveal)
	h := &Headline{
		stagger: Stagger{
			BaseDelay: cfg.BaseDelay,
			Stride:    cfg.Stride,
			Duration:  cfg.LineDuration,
			Ease:      fn,
		},
		lines: make([]reveal, n),
		out:   make([]LayerParams, n),
	}
	for i := range h.lines {
		r := &h.lines[i]
		r.timeline = h.stagger.Timeline(i)
		r.params = IdentityParams
		r.group = TweenReveal(&r.params, cfg.BlurFrom, cfg.OffsetFrom, float32(cfg.LineDuration), fn)
	}

	h.subtitle.timeline = Timeline{
		Delay:    h.stagger.End(n) + cfg.SubtitleBuffer,
		Duration: cfg.SubtitleDuration,
		Ease:     fn,
		Repeat:   RepeatNone,
	}
	h.subtitle.params = IdentityParams
	h.subtitle.group = TweenReveal(&h.subtitle.params, 0, cfg.SubtitleOffsetFrom, float32(cfg.SubtitleDuration), fn)
	return h
}

// Len returns the number of headline lines.
func (h *Headline) Len() int { return len(h.lines) }

// Stagger returns the stagger definition of the lines.
func (h *Headline) Stagger() Stagger { return h.stagger }

// LineStart returns the instant line i begins to reveal.
func (h *Headline) LineStart(i int) float64 { return h.stagger.Start(i) }

// SubtitleStart returns the instant the subtitle begins to reveal.
func (h *Headline) SubtitleStart() float64 { return h.subtitle.timeline.Delay }

// SubtitleTimeline returns the subtitle's timeline.
func (h *Headline) SubtitleTimeline() Timeline { return h.subtitle.timeline }

// Sample evaluates every line and the subtitle at elapsed seconds since mount.
// The returned slice is reused by the next call.
func (h *Headline) Sample(elapsed float64) (lines []LayerParams, subtitle LayerParams) {
	for i := range h.lines {
		h.lines[i].sample(elapsed)
		h.out[i] = h.lines[i].params
	}
	h.subtitle.sample(elapsed)
	return h.out, h.subtitle.params
}

// Line evaluates line i at elapsed seconds. Out-of-range lines are hidden.
func (h *Headline) Line(i int, elapsed float64) LayerParams {
	if i < 0 || i >= len(h.lines) {
		return LayerParams{Scale: 1}
	}
	h.lines[i].sample(elapsed)
	return h.lines[i].params
}

// Subtitle evaluates the subtitle at elapsed seconds.
func (h *Headline) Subtitle(elapsed float64) LayerParams {
	h.subtitle.sample(elapsed)
	return h.subtitle.params
}

// LineRevealed reports whether line i has fully revealed by elapsed.
func (h *Headline) LineRevealed(i int, elapsed float64) bool {
	if i < 0 || i >= len(h.lines) {
		return false
	}
	return h.lines[i].timeline.Done(elapsed)
}

// SubtitleRevealed reports whether the subtitle has fully revealed by elapsed.
func (h *Headline) SubtitleRevealed(elapsed float64) bool {
	return h.subtitle.timeline.Done(elapsed)
}

// Complete reports whether every line and the subtitle have finished.
func (h *Headline) Complete(elapsed float64) bool {
	return h.SubtitleRevealed(elapsed)
}

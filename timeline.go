package hero

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// RepeatPolicy controls what a Timeline's local clock does after Duration.
type RepeatPolicy uint8

const (
	RepeatNone RepeatPolicy = iota // clock stops at Duration
	RepeatLoop                     // clock wraps back to 0
	RepeatYoyo                     // clock runs back down to 0, then up again
)

// String returns the policy name used in configuration files.
func (r RepeatPolicy) String() string {
	switch r {
	case RepeatLoop:
		return "loop"
	case RepeatYoyo:
		return "yoyo"
	default:
		return "none"
	}
}

// Timeline is a time-driven animation definition. It holds no clock of its own:
// callers pass the time elapsed since the timeline's owner started and Local
// derives the timeline's local clock from it, so sampling the same instant twice
// always yields the same frame.
type Timeline struct {
	Delay    float64
	Duration float64
	Ease     ease.TweenFunc
	Repeat   RepeatPolicy
}

// Local maps elapsed seconds to the timeline's local clock. Before Delay the
// result is negative. For RepeatNone it stops at Duration; looping policies wrap
// it according to Repeat.
func (tl Timeline) Local(elapsed float64) float64 {
	t := elapsed - tl.Delay
	if t < 0 {
		return t
	}
	d := tl.Duration
	if d <= 0 {
		return 0
	}
	switch tl.Repeat {
	case RepeatLoop:
		return math.Mod(t, d)
	case RepeatYoyo:
		m := math.Mod(t, 2*d)
		if m > d {
			m = 2*d - m
		}
		return m
	default:
		return math.Min(t, d)
	}
}

// Started reports whether elapsed has reached the timeline's Delay.
func (tl Timeline) Started(elapsed float64) bool {
	return elapsed >= tl.Delay
}

// Done reports whether a non-repeating timeline has finished. Repeating
// timelines never finish.
func (tl Timeline) Done(elapsed float64) bool {
	return tl.Repeat == RepeatNone && elapsed >= tl.End()
}

// End returns Delay+Duration, the instant a non-repeating timeline completes.
func (tl Timeline) End() float64 {
	return tl.Delay + math.Max(tl.Duration, 0)
}

// Progress returns the eased progress in [0, 1] at elapsed seconds.
func (tl Timeline) Progress(elapsed float64) float64 {
	if !tl.Started(elapsed) {
		return 0
	}
	if tl.Duration <= 0 {
		return 1
	}
	local := tl.Local(elapsed)
	fn := tl.Ease
	if fn == nil {
		fn = ease.Linear
	}
	return float64(fn(float32(local), 0, 1, float32(tl.Duration)))
}

// Track is a list of keyframe values spread evenly over a duration. Each
// segment between two neighbouring keyframes is eased on its own, so 1, 1.05, 1
// with InOutSine rises and falls smoothly and rests at both ends.
type Track struct {
	values   []float64
	segments []*gween.Tween
	span     float64
}

// NewTrack builds a Track over duration seconds. A single value yields a
// constant track; no values yield a track that always returns 0.
func NewTrack(duration float64, fn ease.TweenFunc, values ...float64) *Track {
	if fn == nil {
		fn = ease.Linear
	}
	tr := &Track{values: append([]float64(nil), values...)}
	if len(values) < 2 {
		return tr
	}
	n := len(values) - 1
	tr.span = duration / float64(n)
	tr.segments = make([]*gween.Tween, n)
	for i := 0; i < n; i++ {
		tr.segments[i] = gween.New(float32(values[i]), float32(values[i+1]), float32(tr.span), fn)
	}
	return tr
}

// At returns the track value at local time t. Times before 0 hold the first
// keyframe and times past the end hold the last. NaN holds the first keyframe.
func (tr *Track) At(t float64) float64 {
	switch len(tr.values) {
	case 0:
		return 0
	case 1:
		return tr.values[0]
	}
	if math.IsNaN(t) {
		return tr.values[0]
	}
	if t <= 0 || tr.span <= 0 {
		if tr.span <= 0 && t > 0 {
			return tr.values[len(tr.values)-1]
		}
		return tr.values[0]
	}
	if t >= tr.span*float64(len(tr.segments)) {
		return tr.values[len(tr.values)-1]
	}
	idx := int(t / tr.span)
	if idx >= len(tr.segments) {
		return tr.values[len(tr.values)-1]
	}
	v, _ := tr.segments[idx].Set(float32(t - float64(idx)*tr.span))
	return float64(v)
}

// Keyframes returns a copy of the track's keyframe values.
func (tr *Track) Keyframes() []float64 {
	return append([]float64(nil), tr.values...)
}

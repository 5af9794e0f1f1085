package hero

import "github.com/tanema/gween/ease"

// HintState is the visibility of the scroll hint.
type HintState uint8

const (
	HintVisible HintState = iota
	HintHidden
)

// String returns the state name.
func (s HintState) String() string {
	if s == HintHidden {
		return "hidden"
	}
	return "visible"
}

// HideReason records what retired the hint.
type HideReason uint8

const (
	HideNone    HideReason = iota // still visible
	HideScroll                    // first scroll event
	HideTimeout                   // timeout since mount
	HideUnmount                   // section unmounted while visible
)

// String returns the reason name.
func (r HideReason) String() string {
	switch r {
	case HideScroll:
		return "scroll"
	case HideTimeout:
		return "timeout"
	case HideUnmount:
		return "unmount"
	default:
		return "none"
	}
}

// HintFrame is the sampled scroll hint. Opacity is the container opacity
// (it fades out after hiding); MarkerY and MarkerOpacity describe the pulsing
// marker, which only moves while Pulsing.
type HintFrame struct {
	State         HintState
	Opacity       float64
	MarkerY       float64
	MarkerOpacity float64
	Pulsing       bool
}

// HintController is the one-shot Visible→Hidden state machine of the scroll
// hint. It hides on the first scroll or after a timeout, whichever comes first,
// and never shows again. Hiding stops the pulse playback and the timeout timer
// so no driver outlives the hint.
type HintController struct {
	state    HintState
	reason   HideReason
	hiddenAt float64

	timeout float64
	clock   *Clock
	timer   *Timer

	pulseTimeline Timeline
	pulse         *Playback
	markerY       *Track
	markerOpacity *Track

	fade      LayerParams
	fadeTween *TweenGroup

	// OnHide, when set, is called once when the hint hides.
	OnHide func(reason HideReason)
}

// NewHintController builds a visible hint from cfg. It does nothing until
// Mount.
func NewHintController(cfg HintConfig) *HintController {
	fn := EaseNamed(cfg.Ease, ease.InOutSine)
	h := &HintController{
		timeout: cfg.Timeout,
		pulseTimeline: Timeline{
			Duration: cfg.PulsePeriod,
			Ease:     fn,
			Repeat:   RepeatLoop,
		},
		markerY:       NewTrack(cfg.PulsePeriod, fn, 0, cfg.Travel, 0),
		markerOpacity: NewTrack(cfg.PulsePeriod, fn, 1, cfg.PulseOpacity, 1),
		fade:          IdentityParams,
	}
	h.fadeTween = TweenOpacity(&h.fade, 1, 0, float32(cfg.FadeOut), ease.Linear)
	return h
}

// Mount starts the timeout and the pulse on c. A hint that is already hidden
// stays hidden and starts nothing.
func (h *HintController) Mount(c *Clock) {
	h.clock = c
	if h.state == HintHidden || h.timer.Active() {
		return
	}
	h.timer = c.After(h.timeout, func() { h.hide(HideTimeout) })
	h.pulse = c.Play(h.pulseTimeline)
}

// OnScroll hides the hint if it is still visible.
func (h *HintController) OnScroll() {
	h.hide(HideScroll)
}

// Unmount releases every driver. A visible hint is retired.
func (h *HintController) Unmount() {
	h.hide(HideUnmount)
	h.timer.Stop()
	h.pulse.Stop()
}

func (h *HintController) hide(reason HideReason) {
	if h.state == HintHidden {
		return
	}
	h.state = HintHidden
	h.reason = reason
	if h.clock != nil {
		h.hiddenAt = h.clock.Now()
	}
	h.timer.Stop()
	h.pulse.Stop()
	if h.OnHide != nil {
		h.OnHide(reason)
	}
}

// State returns the current state.
func (h *HintController) State() HintState { return h.state }

// Visible reports whether the hint is still visible.
func (h *HintController) Visible() bool { return h.state == HintVisible }

// Reason returns what hid the hint, or HideNone.
func (h *HintController) Reason() HideReason { return h.reason }

// HiddenAt returns the clock time the hint hid at. Only meaningful once hidden.
func (h *HintController) HiddenAt() float64 { return h.hiddenAt }

// Pulsing reports whether the pulse playback is running.
func (h *HintController) Pulsing() bool {
	return h.pulse != nil && !h.pulse.Stopped()
}

// Frame samples the hint at the clock's current time.
func (h *HintController) Frame() HintFrame {
	f := HintFrame{State: h.state, Opacity: 1, MarkerOpacity: 1}
	var local float64
	if h.pulse != nil {
		local = h.pulse.Local()
	}
	f.MarkerY = h.markerY.At(local)
	f.MarkerOpacity = h.markerOpacity.At(local)
	f.Pulsing = h.Pulsing()
	if h.state == HintHidden {
		var now float64
		if h.clock != nil {
			now = h.clock.Now()
		}
		h.fadeTween.Seek(now - h.hiddenAt)
		f.Opacity = h.fade.Opacity
	}
	return f
}

package hero

import "github.com/tanema/gween/ease"

// BackgroundFrame is the sampled state of the ambient background morph.
// Roundness is a corner radius in percent; Rotation is in degrees.
type BackgroundFrame struct {
	Scale     float64
	Roundness float64
	Rotation  float64
}

// Ambient is the background morph: an endless loop that breathes the
// background's scale, corner roundness and rotation out and back.
type Ambient struct {
	timeline  Timeline
	scale     *Track
	roundness *Track
	rotation  *Track
	playback  *Playback
}

// NewAmbient builds the ambient loop from cfg. It does nothing until Start.
func NewAmbient(cfg AmbientConfig) *Ambient {
	fn := EaseNamed(cfg.Ease, ease.InOutSine)
	return &Ambient{
		timeline: Timeline{
			Duration: cfg.Period,
			Ease:     fn,
			Repeat:   RepeatLoop,
		},
		scale:     NewTrack(cfg.Period, fn, cfg.Scale...),
		roundness: NewTrack(cfg.Period, fn, cfg.Roundness...),
		rotation:  NewTrack(cfg.Period, fn, cfg.Rotation...),
	}
}

// Start begins the loop on c. Starting a running loop is a no-op.
func (a *Ambient) Start(c *Clock) {
	if a.playback != nil && !a.playback.Stopped() {
		return
	}
	a.playback = c.Play(a.timeline)
}

// Stop releases the loop's driver. Safe to call repeatedly.
func (a *Ambient) Stop() {
	a.playback.Stop()
}

// Running reports whether the loop is driven by a clock.
func (a *Ambient) Running() bool {
	return a.playback != nil && !a.playback.Stopped()
}

// Frame samples the loop at the playback's current time. Before Start the
// first keyframe of each track is returned.
func (a *Ambient) Frame() BackgroundFrame {
	var local float64
	if a.playback != nil {
		local = a.playback.Local()
	}
	return a.At(local)
}

// At samples the loop at local time t within one period.
func (a *Ambient) At(t float64) BackgroundFrame {
	return BackgroundFrame{
		Scale:     a.scale.At(t),
		Roundness: a.roundness.At(t),
		Rotation:  a.rotation.At(t),
	}
}

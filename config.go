package hero

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Config holds every tunable of the hero section. The zero value is not
// useful; start from DefaultConfig or LoadConfig.
type Config struct {
	Scroll    ScrollConfig    `yaml:"scroll"`
	Transform TransformConfig `yaml:"transform"`
	Headline  HeadlineConfig  `yaml:"headline"`
	Ambient   AmbientConfig   `yaml:"ambient"`
	Ticker    TickerConfig    `yaml:"ticker"`
	Hint      HintConfig      `yaml:"hint"`
	Button    ButtonConfig    `yaml:"button"`
}

// ScrollConfig controls progress computation.
type ScrollConfig struct {
	// RebindOnResize makes viewport resizes replace the progress denominator.
	// By default the height captured at mount is kept.
	RebindOnResize bool `yaml:"rebindOnResize"`
}

// TransformConfig holds the scroll-linked ranges and the pointer tilt.
type TransformConfig struct {
	SceneScale      LinearRange `yaml:"sceneScale"`
	SceneOffsetY    LinearRange `yaml:"sceneOffsetY"`
	HeadlineScale   LinearRange `yaml:"headlineScale"`
	HeadlineOpacity LinearRange `yaml:"headlineOpacity"`
	GlowOpacity     float64     `yaml:"glowOpacity"`
	TiltDegrees     float64     `yaml:"tiltDegrees"`
}

// HeadlineConfig holds the staggered line reveal and the subtitle reveal.
type HeadlineConfig struct {
	Lines              []string `yaml:"lines"`
	Subtitle           string   `yaml:"subtitle"`
	BaseDelay          float64  `yaml:"baseDelay"`
	Stride             float64  `yaml:"stride"`
	LineDuration       float64  `yaml:"lineDuration"`
	BlurFrom           float64  `yaml:"blurFrom"`
	OffsetFrom         float64  `yaml:"offsetFrom"`
	SubtitleBuffer     float64  `yaml:"subtitleBuffer"`
	SubtitleDuration   float64  `yaml:"subtitleDuration"`
	SubtitleOffsetFrom float64  `yaml:"subtitleOffsetFrom"`
	Ease               string   `yaml:"ease"`
}

// AmbientConfig holds the background morph loop. Each track lists keyframes
// spread evenly over Period.
type AmbientConfig struct {
	Period    float64   `yaml:"period"`
	Scale     []float64 `yaml:"scale"`
	Roundness []float64 `yaml:"roundness"`
	Rotation  []float64 `yaml:"rotation"`
	Ease      string    `yaml:"ease"`
}

// TickerConfig holds the rotating status ticker.
type TickerConfig struct {
	Items    []string `yaml:"items"`
	Interval float64  `yaml:"interval"`
	Fade     float64  `yaml:"fade"`
	Offset   float64  `yaml:"offset"`
	Ease     string   `yaml:"ease"`
}

// HintConfig holds the scroll hint lifecycle and its pulse.
type HintConfig struct {
	Timeout      float64 `yaml:"timeout"`
	PulsePeriod  float64 `yaml:"pulsePeriod"`
	Travel       float64 `yaml:"travel"`
	PulseOpacity float64 `yaml:"pulseOpacity"`
	FadeOut      float64 `yaml:"fadeOut"`
	Ease         string  `yaml:"ease"`
}

// ButtonConfig holds the call-to-action button and its hover lift. Bounds are
// fractions of the viewport.
type ButtonConfig struct {
	Label    string  `yaml:"label"`
	Bounds   HitRect `yaml:"bounds"`
	Lift     float64 `yaml:"lift"`
	Duration float64 `yaml:"duration"`
	Ease     string  `yaml:"ease"`
}

// DefaultConfig returns the reference hero configuration.
func DefaultConfig() Config {
	return Config{
		Transform: TransformConfig{
			SceneScale:      LinearRange{From: 1, To: 0.7},
			SceneOffsetY:    LinearRange{From: 0, To: -150},
			HeadlineScale:   LinearRange{From: 1, To: 0.85},
			HeadlineOpacity: LinearRange{From: 1, To: 0.3},
			GlowOpacity:     0.65,
			TiltDegrees:     5,
		},
		Headline: HeadlineConfig{
			Lines:              []string{"We Engineer", "Attention,", "Emotion,", "Action."},
			Subtitle:           "Psychology-driven design for brands that demand measurable results.",
			BaseDelay:          0.3,
			Stride:             0.8,
			LineDuration:       0.9,
			BlurFrom:           8,
			OffsetFrom:         8,
			SubtitleBuffer:     1.2,
			SubtitleDuration:   0.8,
			SubtitleOffsetFrom: 10,
			Ease:               "out-reveal",
		},
		Ambient: AmbientConfig{
			Period:    45,
			Scale:     []float64{1, 1.05, 1},
			Roundness: []float64{35, 40, 35},
			Rotation:  []float64{0, 2, 0},
			Ease:      "in-out-sine",
		},
		Ticker: TickerConfig{
			Items: []string{
				"Currently accepting 3 clients this quarter",
				"127% average conversion lift",
				"92ms median interaction latency",
				"4.9/5 engagement quality score",
			},
			Interval: 2.8,
			Fade:     0.5,
			Offset:   6,
			Ease:     "in-out-quad",
		},
		Hint: HintConfig{
			Timeout:      3,
			PulsePeriod:  1.6,
			Travel:       22,
			PulseOpacity: 0.6,
			FadeOut:      0.6,
			Ease:         "in-out-sine",
		},
		Button: ButtonConfig{
			Label:    "Explore The Framework →",
			Bounds:   HitRect{X: 0.08, Y: 0.74, Width: 0.2, Height: 0.07},
			Lift:     4,
			Duration: 0.35,
			Ease:     "out-reveal",
		},
	}
}

// LoadConfig parses YAML over DefaultConfig, so a file only needs the keys it
// changes, then resets out-of-range values to their defaults.
func LoadConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse hero config: %w", err)
	}
	cfg.Verify()
	return cfg, nil
}

// Verify resets durations, periods, intervals and the line stride when they
// are not positive, and keyframe tracks with fewer than two values, to the
// defaults. A ticker fade longer than the interval is cut to the interval.
func (c *Config) Verify() {
	def := DefaultConfig()

	if c.Headline.BaseDelay < 0 {
		c.Headline.BaseDelay = def.Headline.BaseDelay
	}
	if c.Headline.Stride <= 0 {
		c.Headline.Stride = def.Headline.Stride
	}
	if c.Headline.LineDuration <= 0 {
		c.Headline.LineDuration = def.Headline.LineDuration
	}
	if c.Headline.SubtitleBuffer < 0 {
		c.Headline.SubtitleBuffer = def.Headline.SubtitleBuffer
	}
	if c.Headline.SubtitleDuration <= 0 {
		c.Headline.SubtitleDuration = def.Headline.SubtitleDuration
	}

	if c.Ambient.Period <= 0 {
		c.Ambient.Period = def.Ambient.Period
	}
	if len(c.Ambient.Scale) < 2 {
		c.Ambient.Scale = def.Ambient.Scale
	}
	if len(c.Ambient.Roundness) < 2 {
		c.Ambient.Roundness = def.Ambient.Roundness
	}
	if len(c.Ambient.Rotation) < 2 {
		c.Ambient.Rotation = def.Ambient.Rotation
	}

	if c.Ticker.Interval <= 0 {
		c.Ticker.Interval = def.Ticker.Interval
	}
	if c.Ticker.Fade < 0 {
		c.Ticker.Fade = def.Ticker.Fade
	}
	if c.Ticker.Fade > c.Ticker.Interval {
		c.Ticker.Fade = c.Ticker.Interval
	}

	if c.Hint.Timeout <= 0 {
		c.Hint.Timeout = def.Hint.Timeout
	}
	if c.Hint.PulsePeriod <= 0 {
		c.Hint.PulsePeriod = def.Hint.PulsePeriod
	}
	if c.Hint.PulseOpacity < 0 || c.Hint.PulseOpacity > 1 {
		c.Hint.PulseOpacity = def.Hint.PulseOpacity
	}
	if c.Hint.FadeOut < 0 {
		c.Hint.FadeOut = def.Hint.FadeOut
	}

	if c.Transform.GlowOpacity < 0 || c.Transform.GlowOpacity > 1 {
		c.Transform.GlowOpacity = def.Transform.GlowOpacity
	}

	if c.Button.Lift < 0 {
		c.Button.Lift = def.Button.Lift
	}
	if c.Button.Duration <= 0 {
		c.Button.Duration = def.Button.Duration
	}
	if c.Button.Bounds.Width <= 0 || c.Button.Bounds.Height <= 0 {
		c.Button.Bounds = def.Button.Bounds
	}
}

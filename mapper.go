package hero

// LinearRange is a start/end pair interpolated linearly by a ratio in [0, 1].
type LinearRange struct {
	From float64 `yaml:"from"`
	To   float64 `yaml:"to"`
}

// At returns the value at ratio p. p is clamped to [0, 1] first, so overscroll
// never extrapolates past either end.
func (r LinearRange) At(p float64) float64 {
	p = clamp01(p)
	return r.From + (r.To-r.From)*p
}

// Mapper turns a ProgressRatio and a PointerVector into a ParameterSet. It is a
// plain value with no state; Map can be called on every scroll, resize or
// pointer event.
type Mapper struct {
	SceneScale      LinearRange
	SceneOffsetY    LinearRange
	HeadlineScale   LinearRange
	HeadlineOpacity LinearRange

	// GlowOpacity is the constant opacity of the glow overlay.
	GlowOpacity float64
	// TiltDegrees is the glow rotation per unit of normalized pointer offset.
	TiltDegrees float64
}

// NewMapper builds a Mapper from the transform section of a Config.
func NewMapper(cfg TransformConfig) Mapper {
	return Mapper{
		SceneScale:      cfg.SceneScale,
		SceneOffsetY:    cfg.SceneOffsetY,
		HeadlineScale:   cfg.HeadlineScale,
		HeadlineOpacity: cfg.HeadlineOpacity,
		GlowOpacity:     cfg.GlowOpacity,
		TiltDegrees:     cfg.TiltDegrees,
	}
}

// Map computes the parameters of every layer for progress p and pointer ptr.
//
// The glow overlay is positioned inside the scene wrapper, so its scale and
// offset repeat the scene's; the pointer tilt is layered on top and does not
// depend on p.
func (m Mapper) Map(p float64, ptr Vec2) ParameterSet {
	p = clamp01(p)

	var ps ParameterSet

	scene := IdentityParams
	scene.Scale = m.SceneScale.At(p)
	scene.TranslateY = m.SceneOffsetY.At(p)
	ps[LayerScene] = scene

	glow := scene
	glow.Opacity = m.GlowOpacity
	glow.RotateX, glow.RotateY = m.Tilt(ptr)
	ps[LayerGlow] = glow

	headline := IdentityParams
	headline.Scale = m.HeadlineScale.At(p)
	headline.Opacity = m.HeadlineOpacity.At(p)
	ps[LayerHeadline] = headline

	return ps
}

// Tilt returns the pointer parallax rotation in degrees: around X it follows
// -k*ptr.Y, around Y it follows +k*ptr.X.
func (m Mapper) Tilt(ptr Vec2) (rotateX, rotateY float64) {
	return -m.TiltDegrees * ptr.Y, m.TiltDegrees * ptr.X
}

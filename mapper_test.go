package hero

import (
	"math"
	"testing"
)

func defaultMapper() Mapper {
	return NewMapper(DefaultConfig().Transform)
}

func TestMapperScrollLinkedValues(t *testing.T) {
	m := defaultMapper()
	for _, p := range []float64{0, 0.1, 0.25, 0.5, 0.75, 0.9, 1} {
		ps := m.Map(p, Vec2{})

		scene := ps.Get(LayerScene)
		if want := 1 - 0.3*p; math.Abs(scene.Scale-want) > 1e-9 {
			t.Errorf("p=%v: scene scale = %v, want %v", p, scene.Scale, want)
		}
		if want := -150 * p; math.Abs(scene.TranslateY-want) > 1e-9 {
			t.Errorf("p=%v: scene offset = %v, want %v", p, scene.TranslateY, want)
		}

		headline := ps.Get(LayerHeadline)
		if want := 1 - 0.7*p; math.Abs(headline.Opacity-want) > 1e-9 {
			t.Errorf("p=%v: headline opacity = %v, want %v", p, headline.Opacity, want)
		}
		if want := 1 - 0.15*p; math.Abs(headline.Scale-want) > 1e-9 {
			t.Errorf("p=%v: headline scale = %v, want %v", p, headline.Scale, want)
		}
	}
}

func TestMapperEndpoints(t *testing.T) {
	m := defaultMapper()

	top := m.Map(0, Vec2{})
	if top[LayerScene].Scale != 1 || top[LayerScene].TranslateY != 0 {
		t.Errorf("p=0 scene = %+v, want scale 1 offset 0", top[LayerScene])
	}
	if top[LayerHeadline].Opacity != 1 {
		t.Errorf("p=0 headline opacity = %v, want 1", top[LayerHeadline].Opacity)
	}

	bottom := m.Map(1, Vec2{})
	if math.Abs(bottom[LayerScene].Scale-0.7) > 1e-12 {
		t.Errorf("p=1 scene scale = %v, want 0.7", bottom[LayerScene].Scale)
	}
	if bottom[LayerScene].TranslateY != -150 {
		t.Errorf("p=1 scene offset = %v, want -150", bottom[LayerScene].TranslateY)
	}
	if math.Abs(bottom[LayerHeadline].Opacity-0.3) > 1e-12 {
		t.Errorf("p=1 headline opacity = %v, want 0.3", bottom[LayerHeadline].Opacity)
	}
}

func TestMapperClampsOutOfRangeProgress(t *testing.T) {
	m := defaultMapper()
	if m.Map(-0.5, Vec2{}) != m.Map(0, Vec2{}) {
		t.Error("negative progress should map like 0")
	}
	if m.Map(3, Vec2{}) != m.Map(1, Vec2{}) {
		t.Error("progress > 1 should map like 1")
	}
	if m.Map(math.NaN(), Vec2{}) != m.Map(0, Vec2{}) {
		t.Error("NaN progress should map like 0")
	}
}

func TestMapperTilt(t *testing.T) {
	m := defaultMapper()
	rx, ry := m.Tilt(Vec2{X: 0.5, Y: -0.5})
	if rx != 2.5 {
		t.Errorf("rotateX = %v, want 2.5 (-5 * -0.5)", rx)
	}
	if ry != 2.5 {
		t.Errorf("rotateY = %v, want 2.5 (5 * 0.5)", ry)
	}

	rx, ry = m.Tilt(Vec2{X: -0.2, Y: 0.4})
	if math.Abs(rx+2) > 1e-12 || math.Abs(ry+1) > 1e-12 {
		t.Errorf("tilt = (%v, %v), want (-2, -1)", rx, ry)
	}
}

func TestMapperGlowLayersTiltOverScene(t *testing.T) {
	m := defaultMapper()
	ptr := Vec2{X: 0.3, Y: 0.1}

	for _, p := range []float64{0, 0.4, 1} {
		ps := m.Map(p, ptr)
		scene, glow := ps[LayerScene], ps[LayerGlow]
		if glow.Scale != scene.Scale || glow.TranslateY != scene.TranslateY {
			t.Errorf("p=%v: glow %+v should follow scene %+v", p, glow, scene)
		}
		if glow.Opacity != 0.65 {
			t.Errorf("p=%v: glow opacity = %v, want 0.65", p, glow.Opacity)
		}
		wantX, wantY := m.Tilt(ptr)
		if glow.RotateX != wantX || glow.RotateY != wantY {
			t.Errorf("p=%v: glow rotation = (%v, %v), want (%v, %v)", p, glow.RotateX, glow.RotateY, wantX, wantY)
		}
		if scene.RotateX != 0 || scene.RotateY != 0 {
			t.Errorf("p=%v: scene should not tilt, got (%v, %v)", p, scene.RotateX, scene.RotateY)
		}
	}
}

func TestLinearRangeAt(t *testing.T) {
	r := LinearRange{From: 10, To: 20}
	if got := r.At(0.5); got != 15 {
		t.Errorf("At(0.5) = %v, want 15", got)
	}
	if got := r.At(-1); got != 10 {
		t.Errorf("At(-1) = %v, want 10", got)
	}
	if got := r.At(2); got != 20 {
		t.Errorf("At(2) = %v, want 20", got)
	}
}

func TestParameterSetGetUnknownLayer(t *testing.T) {
	var ps ParameterSet
	if got := ps.Get(Layer(200)); got != IdentityParams {
		t.Errorf("Get(unknown) = %+v, want IdentityParams", got)
	}
}

func TestLayerString(t *testing.T) {
	for l, want := range map[Layer]string{
		LayerScene:    "scene",
		LayerGlow:     "glow",
		LayerHeadline: "headline",
		Layer(99):     "unknown",
	} {
		if got := l.String(); got != want {
			t.Errorf("Layer(%d).String() = %q, want %q", l, got, want)
		}
	}
}

func TestMapperMapZeroAlloc(t *testing.T) {
	m := defaultMapper()
	ptr := Vec2{X: 0.1, Y: 0.2}
	var sink ParameterSet
	result := testing.AllocsPerRun(100, func() {
		sink = m.Map(0.42, ptr)
	})
	_ = sink
	if result > 0 {
		t.Errorf("Mapper.Map allocated %f times per run, want 0", result)
	}
}

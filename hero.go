package hero

import "math"

// Vec2 is a 2D vector used for pointer offsets and viewport sizes.
type Vec2 struct {
	X, Y float64
}

// Layer identifies an animated layer of the hero section. Each layer owns one
// LayerParams entry in a ParameterSet.
type Layer uint8

const (
	LayerScene    Layer = iota // embedded 3D scene wrapper
	LayerGlow                  // glow overlay drawn over the scene, tilted by the pointer
	LayerHeadline              // headline block (all lines together)

	layerCount
)

// String returns the layer's name.
func (l Layer) String() string {
	switch l {
	case LayerScene:
		return "scene"
	case LayerGlow:
		return "glow"
	case LayerHeadline:
		return "headline"
	default:
		return "unknown"
	}
}

// Layers lists every layer in draw order.
var Layers = [layerCount]Layer{LayerScene, LayerGlow, LayerHeadline}

// LayerParams is the set of visual parameters the render surface applies to a
// layer. Rotations are in degrees, offsets and blur in layout units.
type LayerParams struct {
	Scale      float64
	TranslateY float64
	Opacity    float64
	RotateX    float64
	RotateY    float64
	Blur       float64
}

// IdentityParams leaves a layer untouched: unit scale, fully opaque.
var IdentityParams = LayerParams{Scale: 1, Opacity: 1}

// ParameterSet maps every Layer to its current LayerParams. It is a value type
// so a freshly mapped set never aliases a previous one.
type ParameterSet [layerCount]LayerParams

// Get returns the parameters of layer l. Unknown layers yield IdentityParams.
func (ps ParameterSet) Get(l Layer) LayerParams {
	if l >= layerCount {
		return IdentityParams
	}
	return ps[l]
}

// clamp01 clamps v to [0, 1]. NaN maps to 0.
func clamp01(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// finite returns v, or fallback when v is NaN or infinite.
func finite(v, fallback float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return v
}

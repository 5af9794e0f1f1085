package hero

import (
	"math"

	"github.com/tanema/gween/ease"
)

// CubicBezier returns an easing function following the CSS cubic-bezier curve
// through (0,0), (x1,y1), (x2,y2), (1,1). x1 and x2 are clamped to [0, 1] so
// the curve stays a function of time.
func CubicBezier(x1, y1, x2, y2 float64) ease.TweenFunc {
	x1 = clamp01(x1)
	x2 = clamp01(x2)

	// Polynomial coefficients for B(s) = ((a*s + b)*s + c)*s.
	cx := 3 * x1
	bx := 3*(x2-x1) - cx
	ax := 1 - cx - bx
	cy := 3 * y1
	by := 3*(y2-y1) - cy
	ay := 1 - cy - by

	sampleX := func(s float64) float64 { return ((ax*s+bx)*s + cx) * s }
	sampleY := func(s float64) float64 { return ((ay*s+by)*s + cy) * s }
	slopeX := func(s float64) float64 { return (3*ax*s+2*bx)*s + cx }

	solve := func(x float64) float64 {
		s := x
		for i := 0; i < 8; i++ {
			dx := sampleX(s) - x
			if math.Abs(dx) < 1e-7 {
				return s
			}
			d := slopeX(s)
			if math.Abs(d) < 1e-6 {
				break
			}
			s -= dx / d
		}
		// Newton stalled on a flat section: bisect.
		lo, hi := 0.0, 1.0
		s = x
		for i := 0; i < 32 && lo < hi; i++ {
			v := sampleX(s)
			if math.Abs(v-x) < 1e-7 {
				break
			}
			if v < x {
				lo = s
			} else {
				hi = s
			}
			s = (lo + hi) / 2
		}
		return s
	}

	return func(t, b, c, d float32) float32 {
		if d <= 0 {
			return b + c
		}
		x := clamp01(float64(t / d))
		return b + c*float32(sampleY(solve(x)))
	}
}

// EaseOutReveal is the ease-out curve used by the headline, subtitle and ticker
// entrances: cubic-bezier(0.22, 1, 0.36, 1). It rises fast and settles slowly.
var EaseOutReveal = CubicBezier(0.22, 1, 0.36, 1)

// easeByName resolves the easing names accepted in configuration files.
var easeByName = map[string]ease.TweenFunc{
	"linear":       ease.Linear,
	"in-out-sine":  ease.InOutSine,
	"in-out-quad":  ease.InOutQuad,
	"in-out-cubic": ease.InOutCubic,
	"out-cubic":    ease.OutCubic,
	"out-quint":    ease.OutQuint,
	"out-expo":     ease.OutExpo,
	"out-reveal":   EaseOutReveal,
}

// EaseNamed returns the easing function registered under name, or fallback if
// the name is unknown or empty.
func EaseNamed(name string, fallback ease.TweenFunc) ease.TweenFunc {
	if fn, ok := easeByName[name]; ok {
		return fn
	}
	return fallback
}

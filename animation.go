package hero

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields of a LayerParams simultaneously.
// Create one via the convenience constructors (TweenReveal, TweenSlide) and
// either call Update(dt) each frame or Seek to an absolute local time. The group
// writes values straight into the target fields.
//
// There is no global animation manager: owners drive their groups themselves.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	Done   bool
}

// Update advances all tweens by dt seconds and writes values to the target
// fields.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// Seek places every tween at local time t and writes the values. Negative
// times hold the start values. Unlike Update, Seek may move backwards, which
// lets a timeline be sampled at any instant.
func (g *TweenGroup) Seek(t float64) {
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Set(float32(t))
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// add registers a tween from..to on field.
func (g *TweenGroup) add(field *float64, from, to float64, duration float32, fn ease.TweenFunc) {
	g.tweens[g.count] = gween.New(float32(from), float32(to), duration, fn)
	g.fields[g.count] = field
	g.count++
}

// TweenReveal creates a TweenGroup that brings p in: Opacity 0→1, Blur
// blurFrom→0 and TranslateY offsetFrom→0. The start values are written to p
// immediately.
func TweenReveal(p *LayerParams, blurFrom, offsetFrom float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{}
	g.add(&p.Opacity, 0, 1, duration, fn)
	g.add(&p.Blur, blurFrom, 0, duration, fn)
	g.add(&p.TranslateY, offsetFrom, 0, duration, fn)
	g.Seek(0)
	return g
}

// TweenSlide creates a TweenGroup that animates p.Opacity and p.TranslateY
// between the given values. It is used for both halves of a crossfade.
func TweenSlide(p *LayerParams, opacityFrom, opacityTo, offsetFrom, offsetTo float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{}
	g.add(&p.Opacity, opacityFrom, opacityTo, duration, fn)
	g.add(&p.TranslateY, offsetFrom, offsetTo, duration, fn)
	g.Seek(0)
	return g
}

// TweenOpacity creates a TweenGroup that animates p.Opacity only.
func TweenOpacity(p *LayerParams, from, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{}
	g.add(&p.Opacity, from, to, duration, fn)
	g.Seek(0)
	return g
}

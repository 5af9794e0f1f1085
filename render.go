package hero

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when the color is handed to ebiten.
type Color struct {
	R, G, B, A float64
}

// RGBA8 returns the premultiplied color.RGBA for c.
func (c Color) RGBA8() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// WithAlpha returns c with its alpha multiplied by a.
func (c Color) WithAlpha(a float64) Color {
	c.A *= clamp01(a)
	return c
}

// Palette is the set of colors the Painter uses.
type Palette struct {
	Background Color
	Accent     Color
	Text       Color
	Muted      Color
}

// DefaultPalette is the reference palette: charcoal background, deep green
// accent, off-white headline and grey subtitle.
var DefaultPalette = Palette{
	Background: Color{R: 0.102, G: 0.102, B: 0.102, A: 1},
	Accent:     Color{R: 0.173, G: 0.373, B: 0.302, A: 1},
	Text:       Color{R: 0.98, G: 0.98, B: 0.98, A: 1},
	Muted:      Color{R: 0.6, G: 0.6, B: 0.6, A: 1},
}

// BlendMode selects a compositing operation. Each maps to a specific ebiten.Blend value.
type BlendMode uint8

const (
	BlendNormal BlendMode = iota // source-over (standard alpha blending)
	BlendAdd                     // additive / lighter
	BlendScreen                  // screen (1 - (1-src)*(1-dst); only brightens)
)

// EbitenBlend returns the ebiten.Blend value corresponding to this BlendMode.
func (b BlendMode) EbitenBlend() ebiten.Blend {
	switch b {
	case BlendAdd:
		return ebiten.BlendLighter
	case BlendScreen:
		return ebiten.Blend{
			BlendFactorSourceRGB:        ebiten.BlendFactorOne,
			BlendFactorSourceAlpha:      ebiten.BlendFactorOne,
			BlendFactorDestinationRGB:   ebiten.BlendFactorOneMinusSourceColor,
			BlendFactorDestinationAlpha: ebiten.BlendFactorOneMinusSourceAlpha,
			BlendOperationRGB:           ebiten.BlendOperationAdd,
			BlendOperationAlpha:         ebiten.BlendOperationAdd,
		}
	default:
		return ebiten.BlendSourceOver
	}
}

// Widget is the embedded 3D scene: an opaque external widget identified by a
// URL. The core only positions, scales and overlays its image.
type Widget interface {
	URL() string
	Image() *ebiten.Image
}

// PlaceholderWidget stands in for a remote 3D scene with a flat card.
type PlaceholderWidget struct {
	SceneURL string
	Size     int
	Color    Color

	img *ebiten.Image
}

// URL returns the scene URL the placeholder stands in for.
func (w *PlaceholderWidget) URL() string { return w.SceneURL }

// Image returns the card image, creating it on first use.
func (w *PlaceholderWidget) Image() *ebiten.Image {
	if w.img != nil {
		return w.img
	}
	size := w.Size
	if size <= 0 {
		size = 320
	}
	w.img = ebiten.NewImage(size, size)
	r := float32(size) / 2
	vector.DrawFilledCircle(w.img, r, r, r*0.8, w.Color.RGBA8(), true)
	vector.StrokeCircle(w.img, r, r, r*0.8, 2, w.Color.WithAlpha(0.5).RGBA8(), true)
	return w.img
}

// layerGeoM places an imgW×imgH image centered on (cx, cy) with p's scale and
// vertical offset. The glow tilt is approximated without perspective: a
// rotation of θ around an axis foreshortens the other axis by cos θ.
func layerGeoM(p LayerParams, imgW, imgH, cx, cy float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.Translate(-imgW/2, -imgH/2)
	sx := p.Scale * math.Cos(p.RotateY*math.Pi/180)
	sy := p.Scale * math.Cos(p.RotateX*math.Pi/180)
	g.Scale(sx, sy)
	g.Translate(cx, cy+p.TranslateY)
	return g
}

// Painter is the render surface: it paints a Frame onto an ebiten image. It
// never feeds anything back into the Section.
type Painter struct {
	Widget   Widget
	Palette  Palette
	Lines    []string
	Subtitle string

	// TextScale magnifies the debug font used for the headline.
	TextScale float64
	ShowFPS   bool

	glow  *ebiten.Image
	texts map[string]*ebiten.Image
	fps   fpsOverlay
}

// NewPainter creates a painter for the copy in cfg and the given widget.
func NewPainter(cfg Config, widget Widget) *Painter {
	return &Painter{
		Widget:    widget,
		Palette:   DefaultPalette,
		Lines:     append([]string(nil), cfg.Headline.Lines...),
		Subtitle:  cfg.Headline.Subtitle,
		TextScale: 3,
		texts:     make(map[string]*ebiten.Image),
	}
}

// Draw paints f onto screen, back to front: background morph, scene, glow,
// headline, subtitle, ticker, button, scroll hint.
func (p *Painter) Draw(screen *ebiten.Image, f *Frame) {
	b := screen.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	screen.Fill(p.Palette.Background.RGBA8())

	p.drawBackground(screen, f.Background, w, h)
	p.drawScene(screen, f, w, h)
	p.drawHeadline(screen, f, w, h)
	p.drawTicker(screen, f.Ticker, w, h)
	p.drawButton(screen, f.Button)
	p.drawHint(screen, f.Hint, w, h)

	if p.ShowFPS {
		p.fps.draw(screen)
	}
}

// update advances the painter's own widgets by dt seconds.
func (p *Painter) update(dt float64) {
	if p.ShowFPS {
		p.fps.update(dt)
	}
}

func (p *Painter) drawBackground(screen *ebiten.Image, bg BackgroundFrame, w, h float64) {
	// Rounder corners read as a slightly larger, softer blob.
	r := math.Min(w, h) * 0.55 * bg.Scale * (0.9 + bg.Roundness/400)
	cx := w/2 + math.Sin(bg.Rotation*math.Pi/180)*r
	vector.DrawFilledCircle(screen, float32(cx), float32(h/2), float32(r),
		p.Palette.Accent.WithAlpha(0.35).RGBA8(), true)
}

func (p *Painter) drawScene(screen *ebiten.Image, f *Frame, w, h float64) {
	scene := f.Params.Get(LayerScene)
	if p.Widget != nil {
		img := p.Widget.Image()
		ib := img.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM = layerGeoM(scene, float64(ib.Dx()), float64(ib.Dy()), w*0.65, h/2)
		op.ColorScale.ScaleAlpha(float32(scene.Opacity))
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(img, op)
	}

	glow := f.Params.Get(LayerGlow)
	img := p.glowImage()
	ib := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM = layerGeoM(glow, float64(ib.Dx()), float64(ib.Dy()), w*0.65, h/2)
	op.ColorScale.ScaleAlpha(float32(glow.Opacity))
	op.Blend = BlendScreen.EbitenBlend()
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}

func (p *Painter) drawHeadline(screen *ebiten.Image, f *Frame, w, h float64) {
	block := f.Params.Get(LayerHeadline)
	left := w * 0.08
	top := h * 0.3
	lineH := 16 * p.TextScale * block.Scale

	for i, lp := range f.Lines {
		if i >= len(p.Lines) {
			break
		}
		y := top + float64(i)*lineH + lp.TranslateY
		p.drawText(screen, p.Lines[i], left, y, p.TextScale*block.Scale, p.Palette.Text,
			block.Opacity*lp.Opacity, lp.Blur)
	}

	if p.Subtitle != "" {
		y := top + float64(len(f.Lines))*lineH + 24 + f.Subtitle.TranslateY
		p.drawText(screen, p.Subtitle, left, y, 1.5, p.Palette.Muted, f.Subtitle.Opacity, f.Subtitle.Blur)
	}
}

func (p *Painter) drawTicker(screen *ebiten.Image, t TickerFrame, w, h float64) {
	left := w * 0.08
	y := h*0.3 + float64(len(p.Lines))*16*p.TextScale + 64
	for _, slot := range [2]TickerSlot{t.Previous, t.Current} {
		if !slot.Visible {
			continue
		}
		p.drawText(screen, slot.Text, left, y+slot.Params.TranslateY, 1.5, p.Palette.Accent, slot.Params.Opacity, 0)
	}
}

func (p *Painter) drawButton(screen *ebiten.Image, b ButtonFrame) {
	r := b.Rect
	if r.Width <= 0 || r.Height <= 0 {
		return
	}
	x, y := float32(r.X), float32(r.Y+b.OffsetY)
	bw, bh := float32(r.Width), float32(r.Height)
	if b.Shadow > 0 {
		// Soft shadow: a few widening translucent rects below the button.
		for i := float32(1); i <= 3; i++ {
			c := p.Palette.Accent.WithAlpha(0.3 * b.Shadow / 3)
			vector.DrawFilledRect(screen, x-2*i, y+2+2*i, bw+4*i, bh+2*i, c.RGBA8(), true)
		}
	}
	vector.DrawFilledRect(screen, x, y, bw, bh, p.Palette.Accent.RGBA8(), true)
	p.drawText(screen, b.Label, r.X+16, r.Y+b.OffsetY+(r.Height-16*1.5)/2, 1.5, p.Palette.Text, 1, 0)
}

func (p *Painter) drawHint(screen *ebiten.Image, hint HintFrame, w, h float64) {
	if hint.Opacity <= 0 {
		return
	}
	cx := float32(w / 2)
	bottom := float32(h - 24)
	top := bottom - 32
	accent := p.Palette.Accent.WithAlpha(hint.Opacity)
	vector.StrokeLine(screen, cx, top, cx, bottom, 1, accent.RGBA8(), true)
	marker := p.Palette.Accent.WithAlpha(hint.Opacity * hint.MarkerOpacity)
	vector.DrawFilledCircle(screen, cx, top+float32(hint.MarkerY)+3, 3, marker.RGBA8(), true)
}

// drawText draws s at (x, y) using a cached debug-font image. Blur is
// approximated by five faint copies, four of them offset by half the radius.
func (p *Painter) drawText(screen *ebiten.Image, s string, x, y, scale float64, c Color, alpha, blur float64) {
	if alpha <= 0 || s == "" {
		return
	}
	img := p.textImage(s)
	draw := func(dx, dy, a float64) {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(x+dx, y+dy)
		op.ColorScale.ScaleWithColor(c.RGBA8())
		op.ColorScale.ScaleAlpha(float32(a))
		screen.DrawImage(img, op)
	}
	if blur < 0.5 {
		draw(0, 0, alpha)
		return
	}
	d := blur / 2
	a := alpha / 5
	draw(0, 0, a)
	draw(-d, 0, a)
	draw(d, 0, a)
	draw(0, -d, a)
	draw(0, d, a)
}

func (p *Painter) textImage(s string) *ebiten.Image {
	if img, ok := p.texts[s]; ok {
		return img
	}
	img := ebiten.NewImage(len(s)*6+4, 16)
	ebitenutil.DebugPrint(img, s)
	p.texts[s] = img
	return img
}

func (p *Painter) glowImage() *ebiten.Image {
	if p.glow != nil {
		return p.glow
	}
	const size = 256
	p.glow = ebiten.NewImage(size, size)
	// Concentric rings approximate a radial gradient fading out at 30%.
	for i := 8; i >= 1; i-- {
		r := float32(size) * 0.3 * float32(i) / 8
		c := p.Palette.Accent.WithAlpha(0.25 / 8)
		vector.DrawFilledCircle(p.glow, size/2, size/2, r, c.RGBA8(), true)
	}
	return p.glow
}

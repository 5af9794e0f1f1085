package hero

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig holds optional parameters for Run.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool
	Debug   bool
}

// Game adapts a Section to ebiten.Game: each tick it polls input, advances the
// clock by one tick and each frame it hands the sampled Frame to a Painter.
//
// For full control, create a Game with NewGame and pass it to ebiten.RunGame
// yourself; call Close after RunGame returns so every driver is released.
type Game struct {
	// ScreenshotDir is where Screenshot writes PNG files. Defaults to
	// "screenshots".
	ScreenshotDir string

	section *Section
	clock   *Clock
	painter *Painter
	input   *Input
	runner  *TestRunner

	width, height int
	ticks         int
	shots         []string
}

// NewGame creates a Game driving section on a fresh Clock.
func NewGame(section *Section, painter *Painter) *Game {
	return &Game{
		section: section,
		clock:   NewClock(),
		painter: painter,
		input:   NewInput(),
	}
}

// Clock returns the clock the game advances.
func (g *Game) Clock() *Clock { return g.clock }

// SetTestRunner attaches a scripted input runner. While attached, the runner
// replaces live input and its screenshot steps capture this game's frames.
func (g *Game) SetTestRunner(runner *TestRunner) {
	g.runner = runner
	if runner != nil {
		runner.screenshot = g.Screenshot
	}
}

// Update mounts the section on the first tick, then processes input and
// advances the clock by one tick.
func (g *Game) Update() error {
	if !g.section.Mounted() {
		g.section.Mount(g.clock, float64(g.width), float64(g.height))
	}

	dt := 1.0 / float64(ebiten.TPS())
	if g.runner != nil && !g.runner.Done() {
		g.runner.step(g.section, g.clock, dt)
	} else {
		g.input.Poll(g.section)
		g.clock.Advance(dt)
	}
	g.painter.update(dt)

	g.ticks++
	if g.section.debug && g.ticks%ebiten.TPS() == 0 {
		f := g.section.Frame()
		g.section.debugFrame(&f)
	}
	return nil
}

// Draw samples the section, paints it and writes any queued screenshots.
func (g *Game) Draw(screen *ebiten.Image) {
	f := g.section.Frame()
	g.painter.Draw(screen, &f)
	g.flushScreenshots(screen)
}

// Layout reports the window size as the logical screen size and forwards size
// changes to the section.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		if g.section.Mounted() {
			g.section.OnResize(float64(outsideWidth), float64(outsideHeight))
		}
	}
	return outsideWidth, outsideHeight
}

// Close unmounts the section, releasing every periodic driver.
func (g *Game) Close() {
	g.section.Unmount()
}

// Run is a convenience entry point that creates a window and runs the hero
// section until the window is closed.
func Run(section *Section, painter *Painter, cfg RunConfig) error {
	w, h := cfg.Width, cfg.Height
	if w <= 0 {
		w = 1280
	}
	if h <= 0 {
		h = 720
	}
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	painter.ShowFPS = cfg.ShowFPS
	section.SetDebugMode(cfg.Debug)

	g := NewGame(section, painter)
	g.width, g.height = w, h
	defer g.Close()
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run hero: %w", err)
	}
	return nil
}

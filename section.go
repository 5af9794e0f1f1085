package hero

import (
	"io"
	"os"
)

// Frame is everything the render surface needs to paint one frame. The Lines
// slice is owned by the Section and is overwritten by the next call to Frame.
type Frame struct {
	Elapsed  float64
	Progress float64
	Pointer  Vec2
	Viewport Vec2

	Params     ParameterSet
	Lines      []LayerParams
	Subtitle   LayerParams
	Ticker     TickerFrame
	Background BackgroundFrame
	Hint       HintFrame
	Button     ButtonFrame
}

// Section is the animation core of the hero section. It owns the scroll and
// pointer inputs, the transform mapper, the four discrete timelines and the
// hover lift of the call-to-action button, and turns them into a Frame on
// demand.
//
// All methods must be called from the goroutine that advances the Clock.
type Section struct {
	cfg    Config
	mapper Mapper

	scroll   *ScrollTracker
	pointer  Vec2
	viewport Vec2

	headline *Headline
	ambient  *Ambient
	ticker   *Ticker
	hint     *HintController
	button   *Button

	clock     *Clock
	mountedAt float64
	mounted   bool

	sink  EventSink
	debug bool
	log   io.Writer
}

// NewSection creates an unmounted section from cfg. Out-of-range values in
// cfg are reset to their defaults.
func NewSection(cfg Config) *Section {
	cfg.Verify()
	s := &Section{
		cfg:    cfg,
		mapper: NewMapper(cfg.Transform),
		log:    os.Stderr,
	}
	s.build(0)
	return s
}

// build creates fresh per-mount state. Timelines, ticker cursor and hint
// visibility all start over on every mount.
func (s *Section) build(height float64) {
	s.scroll = NewScrollTracker(height)
	s.scroll.RebindOnResize = s.cfg.Scroll.RebindOnResize
	s.headline = NewHeadline(len(s.cfg.Headline.Lines), s.cfg.Headline)
	s.ambient = NewAmbient(s.cfg.Ambient)
	s.ticker = NewTicker(s.cfg.Ticker)
	s.hint = NewHintController(s.cfg.Hint)
	s.button = NewButton(s.cfg.Button)
	s.ticker.OnAdvance = s.onTickerAdvance
	s.hint.OnHide = s.onHintHidden
}

// Config returns the verified configuration in use.
func (s *Section) Config() Config { return s.cfg }

// Mapper returns the transform mapper.
func (s *Section) Mapper() Mapper { return s.mapper }

// SetEventSink sets the optional lifecycle observer.
func (s *Section) SetEventSink(sink EventSink) {
	s.sink = sink
}

// Mount starts the section on c with the given viewport size. The viewport
// height becomes the progress denominator and the last known scroll offset is
// kept. Mounting a mounted section is a no-op.
func (s *Section) Mount(c *Clock, width, height float64) {
	if s.mounted {
		return
	}
	offset := s.scroll.Offset()
	s.build(height)
	s.scroll.offset = offset
	s.clock = c
	s.mountedAt = c.Now()
	s.mounted = true
	s.viewport = Vec2{X: finite(width, 0), Y: finite(height, 0)}
	s.pointer = Vec2{}

	s.ambient.Start(c)
	s.ticker.Start(c)
	s.hint.Mount(c)
	s.button.Mount(c)

	s.debugf("mount at %.3fs, viewport %.0fx%.0f, %d active drivers",
		s.mountedAt, width, height, c.Active())
	s.emit(Event{Type: EventMounted})
}

// Unmount stops every periodic driver the section started. After Unmount no
// timer or playback of this section remains active on the clock. Calling it
// twice, or before Mount, is a no-op.
func (s *Section) Unmount() {
	if !s.mounted {
		return
	}
	s.ticker.Stop()
	s.ambient.Stop()
	s.hint.Unmount()
	elapsed := s.Elapsed()
	s.mounted = false

	s.debugf("unmount after %.3fs", elapsed)
	s.emit(Event{Type: EventUnmounted, Elapsed: elapsed})
}

// Mounted reports whether the section is mounted.
func (s *Section) Mounted() bool { return s.mounted }

// Elapsed returns seconds since mount, or 0 when not mounted.
func (s *Section) Elapsed() float64 {
	if !s.mounted || s.clock == nil {
		return 0
	}
	return s.clock.Now() - s.mountedAt
}

// OnScroll records a scroll offset. The first scroll hides the scroll hint.
func (s *Section) OnScroll(offset float64) {
	first := s.scroll.OnScroll(offset)
	if !s.mounted {
		return
	}
	if first {
		s.emit(Event{Type: EventFirstScroll})
	}
	s.hint.OnScroll()
}

// OnPointerMove records a pointer position in absolute viewport coordinates
// and updates the button's hover state.
func (s *Section) OnPointerMove(x, y float64) {
	s.pointer = NormalizePointer(x, y, s.viewport.X, s.viewport.Y)
	if !s.mounted {
		return
	}
	if s.button.SetHovered(s.button.Rect(s.viewport).Contains(x, y)) {
		s.debugf("button hovered=%v at %.3fs", s.button.Hovered(), s.Elapsed())
	}
}

// OnResize records a new viewport size. Discrete timelines are unaffected; the
// progress denominator only changes when Scroll.RebindOnResize is set.
func (s *Section) OnResize(width, height float64) {
	s.viewport = Vec2{X: finite(width, s.viewport.X), Y: finite(height, s.viewport.Y)}
	s.scroll.OnResize(height)
}

// Progress returns the current ProgressRatio.
func (s *Section) Progress() float64 {
	return s.scroll.Ratio()
}

// Pointer returns the last PointerVector. It is not reset when the pointer
// leaves the section.
func (s *Section) Pointer() Vec2 { return s.pointer }

// Params maps the current progress and pointer to a ParameterSet.
func (s *Section) Params() ParameterSet {
	return s.mapper.Map(s.scroll.Ratio(), s.pointer)
}

// Headline returns the headline reveal sequence.
func (s *Section) Headline() *Headline { return s.headline }

// Ticker returns the status ticker.
func (s *Section) Ticker() *Ticker { return s.ticker }

// Hint returns the scroll hint controller.
func (s *Section) Hint() *HintController { return s.hint }

// Ambient returns the background loop.
func (s *Section) Ambient() *Ambient { return s.ambient }

// Button returns the call-to-action button.
func (s *Section) Button() *Button { return s.button }

// Frame samples every mapper and timeline at the clock's current time.
func (s *Section) Frame() Frame {
	elapsed := s.Elapsed()
	f := Frame{
		Elapsed:  elapsed,
		Progress: s.scroll.Ratio(),
		Pointer:  s.pointer,
		Viewport: s.viewport,
	}
	f.Params = s.mapper.Map(f.Progress, f.Pointer)
	f.Lines, f.Subtitle = s.headline.Sample(elapsed)
	f.Ticker = s.ticker.Frame()
	f.Background = s.ambient.Frame()
	f.Hint = s.hint.Frame()
	f.Button = s.button.Frame(s.viewport)
	return f
}

func (s *Section) onTickerAdvance(index int) {
	s.debugf("ticker -> %d at %.3fs", index, s.Elapsed())
	s.emit(Event{Type: EventTickerAdvanced, TickerIndex: index})
}

func (s *Section) onHintHidden(reason HideReason) {
	s.debugf("hint hidden (%s) at %.3fs", reason, s.Elapsed())
	s.emit(Event{Type: EventHintHidden, Reason: reason})
}

// emit stamps e with the current elapsed time and progress and forwards it to
// the sink, if any.
func (s *Section) emit(e Event) {
	if s.sink == nil {
		return
	}
	if e.Type != EventUnmounted {
		e.Elapsed = s.Elapsed()
	}
	e.Progress = s.scroll.Ratio()
	s.sink.EmitEvent(e)
}

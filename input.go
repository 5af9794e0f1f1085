package hero

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// --- Constants ---

const (
	defaultWheelStep = 60.0 // layout units per wheel notch
	defaultKeyStep   = 12.0 // layout units per tick while an arrow key is held
	defaultMaxScroll = 2.0  // viewport heights
)

// Input polls ebiten's wheel, keyboard and cursor once per tick and forwards
// changes to a Section as scroll and pointer events. A window has no document
// to scroll, so Input keeps its own scroll offset.
type Input struct {
	// WheelStep is the scroll distance per wheel notch.
	WheelStep float64
	// KeyStep is the scroll distance per tick while an arrow key is held.
	// Page Up/Down and Space move by a full viewport height.
	KeyStep float64
	// MaxScroll bounds the offset, in viewport heights.
	MaxScroll float64

	offset    float64
	cursorX   int
	cursorY   int
	hasCursor bool
}

// NewInput creates an Input with the default steps.
func NewInput() *Input {
	return &Input{
		WheelStep: defaultWheelStep,
		KeyStep:   defaultKeyStep,
		MaxScroll: defaultMaxScroll,
	}
}

// Offset returns the current scroll offset.
func (in *Input) Offset() float64 { return in.offset }

// Poll reads this tick's input state from ebiten and forwards it to s.
func (in *Input) Poll(s *Section) {
	_, wy := ebiten.Wheel()
	delta := -wy * in.WheelStep

	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		delta += in.KeyStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		delta -= in.KeyStep
	}
	page := s.viewport.Y
	if inpututil.IsKeyJustPressed(ebiten.KeyPageDown) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		delta += page
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyPageUp) {
		delta -= page
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyHome) {
		delta = -in.offset
	}

	x, y := ebiten.CursorPosition()
	in.apply(s, delta, x, y)
}

// apply forwards a scroll delta and a cursor position to s. A scroll event is
// only sent when the clamped offset actually changes, and a pointer event only
// when the cursor moved.
func (in *Input) apply(s *Section, delta float64, x, y int) {
	if delta != 0 {
		limit := math.Max(in.MaxScroll*s.viewport.Y, 0)
		next := math.Min(math.Max(in.offset+delta, 0), limit)
		if next != in.offset {
			in.offset = next
			s.OnScroll(in.offset)
		}
	}

	// The first position seen is a baseline, not a move.
	if !in.hasCursor {
		in.cursorX, in.cursorY = x, y
		in.hasCursor = true
		return
	}
	if x != in.cursorX || y != in.cursorY {
		in.cursorX, in.cursorY = x, y
		s.OnPointerMove(float64(x), float64(y))
	}
}

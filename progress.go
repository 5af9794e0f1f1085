package hero

// Progress normalizes a scroll offset against one viewport height and returns
// clamp(scroll/height, 0, 1). A non-positive height yields 0 so the ratio is
// never undefined or infinite. Overscroll (negative offsets, or offsets past
// one viewport) is clamped.
func Progress(scroll, height float64) float64 {
	if !(height > 0) {
		return 0
	}
	return clamp01(scroll / height)
}

// ScrollTracker holds the latest scroll offset and the viewport height used as
// the progress denominator. The denominator is captured when the tracker is
// created and only follows later resizes when RebindOnResize is set.
type ScrollTracker struct {
	// RebindOnResize makes OnResize replace the denominator. When false the
	// height captured at mount is kept for the lifetime of the tracker.
	RebindOnResize bool

	offset   float64
	height   float64
	scrolled bool
}

// NewScrollTracker creates a tracker whose denominator is height.
func NewScrollTracker(height float64) *ScrollTracker {
	return &ScrollTracker{height: finite(height, 0)}
}

// OnScroll records a new scroll offset. Returns true the first time it is
// called on this tracker.
func (t *ScrollTracker) OnScroll(offset float64) bool {
	t.offset = finite(offset, t.offset)
	first := !t.scrolled
	t.scrolled = true
	return first
}

// OnResize reports a new viewport height. It only changes the denominator when
// RebindOnResize is set.
func (t *ScrollTracker) OnResize(height float64) {
	if t.RebindOnResize {
		t.height = finite(height, t.height)
	}
}

// Ratio recomputes the current ProgressRatio from the stored offset.
func (t *ScrollTracker) Ratio() float64 {
	return Progress(t.offset, t.height)
}

// Offset returns the last recorded scroll offset.
func (t *ScrollTracker) Offset() float64 { return t.offset }

// Height returns the denominator in use.
func (t *ScrollTracker) Height() float64 { return t.height }

// Scrolled reports whether any scroll event has been recorded.
func (t *ScrollTracker) Scrolled() bool { return t.scrolled }

package hero

import (
	"fmt"
	"io"
)

// SetDebugMode enables or disables debug mode. When enabled, lifecycle
// transitions (mount, unmount, ticker advances, hint retirement) and frame
// stats are printed to the debug output, stderr by default.
func (s *Section) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// SetDebugOutput redirects debug output. A nil writer discards it.
func (s *Section) SetDebugOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	s.log = w
}

// debugf prints a prefixed line to the debug output when debug mode is on.
func (s *Section) debugf(format string, args ...any) {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(s.log, "[hero] "+format+"\n", args...)
}

// debugFrame prints a one-line summary of f.
func (s *Section) debugFrame(f *Frame) {
	if !s.debug {
		return
	}
	revealed := 0
	for i := range f.Lines {
		if s.headline.LineRevealed(i, f.Elapsed) {
			revealed++
		}
	}
	active := 0
	if s.clock != nil {
		active = s.clock.Active()
	}
	_, _ = fmt.Fprintf(s.log,
		"[hero] t: %.3fs | progress: %.3f | lines: %d/%d | ticker: %d | hint: %s | drivers: %d\n",
		f.Elapsed, f.Progress, revealed, len(f.Lines), f.Ticker.Current.Index, f.Hint.State, active)
}

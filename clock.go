package hero

import "math"

// Clock is a single-threaded logical clock that drives every timer and
// timeline of a Section. Time only moves when the owner calls Advance, usually
// once per frame with the frame delta, and callbacks run synchronously on the
// caller's goroutine. A Clock must not be shared between goroutines.
type Clock struct {
	now       float64
	seq       uint64
	timers    []*Timer
	playbacks []*Playback
}

// NewClock creates a clock at time 0.
func NewClock() *Clock {
	return &Clock{}
}

// Now returns the clock's current time in seconds.
func (c *Clock) Now() float64 {
	return c.now
}

// Timer is a one-shot or periodic callback registered on a Clock.
type Timer struct {
	clock    *Clock
	deadline float64
	interval float64 // 0 for one-shot timers
	fn       func()
	seq      uint64
	stopped  bool
}

// Stop cancels the timer. Stopping a stopped or fired timer is a no-op.
func (t *Timer) Stop() {
	if t == nil {
		return
	}
	t.stopped = true
}

// Active reports whether the timer will still fire.
func (t *Timer) Active() bool {
	return t != nil && !t.stopped
}

// After schedules fn to run once, d seconds from now.
func (c *Clock) After(d float64, fn func()) *Timer {
	return c.schedule(math.Max(d, 0), 0, fn)
}

// Every schedules fn to run every interval seconds, starting one interval from
// now. A non-positive interval yields a stopped timer.
func (c *Clock) Every(interval float64, fn func()) *Timer {
	if !(interval > 0) {
		return &Timer{clock: c, stopped: true}
	}
	return c.schedule(interval, interval, fn)
}

func (c *Clock) schedule(d, interval float64, fn func()) *Timer {
	c.seq++
	t := &Timer{
		clock:    c,
		deadline: c.now + d,
		interval: interval,
		fn:       fn,
		seq:      c.seq,
	}
	c.timers = append(c.timers, t)
	return t
}

// Advance moves the clock forward by dt seconds, firing every timer whose
// deadline falls inside the step in deadline order. Ties fire in registration
// order. A periodic timer that is several intervals behind fires once per
// elapsed interval. Negative or NaN steps are ignored.
func (c *Clock) Advance(dt float64) {
	if !(dt > 0) || math.IsInf(dt, 1) {
		return
	}
	target := c.now + dt
	for {
		t := c.nextDue(target)
		if t == nil {
			break
		}
		c.now = t.deadline
		if t.interval > 0 {
			t.deadline += t.interval
		} else {
			t.stopped = true
		}
		if t.fn != nil {
			t.fn()
		}
	}
	c.now = target
	c.compact()
}

// nextDue returns the earliest running timer due at or before target.
func (c *Clock) nextDue(target float64) *Timer {
	var best *Timer
	for _, t := range c.timers {
		if t.stopped || t.deadline > target {
			continue
		}
		if best == nil || t.deadline < best.deadline ||
			(t.deadline == best.deadline && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

// compact drops stopped timers and playbacks.
func (c *Clock) compact() {
	n := 0
	for _, t := range c.timers {
		if !t.stopped {
			c.timers[n] = t
			n++
		}
	}
	for i := n; i < len(c.timers); i++ {
		c.timers[i] = nil
	}
	c.timers = c.timers[:n]

	n = 0
	for _, p := range c.playbacks {
		if p.running() {
			c.playbacks[n] = p
			n++
		}
	}
	for i := n; i < len(c.playbacks); i++ {
		c.playbacks[i] = nil
	}
	c.playbacks = c.playbacks[:n]
}

// Active returns the number of drivers still running on the clock: timers that
// will fire again and playbacks that have not finished or been stopped.
func (c *Clock) Active() int {
	n := 0
	for _, t := range c.timers {
		if !t.stopped {
			n++
		}
	}
	for _, p := range c.playbacks {
		if p.running() {
			n++
		}
	}
	return n
}

// Playback is a running instance of a Timeline on a Clock. It owns the
// timeline's local clock, which starts when Play is called.
type Playback struct {
	clock    *Clock
	timeline Timeline
	start    float64
	stopped  bool
	frozen   float64
}

// Play starts tl on the clock now.
func (c *Clock) Play(tl Timeline) *Playback {
	p := &Playback{clock: c, timeline: tl, start: c.now}
	c.playbacks = append(c.playbacks, p)
	return p
}

// Elapsed returns the seconds since the playback started. After Stop it stays
// at the value it had when stopped.
func (p *Playback) Elapsed() float64 {
	if p.stopped {
		return p.frozen
	}
	return p.clock.now - p.start
}

// Local returns the timeline's local clock.
func (p *Playback) Local() float64 {
	return p.timeline.Local(p.Elapsed())
}

// Progress returns the timeline's eased progress.
func (p *Playback) Progress() float64 {
	return p.timeline.Progress(p.Elapsed())
}

// Timeline returns the definition being played.
func (p *Playback) Timeline() Timeline {
	return p.timeline
}

// Stop releases the playback. Stopping twice is a no-op.
func (p *Playback) Stop() {
	if p == nil || p.stopped {
		return
	}
	p.frozen = p.Elapsed()
	p.stopped = true
}

// Stopped reports whether Stop has been called.
func (p *Playback) Stopped() bool {
	return p == nil || p.stopped
}

// running reports whether the playback still needs the clock: not stopped and,
// for non-repeating timelines, not finished.
func (p *Playback) running() bool {
	return !p.stopped && !p.timeline.Done(p.Elapsed())
}

package hero

// EventType identifies a lifecycle event emitted by a Section.
type EventType uint8

const (
	EventMounted        EventType = iota // section mounted on a clock
	EventUnmounted                       // section unmounted, all drivers released
	EventTickerAdvanced                  // ticker moved to a new index
	EventHintHidden                      // scroll hint retired
	EventFirstScroll                     // first scroll event since mount
)

// String returns the event name.
func (t EventType) String() string {
	switch t {
	case EventMounted:
		return "mounted"
	case EventUnmounted:
		return "unmounted"
	case EventTickerAdvanced:
		return "ticker-advanced"
	case EventHintHidden:
		return "hint-hidden"
	case EventFirstScroll:
		return "first-scroll"
	default:
		return "unknown"
	}
}

// Event carries lifecycle data to an EventSink.
type Event struct {
	Type    EventType
	Elapsed float64 // seconds since mount

	// TickerIndex is valid for EventTickerAdvanced.
	TickerIndex int
	// Reason is valid for EventHintHidden.
	Reason HideReason
	// Progress is the ProgressRatio at the time of the event.
	Progress float64
}

// EventSink is the interface for optional lifecycle observers. When set on a
// Section, lifecycle events are forwarded to it synchronously.
type EventSink interface {
	EmitEvent(event Event)
}

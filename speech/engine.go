// Package speech drives spoken playback of summary text through a host
// text-to-speech engine.
package speech

// EventKind identifies one lifecycle notification from the engine.
type EventKind int

const (
	// EventBegan indicates audio output for an utterance has started.
	EventBegan EventKind = iota
	// EventEnded indicates an utterance finished naturally.
	EventEnded
	// EventPaused indicates the engine confirmed a pause request.
	EventPaused
	// EventResumed indicates the engine confirmed a resume request.
	EventResumed
	// EventError indicates the utterance failed. Terminal, like EventEnded;
	// a given utterance receives at most one of the two.
	EventError
)

// String returns the string representation of the event kind.
func (k EventKind) String() string {
	switch k {
	case EventBegan:
		return "began"
	case EventEnded:
		return "ended"
	case EventPaused:
		return "paused"
	case EventResumed:
		return "resumed"
	case EventError:
		return "error"
	default:
		return "unknown"
	}
}

// Event is one lifecycle notification for a submitted utterance. Events
// arrive asynchronously, at arbitrary times relative to caller calls, and
// possibly never.
type Event struct {
	Kind  EventKind
	Error ErrorKind // meaningful only when Kind is EventError
}

// Voice identifies one synthesis voice offered by the engine. Immutable
// snapshot; the engine may offer a different set on the next enumeration.
type Voice struct {
	Name     string
	Language string // BCP 47 tag, e.g. "hi-IN"
}

// Utterance is the handle for one submitted speech request.
type Utterance struct {
	ID   uint64
	Text string
}

// SpeakRequest carries everything the engine needs for one utterance.
type SpeakRequest struct {
	Text     string
	Voice    *Voice // nil lets the engine pick a default voice by Language
	Language string // requested language tag, used when Voice is nil
	Rate     float64
	Pitch    float64
	Volume   float64

	// Notify receives lifecycle events for this utterance. It may be
	// invoked from a different goroutine than the one calling Speak.
	Notify func(Event)
}

// Engine is the host text-to-speech capability: voice enumeration, spoken
// playback, and lifecycle callbacks. Implementations report their own
// playback state through Speaking and Paused; callers use those queries as
// preconditions for Pause, Resume and Cancel.
type Engine interface {
	// Voices returns the synthesis voices the engine currently offers.
	// The list may be empty while voices are still loading out-of-band,
	// and may change between calls.
	Voices() []Voice

	// Speak submits text for playback and returns a handle for it. The
	// request's Notify callback must not be invoked synchronously from
	// inside Speak: callers may submit while holding their own state lock,
	// and the callback re-enters that state.
	Speak(req SpeakRequest) (*Utterance, error)

	// Pause, Resume and Cancel act on a previously returned handle. Each
	// is a no-op when the handle is not the engine's current utterance.
	Pause(u *Utterance) error
	Resume(u *Utterance) error
	Cancel(u *Utterance) error

	// Speaking reports whether an utterance is in flight. It remains true
	// while playback is paused.
	Speaking() bool

	// Paused reports whether playback is currently suspended.
	Paused() bool
}

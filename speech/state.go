package speech

// State represents the playback state of the voice reader.
type State int

const (
	// Idle indicates no playback session exists.
	Idle State = iota
	// Speaking indicates a session is actively being spoken.
	Speaking
	// Paused indicates a session is suspended mid-utterance.
	Paused
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Speaking:
		return "speaking"
	case Paused:
		return "paused"
	default:
		return "unknown"
	}
}

// Active returns true while a playback session exists. Every active session
// ends by returning to Idle, either naturally, on error, or on explicit stop.
func (s State) Active() bool {
	return s == Speaking || s == Paused
}

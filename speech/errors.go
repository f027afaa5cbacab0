package speech

import "errors"

// Common errors for the speech subsystem.
var (
	// ErrUnsupported is reported once at startup when the host has no
	// speech capability at all. Callers surface it a single time and
	// disable every voice control in response, rather than attempting and
	// failing per call.
	ErrUnsupported = errors.New("speech engine is not available on this system")

	// ErrNothingToRead is reported when the sanitized input is empty.
	// The controller stays in its current state.
	ErrNothingToRead = errors.New("nothing to read")
)

// ErrorKind classifies an engine-reported playback failure.
type ErrorKind int

const (
	// ErrorOther covers failures with no more specific classification.
	ErrorOther ErrorKind = iota
	// ErrorNetwork indicates a network failure while fetching voice data.
	ErrorNetwork
	// ErrorPermission indicates the host denied audio output.
	ErrorPermission
	// ErrorLanguage indicates the requested language is not supported.
	ErrorLanguage
)

// String returns the string representation of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case ErrorNetwork:
		return "network"
	case ErrorPermission:
		return "permission-denied"
	case ErrorLanguage:
		return "unsupported-language"
	case ErrorOther:
		return "other"
	default:
		return "unknown"
	}
}

// EngineError is a classified playback failure reported by the engine. It
// is terminal for the current session only: the controller returns to Idle
// and stays usable.
type EngineError struct {
	Kind ErrorKind
}

// Error implements the error interface.
func (e EngineError) Error() string {
	return "speech engine error: " + e.Kind.String()
}

// UserMessage returns the message surfaced to the user for this failure.
// Each kind gets its own message; the generic one is used only when no
// specific classification applies.
func (e EngineError) UserMessage() string {
	switch e.Kind {
	case ErrorNetwork:
		return "Voice playback failed: a network error occurred while loading the voice."
	case ErrorPermission:
		return "Voice playback was blocked: audio permission was denied."
	case ErrorLanguage:
		return "The selected voice does not support this language."
	default:
		return "Voice playback failed. Please try again."
	}
}

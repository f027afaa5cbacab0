//go:build !unix

package espeak

import "github.com/pustakai/voicereader/speech"

// Engine is a stub for platforms without process signal control. New always
// fails, so the application disables voice features instead of constructing
// one, but the type still satisfies speech.Engine.
type Engine struct{}

// New reports that spoken playback is unavailable on this platform.
func New() (*Engine, error) {
	return nil, speech.ErrUnsupported
}

// Voices implements speech.Engine.
func (e *Engine) Voices() []speech.Voice { return nil }

// Speak implements speech.Engine.
func (e *Engine) Speak(speech.SpeakRequest) (*speech.Utterance, error) {
	return nil, speech.ErrUnsupported
}

// Pause implements speech.Engine.
func (e *Engine) Pause(*speech.Utterance) error { return speech.ErrUnsupported }

// Resume implements speech.Engine.
func (e *Engine) Resume(*speech.Utterance) error { return speech.ErrUnsupported }

// Cancel implements speech.Engine.
func (e *Engine) Cancel(*speech.Utterance) error { return speech.ErrUnsupported }

// Speaking implements speech.Engine.
func (e *Engine) Speaking() bool { return false }

// Paused implements speech.Engine.
func (e *Engine) Paused() bool { return false }

// Package mock provides a scriptable speech engine for tests. It performs
// no audio work: tests drive the session lifecycle explicitly through the
// Emit helpers and inspect what the controller asked for.
package mock

import (
	"sync"

	"github.com/pustakai/voicereader/speech"
)

// Engine implements speech.Engine with fully scripted behavior.
type Engine struct {
	mu sync.Mutex

	voices   []speech.Voice
	speakErr error

	current *speech.Utterance
	notify  func(speech.Event)
	paused  bool
	nextID  uint64

	spoken      []speech.SpeakRequest
	cancelled   []uint64
	pauseCalls  int
	resumeCalls int
}

// New creates a mock engine reporting the given voices.
func New(voices ...speech.Voice) *Engine {
	return &Engine{voices: voices}
}

// SetVoices replaces the reported voice list.
func (e *Engine) SetVoices(voices ...speech.Voice) {
	e.mu.Lock()
	e.voices = voices
	e.mu.Unlock()
}

// FailSpeakWith makes every subsequent Speak call return err.
func (e *Engine) FailSpeakWith(err error) {
	e.mu.Lock()
	e.speakErr = err
	e.mu.Unlock()
}

// Voices implements speech.Engine.
func (e *Engine) Voices() []speech.Voice {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]speech.Voice, len(e.voices))
	copy(out, e.voices)
	return out
}

// Speak implements speech.Engine. The session stays live until a test emits
// an ended or error event, or the controller cancels it.
func (e *Engine) Speak(req speech.SpeakRequest) (*speech.Utterance, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.spoken = append(e.spoken, req)
	if e.speakErr != nil {
		return nil, e.speakErr
	}
	e.nextID++
	u := &speech.Utterance{ID: e.nextID, Text: req.Text}
	e.current = u
	e.notify = req.Notify
	e.paused = false
	return u, nil
}

// Pause implements speech.Engine. It only records the call; the paused flag
// flips when the test emits the paused event, mirroring engines that
// acknowledge pause asynchronously.
func (e *Engine) Pause(*speech.Utterance) error {
	e.mu.Lock()
	e.pauseCalls++
	e.mu.Unlock()
	return nil
}

// Resume implements speech.Engine.
func (e *Engine) Resume(*speech.Utterance) error {
	e.mu.Lock()
	e.resumeCalls++
	e.mu.Unlock()
	return nil
}

// Cancel implements speech.Engine.
func (e *Engine) Cancel(u *speech.Utterance) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if u != nil {
		e.cancelled = append(e.cancelled, u.ID)
	}
	if e.current != nil && u != nil && e.current.ID == u.ID {
		e.current = nil
		e.notify = nil
		e.paused = false
	}
	return nil
}

// Speaking implements speech.Engine.
func (e *Engine) Speaking() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.current != nil
}

// Paused implements speech.Engine.
func (e *Engine) Paused() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.paused
}

// Emit delivers an event to the live session's callback, updating the
// engine flags first so Speaking and Paused agree with the event.
func (e *Engine) Emit(ev speech.Event) {
	e.mu.Lock()
	notify := e.notify
	switch ev.Kind {
	case speech.EventPaused:
		e.paused = true
	case speech.EventResumed, speech.EventBegan:
		e.paused = false
	case speech.EventEnded, speech.EventError:
		e.current = nil
		e.notify = nil
		e.paused = false
	}
	e.mu.Unlock()
	if notify != nil {
		notify(ev)
	}
}

// EmitBegan signals that playback started.
func (e *Engine) EmitBegan() { e.Emit(speech.Event{Kind: speech.EventBegan}) }

// EmitEnded signals that playback ran to completion.
func (e *Engine) EmitEnded() { e.Emit(speech.Event{Kind: speech.EventEnded}) }

// EmitPaused acknowledges a pause request.
func (e *Engine) EmitPaused() { e.Emit(speech.Event{Kind: speech.EventPaused}) }

// EmitResumed acknowledges a resume request.
func (e *Engine) EmitResumed() { e.Emit(speech.Event{Kind: speech.EventResumed}) }

// EmitError fails the session with the given error kind.
func (e *Engine) EmitError(kind speech.ErrorKind) {
	e.Emit(speech.Event{Kind: speech.EventError, Error: kind})
}

// Spoken returns every Speak request seen so far.
func (e *Engine) Spoken() []speech.SpeakRequest {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]speech.SpeakRequest, len(e.spoken))
	copy(out, e.spoken)
	return out
}

// Cancelled returns the utterance IDs that were cancelled.
func (e *Engine) Cancelled() []uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]uint64, len(e.cancelled))
	copy(out, e.cancelled)
	return out
}

// PauseCalls returns how many times Pause was invoked.
func (e *Engine) PauseCalls() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pauseCalls
}

// ResumeCalls returns how many times Resume was invoked.
func (e *Engine) ResumeCalls() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.resumeCalls
}

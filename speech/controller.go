package speech

import (
	"errors"
	"sync"

	"github.com/charmbracelet/log"
)

// Controller is the playback state machine. It owns at most one live speech
// session at a time and moves between Idle, Speaking and Paused.
//
// Start and Stop update state optimistically because engines acknowledge
// them reliably. Pause and Resume only issue the engine call; the state
// change waits for the engine's own paused or resumed event, so the
// displayed state never disagrees with what is audible.
type Controller struct {
	mu      sync.Mutex
	engine  Engine
	catalog *Catalog
	prefs   *Store

	state     State
	session   *Utterance
	sessionID uint64
	seq       uint64

	onState  func(State)
	onNotice func(string)
}

// NewController creates an idle controller.
func NewController(engine Engine, catalog *Catalog, prefs *Store) *Controller {
	return &Controller{
		engine:  engine,
		catalog: catalog,
		prefs:   prefs,
		state:   Idle,
	}
}

// OnStateChange registers the callback invoked after every state transition.
// Must be set before playback starts.
func (c *Controller) OnStateChange(fn func(State)) {
	c.mu.Lock()
	c.onState = fn
	c.mu.Unlock()
}

// OnNotice registers the callback for user-facing playback messages.
func (c *Controller) OnNotice(fn func(string)) {
	c.mu.Lock()
	c.onNotice = fn
	c.mu.Unlock()
}

// State returns the current playback state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Start begins speaking raw text, superseding any session already in
// flight. The prior session is cancelled first and its late engine events
// are discarded. Text that sanitizes to empty returns ErrNothingToRead and
// leaves the current state untouched.
func (c *Controller) Start(raw string) error {
	text := Sanitize(raw)
	if text == "" {
		c.notify("Nothing to read.")
		return ErrNothingToRead
	}

	c.mu.Lock()
	c.cancelSessionLocked()

	p := c.prefs.Load()
	req := SpeakRequest{
		Text:   text,
		Rate:   p.Rate,
		Pitch:  p.Pitch,
		Volume: p.Volume,
	}
	if v, ok := c.catalog.Selected(); ok {
		voice := v
		req.Voice = &voice
		req.Language = v.Language
	} else {
		req.Language = LanguageFor(text)
	}

	c.seq++
	id := c.seq
	req.Notify = func(ev Event) { c.handleEvent(id, ev) }

	u, err := c.engine.Speak(req)
	if err != nil {
		c.state = Idle
		emit := c.stateCallbackLocked()
		c.mu.Unlock()
		emit()
		c.notify(userMessageFor(err))
		log.Error("speech session failed to start", "error", err)
		return err
	}

	c.session = u
	c.sessionID = id
	c.state = Speaking
	emit := c.stateCallbackLocked()
	c.mu.Unlock()
	emit()
	return nil
}

// ReadQueue speaks every segment as one continuous session with chapter
// announcements between them.
func (c *Controller) ReadQueue(segments []Segment) error {
	return c.Start(JoinSegments(segments))
}

// Pause asks the engine to suspend the current session. A no-op unless the
// engine confirms it is speaking and not already paused. State does not
// change here; it follows the engine's paused event.
func (c *Controller) Pause() {
	c.mu.Lock()
	ok := c.session != nil && c.engine.Speaking() && !c.engine.Paused()
	var u *Utterance
	if ok {
		u = c.session
	}
	c.mu.Unlock()
	if !ok {
		return
	}
	if err := c.engine.Pause(u); err != nil {
		log.Warn("pause request failed", "error", err)
	}
}

// Resume asks the engine to continue a paused session. A no-op unless the
// engine confirms it is paused. State follows the engine's resumed event.
func (c *Controller) Resume() {
	c.mu.Lock()
	ok := c.session != nil && c.engine.Paused()
	var u *Utterance
	if ok {
		u = c.session
	}
	c.mu.Unlock()
	if !ok {
		return
	}
	if err := c.engine.Resume(u); err != nil {
		log.Warn("resume request failed", "error", err)
	}
}

// Stop cancels the current session and forces Idle immediately, whether the
// session was speaking or paused. Safe to call when already idle.
func (c *Controller) Stop() {
	c.mu.Lock()
	c.cancelSessionLocked()
	changed := c.state != Idle
	c.state = Idle
	var emit func()
	if changed {
		emit = c.stateCallbackLocked()
	}
	c.mu.Unlock()
	if emit != nil {
		emit()
	}
}

// handleEvent applies an engine lifecycle event for session id. Events from
// superseded or stopped sessions carry a stale id and are dropped.
func (c *Controller) handleEvent(id uint64, ev Event) {
	c.mu.Lock()
	if id != c.sessionID || c.session == nil {
		c.mu.Unlock()
		return
	}

	var msg string
	switch ev.Kind {
	case EventBegan:
		c.state = Speaking
	case EventPaused:
		c.state = Paused
	case EventResumed:
		c.state = Speaking
	case EventEnded:
		c.session = nil
		c.sessionID = 0
		c.state = Idle
	case EventError:
		c.session = nil
		c.sessionID = 0
		c.state = Idle
		msg = EngineError{Kind: ev.Error}.UserMessage()
		log.Error("speech session failed", "kind", ev.Error)
	default:
		c.mu.Unlock()
		return
	}
	emit := c.stateCallbackLocked()
	c.mu.Unlock()

	emit()
	if msg != "" {
		c.notify(msg)
	}
}

// cancelSessionLocked tears down the in-flight session, if any, and bumps
// the session id so its remaining engine events are ignored.
func (c *Controller) cancelSessionLocked() {
	if c.session == nil {
		return
	}
	if err := c.engine.Cancel(c.session); err != nil {
		log.Warn("cancel request failed", "error", err)
	}
	c.session = nil
	c.sessionID = 0
}

// stateCallbackLocked snapshots the state callback so it can run outside
// the lock.
func (c *Controller) stateCallbackLocked() func() {
	fn := c.onState
	st := c.state
	return func() {
		if fn != nil {
			fn(st)
		}
	}
}

func (c *Controller) notify(msg string) {
	c.mu.Lock()
	fn := c.onNotice
	c.mu.Unlock()
	if fn != nil {
		fn(msg)
	}
}

// userMessageFor maps a Speak failure to its user-facing message.
func userMessageFor(err error) string {
	var ee EngineError
	if errors.As(err, &ee) {
		return ee.UserMessage()
	}
	return EngineError{Kind: ErrorOther}.UserMessage()
}

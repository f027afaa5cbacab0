package ui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/pustakai/voicereader/speech"
	"github.com/pustakai/voicereader/speech/engines/espeak"
)

// voiceState bundles the playback controller and its collaborators for the
// UI. When the host has no usable speech engine it stays disabled and every
// command becomes a no-op, leaving the reading view fully functional.
type voiceState struct {
	controller *speech.Controller
	catalog    *speech.Catalog
	prefs      *speech.Store

	enabled    bool
	state      speech.State
	notice     string
	voiceCount int
}

// newVoiceState probes for a speech engine and wires up the playback stack.
func newVoiceState(prefsPath string) *voiceState {
	vs := &voiceState{state: speech.Idle}

	engine, err := espeak.New()
	if err != nil {
		if errors.Is(err, speech.ErrUnsupported) {
			log.Warn("no speech engine found, voice features disabled", "error", err)
		} else {
			log.Error("speech engine probe failed", "error", err)
		}
		return vs
	}

	vs.enabled = true
	vs.prefs = speech.NewStore(prefsPath)
	vs.catalog = speech.NewCatalog(engine)
	vs.controller = speech.NewController(engine, vs.catalog, vs.prefs)
	return vs
}

// wire connects controller callbacks and starts voice enumeration. send
// forwards events into the Bubble Tea program loop.
func (vs *voiceState) wire(ctx context.Context, send func(tea.Msg)) {
	if !vs.enabled {
		return
	}

	vs.controller.OnStateChange(func(s speech.State) {
		send(speech.StateMsg{State: s})
	})
	vs.controller.OnNotice(func(text string) {
		send(speech.NoticeMsg{Text: text})
	})

	stored := vs.prefs.Load()
	vs.catalog.Populate(ctx, func(voices []speech.Voice) {
		if stored.VoiceIndex >= 0 {
			vs.catalog.RestoreSelection(stored.VoiceIndex)
		}
		send(speech.VoicesMsg{Voices: voices})
	})
}

// readAll speaks the whole document as one session.
func (vs *voiceState) readAll(doc *Document) tea.Cmd {
	if !vs.enabled || doc == nil {
		return nil
	}
	return func() tea.Msg {
		// Notices and state flow back through the wired callbacks.
		_ = vs.controller.ReadQueue(doc.Segments())
		return nil
	}
}

// readChapter speaks a single chapter.
func (vs *voiceState) readChapter(doc *Document, index int) tea.Cmd {
	if !vs.enabled || doc == nil || index < 0 || index >= len(doc.Chapters) {
		return nil
	}
	ch := doc.Chapters[index]
	return func() tea.Msg {
		_ = vs.controller.Start(ch.Body)
		return nil
	}
}

// pauseToggle pauses a speaking session or resumes a paused one.
func (vs *voiceState) pauseToggle() tea.Cmd {
	if !vs.enabled {
		return nil
	}
	return func() tea.Msg {
		switch vs.controller.State() {
		case speech.Speaking:
			vs.controller.Pause()
		case speech.Paused:
			vs.controller.Resume()
		}
		return nil
	}
}

// stop cancels playback.
func (vs *voiceState) stop() tea.Cmd {
	if !vs.enabled {
		return nil
	}
	return func() tea.Msg {
		vs.controller.Stop()
		return nil
	}
}

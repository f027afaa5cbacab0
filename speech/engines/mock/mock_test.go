package mock

import (
	"testing"

	"github.com/pustakai/voicereader/speech"
)

func TestLifecycleFlags(t *testing.T) {
	e := New()

	if e.Speaking() || e.Paused() {
		t.Fatal("fresh engine reports activity")
	}

	var events []speech.EventKind
	u, err := e.Speak(speech.SpeakRequest{
		Text:   "hello",
		Notify: func(ev speech.Event) { events = append(events, ev.Kind) },
	})
	if err != nil {
		t.Fatal(err)
	}
	if !e.Speaking() {
		t.Error("Speaking() = false after Speak")
	}

	e.EmitPaused()
	if !e.Paused() || !e.Speaking() {
		t.Error("paused session must report Speaking and Paused")
	}

	e.EmitResumed()
	if e.Paused() {
		t.Error("Paused() = true after resume")
	}

	e.EmitEnded()
	if e.Speaking() {
		t.Error("Speaking() = true after ended")
	}

	want := []speech.EventKind{speech.EventPaused, speech.EventResumed, speech.EventEnded}
	if len(events) != len(want) {
		t.Fatalf("events = %v, want %v", events, want)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, events[i], want[i])
		}
	}

	if u.Text != "hello" {
		t.Errorf("utterance text = %q", u.Text)
	}
}

func TestCancelSilencesSession(t *testing.T) {
	e := New()

	fired := false
	u, err := e.Speak(speech.SpeakRequest{
		Text:   "hello",
		Notify: func(speech.Event) { fired = true },
	})
	if err != nil {
		t.Fatal(err)
	}

	if err := e.Cancel(u); err != nil {
		t.Fatal(err)
	}
	if e.Speaking() {
		t.Error("Speaking() = true after cancel")
	}

	// Emit after cancel must not reach the dead session's callback.
	e.EmitEnded()
	if fired {
		t.Error("cancelled session still received events")
	}

	if got := e.Cancelled(); len(got) != 1 || got[0] != u.ID {
		t.Errorf("Cancelled() = %v, want [%d]", got, u.ID)
	}
}

func TestFailSpeakWith(t *testing.T) {
	e := New()
	e.FailSpeakWith(speech.EngineError{Kind: speech.ErrorNetwork})

	if _, err := e.Speak(speech.SpeakRequest{Text: "x"}); err == nil {
		t.Fatal("Speak succeeded, want error")
	}
	if e.Speaking() {
		t.Error("failed Speak left a live session")
	}
	if got := len(e.Spoken()); got != 1 {
		t.Errorf("Spoken records %d requests, want the failed one too", got)
	}
}

package ui

import (
	"testing"

	"github.com/pustakai/voicereader/speech"
)

func TestSettingsAdjustClamps(t *testing.T) {
	s := newSettingsModel(&voiceState{})
	s.open()

	s.field = fieldRate
	for i := 0; i < 30; i++ {
		s.adjust(1)
	}
	if s.working.Rate != speech.MaxRate {
		t.Errorf("Rate = %v, want clamped to %v", s.working.Rate, speech.MaxRate)
	}
	for i := 0; i < 30; i++ {
		s.adjust(-1)
	}
	if s.working.Rate != speech.MinRate {
		t.Errorf("Rate = %v, want clamped to %v", s.working.Rate, speech.MinRate)
	}

	s.field = fieldVolume
	for i := 0; i < 40; i++ {
		s.adjust(1)
	}
	if s.working.Volume != speech.MaxVolume {
		t.Errorf("Volume = %v, want clamped to %v", s.working.Volume, speech.MaxVolume)
	}
}

func TestSettingsVoiceFilter(t *testing.T) {
	s := newSettingsModel(&voiceState{})
	s.voices = []speech.Voice{
		{Name: "Lekha", Language: "hi-IN"},
		{Name: "Samantha", Language: "en-US"},
		{Name: "Daniel", Language: "en-GB"},
	}

	s.filter.SetValue("")
	s.refilter()
	if len(s.filtered) != 3 {
		t.Fatalf("unfiltered list has %d entries, want 3", len(s.filtered))
	}

	s.filter.SetValue("lek")
	s.refilter()
	if len(s.filtered) != 1 || s.voices[s.filtered[0]].Name != "Lekha" {
		t.Errorf("filter 'lek' matched %v, want only Lekha", s.filtered)
	}

	s.filter.SetValue("en-")
	s.refilter()
	if len(s.filtered) != 2 {
		t.Errorf("filter 'en-' matched %d voices, want 2", len(s.filtered))
	}

	s.filter.SetValue("zzzz")
	s.refilter()
	if len(s.filtered) != 0 {
		t.Errorf("filter 'zzzz' matched %v, want none", s.filtered)
	}
	if s.cursor != 0 {
		t.Errorf("cursor = %d, want reset to 0", s.cursor)
	}
}

func TestSettingsAutoReadToggle(t *testing.T) {
	s := newSettingsModel(&voiceState{})
	s.open()
	s.field = fieldAutoRead

	s.adjust(1)
	if !s.working.AutoRead {
		t.Error("adjust right did not enable auto-read")
	}
	s.adjust(-1)
	if s.working.AutoRead {
		t.Error("adjust left did not disable auto-read")
	}
}

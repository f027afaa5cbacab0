package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	rw "github.com/mattn/go-runewidth"
	"github.com/sahilm/fuzzy"

	"github.com/pustakai/voicereader/speech"
)

// Settings overlay fields, in navigation order.
const (
	fieldVoice = iota
	fieldRate
	fieldPitch
	fieldVolume
	fieldAutoRead
	fieldCount
)

const (
	rateStep   = 0.1
	pitchStep  = 0.1
	volumeStep = 0.05
)

var (
	settingsTitleStyle = lipgloss.NewStyle().Bold(true).
				Foreground(lipgloss.Color("#EE6FF8")).
				MarginBottom(1)

	settingsLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.AdaptiveColor{Light: "#A49FA5", Dark: "#777777"})

	settingsActiveStyle = lipgloss.NewStyle().Bold(true).
				Foreground(lipgloss.Color("#EE6FF8"))

	settingsVoiceStyle = lipgloss.NewStyle().
				Foreground(lipgloss.AdaptiveColor{Light: "#343433", Dark: "#C1C6B2"})

	settingsBoxStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("#444444")).
				Padding(1, 2)
)

// settingsModel is the modal voice settings panel. Edits are staged in a
// working copy of the preferences and only persisted on apply.
type settingsModel struct {
	voice *voiceState

	field   int
	working speech.Preferences

	// Voice picker state.
	filter   textinput.Model
	voices   []speech.Voice
	filtered []int
	cursor   int
}

func newSettingsModel(voice *voiceState) settingsModel {
	filter := textinput.New()
	filter.Placeholder = "filter voices"
	filter.Prompt = "/ "
	filter.CharLimit = 40
	return settingsModel{voice: voice, filter: filter}
}

// open stages the current preferences for editing.
func (s *settingsModel) open() {
	s.field = fieldVoice
	s.filter.SetValue("")
	s.filter.Blur()
	s.working = speech.DefaultPreferences()
	s.voices = nil
	s.filtered = nil
	s.cursor = 0

	if !s.voice.enabled {
		return
	}
	s.working = s.voice.prefs.Load()
	s.voices = s.voice.catalog.Voices()
	s.refilter()
	if idx := s.voice.catalog.SelectedIndex(); idx >= 0 {
		for i, vi := range s.filtered {
			if vi == idx {
				s.cursor = i
				break
			}
		}
	}
}

// apply persists the staged preferences and switches the active voice.
func (s *settingsModel) apply() {
	if !s.voice.enabled {
		return
	}
	if len(s.filtered) > 0 && s.cursor < len(s.filtered) {
		idx := s.filtered[s.cursor]
		if s.voice.catalog.Select(idx) {
			s.working.VoiceIndex = idx
		}
	}
	s.voice.prefs.Save(s.working)
}

// refilter recomputes the visible voice list from the filter input.
func (s *settingsModel) refilter() {
	query := strings.TrimSpace(s.filter.Value())
	if query == "" {
		s.filtered = make([]int, len(s.voices))
		for i := range s.voices {
			s.filtered[i] = i
		}
	} else {
		names := make([]string, len(s.voices))
		for i, v := range s.voices {
			names[i] = v.Name + " " + v.Language
		}
		matches := fuzzy.Find(query, names)
		s.filtered = make([]int, len(matches))
		for i, m := range matches {
			s.filtered[i] = m.Index
		}
	}
	if s.cursor >= len(s.filtered) {
		s.cursor = 0
	}
}

func (s settingsModel) update(msg tea.Msg) (settingsModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	if s.filter.Focused() {
		switch key.String() {
		case "enter", "esc":
			s.filter.Blur()
			return s, nil
		default:
			var cmd tea.Cmd
			s.filter, cmd = s.filter.Update(msg)
			s.refilter()
			return s, cmd
		}
	}

	switch key.String() {
	case "tab", "down", "j":
		s.field = (s.field + 1) % fieldCount
	case "shift+tab", "up", "k":
		s.field = (s.field + fieldCount - 1) % fieldCount
	case "/":
		if s.field == fieldVoice {
			s.filter.Focus()
			return s, textinput.Blink
		}
	case "left", "h":
		s.adjust(-1)
	case "right", "l":
		s.adjust(1)
	case " ":
		if s.field == fieldAutoRead {
			s.working.AutoRead = !s.working.AutoRead
		}
	}
	return s, nil
}

// adjust moves the focused field by one step in the given direction.
func (s *settingsModel) adjust(dir int) {
	switch s.field {
	case fieldVoice:
		s.cursor += dir
		if s.cursor < 0 {
			s.cursor = 0
		}
		if n := len(s.filtered); s.cursor >= n && n > 0 {
			s.cursor = n - 1
		}
	case fieldRate:
		s.working.Rate += float64(dir) * rateStep
	case fieldPitch:
		s.working.Pitch += float64(dir) * pitchStep
	case fieldVolume:
		s.working.Volume += float64(dir) * volumeStep
	case fieldAutoRead:
		s.working.AutoRead = dir > 0
	}
	s.working = s.working.Clamp()
}

func (s settingsModel) view(width int) string {
	var b strings.Builder
	b.WriteString(settingsTitleStyle.Render("Voice Settings"))
	b.WriteString("\n")

	b.WriteString(s.fieldLine(fieldVoice, "Voice", s.voiceValue()))
	if s.field == fieldVoice {
		b.WriteString(s.voiceList())
	}
	b.WriteString(s.fieldLine(fieldRate, "Rate", fmt.Sprintf("%.1f", s.working.Rate)))
	b.WriteString(s.fieldLine(fieldPitch, "Pitch", fmt.Sprintf("%.1f", s.working.Pitch)))
	b.WriteString(s.fieldLine(fieldVolume, "Volume", fmt.Sprintf("%.2f", s.working.Volume)))
	b.WriteString(s.fieldLine(fieldAutoRead, "Auto-read", onOff(s.working.AutoRead)))

	b.WriteString("\n")
	b.WriteString(settingsLabelStyle.Render("enter apply · esc cancel · / filter voices"))

	box := settingsBoxStyle.Render(b.String())
	if width > 0 {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, box)
	}
	return box
}

func (s settingsModel) fieldLine(field int, label, value string) string {
	name := rw.FillRight(label, 10)
	if s.field == field {
		return settingsActiveStyle.Render("› "+name) + value + "\n"
	}
	return settingsLabelStyle.Render("  "+name) + value + "\n"
}

func (s settingsModel) voiceValue() string {
	if !s.voice.enabled {
		return "unavailable"
	}
	if len(s.voices) == 0 {
		return "loading…"
	}
	if len(s.filtered) == 0 {
		return "no match"
	}
	v := s.voices[s.filtered[s.cursor]]
	return fmt.Sprintf("%s (%s)", v.Name, v.Language)
}

// voiceList renders a short window of the filtered voices around the cursor.
func (s settingsModel) voiceList() string {
	const window = 5
	if len(s.filtered) == 0 {
		return ""
	}

	start := s.cursor - window/2
	if start < 0 {
		start = 0
	}
	end := start + window
	if end > len(s.filtered) {
		end = len(s.filtered)
	}

	var b strings.Builder
	if s.filter.Focused() || s.filter.Value() != "" {
		b.WriteString("  " + s.filter.View() + "\n")
	}
	for i := start; i < end; i++ {
		v := s.voices[s.filtered[i]]
		line := fmt.Sprintf("%s  %s", rw.FillRight(v.Name, 24), v.Language)
		if i == s.cursor {
			b.WriteString(settingsActiveStyle.Render("  • "+line) + "\n")
		} else {
			b.WriteString(settingsVoiceStyle.Render("    "+line) + "\n")
		}
	}
	return b.String()
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

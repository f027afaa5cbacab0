package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/muesli/reflow/truncate"

	"github.com/pustakai/voicereader/speech"
)

var (
	statusBarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#343433", Dark: "#C1C6B2"}).
			Background(lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#353533"})

	statusBarNoteStyle = statusBarStyle.
				Foreground(lipgloss.AdaptiveColor{Light: "#A49FA5", Dark: "#777777"})

	speakingStyle = statusBarStyle.Foreground(lipgloss.Color("#04B575"))
	pausedStyle   = statusBarStyle.Foreground(lipgloss.Color("#ECFD65"))
	noticeStyle   = statusBarStyle.Foreground(lipgloss.Color("#ED567A"))
)

// stateIndicator renders the playback state segment of the status bar.
func stateIndicator(state speech.State, enabled bool) string {
	if !enabled {
		return statusBarNoteStyle.Render(" voice off ")
	}
	switch state {
	case speech.Speaking:
		return speakingStyle.Render(" ▶ speaking ")
	case speech.Paused:
		return pausedStyle.Render(" ⏸ paused ")
	default:
		return statusBarNoteStyle.Render(" ■ idle ")
	}
}

// statusBarView assembles the single-line bar at the bottom of the reader.
func statusBarView(m *Model) string {
	if m.width <= 0 {
		return ""
	}

	left := stateIndicator(m.voice.state, m.voice.enabled)

	var middle string
	switch {
	case m.voice.notice != "":
		middle = noticeStyle.Render(m.voice.notice)
	case m.doc != nil:
		middle = statusBarStyle.Render(fmt.Sprintf(
			"%s · chapter %d/%d",
			m.doc.Title, m.chapter+1, len(m.doc.Chapters),
		))
	}

	var right string
	if m.doc != nil {
		right = statusBarNoteStyle.Render(fmt.Sprintf(
			" %s · %s ",
			humanize.Bytes(uint64(m.doc.Size)),
			humanize.Time(m.doc.ModTime),
		))
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(middle) - lipgloss.Width(right)
	if gap < 1 {
		room := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 1
		if room < 0 {
			room = 0
		}
		middle = truncate.StringWithTail(middle, uint(room), "…")
		gap = 1
	}

	return statusBarStyle.Width(m.width).Render(
		left + middle + strings.Repeat(" ", gap) + right,
	)
}

package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	rw "github.com/mattn/go-runewidth"
)

var helpEntries = []struct {
	keys string
	desc string
}{
	{"a", "read the whole summary aloud"},
	{"enter", "read the current chapter"},
	{"space", "pause or resume playback"},
	{"s", "stop playback"},
	{"n/p", "next / previous chapter"},
	{"o", "voice settings"},
	{"y", "copy the current chapter to clipboard"},
	{"r", "reload the summary file"},
	{"?", "toggle this help"},
	{"q", "quit"},
}

// helpView renders the keyboard shortcut overlay.
func helpView(width int) string {
	var b strings.Builder
	b.WriteString(settingsTitleStyle.Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	for _, e := range helpEntries {
		b.WriteString(settingsActiveStyle.Render(rw.FillRight(e.keys, 8)))
		b.WriteString(settingsVoiceStyle.Render(e.desc))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(settingsLabelStyle.Render("esc close"))

	box := settingsBoxStyle.Render(b.String())
	if width > 0 {
		return lipgloss.PlaceHorizontal(width, lipgloss.Center, box)
	}
	return box
}

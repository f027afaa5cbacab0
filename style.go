package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
)

var keywordStyle = lipgloss.NewStyle().
	Foreground(lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#ECFD65"})

func keyword(s string) string {
	return keywordStyle.Render(s)
}

func paragraph(s string) string {
	s = strings.TrimSpace(s)
	s = wordwrap.String(s, 76)
	s = indent.String(s, 2)
	return "\n" + s + "\n"
}

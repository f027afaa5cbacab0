package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"

	"github.com/pustakai/voicereader/speech"
)

// Chapter is one heading-delimited section of a summary document.
type Chapter struct {
	Title string
	Body  string
}

// Document is a loaded summary file split into chapters.
type Document struct {
	Path     string
	Title    string
	Chapters []Chapter
	Raw      string
	Size     int64
	ModTime  time.Time
}

// Load reads and parses the summary document at path.
func Load(path string) (*Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("reading summary: %w", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading summary: %w", err)
	}

	d := &Document{
		Path:    path,
		Raw:     string(raw),
		Size:    info.Size(),
		ModTime: info.ModTime(),
	}
	d.Title, d.Chapters = splitChapters(d.Raw)
	if d.Title == "" {
		d.Title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return d, nil
}

// splitChapters breaks markdown into chapters at level one and two
// headings. Text before the first heading becomes an untitled preamble
// chapter; the first level one heading doubles as the document title.
func splitChapters(raw string) (title string, chapters []Chapter) {
	var current *Chapter
	var body strings.Builder

	flush := func() {
		if current == nil {
			return
		}
		current.Body = strings.TrimSpace(body.String())
		// Heading-only sections carry nothing to read or show.
		if current.Body != "" {
			chapters = append(chapters, *current)
		}
		body.Reset()
		current = nil
	}

	for _, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimSpace(line)
		var heading string
		switch {
		case strings.HasPrefix(trimmed, "## "):
			heading = strings.TrimSpace(trimmed[3:])
		case strings.HasPrefix(trimmed, "# "):
			heading = strings.TrimSpace(trimmed[2:])
			if title == "" {
				title = heading
			}
		default:
			if current == nil {
				current = &Chapter{}
			}
			body.WriteString(line)
			body.WriteString("\n")
			continue
		}
		flush()
		current = &Chapter{Title: heading}
	}
	flush()
	return title, chapters
}

// Segments converts the document's chapters into a reading queue.
func (d *Document) Segments() []speech.Segment {
	segments := make([]speech.Segment, 0, len(d.Chapters))
	for _, ch := range d.Chapters {
		segments = append(segments, speech.Segment{Title: ch.Title, Text: ch.Body})
	}
	return segments
}

// Render produces the styled terminal view of the document.
func (d *Document) Render(cfg Config, width int) (string, error) {
	if cfg.GlamourMaxWidth > 0 && width > int(cfg.GlamourMaxWidth) {
		width = int(cfg.GlamourMaxWidth)
	}

	options := []glamour.TermRendererOption{
		glamour.WithWordWrap(width),
	}
	switch cfg.GlamourStyle {
	case "", "auto":
		options = append(options, glamour.WithAutoStyle())
	default:
		options = append(options, glamour.WithStylePath(cfg.GlamourStyle))
	}

	r, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return "", err
	}
	out, err := r.Render(d.Raw)
	if err != nil {
		return "", err
	}
	return out, nil
}

// Package ui implements the terminal interface: a scrollable rendered view
// of the summary document with spoken playback controls layered on top.
package ui

import (
	"context"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"

	"github.com/pustakai/voicereader/speech"
)

const statusBarHeight = 1

// noticeTimeout is how long a playback notice stays in the status bar.
const noticeTimeout = 5 * time.Second

type mode int

const (
	modeReader mode = iota
	modeSettings
	modeHelp
)

type (
	documentLoadedMsg  struct{ doc *Document }
	documentErrMsg     struct{ err error }
	documentChangedMsg struct{}
	autoReadMsg        struct{ gen int }
	noticeExpiredMsg   struct{ gen int }
)

// Model is the top-level Bubble Tea model.
type Model struct {
	cfg   Config
	voice *voiceState

	doc      *Document
	viewport viewport.Model
	chapter  int

	mode     mode
	settings settingsModel

	// cancel stops the file watcher and voice enumeration on quit.
	cancel context.CancelFunc

	width  int
	height int
	ready  bool

	// Generation counters invalidate pending tick messages after a newer
	// event supersedes them.
	autoReadGen int
	noticeGen   int

	fatalErr error
}

// NewProgram builds the program and wires the playback layer into its
// message loop.
func NewProgram(cfg Config) *tea.Program {
	voice := newVoiceState(cfg.PreferencesPath)
	ctx, cancel := context.WithCancel(context.Background())
	m := Model{
		cfg:      cfg,
		voice:    voice,
		settings: newSettingsModel(voice),
		cancel:   cancel,
	}

	p := tea.NewProgram(m, tea.WithAltScreen())

	voice.wire(ctx, p.Send)
	go watchDocument(ctx, cfg.Path, p.Send)

	return p
}

// watchDocument forwards file change events for the summary into the
// program loop so the view and auto-read can react to regeneration.
func watchDocument(ctx context.Context, path string, send func(tea.Msg)) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Warn("file watching unavailable", "error", err)
		return
	}
	defer watcher.Close() //nolint:errcheck

	// Watch the directory: many tools replace the file on write, which
	// drops a watch on the file itself.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		log.Warn("could not watch summary directory", "path", path, "error", err)
		return
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-watcher.Events:
			if !ok {
				return
			}
			evAbs, err := filepath.Abs(ev.Name)
			if err != nil || evAbs != abs {
				continue
			}
			if ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Create) {
				send(documentChangedMsg{})
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Debug("file watcher error", "error", err)
		}
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.loadDocument
}

func (m Model) loadDocument() tea.Msg {
	doc, err := Load(m.cfg.Path)
	if err != nil {
		return documentErrMsg{err: err}
	}
	return documentLoadedMsg{doc: doc}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-statusBarHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - statusBarHeight
		}
		m.rerender()
		return m, nil

	case documentLoadedMsg:
		m.doc = msg.doc
		if m.chapter >= len(m.doc.Chapters) {
			m.chapter = 0
		}
		m.rerender()
		return m, m.scheduleAutoRead()

	case documentErrMsg:
		m.fatalErr = msg.err
		return m, tea.Quit

	case documentChangedMsg:
		return m, m.loadDocument

	case autoReadMsg:
		if msg.gen != m.autoReadGen {
			return m, nil
		}
		return m, m.voice.readAll(m.doc)

	case noticeExpiredMsg:
		if msg.gen == m.noticeGen {
			m.voice.notice = ""
		}
		return m, nil

	case speech.StateMsg:
		m.voice.state = msg.State
		return m, nil

	case speech.NoticeMsg:
		m.voice.notice = msg.Text
		m.noticeGen++
		gen := m.noticeGen
		return m, tea.Tick(noticeTimeout, func(time.Time) tea.Msg {
			return noticeExpiredMsg{gen: gen}
		})

	case speech.VoicesMsg:
		m.voice.voiceCount = len(msg.Voices)
		log.Debug("voice catalog ready", "voices", len(msg.Voices))
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Overlay modes capture input first.
	switch m.mode {
	case modeSettings:
		switch msg.String() {
		case "enter":
			if !m.settings.filter.Focused() {
				m.settings.apply()
				m.mode = modeReader
				return m, nil
			}
		case "esc", "q":
			if !m.settings.filter.Focused() {
				m.mode = modeReader
				return m, nil
			}
		case "ctrl+c":
			return m.quit()
		}
		var cmd tea.Cmd
		m.settings, cmd = m.settings.update(msg)
		return m, cmd

	case modeHelp:
		switch msg.String() {
		case "esc", "q", "?":
			m.mode = modeReader
		case "ctrl+c":
			return m.quit()
		}
		return m, nil
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m.quit()

	case "a":
		m.autoReadGen++
		return m, m.voice.readAll(m.doc)

	case "enter":
		m.autoReadGen++
		return m, m.voice.readChapter(m.doc, m.chapter)

	case " ":
		return m, m.voice.pauseToggle()

	case "s":
		m.autoReadGen++
		return m, m.voice.stop()

	case "n", "right":
		if m.doc != nil && m.chapter < len(m.doc.Chapters)-1 {
			m.chapter++
		}
		return m, nil

	case "p", "left":
		if m.chapter > 0 {
			m.chapter--
		}
		return m, nil

	case "y":
		if text := m.currentChapterText(); text != "" {
			if err := clipboard.WriteAll(text); err != nil {
				log.Debug("clipboard copy failed", "error", err)
			}
		}
		return m, nil

	case "o":
		m.settings.open()
		m.mode = modeSettings
		return m, nil

	case "?":
		m.mode = modeHelp
		return m, nil

	case "r":
		return m, m.loadDocument
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	if m.voice.enabled {
		m.voice.controller.Stop()
	}
	if m.cancel != nil {
		m.cancel()
	}
	return m, tea.Quit
}

// currentChapterText returns the body of the chapter under the cursor.
func (m Model) currentChapterText() string {
	if m.doc == nil || m.chapter < 0 || m.chapter >= len(m.doc.Chapters) {
		return ""
	}
	return m.doc.Chapters[m.chapter].Body
}

// scheduleAutoRead arms the auto-read timer for a freshly loaded document.
// The delay lets rapid successive regenerations settle; any newer document
// event or manual playback action bumps the generation and disarms it.
func (m *Model) scheduleAutoRead() tea.Cmd {
	m.autoReadGen++
	if !m.voice.enabled {
		return nil
	}
	if !m.voice.prefs.Load().AutoRead {
		return nil
	}
	gen := m.autoReadGen
	return tea.Tick(m.cfg.AutoReadDelay, func(time.Time) tea.Msg {
		return autoReadMsg{gen: gen}
	})
}

func (m *Model) rerender() {
	if m.doc == nil || !m.ready {
		return
	}
	out, err := m.doc.Render(m.cfg, m.width)
	if err != nil {
		log.Warn("could not render summary", "error", err)
		out = m.doc.Raw
	}
	m.viewport.SetContent(out)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "\n  loading…"
	}

	switch m.mode {
	case modeSettings:
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.settings.view(0))
	case modeHelp:
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, helpView(0))
	}

	return m.viewport.View() + "\n" + statusBarView(&m)
}

// Err returns the fatal error that ended the session, if any.
func (m Model) Err() error {
	return m.fatalErr
}

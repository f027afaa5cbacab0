//go:build unix

// Package espeak speaks through the espeak-ng command line synthesizer.
// Each utterance is one child process; pause and resume map onto SIGSTOP
// and SIGCONT, and cancel kills the process.
package espeak

import (
	"bufio"
	"fmt"
	"os/exec"
	"strings"
	"sync"
	"syscall"

	"github.com/charmbracelet/log"

	"github.com/pustakai/voicereader/speech"
)

const binary = "espeak-ng"

// Engine implements speech.Engine on top of the espeak-ng binary.
type Engine struct {
	mu sync.Mutex

	path string

	cmd       *exec.Cmd
	current   *speech.Utterance
	notify    func(speech.Event)
	paused    bool
	cancelled bool
	nextID    uint64
}

// New locates espeak-ng on PATH. It returns speech.ErrUnsupported when the
// binary is missing so the caller can disable voice features up front.
func New() (*Engine, error) {
	path, err := exec.LookPath(binary)
	if err != nil {
		return nil, fmt.Errorf("%w: %s not found in PATH", speech.ErrUnsupported, binary)
	}
	return &Engine{path: path}, nil
}

// Voices enumerates the synthesizer's installed voices.
func (e *Engine) Voices() []speech.Voice {
	out, err := exec.Command(e.path, "--voices").Output()
	if err != nil {
		log.Debug("voice enumeration failed", "error", err)
		return nil
	}
	return parseVoices(string(out))
}

// parseVoices reads the tabular output of `espeak-ng --voices`. Column two
// is the language tag and column four the voice name.
func parseVoices(out string) []speech.Voice {
	var voices []speech.Voice
	sc := bufio.NewScanner(strings.NewReader(out))
	first := true
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if first {
			// Header row.
			first = false
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			continue
		}
		voices = append(voices, speech.Voice{
			Name:     fields[3],
			Language: fields[1],
		})
	}
	return voices
}

// Speak starts a new espeak-ng process for the request. Any prior session
// must already have been cancelled by the caller.
func (e *Engine) Speak(req speech.SpeakRequest) (*speech.Utterance, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	cmd := exec.Command(e.path, buildArgs(req)...)
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("starting %s: %w", binary, err)
	}

	e.nextID++
	u := &speech.Utterance{ID: e.nextID, Text: req.Text}
	e.cmd = cmd
	e.current = u
	e.notify = req.Notify
	e.paused = false
	e.cancelled = false

	go e.watch(u, cmd, req.Notify)
	return u, nil
}

// watch reports the session lifecycle: began once the process is running,
// then ended or error when it exits. Events are delivered off the caller's
// goroutine. A cancelled session stays silent; its teardown was already
// observed by the caller.
func (e *Engine) watch(u *speech.Utterance, cmd *exec.Cmd, notify func(speech.Event)) {
	if notify != nil {
		notify(speech.Event{Kind: speech.EventBegan})
	}

	err := cmd.Wait()

	e.mu.Lock()
	if e.current == nil || e.current.ID != u.ID {
		e.mu.Unlock()
		return
	}
	wasCancelled := e.cancelled
	e.cmd = nil
	e.current = nil
	e.notify = nil
	e.paused = false
	e.cancelled = false
	e.mu.Unlock()

	if wasCancelled || notify == nil {
		return
	}
	if err != nil {
		log.Debug("espeak-ng exited with error", "error", err)
		notify(speech.Event{Kind: speech.EventError, Error: speech.ErrorOther})
		return
	}
	notify(speech.Event{Kind: speech.EventEnded})
}

// Pause suspends the synthesizer process. The paused event is delivered
// outside the engine lock.
func (e *Engine) Pause(u *speech.Utterance) error {
	e.mu.Lock()
	if e.cmd == nil || e.current == nil || u == nil || e.current.ID != u.ID || e.paused {
		e.mu.Unlock()
		return nil
	}
	if err := e.cmd.Process.Signal(syscall.SIGSTOP); err != nil {
		e.mu.Unlock()
		return fmt.Errorf("pausing %s: %w", binary, err)
	}
	e.paused = true
	notify := e.notify
	e.mu.Unlock()

	if notify != nil {
		notify(speech.Event{Kind: speech.EventPaused})
	}
	return nil
}

// Resume continues a suspended synthesizer process.
func (e *Engine) Resume(u *speech.Utterance) error {
	e.mu.Lock()
	if e.cmd == nil || e.current == nil || u == nil || e.current.ID != u.ID || !e.paused {
		e.mu.Unlock()
		return nil
	}
	if err := e.cmd.Process.Signal(syscall.SIGCONT); err != nil {
		e.mu.Unlock()
		return fmt.Errorf("resuming %s: %w", binary, err)
	}
	e.paused = false
	notify := e.notify
	e.mu.Unlock()

	if notify != nil {
		notify(speech.Event{Kind: speech.EventResumed})
	}
	return nil
}

// Cancel kills the synthesizer process. A stopped process cannot exit, so a
// paused session gets SIGCONT first.
func (e *Engine) Cancel(u *speech.Utterance) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.cmd == nil || e.current == nil || u == nil || e.current.ID != u.ID {
		return nil
	}
	e.cancelled = true
	e.notify = nil
	if e.paused {
		_ = e.cmd.Process.Signal(syscall.SIGCONT)
		e.paused = false
	}
	if err := e.cmd.Process.Kill(); err != nil {
		return fmt.Errorf("cancelling %s: %w", binary, err)
	}
	e.current = nil
	e.cmd = nil
	return nil
}

// Speaking reports whether a session is live, paused included.
func (e *Engine) Speaking() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.current != nil
}

// Paused reports whether the live session is suspended.
func (e *Engine) Paused() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.paused
}

// buildArgs maps a SpeakRequest onto espeak-ng flags. espeak-ng's neutral
// amplitude is 100 on a 0 to 200 scale, its neutral speed 175 words per
// minute, and its pitch range 0 to 99 around a default of 50.
func buildArgs(req speech.SpeakRequest) []string {
	args := []string{
		"-a", fmt.Sprintf("%d", int(req.Volume*200)),
		"-s", fmt.Sprintf("%d", int(175*req.Rate)),
		"-p", fmt.Sprintf("%d", int(req.Pitch/2*99)),
	}
	if v := voiceArg(req); v != "" {
		args = append(args, "-v", v)
	}
	args = append(args, req.Text)
	return args
}

// voiceArg picks the -v value: an explicitly selected voice's language wins,
// then the request language.
func voiceArg(req speech.SpeakRequest) string {
	lang := req.Language
	if req.Voice != nil && req.Voice.Language != "" {
		lang = req.Voice.Language
	}
	switch lang {
	case "hi-IN", "hi_IN":
		return "hi"
	case "en-US", "en_US":
		return "en-us"
	}
	return lang
}

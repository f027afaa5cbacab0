package speech

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// populateSchedule is the retry schedule for voice enumeration: one attempt
// immediately, then at one and three seconds after the call. Some engines
// load their voice list out-of-band with no completion signal, so polling is
// the only portable option. Overridable in tests.
var populateSchedule = []time.Duration{0, time.Second, 2 * time.Second}

// Catalog maintains the flat ordered list of voices reported by the engine
// and the active selection. It is safe for concurrent use.
type Catalog struct {
	mu       sync.Mutex
	engine   Engine
	voices   []Voice
	selected int
}

// NewCatalog creates an empty catalog bound to the given engine.
func NewCatalog(engine Engine) *Catalog {
	return &Catalog{engine: engine, selected: -1}
}

// Refresh pulls the current voice list from the engine and rebuilds the
// catalog. Re-entrant; the engine may report voices multiple times and later
// snapshots replace earlier ones. An empty report leaves the previous
// snapshot in place. If a voice was selected and still exists in the new
// snapshot by name, the selection follows it; otherwise the ranked
// preference heuristic picks again.
func (c *Catalog) Refresh() []Voice {
	reported := c.engine.Voices()

	c.mu.Lock()
	defer c.mu.Unlock()

	if len(reported) == 0 {
		return c.snapshotLocked()
	}

	var prevName string
	if c.selected >= 0 && c.selected < len(c.voices) {
		prevName = c.voices[c.selected].Name
	}

	c.voices = reported
	c.selected = -1

	if prevName != "" {
		for i, v := range c.voices {
			if v.Name == prevName {
				c.selected = i
				break
			}
		}
	}
	if c.selected < 0 {
		if v, ok := SelectPreferred(c.voices); ok {
			for i, cv := range c.voices {
				if cv == v {
					c.selected = i
					break
				}
			}
		}
	}
	return c.snapshotLocked()
}

// Populate runs the refresh schedule until the engine reports a non-empty
// voice list. There is no hard failure state: when no voices ever arrive the
// catalog stays empty, selection stays unset, and playback falls back to the
// engine's default voice. onReady is invoked at most once, from a separate
// goroutine, with the first non-empty snapshot.
func (c *Catalog) Populate(ctx context.Context, onReady func([]Voice)) {
	go func() {
		for _, delay := range populateSchedule {
			if delay > 0 {
				select {
				case <-ctx.Done():
					return
				case <-time.After(delay):
				}
			}
			if voices := c.Refresh(); len(voices) > 0 {
				if onReady != nil {
					onReady(voices)
				}
				return
			}
		}
		log.Debug("voice catalog still empty after retries, using engine default voice")
	}()
}

// RestoreSelection applies a persisted voice index when it is still valid
// for the current catalog. An explicit user choice always wins over the
// preference heuristic; an out-of-range index is ignored and the heuristic
// selection stands.
func (c *Catalog) RestoreSelection(index int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if index < 0 || index >= len(c.voices) {
		return false
	}
	c.selected = index
	return true
}

// Select sets the active voice by catalog index.
func (c *Catalog) Select(index int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if index < 0 || index >= len(c.voices) {
		return false
	}
	c.selected = index
	return true
}

// Selected returns the active voice, if any.
func (c *Catalog) Selected() (Voice, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.selected < 0 || c.selected >= len(c.voices) {
		return Voice{}, false
	}
	return c.voices[c.selected], true
}

// SelectedIndex returns the index of the active voice, or -1.
func (c *Catalog) SelectedIndex() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.selected < 0 || c.selected >= len(c.voices) {
		return -1
	}
	return c.selected
}

// Voices returns a copy of the current catalog.
func (c *Catalog) Voices() []Voice {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Empty reports whether no voices have been observed yet.
func (c *Catalog) Empty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.voices) == 0
}

func (c *Catalog) snapshotLocked() []Voice {
	if len(c.voices) == 0 {
		return nil
	}
	out := make([]Voice, len(c.voices))
	copy(out, c.voices)
	return out
}

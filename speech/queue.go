package speech

import (
	"fmt"
	"strings"
)

// Segment is one entry in a read-all queue, typically a chapter summary.
type Segment struct {
	Title string
	Text  string
}

// JoinSegments flattens a reading queue into a single narration, inserting a
// spoken chapter announcement before each segment so listeners can follow
// the boundaries. The queue is deliberately one utterance, not a chain of
// sessions: pause and resume act on the whole narration, and skipping ahead
// to a specific segment is not possible.
func JoinSegments(segments []Segment) string {
	var b strings.Builder
	written := 0
	for i, seg := range segments {
		text := strings.TrimSpace(seg.Text)
		if text == "" {
			continue
		}
		if written > 0 {
			b.WriteString(" ")
		}
		if title := strings.TrimSpace(seg.Title); title != "" {
			fmt.Fprintf(&b, "Chapter %d. %s.", i+1, title)
		} else {
			fmt.Fprintf(&b, "Chapter %d.", i+1)
		}
		b.WriteString(" ")
		b.WriteString(text)
		written++
	}
	return b.String()
}

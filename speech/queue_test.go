package speech

import "testing"

func TestJoinSegments(t *testing.T) {
	tests := []struct {
		name     string
		segments []Segment
		want     string
	}{
		{
			name: "no segments",
			want: "",
		},
		{
			name: "titled segments get announcements",
			segments: []Segment{
				{Title: "The Hook", Text: "Start strong."},
				{Title: "The Middle", Text: "Keep going."},
			},
			want: "Chapter 1. The Hook. Start strong. Chapter 2. The Middle. Keep going.",
		},
		{
			name: "untitled segment announced by number",
			segments: []Segment{
				{Text: "No heading here."},
			},
			want: "Chapter 1. No heading here.",
		},
		{
			name: "blank segments skipped but keep their number",
			segments: []Segment{
				{Title: "One", Text: "First."},
				{Title: "Empty", Text: "   "},
				{Title: "Three", Text: "Third."},
			},
			want: "Chapter 1. One. First. Chapter 3. Three. Third.",
		},
		{
			name: "all blank yields empty",
			segments: []Segment{
				{Text: ""},
				{Text: "  \n "},
			},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := JoinSegments(tt.segments); got != tt.want {
				t.Errorf("JoinSegments = %q, want %q", got, tt.want)
			}
		})
	}
}

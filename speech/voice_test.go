package speech

import "testing"

func TestSelectPreferred(t *testing.T) {
	tests := []struct {
		name    string
		catalog []Voice
		want    string
		wantOK  bool
	}{
		{
			name:   "empty catalog",
			wantOK: false,
		},
		{
			name: "hindi name beats english",
			catalog: []Voice{
				{Name: "Samantha", Language: "en-US"},
				{Name: "Lekha", Language: "hi-IN"},
			},
			want:   "Lekha",
			wantOK: true,
		},
		{
			name: "hindi language tag matches by substring",
			catalog: []Voice{
				{Name: "Voice A", Language: "en-GB"},
				{Name: "Voice B", Language: "hi-IN-x-standard"},
			},
			want:   "Voice B",
			wantOK: true,
		},
		{
			name: "preference order wins over catalog order",
			catalog: []Voice{
				{Name: "Zira", Language: "en-US"},
				{Name: "Google हिन्दी", Language: "hi-IN"},
			},
			want:   "Google हिन्दी",
			wantOK: true,
		},
		{
			name: "english preference when no hindi",
			catalog: []Voice{
				{Name: "Daniel", Language: "en-GB"},
				{Name: "Google US English", Language: "en-US"},
			},
			want:   "Google US English",
			wantOK: true,
		},
		{
			name: "first preference match not best match",
			catalog: []Voice{
				{Name: "Lekha Premium", Language: "hi-IN"},
				{Name: "Lekha", Language: "hi-IN"},
			},
			want:   "Lekha Premium",
			wantOK: true,
		},
		{
			name: "match is case sensitive",
			catalog: []Voice{
				{Name: "lekha", Language: "HI-in"},
				{Name: "Daniel", Language: "en-GB"},
			},
			want:   "lekha",
			wantOK: true,
		},
		{
			name: "espeak shaped catalog picks hindi",
			catalog: []Voice{
				{Name: "Afrikaans", Language: "af"},
				{Name: "English_(America)", Language: "en-us"},
				{Name: "Hindi", Language: "hi"},
			},
			want:   "Hindi",
			wantOK: true,
		},
		{
			name: "espeak shaped catalog without hindi picks american english",
			catalog: []Voice{
				{Name: "Afrikaans", Language: "af"},
				{Name: "English_(Great_Britain)", Language: "en-gb"},
				{Name: "English_(America)", Language: "en-us"},
			},
			want:   "English_(America)",
			wantOK: true,
		},
		{
			name: "fallback to first catalog entry",
			catalog: []Voice{
				{Name: "Anna", Language: "de-DE"},
				{Name: "Thomas", Language: "fr-FR"},
			},
			want:   "Anna",
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SelectPreferred(tt.catalog)
			if ok != tt.wantOK {
				t.Fatalf("SelectPreferred ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got.Name != tt.want {
				t.Errorf("SelectPreferred = %q, want %q", got.Name, tt.want)
			}
		})
	}
}

func TestHasDevanagari(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"latin only", "hello world", false},
		{"devanagari only", "नमस्ते", true},
		{"mixed", "chapter एक", true},
		{"block boundary start", "ऀ", true},
		{"block boundary end", "ॿ", true},
		{"just outside block", "ঀ", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasDevanagari(tt.in); got != tt.want {
				t.Errorf("HasDevanagari(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLanguageFor(t *testing.T) {
	if got := LanguageFor("पुस्तक सारांश"); got != "hi-IN" {
		t.Errorf("LanguageFor devanagari = %q, want hi-IN", got)
	}
	if got := LanguageFor("book summary"); got != "en-US" {
		t.Errorf("LanguageFor latin = %q, want en-US", got)
	}
}

//go:build unix

package espeak

import (
	"testing"

	"github.com/pustakai/voicereader/speech"
)

const voicesOutput = `Pty Language       Age/Gender VoiceName          File                 Other Languages
 5  af              --/M      Afrikaans          gmw/af
 5  en-us           --/M      English_(America)  gmw/en-US            (en 10)
 5  hi              --/M      Hindi              inc/hi
`

func TestParseVoices(t *testing.T) {
	voices := parseVoices(voicesOutput)
	if len(voices) != 3 {
		t.Fatalf("parsed %d voices, want 3", len(voices))
	}

	want := []speech.Voice{
		{Name: "Afrikaans", Language: "af"},
		{Name: "English_(America)", Language: "en-us"},
		{Name: "Hindi", Language: "hi"},
	}
	for i, w := range want {
		if voices[i] != w {
			t.Errorf("voice %d = %+v, want %+v", i, voices[i], w)
		}
	}
}

func TestParseVoicesDegenerateInput(t *testing.T) {
	if got := parseVoices(""); got != nil {
		t.Errorf("parseVoices(empty) = %v, want nil", got)
	}
	if got := parseVoices("Pty Language Age/Gender VoiceName File\n"); got != nil {
		t.Errorf("parseVoices(header only) = %v, want nil", got)
	}
}

func TestBuildArgs(t *testing.T) {
	tests := []struct {
		name string
		req  speech.SpeakRequest
		want []string
	}{
		{
			name: "defaults map to espeak scales",
			req: speech.SpeakRequest{
				Text:     "hello",
				Rate:     0.8,
				Pitch:    1.0,
				Volume:   0.9,
				Language: "en-US",
			},
			want: []string{"-a", "180", "-s", "140", "-p", "49", "-v", "en-us", "hello"},
		},
		{
			name: "hindi language tag",
			req: speech.SpeakRequest{
				Text:     "नमस्ते",
				Rate:     1.0,
				Pitch:    1.0,
				Volume:   1.0,
				Language: "hi-IN",
			},
			want: []string{"-a", "200", "-s", "175", "-p", "49", "-v", "hi", "नमस्ते"},
		},
		{
			name: "selected voice language wins over request language",
			req: speech.SpeakRequest{
				Text:     "text",
				Rate:     1.0,
				Pitch:    1.0,
				Volume:   1.0,
				Voice:    &speech.Voice{Name: "Hindi", Language: "hi"},
				Language: "en-US",
			},
			want: []string{"-a", "200", "-s", "175", "-p", "49", "-v", "hi", "text"},
		},
		{
			name: "no language omits voice flag",
			req: speech.SpeakRequest{
				Text:   "text",
				Rate:   1.0,
				Pitch:  1.0,
				Volume: 1.0,
			},
			want: []string{"-a", "200", "-s", "175", "-p", "49", "text"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildArgs(tt.req)
			if len(got) != len(tt.want) {
				t.Fatalf("buildArgs = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("arg %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

package speech

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs", "preferences.yml")
	store := NewStore(path)

	saved := Preferences{
		Rate:       1.2,
		Pitch:      0.5,
		Volume:     0.7,
		VoiceIndex: 3,
		AutoRead:   true,
	}
	store.Save(saved)

	// A fresh store simulates a process restart.
	got := NewStore(path).Load()
	if got != saved {
		t.Errorf("Load = %+v, want %+v", got, saved)
	}
}

func TestStoreLoadMissingFileUsesDefaults(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "nope.yml"))
	if got := store.Load(); got != DefaultPreferences() {
		t.Errorf("Load = %+v, want defaults", got)
	}
}

func TestStoreLoadMalformedValuesUseDefaults(t *testing.T) {
	tests := []struct {
		name    string
		content string
		check   func(t *testing.T, p Preferences)
	}{
		{
			name:    "non numeric rate",
			content: "rate: fast\npitch: 1.5\n",
			check: func(t *testing.T, p Preferences) {
				if p.Rate != DefaultRate {
					t.Errorf("Rate = %v, want default %v", p.Rate, DefaultRate)
				}
				if p.Pitch != 1.5 {
					t.Errorf("Pitch = %v, want 1.5", p.Pitch)
				}
			},
		},
		{
			name:    "non integer voice index",
			content: "voice_index: second\n",
			check: func(t *testing.T, p Preferences) {
				if p.VoiceIndex != -1 {
					t.Errorf("VoiceIndex = %d, want -1", p.VoiceIndex)
				}
			},
		},
		{
			name:    "out of range values clamped",
			content: "rate: 9.0\nvolume: -2\npitch: 3\n",
			check: func(t *testing.T, p Preferences) {
				if p.Rate != MaxRate {
					t.Errorf("Rate = %v, want %v", p.Rate, MaxRate)
				}
				if p.Volume != MinVolume {
					t.Errorf("Volume = %v, want %v", p.Volume, MinVolume)
				}
				if p.Pitch != MaxPitch {
					t.Errorf("Pitch = %v, want %v", p.Pitch, MaxPitch)
				}
			},
		},
		{
			name:    "not yaml at all",
			content: "{{{ definitely not yaml",
			check: func(t *testing.T, p Preferences) {
				if p != DefaultPreferences() {
					t.Errorf("Load = %+v, want defaults", p)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "preferences.yml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			tt.check(t, NewStore(path).Load())
		})
	}
}

func TestPreferencesClamp(t *testing.T) {
	p := Preferences{Rate: 0.1, Pitch: -1, Volume: 2, VoiceIndex: -7}.Clamp()
	if p.Rate != MinRate {
		t.Errorf("Rate = %v, want %v", p.Rate, MinRate)
	}
	if p.Pitch != MinPitch {
		t.Errorf("Pitch = %v, want %v", p.Pitch, MinPitch)
	}
	if p.Volume != MaxVolume {
		t.Errorf("Volume = %v, want %v", p.Volume, MaxVolume)
	}
	if p.VoiceIndex != -1 {
		t.Errorf("VoiceIndex = %d, want -1", p.VoiceIndex)
	}
}

func TestStoreSaveClampsBeforeWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.yml")
	store := NewStore(path)
	store.Save(Preferences{Rate: 99, Pitch: 1, Volume: 0.5, VoiceIndex: 0})

	got := NewStore(path).Load()
	if got.Rate != MaxRate {
		t.Errorf("persisted Rate = %v, want clamped %v", got.Rate, MaxRate)
	}
}

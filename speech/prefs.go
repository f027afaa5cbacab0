package speech

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/log"
	gap "github.com/muesli/go-app-paths"
	"github.com/spf13/viper"
)

// Preference bounds and defaults.
const (
	MinRate = 0.3
	MaxRate = 2.0

	MinPitch = 0.0
	MaxPitch = 2.0

	MinVolume = 0.0
	MaxVolume = 1.0

	DefaultRate   = 0.8
	DefaultPitch  = 1.0
	DefaultVolume = 0.9
)

// Preferences are the user's durable playback settings. They are owned by
// the Store and mutated only through explicit apply-settings calls.
type Preferences struct {
	Rate   float64
	Pitch  float64
	Volume float64

	// VoiceIndex is the persisted position of an explicitly chosen voice
	// in the catalog, or -1 when the user never picked one.
	VoiceIndex int

	// AutoRead starts playback automatically when a new summary arrives.
	AutoRead bool
}

// DefaultPreferences returns the settings used before the user changes
// anything.
func DefaultPreferences() Preferences {
	return Preferences{
		Rate:       DefaultRate,
		Pitch:      DefaultPitch,
		Volume:     DefaultVolume,
		VoiceIndex: -1,
		AutoRead:   false,
	}
}

// Clamp forces every field back into its allowed range.
func (p Preferences) Clamp() Preferences {
	p.Rate = clampFloat(p.Rate, MinRate, MaxRate)
	p.Pitch = clampFloat(p.Pitch, MinPitch, MaxPitch)
	p.Volume = clampFloat(p.Volume, MinVolume, MaxVolume)
	if p.VoiceIndex < 0 {
		p.VoiceIndex = -1
	}
	return p
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Store persists Preferences across application restarts. Load never fails:
// missing or unparseable fields fall back to defaults. Save is write-through
// and best-effort; a failed write is logged and otherwise ignored.
type Store struct {
	v    *viper.Viper
	path string
}

// NewStore creates a preference store backed by the YAML file at path.
func NewStore(path string) *Store {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	return &Store{v: v, path: path}
}

// DefaultStorePath returns the per-user location of the preference file.
func DefaultStorePath() (string, error) {
	scope := gap.NewScope(gap.User, "voicereader")
	return scope.DataPath("preferences.yml")
}

// Load reads the persisted preferences, applying defaults for anything
// missing or malformed.
func (s *Store) Load() Preferences {
	p := DefaultPreferences()
	if err := s.v.ReadInConfig(); err != nil {
		// First run or corrupt file: silent fallback to defaults.
		log.Debug("no stored voice preferences", "path", s.path, "error", err)
		return p
	}

	p.Rate = floatSetting(s.v, "rate", p.Rate)
	p.Pitch = floatSetting(s.v, "pitch", p.Pitch)
	p.Volume = floatSetting(s.v, "volume", p.Volume)
	p.VoiceIndex = intSetting(s.v, "voice_index", p.VoiceIndex)
	if s.v.IsSet("auto_read") {
		p.AutoRead = s.v.GetBool("auto_read")
	}
	return p.Clamp()
}

// Save writes the preferences through to disk.
func (s *Store) Save(p Preferences) {
	p = p.Clamp()
	s.v.Set("rate", p.Rate)
	s.v.Set("pitch", p.Pitch)
	s.v.Set("volume", p.Volume)
	s.v.Set("voice_index", p.VoiceIndex)
	s.v.Set("auto_read", p.AutoRead)

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		log.Warn("could not create preference directory", "path", s.path, "error", err)
		return
	}
	if err := s.v.WriteConfigAs(s.path); err != nil {
		log.Warn("could not persist voice preferences", "path", s.path, "error", err)
	}
}

// floatSetting reads a float field, keeping the default when the stored
// value is absent or not numeric.
func floatSetting(v *viper.Viper, key string, def float64) float64 {
	if !v.IsSet(key) {
		return def
	}
	switch val := v.Get(key).(type) {
	case float64:
		return val
	case float32:
		return float64(val)
	case int:
		return float64(val)
	case int64:
		return float64(val)
	case string:
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return def
}

// intSetting reads an int field, keeping the default when the stored value
// is absent or not an integer.
func intSetting(v *viper.Viper, key string, def int) int {
	if !v.IsSet(key) {
		return def
	}
	switch val := v.Get(key).(type) {
	case int:
		return val
	case int64:
		return int(val)
	case float64:
		return int(val)
	case string:
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return def
}

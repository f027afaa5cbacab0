package ui

import "time"

// Config contains TUI-specific configuration.
type Config struct {
	// Path to the summary document to read.
	Path string

	GlamourStyle    string `env:"VOICEREADER_STYLE"`
	GlamourMaxWidth uint   `env:"VOICEREADER_WIDTH"`

	// AutoReadDelay is how long a freshly loaded document must sit
	// unchanged before auto-read kicks in.
	AutoReadDelay time.Duration `env:"VOICEREADER_AUTOREAD_DELAY" envDefault:"1500ms"`

	// PreferencesPath overrides the default voice preference file location.
	PreferencesPath string `env:"VOICEREADER_PREFERENCES"`

	// For debugging the UI
	Debug bool `env:"VOICEREADER_DEBUG"`
}

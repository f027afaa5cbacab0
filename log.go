package main

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// setupLog configures charm logger to log to a file if the environment
// variable VOICEREADER_LOGFILE is set, discarding output otherwise.
func setupLog() (func() error, error) {
	log.SetOutput(io.Discard)
	if os.Getenv("VOICEREADER_DEBUG") != "" {
		log.SetLevel(log.DebugLevel)
	}
	if file := os.Getenv("VOICEREADER_LOGFILE"); file != "" {
		f, err := os.OpenFile(file, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644) //nolint:gosec
		if err != nil {
			return nil, err //nolint:wrapcheck
		}
		log.SetOutput(f)
		log.SetTimeFormat("2006-01-02 15:04:05")
		return f.Close, nil
	}
	return func() error { return nil }, nil
}

package main

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// setupLogger returns a logger writing to path, or a disabled logger when
// path is empty since tcell owns the terminal.
func setupLogger(path string, jsonFormat, debug bool) (zerolog.Logger, func(), error) {
	if path == "" {
		return zerolog.Nop(), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), func() {}, err
	}
	return newLogger(f, jsonFormat, debug), func() { _ = f.Close() }, nil
}

func newLogger(w io.Writer, jsonFormat, debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	if jsonFormat {
		zerolog.TimeFieldFormat = time.RFC3339Nano
	} else {
		w = zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: time.TimeOnly}
	}

	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// Package logger holds the process-wide zerolog logger.
//
// Call Init once from main; library code receives a zerolog.Logger through its
// constructor.
package logger

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options controls logger behaviour at initialisation time.
type Options struct {
	// Level is the minimum level: trace, debug, info, warn, error.
	// Empty or unknown values mean info.
	Level string
	// Pretty switches the console writer to coloured text instead of JSON.
	Pretty bool
	// Output receives console logs. Defaults to os.Stderr, leaving stdout to
	// command output.
	Output io.Writer
	// File, when set, also receives JSON logs, rotated by size.
	File       string
	MaxSizeMB  int
	MaxBackups int
}

var (
	mu      sync.Mutex
	root    *zerolog.Logger
	rotator *lumberjack.Logger
)

// Init builds the process logger. Only the first call has any effect; later
// calls return the logger built by the first.
func Init(opts Options) zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()
	if root != nil {
		return *root
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano

	console := opts.Output
	if console == nil {
		console = os.Stderr
	}
	if opts.Pretty {
		console = zerolog.ConsoleWriter{Out: console, TimeFormat: time.Kitchen}
	}

	writers := []io.Writer{console}
	if opts.File != "" {
		rotator = &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    orDefault(opts.MaxSizeMB, 10),
			MaxBackups: orDefault(opts.MaxBackups, 3),
			Compress:   true,
		}
		writers = append(writers, rotator)
	}

	lvl := parseLevel(opts.Level)
	zerolog.SetGlobalLevel(lvl)

	l := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(lvl).
		With().
		Timestamp().
		Logger()
	root = &l
	return l
}

// Get returns the process logger. It panics before Init.
func Get() zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()
	if root == nil {
		panic("logger: Get called before Init")
	}
	return *root
}

// Close closes the rotated log file, if one was opened.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if rotator == nil {
		return nil
	}
	return rotator.Close()
}

// Reset forgets the process logger so the next Init builds a new one.
// Tests only.
func Reset() {
	_ = Close()
	mu.Lock()
	defer mu.Unlock()
	root = nil
	rotator = nil
}

func parseLevel(s string) zerolog.Level {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "warning" {
		s = "warn"
	}
	lvl, err := zerolog.ParseLevel(s)
	if err != nil || lvl == zerolog.NoLevel || lvl > zerolog.ErrorLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

// Package logging configures the process-wide zerolog logger
//
// In interactive mode stdout belongs to the renderer, so logs go to a file under the
// xdg state directory unless a console destination is requested explicitly.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// AppName names the state subdirectory holding the default log file
const AppName = "termframe"

// Options selects level and destinations
type Options struct {
	Level   string    // trace, debug, info, warn, error, disabled; empty means warn
	File    string    // log file path; empty uses DefaultLogFile when no other writer is set
	Console bool      // human-readable output on stderr
	Writer  io.Writer // extra raw JSON destination
}

// DefaultLogFile returns the log path under the xdg state directory
func DefaultLogFile() string {
	return filepath.Join(xdg.StateHome, AppName, AppName+".log")
}

// ParseLevel maps a level name to a zerolog level; empty selects warn
func ParseLevel(s string) (zerolog.Level, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return zerolog.WarnLevel, nil
	}
	lvl, err := zerolog.ParseLevel(s)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return lvl, nil
}

// Setup installs the global logger and returns a closer for any opened log file
// The closer is never nil
func Setup(opts Options) (io.Closer, error) {
	lvl, err := ParseLevel(opts.Level)
	if err != nil {
		return nopCloser{}, err
	}
	zerolog.SetGlobalLevel(lvl)

	var writers []io.Writer
	if opts.Console {
		writers = append(writers, zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
	if opts.Writer != nil {
		writers = append(writers, opts.Writer)
	}

	path := opts.File
	if path == "" && len(writers) == 0 {
		path = DefaultLogFile()
	}

	var closer io.Closer = nopCloser{}
	if path != "" {
		f, err := openLogFile(path)
		if err != nil {
			return nopCloser{}, err
		}
		writers = append(writers, f)
		closer = f
	}

	log.Logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).With().Timestamp().Logger()
	if lvl <= zerolog.DebugLevel {
		log.Logger = log.Logger.With().Caller().Logger()
	}

	log.Debug().Str("level", lvl.String()).Str("file", path).Msg("logger initialized")
	return closer, nil
}

// Component returns a child of the global logger tagged with name
func Component(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

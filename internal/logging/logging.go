package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options controls where and how verbosely the process logs.
// The TUI owns the terminal, so logs go to a file by default.
type Options struct {
	File       string
	Level      string
	MaxSizeMB  int
	MaxBackups int
}

var base = logrus.New()

func init() {
	// Until Setup runs, stay silent so library users and tests don't spam stderr
	base.SetOutput(io.Discard)
}

// Setup configures the shared logger. It returns a closer for the file sink.
func Setup(opts Options) (io.Closer, error) {
	level := logrus.InfoLevel
	if env := os.Getenv("WIDGETDASH_LOG_LEVEL"); env != "" {
		opts.Level = env
	}
	if opts.Level != "" {
		parsed, err := logrus.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, fmt.Errorf("failed to parse log level: %w", err)
		}
		level = parsed
	}
	base.SetLevel(level)
	base.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
		DisableColors:   true,
	})

	if opts.File == "" {
		base.SetOutput(io.Discard)
		return io.NopCloser(nil), nil
	}

	if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	sink := &lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    nonZero(opts.MaxSizeMB, 10),
		MaxBackups: nonZero(opts.MaxBackups, 3),
		MaxAge:     30,
		Compress:   true,
	}
	base.SetOutput(sink)
	return sink, nil
}

// SetOutput redirects the shared logger, mostly useful in tests
func SetOutput(w io.Writer) {
	base.SetOutput(w)
}

// NewLogger returns a logger tagged with the component name
func NewLogger(component string) *logrus.Entry {
	return base.WithField("component", component)
}

func nonZero(v, fallback int) int {
	if v <= 0 {
		return fallback
	}
	return v
}

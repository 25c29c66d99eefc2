package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Options configures a Logger.
type Options struct {
	Verbose bool
	Level   string
	JSON    bool
	Output  io.Writer
}

// Logger implements ports.Logger on top of logrus.
type Logger struct {
	log *logrus.Logger
}

// New creates a Logger. Verbose forces debug level.
func New(opts Options) *Logger {
	l := logrus.New()
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	l.SetOutput(out)
	if opts.JSON {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	level, err := logrus.ParseLevel(strings.TrimSpace(opts.Level))
	if err != nil {
		level = logrus.WarnLevel
	}
	if opts.Verbose {
		level = logrus.DebugLevel
	}
	l.SetLevel(level)
	return &Logger{log: l}
}

// NewStd creates a text Logger on stderr.
func NewStd(verbose bool) *Logger {
	return New(Options{Verbose: verbose})
}

// Nop returns a Logger that discards everything.
func Nop() *Logger {
	return New(Options{Output: io.Discard, Level: "panic"})
}

func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.log.WithFields(fields).Debug(msg)
}

func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.log.WithFields(fields).Info(msg)
}

func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.log.WithFields(fields).Warn(msg)
}

func (l *Logger) Error(msg string, err error, fields map[string]interface{}) {
	l.log.WithFields(fields).WithError(err).Error(msg)
}

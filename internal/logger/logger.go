package logger

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// FilePath is the default log file, relative to the working directory
// (project root when run via go run ./cmd/editor).
const FilePath = "logs/editor.txt"

// maxLines bounds the in-memory history kept for overlays.
const maxLines = 200

const timestampFormat = "2006-01-02 15:04:05"

// Logger is a logrus logger that appends to a file on disk and keeps the
// most recent formatted lines in memory.
type Logger struct {
	*logrus.Logger
	hook *memoryHook
	file *os.File
}

// New returns a logger appending to path at the given level, creating the
// log directory if needed. An unknown level falls back to info.
func New(path, level string) (*Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, errors.Wrap(err, "logger: create directory")
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, errors.Wrapf(err, "logger: open %s", path)
	}
	l := newLogger(f, level)
	l.file = f
	return l, nil
}

// NewMemory returns a logger that only keeps lines in memory.
func NewMemory(level string) *Logger {
	return newLogger(io.Discard, level)
}

func newLogger(out io.Writer, level string) *Logger {
	formatter := &logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: timestampFormat,
	}
	base := logrus.New()
	base.SetOutput(out)
	base.SetFormatter(formatter)
	base.SetLevel(ParseLevel(level))

	hook := &memoryHook{formatter: formatter}
	base.AddHook(hook)
	return &Logger{Logger: base, hook: hook}
}

// ParseLevel parses a logrus level name. Unknown names yield info.
func ParseLevel(level string) logrus.Level {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

// Lines returns a copy of the stored lines, oldest first.
func (l *Logger) Lines() []string {
	return l.hook.snapshot()
}

// Close closes the log file, if any.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

type memoryHook struct {
	formatter logrus.Formatter

	mu    sync.Mutex
	lines []string
}

func (h *memoryHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *memoryHook) Fire(entry *logrus.Entry) error {
	b, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}
	line := strings.TrimRight(string(b), "\n")

	h.mu.Lock()
	defer h.mu.Unlock()
	h.lines = append(h.lines, line)
	if len(h.lines) > maxLines {
		h.lines = h.lines[len(h.lines)-maxLines:]
	}
	return nil
}

func (h *memoryHook) snapshot() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, len(h.lines))
	copy(out, h.lines)
	return out
}

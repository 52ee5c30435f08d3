package logger

import (
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
)

// DefaultPath is the log file used when the config does not name one, relative to
// the working directory.
const DefaultPath = "logs/viewer.txt"

const timestampFormat = "2006-01-02 15:04:05"

// Logger is a logrus logger that also keeps every entry in memory so the
// terminal can show recent lines. Output goes to the log file on disk; if the
// file cannot be opened it falls back to stderr.
type Logger struct {
	*logrus.Logger
	mu    sync.Mutex
	lines []string
	file  *os.File
}

// New returns a Logger appending to path (DefaultPath when empty) and ensures the
// directory exists.
func New(path string) *Logger {
	if path == "" {
		path = DefaultPath
	}
	var out io.Writer = os.Stderr
	var file *os.File
	if err := os.MkdirAll(filepath.Dir(path), 0755); err == nil {
		if f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644); err == nil {
			file = f
			out = f
		}
	}
	return NewWithWriter(out, file)
}

// NewWithWriter returns a Logger writing to out. closer, when non-nil, is closed by Close.
func NewWithWriter(out io.Writer, closer *os.File) *Logger {
	l := &Logger{
		Logger: logrus.New(),
		lines:  make([]string, 0),
		file:   closer,
	}
	l.SetOutput(out)
	l.SetLevel(logrus.DebugLevel)
	l.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: timestampFormat,
	})
	l.AddHook(lineHook{l})
	return l
}

// Log records a plain line at info level (e.g. terminal input echo).
func (l *Logger) Log(line string) {
	l.Info(line)
}

// Lines returns a copy of all stored lines.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

// Close closes the log file, if one was opened.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

func (l *Logger) appendLine(line string) {
	l.mu.Lock()
	l.lines = append(l.lines, line)
	l.mu.Unlock()
}

// lineHook mirrors each entry into the in-memory buffer as
// "[timestamp] message key=value ...", with a level tag for warnings and errors.
type lineHook struct {
	l *Logger
}

func (h lineHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h lineHook) Fire(e *logrus.Entry) error {
	var b strings.Builder
	b.WriteString("[" + e.Time.Format(timestampFormat) + "] ")
	if e.Level <= logrus.WarnLevel {
		b.WriteString(strings.ToUpper(e.Level.String()) + ": ")
	}
	b.WriteString(e.Message)
	for _, k := range sortedKeys(e.Data) {
		b.WriteString(" " + k + "=")
		b.WriteString(formatValue(e.Data[k]))
	}
	h.l.appendLine(b.String())
	return nil
}

func sortedKeys(data logrus.Fields) []string {
	return slices.Sorted(maps.Keys(data))
}

func formatValue(v any) string {
	if err, ok := v.(error); ok {
		return fmt.Sprintf("%q", err.Error())
	}
	s := fmt.Sprint(v)
	if strings.ContainsAny(s, " =\"") {
		return fmt.Sprintf("%q", s)
	}
	return s
}

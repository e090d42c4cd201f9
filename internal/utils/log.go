package utils

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/francoispqt/gojay"
)

// LogLevel controls verbosity.
type LogLevel uint8

const (
	logEnv = "QCONN_LOG_LEVEL"

	LogLevelNothing LogLevel = 0
	LogLevelError   LogLevel = 1
	LogLevelInfo    LogLevel = 2
	LogLevelDebug   LogLevel = 3
)

// Logger is the interface the connection driver logs through. A connection
// holds one, set at construction, and derives per-component loggers from it
// with WithPrefix.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debug() bool
	WithPrefix(prefix string) Logger
}

type logEvent struct {
	Time    string `json:"time"`
	Level   string `json:"level"`
	Prefix  string `json:"prefix"`
	Message string `json:"message"`
}

func (e *logEvent) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("time", e.Time)
	enc.StringKey("level", e.Level)
	enc.StringKey("prefix", e.Prefix)
	enc.StringKey("message", e.Message)
}
func (e *logEvent) IsNil() bool { return e == nil }

// defaultLogger writes one gojay-encoded JSON object per log line to w. This
// is the qlog-style sink; point w at a lumberjack.Logger for rotation.
type defaultLogger struct {
	w      io.Writer
	level  LogLevel
	prefix string
}

// NewLogger creates a Logger that writes structured log lines to w.
func NewLogger(w io.Writer, level LogLevel) Logger {
	return &defaultLogger{w: w, level: level}
}

func (l *defaultLogger) WithPrefix(prefix string) Logger {
	p := prefix
	if l.prefix != "" {
		p = l.prefix + "." + prefix
	}
	return &defaultLogger{w: l.w, level: l.level, prefix: p}
}

func (l *defaultLogger) Debug() bool { return l.level >= LogLevelDebug }

func (l *defaultLogger) Debugf(format string, args ...interface{}) {
	if l.level >= LogLevelDebug {
		l.log("DEBUG", format, args...)
	}
}

func (l *defaultLogger) Infof(format string, args ...interface{}) {
	if l.level >= LogLevelInfo {
		l.log("INFO", format, args...)
	}
}

func (l *defaultLogger) Errorf(format string, args ...interface{}) {
	if l.level >= LogLevelError {
		l.log("ERROR", format, args...)
	}
}

func (l *defaultLogger) log(level, format string, args ...interface{}) {
	if l.w == nil {
		return
	}
	ev := &logEvent{
		Time:    time.Now().Format(time.RFC3339Nano),
		Level:   level,
		Prefix:  l.prefix,
		Message: fmt.Sprintf(format, args...),
	}
	b, err := gojay.MarshalJSONObject(ev)
	if err != nil {
		return
	}
	l.w.Write(append(b, '\n'))
}

// DefaultLogger discards everything unless QCONN_LOG_LEVEL is set, matching
// the teacher's env-var-driven default.
var DefaultLogger Logger = NewLogger(os.Stderr, readLoggingEnv())

func readLoggingEnv() LogLevel {
	env := os.Getenv(logEnv)
	if env == "" {
		return LogLevelNothing
	}
	level, err := strconv.Atoi(env)
	if err != nil {
		return LogLevelNothing
	}
	return LogLevel(level)
}

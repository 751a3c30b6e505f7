package logger

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Custom log levels. NOTICE is the default console level so that normal
// command output stays quiet unless -v or -x is given.
const (
	LevelTrace  = slog.Level(-8)
	LevelDebug  = slog.LevelDebug
	LevelInfo   = slog.Level(-2)
	LevelNotice = slog.LevelInfo
	LevelWarn   = slog.LevelWarn
	LevelError  = slog.LevelError
	LevelFatal  = slog.Level(12)
)

// LevelVar allows dynamic changing of the log level.
var LevelVar = new(slog.LevelVar)

func init() {
	LevelVar.Set(LevelNotice)
}

func SetLevel(level slog.Level) {
	LevelVar.Set(level)
}

var levelLabels = map[slog.Level]string{
	LevelTrace:  "[TRACE ] ",
	LevelDebug:  "[DEBUG ] ",
	LevelInfo:   "[INFO  ] ",
	LevelNotice: "[NOTICE] ",
	LevelWarn:   "[WARN  ] ",
	LevelError:  "[ERROR ] ",
	LevelFatal:  "[FATAL ] ",
}

// NewLogger builds the console logger. Colors are enabled only when stderr
// is a terminal.
func NewLogger() *slog.Logger {
	w := os.Stderr
	stat, _ := w.Stat()
	isTTY := stat != nil && (stat.Mode()&os.ModeCharDevice) != 0

	replaceAttr := func(groups []string, a slog.Attr) slog.Attr {
		if a.Key == slog.LevelKey {
			level := a.Value.Any().(slog.Level)
			if label, ok := levelLabels[level]; ok {
				a.Value = slog.StringValue(label)
			} else {
				a.Value = slog.StringValue("[" + level.String() + "]")
			}
		}
		return a
	}

	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:       LevelVar,
		TimeFormat:  "2006-01-02 15:04:05",
		NoColor:     !isTTY,
		ReplaceAttr: replaceAttr,
	}))
}

// log formats msg printf-style when args are present and splits multi-line
// messages into one record per line so timestamps stay aligned.
func log(ctx context.Context, level slog.Level, msg string, args ...any) {
	h := slog.Default().Handler()
	if !h.Enabled(ctx, level) {
		return
	}

	if len(args) > 0 && strings.Contains(msg, "%") {
		msg = fmt.Sprintf(msg, args...)
	}

	now := time.Now()
	for _, line := range strings.Split(msg, "\n") {
		r := slog.NewRecord(now, level, line, 0)
		_ = h.Handle(ctx, r)
	}
}

func Trace(ctx context.Context, msg string, args ...any) {
	log(ctx, LevelTrace, msg, args...)
}

func Debug(ctx context.Context, msg string, args ...any) {
	log(ctx, LevelDebug, msg, args...)
}

func Info(ctx context.Context, msg string, args ...any) {
	log(ctx, LevelInfo, msg, args...)
}

func Notice(ctx context.Context, msg string, args ...any) {
	log(ctx, LevelNotice, msg, args...)
}

func Warn(ctx context.Context, msg string, args ...any) {
	log(ctx, LevelWarn, msg, args...)
}

func Error(ctx context.Context, msg string, args ...any) {
	log(ctx, LevelError, msg, args...)
}

// Fatal logs at FATAL level and panics with FatalError so the main run
// loop can recover, run cleanup and exit nonzero.
func Fatal(ctx context.Context, msg string, args ...any) {
	log(ctx, LevelFatal, msg, args...)
	panic(FatalError{})
}

// FatalError is a special error used to panic from Fatal logger calls.
type FatalError struct{}

func (FatalError) Error() string {
	return "fatal error"
}

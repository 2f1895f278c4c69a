package logging

import (
	"strings"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the logr.Logger handed to the maintenance client, the tool
// registry and the MCP server. Debug maps to V(1).
type Logger struct {
	log logr.Logger
}

// New wraps base. A zero logr.Logger, which has no sink, is replaced by
// LevelLogger("info").
func New(base logr.Logger) Logger {
	if base.GetSink() == nil {
		base = LevelLogger("info")
	}
	return Logger{log: base}
}

// Discard drops every record; tests use it.
func Discard() Logger {
	return Logger{log: logr.Discard()}
}

// LevelLogger builds a zap development logger at level ("debug", "info",
// "warn", "error"; anything else means info). Output goes to stderr only
// because stdout carries the stdio transport.
func LevelLogger(level string) logr.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(parseLevel(level))
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	zapLogger, err := cfg.Build()
	if err != nil {
		zapLogger = zap.NewNop()
	}
	return zapr.NewLogger(zapLogger)
}

func parseLevel(level string) zapcore.Level {
	lvl, err := zapcore.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return zapcore.InfoLevel
	}
	return lvl
}

func (l Logger) WithValues(keysAndValues ...any) Logger {
	return Logger{log: l.log.WithValues(keysAndValues...)}
}

// WithName appends a component name, e.g. "maintenance.client" or "tools".
func (l Logger) WithName(name string) Logger {
	return Logger{log: l.log.WithName(name)}
}

func (l Logger) Info(msg string, keysAndValues ...any) {
	l.log.Info(msg, keysAndValues...)
}

// Debug is a no-op unless log_level is debug.
func (l Logger) Debug(msg string, keysAndValues ...any) {
	if v := l.log.V(1); v.Enabled() {
		v.Info(msg, keysAndValues...)
	}
}

func (l Logger) Error(err error, msg string, keysAndValues ...any) {
	l.log.Error(err, msg, keysAndValues...)
}

func (l Logger) Logr() logr.Logger {
	return l.log
}

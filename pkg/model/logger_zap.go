package model

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger adapts a zap logger to the Logger interface.
// Level filtering happens in the adapter so the wrapped core can stay at debug.
type ZapLogger struct {
	level LogLevel
	sugar *zap.SugaredLogger
}

// NewZapLogger wraps base, emitting only messages at or above level
func NewZapLogger(base *zap.Logger, level LogLevel) *ZapLogger {
	if base == nil {
		base = zap.NewNop()
	}
	return &ZapLogger{
		level: level,
		sugar: base.Named("peergraph").Sugar(),
	}
}

// NewProductionZapLogger builds a JSON zap logger with the level applied at the core
func NewProductionZapLogger(level LogLevel) (*ZapLogger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapLevel(level))
	base, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return NewZapLogger(base, level), nil
}

func zapLevel(level LogLevel) zapcore.Level {
	switch level {
	case LogLevelDebug:
		return zapcore.DebugLevel
	case LogLevelInfo:
		return zapcore.InfoLevel
	case LogLevelWarn:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}

func (l *ZapLogger) Debug(format string, args ...interface{}) {
	if l.IsLevelEnabled(LogLevelDebug) {
		l.sugar.Debugf(format, args...)
	}
}

func (l *ZapLogger) Info(format string, args ...interface{}) {
	if l.IsLevelEnabled(LogLevelInfo) {
		l.sugar.Infof(format, args...)
	}
}

func (l *ZapLogger) Warn(format string, args ...interface{}) {
	if l.IsLevelEnabled(LogLevelWarn) {
		l.sugar.Warnf(format, args...)
	}
}

func (l *ZapLogger) Error(format string, args ...interface{}) {
	if l.IsLevelEnabled(LogLevelError) {
		l.sugar.Errorf(format, args...)
	}
}

// IsLevelEnabled returns true if the given log level is enabled
func (l *ZapLogger) IsLevelEnabled(level LogLevel) bool {
	return l.level <= level
}

// Sync flushes buffered log entries
func (l *ZapLogger) Sync() error {
	return l.sugar.Sync()
}

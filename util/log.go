package util

import (
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var flagEnableTrace atomic.Bool

var logger atomic.Pointer[zap.Logger]

func init() {
	logger.Store(zap.NewNop())
}

func EnableTrace() {
	flagEnableTrace.Store(true)
}

func DisableTrace() {
	flagEnableTrace.Store(false)
}

// Trace logs at debug level, but only while tracing is enabled.
func Trace(format string, v ...interface{}) {
	if flagEnableTrace.Load() {
		Logger().Sugar().Debugf(format, v...)
	}
}

// Logger returns the package-wide logger. It never returns nil.
func Logger() *zap.Logger {
	return logger.Load()
}

// SetLogger replaces the package-wide logger. nil restores the silent default.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger.Store(l)
}

// NewLogger builds a json logger, or a console logger when development is set.
func NewLogger(level string, development bool) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	var cfg zap.Config
	if development {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "timestamp"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}

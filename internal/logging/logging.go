// Package logging builds the zap logger shared by the shell, the commands
// and the list controller.
package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a console logger writing to w. The level is read on every
// entry, so changing it affects loggers already handed out.
func New(w io.Writer, level zap.AtomicLevel) *zap.Logger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	encCfg.CallerKey = ""
	encCfg.EncodeLevel = zapcore.LowercaseLevelEncoder

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), level)
	return zap.New(core)
}

// NewLevel returns an atomic level at Debug when debug is set, Warn
// otherwise.
func NewLevel(debug bool) zap.AtomicLevel {
	if debug {
		return zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return zap.NewAtomicLevelAt(zapcore.WarnLevel)
}

// Raise switches level to Debug when debug is set and returns a func that
// restores the previous level.
func Raise(level zap.AtomicLevel, debug bool) (restore func()) {
	prev := level.Level()
	if debug {
		level.SetLevel(zapcore.DebugLevel)
	}
	return func() { level.SetLevel(prev) }
}

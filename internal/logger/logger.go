// Package logger provides structured logging with zap.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New creates a new zap.Logger depending on the environment.
func New(env string) *zap.Logger {
	if env == "production" {
		logger, _ := zap.NewProduction()
		return logger
	}
	logger, _ := zap.NewDevelopment()
	return logger
}

// Filtered wraps a core so entries matching the drop predicate are
// suppressed. Callers scope the filter to a component by installing it
// with zap.WrapCore on that component's logger.
func Filtered(core zapcore.Core, drop func(zapcore.Entry) bool) zapcore.Core {
	return &filteredCore{Core: core, drop: drop}
}

type filteredCore struct {
	zapcore.Core
	drop func(zapcore.Entry) bool
}

func (c *filteredCore) With(fields []zapcore.Field) zapcore.Core {
	return &filteredCore{Core: c.Core.With(fields), drop: c.drop}
}

func (c *filteredCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.drop(ent) {
		return ce
	}
	return c.Core.Check(ent, ce)
}

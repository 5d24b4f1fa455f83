package logging

import (
	"go.uber.org/zap"
)

// New builds the process logger. Debug mode switches to the development
// config with human-readable output.
func New(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// EngineLogger adapts a zap sugared logger to the calculation package's
// minimal Logger interface.
type EngineLogger struct {
	s *zap.SugaredLogger
}

// NewEngineLogger wraps a zap logger for use by the settlement engine.
func NewEngineLogger(l *zap.Logger) *EngineLogger {
	return &EngineLogger{s: l.Sugar()}
}

func (el *EngineLogger) Debugf(format string, args ...any) { el.s.Debugf(format, args...) }
func (el *EngineLogger) Infof(format string, args ...any)  { el.s.Infof(format, args...) }
func (el *EngineLogger) Warnf(format string, args ...any)  { el.s.Warnf(format, args...) }
func (el *EngineLogger) Errorf(format string, args ...any) { el.s.Errorf(format, args...) }

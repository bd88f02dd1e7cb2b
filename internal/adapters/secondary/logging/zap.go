package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/fredcamaral/revealdeck/internal/domain/entities"
	"github.com/fredcamaral/revealdeck/internal/domain/ports"
)

// Logger adapts a zap SugaredLogger to the printf-style ports.Logger
type Logger struct {
	sugar *zap.SugaredLogger
}

// New builds a logger from cfg. Logs go to stderr, and also to cfg.File
// when set. Console encoding is used unless cfg.JSONFormat is true.
func New(cfg entities.LoggingConfig) (*Logger, error) {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(level)
	config.Sampling = nil
	config.DisableStacktrace = true
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if !cfg.JSONFormat {
		config.Encoding = "console"
		config.DisableCaller = true
		config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	config.OutputPaths = []string{"stderr"}
	if cfg.File != "" {
		config.OutputPaths = append(config.OutputPaths, cfg.File)
	}

	base, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return FromZap(base), nil
}

// FromZap wraps an existing zap logger
func FromZap(base *zap.Logger) *Logger {
	return &Logger{sugar: base.WithOptions(zap.AddCallerSkip(1)).Sugar()}
}

// NewNop returns a logger that discards everything
func NewNop() *Logger {
	return FromZap(zap.NewNop())
}

func parseLevel(name string) (zapcore.Level, error) {
	switch entities.LogLevel(name) {
	case "", entities.LogLevelInfo:
		return zapcore.InfoLevel, nil
	case entities.LogLevelDebug:
		return zapcore.DebugLevel, nil
	case entities.LogLevelWarn:
		return zapcore.WarnLevel, nil
	case entities.LogLevelError:
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("invalid log level: %s", name)
	}
}

func (l *Logger) Debug(msg string, args ...interface{}) { l.sugar.Debugf(msg, args...) }

func (l *Logger) Info(msg string, args ...interface{}) { l.sugar.Infof(msg, args...) }

func (l *Logger) Warn(msg string, args ...interface{}) { l.sugar.Warnf(msg, args...) }

func (l *Logger) Error(msg string, args ...interface{}) { l.sugar.Errorf(msg, args...) }

// Sync flushes buffered entries
func (l *Logger) Sync() error {
	return l.sugar.Sync()
}

// Ensure Logger implements ports.Logger
var _ ports.Logger = (*Logger)(nil)

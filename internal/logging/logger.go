package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level enumerates supported logging granularities.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// Format enumerates supported logger output encodings.
type Format string

const (
	FormatStructured Format = "structured"
	FormatConsole    Format = "console"
)

var levelMapping = map[Level]zapcore.Level{
	LevelDebug: zapcore.DebugLevel,
	LevelInfo:  zapcore.InfoLevel,
	LevelWarn:  zapcore.WarnLevel,
	LevelError: zapcore.ErrorLevel,
}

// Factory builds zap loggers with consistent configuration.
type Factory struct {
	writer io.Writer
}

// NewFactory returns a factory writing to w; nil means stderr.
func NewFactory(w io.Writer) *Factory {
	if w == nil {
		w = os.Stderr
	}
	return &Factory{writer: w}
}

// Create produces a logger honoring the requested level and format.
func (f *Factory) Create(level Level, format Format) (*zap.Logger, error) {
	zapLevel, ok := levelMapping[level]
	if !ok {
		return nil, fmt.Errorf("unsupported log level: %s", level)
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	switch format {
	case FormatStructured:
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	case FormatConsole:
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	default:
		return nil, fmt.Errorf("unsupported log format: %s", format)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(f.writer), zap.NewAtomicLevelAt(zapLevel))
	return zap.New(core), nil
}

// OrNop returns logger, or a no-op logger when logger is nil.
func OrNop(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

// Operation runs fn and logs its outcome with timing.
func Operation(logger *zap.Logger, operation string, fn func() error, fields ...zap.Field) error {
	logger = OrNop(logger)
	start := time.Now()
	logger.Debug("starting", append(fields, zap.String("operation", operation))...)

	err := fn()

	fields = append(fields, zap.String("operation", operation), zap.Duration("duration", time.Since(start)))
	if err != nil {
		logger.Warn("failed", append(fields, zap.Error(err))...)
	} else {
		logger.Info("completed", fields...)
	}
	return err
}

package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/skycab/ridepool/internal/pkg/models"
)

// ZapLogger wraps a zap logger writing to console and, when configured, a file
type ZapLogger struct {
	*zap.Logger
	file *os.File
}

// InitZapLoggerFromConfig builds the application logger from configuration
func InitZapLoggerFromConfig(cfg *models.Config) (*ZapLogger, error) {
	level := zapcore.InfoLevel
	if err := level.UnmarshalText([]byte(cfg.Logger.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var cores []zapcore.Core
	var file *os.File

	if cfg.Logger.Console {
		consoleEncoder := zapcore.NewConsoleEncoder(encoderConfig)
		cores = append(cores, zapcore.NewCore(consoleEncoder, zapcore.Lock(os.Stdout), level))
	}

	if cfg.Logger.FilePath != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.Logger.FilePath), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(cfg.Logger.FilePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		file = f
		jsonEncoder := zapcore.NewJSONEncoder(encoderConfig)
		cores = append(cores, zapcore.NewCore(jsonEncoder, zapcore.AddSync(f), level))
	}

	if len(cores) == 0 {
		consoleEncoder := zapcore.NewConsoleEncoder(encoderConfig)
		cores = append(cores, zapcore.NewCore(consoleEncoder, zapcore.Lock(os.Stdout), level))
	}

	zl := zap.New(zapcore.NewTee(cores...), zap.AddCaller())
	return &ZapLogger{Logger: zl, file: file}, nil
}

// WithFields returns a logger with additional structured fields
func (l *ZapLogger) WithFields(fields map[string]interface{}) *zap.Logger {
	zapFields := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		zapFields = append(zapFields, zap.Any(k, v))
	}
	return l.Logger.With(zapFields...)
}

// WithError returns a logger with an error field
func (l *ZapLogger) WithError(err error) *zap.Logger {
	return l.Logger.With(zap.Error(err))
}

// Close flushes buffered entries and closes the log file
func (l *ZapLogger) Close() error {
	_ = l.Logger.Sync()
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

package logging

import (
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger provides structured logging for editor operations.
type Logger struct {
	zap *zap.Logger
}

// NewLogger creates a new Logger instance that writes to a file.
// If logPath is empty, logging is disabled.
// If development is true, uses development config with readable output.
// Otherwise uses production config with JSON output.
func NewLogger(logPath string, development bool) (*Logger, error) {
	if logPath == "" {
		// No logging
		return &Logger{zap: zap.NewNop()}, nil
	}

	// Open log file
	logFile, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}

	// Create encoder config
	var encoderConfig zapcore.EncoderConfig
	if development {
		encoderConfig = zap.NewDevelopmentEncoderConfig()
	} else {
		encoderConfig = zap.NewProductionEncoderConfig()
	}

	// Create core that writes to file
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logFile),
		zapcore.InfoLevel,
	)

	logger := zap.New(core)

	return &Logger{zap: logger}, nil
}

// Nop returns a Logger that discards everything.
func Nop() *Logger {
	return &Logger{zap: zap.NewNop()}
}

// Close syncs the logger (should be called on shutdown).
func (l *Logger) Close() error {
	return l.zap.Sync()
}

// CommandExecuted logs one handled editor command.
func (l *Logger) CommandExecuted(command, path string, duration time.Duration, isError bool) {
	l.zap.Info("command executed",
		zap.String("command", command),
		zap.String("path", path),
		zap.Duration("duration", duration),
		zap.Bool("is_error", isError),
	)
}

// Error logs an error.
func (l *Logger) Error(msg string, err error) {
	l.zap.Error(msg, zap.Error(err))
}

// Info logs an info message.
func (l *Logger) Info(msg string, fields ...zap.Field) {
	l.zap.Info(msg, fields...)
}

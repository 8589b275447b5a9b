package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var Logger *zap.Logger

// Init - initialize the process-wide logger
func Init() {
	Logger = New()
}

// New builds a production zap logger with ISO8601 timestamps. Handlers take
// the logger as a dependency, so tests can substitute an observed one.
func New() *zap.Logger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.StacktraceKey = ""

	log, err := config.Build()
	if err != nil {
		panic(err)
	}
	return log
}

// Sync - flush buffered log entries
func Sync() {
	_ = Logger.Sync()
}

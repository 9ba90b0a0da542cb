package logger

import (
	"log"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu     sync.RWMutex
	base   = zap.NewNop()
	sugar  = base.Sugar()
	levels = map[string]zapcore.Level{
		"debug": zapcore.DebugLevel,
		"info":  zapcore.InfoLevel,
		"warn":  zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
	}
)

// SetupLogger builds the process-wide logger.
// level: "debug", "info", "warn", "error" (default "info")
// format: "json" or "console" (default "json")
func SetupLogger(level, format, serviceName string) (*zap.Logger, error) {
	zapLevel, ok := levels[level]
	if !ok {
		zapLevel = zapcore.InfoLevel
	}

	var cfg zap.Config
	if format == "console" {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "timestamp"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		cfg.OutputPaths = []string{"stdout"}
		cfg.ErrorOutputPaths = []string{"stderr"}
	}
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)

	l, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	if serviceName != "" {
		l = l.With(zap.String("service_name", serviceName))
	}
	if hostname, err := os.Hostname(); err == nil && hostname != "" {
		l = l.With(zap.String("hostname", hostname))
	}

	Replace(l)
	return l, nil
}

// Replace swaps the process-wide logger. Tests use it with zaptest loggers.
func Replace(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	base = l
	sugar = l.Sugar()
}

// L returns the process-wide logger.
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base
}

// StdLogger bridges the zap logger into a *log.Logger at the given level,
// for libraries that only accept a printf-style writer.
func StdLogger(level zapcore.Level) *log.Logger {
	l, err := zap.NewStdLogAt(L(), level)
	if err != nil {
		return zap.NewStdLog(L())
	}
	return l
}

// Info logs at info level.
func Info(format string, v ...interface{}) {
	mu.RLock()
	defer mu.RUnlock()
	sugar.Infof(format, v...)
}

// Warning logs at warn level.
func Warning(format string, v ...interface{}) {
	mu.RLock()
	defer mu.RUnlock()
	sugar.Warnf(format, v...)
}

// Error logs at error level.
func Error(format string, v ...interface{}) {
	mu.RLock()
	defer mu.RUnlock()
	sugar.Errorf(format, v...)
}

// Sync flushes buffered entries.
func Sync() error {
	return L().Sync()
}

package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds logger configuration.
type Config struct {
	Level       string
	ServiceName string
	Development bool
}

// Logger wraps zap.Logger.
type Logger struct {
	*zap.Logger
}

var globalLogger *Logger

// Init initializes the global logger.
func Init(cfg Config) (*Logger, error) {
	level := zapcore.InfoLevel
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var encoderCfg zapcore.EncoderConfig
	var encoder zapcore.Encoder
	if cfg.Development {
		encoderCfg = zap.NewDevelopmentEncoderConfig()
		encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	} else {
		encoderCfg = zap.NewProductionEncoderConfig()
		encoderCfg.TimeKey = "timestamp"
		encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), level)
	zapLogger := zap.New(core,
		zap.AddCaller(),
		zap.Fields(zap.String("service", cfg.ServiceName)),
	)

	globalLogger = &Logger{zapLogger}
	return globalLogger, nil
}

// Get returns the global logger, initializing a default one if needed.
func Get() *Logger {
	if globalLogger == nil {
		l, _ := Init(Config{Level: "info", ServiceName: "eventful-hub-api"})
		return l
	}
	return globalLogger
}

// Sync flushes any buffered log entries.
func Sync() error {
	if globalLogger == nil {
		return nil
	}
	return globalLogger.Logger.Sync()
}

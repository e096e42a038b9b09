package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	gormlogger "gorm.io/gorm/logger"
)

type Config struct {
	Development bool
	Level       string // debug|info|warn|error; empty picks by environment
	Encoding    string // console|json; empty picks by environment
}

// New builds the application logger. Development defaults to a console
// encoder at debug level, production to JSON at info.
func New(cfg Config) (*zap.Logger, error) {
	var zc zap.Config
	if cfg.Development {
		zc = zap.NewDevelopmentConfig()
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		zc = zap.NewProductionConfig()
		zc.EncoderConfig.TimeKey = "time"
		zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	if cfg.Level != "" {
		level, err := zapcore.ParseLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("parse log level: %w", err)
		}
		zc.Level = zap.NewAtomicLevelAt(level)
	}
	if cfg.Encoding != "" {
		zc.Encoding = cfg.Encoding
	}

	return zc.Build()
}

// GormLevel maps the zap level onto gorm's SQL logger.
func GormLevel(log *zap.Logger) gormlogger.LogLevel {
	switch {
	case log.Core().Enabled(zapcore.DebugLevel):
		return gormlogger.Info
	case log.Core().Enabled(zapcore.WarnLevel):
		return gormlogger.Warn
	default:
		return gormlogger.Error
	}
}

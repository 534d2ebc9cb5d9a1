package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the global SugaredLogger instance.
// Initialized with a no-op logger until Initialize is called.
var Log *zap.SugaredLogger = zap.NewNop().Sugar()

// Initialize sets up the global logger for the given level and environment.
// The "production" environment logs JSON; anything else logs colored console output.
func Initialize(level, environment string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	var cfg zap.Config
	if environment == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	logger, err := cfg.Build()
	if err != nil {
		return err
	}

	Log = logger.Sugar().With("service", "dashmachine-api")
	return nil
}

// Sync flushes any buffered log entries.
func Sync() error {
	return Log.Sync()
}

// Package logging builds the zap loggers used by the fieldedit commands.
//
// Library packages never create loggers; they take a *zap.Logger option and
// default to zap.NewNop().
package logging

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LevelEnvVar controls verbosity when no level is given. When both are
// empty logging is silent.
const LevelEnvVar = "FIELDEDIT_LOG_LEVEL"

// Config describes a logger.
type Config struct {
	// Level is one of debug, info, warn, error. Empty falls back to
	// LevelEnvVar, then to a silent logger.
	Level string

	// Development makes DPanic entries panic and adds stack traces to
	// warnings.
	Development bool

	// OutputPath receives log entries. A terminal UI owns stdout, so the
	// default is stderr.
	OutputPath string
}

// ParseLevel maps a level name to a zap level. Unknown names mean info.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// New builds a console logger for cfg.
func New(cfg Config) (*zap.Logger, error) {
	level := cfg.Level
	if level == "" {
		level = os.Getenv(LevelEnvVar)
	}
	if level == "" {
		return zap.NewNop(), nil
	}

	out := cfg.OutputPath
	if out == "" {
		out = "stderr"
	}

	zc := zap.Config{
		Level:            zap.NewAtomicLevelAt(ParseLevel(level)),
		Development:      cfg.Development,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{out},
		ErrorOutputPaths: []string{"stderr"},
	}
	zc.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zc.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("logging: build logger: %w", err)
	}
	return logger, nil
}

package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	require.Equal(t, zapcore.DebugLevel, ParseLevel("debug"))
	require.Equal(t, zapcore.WarnLevel, ParseLevel(" WARN "))
	require.Equal(t, zapcore.ErrorLevel, ParseLevel("error"))
	require.Equal(t, zapcore.InfoLevel, ParseLevel("loud"))
}

func TestNew_SilentByDefault(t *testing.T) {
	t.Setenv(LevelEnvVar, "")
	logger, err := New(Config{})
	require.NoError(t, err)
	require.False(t, logger.Core().Enabled(zapcore.ErrorLevel))
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fieldedit.log")
	logger, err := New(Config{Level: "warn", OutputPath: path})
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("value sanitized")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "WARN")
	require.Contains(t, string(data), "value sanitized")
	require.NotContains(t, string(data), "hidden")
}

func TestNew_LevelFromEnv(t *testing.T) {
	t.Setenv(LevelEnvVar, "debug")
	logger, err := New(Config{OutputPath: filepath.Join(t.TempDir(), "x.log")})
	require.NoError(t, err)
	require.True(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestNew_DevelopmentDPanics(t *testing.T) {
	logger, err := New(Config{Level: "error", Development: true, OutputPath: filepath.Join(t.TempDir(), "x.log")})
	require.NoError(t, err)
	require.Panics(t, func() { logger.DPanic("contract violation") })
}

package logger_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Astemirdum/bookbuddy-service/pkg/logger"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger_FileSink(t *testing.T) {
	sink := filepath.Join(t.TempDir(), "shelf.log")
	log := logger.NewLogger(logger.Log{LogLevel: zapcore.InfoLevel, Sink: sink, MaxSizeMB: 1}, "shelf")

	log.Debug("hidden")
	log.Info("visible", zap.String("k", "v"))
	_ = log.Sync()

	data, err := os.ReadFile(sink)
	require.NoError(t, err)
	require.Contains(t, string(data), `"msg":"visible"`)
	require.Contains(t, string(data), `"logger":"shelf"`)
	require.NotContains(t, string(data), "hidden")
}

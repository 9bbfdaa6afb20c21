package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestInit_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nautic.log")
	prev := zap.L()
	t.Cleanup(func() { zap.ReplaceGlobals(prev) })

	l, err := Init("warn", true, path)
	require.NoError(t, err)
	assert.Same(t, l, zap.L())

	zap.S().Info("dropped below level")
	zap.S().Warnw("forecast fetch failed", "spot", "Pinamar")
	require.NoError(t, l.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, `"msg":"forecast fetch failed"`)
	assert.Contains(t, content, `"spot":"Pinamar"`)
	assert.False(t, strings.Contains(content, "dropped below level"))
}

func TestInit_UnknownLevelFallsBackToInfo(t *testing.T) {
	prev := zap.L()
	t.Cleanup(func() { zap.ReplaceGlobals(prev) })

	l, err := Init("loud", false, "")
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
}

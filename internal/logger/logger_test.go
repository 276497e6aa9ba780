package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func readLog(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestNew_WritesJSONAtLevel(t *testing.T) {
	out := filepath.Join(t.TempDir(), "app.log")
	log, err := New(Config{Level: "warn", Encoding: "json", OutputPath: out})
	require.NoError(t, err)

	log.Info("dropped")
	log.Warn("kept", zap.String("destination", "Kyoto"))
	require.NoError(t, log.Sync())

	data := readLog(t, out)
	assert.NotContains(t, data, "dropped")
	assert.Contains(t, data, `"destination":"Kyoto"`)
	assert.Contains(t, data, `"level":"WARN"`)
	assert.Contains(t, data, `"service":"storytrip"`)
}

func TestNew_BadLevelFallsBackToInfo(t *testing.T) {
	log, err := New(Config{Level: "loud", Encoding: "yaml", OutputPath: filepath.Join(t.TempDir(), "x.log")})
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zap.InfoLevel))
	assert.False(t, log.Core().Enabled(zap.DebugLevel))
}

func TestNew_TagsEnvAndComponent(t *testing.T) {
	out := filepath.Join(t.TempDir(), "app.log")
	log, err := New(Config{Encoding: "json", OutputPath: out, Env: "production", Component: "server"})
	require.NoError(t, err)

	log.Info("started")
	require.NoError(t, log.Sync())

	data := readLog(t, out)
	assert.Contains(t, data, `"env":"production"`)
	assert.Contains(t, data, `"component":"server"`)
}

func TestConfig_Encoding(t *testing.T) {
	tests := []struct {
		cfg  Config
		want string
	}{
		{Config{}, "json"},
		{Config{Env: "development"}, "console"},
		{Config{Env: "development", Encoding: "json"}, "json"},
		{Config{Encoding: "CONSOLE"}, "console"},
		{Config{Env: "development", Encoding: "xml"}, "json"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.cfg.encoding(), "%+v", tt.cfg)
	}
}

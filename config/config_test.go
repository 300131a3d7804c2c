package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rediwo/redi-log/logger"
)

func TestDefaultOptions(t *testing.T) {
	opts, err := Default().Options()
	require.NoError(t, err)
	assert.Equal(t, logger.Trace, opts.ConsoleLevel)
	assert.Equal(t, logger.Trace, opts.FileLevel)
	assert.Equal(t, logger.ModeDebug, opts.Mode)
	assert.False(t, opts.Color)
}

func TestLoadJSON5(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.json5")
	content := `{
		// only warnings and worse on screen
		consoleLevel: "warning",
		fileLevel: 'info',
		mode: "release",
		exportPath: "session.txt",
		color: true,
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "session.txt", cfg.ExportPath)

	opts, err := cfg.Options()
	require.NoError(t, err)
	assert.Equal(t, logger.Warning, opts.ConsoleLevel)
	assert.Equal(t, logger.Info, opts.FileLevel)
	assert.Equal(t, logger.ModeRelease, opts.Mode)
	assert.True(t, opts.Color)
}

func TestLoadKeepsDefaultsForMissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.json5")
	require.NoError(t, os.WriteFile(path, []byte(`{fileLevel: "error"}`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "TRACE", cfg.ConsoleLevel)
	assert.Equal(t, "error", cfg.FileLevel)
	assert.Equal(t, "debug", cfg.Mode)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json5"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.json5")
	require.NoError(t, os.WriteFile(path, []byte(`{consoleLevel: `), 0644))
	_, err = Load(path)
	assert.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("REDI_LOG_CONSOLE_LEVEL", "error")
	t.Setenv("REDI_LOG_MODE", "dist")
	t.Setenv("REDI_LOG_COLOR", "true")
	t.Setenv("REDI_LOG_EXPORT_PATH", "env.txt")

	cfg := Default()
	cfg.FileLevel = "info"
	cfg.ApplyEnv(NewLoader(EnvPrefix))

	assert.Equal(t, "error", cfg.ConsoleLevel)
	assert.Equal(t, "info", cfg.FileLevel)
	assert.Equal(t, "dist", cfg.Mode)
	assert.Equal(t, "env.txt", cfg.ExportPath)
	assert.True(t, cfg.Color)
}

func TestOptionsRejectsUnknownValues(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"console", Config{ConsoleLevel: "loud", FileLevel: "info", Mode: "debug"}},
		{"file", Config{ConsoleLevel: "info", FileLevel: "", Mode: "debug"}},
		{"mode", Config{ConsoleLevel: "info", FileLevel: "info", Mode: "beta"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.cfg.Options()
			assert.Error(t, err)
		})
	}
}

func TestNewLoaderPrefix(t *testing.T) {
	assert.Equal(t, "REDI_LOG_", NewLoader("REDI_LOG").Prefix)
	assert.Equal(t, "REDI_LOG_", NewLoader("REDI_LOG_").Prefix)
	assert.Equal(t, "", NewLoader("").Prefix)
}

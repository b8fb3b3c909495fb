package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"growth-rate-calculator/internal/logger"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("DEBUG", "")
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, logger.InfoLevel, cfg.Level())
}

func TestLoadOverridesDefaults(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
log_level = "debug"
log_file = "/tmp/growth-rate.log"

[window]
width = 420
height = 360
fixed = false

[cache]
size = 16

[monitor]
interval = "5s"

[shutdown]
step_timeout = "2s"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, logger.DebugLevel, cfg.Level())
	assert.Equal(t, "/tmp/growth-rate.log", cfg.LogFile)
	assert.Equal(t, WindowConfig{Width: 420, Height: 360, Fixed: false}, cfg.Window)
	assert.Equal(t, 16, cfg.Cache.Size)
	assert.Equal(t, 5*time.Second, cfg.Monitor.Interval.Duration)
	assert.Equal(t, 2*time.Second, cfg.Shutdown.StepTimeout.Duration)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "colour = \"blue\"\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown key")
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, "log_level = \n")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	clearEnv(t)

	for name, body := range map[string]string{
		"level":    `log_level = "loud"`,
		"window":   "[window]\nwidth = 0",
		"cache":    "[cache]\nsize = -1",
		"interval": "[monitor]\ninterval = \"0s\"",
		"duration": "[monitor]\ninterval = \"soon\"",
		"shutdown": "[shutdown]\nstep_timeout = \"-1s\"",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body))
			assert.Error(t, err)
		})
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `log_level = "error"`)

	t.Setenv("DEBUG", "1")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, logger.DebugLevel, cfg.Level())

	t.Setenv("LOG_LEVEL", "warn")
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, logger.WarnLevel, cfg.Level())
}

func TestPathHonoursEnvironment(t *testing.T) {
	t.Setenv(PathEnvName, "/etc/growth.toml")

	path, err := Path()
	require.NoError(t, err)
	assert.Equal(t, "/etc/growth.toml", path)
}

func TestPathDefaultsToUserConfigDir(t *testing.T) {
	t.Setenv(PathEnvName, "")
	t.Setenv("XDG_CONFIG_HOME", "/home/someone/.config")
	t.Setenv("HOME", "/home/someone")
	t.Setenv("AppData", "/home/someone/.config")

	path, err := Path()
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, filepath.Join(AppDirName, FileName)), path)
}

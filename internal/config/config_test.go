package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jask/scenescope/internal/panel"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, "ws://127.0.0.1:7357/bridge", cfg.Bridge.URL)
	assert.Equal(t, 2*time.Second, cfg.Bridge.ReconnectDelay)
	assert.Equal(t, 5*time.Second, cfg.UI.ErrorTimeout)
	assert.Equal(t, string(panel.Scene), cfg.UI.StartPanel)
	assert.True(t, cfg.Journal.Enabled)
	assert.Equal(t, 20, cfg.Journal.KeepSessions)
	assert.Equal(t, time.Second, cfg.Simulate.Interval)
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg, err := Load(path)
	require.NoError(t, err)

	cfg.Bridge.URL = "ws://target:9000/bridge"
	cfg.UI.StartPanel = string(panel.Materials)
	cfg.UI.ErrorTimeout = 1500 * time.Millisecond
	cfg.Journal.Enabled = false
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("SCENESCOPE_BRIDGE_URL", "ws://env/bridge")
	t.Setenv("SCENESCOPE_UI_START_PANEL", "rendering")
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, "ws://env/bridge", cfg.Bridge.URL)
	assert.Equal(t, "rendering", cfg.UI.StartPanel)
}

func TestValidateRejects(t *testing.T) {
	dir := t.TempDir()
	write := func(body string) string {
		p := filepath.Join(dir, "bad.toml")
		require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
		return p
	}

	_, err := Load(write("[ui]\nstart_panel = \"lights\"\n"))
	require.ErrorIs(t, err, panel.ErrUnknownPanel)

	_, err = Load(write("[ui]\nerror_timeout = \"0s\"\n"))
	require.ErrorContains(t, err, "ui.error_timeout")

	_, err = Load(write("[bridge]\nreconnect_delay = \"-1s\"\n"))
	require.ErrorContains(t, err, "bridge.reconnect_delay")
}

func TestExpandHome(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	assert.Equal(t, filepath.Join("/home/tester", "x", "y.db"), expandHome("~/x/y.db"))
	assert.Equal(t, "/abs/y.db", expandHome("/abs/y.db"))
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefaultValidates(t *testing.T) {
	require.NoError(t, Validate(Default()))
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"server:\n  addr: \":9090\"\nsimulate:\n  default_trials: 500\n  max_trials: 5000\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.Server.Addr)
	require.Equal(t, 500, cfg.Simulate.DefaultTrials)
	require.Equal(t, 5000, cfg.Simulate.MaxTrials)
	// untouched field keeps its default
	require.Equal(t, Default().Server.ReadTimeout, cfg.Server.ReadTimeout)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  addr: \":9090\"\n"), 0o644))

	t.Setenv("FUZZY_ADDR", ":7070")
	t.Setenv("FUZZY_MAX_TRIALS", "400000")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, ":7070", cfg.Server.Addr)
	require.Equal(t, 400000, cfg.Simulate.MaxTrials)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [not a map"), 0o644))
	_, err := Load(path)
	require.Error(t, err)
}

func TestValidateCollectsErrors(t *testing.T) {
	cfg := Config{
		Server:   ServerConfig{Addr: ""},
		Simulate: SimulateConfig{DefaultTrials: 0, MaxTrials: -1},
	}
	err := Validate(cfg)
	require.Error(t, err)
	require.Contains(t, err.Error(), "server.addr")
	require.Contains(t, err.Error(), "simulate.default_trials")
}

func TestWatcherFiresOnChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("simulate:\n  max_trials: 100000\n"), 0o644))

	changed := make(chan string, 1)
	w := NewWatcher(path, 10*time.Millisecond, func(p string) {
		select {
		case changed <- p:
		default:
		}
	})
	w.Start()
	defer w.Stop()

	// bump mtime well past the primed value; some filesystems are coarse
	future := time.Now().Add(2 * time.Second)
	require.NoError(t, os.Chtimes(path, future, future))

	select {
	case p := <-changed:
		require.Equal(t, path, p)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher never fired")
	}
}

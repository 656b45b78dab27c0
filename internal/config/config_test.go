package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/lcgerke/localhub/internal/config"
)

func newFlags(t *testing.T) *pflag.FlagSet {
	t.Helper()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("hub-path", "", "")
	flags.String("log-level", "", "")
	flags.String("log-format", "", "")
	return flags
}

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	home := t.TempDir()

	cfg, err := config.Load(config.Options{Home: home, SearchPaths: []string{t.TempDir()}})
	require.NoError(t, err)

	require.Equal(t, filepath.Join(home, ".local-git-hub"), cfg.HubPath)
	require.Equal(t, "local-hub", cfg.RemoteName)
	require.Equal(t, "origin", cfg.PushRemote)
	require.Equal(t, "warn", cfg.LogLevel)
	require.Equal(t, "console", cfg.LogFormat)
	require.Empty(t, cfg.ConfigFileUsed)
}

func TestLoadPrecedence(t *testing.T) {
	home := t.TempDir()
	configDir := t.TempDir()
	writeConfig(t, configDir, "hub_path: ~/from-file\nremote_name: backup\nlog_level: info\n")

	t.Run("file over defaults", func(t *testing.T) {
		cfg, err := config.Load(config.Options{Home: home, SearchPaths: []string{configDir}})
		require.NoError(t, err)
		require.Equal(t, filepath.Join(home, "from-file"), cfg.HubPath)
		require.Equal(t, "backup", cfg.RemoteName)
		require.Equal(t, "info", cfg.LogLevel)
		require.Equal(t, filepath.Join(configDir, "config.yaml"), cfg.ConfigFileUsed)
	})

	t.Run("env over file", func(t *testing.T) {
		envHub := filepath.Join(t.TempDir(), "env-hub")
		t.Setenv("LOCALHUB_HUB_PATH", envHub)
		t.Setenv("LOCALHUB_REMOTE_NAME", "from-env")

		cfg, err := config.Load(config.Options{Home: home, SearchPaths: []string{configDir}})
		require.NoError(t, err)
		require.Equal(t, envHub, cfg.HubPath)
		require.Equal(t, "from-env", cfg.RemoteName)
	})

	t.Run("flag over env", func(t *testing.T) {
		t.Setenv("LOCALHUB_HUB_PATH", filepath.Join(t.TempDir(), "env-hub"))
		flagHub := filepath.Join(t.TempDir(), "flag-hub")
		flags := newFlags(t)
		require.NoError(t, flags.Set("hub-path", flagHub))

		cfg, err := config.Load(config.Options{Home: home, SearchPaths: []string{configDir}, Flags: flags})
		require.NoError(t, err)
		require.Equal(t, flagHub, cfg.HubPath)
		require.Equal(t, "info", cfg.LogLevel)
	})

	t.Run("unset flags keep lower layers", func(t *testing.T) {
		cfg, err := config.Load(config.Options{Home: home, SearchPaths: []string{configDir}, Flags: newFlags(t)})
		require.NoError(t, err)
		require.Equal(t, filepath.Join(home, "from-file"), cfg.HubPath)
	})
}

func TestLoadExplicitFile(t *testing.T) {
	home := t.TempDir()
	path := writeConfig(t, t.TempDir(), "push_remote: upstream\n")

	cfg, err := config.Load(config.Options{Home: home, ConfigFile: path})
	require.NoError(t, err)
	require.Equal(t, "upstream", cfg.PushRemote)

	_, err = config.Load(config.Options{Home: home, ConfigFile: filepath.Join(home, "missing.yaml")})
	require.Error(t, err)
}

func TestLoadMalformedFile(t *testing.T) {
	configDir := t.TempDir()
	writeConfig(t, configDir, "hub_path: [unterminated\n")

	_, err := config.Load(config.Options{Home: t.TempDir(), SearchPaths: []string{configDir}})
	require.Error(t, err)
}

func TestYAML(t *testing.T) {
	cfg := &config.Config{
		HubPath:        "/tmp/hub",
		RemoteName:     "local-hub",
		PushRemote:     "origin",
		LogLevel:       "warn",
		LogFormat:      "console",
		ConfigFileUsed: "/etc/ignored.yaml",
	}

	rendered, err := cfg.YAML()
	require.NoError(t, err)

	var decoded map[string]string
	require.NoError(t, yaml.Unmarshal([]byte(rendered), &decoded))
	require.Equal(t, "/tmp/hub", decoded["hub_path"])
	require.Equal(t, "origin", decoded["push_remote"])
	require.NotContains(t, rendered, "ignored")
}

func TestDefaultSearchPaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	paths := config.DefaultSearchPaths("/home/me")
	require.Equal(t, []string{"/xdg/localhub", "/home/me/.config/localhub"}, paths)
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/lcgerke/localhub/internal/constants"
)

// Configuration keys
const (
	KeyHubPath    = "hub_path"
	KeyRemoteName = "remote_name"
	KeyPushRemote = "push_remote"
	KeyLogLevel   = "log_level"
	KeyLogFormat  = "log_format"
)

// flagBindings maps configuration keys to the CLI flags that override them
var flagBindings = map[string]string{
	KeyHubPath:   "hub-path",
	KeyLogLevel:  "log-level",
	KeyLogFormat: "log-format",
}

// Config is the effective localhub configuration
type Config struct {
	HubPath    string `mapstructure:"hub_path" yaml:"hub_path" json:"hub_path"`
	RemoteName string `mapstructure:"remote_name" yaml:"remote_name" json:"remote_name"`
	PushRemote string `mapstructure:"push_remote" yaml:"push_remote" json:"push_remote"`
	LogLevel   string `mapstructure:"log_level" yaml:"log_level" json:"log_level"`
	LogFormat  string `mapstructure:"log_format" yaml:"log_format" json:"log_format"`

	// ConfigFileUsed is the file the configuration was read from, if any
	ConfigFileUsed string `mapstructure:"-" yaml:"-" json:"-"`
}

// Options controls where configuration is loaded from
type Options struct {
	// ConfigFile is an explicit config file; it must exist when set
	ConfigFile string
	// SearchPaths are directories searched for config.yaml when ConfigFile is empty
	SearchPaths []string
	// Flags are bound on top of environment and file values
	Flags *pflag.FlagSet
	// Home is the resolved home directory used for defaults and ~ expansion
	Home string
}

// DefaultHubPath returns the hub root used when nothing else is configured
func DefaultHubPath(home string) string {
	return filepath.Join(home, constants.DefaultHubDirName)
}

// DefaultSearchPaths returns the directories searched for config.yaml
func DefaultSearchPaths(home string) []string {
	var paths []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, constants.ConfigDirName))
	}
	if home != "" {
		paths = append(paths, filepath.Join(home, ".config", constants.ConfigDirName))
	}
	return paths
}

// Defaults returns the built-in configuration values
func Defaults(home string) map[string]any {
	return map[string]any{
		KeyHubPath:    DefaultHubPath(home),
		KeyRemoteName: constants.DefaultHubRemote,
		KeyPushRemote: constants.DefaultPushRemote,
		KeyLogLevel:   "warn",
		KeyLogFormat:  "console",
	}
}

// Load resolves configuration with precedence flag > env > file > default
func Load(opts Options) (*Config, error) {
	v := viper.New()
	v.SetConfigName(constants.ConfigFileBaseName)
	v.SetConfigType("yaml")

	for key, value := range Defaults(opts.Home) {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(constants.EnvironmentPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
	} else {
		for _, path := range opts.SearchPaths {
			v.AddConfigPath(path)
		}
	}

	if opts.ConfigFile != "" || len(opts.SearchPaths) > 0 {
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if opts.ConfigFile != "" || !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read configuration: %w", err)
			}
		}
	}

	if opts.Flags != nil {
		for key, flagName := range flagBindings {
			flag := opts.Flags.Lookup(flagName)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("failed to bind flag --%s: %w", flagName, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg.HubPath = expandHome(strings.TrimSpace(cfg.HubPath), opts.Home)
	if cfg.HubPath == "" {
		cfg.HubPath = DefaultHubPath(opts.Home)
	}
	if abs, err := filepath.Abs(cfg.HubPath); err == nil {
		cfg.HubPath = abs
	}
	cfg.ConfigFileUsed = v.ConfigFileUsed()

	return &cfg, nil
}

// YAML renders the configuration as YAML
func (c *Config) YAML() (string, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("failed to marshal configuration: %w", err)
	}
	return string(data), nil
}

func expandHome(path, home string) string {
	if home == "" {
		return path
	}
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// ErrNotFound is returned when an explicitly requested config file does not exist
var ErrNotFound = errors.New("config file not found")

// Config represents the CLI configuration
type Config struct {
	Log    LogConfig
	Output OutputConfig

	// Path of the file the config was read from, empty if none was found
	Path string
}

// LogConfig controls the log file
type LogConfig struct {
	Level string
	File  string // empty means the default ~/.chromatic/logs/chromatic.log
}

// OutputConfig controls terminal output
type OutputConfig struct {
	NoColor bool
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("output.no_color", false)

	// CHROMATIC_LOG_LEVEL -> log.level
	v.SetEnvPrefix("CHROMATIC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("output.no_color", "CHROMATIC_NO_COLOR")

	return v
}

// Load reads the config from path, or from the user's config directory when
// path is empty. A missing default file is not an error; defaults are used.
func Load(path string) (*Config, error) {
	v := newViper()

	explicit := path != ""
	if !explicit {
		defaultPath, err := getConfigPath()
		if err == nil {
			path = defaultPath
		}
	}

	var used string
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to stat config %s: %w", path, err)
			}
			if explicit {
				return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
			}
		} else {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read config %s: %w", path, err)
			}
			used = path
		}
	}

	return &Config{
		Log: LogConfig{
			Level: v.GetString("log.level"),
			File:  v.GetString("log.file"),
		},
		Output: OutputConfig{
			NoColor: v.GetBool("output.no_color") || os.Getenv("NO_COLOR") != "",
		},
		Path: used,
	}, nil
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "chromatic", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "chromatic", "config.yaml"), nil
}

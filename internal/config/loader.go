package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/Ning0612/reclaim/internal/domain"
)

// DefaultConfigPaths returns the default paths to search for config files
func DefaultConfigPaths() []string {
	paths := []string{
		".",
	}

	// Add user config directory
	if configDir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(configDir, "reclaim"))
	}

	// Add home directory
	if homeDir, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(homeDir, ".config", "reclaim"))
		paths = append(paths, filepath.Join(homeDir, ".reclaim"))
	}

	return paths
}

// defaultStateDir resolves where the scan history database lives when
// the config does not say.
func defaultStateDir() string {
	if cacheDir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(cacheDir, "reclaim")
	}
	return ".reclaim"
}

// Load reads and parses a configuration file.
// If path is empty, searches default locations for config.yaml;
// a missing file is not an error, defaults apply.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("analysis.min_size_mb", 100)
	v.SetDefault("analysis.stale_days", 180)
	v.SetDefault("analysis.top_files", 10)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file", "")
	v.SetDefault("state_dir", defaultStateDir())

	v.SetEnvPrefix("RECLAIM")
	v.AutomaticEnv()

	if path != "" {
		// Use specific file
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); ok {
				return nil, domain.ErrConfigNotFound
			}
			if os.IsNotExist(err) {
				return nil, domain.ErrConfigNotFound
			}
			return nil, fmt.Errorf("%w: %v", domain.ErrConfigInvalid, err)
		}
	} else {
		// Search default paths; absence falls back to defaults
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		for _, p := range DefaultConfigPaths() {
			v.AddConfigPath(p)
		}
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("%w: %v", domain.ErrConfigInvalid, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrConfigInvalid, err)
	}

	// Validate the configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

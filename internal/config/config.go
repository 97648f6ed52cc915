// Package config reads and writes ~/.murmur/config.yaml and names the
// paths under murmur's home directory.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/nchapman/murmur/internal/fileutil"
	"gopkg.in/yaml.v3"
)

type Config struct {
	DefaultModel string `yaml:"default_model"`
	Endpoint     string `yaml:"endpoint"`
	Revision     string `yaml:"revision"`
	MaxRetries   int    `yaml:"max_retries"`
	CacheDir     string `yaml:"cache_dir,omitempty"`
}

const (
	configDir  = ".murmur"
	configFile = "config.yaml"
	stateFile  = "state.yaml"
	modelsDir  = "models"
	logsDir    = "logs"
)

// BasePath is murmur's home, ~/.murmur. When the home directory cannot be
// resolved everything lands under the working directory instead.
func BasePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, configDir)
}

func ConfigPath() string {
	return filepath.Join(BasePath(), configFile)
}

func StatePath() string {
	return filepath.Join(BasePath(), stateFile)
}

func ModelsPath() string {
	return filepath.Join(BasePath(), modelsDir)
}

func LogsPath() string {
	return filepath.Join(BasePath(), logsDir)
}

func DefaultConfig() *Config {
	return &Config{
		DefaultModel: "base",
		Endpoint:     "https://huggingface.co",
		Revision:     "main",
		MaxRetries:   2,
		CacheDir:     "",
	}
}

// ResolvedCacheDir returns the directory model files live in: the configured
// override if set, otherwise ~/.murmur/models.
func (c *Config) ResolvedCacheDir() string {
	if c.CacheDir != "" {
		return c.CacheDir
	}
	return ModelsPath()
}

// Load reads the config file, layering it over DefaultConfig. A missing
// file is not an error; keys absent from the file keep their defaults.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return cfg, nil
}

// Save writes cfg to the config file atomically, so a crash mid-write
// cannot leave a torn config behind.
func Save(cfg *Config) error {
	path := ConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := fileutil.AtomicWriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	return nil
}

// EnsureDirectories creates murmur's home and its subdirectories.
func EnsureDirectories() error {
	for _, dir := range []string{BasePath(), ModelsPath(), LogsPath()} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	return nil
}

package engine

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/nchapman/murmur/internal/config"
	"github.com/nchapman/murmur/internal/fileutil"
)

// State records the last successful model selection, read back by
// `murmur status`.
type State struct {
	ActiveTier string    `yaml:"active_tier"`
	ModelPath  string    `yaml:"model_path"`
	SelectedAt time.Time `yaml:"selected_at"`
}

// LoadState reads the persisted selection. A missing file returns (nil, nil).
func LoadState() (*State, error) {
	data, err := os.ReadFile(config.StatePath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read state: %w", err)
	}

	var state State
	if err := yaml.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to parse state: %w", err)
	}

	return &state, nil
}

func SaveState(state *State) error {
	if err := os.MkdirAll(filepath.Dir(config.StatePath()), 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	data, err := yaml.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	return fileutil.AtomicWriteFile(config.StatePath(), data, 0644)
}

func ClearState() error {
	if err := os.Remove(config.StatePath()); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

type GlobalConfig struct {
	// LastDir is the directory of the most recently opened card file. The TUI
	// uses it to prefill the open prompt.
	LastDir string `json:"lastDir,omitempty"`

	// TUI holds optional user preferences for the interactive TUI.
	TUI *TUIConfig `json:"tui,omitempty"`
}

type TUIConfig struct {
	// SortByName is the initial value of the sort toggle (default true).
	SortByName *bool `json:"sortByName,omitempty"`
	// Preview opens the raw card preview pane on startup.
	Preview bool `json:"preview,omitempty"`
	// Glyphs selects the checkbox glyph set ("unicode" or "ascii").
	Glyphs string `json:"glyphs,omitempty"`
}

// SortByNameDefault returns the configured initial sort flag.
func (c *GlobalConfig) SortByNameDefault() bool {
	if c == nil || c.TUI == nil || c.TUI.SortByName == nil {
		return true
	}
	return *c.TUI.SortByName
}

func ConfigDir() (string, error) {
	// Test/advanced override (keeps unit tests from touching ~/.cardpick).
	if v := strings.TrimSpace(os.Getenv("CARDPICK_CONFIG_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cardpick"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

func LoadConfig() (*GlobalConfig, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &GlobalConfig{}, nil
		}
		return nil, err
	}
	var cfg GlobalConfig
	if err := json.Unmarshal(b, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func SaveConfig(cfg *GlobalConfig) error {
	if cfg == nil {
		return errors.New("nil config")
	}
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return WriteFileAtomic(path, b, 0o600)
}

// Package config handles settings, environment and base-address resolution for msgboard.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/diogo/msgboard/internal/models"
)

// Config represents the user settings stored in ~/.msgboard/config.json
type Config struct {
	TUITheme string `json:"tui_theme,omitempty"`
	// TimeFormat is a Go time layout used for createdAt values.
	TimeFormat string `json:"time_format,omitempty"`
	// RenderMarkdown renders message content through glamour.
	RenderMarkdown  bool   `json:"render_markdown"`
	MarkdownStyle   string `json:"markdown_style,omitempty"` // "dark", "light", "notty" or "auto"
	CopyToClipboard bool   `json:"copy_to_clipboard"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		TUITheme:        "tokyonight",
		TimeFormat:      models.DefaultTimeLayout,
		RenderMarkdown:  false,
		MarkdownStyle:   "dark",
		CopyToClipboard: true,
	}
}

// GetConfigDir returns the configuration directory path
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(home, ".msgboard"), nil
}

// EnsureConfigDir creates the configuration directory if it doesn't exist
func EnsureConfigDir() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.json"), nil
}

// GetLogPath returns the default diagnostic log path
func GetLogPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "msgboard.log"), nil
}

// LoadConfig loads the configuration from disk
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	configPath, err := GetConfigPath()
	if err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Use defaults if config doesn't exist
		}
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.TimeFormat == "" {
		cfg.TimeFormat = models.DefaultTimeLayout
	}

	return cfg, nil
}

// SaveConfig saves the configuration to disk
func SaveConfig(cfg Config) error {
	configDir, err := EnsureConfigDir()
	if err != nil {
		return err
	}

	configPath := filepath.Join(configDir, "config.json")

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// TimeFormats returns the selectable createdAt layouts
func TimeFormats() []string {
	return []string{
		models.DefaultTimeLayout,
		"2006-01-02 15:04:05",
		"Jan 2, 2006 3:04 PM",
		"02/01/2006 15:04",
	}
}

// MarkdownStyles returns the selectable glamour standard styles
func MarkdownStyles() []string {
	return []string{"dark", "light", "notty", "auto"}
}

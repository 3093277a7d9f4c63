// Package config loads nf's optional configuration file.
//
// Nothing is read unless a path is given explicitly: with an empty path Load
// returns the defaults. Files may be JSON or YAML, picked by extension.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Notifier backend names accepted by the notifier setting.
const (
	NotifierOS    = "os"
	NotifierSlack = "slack"
	NotifierTeams = "teams"
	NotifierApp   = "app"
	NotifierNone  = "none"
)

// Configuration represents the nf configuration
type Configuration struct {
	// Threshold in seconds; a notification fires when the run took at least
	// this long. Zero or negative values notify on every run.
	Threshold int `koanf:"threshold"`

	// Notifier selects the backend: os, slack, teams, app or none.
	Notifier string `koanf:"notifier" validate:"oneof=os slack teams app none"`

	SlackWebhook string `koanf:"slack_webhook" validate:"omitempty,url"`
	TeamsWebhook string `koanf:"teams_webhook" validate:"omitempty,url"`
	APIURL       string `koanf:"api_url" validate:"omitempty,url"`
	APIToken     string `koanf:"api_token"`

	// NotifyTimeout bounds a single notification send. 0 disables the bound.
	NotifyTimeout time.Duration `koanf:"notify_timeout" validate:"min=0"`

	Progress bool `koanf:"progress"` // Show a spinner on stderr while the command runs
	Quiet    bool `koanf:"quiet"`    // Silence notifier log lines
}

// Load returns the defaults overlaid with the file at path, if path is set.
// A path that was given but does not exist is an error.
func Load(path string) (*Configuration, error) {
	k := koanf.New(".")

	for key, value := range GetDefaults() {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("failed to apply default %s: %w", key, err)
		}
	}

	if path != "" {
		if err := loadFile(k, path); err != nil {
			return nil, err
		}
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := ValidateConfigValues(&cfg, path); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func loadFile(k *koanf.Koanf, path string) error {
	path = expandHomePath(path)
	if _, err := os.Stat(path); err != nil {
		return &ValidationError{FilePath: path, Message: err.Error()}
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := k.Load(file.Provider(path), json.Parser()); err != nil {
			return fmt.Errorf("failed to load config %s: %w", path, err)
		}
	case ".yml", ".yaml":
		data, err := os.ReadFile(path)
		if err != nil {
			return &ValidationError{FilePath: path, Message: err.Error()}
		}
		if err := ValidateYAMLSyntaxFromBytes(data, path); err != nil {
			return err
		}
		if err := k.Load(file.Provider(path), YAMLParser()); err != nil {
			return fmt.Errorf("failed to load config %s: %w", path, err)
		}
	default:
		return &ValidationError{FilePath: path, Message: "unsupported config format (use .json, .yml or .yaml)"}
	}
	return nil
}

// expandHomePath expands ~ to the user's home directory
func expandHomePath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(homeDir, path[2:])
		}
	}
	return path
}

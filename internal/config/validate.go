package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ValidationError represents a configuration validation error with context
type ValidationError struct {
	FilePath string
	Line     int
	Column   int
	Message  string
	Field    string
}

func (e *ValidationError) Error() string {
	path := e.FilePath
	if path == "" {
		path = "config"
	}
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %s", path, e.Line, e.Column, e.Message)
	}
	if e.Field != "" {
		return fmt.Sprintf("%s: field '%s': %s", path, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", path, e.Message)
}

// ValidateYAMLSyntaxFromBytes checks if YAML data has valid syntax.
// Returns nil if valid, or a ValidationError if invalid.
func ValidateYAMLSyntaxFromBytes(data []byte, filePath string) error {
	// Empty data is valid - will use defaults
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil
	}

	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		line, column := extractLineColumn(err.Error())
		return &ValidationError{
			FilePath: filePath,
			Line:     line,
			Column:   column,
			Message:  cleanYAMLError(err.Error()),
		}
	}

	return nil
}

// ValidateConfigValues checks struct tags first, then the backend-specific
// settings that depend on which notifier is selected.
func ValidateConfigValues(cfg *Configuration, filePath string) error {
	if err := validator.New().Struct(cfg); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return &ValidationError{
				FilePath: filePath,
				Field:    koanfKey(fe.StructField()),
				Message:  describeTag(fe),
			}
		}
		return fmt.Errorf("config validation failed: %w", err)
	}

	required := map[string]struct {
		field string
		value string
	}{
		NotifierSlack: {"slack_webhook", cfg.SlackWebhook},
		NotifierTeams: {"teams_webhook", cfg.TeamsWebhook},
		NotifierApp:   {"api_url", cfg.APIURL},
	}
	if req, ok := required[cfg.Notifier]; ok && req.value == "" {
		return &ValidationError{
			FilePath: filePath,
			Field:    req.field,
			Message:  fmt.Sprintf("is required when notifier is %q", cfg.Notifier),
		}
	}

	return nil
}

// koanfKey maps a Configuration field name to its config key
func koanfKey(structField string) string {
	switch structField {
	case "Threshold":
		return "threshold"
	case "Notifier":
		return "notifier"
	case "SlackWebhook":
		return "slack_webhook"
	case "TeamsWebhook":
		return "teams_webhook"
	case "APIURL":
		return "api_url"
	case "NotifyTimeout":
		return "notify_timeout"
	default:
		return strings.ToLower(structField)
	}
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "min":
		return "must not be negative"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "url":
		return "must be a valid URL"
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}

func extractLineColumn(errMsg string) (line, column int) {
	// yaml.v3 errors look like: "yaml: line 5: could not find expected ':'"
	var l, c int
	if n, _ := fmt.Sscanf(errMsg, "yaml: line %d: column %d:", &l, &c); n == 2 {
		return l, c
	}
	if n, _ := fmt.Sscanf(errMsg, "yaml: line %d:", &l); n == 1 {
		return l, 1
	}
	return 0, 0
}

// cleanYAMLError removes the "yaml: line X:" prefix from error messages for cleaner output.
func cleanYAMLError(errMsg string) string {
	if idx := strings.LastIndex(errMsg, ": "); idx > 0 {
		if strings.HasPrefix(errMsg, "yaml:") {
			return errMsg[idx+2:]
		}
	}
	return errMsg
}

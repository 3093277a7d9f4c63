package config

import "time"

// GetDefaults returns the default configuration values
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"threshold":      0,
		"notifier":       NotifierOS,
		"slack_webhook":  "",
		"teams_webhook":  "",
		"api_url":        "",
		"api_token":      "",
		"notify_timeout": 5 * time.Second,
		"progress":       false,
		"quiet":          false,
	}
}

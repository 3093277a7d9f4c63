package notify

import (
	"fmt"
	"time"
)

// AppName is the application name shown by notification centers.
const AppName = "nf"

// Notification titles.
const (
	TitleSuccess = "✅ Command Finished"
	TitleFailure = "❌ Command Failed"
)

// NotificationType represents the outcome the notification reports
type NotificationType string

const (
	// TypeSuccess indicates the command exited with code 0
	TypeSuccess NotificationType = "success"
	// TypeFailure indicates a non-zero exit or a command that never ran
	TypeFailure NotificationType = "failure"
)

// Notification represents a single notification to dispatch
type Notification struct {
	// Title is the notification title
	Title string

	// Message is the notification body text
	Message string

	// AppName identifies the sending application
	AppName string

	// Type indicates the reported outcome
	Type NotificationType
}

// NewNotification renders the notification for a finished command.
func NewNotification(command string, duration time.Duration, exitCode int) Notification {
	title, notifType := TitleSuccess, TypeSuccess
	if exitCode != 0 {
		title, notifType = TitleFailure, TypeFailure
	}

	return Notification{
		Title:   title,
		Message: FormatMessage(command, duration, exitCode),
		AppName: AppName,
		Type:    notifType,
	}
}

// FormatMessage builds the three-line notification body.
func FormatMessage(command string, duration time.Duration, exitCode int) string {
	return fmt.Sprintf("Command: %s\nDuration: %.2fs\nExit Code: %d", command, duration.Seconds(), exitCode)
}

package notify

import (
	"fmt"
	"strings"
)

// notifySendArgs builds the notify-send argument list.
// Failures are sent with critical urgency so they stay on screen.
func notifySendArgs(n Notification) []string {
	urgency := "normal"
	if n.Type == TypeFailure {
		urgency = "critical"
	}
	return []string{"-a", appName(n), "-u", urgency, n.Title, n.Message}
}

// appleScript builds the osascript display notification statement.
func appleScript(n Notification) string {
	return fmt.Sprintf(`display notification %s with title %s subtitle %s`,
		quoteAppleScript(n.Message), quoteAppleScript(n.Title), quoteAppleScript(appName(n)))
}

// quoteAppleScript wraps s in an AppleScript string literal.
func quoteAppleScript(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`)
	return `"` + r.Replace(s) + `"`
}

// toastScript builds the PowerShell script showing a ToastText02 toast.
func toastScript(n Notification) string {
	return fmt.Sprintf(`
[Windows.UI.Notifications.ToastNotificationManager, Windows.UI.Notifications, ContentType = WindowsRuntime] | Out-Null
[Windows.Data.Xml.Dom.XmlDocument, Windows.Data.Xml.Dom.XmlDocument, ContentType = WindowsRuntime] | Out-Null
$template = [Windows.UI.Notifications.ToastNotificationManager]::GetTemplateContent([Windows.UI.Notifications.ToastTemplateType]::ToastText02)
$textNodes = $template.GetElementsByTagName('text')
$textNodes.Item(0).AppendChild($template.CreateTextNode('%s')) | Out-Null
$textNodes.Item(1).AppendChild($template.CreateTextNode('%s')) | Out-Null
$toast = [Windows.UI.Notifications.ToastNotification]::new($template)
[Windows.UI.Notifications.ToastNotificationManager]::CreateToastNotifier('%s').Show($toast)
`, escapeForPowerShell(n.Title), escapeForPowerShell(n.Message), escapeForPowerShell(appName(n)))
}

// escapeForPowerShell escapes s for use inside a single-quoted PowerShell
// string, where only the quote itself is special.
func escapeForPowerShell(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func appName(n Notification) string {
	if n.AppName == "" {
		return AppName
	}
	return n.AppName
}

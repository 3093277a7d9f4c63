package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// SlackSender posts notifications to a Slack incoming webhook.
type SlackSender struct {
	WebhookURL string
	Client     *http.Client
}

// NewSlackSender creates a new SlackSender.
func NewSlackSender(webhookURL string) *SlackSender {
	return &SlackSender{WebhookURL: webhookURL, Client: http.DefaultClient}
}

// slackPayload is the JSON body of a Slack message.
type slackPayload struct {
	Text string `json:"text"`
}

func (s *SlackSender) Name() string    { return "slack" }
func (s *SlackSender) Available() bool { return s.WebhookURL != "" }

// Send posts the title in bold followed by the message.
func (s *SlackSender) Send(ctx context.Context, n Notification) error {
	payload := slackPayload{Text: fmt.Sprintf("*%s*\n%s", n.Title, n.Message)}
	return postJSON(ctx, s.Client, s.WebhookURL, payload, nil)
}

// TeamsSender posts notifications to a Microsoft Teams webhook.
type TeamsSender struct {
	WebhookURL string
	Client     *http.Client
}

// NewTeamsSender creates a new TeamsSender.
func NewTeamsSender(webhookURL string) *TeamsSender {
	return &TeamsSender{WebhookURL: webhookURL, Client: http.DefaultClient}
}

// teamsPayload is the JSON body of a simple Teams message card.
type teamsPayload struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

func (s *TeamsSender) Name() string    { return "teams" }
func (s *TeamsSender) Available() bool { return s.WebhookURL != "" }

// Send posts a message card.
func (s *TeamsSender) Send(ctx context.Context, n Notification) error {
	payload := teamsPayload{Title: n.Title, Text: n.Message}
	return postJSON(ctx, s.Client, s.WebhookURL, payload, nil)
}

// AppSender posts notifications to a custom backend API.
type AppSender struct {
	APIURL   string
	APIToken string
	Client   *http.Client
}

// NewAppSender creates a new AppSender.
func NewAppSender(apiURL, apiToken string) *AppSender {
	return &AppSender{APIURL: apiURL, APIToken: apiToken, Client: http.DefaultClient}
}

// appPayload is the JSON body of a backend API request.
type appPayload struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

func (s *AppSender) Name() string    { return "app" }
func (s *AppSender) Available() bool { return s.APIURL != "" }

// Send posts the notification with a fresh X-Request-ID and, when a token is
// configured, a bearer Authorization header.
func (s *AppSender) Send(ctx context.Context, n Notification) error {
	headers := map[string]string{"X-Request-ID": uuid.New().String()}
	if s.APIToken != "" {
		headers["Authorization"] = "Bearer " + s.APIToken
	}
	payload := appPayload{Title: n.Title, Message: n.Message}
	return postJSON(ctx, s.Client, s.APIURL, payload, headers)
}

// postJSON sends payload as a JSON POST and treats any 4xx/5xx as an error.
func postJSON(ctx context.Context, client *http.Client, url string, payload any, headers map[string]string) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("posting notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("posting notification: received status code %d", resp.StatusCode)
	}
	return nil
}

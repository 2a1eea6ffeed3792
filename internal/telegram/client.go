// Package telegram delivers contact notifications to a Telegram chat via
// the Bot API. Uses raw HTTP calls (no SDK) to minimize external
// dependencies.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"
)

const sendTimeout = 10 * time.Second

// Client sends messages to a fixed chat through a bot credential.
type Client struct {
	apiURL     string
	botToken   string
	chatID     string
	httpClient *http.Client
}

// NewClient creates a Client for the given Bot API base URL
// (e.g. "https://api.telegram.org"), bot token and destination chat id.
// An empty token or chat id disables sending.
func NewClient(apiURL, botToken, chatID string) *Client {
	return &Client{
		apiURL:     apiURL,
		botToken:   botToken,
		chatID:     chatID,
		httpClient: &http.Client{Timeout: sendTimeout},
	}
}

// Enabled reports whether the client has a bot credential and chat id.
func (c *Client) Enabled() bool {
	return c.botToken != "" && c.chatID != ""
}

// sendMessageRequest is the Bot API sendMessage payload.
type sendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode"`
}

// Send posts text to the configured chat with Markdown formatting and
// returns whether the provider acknowledged delivery. Any network error,
// timeout or malformed response counts as delivery failure; Send logs the
// cause and never returns an error to the caller.
func (c *Client) Send(ctx context.Context, text string) bool {
	if !c.Enabled() {
		slog.Warn("telegram send skipped: bot token or chat id not configured")
		return false
	}

	body, err := json.Marshal(sendMessageRequest{
		ChatID:    c.chatID,
		Text:      text,
		ParseMode: "Markdown",
	})
	if err != nil {
		slog.Error("telegram send failed", "error", err)
		return false
	}

	url := c.apiURL + "/bot" + c.botToken + "/sendMessage"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		slog.Error("telegram send failed", "error", err)
		return false
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Warn("telegram send failed", "error", err)
		return false
	}
	defer resp.Body.Close()

	var result struct {
		OK bool `json:"ok"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		slog.Warn("telegram send returned malformed response", "error", err)
		return false
	}
	return result.OK
}

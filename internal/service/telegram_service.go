package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"medisync/internal/api/sanitization"
	"medisync/internal/lead"
)

const telegramAPIURL = "https://api.telegram.org"

// TelegramService notifies the sales chat about new demo requests
type TelegramService struct {
	apiURL   string
	botToken string
	chatID   string
	client   *http.Client
}

// NewTelegramService creates a new Telegram service
func NewTelegramService(botToken, chatID string) *TelegramService {
	return &TelegramService{
		apiURL:   telegramAPIURL,
		botToken: botToken,
		chatID:   chatID,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Enabled reports whether both the token and the chat are configured
func (s *TelegramService) Enabled() bool {
	return s.botToken != "" && s.chatID != ""
}

// telegramMessage represents a Telegram API message
type telegramMessage struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode,omitempty"`
}

// NotifyDemoRequest posts a summary of the request to the sales chat
func (s *TelegramService) NotifyDemoRequest(ctx context.Context, record lead.SubmissionRecord) error {
	if !s.Enabled() {
		return fmt.Errorf("%w: telegram bot token or chat ID not configured", ErrNotConfigured)
	}

	payload := telegramMessage{
		ChatID:    s.chatID,
		Text:      formatDemoRequest(record),
		ParseMode: "HTML",
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal telegram message: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", s.apiURL, s.botToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create telegram request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send telegram message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: telegram API returned status %d", ErrUpstream, resp.StatusCode)
	}

	return nil
}

func formatDemoRequest(record lead.SubmissionRecord) string {
	text := fmt.Sprintf(
		"🩺 <b>New Demo Request</b>\n\n"+
			"<b>Name:</b> %s\n"+
			"<b>Email:</b> %s\n"+
			"<b>Phone:</b> %s\n"+
			"<b>Plan:</b> %s",
		sanitization.SingleLine(record.Name),
		sanitization.SingleLine(record.Email),
		sanitization.SingleLine(record.Phone),
		sanitization.SingleLine(record.Service),
	)
	if record.Message != "" {
		text += "\n<b>Message:</b>\n" + sanitization.EscapeHTML(record.Message)
	}
	return text
}

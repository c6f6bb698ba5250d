package sink

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"portfolio-server/internal/intake"
)

// TelegramSink relays submissions to a Telegram chat via the Bot API, as an
// alternative to the Formspree email relay.
type TelegramSink struct {
	botToken string
	chatID   string
	client   *http.Client
}

// NewTelegramSink returns a sink for the given bot credentials, or nil when
// either is empty.
func NewTelegramSink(botToken, chatID string) *TelegramSink {
	if botToken == "" || chatID == "" {
		return nil
	}
	return &TelegramSink{
		botToken: botToken,
		chatID:   chatID,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// telegramMessage represents a Telegram API sendMessage request
type telegramMessage struct {
	ChatID    string `json:"chat_id"`
	Text      string `json:"text"`
	ParseMode string `json:"parse_mode,omitempty"`
}

// Send posts one submission to the Telegram chat.
func (s *TelegramSink) Send(ctx context.Context, sub *intake.Sanitized) error {
	text := fmt.Sprintf(
		"<b>New Contact Form Submission</b>\n\n"+
			"<b>Name:</b> %s\n"+
			"<b>Email:</b> %s\n"+
			"<b>Message:</b>\n%s",
		escapeHTML(sub.Name),
		escapeHTML(sub.Email),
		escapeHTML(sub.Message),
	)

	payload := telegramMessage{
		ChatID:    s.chatID,
		Text:      text,
		ParseMode: "HTML",
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal telegram message: %w", err)
	}

	url := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", s.botToken)
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
		return fmt.Errorf("telegram API returned status %d", resp.StatusCode)
	}

	return nil
}

func (s *TelegramSink) Name() string {
	return "Telegram"
}

// escapeHTML escapes the HTML special characters Telegram's HTML parse mode
// cares about.
func escapeHTML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}

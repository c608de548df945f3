package push

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

const telegramAPIBase = "https://api.telegram.org"

// Telegram sends through the Telegram Bot API. Both the bot token and the
// chat are resolved per session, so the channel speaks the HTTP API directly
// instead of holding a long-lived bot connection.
type Telegram struct {
	Token   string
	ChatID  string
	BaseURL string // defaults to the public Bot API
	Client  *http.Client
}

func (t *Telegram) Name() string { return "telegram" }

func (t *Telegram) Send(ctx context.Context, msg Content) error {
	base := t.BaseURL
	if base == "" {
		base = telegramAPIBase
	}

	payload, err := json.Marshal(map[string]any{
		"chat_id":                  t.ChatID,
		"text":                     msg.TelegramHTML(),
		"parse_mode":               "HTML",
		"disable_web_page_preview": true,
	})
	if err != nil {
		return fmt.Errorf("telegram: marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, base+"/bot"+t.Token+"/sendMessage", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("telegram: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.Client.Do(req)
	if err != nil {
		return fmt.Errorf("telegram: %w", err)
	}
	return checkResponse(t.Name(), resp)
}

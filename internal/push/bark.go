package push

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// Bark sends through a Bark server. The title and body travel as
// URL-encoded path segments; the confirmation link rides in the url query
// parameter so tapping the notification opens it.
type Bark struct {
	URL    string // per-session Bark base URL including the device key
	Client *http.Client
}

func (b *Bark) Name() string { return "bark" }

func (b *Bark) Send(ctx context.Context, msg Content) error {
	target := strings.TrimRight(b.URL, "/") +
		"/" + url.QueryEscape(msg.Phrases.Request) +
		"/" + url.QueryEscape(msg.PlainText()) +
		"?url=" + url.QueryEscape(msg.ConfirmURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("bark: build request: %w", err)
	}

	resp, err := b.Client.Do(req)
	if err != nil {
		return fmt.Errorf("bark: %w", err)
	}
	return checkResponse(b.Name(), resp)
}

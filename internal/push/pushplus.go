package push

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

const pushPlusEndpoint = "http://www.pushplus.plus/send"

// PushPlus sends through the PushPlus token service as an HTML message.
type PushPlus struct {
	Token    string
	Endpoint string // defaults to the public PushPlus endpoint
	Client   *http.Client
}

func (p *PushPlus) Name() string { return "pushplus" }

func (p *PushPlus) Send(ctx context.Context, msg Content) error {
	endpoint := p.Endpoint
	if endpoint == "" {
		endpoint = pushPlusEndpoint
	}

	payload, err := json.Marshal(map[string]string{
		"token":    p.Token,
		"title":    msg.Title(),
		"content":  msg.HTML(),
		"template": "html",
	})
	if err != nil {
		return fmt.Errorf("pushplus: marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("pushplus: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.Client.Do(req)
	if err != nil {
		return fmt.Errorf("pushplus: %w", err)
	}
	return checkResponse(p.Name(), resp)
}

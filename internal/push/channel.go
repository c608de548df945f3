package push

import (
	"context"
	"fmt"
	"net/http"
)

// Channel delivers one notification over one provider. Send must honor the
// context deadline; there are no retries and no delivery acknowledgment.
type Channel interface {
	Name() string
	Send(ctx context.Context, msg Content) error
}

func checkResponse(channel string, resp *http.Response) error {
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%s: unexpected status %d", channel, resp.StatusCode)
	}
	return nil
}

package push

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"movecar-service/internal/config"
)

// DelayedSendPause is how long a delayed dispatch waits before any channel
// call. Used when the requester had no location yet, to give them time to
// supply one.
const DelayedSendPause = 30 * time.Second

// Dispatcher resolves a session's configured channels and fans one
// notification out to all of them concurrently. Delivery is fire-and-forget:
// a failed channel is logged and never surfaced to the caller, and one
// channel's failure never aborts its siblings.
type Dispatcher struct {
	resolver config.Resolver
	client   *http.Client
	log      zerolog.Logger
	delay    time.Duration
}

func NewDispatcher(resolver config.Resolver, client *http.Client, log zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		resolver: resolver,
		client:   client,
		log:      log,
		delay:    DelayedSendPause,
	}
}

// ChannelsFor builds the channel set for a session from its resolved
// configuration. Channels with absent configuration are skipped silently.
func (d *Dispatcher) ChannelsFor(sessionKey string) []Channel {
	var channels []Channel

	if token, ok := d.resolver.Resolve(sessionKey, "PUSHPLUS_TOKEN"); ok && token != "" {
		channels = append(channels, &PushPlus{Token: token, Client: d.client})
	}
	if barkURL, ok := d.resolver.Resolve(sessionKey, "BARK_URL"); ok && barkURL != "" {
		channels = append(channels, &Bark{URL: barkURL, Client: d.client})
	}
	token, okToken := d.resolver.Resolve(sessionKey, "TG_BOT_TOKEN")
	chatID, okChat := d.resolver.Resolve(sessionKey, "TG_CHAT_ID")
	if okToken && okChat && token != "" && chatID != "" {
		channels = append(channels, &Telegram{Token: token, ChatID: chatID, Client: d.client})
	}

	return channels
}

// Dispatch sends msg on every channel concurrently and waits for all attempts
// to settle. With delayed set, the whole dispatch is deferred by the fixed
// pause first.
func (d *Dispatcher) Dispatch(ctx context.Context, sessionKey string, channels []Channel, msg Content, delayed bool) {
	if delayed {
		select {
		case <-time.After(d.delay):
		case <-ctx.Done():
			return
		}
	}

	var g errgroup.Group
	for _, ch := range channels {
		ch := ch
		g.Go(func() error {
			if err := ch.Send(ctx, msg); err != nil {
				d.log.Warn().
					Str("channel", ch.Name()).
					Str("session", sessionKey).
					Err(err).
					Msg("push delivery failed")
			}
			return nil
		})
	}
	_ = g.Wait()

	d.log.Debug().
		Str("session", sessionKey).
		Int("channels", len(channels)).
		Msg("dispatch settled")
}

package movecar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"movecar-service/internal/config"
	"movecar-service/internal/geo"
	"movecar-service/internal/i18n"
	"movecar-service/internal/push"
	"movecar-service/internal/session"
)

const (
	// statusTTL bounds a notify cycle's records.
	statusTTL = time.Hour
	// confirmTTL bounds the owner's confirmation and shared location.
	confirmTTL = 10 * time.Minute

	defaultMessage  = "车旁有人等待"
	defaultCarTitle = "车主"
)

// Dispatcher is the notification fan-out the service depends on.
type Dispatcher interface {
	ChannelsFor(sessionKey string) []push.Channel
	Dispatch(ctx context.Context, sessionKey string, channels []push.Channel, msg push.Content, delayed bool)
}

// Service orchestrates the request/confirm lifecycle for each session. All
// coordination between concurrent requests happens through the TTL store;
// the service itself holds no mutable state.
type Service struct {
	store      *session.Store
	limiter    *session.RateLimiter
	dispatcher Dispatcher
	resolver   config.Resolver
	log        zerolog.Logger
}

func NewService(
	store *session.Store,
	limiter *session.RateLimiter,
	dispatcher Dispatcher,
	resolver config.Resolver,
	log zerolog.Logger,
) *Service {
	return &Service{
		store:      store,
		limiter:    limiter,
		dispatcher: dispatcher,
		resolver:   resolver,
		log:        log,
	}
}

// Notify starts a new notify cycle: rate-limit check, requester state writes,
// then the channel fan-out. Writes are not transactional; a failure aborts
// without rolling back what already landed.
func (s *Service) Notify(ctx context.Context, in NotifyInput) error {
	allowed, err := s.limiter.Allow(ctx, in.SessionKey)
	if err != nil {
		return fmt.Errorf("rate limit check: %w", err)
	}
	if !allowed {
		return ErrRateLimited
	}

	phrases := i18n.For(in.Lang)
	message := in.Message
	if message == "" {
		message = defaultMessage
	}
	carTitle, ok := s.resolver.Resolve(in.SessionKey, "CAR_TITLE")
	if !ok || carTitle == "" {
		carTitle = defaultCarTitle
	}

	channels := s.dispatcher.ChannelsFor(in.SessionKey)

	if in.Location != nil {
		loc := StoredLocation{
			Coordinates: *in.Location,
			MapLinks:    geo.Links(in.Location.Lat, in.Location.Lng, phrases.RequesterLabel),
		}
		payload, err := json.Marshal(loc)
		if err != nil {
			return fmt.Errorf("encode requester location: %w", err)
		}
		if err := s.store.Put(ctx, in.SessionKey, session.FieldRequesterLocation, string(payload), statusTTL); err != nil {
			return fmt.Errorf("persist requester location: %w", err)
		}
	}

	if err := s.store.Put(ctx, in.SessionKey, session.FieldStatus, string(StatusWaiting), statusTTL); err != nil {
		return fmt.Errorf("persist status: %w", err)
	}

	// A confirmation from a previous round must never leak into this one.
	if err := s.store.Delete(ctx, in.SessionKey, session.FieldOwnerLocation); err != nil {
		return fmt.Errorf("clear stale owner location: %w", err)
	}

	if err := s.store.Put(ctx, in.SessionKey, session.FieldLock, "1", session.DefaultCooldown); err != nil {
		return fmt.Errorf("persist cooldown lock: %w", err)
	}

	msg := push.Content{
		Phrases:     phrases,
		CarTitle:    carTitle,
		Body:        message,
		HasLocation: in.Location != nil,
		ConfirmURL:  s.confirmURL(in.SessionKey, in.Origin),
	}
	s.dispatcher.Dispatch(ctx, in.SessionKey, channels, msg, in.Delayed)

	s.log.Info().
		Str("session", in.SessionKey).
		Int("channels", len(channels)).
		Bool("delayed", in.Delayed).
		Bool("has_location", in.Location != nil).
		Msg("notify dispatched")

	return nil
}

// Confirm records the owner's acknowledgment and optional return location.
// Confirmation of intent outranks location propagation: write failures are
// logged and the caller always sees success.
func (s *Service) Confirm(ctx context.Context, in ConfirmInput) {
	phrases := i18n.For(in.Lang)

	if in.Location != nil {
		loc := StoredLocation{
			Coordinates: *in.Location,
			MapLinks:    geo.Links(in.Location.Lat, in.Location.Lng, phrases.OwnerLabel),
			Timestamp:   time.Now().Unix(),
		}
		if payload, err := json.Marshal(loc); err == nil {
			if err := s.store.Put(ctx, in.SessionKey, session.FieldOwnerLocation, string(payload), confirmTTL); err != nil {
				s.log.Warn().Str("session", in.SessionKey).Err(err).Msg("owner location write failed")
			}
		}
	}

	if err := s.store.Put(ctx, in.SessionKey, session.FieldStatus, string(StatusConfirmed), confirmTTL); err != nil {
		s.log.Warn().Str("session", in.SessionKey).Err(err).Msg("confirmed status write failed")
	}

	s.log.Info().
		Str("session", in.SessionKey).
		Bool("has_location", in.Location != nil).
		Msg("owner confirmed")
}

// Status reads the session's polled state. An absent status record reports
// waiting, so clients only ever see two states.
func (s *Service) Status(ctx context.Context, sessionKey string) (StatusReport, error) {
	report := StatusReport{Status: StatusWaiting}

	val, ok, err := s.store.Get(ctx, sessionKey, session.FieldStatus)
	if err != nil {
		return StatusReport{}, fmt.Errorf("read status: %w", err)
	}
	if ok {
		report.Status = Status(val)
	}

	raw, ok, err := s.store.Get(ctx, sessionKey, session.FieldOwnerLocation)
	if err != nil {
		return StatusReport{}, fmt.Errorf("read owner location: %w", err)
	}
	if ok {
		var loc StoredLocation
		if err := json.Unmarshal([]byte(raw), &loc); err != nil {
			s.log.Warn().Str("session", sessionKey).Err(err).Msg("corrupt owner location record")
		} else {
			report.OwnerLocation = &loc
		}
	}

	return report, nil
}

// RequesterLocation returns the requester's stored location record as raw
// JSON, or an empty object when none exists.
func (s *Service) RequesterLocation(ctx context.Context, sessionKey string) (json.RawMessage, error) {
	raw, ok, err := s.store.Get(ctx, sessionKey, session.FieldRequesterLocation)
	if err != nil {
		return nil, fmt.Errorf("read requester location: %w", err)
	}
	if !ok {
		return json.RawMessage("{}"), nil
	}
	return json.RawMessage(raw), nil
}

func (s *Service) confirmURL(sessionKey, origin string) string {
	base := origin
	if v, ok := s.resolver.Resolve(sessionKey, "EXTERNAL_URL"); ok && v != "" {
		base = strings.TrimRight(v, "/")
	}
	return base + "/owner-confirm?u=" + url.QueryEscape(sessionKey)
}

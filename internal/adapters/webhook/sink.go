// Package webhook forwards domain events to an external HTTP endpoint. It
// implements ports.EventSink on top of the instrumented platform HTTP
// client, so deliveries get circuit breaking, retries and rate limiting.
package webhook

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/go-service-common/internal/domain"
	"github.com/jsamuelsen11/go-service-common/internal/ports"
)

// Header names set on every delivery.
const (
	HeaderEvent     = "X-Webhook-Event"
	HeaderSignature = "X-Webhook-Signature"
)

// Poster sends a JSON document to a path relative to the client's base URL.
// *httpclient.Client satisfies it.
type Poster interface {
	PostJSON(ctx context.Context, path string, body []byte, header http.Header) error
	HealthCheck(ctx context.Context) error
}

// Envelope is the JSON document posted for each event.
type Envelope struct {
	ID          string          `json:"id,omitempty"`
	Name        string          `json:"name"`
	OccurredOn  time.Time       `json:"occurred_on"`
	AggregateID string          `json:"aggregate_id,omitempty"`
	Payload     json.RawMessage `json:"payload"`
}

type identified interface {
	ID() uuid.UUID
}

type aggregateEvent interface {
	AggregateID() string
}

// Sink delivers events to a single webhook path.
type Sink struct {
	client Poster
	path   string
	secret []byte
}

var _ ports.EventSink = (*Sink)(nil)

// Option configures a Sink.
type Option func(*Sink)

// WithSecret signs each body with HMAC-SHA256 under secret. The hex digest
// is sent as "sha256=<digest>" in HeaderSignature. An empty secret disables
// signing.
func WithSecret(secret string) Option {
	return func(s *Sink) {
		if secret != "" {
			s.secret = []byte(secret)
		}
	}
}

// New returns a Sink posting to path through client.
func New(client Poster, path string, opts ...Option) *Sink {
	s := &Sink{client: client, path: path}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name identifies the sink in logs and health reports.
func (s *Sink) Name() string { return "webhook" }

// HealthCheck reports the state of the underlying client's circuit breaker.
func (s *Sink) HealthCheck(ctx context.Context) error {
	return s.client.HealthCheck(ctx)
}

// Deliver posts event wrapped in an Envelope.
func (s *Sink) Deliver(ctx context.Context, event domain.Event) error {
	body, err := Encode(event)
	if err != nil {
		return err
	}

	header := http.Header{}
	header.Set(HeaderEvent, event.EventName())
	if s.secret != nil {
		header.Set(HeaderSignature, Sign(s.secret, body))
	}

	if err := s.client.PostJSON(ctx, s.path, body, header); err != nil {
		return fmt.Errorf("delivering %s: %w", event.EventName(), err)
	}
	return nil
}

// Encode builds the JSON envelope for event.
func Encode(event domain.Event) ([]byte, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("encoding %s payload: %w", event.EventName(), err)
	}

	env := Envelope{
		Name:       event.EventName(),
		OccurredOn: event.OccurredOn(),
		Payload:    payload,
	}
	if e, ok := event.(identified); ok {
		env.ID = e.ID().String()
	}
	if e, ok := event.(aggregateEvent); ok {
		env.AggregateID = e.AggregateID()
	}

	body, err := json.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("encoding %s envelope: %w", event.EventName(), err)
	}
	return body, nil
}

// Sign returns the signature header value for body.
func Sign(secret, body []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write(body)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

// Verify reports whether signature matches body under secret. Receivers
// use it to authenticate deliveries.
func Verify(secret, body []byte, signature string) bool {
	return hmac.Equal([]byte(Sign(secret, body)), []byte(signature))
}

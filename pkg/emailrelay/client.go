// Package emailrelay sends templated messages through an EmailJS-compatible
// transactional email relay.
package emailrelay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/codecraftpakistan/codecraft-site/pkg/httpclient"
	"github.com/codecraftpakistan/codecraft-site/pkg/logger"
	"github.com/codecraftpakistan/codecraft-site/pkg/metrics"
	"github.com/codecraftpakistan/codecraft-site/pkg/tracing"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// FallbackErrorText is reported when the relay rejects a call without a body
const FallbackErrorText = "Email send failed"

// maxErrorBody caps how much of a relay error body is read
const maxErrorBody = 4 << 10

// Message is the relay's send request body
type Message struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	AccessToken    string            `json:"accessToken,omitempty"`
	TemplateParams map[string]string `json:"template_params"`
}

// RelayError is returned when the relay answers with a non-2xx status
type RelayError struct {
	StatusCode int
	Body       string
}

func (e *RelayError) Error() string {
	if e.Body == "" {
		return FallbackErrorText
	}
	return e.Body
}

// Sender sends one message; kind labels the template for logs and metrics
type Sender interface {
	Send(ctx context.Context, kind string, msg *Message) error
}

// Credentials identify the relay account
type Credentials struct {
	ServiceID  string
	PublicKey  string
	PrivateKey string
}

// Client talks to the relay endpoint
type Client struct {
	endpoint    string
	origin      string
	credentials Credentials
	httpClient  httpclient.Client
}

// NewClient creates a relay client. origin is sent as the Origin header when set.
func NewClient(endpoint, origin string, creds Credentials, httpClient httpclient.Client) *Client {
	return &Client{
		endpoint:    endpoint,
		origin:      origin,
		credentials: creds,
		httpClient:  httpClient,
	}
}

// NewMessage fills in the account identifiers for a template
func (c *Client) NewMessage(templateID string, params map[string]string) *Message {
	return &Message{
		ServiceID:      c.credentials.ServiceID,
		TemplateID:     templateID,
		UserID:         c.credentials.PublicKey,
		AccessToken:    c.credentials.PrivateKey,
		TemplateParams: params,
	}
}

// Send posts the message to the relay. Any non-2xx answer is a *RelayError.
func (c *Client) Send(ctx context.Context, kind string, msg *Message) error {
	start := time.Now()

	ctx, span := tracing.StartSpan(ctx, "emailrelay.Send",
		attribute.String("relay.template_kind", kind),
		attribute.String("relay.template_id", msg.TemplateID),
	)
	defer span.End()

	err := c.send(ctx, msg)
	duration := metrics.MeasureDuration(start)

	status := "success"
	if err != nil {
		status = "error"
		tracing.RecordError(span, err)
	}
	metrics.EmailRelayRequestDuration.WithLabelValues(kind, status).Observe(duration)
	metrics.EmailRelayRequestTotal.WithLabelValues(kind, status).Inc()

	fields := []zap.Field{zap.String("template_id", msg.TemplateID)}
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	logger.LogAPICall("email_relay", kind, status, duration, fields...)

	return err
}

func (c *Client) send(ctx context.Context, msg *Message) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to encode relay message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build relay request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.origin != "" {
		req.Header.Set("Origin", c.origin)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("relay request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	text, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return &RelayError{
		StatusCode: resp.StatusCode,
		Body:       strings.TrimSpace(string(text)),
	}
}

package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Message is the payload handed to a relay.
type Message struct {
	Name  string
	Email string
	Body  string
}

// Relay delivers a message. Implementations never retry.
type Relay interface {
	Send(ctx context.Context, m Message) error
}

var ErrRelayNotConfigured = errors.New("contact: mail relay not configured")

// DisabledRelay stands in when no credentials are configured.
type DisabledRelay struct{}

func (DisabledRelay) Send(context.Context, Message) error { return ErrRelayNotConfigured }

// DefaultEmailJSEndpoint is the EmailJS REST send endpoint.
const DefaultEmailJSEndpoint = "https://api.emailjs.com/api/v1.0/email/send"

// Credentials identify the EmailJS service, template and account.
type Credentials struct {
	ServiceID  string `yaml:"service_id"`
	TemplateID string `yaml:"template_id"`
	PublicKey  string `yaml:"public_key"`
}

// Complete reports whether every field is set.
func (c Credentials) Complete() bool {
	return c.ServiceID != "" && c.TemplateID != "" && c.PublicKey != ""
}

// NewRelay returns an EmailJS relay, or DisabledRelay when creds are
// incomplete.
func NewRelay(creds Credentials) Relay {
	if !creds.Complete() {
		return DisabledRelay{}
	}
	return &EmailJS{Credentials: creds}
}

// EmailJS posts messages to the EmailJS REST API.
type EmailJS struct {
	Credentials
	Endpoint string
	Client   *http.Client
}

type emailJSRequest struct {
	ServiceID      string         `json:"service_id"`
	TemplateID     string         `json:"template_id"`
	UserID         string         `json:"user_id"`
	TemplateParams templateParams `json:"template_params"`
}

type templateParams struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (e *EmailJS) Send(ctx context.Context, m Message) error {
	body, err := json.Marshal(emailJSRequest{
		ServiceID:  e.ServiceID,
		TemplateID: e.TemplateID,
		UserID:     e.PublicKey,
		TemplateParams: templateParams{
			Name:    m.Name,
			Email:   m.Email,
			Message: m.Body,
		},
	})
	if err != nil {
		return fmt.Errorf("contact: encode request: %w", err)
	}

	endpoint := e.Endpoint
	if endpoint == "" {
		endpoint = DefaultEmailJSEndpoint
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("contact: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := e.Client
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("contact: send: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("contact: relay returned %s: %s", resp.Status, bytes.TrimSpace(detail))
	}
	return nil
}

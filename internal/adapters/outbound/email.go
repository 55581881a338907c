// Package outbound provides HTTP clients for the notification provider
// gateways (email and SMS webhook APIs)
package outbound

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	perr "dealdesk/internal/platform/errors"
	"dealdesk/internal/platform/logger"
	"dealdesk/internal/services/notify/domain"
)

const (
	defaultTimeout = 10 * time.Second
	defaultUA      = "dealdesk-notify"
)

// EmailOptions configures the email gateway client
type EmailOptions struct {
	// URL is the provider webhook endpoint that accepts the JSON payload
	URL string

	// Token is sent as a bearer credential when non-empty
	Token string

	// From is the sender identity the provider stamps on outgoing mail
	From string

	Timeout   time.Duration
	UserAgent string
}

// EmailClient posts email payloads to a provider gateway
type EmailClient struct {
	http *http.Client
	opts EmailOptions
	log  logger.Logger
}

// NewEmailClient creates an email gateway client with sane defaults
func NewEmailClient(o EmailOptions) *EmailClient {
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	return &EmailClient{
		http: &http.Client{Timeout: o.Timeout},
		opts: o,
		log:  *logger.Named("email"),
	}
}

type emailBody struct {
	From    string `json:"from,omitempty"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
	Urgency string `json:"urgency"`
}

// SendEmail implements domain.EmailPort
func (c *EmailClient) SendEmail(ctx context.Context, p domain.EmailPayload) error {
	if c.opts.URL == "" {
		return perr.Dispatchf("email gateway url not configured")
	}
	body := emailBody{
		From:    c.opts.From,
		To:      p.To,
		Subject: p.Subject,
		Body:    p.Body,
		Urgency: string(p.Urgency),
	}
	if err := postJSON(ctx, c.http, c.opts.URL, c.opts.Token, c.opts.UserAgent, body); err != nil {
		return perr.Wrap(err, perr.ErrorCodeDispatch, "email gateway send")
	}
	c.log.Debug().Str("to", p.To).Msg("email handed to gateway")
	return nil
}

// postJSON posts v to url and treats any non-2xx answer as an error
func postJSON(ctx context.Context, hc *http.Client, url, token, ua string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", ua)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	// drain so the connection can be reused
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return perr.Dispatchf("gateway answered %s", resp.Status)
	}
	return nil
}

package outbound

import (
	"context"
	"net/http"
	"time"

	perr "dealdesk/internal/platform/errors"
	"dealdesk/internal/platform/logger"
	"dealdesk/internal/services/notify/domain"
)

// SMSOptions configures the SMS gateway client
type SMSOptions struct {
	// URL is the provider webhook endpoint that accepts the JSON payload
	URL string

	// Token is sent as a bearer credential when non-empty
	Token string

	// Sender is the provider-registered originating number or alphanumeric id
	Sender string

	Timeout   time.Duration
	UserAgent string
}

// SMSClient posts SMS payloads to a provider gateway
type SMSClient struct {
	http *http.Client
	opts SMSOptions
	log  logger.Logger
}

// NewSMSClient creates an SMS gateway client with sane defaults
func NewSMSClient(o SMSOptions) *SMSClient {
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	return &SMSClient{
		http: &http.Client{Timeout: o.Timeout},
		opts: o,
		log:  *logger.Named("sms"),
	}
}

type smsBody struct {
	From string `json:"from,omitempty"`
	To   string `json:"to"`
	Body string `json:"body"`
}

// SendSMS implements domain.SMSPort
func (c *SMSClient) SendSMS(ctx context.Context, p domain.SMSPayload) error {
	if c.opts.URL == "" {
		return perr.Dispatchf("sms gateway url not configured")
	}
	body := smsBody{From: c.opts.Sender, To: p.To, Body: p.Body}
	if err := postJSON(ctx, c.http, c.opts.URL, c.opts.Token, c.opts.UserAgent, body); err != nil {
		return perr.Wrap(err, perr.ErrorCodeDispatch, "sms gateway send")
	}
	c.log.Debug().Str("to", p.To).Msg("sms handed to gateway")
	return nil
}

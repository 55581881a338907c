package module

import (
	"time"

	"dealdesk/internal/platform/config"
)

// Options controls notify behavior. Values may also be read from env
type Options struct {
	EmailURL  string
	EmailFrom string
	SMSURL    string
	SMSSender string

	GatewayToken   string
	GatewayTimeout time.Duration
}

// FromConfig reads options using NOTIFY_ prefix
func FromConfig(cfg config.Conf) Options {
	n := cfg.Prefix("NOTIFY_")
	return Options{
		EmailURL:       n.MayString("EMAIL_URL", ""),
		EmailFrom:      n.MayString("EMAIL_FROM", "alerts@dealdesk.local"),
		SMSURL:         n.MayString("SMS_URL", ""),
		SMSSender:      n.MayString("SMS_SENDER", "DEALDESK"),
		GatewayToken:   n.MayString("GATEWAY_TOKEN", ""),
		GatewayTimeout: n.MayDuration("GATEWAY_TIMEOUT", 10*time.Second),
	}
}

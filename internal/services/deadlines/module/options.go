package module

import (
	"strings"
	"time"

	"dealdesk/internal/platform/config"
	notifydom "dealdesk/internal/services/notify/domain"
)

// Options controls scanner behavior. Values may also be read from env
type Options struct {
	Lookahead   time.Duration
	ChannelsCSV string
	DryRun      bool
}

// FromConfig reads options using DEADLINES_ prefix
func FromConfig(cfg config.Conf) Options {
	d := cfg.Prefix("DEADLINES_")
	return Options{
		Lookahead:   d.MayDuration("LOOKAHEAD", 24*time.Hour),
		ChannelsCSV: d.MayString("CHANNELS", "inapp,email,sms"),
		DryRun:      d.MayBool("DRYRUN", false),
	}
}

// parseChannels maps a csv of channel tokens, dropping unknown ones
func parseChannels(csv string) []notifydom.Channel {
	var out []notifydom.Channel
	for _, tok := range strings.Split(csv, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		if ch, ok := notifydom.ParseChannel(tok); ok {
			out = append(out, ch)
		}
	}
	return out
}

package module

import "dealdesk/internal/platform/config"

// Options controls calendar behavior. Values may also be read from env
type Options struct {
	ProdID    string
	SyncBatch int
}

// FromConfig reads options using CALENDAR_ prefix
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("CALENDAR_")
	return Options{
		ProdID:    c.MayString("ICS_PRODID", "-//dealdesk//calendar//EN"),
		SyncBatch: c.MayInt("SYNC_BATCH", 200),
	}
}

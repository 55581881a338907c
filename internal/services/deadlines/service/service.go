// Package service contains the deadline scan workflow
package service

import (
	"time"

	"dealdesk/internal/modkit"
	"dealdesk/internal/modkit/repokit"
	"dealdesk/internal/services/deadlines/domain"
	"dealdesk/internal/services/deadlines/repo"
	notifydom "dealdesk/internal/services/notify/domain"
)

// Service aggregates the deadlines ports
type Service interface {
	domain.ScannerPort
	domain.EditPort
	domain.ReaderPort
}

// Config carries runtime knobs for the scanner
type Config struct {
	// Lookahead is the due-soon window scanned each cycle
	Lookahead time.Duration

	// Channels are the transports every alert is fanned out to
	Channels []notifydom.Channel

	// DryRun marks records alerted without dispatching anything
	DryRun bool
}

// Svc implements the deadlines service
type Svc struct {
	Repo       repo.Repo
	binder     repokit.Binder[repo.Repo]
	db         repokit.TxRunner
	deps       modkit.Deps
	config     Config
	dispatcher notifydom.DispatcherPort
	audit      repo.AuditSink
}

// New constructs a deadlines service
// the CH audit sink is attached only when a ClickHouse handle is present
func New(deps modkit.Deps, dispatcher notifydom.DispatcherPort, cfg Config) *Svc {
	if deps.PG == nil {
		panic("deadlines.Service requires a non nil TxRunner")
	}
	if cfg.Lookahead <= 0 {
		cfg.Lookahead = 24 * time.Hour
	}
	if len(cfg.Channels) == 0 {
		cfg.Channels = []notifydom.Channel{
			notifydom.ChannelInApp, notifydom.ChannelEmail, notifydom.ChannelSMS,
		}
	}

	b := repo.NewPG()
	s := &Svc{
		Repo:       b.Bind(deps.PG),
		binder:     b,
		db:         deps.PG,
		deps:       deps,
		config:     cfg,
		dispatcher: dispatcher,
	}
	if deps.CH != nil {
		s.audit = repo.NewCHSink(deps.CH)
	}
	return s
}

package service

import (
	"dealdesk/internal/modkit"
	"dealdesk/internal/modkit/repokit"
	"dealdesk/internal/services/calendar/domain"
	"dealdesk/internal/services/calendar/repo"
)

// Service aggregates the calendar ports
type Service interface {
	domain.MapperPort
	domain.SyncPort
	domain.ExportPort
}

// Config carries runtime knobs for calendar workflows
type Config struct {
	// ProdID identifies generated ICS payloads
	ProdID string

	// SyncBatch caps how many appointments a sync pass pulls at once
	SyncBatch int
}

// Svc implements the calendar service
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
	deps   modkit.Deps
	config Config
}

// New constructs a calendar service
func New(deps modkit.Deps, cfg Config) *Svc {
	if deps.PG == nil {
		panic("calendar.Service requires a non nil TxRunner")
	}
	if cfg.ProdID == "" {
		cfg.ProdID = "-//dealdesk//calendar//EN"
	}
	if cfg.SyncBatch <= 0 {
		cfg.SyncBatch = 200
	}

	b := repo.NewPG()
	return &Svc{
		Repo:   b.Bind(deps.PG),
		binder: b,
		db:     deps.PG,
		deps:   deps,
		config: cfg,
	}
}

// Package module wires the calendar service and exposes its ports
package module

import (
	"dealdesk/internal/modkit"
	"dealdesk/internal/services/calendar/service"
)

// Module defines the calendar module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs the calendar module with its ports
func New(deps modkit.Deps) *Module {
	opts := FromConfig(deps.Cfg)

	svc := service.New(deps, service.Config{
		ProdID:    opts.ProdID,
		SyncBatch: opts.SyncBatch,
	})

	m := &Module{deps: deps}
	m.ports = Ports{
		Mapper: svc,
		Sync:   svc,
		Export: svc,
	}
	return m
}

// Name returns the module name
func (m *Module) Name() string { return "calendar" }

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

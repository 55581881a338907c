// Package module wires the deadlines service and exposes its ports
package module

import (
	"dealdesk/internal/modkit"
	"dealdesk/internal/services/deadlines/service"
	notifydom "dealdesk/internal/services/notify/domain"
)

// Module defines the deadlines module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs the deadlines module with its ports
// the dispatcher comes from the notify module via cross wiring in main
func New(deps modkit.Deps, dispatcher notifydom.DispatcherPort, overrides Options) *Module {
	// load defaults from config then apply overrides from CLI (if provided)
	opts := FromConfig(deps.Cfg)

	if overrides.Lookahead != 0 {
		opts.Lookahead = overrides.Lookahead
	}
	if overrides.ChannelsCSV != "" {
		opts.ChannelsCSV = overrides.ChannelsCSV
	}
	if overrides.DryRun {
		opts.DryRun = true
	}

	svc := service.New(deps, dispatcher, service.Config{
		Lookahead: opts.Lookahead,
		Channels:  parseChannels(opts.ChannelsCSV),
		DryRun:    opts.DryRun,
	})

	m := &Module{deps: deps}
	m.ports = Ports{
		Scanner: svc,
		Edit:    svc,
		Reader:  svc,
	}
	return m
}

// Name returns the module name
func (m *Module) Name() string { return "deadlines" }

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

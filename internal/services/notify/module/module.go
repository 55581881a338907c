// Package module wires the notify service and exposes its ports
package module

import (
	"dealdesk/internal/adapters/outbound"
	"dealdesk/internal/modkit"
	"dealdesk/internal/services/notify/service"
)

// Module defines the notify module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs the notify module with its ports
// email and sms transports are wired only when their gateway urls are set
func New(deps modkit.Deps) *Module {
	opts := FromConfig(deps.Cfg)

	tr := service.Transports{}
	if opts.EmailURL != "" {
		tr.Email = outbound.NewEmailClient(outbound.EmailOptions{
			URL:     opts.EmailURL,
			Token:   opts.GatewayToken,
			From:    opts.EmailFrom,
			Timeout: opts.GatewayTimeout,
		})
	}
	if opts.SMSURL != "" {
		tr.SMS = outbound.NewSMSClient(outbound.SMSOptions{
			URL:     opts.SMSURL,
			Token:   opts.GatewayToken,
			Sender:  opts.SMSSender,
			Timeout: opts.GatewayTimeout,
		})
	}

	svc := service.New(deps, tr)

	m := &Module{deps: deps}
	m.ports = Ports{Dispatcher: svc}
	return m
}

// Name returns the module name
func (m *Module) Name() string { return "notify" }

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

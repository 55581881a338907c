package module

import "dealdesk/internal/services/notify/domain"

// Ports defines notify module ports exposed via the registry
type Ports struct {
	Dispatcher domain.DispatcherPort
}

package module

import "dealdesk/internal/services/calendar/domain"

// Ports defines calendar module ports exposed via the registry
type Ports struct {
	Mapper domain.MapperPort
	Sync   domain.SyncPort
	Export domain.ExportPort
}

package domain

import (
	"context"
	"time"
)

// MapperPort converts between internal appointments and provider events
type MapperPort interface {
	ToExternalEvent(appt Appointment, client *Client) ExternalEvent
	ToAppointment(ev ExternalEvent, createdBy string, clientID *string) Appointment
}

// SyncPort is the read/write surface a provider sync job needs
type SyncPort interface {
	ListForSync(ctx context.Context, limit int) ([]Appointment, error)
	UpsertFromExternal(ctx context.Context, appt Appointment) (string, error)
	LinkExternal(ctx context.Context, id, externalEventID, externalCalendarID string) error
}

// ExportPort renders appointments for consumption outside the system
type ExportPort interface {
	ListScheduled(ctx context.Context, from, to time.Time) ([]Appointment, error)
	ExportICS(appointments []Appointment) ([]byte, error)
	Agenda(appointments []Appointment, from, to time.Time) ([]Occurrence, error)
}

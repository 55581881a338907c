package service

import (
	"context"

	"dealdesk/internal/services/calendar/domain"
)

// ListForSync returns appointments that still need a push to the provider
func (s *Svc) ListForSync(ctx context.Context, limit int) ([]domain.Appointment, error) {
	if limit <= 0 {
		limit = s.config.SyncBatch
	}
	return s.Repo.ListForSync(ctx, limit)
}

// UpsertFromExternal lands an inbound provider event as an appointment row
func (s *Svc) UpsertFromExternal(ctx context.Context, appt domain.Appointment) (string, error) {
	id, err := s.Repo.UpsertFromExternal(ctx, appt)
	if err != nil {
		return "", err
	}
	s.deps.Log.Debug().
		Str("appointment_id", id).
		Msg("appointment upserted from external event")
	return id, nil
}

// LinkExternal records the provider linkage after a successful push
func (s *Svc) LinkExternal(ctx context.Context, id, externalEventID, externalCalendarID string) error {
	return s.Repo.LinkExternal(ctx, id, externalEventID, externalCalendarID)
}

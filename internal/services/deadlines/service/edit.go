package service

import (
	"context"
	"time"

	perr "dealdesk/internal/platform/errors"
	"dealdesk/internal/services/deadlines/domain"
)

// Reschedule moves a deadline and resets its alert state so the scanner
// picks it up again when the new due time enters the window
func (s *Svc) Reschedule(ctx context.Context, id string, newDeadline time.Time) error {
	if id == "" {
		return perr.InvalidArgf("deadline id required")
	}
	if err := s.Repo.Reschedule(ctx, id, newDeadline); err != nil {
		return err
	}
	s.deps.Log.Info().
		Str("deadline_id", id).
		Time("deadline", newDeadline).
		Msg("stage deadline rescheduled")
	return nil
}

// ListByClient returns a client's deadlines ordered by due time
func (s *Svc) ListByClient(ctx context.Context, clientID string) ([]domain.StageDeadline, error) {
	if clientID == "" {
		return nil, perr.InvalidArgf("client id required")
	}
	return s.Repo.ListByClient(ctx, clientID)
}

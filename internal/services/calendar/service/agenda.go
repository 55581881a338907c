package service

import (
	"context"
	"sort"
	"time"

	"dealdesk/internal/core/recurrence"
	perr "dealdesk/internal/platform/errors"
	"dealdesk/internal/services/calendar/domain"
)

// ListScheduled loads the non-cancelled appointments that can produce
// occurrences inside [from, to], recurring anchors included
func (s *Svc) ListScheduled(ctx context.Context, from, to time.Time) ([]domain.Appointment, error) {
	if to.Before(from) {
		return nil, perr.InvalidArgf("range end %s before start %s", to, from)
	}
	return s.Repo.ListScheduled(ctx, from, to)
}

// Agenda expands appointments into concrete occurrences within [from, to]
// recurring rows go through the recurrence expander anchored at their start
// time; a row with a rule that no longer parses is skipped, not fatal
func (s *Svc) Agenda(appointments []domain.Appointment, from, to time.Time) ([]domain.Occurrence, error) {
	if to.Before(from) {
		return nil, perr.InvalidArgf("agenda range end %s before start %s", to, from)
	}

	out := make([]domain.Occurrence, 0, len(appointments))
	for _, appt := range appointments {
		if appt.Status == domain.StatusCancelled {
			continue
		}
		dur := appt.EndTime.Sub(appt.StartTime)

		if !appt.IsRecurring || appt.RecurrenceRule == nil {
			if appt.StartTime.Before(from) || appt.StartTime.After(to) {
				continue
			}
			out = append(out, occurrenceOf(appt, appt.StartTime, dur))
			continue
		}

		starts, err := recurrence.Occurrences(*appt.RecurrenceRule, appt.StartTime, from, to)
		if err != nil {
			s.deps.Log.Warn().
				Str("appointment_id", appt.ID).
				Err(err).
				Msg("skipping appointment with unparseable recurrence rule")
			continue
		}
		for _, start := range starts {
			if appt.RecurrenceEndDate != nil && start.After(*appt.RecurrenceEndDate) {
				continue
			}
			out = append(out, occurrenceOf(appt, start, dur))
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out, nil
}

func occurrenceOf(appt domain.Appointment, start time.Time, dur time.Duration) domain.Occurrence {
	return domain.Occurrence{
		AppointmentID: appt.ID,
		Title:         appt.Title,
		Start:         start,
		End:           start.Add(dur),
	}
}

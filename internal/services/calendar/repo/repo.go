// Package repo provides the calendar repository implementation
//
// target table:
//
//	appointments (
//	  id uuid primary key default gen_random_uuid(),
//	  title text not null,
//	  description text,
//	  client_id uuid references clients(id),
//	  start_time timestamptz not null,
//	  end_time timestamptz not null,
//	  location text,
//	  appt_type text not null,
//	  status text not null default 'scheduled',
//	  is_recurring boolean not null default false,
//	  recurrence_rule text,
//	  recurrence_end_date timestamptz,
//	  external_event_id text unique,
//	  external_calendar_id text,
//	  created_by uuid not null,
//	  updated_at timestamptz not null default now(),
//	  synced_at timestamptz
//	)
package repo

import (
	"context"
	"time"

	"dealdesk/internal/modkit/repokit"
	perr "dealdesk/internal/platform/errors"
	"dealdesk/internal/services/calendar/domain"
)

type binder struct{}

// NewPG constructs a new repo binder for Postgres
func NewPG() repokit.Binder[Repo] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Repo { return &pg{q: q} }

// Repo defines the calendar repository contract
type Repo interface {
	// ListForSync returns scheduled appointments that still need a push to
	// the external provider: never linked, or touched since the last push
	ListForSync(ctx context.Context, limit int) ([]domain.Appointment, error)

	// ListScheduled returns non-cancelled appointments starting in [from, to]
	// plus every recurring appointment anchored before the window end
	ListScheduled(ctx context.Context, from, to time.Time) ([]domain.Appointment, error)

	// UpsertFromExternal inserts or refreshes an inbound appointment keyed on
	// external_event_id and returns the row id
	UpsertFromExternal(ctx context.Context, appt domain.Appointment) (string, error)

	// LinkExternal records the provider linkage after a successful push
	LinkExternal(ctx context.Context, id, externalEventID, externalCalendarID string) error

	// ClientByID loads the client reference used for attendee mapping
	ClientByID(ctx context.Context, id string) (domain.Client, error)
}

type pg struct{ q repokit.Queryer }

const apptColumns = `
	a.id::text, a.title, a.description, a.client_id::text,
	a.start_time, a.end_time, a.location, a.appt_type, a.status,
	a.is_recurring, a.recurrence_rule, a.recurrence_end_date,
	a.external_event_id, a.external_calendar_id, a.created_by::text, a.updated_at
`

func scanAppt(scan func(dest ...any) error) (domain.Appointment, error) {
	var a domain.Appointment
	err := scan(
		&a.ID, &a.Title, &a.Description, &a.ClientID,
		&a.StartTime, &a.EndTime, &a.Location, &a.Type, &a.Status,
		&a.IsRecurring, &a.RecurrenceRule, &a.RecurrenceEndDate,
		&a.ExternalEventID, &a.ExternalCalendarID, &a.CreatedBy, &a.UpdatedAt,
	)
	return a, err
}

func (s *pg) ListForSync(ctx context.Context, limit int) ([]domain.Appointment, error) {
	const sql = `
		SELECT ` + apptColumns + `
		FROM appointments a
		WHERE a.status = 'scheduled'
			AND (a.external_event_id IS NULL OR a.synced_at IS NULL OR a.updated_at > a.synced_at)
		ORDER BY a.updated_at
		LIMIT $1
	`
	rows, err := s.q.Query(ctx, sql, limit)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeStoreRead, "list appointments for sync")
	}
	defer rows.Close()

	out := make([]domain.Appointment, 0, limit)
	for rows.Next() {
		a, err := scanAppt(rows.Scan)
		if err != nil {
			return nil, perr.Wrap(err, perr.ErrorCodeStoreRead, "scan appointment")
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *pg) ListScheduled(ctx context.Context, from, to time.Time) ([]domain.Appointment, error) {
	const sql = `
		SELECT ` + apptColumns + `
		FROM appointments a
		WHERE a.status <> 'cancelled'
			AND (
				(a.start_time >= $1 AND a.start_time <= $2)
				OR (a.is_recurring AND a.start_time <= $2)
			)
		ORDER BY a.start_time
	`
	rows, err := s.q.Query(ctx, sql, from, to)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeStoreRead, "list scheduled appointments")
	}
	defer rows.Close()

	var out []domain.Appointment
	for rows.Next() {
		a, err := scanAppt(rows.Scan)
		if err != nil {
			return nil, perr.Wrap(err, perr.ErrorCodeStoreRead, "scan appointment")
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *pg) UpsertFromExternal(ctx context.Context, appt domain.Appointment) (string, error) {
	const sql = `
		INSERT INTO appointments (
			title, description, client_id, start_time, end_time, location,
			appt_type, status, is_recurring, recurrence_rule,
			external_event_id, created_by, updated_at, synced_at
		)
		VALUES ($1, $2, $3::uuid, $4, $5, $6, $7, $8, $9, $10, $11, $12::uuid, NOW(), NOW())
		ON CONFLICT (external_event_id) DO UPDATE SET
			title = excluded.title,
			description = excluded.description,
			start_time = excluded.start_time,
			end_time = excluded.end_time,
			location = excluded.location,
			status = excluded.status,
			is_recurring = excluded.is_recurring,
			recurrence_rule = excluded.recurrence_rule,
			updated_at = NOW(),
			synced_at = NOW()
		RETURNING id::text
	`
	var id string
	err := s.q.QueryRow(ctx, sql,
		appt.Title, appt.Description, appt.ClientID,
		appt.StartTime, appt.EndTime, appt.Location,
		appt.Type, appt.Status, appt.IsRecurring, appt.RecurrenceRule,
		appt.ExternalEventID, appt.CreatedBy,
	).Scan(&id)
	if err != nil {
		return "", perr.FromPostgres(err, "upsert appointment from external event")
	}
	return id, nil
}

func (s *pg) LinkExternal(ctx context.Context, id, externalEventID, externalCalendarID string) error {
	const sql = `
		UPDATE appointments
		SET external_event_id = $2,
			external_calendar_id = $3,
			synced_at = NOW()
		WHERE id = $1::uuid
	`
	tag, err := s.q.Exec(ctx, sql, id, externalEventID, externalCalendarID)
	if err != nil {
		return perr.FromPostgres(err, "link appointment to external event")
	}
	if tag.RowsAffected() == 0 {
		return perr.NotFoundf("appointment %s not found", id)
	}
	return nil
}

func (s *pg) ClientByID(ctx context.Context, id string) (domain.Client, error) {
	const sql = `
		SELECT c.id::text, c.name, c.email, c.agent_id::text
		FROM clients c
		WHERE c.id = $1::uuid
	`
	var c domain.Client
	err := s.q.QueryRow(ctx, sql, id).Scan(&c.ID, &c.Name, &c.Email, &c.AgentID)
	if err != nil {
		return domain.Client{}, perr.Wrap(err, perr.ErrorCodeStoreRead, "load client")
	}
	return c, nil
}

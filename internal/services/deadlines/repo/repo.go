// Package repo provides the stage-deadline repository implementation
//
// target tables:
//
//	stage_deadlines (
//	  id uuid primary key default gen_random_uuid(),
//	  client_id uuid not null references clients(id),
//	  stage text not null,
//	  deadline timestamptz not null,
//	  alert_sent boolean not null default false,
//	  alert_sent_at timestamptz,
//	  created_by uuid not null,
//	  created_at timestamptz not null default now()
//	)
//
//	scan_audit (
//	  id uuid primary key default gen_random_uuid(),
//	  cycle_id uuid not null,
//	  at timestamptz not null,
//	  processed int not null,
//	  notified int not null,
//	  channels_queued int not null
//	)
package repo

import (
	"context"
	"time"

	"dealdesk/internal/modkit/repokit"
	perr "dealdesk/internal/platform/errors"
	"dealdesk/internal/services/deadlines/domain"
)

type binder struct{}

// NewPG constructs a new repo binder for Postgres
func NewPG() repokit.Binder[Repo] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Repo { return &pg{q: q} }

// Repo defines the stage-deadline repository contract
type Repo interface {
	// FindDueSoon returns unalerted deadlines inside [from, to] joined with
	// client and agent identity; this is a filter, not a state transition
	FindDueSoon(ctx context.Context, from, to time.Time) ([]domain.DueDeadline, error)

	// MarkAlerted flips alert_sent for one record
	MarkAlerted(ctx context.Context, id string, at time.Time) error

	// AppendAudit records one cycle summary
	AppendAudit(ctx context.Context, e domain.AuditEntry) error

	// Reschedule moves a deadline and resets its alert state
	Reschedule(ctx context.Context, id string, newDeadline time.Time) error

	// ListByClient returns a client's deadlines ordered by due time
	ListByClient(ctx context.Context, clientID string) ([]domain.StageDeadline, error)
}

type pg struct{ q repokit.Queryer }

func (s *pg) FindDueSoon(ctx context.Context, from, to time.Time) ([]domain.DueDeadline, error) {
	const sql = `
		SELECT
			d.id::text, d.client_id::text, d.stage, d.deadline,
			d.alert_sent, d.alert_sent_at, d.created_by::text,
			c.name,
			u.id::text, u.email, u.phone
		FROM stage_deadlines d
		JOIN clients c ON c.id = d.client_id
		LEFT JOIN users u ON u.id = c.agent_id
		WHERE d.alert_sent = FALSE
			AND d.deadline >= $1
			AND d.deadline <= $2
		ORDER BY d.deadline
	`
	rows, err := s.q.Query(ctx, sql, from, to)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeStoreRead, "find due deadlines")
	}
	defer rows.Close()

	var out []domain.DueDeadline
	for rows.Next() {
		var d domain.DueDeadline
		if err := rows.Scan(
			&d.ID, &d.ClientID, &d.Stage, &d.Deadline,
			&d.AlertSent, &d.AlertSentAt, &d.CreatedBy,
			&d.ClientName,
			&d.AgentID, &d.AgentEmail, &d.AgentPhone,
		); err != nil {
			return nil, perr.Wrap(err, perr.ErrorCodeStoreRead, "scan due deadline")
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeStoreRead, "iterate due deadlines")
	}
	return out, nil
}

func (s *pg) MarkAlerted(ctx context.Context, id string, at time.Time) error {
	const sql = `
		UPDATE stage_deadlines
		SET alert_sent = TRUE, alert_sent_at = $2
		WHERE id = $1::uuid
	`
	tag, err := s.q.Exec(ctx, sql, id, at)
	if err != nil {
		return perr.Wrap(err, perr.ErrorCodeStoreWrite, "mark deadline alerted")
	}
	if tag.RowsAffected() == 0 {
		return perr.NotFoundf("stage deadline %s not found", id)
	}
	return nil
}

func (s *pg) AppendAudit(ctx context.Context, e domain.AuditEntry) error {
	const sql = `
		INSERT INTO scan_audit (cycle_id, at, processed, notified, channels_queued)
		VALUES ($1::uuid, $2, $3, $4, $5)
	`
	if _, err := s.q.Exec(ctx, sql, e.CycleID, e.At, e.Processed, e.Notified, e.ChannelsQueued); err != nil {
		return perr.Wrap(err, perr.ErrorCodeStoreWrite, "append scan audit")
	}
	return nil
}

func (s *pg) Reschedule(ctx context.Context, id string, newDeadline time.Time) error {
	const sql = `
		UPDATE stage_deadlines
		SET deadline = $2, alert_sent = FALSE, alert_sent_at = NULL
		WHERE id = $1::uuid
	`
	tag, err := s.q.Exec(ctx, sql, id, newDeadline)
	if err != nil {
		return perr.FromPostgres(err, "reschedule stage deadline")
	}
	if tag.RowsAffected() == 0 {
		return perr.NotFoundf("stage deadline %s not found", id)
	}
	return nil
}

func (s *pg) ListByClient(ctx context.Context, clientID string) ([]domain.StageDeadline, error) {
	const sql = `
		SELECT d.id::text, d.client_id::text, d.stage, d.deadline,
			d.alert_sent, d.alert_sent_at, d.created_by::text
		FROM stage_deadlines d
		WHERE d.client_id = $1::uuid
		ORDER BY d.deadline
	`
	rows, err := s.q.Query(ctx, sql, clientID)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeStoreRead, "list deadlines by client")
	}
	defer rows.Close()

	var out []domain.StageDeadline
	for rows.Next() {
		var d domain.StageDeadline
		if err := rows.Scan(
			&d.ID, &d.ClientID, &d.Stage, &d.Deadline,
			&d.AlertSent, &d.AlertSentAt, &d.CreatedBy,
		); err != nil {
			return nil, perr.Wrap(err, perr.ErrorCodeStoreRead, "scan stage deadline")
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

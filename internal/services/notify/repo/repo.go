// Package repo provides the in-app notification repository
//
// target table:
//
//	notifications (
//	  id uuid primary key default gen_random_uuid(),
//	  user_id uuid not null,
//	  title text not null,
//	  message text not null,
//	  urgency text not null,
//	  action_url text,
//	  read_at timestamptz,
//	  created_at timestamptz not null default now()
//	)
package repo

import (
	"context"

	"dealdesk/internal/modkit/repokit"
	perr "dealdesk/internal/platform/errors"
	"dealdesk/internal/services/notify/domain"
)

type binder struct{}

// NewPG constructs a new repo binder for Postgres
func NewPG() repokit.Binder[Repo] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Repo { return &pg{q: q} }

// Repo defines the notification repository contract
type Repo interface {
	Insert(ctx context.Context, p domain.InAppPayload) error
	UnreadCount(ctx context.Context, userID string) (int, error)
}

type pg struct{ q repokit.Queryer }

func (s *pg) Insert(ctx context.Context, p domain.InAppPayload) error {
	const sql = `
		INSERT INTO notifications (user_id, title, message, urgency, action_url)
		VALUES ($1::uuid, $2, $3, $4, NULLIF($5, ''))
	`
	if _, err := s.q.Exec(ctx, sql, p.UserID, p.Title, p.Message, p.Urgency, p.ActionURL); err != nil {
		return perr.FromPostgres(err, "insert in-app notification")
	}
	return nil
}

func (s *pg) UnreadCount(ctx context.Context, userID string) (int, error) {
	const sql = `
		SELECT COUNT(*)
		FROM notifications
		WHERE user_id = $1::uuid AND read_at IS NULL
	`
	var n int
	if err := s.q.QueryRow(ctx, sql, userID).Scan(&n); err != nil {
		return 0, perr.Wrap(err, perr.ErrorCodeStoreRead, "count unread notifications")
	}
	return n, nil
}

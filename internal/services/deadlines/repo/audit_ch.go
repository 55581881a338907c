package repo

import (
	"context"

	"dealdesk/internal/platform/store"
	"dealdesk/internal/services/deadlines/domain"
)

// AuditSink mirrors cycle summaries into an append-only analytical store
type AuditSink interface {
	Append(ctx context.Context, e domain.AuditEntry) error
}

// NewCHSink returns a ClickHouse-backed audit sink
// target table:
//
//	dealdesk.scan_audit_events (
//	  cycle_id UUID,
//	  at DateTime64(3, 'UTC'),
//	  processed UInt32,
//	  notified UInt32,
//	  channels_queued UInt32
//	) ENGINE = MergeTree ORDER BY (at)
func NewCHSink(ch store.Clickhouse) AuditSink { return &chSink{ch: ch} }

type chSink struct{ ch store.Clickhouse }

func (s *chSink) Append(ctx context.Context, e domain.AuditEntry) error {
	rows := [][]any{{
		e.CycleID,
		e.At,
		uint32(e.Processed),
		uint32(e.Notified),
		uint32(e.ChannelsQueued),
	}}
	return s.ch.Insert(ctx, "dealdesk.scan_audit_events", rows)
}

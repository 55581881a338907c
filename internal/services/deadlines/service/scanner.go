package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"dealdesk/internal/core/urgency"
	perr "dealdesk/internal/platform/errors"
	"dealdesk/internal/platform/logger"
	"dealdesk/internal/services/deadlines/domain"
	notifydom "dealdesk/internal/services/notify/domain"
)

// RunCycle executes one poll over the due-soon window
//
// a fetch failure aborts the whole cycle with nothing processed; everything
// after the fetch is isolated per record. the alerted flag is written before
// dispatch so a crash between the two drops an alert instead of duplicating
// it on the next cycle
func (s *Svc) RunCycle(ctx context.Context, now time.Time) (domain.CycleReport, error) {
	var rep domain.CycleReport

	cycleID := uuid.NewString()
	ctx = logger.WithCycle(ctx, cycleID)
	log := logger.C(ctx)

	from, to := now, now.Add(s.config.Lookahead)
	due, err := s.Repo.FindDueSoon(ctx, from, to)
	if err != nil {
		return rep, perr.WrapIf(err, perr.ErrorCodeStoreRead, "fetch due deadlines")
	}
	log.Info().
		Int("due", len(due)).
		Time("window_start", from).
		Time("window_end", to).
		Msg("scan cycle started")

	channelsQueued := 0
	for _, d := range due {
		cctx := logger.WithClient(ctx, d.ClientID)
		clog := logger.C(cctx)

		tier := urgency.Classify(d.Deadline, now)

		// a record without an assigned agent is still marked alerted; it just
		// produces zero dispatch attempts and zero errors
		var note *notifydom.Notification
		if d.AgentID != nil {
			n := s.buildNotification(d, tier, now)
			note = &n
		}

		if err := s.Repo.MarkAlerted(cctx, d.ID, now); err != nil {
			clog.Error().
				Str("deadline_id", d.ID).
				Err(err).
				Msg("failed to mark deadline alerted")
			rep.Errors++
			continue
		}
		rep.Processed++

		if note == nil || s.config.DryRun {
			continue
		}

		res, err := s.dispatcher.Dispatch(cctx, *note, s.config.Channels)
		if err != nil {
			clog.Error().
				Str("deadline_id", d.ID).
				Err(err).
				Msg("notification dispatch failed")
			rep.Errors++
			continue
		}
		channelsQueued += len(res.Sent)
		rep.Errors += len(res.Failed)
		if len(res.Sent) > 0 {
			rep.Notified++
		}
	}

	// best effort: a failed audit write does not invalidate the cycle
	entry := domain.AuditEntry{
		CycleID:        cycleID,
		At:             now,
		Processed:      rep.Processed,
		Notified:       rep.Notified,
		ChannelsQueued: channelsQueued,
	}
	if err := s.Repo.AppendAudit(ctx, entry); err != nil {
		log.Warn().Err(err).Msg("scan audit write failed")
	}
	if s.audit != nil {
		if err := s.audit.Append(ctx, entry); err != nil {
			log.Warn().Err(err).Msg("clickhouse audit mirror failed")
		}
	}

	log.Info().
		Int("processed", rep.Processed).
		Int("notified", rep.Notified).
		Int("errors", rep.Errors).
		Msg("scan cycle finished")
	return rep, nil
}

// buildNotification shapes the alert addressed to the client's agent
func (s *Svc) buildNotification(d domain.DueDeadline, tier urgency.Tier, now time.Time) notifydom.Notification {
	remaining := d.Deadline.Sub(now).Round(time.Minute)
	n := notifydom.Notification{
		Title:   fmt.Sprintf("%s stage deadline for %s", stageLabel(d.Stage), d.ClientName),
		Message: fmt.Sprintf("Deadline %s (due in %s)", d.Deadline.UTC().Format(time.RFC3339), remaining),
		Urgency: tier,
	}
	if remaining < 0 {
		n.Message = fmt.Sprintf("Deadline %s (overdue by %s)", d.Deadline.UTC().Format(time.RFC3339), -remaining)
	}
	if d.AgentID != nil {
		n.Recipient.UserID = *d.AgentID
	}
	if d.AgentEmail != nil {
		n.Recipient.Email = *d.AgentEmail
	}
	if d.AgentPhone != nil {
		n.Recipient.Phone = *d.AgentPhone
	}
	return n
}

func stageLabel(st domain.Stage) string {
	switch st {
	case domain.StageLead:
		return "Lead"
	case domain.StageProspect:
		return "Prospect"
	case domain.StageClient:
		return "Client"
	case domain.StageClosed:
		return "Closed"
	default:
		return string(st)
	}
}

// Package domain defines stage-deadline types and the public ports for the
// deadlines service
package domain

import "time"

// Stage is a pipeline phase of a client relationship
type Stage string

// Pipeline stages
const (
	StageLead     Stage = "lead"
	StageProspect Stage = "prospect"
	StageClient   Stage = "client"
	StageClosed   Stage = "closed"
)

// StageDeadline is a pipeline-stage obligation
// the store is the sole writer of persisted state; the scanner only flips
// alert_sent and alert_sent_at
type StageDeadline struct {
	ID          string
	ClientID    string
	Stage       Stage
	Deadline    time.Time
	AlertSent   bool
	AlertSentAt *time.Time
	CreatedBy   string
}

// DueDeadline is the joined row one scan cycle consumes: the obligation plus
// the client name and the assigned agent's identities, when any
type DueDeadline struct {
	StageDeadline

	ClientName string
	AgentID    *string
	AgentEmail *string
	AgentPhone *string
}

// CycleReport tallies one runCycle invocation
// counts reflect only what succeeded; Errors counts isolated per-record and
// per-channel failures
type CycleReport struct {
	Processed int
	Notified  int
	Errors    int
}

// AuditEntry summarizes a finished cycle for the audit trail
type AuditEntry struct {
	CycleID        string
	At             time.Time
	Processed      int
	Notified       int
	ChannelsQueued int
}

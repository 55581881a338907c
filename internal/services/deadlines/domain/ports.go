package domain

import (
	"context"
	"time"
)

// ScannerPort runs one polling cycle over due deadlines
// the caller owns scheduling and retry policy; a cycle never self-retries
type ScannerPort interface {
	RunCycle(ctx context.Context, now time.Time) (CycleReport, error)
}

// EditPort covers the user-facing mutations of stage deadlines
type EditPort interface {
	// Reschedule moves a deadline and resets its alert state
	Reschedule(ctx context.Context, id string, newDeadline time.Time) error
}

// ReaderPort is the read surface the surrounding CRUD app uses
type ReaderPort interface {
	ListByClient(ctx context.Context, clientID string) ([]StageDeadline, error)
}

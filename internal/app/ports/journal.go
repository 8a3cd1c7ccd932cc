package ports

import (
	"context"
	"time"
)

// RunMode selects the workflow a run executes.
type RunMode string

const (
	RunModeInstall   RunMode = "install"
	RunModeUninstall RunMode = "uninstall"
)

// RunOutcome is the terminal state recorded for a run.
type RunOutcome string

const (
	RunOutcomeApplied  RunOutcome = "applied"
	RunOutcomeNoop     RunOutcome = "noop"
	RunOutcomeDeclined RunOutcome = "declined"
	RunOutcomeFailed   RunOutcome = "failed"
)

// MutationAction is the kind of change applied to a service hook.
type MutationAction string

const (
	MutationCreated MutationAction = "created"
	MutationDeleted MutationAction = "deleted"
)

// RunRecord describes one reconciliation run.
type RunRecord struct {
	ID           string
	Mode         RunMode
	Organization string
	Site         string
	StartedAt    time.Time
}

// RunSummary closes a run record.
type RunSummary struct {
	Planned    int
	Applied    int
	Outcome    RunOutcome
	FinishedAt time.Time
}

// Mutation is one applied create or delete.
type Mutation struct {
	RunID        string
	Action       MutationAction
	Organization string
	ProjectID    string
	ProjectName  string
	EventType    string
	HookID       string
	AppliedAt    time.Time
}

// Journal records applied mutations for audit. It is never read back by the
// reconciler.
type Journal interface {
	StartRun(ctx context.Context, run RunRecord) error
	RecordMutation(ctx context.Context, mutation Mutation) error
	FinishRun(ctx context.Context, runID string, summary RunSummary) error
}

// NopJournal discards every record.
type NopJournal struct{}

func (NopJournal) StartRun(context.Context, RunRecord) error { return nil }
func (NopJournal) RecordMutation(context.Context, Mutation) error { return nil }
func (NopJournal) FinishRun(context.Context, string, RunSummary) error { return nil }

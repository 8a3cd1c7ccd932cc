package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fr0stylo/ddhooks/internal/app/ports"
	"github.com/fr0stylo/ddhooks/pkg/hookevents"
)

var _ ports.Journal = (*JournalStore)(nil)

// JournalStore appends runs and applied mutations. Each mutation row keeps
// the CloudEvent that describes it.
type JournalStore struct {
	db *sql.DB
}

// RunRow is a stored run.
type RunRow struct {
	ID           string
	Mode         string
	Organization string
	Site         string
	StartedAt    time.Time
	FinishedAt   *time.Time
	Planned      int
	Applied      int
	Outcome      string
}

// MutationRow is a stored mutation with its raw CloudEvent.
type MutationRow struct {
	RunID        string
	EventID      string
	EventType    string
	Action       string
	Organization string
	ProjectID    string
	HookID       string
	AppliedAt    time.Time
	RawEventJSON string
}

func OpenJournalStore(ctx context.Context, path string) (*JournalStore, error) {
	db, err := openDatabase(ctx, path)
	if err != nil {
		return nil, err
	}
	return &JournalStore{db: db}, nil
}

func (s *JournalStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *JournalStore) StartRun(ctx context.Context, run ports.RunRecord) error {
	if strings.TrimSpace(run.ID) == "" {
		return errors.New("run id is required")
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, mode, organization, site, started_at)
		VALUES (?, ?, ?, ?, ?)
	`, run.ID, string(run.Mode), run.Organization, run.Site, formatTime(run.StartedAt))
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

func (s *JournalStore) RecordMutation(ctx context.Context, mutation ports.Mutation) error {
	body, eventID, err := hookevents.Encode(hookevents.Mutation{
		RunID:        mutation.RunID,
		Action:       string(mutation.Action),
		Organization: mutation.Organization,
		ProjectID:    mutation.ProjectID,
		ProjectName:  mutation.ProjectName,
		EventType:    mutation.EventType,
		HookID:       mutation.HookID,
		Time:         mutation.AppliedAt,
	})
	if err != nil {
		return fmt.Errorf("encode mutation event: %w", err)
	}
	eventType, err := hookevents.TypeFor(string(mutation.Action))
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO hook_mutations (
			run_id, event_id, event_type, action, organization, project_id,
			hook_event_type, hook_id, applied_at, raw_event_json
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, mutation.RunID, eventID, eventType, string(mutation.Action), mutation.Organization, mutation.ProjectID,
		mutation.EventType, mutation.HookID, formatTime(mutation.AppliedAt), string(body))
	if err != nil {
		return fmt.Errorf("insert mutation: %w", err)
	}
	return nil
}

func (s *JournalStore) FinishRun(ctx context.Context, runID string, summary ports.RunSummary) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE runs
		SET finished_at = ?, planned = ?, applied = ?, outcome = ?
		WHERE id = ?
	`, formatTime(summary.FinishedAt), summary.Planned, summary.Applied, string(summary.Outcome), runID)
	if err != nil {
		return fmt.Errorf("update run: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (s *JournalStore) GetRun(ctx context.Context, runID string) (RunRow, error) {
	var (
		row        RunRow
		startedAt  string
		finishedAt sql.NullString
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT id, mode, organization, site, started_at, finished_at, planned, applied, outcome
		FROM runs
		WHERE id = ?
	`, runID).Scan(&row.ID, &row.Mode, &row.Organization, &row.Site, &startedAt, &finishedAt, &row.Planned, &row.Applied, &row.Outcome)
	if err != nil {
		return RunRow{}, err
	}
	row.StartedAt = parseTime(startedAt)
	if finishedAt.Valid {
		value := parseTime(finishedAt.String)
		row.FinishedAt = &value
	}
	return row, nil
}

// ListMutations returns the mutations of a run in the order they were applied.
func (s *JournalStore) ListMutations(ctx context.Context, runID string) ([]MutationRow, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT run_id, event_id, event_type, action, organization, project_id, hook_id, applied_at, raw_event_json
		FROM hook_mutations
		WHERE run_id = ?
		ORDER BY id ASC
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []MutationRow
	for rows.Next() {
		var (
			item      MutationRow
			appliedAt string
		)
		if err := rows.Scan(&item.RunID, &item.EventID, &item.EventType, &item.Action, &item.Organization, &item.ProjectID, &item.HookID, &appliedAt, &item.RawEventJSON); err != nil {
			return nil, err
		}
		item.AppliedAt = parseTime(appliedAt)
		out = append(out, item)
	}
	return out, rows.Err()
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		value = time.Now()
	}
	return value.UTC().Format(time.RFC3339Nano)
}

func parseTime(value string) time.Time {
	parsed, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}
	}
	return parsed
}

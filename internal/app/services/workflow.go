package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/fr0stylo/ddhooks/internal/app/domain"
	"github.com/fr0stylo/ddhooks/internal/app/ports"
)

// WorkflowOptions scopes one reconciliation run.
type WorkflowOptions struct {
	RunID        string
	Organization string
	Site         string
	// Project restricts install to the project with this exact name.
	Project string
	// AssumeYes answers the confirmation prompt affirmatively.
	AssumeYes bool
}

// WorkflowDeps are the collaborators a workflow drives.
type WorkflowDeps struct {
	Gateway   ports.Gateway
	Confirmer ports.Confirmer
	Progress  ports.Progress
	Reporter  ports.Reporter
	Journal   ports.Journal
	Logger    *slog.Logger
}

// Result summarizes a finished run.
type Result struct {
	Outcome  ports.RunOutcome
	Planned  int
	Applied  int
	Projects int
}

// Workflow sequences credential validation, discovery, diff, confirmation
// and the mutation loop. Remote calls are issued one at a time.
type Workflow struct {
	gateway   ports.Gateway
	confirmer ports.Confirmer
	progress  ports.Progress
	reporter  ports.Reporter
	journal   ports.Journal
	logger    *slog.Logger
	opts      WorkflowOptions
	now       func() time.Time
}

// NewWorkflow constructs a workflow. Journal and Logger are optional.
func NewWorkflow(deps WorkflowDeps, opts WorkflowOptions) *Workflow {
	journal := deps.Journal
	if journal == nil {
		journal = ports.NopJournal{}
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	opts.Project = strings.TrimSpace(opts.Project)
	return &Workflow{
		gateway:   deps.Gateway,
		confirmer: deps.Confirmer,
		progress:  deps.Progress,
		reporter:  deps.Reporter,
		journal:   journal,
		logger:    logger,
		opts:      opts,
		now:       time.Now,
	}
}

// Install creates every missing service hook.
func (w *Workflow) Install(ctx context.Context) (result Result, err error) {
	if err := w.startRun(ctx, ports.RunModeInstall); err != nil {
		return Result{}, err
	}
	defer func() { err = w.finishRun(ctx, &result, err) }()

	if err := w.gateway.ValidateCredential(ctx); err != nil {
		return Result{}, fmt.Errorf("validate datadog api key: %w", err)
	}

	projects, err := w.gateway.ListProjects(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("list projects: %w", err)
	}
	if w.opts.Project != "" {
		projects = filterProjectsByName(projects, w.opts.Project)
	}
	if len(projects) == 0 {
		if w.opts.Project == "" {
			w.reporter.Printf("No projects found in %s.\n", w.opts.Organization)
		} else {
			w.reporter.Printf("Project %s not found in %s\n", w.opts.Project, w.opts.Organization)
		}
		return Result{Outcome: ports.RunOutcomeNoop}, nil
	}

	existing, err := w.gateway.ListExistingHooks(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("list service hooks: %w", err)
	}

	diff := Diff(existing, GenerateDesiredState(projects, domain.RequiredEventTypes()))
	for _, item := range diff.Satisfied {
		w.logger.DebugContext(ctx, "service hook already configured",
			"project", item.Project.Name,
			"event_type", item.EventType.String(),
		)
	}

	if diff.Empty() {
		if w.opts.Project == "" {
			w.reporter.Printf("All %d projects in %s already have Datadog service hooks correctly configured!\n", len(projects), w.opts.Organization)
		} else {
			w.reporter.Printf("The project %s already has Datadog service hooks correctly configured!\n", w.opts.Project)
		}
		return Result{Outcome: ports.RunOutcomeNoop, Projects: diff.ProjectsTotal}, nil
	}

	result = Result{Planned: len(diff.ToCreate), Projects: diff.ProjectsMissing}
	if w.opts.Project == "" {
		prompt := fmt.Sprintf(
			"%d of %d projects in %s are missing at least one service hook.\nPlease confirm that you want to configure service hooks for these %d projects (yes/no): ",
			diff.ProjectsMissing, len(projects), w.opts.Organization, diff.ProjectsMissing,
		)
		if err := w.confirm(ctx, prompt); err != nil {
			result.Outcome = ports.RunOutcomeDeclined
			return result, err
		}
	}

	for i, item := range diff.ToCreate {
		w.progress.Step(i+1, len(diff.ToCreate), fmt.Sprintf("%s - %s", item.Project.Name, item.EventType))
		w.logger.DebugContext(ctx, "configuring service hook",
			"project", item.Project.Name,
			"event_type", item.EventType.String(),
		)
		hookID, err := w.gateway.CreateHook(ctx, item.Project, item.EventType)
		if err != nil {
			w.progress.Done()
			return result, fmt.Errorf("configure %s service hook for project %s: %w", item.EventType, item.Project.Name, err)
		}
		result.Applied++
		if err := w.journal.RecordMutation(ctx, ports.Mutation{
			RunID:        w.opts.RunID,
			Action:       ports.MutationCreated,
			Organization: w.opts.Organization,
			ProjectID:    item.Project.ID,
			ProjectName:  item.Project.Name,
			EventType:    item.EventType.String(),
			HookID:       hookID,
			AppliedAt:    w.now().UTC(),
		}); err != nil {
			w.progress.Done()
			return result, fmt.Errorf("record created service hook: %w", err)
		}
	}
	w.progress.Done()

	if w.opts.Project == "" {
		w.reporter.Printf("\nSuccessfully configured %d service hooks among %d projects in %s!\n", result.Applied, diff.ProjectsMissing, w.opts.Organization)
	} else {
		w.reporter.Printf("\nSuccessfully configured %d service hooks in project %s!\n", result.Applied, w.opts.Project)
	}
	result.Outcome = ports.RunOutcomeApplied
	return result, nil
}

// Uninstall deletes every service hook pointing at the Datadog webhook URL.
func (w *Workflow) Uninstall(ctx context.Context) (result Result, err error) {
	if w.opts.Project != "" {
		w.reporter.Printf("Specifying a single project is not supported for the uninstallation command.\n")
		return Result{Outcome: ports.RunOutcomeNoop}, nil
	}

	if err := w.startRun(ctx, ports.RunModeUninstall); err != nil {
		return Result{}, err
	}
	defer func() { err = w.finishRun(ctx, &result, err) }()

	if err := w.gateway.ValidateCredential(ctx); err != nil {
		return Result{}, fmt.Errorf("validate datadog api key: %w", err)
	}

	hooks, err := w.gateway.ListExistingHooks(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("list service hooks: %w", err)
	}
	if len(hooks) == 0 {
		w.reporter.Printf("No Datadog service hooks found.\n")
		return Result{Outcome: ports.RunOutcomeNoop}, nil
	}

	projectCount := GroupHooksByProject(hooks)
	result = Result{Planned: len(hooks), Projects: projectCount}
	w.reporter.Printf("Found %d Datadog service hooks among %d projects in %s.\n", len(hooks), projectCount, w.opts.Organization)
	prompt := fmt.Sprintf(
		"Are you sure you want to uninstall these %d Datadog service hooks ? This will break the integration with Datadog. (yes/no): ",
		len(hooks),
	)
	if err := w.confirm(ctx, prompt); err != nil {
		result.Outcome = ports.RunOutcomeDeclined
		return result, err
	}

	for i, hook := range hooks {
		projectID := hook.PublisherInputs.ProjectID
		w.progress.Step(i+1, len(hooks), fmt.Sprintf("%s - %s", projectID, hook.EventType))
		w.logger.DebugContext(ctx, "removing service hook",
			"project_id", projectID,
			"event_type", hook.EventType.String(),
			"hook_id", hook.ID,
		)
		if err := w.gateway.DeleteHook(ctx, hook.ID); err != nil {
			w.progress.Done()
			return result, fmt.Errorf("delete service hook %s: %w", hook.ID, err)
		}
		result.Applied++
		if err := w.journal.RecordMutation(ctx, ports.Mutation{
			RunID:        w.opts.RunID,
			Action:       ports.MutationDeleted,
			Organization: w.opts.Organization,
			ProjectID:    projectID,
			EventType:    hook.EventType.String(),
			HookID:       hook.ID,
			AppliedAt:    w.now().UTC(),
		}); err != nil {
			w.progress.Done()
			return result, fmt.Errorf("record deleted service hook: %w", err)
		}
	}
	w.progress.Done()

	w.reporter.Printf("\nSuccessfully uninstalled %d Datadog service hooks among %d projects in %s!\n", result.Applied, projectCount, w.opts.Organization)
	result.Outcome = ports.RunOutcomeApplied
	return result, nil
}

func (w *Workflow) confirm(ctx context.Context, prompt string) error {
	if w.opts.AssumeYes {
		w.logger.InfoContext(ctx, "confirmation skipped", "reason", "assume_yes")
		return nil
	}
	ok, err := w.confirmer.Confirm(ctx, prompt)
	if err != nil {
		return fmt.Errorf("read confirmation: %w", err)
	}
	if !ok {
		return domain.UserDeclined()
	}
	return nil
}

func (w *Workflow) startRun(ctx context.Context, mode ports.RunMode) error {
	err := w.journal.StartRun(ctx, ports.RunRecord{
		ID:           w.opts.RunID,
		Mode:         mode,
		Organization: w.opts.Organization,
		Site:         w.opts.Site,
		StartedAt:    w.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("journal start run: %w", err)
	}
	return nil
}

func (w *Workflow) finishRun(ctx context.Context, result *Result, runErr error) error {
	outcome := result.Outcome
	if runErr != nil && outcome != ports.RunOutcomeDeclined {
		outcome = ports.RunOutcomeFailed
	}
	err := w.journal.FinishRun(ctx, w.opts.RunID, ports.RunSummary{
		Planned:    result.Planned,
		Applied:    result.Applied,
		Outcome:    outcome,
		FinishedAt: w.now().UTC(),
	})
	if err != nil {
		return errors.Join(runErr, fmt.Errorf("journal finish run: %w", err))
	}
	return runErr
}

func filterProjectsByName(projects []domain.Project, name string) []domain.Project {
	out := make([]domain.Project, 0, 1)
	for _, project := range projects {
		if project.Name == name {
			out = append(out, project)
		}
	}
	return out
}

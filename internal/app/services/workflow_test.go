package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/fr0stylo/ddhooks/internal/app/domain"
	"github.com/fr0stylo/ddhooks/internal/app/ports"
	portmocks "github.com/fr0stylo/ddhooks/internal/app/ports/mocks"
)

type recordingProgress struct {
	steps []string
	done  int
}

func (p *recordingProgress) Step(done, total int, label string) {
	p.steps = append(p.steps, fmt.Sprintf("%d/%d %s", done, total, label))
}

func (p *recordingProgress) Done() {
	p.done++
}

type bufferReporter struct {
	b strings.Builder
}

func (r *bufferReporter) Printf(format string, args ...any) {
	fmt.Fprintf(&r.b, format, args...)
}

func (r *bufferReporter) String() string {
	return r.b.String()
}

type workflowFixture struct {
	gateway   *portmocks.MockGateway
	confirmer *portmocks.MockConfirmer
	progress  *recordingProgress
	reporter  *bufferReporter
}

func newWorkflowFixture(t *testing.T) *workflowFixture {
	t.Helper()
	return &workflowFixture{
		gateway:   portmocks.NewMockGateway(t),
		confirmer: portmocks.NewMockConfirmer(t),
		progress:  &recordingProgress{},
		reporter:  &bufferReporter{},
	}
}

func (f *workflowFixture) workflow(opts WorkflowOptions, journal ports.Journal) *Workflow {
	if opts.Organization == "" {
		opts.Organization = "contoso"
	}
	return NewWorkflow(WorkflowDeps{
		Gateway:   f.gateway,
		Confirmer: f.confirmer,
		Progress:  f.progress,
		Reporter:  f.reporter,
		Journal:   journal,
	}, opts)
}

func twoProjects() []domain.Project {
	return []domain.Project{{ID: "A", Name: "Alpha"}, {ID: "B", Name: "Beta"}}
}

func fullyConfigured(projects []domain.Project) []domain.Subscription {
	var hooks []domain.Subscription
	for i, item := range GenerateDesiredState(projects, domain.RequiredEventTypes()) {
		hooks = append(hooks, hook(fmt.Sprintf("h%d", i), item.Project.ID, item.EventType))
	}
	return hooks
}

func TestInstall_CreatesMissingHooksAfterConfirmation(t *testing.T) {
	f := newWorkflowFixture(t)

	f.gateway.EXPECT().ValidateCredential(mock.Anything).Return(nil).Once()
	f.gateway.EXPECT().ListProjects(mock.Anything).Return(twoProjects(), nil).Once()
	f.gateway.EXPECT().ListExistingHooks(mock.Anything).Return([]domain.Subscription{
		hook("1", "A", domain.EventPush),
		hook("2", "A", domain.EventBuildComplete),
	}, nil).Once()
	f.confirmer.EXPECT().Confirm(mock.Anything, mock.MatchedBy(func(prompt string) bool {
		return strings.Contains(prompt, "2 of 2 projects in contoso") && strings.Contains(prompt, "these 2 projects")
	})).Return(true, nil).Once()

	var created []string
	f.gateway.EXPECT().CreateHook(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, project domain.Project, eventType domain.EventType) (string, error) {
			created = append(created, project.ID+"/"+eventType.String())
			return fmt.Sprintf("hook-%d", len(created)), nil
		}).Times(16)

	result, err := f.workflow(WorkflowOptions{}, nil).Install(context.Background())
	if err != nil {
		t.Fatalf("Install returned error: %v", err)
	}
	if result.Outcome != ports.RunOutcomeApplied || result.Applied != 16 || result.Planned != 16 {
		t.Fatalf("unexpected result: %#v", result)
	}
	if created[0] != "A/"+domain.EventPullRequestCreated.String() {
		t.Fatalf("unexpected first created hook: %s", created[0])
	}
	if created[15] != "B/"+domain.EventBuildComplete.String() {
		t.Fatalf("unexpected last created hook: %s", created[15])
	}
	if len(f.progress.steps) != 16 || f.progress.done != 1 {
		t.Fatalf("unexpected progress: steps=%d done=%d", len(f.progress.steps), f.progress.done)
	}
	if !strings.Contains(f.reporter.String(), "Successfully configured 16 service hooks among 2 projects in contoso!") {
		t.Fatalf("unexpected summary: %q", f.reporter.String())
	}
}

func TestInstall_SecondRunIsNoop(t *testing.T) {
	f := newWorkflowFixture(t)
	projects := twoProjects()

	f.gateway.EXPECT().ValidateCredential(mock.Anything).Return(nil).Once()
	f.gateway.EXPECT().ListProjects(mock.Anything).Return(projects, nil).Once()
	f.gateway.EXPECT().ListExistingHooks(mock.Anything).Return(fullyConfigured(projects), nil).Once()

	result, err := f.workflow(WorkflowOptions{}, nil).Install(context.Background())
	if err != nil {
		t.Fatalf("Install returned error: %v", err)
	}
	if result.Outcome != ports.RunOutcomeNoop || result.Applied != 0 {
		t.Fatalf("unexpected result: %#v", result)
	}
	f.gateway.AssertNotCalled(t, "CreateHook", mock.Anything, mock.Anything, mock.Anything)
	if !strings.Contains(f.reporter.String(), "All 2 projects in contoso already have Datadog service hooks correctly configured!") {
		t.Fatalf("unexpected output: %q", f.reporter.String())
	}
}

func TestInstall_RejectedKeyAbortsBeforeListingProjects(t *testing.T) {
	f := newWorkflowFixture(t)

	f.gateway.EXPECT().ValidateCredential(mock.Anything).
		Return(domain.RemoteError(domain.ServiceDatadog, "validate", http.StatusForbidden, `{"errors":["Forbidden"]}`)).Once()

	_, err := f.workflow(WorkflowOptions{}, nil).Install(context.Background())
	if !domain.IsKind(err, domain.KindCredential) {
		t.Fatalf("expected credential error, got %v", err)
	}
	f.gateway.AssertNotCalled(t, "ListProjects", mock.Anything)
	f.gateway.AssertNotCalled(t, "ListExistingHooks", mock.Anything)
}

func TestInstall_FailFastStopsAtFailingMutation(t *testing.T) {
	f := newWorkflowFixture(t)
	projects := []domain.Project{{ID: "A", Name: "Alpha"}}
	existing := fullyConfigured(projects)[:4]

	f.gateway.EXPECT().ValidateCredential(mock.Anything).Return(nil).Once()
	f.gateway.EXPECT().ListProjects(mock.Anything).Return(projects, nil).Once()
	f.gateway.EXPECT().ListExistingHooks(mock.Anything).Return(existing, nil).Once()
	f.confirmer.EXPECT().Confirm(mock.Anything, mock.Anything).Return(true, nil).Once()

	calls := 0
	f.gateway.EXPECT().CreateHook(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, domain.Project, domain.EventType) (string, error) {
			calls++
			if calls == 3 {
				return "", domain.RemoteError(domain.ServiceAzureDevOps, "create_hook", http.StatusInternalServerError, "boom")
			}
			return "ok", nil
		})

	result, err := f.workflow(WorkflowOptions{}, nil).Install(context.Background())
	if !domain.IsKind(err, domain.KindRemote) {
		t.Fatalf("expected remote error, got %v", err)
	}
	if calls != 3 {
		t.Fatalf("expected exactly 3 create calls, got %d", calls)
	}
	if result.Applied != 2 || result.Planned != 5 {
		t.Fatalf("unexpected result: %#v", result)
	}
	if f.progress.done != 1 {
		t.Fatalf("expected progress to be closed once, got %d", f.progress.done)
	}
}

func TestInstall_DeclinedConfirmationDoesNotMutate(t *testing.T) {
	f := newWorkflowFixture(t)

	f.gateway.EXPECT().ValidateCredential(mock.Anything).Return(nil).Once()
	f.gateway.EXPECT().ListProjects(mock.Anything).Return(twoProjects(), nil).Once()
	f.gateway.EXPECT().ListExistingHooks(mock.Anything).Return(nil, nil).Once()
	f.confirmer.EXPECT().Confirm(mock.Anything, mock.Anything).Return(false, nil).Once()

	result, err := f.workflow(WorkflowOptions{}, nil).Install(context.Background())
	if !domain.IsKind(err, domain.KindUserDeclined) {
		t.Fatalf("expected user declined, got %v", err)
	}
	if result.Outcome != ports.RunOutcomeDeclined || result.Applied != 0 {
		t.Fatalf("unexpected result: %#v", result)
	}
	f.gateway.AssertNotCalled(t, "CreateHook", mock.Anything, mock.Anything, mock.Anything)
}

func TestInstall_AssumeYesSkipsConfirmation(t *testing.T) {
	f := newWorkflowFixture(t)
	projects := []domain.Project{{ID: "A", Name: "Alpha"}}

	f.gateway.EXPECT().ValidateCredential(mock.Anything).Return(nil).Once()
	f.gateway.EXPECT().ListProjects(mock.Anything).Return(projects, nil).Once()
	f.gateway.EXPECT().ListExistingHooks(mock.Anything).Return(fullyConfigured(projects)[1:], nil).Once()
	f.gateway.EXPECT().CreateHook(mock.Anything, projects[0], domain.EventPullRequestCreated).Return("new", nil).Once()

	result, err := f.workflow(WorkflowOptions{AssumeYes: true}, nil).Install(context.Background())
	if err != nil {
		t.Fatalf("Install returned error: %v", err)
	}
	if result.Applied != 1 {
		t.Fatalf("expected 1 applied mutation, got %d", result.Applied)
	}
	f.confirmer.AssertNotCalled(t, "Confirm", mock.Anything, mock.Anything)
}

func TestInstall_SingleProjectSkipsConfirmation(t *testing.T) {
	f := newWorkflowFixture(t)

	f.gateway.EXPECT().ValidateCredential(mock.Anything).Return(nil).Once()
	f.gateway.EXPECT().ListProjects(mock.Anything).Return(twoProjects(), nil).Once()
	f.gateway.EXPECT().ListExistingHooks(mock.Anything).Return(nil, nil).Once()
	f.gateway.EXPECT().CreateHook(mock.Anything, domain.Project{ID: "B", Name: "Beta"}, mock.Anything).Return("new", nil).Times(9)

	result, err := f.workflow(WorkflowOptions{Project: "Beta"}, nil).Install(context.Background())
	if err != nil {
		t.Fatalf("Install returned error: %v", err)
	}
	if result.Applied != 9 {
		t.Fatalf("expected 9 applied mutations, got %d", result.Applied)
	}
	if !strings.Contains(f.reporter.String(), "Successfully configured 9 service hooks in project Beta!") {
		t.Fatalf("unexpected output: %q", f.reporter.String())
	}
}

func TestInstall_UnknownProjectIsNoop(t *testing.T) {
	f := newWorkflowFixture(t)

	f.gateway.EXPECT().ValidateCredential(mock.Anything).Return(nil).Once()
	f.gateway.EXPECT().ListProjects(mock.Anything).Return(twoProjects(), nil).Once()

	result, err := f.workflow(WorkflowOptions{Project: "Gamma"}, nil).Install(context.Background())
	if err != nil {
		t.Fatalf("Install returned error: %v", err)
	}
	if result.Outcome != ports.RunOutcomeNoop {
		t.Fatalf("expected noop, got %s", result.Outcome)
	}
	if !strings.Contains(f.reporter.String(), "Project Gamma not found in contoso") {
		t.Fatalf("unexpected output: %q", f.reporter.String())
	}
	f.gateway.AssertNotCalled(t, "ListExistingHooks", mock.Anything)
}

func TestInstall_JournalRecordsEachMutation(t *testing.T) {
	f := newWorkflowFixture(t)
	journal := portmocks.NewMockJournal(t)
	projects := []domain.Project{{ID: "A", Name: "Alpha"}}

	f.gateway.EXPECT().ValidateCredential(mock.Anything).Return(nil).Once()
	f.gateway.EXPECT().ListProjects(mock.Anything).Return(projects, nil).Once()
	f.gateway.EXPECT().ListExistingHooks(mock.Anything).Return(fullyConfigured(projects)[2:], nil).Once()
	f.gateway.EXPECT().CreateHook(mock.Anything, mock.Anything, mock.Anything).Return("hook-x", nil).Twice()

	journal.EXPECT().StartRun(mock.Anything, mock.MatchedBy(func(run ports.RunRecord) bool {
		return run.ID == "run-1" && run.Mode == ports.RunModeInstall && run.Organization == "contoso"
	})).Return(nil).Once()
	journal.EXPECT().RecordMutation(mock.Anything, mock.MatchedBy(func(m ports.Mutation) bool {
		return m.RunID == "run-1" && m.Action == ports.MutationCreated && m.ProjectID == "A" && m.HookID == "hook-x"
	})).Return(nil).Twice()
	journal.EXPECT().FinishRun(mock.Anything, "run-1", mock.MatchedBy(func(s ports.RunSummary) bool {
		return s.Outcome == ports.RunOutcomeApplied && s.Planned == 2 && s.Applied == 2
	})).Return(nil).Once()

	if _, err := f.workflow(WorkflowOptions{RunID: "run-1", AssumeYes: true}, journal).Install(context.Background()); err != nil {
		t.Fatalf("Install returned error: %v", err)
	}
}

func TestInstall_JournalFinishFailureIsReturned(t *testing.T) {
	f := newWorkflowFixture(t)
	journal := portmocks.NewMockJournal(t)

	f.gateway.EXPECT().ValidateCredential(mock.Anything).Return(nil).Once()
	f.gateway.EXPECT().ListProjects(mock.Anything).Return(nil, nil).Once()
	journal.EXPECT().StartRun(mock.Anything, mock.Anything).Return(nil).Once()
	journal.EXPECT().FinishRun(mock.Anything, mock.Anything, mock.Anything).Return(errors.New("disk full")).Once()

	_, err := f.workflow(WorkflowOptions{}, journal).Install(context.Background())
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Fatalf("expected journal error, got %v", err)
	}
}

func TestUninstall_NothingToRemove(t *testing.T) {
	f := newWorkflowFixture(t)

	f.gateway.EXPECT().ValidateCredential(mock.Anything).Return(nil).Once()
	f.gateway.EXPECT().ListExistingHooks(mock.Anything).Return([]domain.Subscription{}, nil).Once()

	result, err := f.workflow(WorkflowOptions{}, nil).Uninstall(context.Background())
	if err != nil {
		t.Fatalf("Uninstall returned error: %v", err)
	}
	if result.Outcome != ports.RunOutcomeNoop {
		t.Fatalf("expected noop, got %s", result.Outcome)
	}
	if !strings.Contains(f.reporter.String(), "No Datadog service hooks found.") {
		t.Fatalf("unexpected output: %q", f.reporter.String())
	}
	f.gateway.AssertNotCalled(t, "DeleteHook", mock.Anything, mock.Anything)
}

func TestUninstall_DeletesEveryHookInOrder(t *testing.T) {
	f := newWorkflowFixture(t)
	hooks := []domain.Subscription{
		hook("h1", "A", domain.EventPush),
		hook("h2", "A", domain.EventPush),
		hook("h3", "B", domain.EventBuildComplete),
	}

	f.gateway.EXPECT().ValidateCredential(mock.Anything).Return(nil).Once()
	f.gateway.EXPECT().ListExistingHooks(mock.Anything).Return(hooks, nil).Once()
	f.confirmer.EXPECT().Confirm(mock.Anything, mock.MatchedBy(func(prompt string) bool {
		return strings.Contains(prompt, "uninstall these 3 Datadog service hooks")
	})).Return(true, nil).Once()

	var deleted []string
	f.gateway.EXPECT().DeleteHook(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, hookID string) error {
			deleted = append(deleted, hookID)
			return nil
		}).Times(3)

	result, err := f.workflow(WorkflowOptions{}, nil).Uninstall(context.Background())
	if err != nil {
		t.Fatalf("Uninstall returned error: %v", err)
	}
	if strings.Join(deleted, ",") != "h1,h2,h3" {
		t.Fatalf("unexpected delete order: %v", deleted)
	}
	if result.Applied != 3 || result.Projects != 2 {
		t.Fatalf("unexpected result: %#v", result)
	}
	output := f.reporter.String()
	if !strings.Contains(output, "Found 3 Datadog service hooks among 2 projects in contoso.") {
		t.Fatalf("unexpected output: %q", output)
	}
	if !strings.Contains(output, "Successfully uninstalled 3 Datadog service hooks among 2 projects in contoso!") {
		t.Fatalf("unexpected output: %q", output)
	}
}

func TestUninstall_FailFastOnDelete(t *testing.T) {
	f := newWorkflowFixture(t)
	hooks := []domain.Subscription{
		hook("h1", "A", domain.EventPush),
		hook("h2", "B", domain.EventPush),
		hook("h3", "C", domain.EventPush),
	}

	f.gateway.EXPECT().ValidateCredential(mock.Anything).Return(nil).Once()
	f.gateway.EXPECT().ListExistingHooks(mock.Anything).Return(hooks, nil).Once()
	f.confirmer.EXPECT().Confirm(mock.Anything, mock.Anything).Return(true, nil).Once()
	f.gateway.EXPECT().DeleteHook(mock.Anything, "h1").Return(domain.RemoteError(domain.ServiceAzureDevOps, "delete_hook", http.StatusUnauthorized, "")).Once()

	result, err := f.workflow(WorkflowOptions{}, nil).Uninstall(context.Background())
	if !domain.IsKind(err, domain.KindCredential) {
		t.Fatalf("expected credential error, got %v", err)
	}
	if result.Applied != 0 {
		t.Fatalf("expected no applied mutations, got %d", result.Applied)
	}
	f.gateway.AssertNotCalled(t, "DeleteHook", mock.Anything, "h2")
	f.gateway.AssertNotCalled(t, "DeleteHook", mock.Anything, "h3")
}

func TestUninstall_SingleProjectIsRejected(t *testing.T) {
	f := newWorkflowFixture(t)

	result, err := f.workflow(WorkflowOptions{Project: "Alpha"}, nil).Uninstall(context.Background())
	if err != nil {
		t.Fatalf("Uninstall returned error: %v", err)
	}
	if result.Outcome != ports.RunOutcomeNoop {
		t.Fatalf("expected noop, got %s", result.Outcome)
	}
	if !strings.Contains(f.reporter.String(), "not supported for the uninstallation command") {
		t.Fatalf("unexpected output: %q", f.reporter.String())
	}
	f.gateway.AssertNotCalled(t, "ValidateCredential", mock.Anything)
}

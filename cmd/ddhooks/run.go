package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/pflag"

	"github.com/fr0stylo/ddhooks/internal/adapters/azdevops"
	"github.com/fr0stylo/ddhooks/internal/adapters/datadog"
	"github.com/fr0stylo/ddhooks/internal/adapters/servicehooks"
	"github.com/fr0stylo/ddhooks/internal/adapters/sqlite"
	"github.com/fr0stylo/ddhooks/internal/adapters/terminal"
	"github.com/fr0stylo/ddhooks/internal/app/domain"
	"github.com/fr0stylo/ddhooks/internal/app/ports"
	"github.com/fr0stylo/ddhooks/internal/app/services"
	"github.com/fr0stylo/ddhooks/internal/config"
	"github.com/fr0stylo/ddhooks/internal/observability"
)

const usageEpilog = `
DD_API_KEY must be set in your environment, and contain a valid Datadog API key for the site you are using.
AZURE_DEVOPS_TOKEN must be set in your environment, and contain an Azure DevOps personal access token with admin access to the organization you are using.
`

// runEnv carries the process boundary so tests can drive run end to end.
type runEnv struct {
	args   []string
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	azureBaseURL   string
	datadogBaseURL string
}

func run(ctx context.Context, env runEnv) int {
	fs := pflag.NewFlagSet("ddhooks", pflag.ContinueOnError)
	fs.SetOutput(env.stderr)
	fs.Usage = func() {
		fmt.Fprintln(env.stderr, "Configure Datadog service hooks for Azure DevOps projects")
		fmt.Fprintln(env.stderr)
		fmt.Fprintln(env.stderr, "Usage: ddhooks [flags]")
		fs.PrintDefaults()
		fmt.Fprint(env.stderr, usageEpilog)
	}
	config.RegisterFlags(fs)
	if err := fs.Parse(env.args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 1
	}

	interactive := observability.IsTerminal(env.stdout)
	reporter := terminal.NewReporter(env.stdout, interactive)

	cfg, err := config.Load(fs)
	if err != nil {
		reporter.Errorf("%s\n", renderError(err))
		return 1
	}

	log := observability.NewLogger(env.stderr, cfg.Verbose)
	runID := uuid.NewString()
	ctx = observability.WithRun(ctx, runID, cfg.Organization)

	shutdown, err := observability.SetupOpenTelemetry(ctx, log, observability.OpenTelemetryConfig{
		Enabled:        cfg.Observability.Enabled,
		OTLPEndpoint:   cfg.Observability.OTLPEndpoint,
		OTLPHeaders:    cfg.Observability.OTLPHeaders,
		ServiceName:    cfg.Observability.ServiceName,
		ServiceVer:     cfg.Observability.ServiceVer,
		SamplingRatio:  cfg.Observability.SamplingRatio,
		MetricsConsole: cfg.Observability.MetricsConsole,
	})
	if err != nil {
		log.ErrorContext(ctx, "failed to set up OpenTelemetry", "error", err)
		return 1
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			log.Warn("failed to flush telemetry", "error", err)
		}
	}()

	var tracker *observability.LatencyTracker
	if cfg.Verbose {
		tracker = observability.NewLatencyTracker()
	}
	gateway := newGateway(cfg, env, log, tracker)

	journal, closeJournal, err := openJournal(ctx, cfg.JournalPath)
	if err != nil {
		log.ErrorContext(ctx, "failed to open journal", "path", cfg.JournalPath, "error", err)
		reporter.Errorf("%s\n", renderError(err))
		return 1
	}
	defer closeJournal()

	workflow := services.NewWorkflow(services.WorkflowDeps{
		Gateway:   gateway,
		Confirmer: terminal.NewConfirmer(env.stdin, env.stdout),
		Progress:  terminal.NewProgress(env.stdout, interactive),
		Reporter:  reporter,
		Journal:   journal,
		Logger:    log,
	}, services.WorkflowOptions{
		RunID:        runID,
		Organization: cfg.Organization,
		Site:         cfg.Site,
		Project:      cfg.Project,
		AssumeYes:    cfg.AssumeYes,
	})

	mode := "install"
	runFn := workflow.Install
	if cfg.Uninstall {
		mode = "uninstall"
		runFn = workflow.Uninstall
	}
	log.DebugContext(ctx, "starting run", "mode", mode, "site", cfg.Site, "project", cfg.Project)

	result, err := runFn(ctx)
	tracker.LogSummary(ctx, log)
	if err != nil {
		if domain.IsKind(err, domain.KindUserDeclined) {
			reporter.Printf("Exiting.\n")
			return 1
		}
		log.DebugContext(ctx, "run failed", "mode", mode, "error", err)
		reporter.Errorf("%s\n", renderError(err))
		return 1
	}
	log.DebugContext(ctx, "run finished",
		"mode", mode,
		"outcome", string(result.Outcome),
		"planned", result.Planned,
		"applied", result.Applied,
	)
	return 0
}

func newGateway(cfg config.Config, env runEnv, log *slog.Logger, tracker *observability.LatencyTracker) *servicehooks.Gateway {
	httpClient := observability.NewHTTPClient(cfg.HTTPTimeout)
	metrics := observability.NewRemoteMetrics()

	azureOpts := []azdevops.Option{
		azdevops.WithHTTPClient(httpClient),
		azdevops.WithLogger(log),
		azdevops.WithLatencyTracker(tracker),
		azdevops.WithMetrics(metrics),
	}
	if env.azureBaseURL != "" {
		azureOpts = append(azureOpts, azdevops.WithBaseURL(env.azureBaseURL))
	}
	datadogOpts := []datadog.Option{
		datadog.WithHTTPClient(httpClient),
		datadog.WithLogger(log),
		datadog.WithLatencyTracker(tracker),
		datadog.WithMetrics(metrics),
	}
	if env.datadogBaseURL != "" {
		datadogOpts = append(datadogOpts, datadog.WithAPIBaseURL(env.datadogBaseURL))
	}

	return servicehooks.NewGateway(
		azdevops.NewClient(cfg.Organization, cfg.AzureDevOpsToken, azureOpts...),
		datadog.NewClient(cfg.Site, cfg.DatadogAPIKey, datadogOpts...),
		metrics,
	)
}

func openJournal(ctx context.Context, path string) (ports.Journal, func(), error) {
	if path == "" {
		return ports.NopJournal{}, func() {}, nil
	}
	store, err := sqlite.OpenJournalStore(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	return store, func() { _ = store.Close() }, nil
}

package config

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/pflag"

	"github.com/fr0stylo/ddhooks/internal/app/domain"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("AZURE_DEVOPS_TOKEN", "az-token")
	t.Setenv("DD_API_KEY", "dd-key")
	t.Setenv("AZURE_DEVOPS_ORG", "contoso")
}

func parseFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("ddhooks", pflag.ContinueOnError)
	RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	return fs
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DD_SITE", "")

	cfg, err := Load(parseFlags(t))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Site != "datadoghq.com" {
		t.Fatalf("expected default site, got %q", cfg.Site)
	}
	if cfg.HTTPTimeout != 30*time.Second {
		t.Fatalf("expected default timeout, got %s", cfg.HTTPTimeout)
	}
	if cfg.Uninstall || cfg.AssumeYes || cfg.Verbose {
		t.Fatalf("expected boolean flags off by default: %+v", cfg)
	}
	if cfg.Observability.Enabled {
		t.Fatal("expected observability disabled by default")
	}
}

func TestLoadFlagsOverrideEnvironment(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DD_SITE", "datadoghq.eu")

	cfg, err := Load(parseFlags(t, "--dd-site", "us5.datadoghq.com", "-o", "fabrikam", "--project", " Alpha ", "--uninstall", "-v", "--yes", "--journal", "/tmp/ddhooks.sqlite"))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Site != "us5.datadoghq.com" || cfg.Organization != "fabrikam" {
		t.Fatalf("flags did not win: site=%q org=%q", cfg.Site, cfg.Organization)
	}
	if cfg.Project != "Alpha" {
		t.Fatalf("expected trimmed project, got %q", cfg.Project)
	}
	if !cfg.Uninstall || !cfg.Verbose || !cfg.AssumeYes {
		t.Fatalf("expected boolean flags set: %+v", cfg)
	}
	if cfg.JournalPath != "/tmp/ddhooks.sqlite" {
		t.Fatalf("unexpected journal path: %q", cfg.JournalPath)
	}
}

func TestLoadFallsBackToEnvironmentForUnsetFlags(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DD_SITE", "ap1.datadoghq.com")
	t.Setenv("DDHOOKS_PROJECT", "Beta")
	t.Setenv("DDHOOKS_HTTP_TIMEOUT", "45s")

	cfg, err := Load(parseFlags(t))
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Site != "ap1.datadoghq.com" || cfg.Project != "Beta" {
		t.Fatalf("expected env fallback, got site=%q project=%q", cfg.Site, cfg.Project)
	}
	if cfg.HTTPTimeout != 45*time.Second {
		t.Fatalf("unexpected timeout: %s", cfg.HTTPTimeout)
	}
}

func TestLoadRequiresCredentialsInBothModes(t *testing.T) {
	cases := []struct {
		name    string
		missing string
		args    []string
		want    string
	}{
		{name: "install without token", missing: "AZURE_DEVOPS_TOKEN", want: "AZURE_DEVOPS_TOKEN is not set in your environment."},
		{name: "install without key", missing: "DD_API_KEY", want: "DD_API_KEY is not set in your environment."},
		{name: "uninstall without key", missing: "DD_API_KEY", args: []string{"--uninstall"}, want: "DD_API_KEY is not set in your environment."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tc.missing, "")

			_, err := Load(parseFlags(t, tc.args...))
			if !domain.IsKind(err, domain.KindConfiguration) {
				t.Fatalf("expected configuration error, got %v", err)
			}
			if err.Error() != tc.want {
				t.Fatalf("unexpected message: %q", err.Error())
			}
		})
	}
}

func TestLoadRejectsUnknownSite(t *testing.T) {
	setRequiredEnv(t)

	_, err := Load(parseFlags(t, "--dd-site", "datadoghq.io"))
	if !domain.IsKind(err, domain.KindConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
	if !strings.Contains(err.Error(), "datadoghq.io") {
		t.Fatalf("expected site in message: %v", err)
	}
}

func TestLoadRequiresOrganization(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("AZURE_DEVOPS_ORG", "")

	_, err := Load(parseFlags(t))
	if !domain.IsKind(err, domain.KindConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

func TestLoadParsesOTLPHeadersAndMetricsConsole(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "authorization=Bearer common, x-org=abc,broken,=empty")
	t.Setenv("DDHOOKS_OTEL_METRICS_CONSOLE", "true")
	t.Setenv("DDHOOKS_OTEL_SAMPLING_RATIO", "3")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !cfg.Observability.Enabled || !cfg.Observability.MetricsConsole {
		t.Fatal("expected observability enabled when console metrics is true")
	}
	if len(cfg.Observability.OTLPHeaders) != 2 {
		t.Fatalf("unexpected headers: %#v", cfg.Observability.OTLPHeaders)
	}
	if cfg.Observability.OTLPHeaders["authorization"] != "Bearer common" || cfg.Observability.OTLPHeaders["x-org"] != "abc" {
		t.Fatalf("unexpected headers: %#v", cfg.Observability.OTLPHeaders)
	}
	if cfg.Observability.SamplingRatio != 1 {
		t.Fatalf("expected clamped sampling ratio, got %v", cfg.Observability.SamplingRatio)
	}
	if cfg.Observability.ServiceName != "ddhooks" {
		t.Fatalf("unexpected service name: %q", cfg.Observability.ServiceName)
	}
}

package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/fr0stylo/ddhooks/internal/adapters/datadog"
	"github.com/fr0stylo/ddhooks/internal/app/domain"
)

type Config struct {
	AzureDevOpsToken string `validate:"required"`
	DatadogAPIKey    string `validate:"required"`
	Site             string `validate:"required,dd_site"`
	Organization     string `validate:"required"`
	Project          string
	Uninstall        bool
	AssumeYes        bool
	Verbose          bool
	JournalPath      string
	HTTPTimeout      time.Duration `validate:"gt=0"`
	Observability    ObservabilityConfig
}

type ObservabilityConfig struct {
	Enabled        bool
	OTLPEndpoint   string
	OTLPHeaders    map[string]string
	ServiceName    string
	ServiceVer     string
	SamplingRatio  float64
	MetricsConsole bool
}

// Flag names and the environment keys they fall back to.
const (
	flagSite      = "dd-site"
	flagOrg       = "az-devops-org"
	flagProject   = "project"
	flagUninstall = "uninstall"
	flagVerbose   = "verbose"
	flagYes       = "yes"
	flagJournal   = "journal"

	keySite      = "dd_site"
	keyOrg       = "azure_devops_org"
	keyProject   = "ddhooks_project"
	keyUninstall = "ddhooks_uninstall"
	keyVerbose   = "ddhooks_verbose"
	keyYes       = "ddhooks_yes"
	keyJournal   = "ddhooks_journal_path"
)

var flagKeys = map[string]string{
	flagSite:      keySite,
	flagOrg:       keyOrg,
	flagProject:   keyProject,
	flagUninstall: keyUninstall,
	flagVerbose:   keyVerbose,
	flagYes:       keyYes,
	flagJournal:   keyJournal,
}

// RegisterFlags declares the command line surface on fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(flagSite, datadog.DefaultSite, "Datadog site to use, one of: "+strings.Join(datadog.Sites(), ", "))
	fs.StringP(flagOrg, "o", "", "Azure DevOps organization on which service hooks will be configured, the path segment after dev.azure.com/ in your organization URL")
	fs.String(flagProject, "", "Scope the installation to a single project in your Azure DevOps organization")
	fs.Bool(flagUninstall, false, "Uninstall Datadog service hooks from all projects in the organization")
	fs.BoolP(flagVerbose, "v", false, "Additional logging for every API call that is performed")
	fs.Bool(flagYes, false, "Answer yes to the confirmation prompt")
	fs.String(flagJournal, "", "Record applied changes in a SQLite journal at this path")
}

// Load resolves configuration from parsed flags, falling back to the
// environment for flags that were not set. fs may be nil.
func Load(fs *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault(keySite, datadog.DefaultSite)
	v.SetDefault("ddhooks_http_timeout", 30*time.Second)
	v.SetDefault("ddhooks_otel_enabled", false)
	v.SetDefault("otel_exporter_otlp_endpoint", "")
	v.SetDefault("otel_exporter_otlp_headers", "")
	v.SetDefault("otel_service_name", "ddhooks")
	v.SetDefault("ddhooks_version", "dev")
	v.SetDefault("ddhooks_otel_sampling_ratio", 1.0)
	v.SetDefault("ddhooks_otel_metrics_console", false)

	if fs != nil {
		for name, key := range flagKeys {
			if flag := fs.Lookup(name); flag != nil {
				if err := v.BindPFlag(key, flag); err != nil {
					return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	samplingRatio := v.GetFloat64("ddhooks_otel_sampling_ratio")
	if samplingRatio < 0 {
		samplingRatio = 0
	}
	if samplingRatio > 1 {
		samplingRatio = 1
	}

	serviceName := strings.TrimSpace(v.GetString("otel_service_name"))
	if serviceName == "" {
		serviceName = "ddhooks"
	}
	serviceVersion := strings.TrimSpace(v.GetString("ddhooks_version"))
	if serviceVersion == "" {
		serviceVersion = "dev"
	}

	otlpEndpoint := strings.TrimSpace(v.GetString("otel_exporter_otlp_endpoint"))
	metricsConsole := v.GetBool("ddhooks_otel_metrics_console")

	cfg := Config{
		AzureDevOpsToken: strings.TrimSpace(v.GetString("azure_devops_token")),
		DatadogAPIKey:    strings.TrimSpace(v.GetString("dd_api_key")),
		Site:             strings.TrimSpace(v.GetString(keySite)),
		Organization:     strings.TrimSpace(v.GetString(keyOrg)),
		Project:          strings.TrimSpace(v.GetString(keyProject)),
		Uninstall:        v.GetBool(keyUninstall),
		AssumeYes:        v.GetBool(keyYes),
		Verbose:          v.GetBool(keyVerbose),
		JournalPath:      strings.TrimSpace(v.GetString(keyJournal)),
		HTTPTimeout:      v.GetDuration("ddhooks_http_timeout"),
		Observability: ObservabilityConfig{
			Enabled:        v.GetBool("ddhooks_otel_enabled") || otlpEndpoint != "" || metricsConsole,
			OTLPEndpoint:   otlpEndpoint,
			OTLPHeaders:    parseOTLPHeaders(v.GetString("otel_exporter_otlp_headers")),
			ServiceName:    serviceName,
			ServiceVer:     serviceVersion,
			SamplingRatio:  samplingRatio,
			MetricsConsole: metricsConsole,
		},
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid field as a configuration error.
func (c Config) Validate() error {
	err := newValidator().Struct(c)
	if err == nil {
		return nil
	}
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return domain.ConfigurationError("invalid configuration: %v", err)
	}
	return fieldError(fieldErrors[0], c)
}

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("dd_site", func(fl validator.FieldLevel) bool {
		return datadog.ValidSite(fl.Field().String())
	})
	return v
}

func fieldError(fe validator.FieldError, c Config) error {
	switch fe.StructField() {
	case "AzureDevOpsToken":
		return domain.ConfigurationError("AZURE_DEVOPS_TOKEN is not set in your environment.")
	case "DatadogAPIKey":
		return domain.ConfigurationError("DD_API_KEY is not set in your environment.")
	case "Site":
		return domain.ConfigurationError("Invalid Datadog site %q, expected one of: %s", c.Site, strings.Join(datadog.Sites(), ", "))
	case "Organization":
		return domain.ConfigurationError("Azure DevOps organization is not set, use --%s or AZURE_DEVOPS_ORG.", flagOrg)
	case "HTTPTimeout":
		return domain.ConfigurationError("DDHOOKS_HTTP_TIMEOUT must be a positive duration, got %s.", c.HTTPTimeout)
	default:
		return domain.ConfigurationError("invalid %s: failed %s validation", fe.Field(), fe.Tag())
	}
}

func parseOTLPHeaders(raw string) map[string]string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	out := make(map[string]string)
	for _, part := range strings.Split(raw, ",") {
		key, value, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if key == "" || value == "" {
			continue
		}
		out[key] = value
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Package servicehooks joins the Azure DevOps and Datadog clients into the
// gateway the reconciliation workflow drives.
package servicehooks

import (
	"context"
	"strings"

	"github.com/fr0stylo/ddhooks/internal/adapters/azdevops"
	"github.com/fr0stylo/ddhooks/internal/adapters/datadog"
	"github.com/fr0stylo/ddhooks/internal/app/domain"
	"github.com/fr0stylo/ddhooks/internal/app/ports"
	"github.com/fr0stylo/ddhooks/internal/observability"
)

var _ ports.Gateway = (*Gateway)(nil)

type Gateway struct {
	azure   *azdevops.Client
	datadog *datadog.Client
	metrics observability.RemoteMetrics
}

func NewGateway(azure *azdevops.Client, dd *datadog.Client, metrics observability.RemoteMetrics) *Gateway {
	return &Gateway{azure: azure, datadog: dd, metrics: metrics}
}

func (g *Gateway) ValidateCredential(ctx context.Context) error {
	return g.datadog.Validate(ctx)
}

func (g *Gateway) ListProjects(ctx context.Context) ([]domain.Project, error) {
	return g.azure.ListProjects(ctx)
}

// ListExistingHooks returns the subscriptions delivering to the site's
// webhook intake. The server-side filter is repeated locally so a lenient
// query never leaks foreign subscriptions into the diff.
func (g *Gateway) ListExistingHooks(ctx context.Context) ([]domain.Subscription, error) {
	webhookURL := g.datadog.WebhookURL()
	hooks, err := g.azure.QuerySubscriptions(ctx, webhookURL)
	if err != nil {
		return nil, err
	}
	out := hooks[:0]
	for _, hook := range hooks {
		if url := strings.TrimSpace(hook.ConsumerInputs.URL); url != "" && url != webhookURL {
			continue
		}
		out = append(out, hook)
	}
	return out, nil
}

func (g *Gateway) CreateHook(ctx context.Context, project domain.Project, eventType domain.EventType) (string, error) {
	request := azdevops.NewWebhookSubscription(project, eventType, g.datadog.WebhookURL(), g.datadog.HTTPHeaders())
	id, err := g.azure.CreateSubscription(ctx, request)
	if err != nil {
		return "", err
	}
	g.metrics.RecordCreated(ctx, eventType.String())
	return id, nil
}

func (g *Gateway) DeleteHook(ctx context.Context, hookID string) error {
	if err := g.azure.DeleteSubscription(ctx, hookID); err != nil {
		return err
	}
	g.metrics.RecordDeleted(ctx)
	return nil
}

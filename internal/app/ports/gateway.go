package ports

import (
	"context"

	"github.com/fr0stylo/ddhooks/internal/app/domain"
)

// Gateway is the typed surface over Azure DevOps service hooks and the
// Datadog key validation endpoint. Every non-2xx response is returned as a
// *domain.Error carrying the status code and raw body. CreateHook returns the
// id Azure DevOps assigned to the new subscription.
type Gateway interface {
	ValidateCredential(ctx context.Context) error
	ListProjects(ctx context.Context) ([]domain.Project, error)
	ListExistingHooks(ctx context.Context) ([]domain.Subscription, error)
	CreateHook(ctx context.Context, project domain.Project, eventType domain.EventType) (string, error)
	DeleteHook(ctx context.Context, hookID string) error
}

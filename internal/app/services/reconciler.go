package services

import "github.com/fr0stylo/ddhooks/internal/app/domain"

// DiffResult is the delta between desired and existing subscriptions.
type DiffResult struct {
	// ToCreate keeps the order of the desired input.
	ToCreate []domain.DesiredSubscription
	// Satisfied lists desired entries that already have at least one hook.
	Satisfied []domain.DesiredSubscription
	// ProjectsMissing counts distinct projects with at least one entry in ToCreate.
	ProjectsMissing int
	// ProjectsTotal counts distinct projects in the desired input.
	ProjectsTotal int
}

// Empty reports whether nothing needs to be created.
func (r DiffResult) Empty() bool {
	return len(r.ToCreate) == 0
}

// Diff selects desired subscriptions whose routing key has no existing hook.
// Duplicate hooks for one key count as satisfied; hooks for projects outside
// the desired set are ignored.
func Diff(existing []domain.Subscription, desired []domain.DesiredSubscription) DiffResult {
	present := make(map[domain.RoutingKey]struct{}, len(existing))
	for _, hook := range existing {
		present[hook.Key()] = struct{}{}
	}

	result := DiffResult{}
	projects := make(map[string]struct{})
	missing := make(map[string]struct{})
	for _, item := range desired {
		projects[item.Project.ID] = struct{}{}
		if _, ok := present[item.Key()]; ok {
			result.Satisfied = append(result.Satisfied, item)
			continue
		}
		result.ToCreate = append(result.ToCreate, item)
		missing[item.Project.ID] = struct{}{}
	}
	result.ProjectsMissing = len(missing)
	result.ProjectsTotal = len(projects)
	return result
}

// GroupHooksByProject counts the distinct projects referenced by hooks.
func GroupHooksByProject(existing []domain.Subscription) int {
	projects := make(map[string]struct{}, len(existing))
	for _, hook := range existing {
		projects[hook.PublisherInputs.ProjectID] = struct{}{}
	}
	return len(projects)
}

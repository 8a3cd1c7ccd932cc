package services

import "github.com/fr0stylo/ddhooks/internal/app/domain"

// GenerateDesiredState returns the cross product of projects and event types.
// Projects keep their listing order and event types their declared order.
func GenerateDesiredState(projects []domain.Project, eventTypes []domain.EventType) []domain.DesiredSubscription {
	out := make([]domain.DesiredSubscription, 0, len(projects)*len(eventTypes))
	for _, project := range projects {
		for _, eventType := range eventTypes {
			out = append(out, domain.DesiredSubscription{Project: project, EventType: eventType})
		}
	}
	return out
}

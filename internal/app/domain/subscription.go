package domain

// Project is an Azure DevOps project visible to the organization token.
type Project struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// RoutingKey joins desired and existing subscriptions.
type RoutingKey struct {
	ProjectID string
	EventType EventType
}

// DesiredSubscription is one (project, event type) pair that must be hooked.
type DesiredSubscription struct {
	Project   Project
	EventType EventType
}

// Key returns the routing key of the desired subscription.
func (d DesiredSubscription) Key() RoutingKey {
	return RoutingKey{ProjectID: d.Project.ID, EventType: d.EventType}
}

// Subscription is a service hook subscription as returned by Azure DevOps.
type Subscription struct {
	ID              string                `json:"id"`
	EventType       EventType             `json:"eventType"`
	PublisherID     string                `json:"publisherId,omitempty"`
	PublisherInputs SubscriptionPublisher `json:"publisherInputs"`
	ConsumerInputs  SubscriptionConsumer  `json:"consumerInputs"`
}

// SubscriptionPublisher holds the publisher inputs the reconciler relies on.
type SubscriptionPublisher struct {
	ProjectID string `json:"projectId"`
}

// SubscriptionConsumer holds the consumer inputs the reconciler relies on.
type SubscriptionConsumer struct {
	URL string `json:"url"`
}

// Key returns the routing key of the existing subscription.
func (s Subscription) Key() RoutingKey {
	return RoutingKey{ProjectID: s.PublisherInputs.ProjectID, EventType: s.EventType}
}

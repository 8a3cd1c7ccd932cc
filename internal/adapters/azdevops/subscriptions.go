package azdevops

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/fr0stylo/ddhooks/internal/app/domain"
)

const (
	ConsumerWebHooks   = "webHooks"
	ConsumerActionHTTP = "httpRequest"
	ResourceVersion    = "1.0"
)

type inputCondition struct {
	InputID    string `json:"inputId"`
	InputValue string `json:"inputValue"`
	Operator   string `json:"operator"`
}

type inputFilter struct {
	Conditions []inputCondition `json:"conditions"`
}

type subscriptionsQuery struct {
	ConsumerID           string        `json:"consumerId"`
	ConsumerInputFilters []inputFilter `json:"consumerInputFilters"`
}

type subscriptionsQueryResult struct {
	Results []domain.Subscription `json:"results"`
}

// SubscriptionRequest is the registration body of a webhook subscription.
type SubscriptionRequest struct {
	PublisherID      string            `json:"publisherId"`
	EventType        string            `json:"eventType"`
	ResourceVersion  string            `json:"resourceVersion"`
	ConsumerID       string            `json:"consumerId"`
	ConsumerActionID string            `json:"consumerActionId"`
	PublisherInputs  map[string]string `json:"publisherInputs"`
	ConsumerInputs   map[string]string `json:"consumerInputs"`
}

// NewWebhookSubscription builds the registration body for one project and
// event type delivering to webhookURL with the given header line.
func NewWebhookSubscription(project domain.Project, eventType domain.EventType, webhookURL, httpHeaders string) SubscriptionRequest {
	return SubscriptionRequest{
		PublisherID:      eventType.Publisher(),
		EventType:        eventType.String(),
		ResourceVersion:  ResourceVersion,
		ConsumerID:       ConsumerWebHooks,
		ConsumerActionID: ConsumerActionHTTP,
		PublisherInputs:  map[string]string{"projectId": project.ID},
		ConsumerInputs: map[string]string{
			"url":         webhookURL,
			"httpHeaders": httpHeaders,
		},
	}
}

// QuerySubscriptions returns every webhook subscription of the organization
// whose consumer url equals webhookURL.
func (c *Client) QuerySubscriptions(ctx context.Context, webhookURL string) ([]domain.Subscription, error) {
	query := subscriptionsQuery{
		ConsumerID: ConsumerWebHooks,
		ConsumerInputFilters: []inputFilter{{
			Conditions: []inputCondition{{InputID: "url", InputValue: webhookURL, Operator: "equals"}},
		}},
	}
	var result subscriptionsQueryResult
	if _, err := c.do(ctx, "query_subscriptions", http.MethodPost, c.orgURL("/_apis/hooks/subscriptionsquery", nil), query, &result); err != nil {
		return nil, err
	}
	return result.Results, nil
}

// CreateSubscription registers a subscription and returns its id.
func (c *Client) CreateSubscription(ctx context.Context, request SubscriptionRequest) (string, error) {
	var created struct {
		ID string `json:"id"`
	}
	if _, err := c.do(ctx, "create_subscription", http.MethodPost, c.orgURL("/_apis/hooks/subscriptions", nil), request, &created); err != nil {
		return "", err
	}
	return created.ID, nil
}

// DeleteSubscription removes a subscription. Any 2xx answer is success.
func (c *Client) DeleteSubscription(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("azure devops delete_subscription: empty subscription id")
	}
	_, err := c.do(ctx, "delete_subscription", http.MethodDelete, c.orgURL("/_apis/hooks/subscriptions/"+url.PathEscape(id), nil), nil, nil)
	return err
}

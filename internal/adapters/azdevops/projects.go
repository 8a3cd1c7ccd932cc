package azdevops

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/fr0stylo/ddhooks/internal/app/domain"
)

type projectsPage struct {
	Count                int              `json:"count"`
	Value                []domain.Project `json:"value"`
	ContinuationToken    string           `json:"continuationToken"`
	ContinuationTokenAlt string           `json:"continuation_token"`
}

// ListProjects returns every project of the organization, following
// continuation tokens until the last page. Order is the listing order.
func (c *Client) ListProjects(ctx context.Context) ([]domain.Project, error) {
	var projects []domain.Project
	var token string
	seen := map[string]bool{}
	for {
		query := url.Values{}
		if token != "" {
			query.Set("continuationToken", token)
		}

		var page projectsPage
		header, err := c.do(ctx, "list_projects", http.MethodGet, c.orgURL("/_apis/projects", query), nil, &page)
		if err != nil {
			return nil, err
		}
		projects = append(projects, page.Value...)

		token = nextContinuationToken(header, page)
		if token == "" {
			return projects, nil
		}
		if seen[token] {
			return nil, fmt.Errorf("azure devops list_projects: continuation token %q repeated", token)
		}
		seen[token] = true
	}
}

func nextContinuationToken(header http.Header, page projectsPage) string {
	if token := strings.TrimSpace(header.Get(continuationHeader)); token != "" {
		return token
	}
	if token := strings.TrimSpace(page.ContinuationToken); token != "" {
		return token
	}
	return strings.TrimSpace(page.ContinuationTokenAlt)
}

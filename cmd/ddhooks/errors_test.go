package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fr0stylo/ddhooks/internal/app/domain"
)

func TestRenderError(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "azure token",
			err:  fmt.Errorf("list projects: %w", domain.RemoteError(domain.ServiceAzureDevOps, "list_projects", 203, "<html>")),
			want: "Invalid Azure DevOps token! Please check that your Azure DevOps token is valid and has admin access to the organization.",
		},
		{
			name: "datadog key",
			err:  domain.RemoteError(domain.ServiceDatadog, "validate", 403, ` {"errors":["Forbidden"]} `),
			want: "Invalid Datadog API key! Please check your Datadog site and API key.\n403 {\"errors\":[\"Forbidden\"]}",
		},
		{
			name: "azure remote",
			err:  domain.RemoteError(domain.ServiceAzureDevOps, "create_subscription", 500, "boom"),
			want: "500 error from Azure DevOps API: boom",
		},
		{
			name: "datadog remote",
			err:  domain.RemoteError(domain.ServiceDatadog, "validate", 502, "bad gateway"),
			want: "Error validating Datadog API key!\n502 bad gateway",
		},
		{
			name: "configuration",
			err:  domain.ConfigurationError("AZURE_DEVOPS_TOKEN is not set in your environment."),
			want: "AZURE_DEVOPS_TOKEN is not set in your environment.",
		},
		{
			name: "declined",
			err:  domain.UserDeclined(),
			want: "Exiting.",
		},
		{
			name: "transport",
			err:  errors.New("dial tcp: connection refused"),
			want: "dial tcp: connection refused",
		},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := renderError(tc.err); got != tc.want {
				t.Fatalf("renderError() = %q, want %q", got, tc.want)
			}
		})
	}
}

package datadog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fr0stylo/ddhooks/internal/app/domain"
)

func TestValidateSendsAPIKeyHeader(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/validate" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("DD-API-KEY"); got != "key" {
			t.Errorf("unexpected api key header: %s", got)
		}
		_, _ = w.Write([]byte(`{"valid":true}`))
	}))
	defer srv.Close()

	client := NewClient("datadoghq.com", "key", WithAPIBaseURL(srv.URL), WithHTTPClient(srv.Client()))
	if err := client.Validate(context.Background()); err != nil {
		t.Fatalf("Validate error = %v", err)
	}
}

func TestValidateClassifiesFailures(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		status int
		kind   domain.ErrorKind
	}{
		{name: "forbidden", status: http.StatusForbidden, kind: domain.KindCredential},
		{name: "unauthorized", status: http.StatusUnauthorized, kind: domain.KindCredential},
		{name: "server error", status: http.StatusBadGateway, kind: domain.KindRemote},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, `{"errors":["Forbidden"]}`, tc.status)
			}))
			defer srv.Close()

			client := NewClient("datadoghq.com", "bad", WithAPIBaseURL(srv.URL), WithHTTPClient(srv.Client()))
			err := client.Validate(context.Background())
			if !domain.IsKind(err, tc.kind) {
				t.Fatalf("expected %s error, got %v", tc.kind, err)
			}
		})
	}
}

func TestClientDerivesURLsFromSite(t *testing.T) {
	t.Parallel()

	client := NewClient(" datadoghq.eu ", "key")
	if client.Site() != "datadoghq.eu" {
		t.Fatalf("unexpected site: %q", client.Site())
	}
	if client.WebhookURL() != "https://webhook-intake.datadoghq.eu/api/v2/webhook" {
		t.Fatalf("unexpected webhook url: %s", client.WebhookURL())
	}
	if client.HTTPHeaders() != "dd-api-key: key" {
		t.Fatalf("unexpected header line: %s", client.HTTPHeaders())
	}
}

// Package datadog knows the Datadog sites, the webhook intake URL of each
// site, and how to validate an API key against a site.
package datadog

import (
	"fmt"
	"strings"
)

const DefaultSite = "datadoghq.com"

var sites = [...]string{
	"datadoghq.com",
	"datadoghq.eu",
	"ap1.datadoghq.com",
	"us3.datadoghq.com",
	"us5.datadoghq.com",
	"datad0g.com",
}

// Sites returns the accepted site names.
func Sites() []string {
	out := make([]string, len(sites))
	copy(out, sites[:])
	return out
}

func ValidSite(site string) bool {
	for _, candidate := range sites {
		if candidate == site {
			return true
		}
	}
	return false
}

// WebhookURL is the intake endpoint every managed subscription delivers to.
func WebhookURL(site string) string {
	return fmt.Sprintf("https://webhook-intake.%s/api/v2/webhook", strings.TrimSpace(site))
}

func APIBaseURL(site string) string {
	return fmt.Sprintf("https://api.%s", strings.TrimSpace(site))
}

// HTTPHeaders renders the header line Azure DevOps attaches to each delivery.
func HTTPHeaders(apiKey string) string {
	return "dd-api-key: " + apiKey
}

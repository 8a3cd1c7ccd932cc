package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fr0stylo/ddhooks/internal/app/domain"
)

// renderError turns a failed run into the operator-facing message.
func renderError(err error) string {
	var domainErr *domain.Error
	if !errors.As(err, &domainErr) {
		return err.Error()
	}

	switch domainErr.Kind {
	case domain.KindConfiguration:
		return domainErr.Message
	case domain.KindUserDeclined:
		return "Exiting."
	case domain.KindCredential:
		if domainErr.Service == domain.ServiceDatadog {
			return fmt.Sprintf("Invalid Datadog API key! Please check your Datadog site and API key.\n%d %s", domainErr.StatusCode, strings.TrimSpace(domainErr.Body))
		}
		return "Invalid Azure DevOps token! Please check that your Azure DevOps token is valid and has admin access to the organization."
	case domain.KindRemote:
		if domainErr.Service == domain.ServiceDatadog {
			return fmt.Sprintf("Error validating Datadog API key!\n%d %s", domainErr.StatusCode, strings.TrimSpace(domainErr.Body))
		}
		return fmt.Sprintf("%d error from Azure DevOps API: %s", domainErr.StatusCode, strings.TrimSpace(domainErr.Body))
	default:
		return err.Error()
	}
}

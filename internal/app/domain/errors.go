package domain

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrorKind tags the failure classes the workflow distinguishes.
type ErrorKind int

const (
	KindConfiguration ErrorKind = iota + 1
	KindCredential
	KindRemote
	KindUserDeclined
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindCredential:
		return "credential"
	case KindRemote:
		return "remote"
	case KindUserDeclined:
		return "user_declined"
	default:
		return "unknown"
	}
}

// Remote services a RemoteError can originate from.
const (
	ServiceAzureDevOps = "azure_devops"
	ServiceDatadog     = "datadog"
)

// Error is the single tagged error type raised by the core. Service,
// Operation, StatusCode and Body are set for credential and remote failures.
type Error struct {
	Kind       ErrorKind
	Message    string
	Service    string
	Operation  string
	StatusCode int
	Body       string
	Err        error
}

func (e *Error) Error() string {
	var b strings.Builder
	if e.Message != "" {
		b.WriteString(e.Message)
	} else {
		b.WriteString(e.Kind.String() + " error")
	}
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, ": status=%d", e.StatusCode)
		if body := strings.TrimSpace(e.Body); body != "" {
			fmt.Fprintf(&b, " body=%s", body)
		}
	}
	if e.Err != nil {
		b.WriteString(": " + e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ConfigurationError reports a missing or invalid required input.
func ConfigurationError(format string, args ...any) *Error {
	return &Error{Kind: KindConfiguration, Message: fmt.Sprintf(format, args...)}
}

// UserDeclined reports a non-affirmative confirmation answer.
func UserDeclined() *Error {
	return &Error{Kind: KindUserDeclined, Message: "confirmation declined"}
}

// RemoteError classifies a non-2xx response. Azure DevOps answers a rejected
// token with 401, 403 or a 203 login redirect; Datadog answers a rejected
// key with 401 or 403. Those become credential errors.
func RemoteError(service, operation string, statusCode int, body string) *Error {
	kind := KindRemote
	if isCredentialStatus(service, statusCode) {
		kind = KindCredential
	}
	return &Error{
		Kind:       kind,
		Message:    fmt.Sprintf("%s %s failed", service, operation),
		Service:    service,
		Operation:  operation,
		StatusCode: statusCode,
		Body:       body,
	}
}

func isCredentialStatus(service string, statusCode int) bool {
	switch statusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return true
	case http.StatusNonAuthoritativeInfo:
		return service == ServiceAzureDevOps
	default:
		return false
	}
}

// KindOf returns the kind of the first *Error in err's chain, or 0.
func KindOf(err error) ErrorKind {
	var target *Error
	if errors.As(err, &target) {
		return target.Kind
	}
	return 0
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind ErrorKind) bool {
	return err != nil && KindOf(err) == kind
}

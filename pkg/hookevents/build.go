// Package hookevents encodes applied service hook mutations as CloudEvents
// JSON documents.
package hookevents

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	ceevent "github.com/cloudevents/sdk-go/v2/event"
	"github.com/google/uuid"
)

// Build returns the CloudEvent for m. The event id is random, the subject is
// the hook id and the source identifies the organization.
func Build(m Mutation) (ceevent.Event, error) {
	eventType, err := TypeFor(m.Action)
	if err != nil {
		return ceevent.Event{}, err
	}
	organization := strings.TrimSpace(m.Organization)
	if organization == "" {
		return ceevent.Event{}, errors.New("organization is required")
	}
	hookID := strings.TrimSpace(m.HookID)
	if hookID == "" {
		return ceevent.Event{}, errors.New("hook id is required")
	}
	when := m.Time
	if when.IsZero() {
		when = time.Now()
	}

	event := ceevent.New()
	event.SetID(uuid.NewString())
	event.SetType(eventType)
	event.SetSource(Source(organization))
	event.SetSubject(hookID)
	event.SetTime(when.UTC())
	if runID := strings.TrimSpace(m.RunID); runID != "" {
		event.SetExtension(runIDExtension, runID)
	}
	if err := event.SetData(ceevent.ApplicationJSON, payload{
		Organization: organization,
		ProjectID:    strings.TrimSpace(m.ProjectID),
		ProjectName:  strings.TrimSpace(m.ProjectName),
		EventType:    strings.TrimSpace(m.EventType),
		HookID:       hookID,
	}); err != nil {
		return ceevent.Event{}, fmt.Errorf("set event data: %w", err)
	}
	if err := event.Validate(); err != nil {
		return ceevent.Event{}, fmt.Errorf("invalid cloud event: %w", err)
	}
	return event, nil
}

// Encode builds the event for m and renders it in structured JSON mode.
func Encode(m Mutation) ([]byte, string, error) {
	event, err := Build(m)
	if err != nil {
		return nil, "", err
	}
	body, err := json.Marshal(event)
	if err != nil {
		return nil, "", err
	}
	return body, event.ID(), nil
}

// Decode parses a structured JSON CloudEvent back into a Mutation.
func Decode(body []byte) (Mutation, error) {
	var event ceevent.Event
	if err := json.Unmarshal(body, &event); err != nil {
		return Mutation{}, fmt.Errorf("parse cloud event: %w", err)
	}
	action, err := actionForType(event.Type())
	if err != nil {
		return Mutation{}, err
	}
	var data payload
	if err := event.DataAs(&data); err != nil {
		return Mutation{}, fmt.Errorf("parse cloud event data: %w", err)
	}
	m := Mutation{
		Action:       action,
		Organization: data.Organization,
		ProjectID:    data.ProjectID,
		ProjectName:  data.ProjectName,
		EventType:    data.EventType,
		HookID:       data.HookID,
		Time:         event.Time(),
	}
	if value, ok := event.Extensions()[runIDExtension]; ok {
		m.RunID = fmt.Sprint(value)
	}
	return m, nil
}

// Source is the CloudEvents source of mutations in one organization.
func Source(organization string) string {
	return "https://dev.azure.com/" + url.PathEscape(organization)
}

// TypeFor maps a mutation action to its CloudEvents type.
func TypeFor(action string) (string, error) {
	switch strings.TrimSpace(action) {
	case ActionCreated:
		return TypeCreated, nil
	case ActionDeleted:
		return TypeDeleted, nil
	default:
		return "", fmt.Errorf("unsupported mutation action %q", action)
	}
}

func actionForType(eventType string) (string, error) {
	switch eventType {
	case TypeCreated:
		return ActionCreated, nil
	case TypeDeleted:
		return ActionDeleted, nil
	default:
		return "", fmt.Errorf("unsupported event type %q", eventType)
	}
}

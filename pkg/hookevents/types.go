package hookevents

import "time"

const (
	TypeCreated = "com.datadoghq.azdevops.servicehook.created"
	TypeDeleted = "com.datadoghq.azdevops.servicehook.deleted"

	ActionCreated = "created"
	ActionDeleted = "deleted"

	runIDExtension = "ddhooksrunid"
)

// Mutation describes one applied change to an Azure DevOps service hook.
type Mutation struct {
	RunID        string
	Action       string
	Organization string
	ProjectID    string
	ProjectName  string
	EventType    string
	HookID       string
	Time         time.Time
}

type payload struct {
	Organization string `json:"organization"`
	ProjectID    string `json:"projectId,omitempty"`
	ProjectName  string `json:"projectName,omitempty"`
	EventType    string `json:"eventType"`
	HookID       string `json:"hookId"`
}

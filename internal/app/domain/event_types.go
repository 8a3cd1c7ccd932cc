package domain

import "strings"

// EventType is an Azure DevOps service hook event identifier.
type EventType string

const (
	EventPullRequestCreated      EventType = "git.pullrequest.created"
	EventPullRequestUpdated      EventType = "git.pullrequest.updated"
	EventPush                    EventType = "git.push"
	EventPipelineRunStateChanged EventType = "ms.vss-pipelines.run-state-changed-event"
	EventPipelineStageChanged    EventType = "ms.vss-pipelines.stage-state-changed-event"
	EventPipelineJobChanged      EventType = "ms.vss-pipelines.job-state-changed-event"
	EventApprovalPending         EventType = "ms.vss-pipelinechecks-events.approval-pending"
	EventApprovalCompleted       EventType = "ms.vss-pipelinechecks-events.approval-completed"
	EventBuildComplete           EventType = "build.complete"
)

const (
	PublisherPipelines = "pipelines"
	PublisherDefault   = "tfs"
)

var pipelinePublisherPrefixes = [...]string{
	"ms.vss-pipelines.",
	"ms.vss-pipelinechecks-events.",
}

var requiredEventTypes = [...]EventType{
	EventPullRequestCreated,
	EventPullRequestUpdated,
	EventPush,
	EventPipelineRunStateChanged,
	EventPipelineStageChanged,
	EventPipelineJobChanged,
	EventApprovalPending,
	EventApprovalCompleted,
	EventBuildComplete,
}

// RequiredEventTypes returns the event types Datadog needs on every project,
// in declared order. Each call returns a fresh copy.
func RequiredEventTypes() []EventType {
	out := make([]EventType, len(requiredEventTypes))
	copy(out, requiredEventTypes[:])
	return out
}

// Publisher resolves the service hook publisher that emits the event type.
func (e EventType) Publisher() string {
	for _, prefix := range pipelinePublisherPrefixes {
		if strings.HasPrefix(string(e), prefix) {
			return PublisherPipelines
		}
	}
	return PublisherDefault
}

func (e EventType) String() string {
	return string(e)
}

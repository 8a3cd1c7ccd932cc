package domain

import "testing"

func TestRequiredEventTypesPublisher(t *testing.T) {
	t.Parallel()

	expected := map[EventType]string{
		EventPullRequestCreated:      PublisherDefault,
		EventPullRequestUpdated:      PublisherDefault,
		EventPush:                    PublisherDefault,
		EventPipelineRunStateChanged: PublisherPipelines,
		EventPipelineStageChanged:    PublisherPipelines,
		EventPipelineJobChanged:      PublisherPipelines,
		EventApprovalPending:         PublisherPipelines,
		EventApprovalCompleted:       PublisherPipelines,
		EventBuildComplete:           PublisherDefault,
	}

	types := RequiredEventTypes()
	if len(types) != 9 {
		t.Fatalf("expected 9 required event types, got %d", len(types))
	}
	for _, eventType := range types {
		want, ok := expected[eventType]
		if !ok {
			t.Fatalf("unexpected event type %q", eventType)
		}
		if got := eventType.Publisher(); got != want {
			t.Fatalf("publisher for %q = %q, want %q", eventType, got, want)
		}
	}
}

func TestPublisherRequiresFullNamespacePrefix(t *testing.T) {
	t.Parallel()

	cases := map[EventType]string{
		"ms.vss-pipelines.anything":           PublisherPipelines,
		"ms.vss-pipelinechecks-events.custom": PublisherPipelines,
		"ms.vss-pipelines":                    PublisherDefault,
		"ms.vss-code.git-pullrequest-comment": PublisherDefault,
		"":                                    PublisherDefault,
	}
	for eventType, want := range cases {
		if got := eventType.Publisher(); got != want {
			t.Fatalf("publisher for %q = %q, want %q", eventType, got, want)
		}
	}
}

func TestRequiredEventTypesReturnsCopy(t *testing.T) {
	t.Parallel()

	first := RequiredEventTypes()
	first[0] = "mutated"

	second := RequiredEventTypes()
	if second[0] != EventPullRequestCreated {
		t.Fatalf("required event types were mutated through a returned slice: %q", second[0])
	}
}

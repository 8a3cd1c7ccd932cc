package observability

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"
)

const maxSamplesPerOperation = 512

// LatencyStats summarizes the observed durations of one remote operation.
type LatencyStats struct {
	Name  string
	Count int
	P50   time.Duration
	P95   time.Duration
	Max   time.Duration
}

// LatencyTracker keeps a bounded window of durations per operation name.
// A nil tracker ignores observations.
type LatencyTracker struct {
	mu      sync.Mutex
	samples map[string][]time.Duration
}

func NewLatencyTracker() *LatencyTracker {
	return &LatencyTracker{samples: make(map[string][]time.Duration)}
}

func (t *LatencyTracker) Observe(name string, duration time.Duration) {
	if t == nil {
		return
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = "unknown"
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	window := append(t.samples[name], duration)
	if len(window) > maxSamplesPerOperation {
		window = window[len(window)-maxSamplesPerOperation:]
	}
	t.samples[name] = window
}

// Snapshot returns per-operation stats, slowest p95 first.
func (t *LatencyTracker) Snapshot() []LatencyStats {
	if t == nil {
		return nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	stats := make([]LatencyStats, 0, len(t.samples))
	for name, durations := range t.samples {
		if len(durations) == 0 {
			continue
		}
		sorted := make([]time.Duration, len(durations))
		copy(sorted, durations)
		sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

		stats = append(stats, LatencyStats{
			Name:  name,
			Count: len(sorted),
			P50:   sorted[(len(sorted)-1)/2],
			P95:   sorted[int(float64(len(sorted)-1)*0.95)],
			Max:   sorted[len(sorted)-1],
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].P95 == stats[j].P95 {
			return stats[i].Name < stats[j].Name
		}
		return stats[i].P95 > stats[j].P95
	})

	return stats
}

// LogSummary writes one debug record per tracked operation.
func (t *LatencyTracker) LogSummary(ctx context.Context, log *slog.Logger) {
	for _, stat := range t.Snapshot() {
		log.DebugContext(ctx, "remote call latency",
			"operation", stat.Name,
			"count", stat.Count,
			"p50", stat.P50.String(),
			"p95", stat.P95.String(),
			"max", stat.Max.String(),
		)
	}
}

package metrics

import (
	"sync"
	"time"
)

type operationStats struct {
	calls           int
	errors          int
	outcomes        map[string]int
	lastCallLatency time.Duration
}

// Recorder captures in-memory metrics about upstream calls and mirrors them
// to OpenTelemetry instruments when configured.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*operationStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*operationStats),
		otel:  otel,
	}
}

// RecordUpstreamCall counts one upstream call for an operation and stores its latency and outcome.
func (r *Recorder) RecordUpstreamCall(operation, outcome string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.stats[operation]
	if !ok {
		stats = &operationStats{outcomes: make(map[string]int)}
		r.stats[operation] = stats
	}
	stats.calls++
	stats.lastCallLatency = duration
	if outcome != "" {
		stats.outcomes[outcome]++
	}
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordUpstreamCall(operation, outcome, duration, err)
	}
}

// Calls returns the total upstream calls recorded for an operation.
func (r *Recorder) Calls(operation string) int {
	return r.Snapshot(operation).Calls
}

// Errors returns the failed upstream calls recorded for an operation.
func (r *Recorder) Errors(operation string) int {
	return r.Snapshot(operation).Errors
}

// LastCallLatency returns the last recorded latency for an operation.
func (r *Recorder) LastCallLatency(operation string) time.Duration {
	return r.Snapshot(operation).LastCallLatency
}

// Snapshot is a copy of the stats recorded for one operation.
type Snapshot struct {
	Calls           int
	Errors          int
	Outcomes        map[string]int
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(operation string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[operation]
	if !ok || stats == nil {
		return Snapshot{}
	}
	outcomes := make(map[string]int, len(stats.outcomes))
	for k, v := range stats.outcomes {
		outcomes[k] = v
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		Outcomes:        outcomes,
		LastCallLatency: stats.lastCallLatency,
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

package metrics

import (
	"sync"
	"time"
)

type upstreamStats struct {
	calls           int
	errors          int
	lastCallLatency time.Duration
}

type toolStats struct {
	calls      int
	toolErrors int
}

// Recorder captures lightweight, in-memory metrics about upstream statsapi
// calls and tool invocations. It is intentionally simple so it can be swapped
// for a real backend later.
type Recorder struct {
	mu       sync.Mutex
	upstream map[string]*upstreamStats
	tools    map[string]*toolStats
	otel     *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		upstream: make(map[string]*upstreamStats),
		tools:    make(map[string]*toolStats),
		otel:     otel,
	}
}

// RecordUpstreamCall increments counters for one statsapi call and stores the
// last observed latency.
func (r *Recorder) RecordUpstreamCall(endpoint string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.upstream[endpoint]
	if !ok {
		stats = &upstreamStats{}
		r.upstream[endpoint] = stats
	}
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordUpstreamCall(endpoint, duration, err)
	}
}

// RecordToolCall tracks one tool invocation. toolErr marks invocations that
// produced an error envelope, not transport failures.
func (r *Recorder) RecordToolCall(tool string, duration time.Duration, toolErr bool) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.tools[tool]
	if !ok {
		stats = &toolStats{}
		r.tools[tool] = stats
	}
	stats.calls++
	if toolErr {
		stats.toolErrors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordToolCall(tool, duration, toolErr)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// UpstreamSnapshot is a copy of the current stats for one endpoint.
type UpstreamSnapshot struct {
	Calls           int
	Errors          int
	LastCallLatency time.Duration
}

func (r *Recorder) UpstreamCalls(endpoint string) int {
	return r.Upstream(endpoint).Calls
}

func (r *Recorder) UpstreamErrors(endpoint string) int {
	return r.Upstream(endpoint).Errors
}

func (r *Recorder) Upstream(endpoint string) UpstreamSnapshot {
	if r == nil {
		return UpstreamSnapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.upstream[endpoint]
	if !ok || stats == nil {
		return UpstreamSnapshot{}
	}
	return UpstreamSnapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		LastCallLatency: stats.lastCallLatency,
	}
}

// ToolSnapshot is a copy of the current stats for one tool.
type ToolSnapshot struct {
	Calls      int
	ToolErrors int
}

func (r *Recorder) Tool(tool string) ToolSnapshot {
	if r == nil {
		return ToolSnapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.tools[tool]
	if !ok || stats == nil {
		return ToolSnapshot{}
	}
	return ToolSnapshot{Calls: stats.calls, ToolErrors: stats.toolErrors}
}

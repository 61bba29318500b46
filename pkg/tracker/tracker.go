package tracker

import (
	"sync"
	"sync/atomic"
)

// Tracker counts generation-service calls per provider and branch outcomes
// per pipeline stage. A nil *Tracker is valid and records nothing.
type Tracker struct {
	mu     sync.RWMutex
	stats  map[string]*ProviderStats
	stages map[string]*StageStats
}

// ProviderStats holds metrics for a specific provider.
// Fields are accessed atomically.
type ProviderStats struct {
	APISuccess    int64
	APIFailures   int64
	APIZeroResult int64
}

// StageStats counts which branch produced a stage result.
type StageStats struct {
	Generated int64 // generative branch succeeded
	Fallback  int64 // heuristic branch used
	Degraded  int64 // minimal plan after an internal failure
}

// Snapshot is a point-in-time copy of all counters.
type Snapshot struct {
	Providers map[string]ProviderStats
	Stages    map[string]StageStats
}

// New creates a new Tracker.
func New() *Tracker {
	return &Tracker{
		stats:  make(map[string]*ProviderStats),
		stages: make(map[string]*StageStats),
	}
}

func (t *Tracker) getStats(provider string) *ProviderStats {
	t.mu.RLock()
	s, ok := t.stats[provider]
	t.mu.RUnlock()
	if ok {
		return s
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if s, ok = t.stats[provider]; ok {
		return s
	}
	s = &ProviderStats{}
	t.stats[provider] = s
	return s
}

func (t *Tracker) getStage(stage string) *StageStats {
	t.mu.RLock()
	s, ok := t.stages[stage]
	t.mu.RUnlock()
	if ok {
		return s
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if s, ok = t.stages[stage]; ok {
		return s
	}
	s = &StageStats{}
	t.stages[stage] = s
	return s
}

func (t *Tracker) TrackAPISuccess(provider string) {
	if t == nil {
		return
	}
	atomic.AddInt64(&t.getStats(provider).APISuccess, 1)
}

func (t *Tracker) TrackAPIFailure(provider string) {
	if t == nil {
		return
	}
	atomic.AddInt64(&t.getStats(provider).APIFailures, 1)
}

// TrackAPIZero counts a successful call whose output was unusable.
func (t *Tracker) TrackAPIZero(provider string) {
	if t == nil {
		return
	}
	atomic.AddInt64(&t.getStats(provider).APIZeroResult, 1)
}

func (t *Tracker) TrackGenerated(stage string) {
	if t == nil {
		return
	}
	atomic.AddInt64(&t.getStage(stage).Generated, 1)
}

func (t *Tracker) TrackFallback(stage string) {
	if t == nil {
		return
	}
	atomic.AddInt64(&t.getStage(stage).Fallback, 1)
}

func (t *Tracker) TrackDegraded(stage string) {
	if t == nil {
		return
	}
	atomic.AddInt64(&t.getStage(stage).Degraded, 1)
}

// Snapshot returns a copy of the current stats.
func (t *Tracker) Snapshot() Snapshot {
	out := Snapshot{
		Providers: make(map[string]ProviderStats),
		Stages:    make(map[string]StageStats),
	}
	if t == nil {
		return out
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	for k, v := range t.stats {
		out.Providers[k] = ProviderStats{
			APISuccess:    atomic.LoadInt64(&v.APISuccess),
			APIFailures:   atomic.LoadInt64(&v.APIFailures),
			APIZeroResult: atomic.LoadInt64(&v.APIZeroResult),
		}
	}
	for k, v := range t.stages {
		out.Stages[k] = StageStats{
			Generated: atomic.LoadInt64(&v.Generated),
			Fallback:  atomic.LoadInt64(&v.Fallback),
			Degraded:  atomic.LoadInt64(&v.Degraded),
		}
	}
	return out
}

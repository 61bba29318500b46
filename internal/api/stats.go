package api

import (
	"net/http"

	"reelsmith/pkg/tracker"
)

// StatsHandler reports generation-service and stage counters.
type StatsHandler struct {
	tracker     *tracker.Tracker
	llmFallback []string
}

// NewStatsHandler creates a StatsHandler. fallback is the configured
// provider order.
func NewStatsHandler(t *tracker.Tracker, fallback []string) *StatsHandler {
	return &StatsHandler{tracker: t, llmFallback: fallback}
}

// ProviderStatsDTO is one provider's counters.
type ProviderStatsDTO struct {
	APISuccess    int64 `json:"api_success"`
	APIZeroResult int64 `json:"api_zero"`
	APIFailures   int64 `json:"api_errors"`
	SuccessRate   int64 `json:"success_rate"` // percent of calls with usable output
}

// StageStatsDTO is one stage's branch counters.
type StageStatsDTO struct {
	Generated int64 `json:"generated"`
	Fallback  int64 `json:"fallback"`
	Degraded  int64 `json:"degraded"`
}

// StatsResponse is the /api/stats payload.
type StatsResponse struct {
	Providers   map[string]ProviderStatsDTO `json:"providers"`
	Stages      map[string]StageStatsDTO    `json:"stages"`
	LLMFallback []string                    `json:"llm_fallback"`
}

func (h *StatsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	snapshot := h.tracker.Snapshot()

	resp := StatsResponse{
		Providers:   make(map[string]ProviderStatsDTO, len(snapshot.Providers)),
		Stages:      make(map[string]StageStatsDTO, len(snapshot.Stages)),
		LLMFallback: h.llmFallback,
	}
	if resp.LLMFallback == nil {
		resp.LLMFallback = []string{}
	}

	for provider, stats := range snapshot.Providers {
		total := stats.APISuccess + stats.APIZeroResult + stats.APIFailures
		rate := int64(0)
		if total > 0 {
			rate = (stats.APISuccess * 100) / total
		}
		resp.Providers[provider] = ProviderStatsDTO{
			APISuccess:    stats.APISuccess,
			APIZeroResult: stats.APIZeroResult,
			APIFailures:   stats.APIFailures,
			SuccessRate:   rate,
		}
	}
	for stage, stats := range snapshot.Stages {
		resp.Stages[stage] = StageStatsDTO{
			Generated: stats.Generated,
			Fallback:  stats.Fallback,
			Degraded:  stats.Degraded,
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

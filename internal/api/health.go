package api

import (
	"net/http"
	"time"

	"reelsmith/pkg/version"
)

// HealthHandler reports liveness and whether the generative branch is wired.
type HealthHandler struct {
	generative bool
	strategies map[string]string
	now        func() time.Time
}

// HealthResponse is the /health payload.
type HealthResponse struct {
	Status     string            `json:"status"`
	Timestamp  string            `json:"timestamp"`
	Generative bool              `json:"generative_available"`
	Strategies map[string]string `json:"strategies"`
	Version    string            `json:"version"`
}

// NewHealthHandler creates a HealthHandler. strategies maps stage name to
// its configured strategy.
func NewHealthHandler(generative bool, strategies map[string]string) *HealthHandler {
	return &HealthHandler{generative: generative, strategies: strategies, now: time.Now}
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	strategies := h.strategies
	if strategies == nil {
		strategies = map[string]string{}
	}
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:     "healthy",
		Timestamp:  h.now().UTC().Format(time.RFC3339),
		Generative: h.generative,
		Strategies: strategies,
		Version:    currentVersion(),
	})
}

func currentVersion() string {
	return version.Version
}

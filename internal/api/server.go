// Package api serves the pipeline stages over HTTP.
package api

import (
	"log/slog"
	"net/http"
	"time"
)

type route struct {
	pattern string
	handler http.HandlerFunc
}

// IndexResponse lists the registered endpoints.
type IndexResponse struct {
	Message   string   `json:"message"`
	Version   string   `json:"version"`
	Endpoints []string `json:"endpoints"`
}

// NewServer creates a new HTTP server with the pipeline routes registered.
func NewServer(addr string, pipeH *PipelineHandler, statsH *StatsHandler, healthH *HealthHandler, shutdown func()) *http.Server {
	routes := []route{
		{"GET /health", healthH.ServeHTTP},
		{"GET /api/version", handleVersion},
		{"GET /api/stats", statsH.ServeHTTP},
		{"GET /api/sample", handleSample},
		{"POST /api/analyze", pipeH.HandleAnalyze},
		{"POST /api/niche-analysis", pipeH.HandleNicheAnalysis},
		{"POST /api/generate-script", pipeH.HandleGenerateScript},
		{"POST /api/create-visual-plan", pipeH.HandleCreateVisualPlan},
		{"POST /api/full-pipeline", pipeH.HandleFullPipeline},
		{"POST /api/shutdown", shutdownHandler(shutdown)},
	}

	mux := http.NewServeMux()
	endpoints := make([]string, 0, len(routes))
	for _, r := range routes {
		mux.HandleFunc(r.pattern, r.handler)
		endpoints = append(endpoints, r.pattern)
	}
	mux.HandleFunc("GET /{$}", indexHandler(endpoints))

	return &http.Server{
		Addr:         addr,
		Handler:      LoggingMiddleware(mux),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second, // generative runs chain several model calls
		IdleTimeout:  60 * time.Second,
	}
}

func indexHandler(endpoints []string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, IndexResponse{
			Message:   "Reelsmith short-form content pipeline",
			Version:   currentVersion(),
			Endpoints: endpoints,
		})
	}
}

func shutdownHandler(shutdown func()) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("Graceful shutdown initiated via API")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("Shutting down...")); err != nil {
			slog.Error("Failed to write shutdown response", "error", err)
		}
		if shutdown == nil {
			return
		}
		// Let the response flush first.
		go func() {
			time.Sleep(100 * time.Millisecond)
			shutdown()
		}()
	}
}

func handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"version": currentVersion()})
}

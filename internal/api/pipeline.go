package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"reelsmith/pkg/ingest"
	"reelsmith/pkg/model"
)

// maxBodyBytes caps request bodies; video collections are small JSON.
const maxBodyBytes = 8 << 20

// Service is the pipeline surface the handlers need.
type Service interface {
	Analyze(ctx context.Context, req model.AnalysisRequest) (model.InsightSet, error)
	AnalyzeNiche(ctx context.Context, req model.NicheAnalysisRequest) (model.NicheAnalysisResult, error)
	Script(ctx context.Context, req model.ScriptRequest) (model.ScriptPlan, error)
	VisualPlan(ctx context.Context, req model.VisualPlanRequest) model.VisualPlan
	Run(ctx context.Context, req model.PipelineRequest) (model.PipelineResult, error)
}

// PipelineHandler exposes each stage and the full run.
type PipelineHandler struct {
	svc Service
}

// NewPipelineHandler creates a PipelineHandler.
func NewPipelineHandler(svc Service) *PipelineHandler {
	return &PipelineHandler{svc: svc}
}

// ErrorResponse is the body of every non-2xx JSON reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HandleAnalyze runs the analyzer.
func (h *PipelineHandler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req model.AnalysisRequest
	if !decode(w, r, &req) {
		return
	}
	ingest.CleanVideos(req.Videos)
	res, err := h.svc.Analyze(r.Context(), req)
	respond(w, r, res, err)
}

// HandleNicheAnalysis runs the filtered analysis over enriched videos.
func (h *PipelineHandler) HandleNicheAnalysis(w http.ResponseWriter, r *http.Request) {
	var req model.NicheAnalysisRequest
	if !decode(w, r, &req) {
		return
	}
	ingest.CleanNicheVideos(req.Videos)
	res, err := h.svc.AnalyzeNiche(r.Context(), req)
	respond(w, r, res, err)
}

// HandleGenerateScript runs the scriptwriter.
func (h *PipelineHandler) HandleGenerateScript(w http.ResponseWriter, r *http.Request) {
	var req model.ScriptRequest
	if !decode(w, r, &req) {
		return
	}
	res, err := h.svc.Script(r.Context(), req)
	respond(w, r, res, err)
}

// HandleCreateVisualPlan runs the planner. The planner never fails, so
// only decode errors produce a non-200 reply.
func (h *PipelineHandler) HandleCreateVisualPlan(w http.ResponseWriter, r *http.Request) {
	var req model.VisualPlanRequest
	if !decode(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, h.svc.VisualPlan(r.Context(), req))
}

// HandleFullPipeline runs analysis, scripting and planning in one call.
func (h *PipelineHandler) HandleFullPipeline(w http.ResponseWriter, r *http.Request) {
	var req model.PipelineRequest
	if !decode(w, r, &req) {
		return
	}
	ingest.CleanNicheVideos(req.Videos)
	res, err := h.svc.Run(r.Context(), req)
	respond(w, r, res, err)
}

func handleSample(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ingest.Samples())
}

// decode reads a JSON body into v. Unknown fields are ignored. On failure a
// 400 has already been written. Video handlers clean descriptions after
// decoding, as file input does.
func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, r, fmt.Errorf("%w: malformed JSON body: %v", model.ErrInvalidRequest, err))
		return false
	}
	return true
}

func respond(w http.ResponseWriter, r *http.Request, v any, err error) {
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

// StatusFor maps validation errors to 400 and everything else to 500.
func StatusFor(err error) int {
	if errors.Is(err, model.ErrInvalidVideo) || errors.Is(err, model.ErrInvalidRequest) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusFor(err)
	if status == http.StatusInternalServerError {
		slog.Error("Request failed", "path", r.URL.Path, "request_id", RequestID(r.Context()), "error", err)
		writeJSON(w, status, ErrorResponse{Error: "internal server error"})
		return
	}
	slog.Debug("Request rejected", "path", r.URL.Path, "error", err)
	writeJSON(w, status, ErrorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

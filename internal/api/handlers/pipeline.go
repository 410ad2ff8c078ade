package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/RajeshShahu1/walmart-retail-data-pipeline/internal/contracts"
	"github.com/RajeshShahu1/walmart-retail-data-pipeline/pkg/logger"
)

// Runner executes one pipeline pass; satisfied by *pipeline.Runner.
type Runner interface {
	Run(ctx context.Context) (*contracts.RunReport, error)
}

// PipelineHandler exposes the pipeline over HTTP: the last run report
// and a manual trigger. Runs are serialized; concurrent triggers are
// rejected because parallel runs would race on the output files.
type PipelineHandler struct {
	runner Runner
	logger *logger.Logger

	mu         sync.Mutex
	running    bool
	lastReport *contracts.RunReport
}

// NewPipelineHandler creates a new pipeline handler.
func NewPipelineHandler(runner Runner, log *logger.Logger) *PipelineHandler {
	return &PipelineHandler{
		runner: runner,
		logger: log,
	}
}

// Status returns the report of the most recent run.
// GET /api/pipeline/status
func (h *PipelineHandler) Status(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	report := h.lastReport
	running := h.running
	h.mu.Unlock()

	if report == nil && !running {
		respondJSON(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"data":    map[string]interface{}{"state": "never_ran"},
		})
		return
	}

	state := "idle"
	if running {
		state = "running"
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data": map[string]interface{}{
			"state":      state,
			"lastReport": report,
		},
	})
}

// Run triggers a pipeline run.
// POST /api/pipeline/run
func (h *PipelineHandler) Run(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	if h.running {
		h.mu.Unlock()
		respondError(w, http.StatusConflict, "Pipeline run already in progress")
		return
	}
	h.running = true
	h.mu.Unlock()

	report, err := h.runner.Run(r.Context())

	h.mu.Lock()
	h.running = false
	h.lastReport = report
	h.mu.Unlock()

	if err != nil {
		h.logger.WithError(err).Error("Pipeline run failed")
		respondJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"success": false,
			"data":    map[string]interface{}{"report": report},
		})
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    map[string]interface{}{"report": report},
	})
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]interface{}{
		"success": false,
		"error":   message,
	})
}

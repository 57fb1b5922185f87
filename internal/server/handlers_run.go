package server

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/claude/ironplan/internal/runplan"
	"github.com/claude/ironplan/internal/transfer"
	"github.com/go-chi/chi/v5"
)

func (s *Server) handleGetRunPlan(w http.ResponseWriter, r *http.Request) {
	done, total := s.tracker.RunSummary()
	writeJSON(w, http.StatusOK, map[string]any{
		"plan":  s.tracker.RunPlan(),
		"done":  done,
		"total": total,
	})
}

func (s *Server) handleGenerateRunPlan(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Start string `json:"start"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil && err != io.EOF {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	start := time.Now()
	if body.Start != "" {
		parsed, err := time.Parse(runplan.DateFormat, body.Start)
		if err != nil {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": "start must be YYYY-MM-DD"})
			return
		}
		start = parsed
	}

	writeJSON(w, http.StatusCreated, s.tracker.GenerateRunPlan(r.Context(), start))
}

func (s *Server) handleResetRunPlan(w http.ResponseWriter, r *http.Request) {
	s.tracker.ResetRunPlan(r.Context())
	writeJSON(w, http.StatusOK, map[string]string{"status": "reset"})
}

func (s *Server) handleUpdateRunSession(w http.ResponseWriter, r *http.Request) {
	var body struct {
		DistanceKm string `json:"distance_km"`
		TimeMin    string `json:"time_min"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	sess, ok := s.tracker.UpdateRunSession(r.Context(), chi.URLParam(r, "id"), body.DistanceKm, body.TimeMin)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "run session not found"})
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

func (s *Server) handleToggleRunSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.tracker.ToggleRunSession(r.Context(), chi.URLParam(r, "id"))
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "run session not found"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"session": sess,
		"timer":   s.countdown.Snapshot(),
	})
}

func (s *Server) handleExportRun(w http.ResponseWriter, r *http.Request) {
	writeDownload(w, "corrida-5k.json", transfer.NewRunDoc(s.tracker.RunPlan()))
}

func (s *Server) handleImportRun(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "reading body: " + err.Error()})
		return
	}

	doc, err := transfer.DecodeRun(data)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	s.tracker.SetRunPlan(r.Context(), doc.Plan)
	writeJSON(w, http.StatusOK, s.tracker.RunPlan())
}

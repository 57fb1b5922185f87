package server

import (
	"encoding/json"
	"net/http"

	"github.com/claude/ironplan/internal/tracker"
	"github.com/go-chi/chi/v5"
)

func (s *Server) handleListExercises(w http.ResponseWriter, r *http.Request) {
	filter := r.URL.Query().Get("q")
	sortOrder := r.URL.Query().Get("sort")
	writeJSON(w, http.StatusOK, s.tracker.ListExercises(filter, sortOrder))
}

func (s *Server) handleCreateExercise(w http.ResponseWriter, r *http.Request) {
	var in tracker.ExerciseInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	ex, ok := s.tracker.CreateExercise(r.Context(), in)
	if !ok {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": "name and a positive one_rep_max are required"})
		return
	}
	writeJSON(w, http.StatusCreated, ex)
}

func (s *Server) handleUpdateExercise(w http.ResponseWriter, r *http.Request) {
	var in tracker.ExerciseInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	id := chi.URLParam(r, "id")
	if _, found := s.tracker.GetExercise(id); !found {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "exercise not found"})
		return
	}

	ex, ok := s.tracker.UpdateExercise(r.Context(), id, in)
	if !ok {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": "name and a positive one_rep_max are required"})
		return
	}
	writeJSON(w, http.StatusOK, ex)
}

func (s *Server) handleDeleteExercise(w http.ResponseWriter, r *http.Request) {
	if !s.tracker.DeleteExercise(r.Context(), chi.URLParam(r, "id")) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "exercise not found"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (s *Server) handleDuplicateExercise(w http.ResponseWriter, r *http.Request) {
	ex, ok := s.tracker.DuplicateExercise(r.Context(), chi.URLParam(r, "id"))
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "exercise not found"})
		return
	}
	writeJSON(w, http.StatusCreated, ex)
}

func (s *Server) handlePlanPreview(w http.ResponseWriter, r *http.Request) {
	stages, ok := s.tracker.PlanPreview(chi.URLParam(r, "id"))
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "exercise not found"})
		return
	}
	writeJSON(w, http.StatusOK, stages)
}

func (s *Server) handleSeedDemo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusCreated, s.tracker.SeedDemo(r.Context()))
}

func (s *Server) handleResetAll(w http.ResponseWriter, r *http.Request) {
	s.tracker.ResetAll(r.Context())
	s.log.Info("all data reset")
	writeJSON(w, http.StatusOK, map[string]string{"status": "reset"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

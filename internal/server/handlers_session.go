package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/claude/ironplan/internal/tracker"
	"github.com/claude/ironplan/internal/transfer"
	"github.com/go-chi/chi/v5"
)

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")
	writeJSON(w, http.StatusOK, map[string]any{
		"date":  date,
		"items": s.tracker.Session(date),
	})
}

func (s *Server) handleAddItem(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ExerciseID string `json:"exercise_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	item, ok := s.tracker.AddItem(r.Context(), chi.URLParam(r, "date"), body.ExerciseID)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "exercise not found"})
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (s *Server) handleRemoveItem(w http.ResponseWriter, r *http.Request) {
	if !s.tracker.RemoveItem(r.Context(), chi.URLParam(r, "date"), chi.URLParam(r, "itemID")) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "item not found"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "removed"})
}

func (s *Server) handleMoveItem(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Direction string `json:"direction"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if body.Direction != tracker.MoveUp && body.Direction != tracker.MoveDown {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": "direction must be up or down"})
		return
	}

	date := chi.URLParam(r, "date")
	moved := s.tracker.MoveItem(r.Context(), date, chi.URLParam(r, "itemID"), body.Direction)
	writeJSON(w, http.StatusOK, map[string]any{
		"moved": moved,
		"items": s.tracker.Session(date),
	})
}

func (s *Server) handleToggleStage(w http.ResponseWriter, r *http.Request) {
	stageIndex, err := strconv.Atoi(chi.URLParam(r, "stage"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid stage index"})
		return
	}

	done, ok := s.tracker.ToggleStage(r.Context(), chi.URLParam(r, "date"), chi.URLParam(r, "itemID"), stageIndex)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "stage not found"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"done":  done,
		"timer": s.countdown.Snapshot(),
	})
}

func (s *Server) handleClearSession(w http.ResponseWriter, r *http.Request) {
	s.tracker.ClearSession(r.Context(), chi.URLParam(r, "date"))
	writeJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}

func (s *Server) handleFinishSession(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")
	entry, err := s.tracker.FinishSession(r.Context(), date)
	if err != nil {
		if errors.Is(err, tracker.ErrEmptySession) {
			writeJSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"date":  date,
		"entry": entry,
	})
}

func (s *Server) handleExportSession(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")
	doc := transfer.NewSessionDoc(date, s.tracker.Session(date))
	writeDownload(w, "treino-"+date+".json", doc)
}

func (s *Server) handleImportSession(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "reading body: " + err.Error()})
		return
	}

	doc, err := transfer.DecodeSession(data)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	// The file's own date is informational; the items land on the URL date.
	date := chi.URLParam(r, "date")
	s.tracker.ReplaceSession(r.Context(), date, doc.Items)
	writeJSON(w, http.StatusOK, map[string]any{
		"date":  date,
		"items": s.tracker.Session(date),
	})
}

func (s *Server) handleListHistory(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.tracker.History())
}

func (s *Server) handleDeleteHistory(w http.ResponseWriter, r *http.Request) {
	if !s.tracker.DeleteHistory(r.Context(), chi.URLParam(r, "date")) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no history for date"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (s *Server) handleReopenSession(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")
	if !s.tracker.ReopenSession(r.Context(), date) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no history for date"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"date":  date,
		"items": s.tracker.Session(date),
	})
}

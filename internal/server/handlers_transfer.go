package server

import (
	"io"
	"net/http"

	"github.com/claude/ironplan/internal/transfer"
)

func (s *Server) handleExportBundle(w http.ResponseWriter, r *http.Request) {
	writeDownload(w, "ironplan-backup.json", transfer.NewBundleDoc(s.tracker.Export()))
}

func (s *Server) handleImportBundle(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "reading body: " + err.Error()})
		return
	}

	snap, legacy, err := transfer.DecodeBundle(data)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	if snap != nil {
		s.tracker.Import(r.Context(), *snap)
		s.log.Info("bundle imported",
			"exercises", len(snap.Exercises),
			"sessions", len(snap.Sessions),
			"history", len(snap.History),
		)
		writeJSON(w, http.StatusOK, map[string]string{"status": "imported"})
		return
	}

	s.tracker.PrependExercises(r.Context(), legacy)
	s.log.Info("legacy exercise list imported", "exercises", len(legacy))
	writeJSON(w, http.StatusOK, map[string]string{"status": "imported", "format": "legacy"})
}

// writeDownload renders an export document as an attachment with stable
// indentation.
func writeDownload(w http.ResponseWriter, filename string, doc any) {
	data, err := transfer.Encode(doc)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

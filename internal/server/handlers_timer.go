package server

import (
	"encoding/json"
	"net/http"
)

func (s *Server) handleTimerState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.countdown.Snapshot())
}

func (s *Server) handleTimerSet(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Seconds int `json:"seconds"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	s.countdown.SetDuration(body.Seconds)
	writeJSON(w, http.StatusOK, s.countdown.Snapshot())
}

func (s *Server) handleTimerStart(w http.ResponseWriter, r *http.Request) {
	s.countdown.Start()
	writeJSON(w, http.StatusOK, s.countdown.Snapshot())
}

func (s *Server) handleTimerPause(w http.ResponseWriter, r *http.Request) {
	s.countdown.Pause()
	writeJSON(w, http.StatusOK, s.countdown.Snapshot())
}

func (s *Server) handleTimerReset(w http.ResponseWriter, r *http.Request) {
	s.countdown.Reset()
	writeJSON(w, http.StatusOK, s.countdown.Snapshot())
}

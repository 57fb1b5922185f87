// Package transfer encodes and decodes the versioned JSON documents used
// for file export/import: one date's session (session-v1), the run plan
// (run-v1), and the full catalog+session+history bundle (v2, with a legacy
// exercises-only array accepted on import). Decoding validates the version
// tag and document shape up front, so a failed import never touches state.
package transfer

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/claude/ironplan/internal/models"
	"github.com/claude/ironplan/internal/tracker"
)

// ErrInvalidFile reports a document that failed version or shape checks.
// Callers surface it as a single user-visible "invalid file" failure.
var ErrInvalidFile = errors.New("invalid file")

// Document version tags.
const (
	VersionSession = "session-v1"
	VersionRun     = "run-v1"
	VersionBundle  = "v2"
)

// SessionDoc carries one date's item sequence.
type SessionDoc struct {
	Version    string               `json:"version"`
	ExportedAt time.Time            `json:"exported_at"`
	Date       string               `json:"date"`
	Items      []models.SessionItem `json:"items"`
}

// RunDoc carries the run plan singleton. A nil plan is a valid export of
// the "no plan generated" state.
type RunDoc struct {
	Version    string          `json:"version"`
	ExportedAt time.Time       `json:"exported_at"`
	Plan       *models.RunPlan `json:"run_plan"`
}

// BundleDoc carries the full catalog, session map, and history map.
type BundleDoc struct {
	Version    string                          `json:"version"`
	ExportedAt time.Time                       `json:"exported_at"`
	Exercises  []models.Exercise               `json:"exercises"`
	Sessions   map[string][]models.SessionItem `json:"session_by_date"`
	History    map[string]models.HistoryEntry  `json:"history_by_date"`
}

// NewSessionDoc wraps a date's items for export.
func NewSessionDoc(date string, items []models.SessionItem) SessionDoc {
	return SessionDoc{
		Version:    VersionSession,
		ExportedAt: time.Now().UTC(),
		Date:       date,
		Items:      models.CloneItems(items),
	}
}

// NewRunDoc wraps the run plan for export.
func NewRunDoc(plan *models.RunPlan) RunDoc {
	return RunDoc{
		Version:    VersionRun,
		ExportedAt: time.Now().UTC(),
		Plan:       plan,
	}
}

// NewBundleDoc wraps a tracker snapshot for export.
func NewBundleDoc(snap tracker.Snapshot) BundleDoc {
	return BundleDoc{
		Version:    VersionBundle,
		ExportedAt: time.Now().UTC(),
		Exercises:  snap.Exercises,
		Sessions:   snap.Sessions,
		History:    snap.History,
	}
}

// DecodeSession parses and validates a session-v1 document.
func DecodeSession(data []byte) (*SessionDoc, error) {
	var doc SessionDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, ErrInvalidFile
	}
	if doc.Version != VersionSession || doc.Items == nil {
		return nil, ErrInvalidFile
	}
	return &doc, nil
}

// DecodeRun parses and validates a run-v1 document.
func DecodeRun(data []byte) (*RunDoc, error) {
	var doc RunDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, ErrInvalidFile
	}
	if doc.Version != VersionRun {
		return nil, ErrInvalidFile
	}
	return &doc, nil
}

// DecodeBundle parses a full-bundle document. It accepts the v2 format,
// returning a snapshot that replaces all three stores, or a legacy bare
// exercise array, returned separately so the caller can prepend it to the
// existing catalog instead of replacing it.
func DecodeBundle(data []byte) (snap *tracker.Snapshot, legacy []models.Exercise, err error) {
	var doc BundleDoc
	if err := json.Unmarshal(data, &doc); err == nil && doc.Version == VersionBundle {
		s := tracker.Snapshot{
			Exercises: doc.Exercises,
			Sessions:  doc.Sessions,
			History:   doc.History,
		}
		if s.Exercises == nil {
			s.Exercises = []models.Exercise{}
		}
		if s.Sessions == nil {
			s.Sessions = map[string][]models.SessionItem{}
		}
		if s.History == nil {
			s.History = map[string]models.HistoryEntry{}
		}
		return &s, nil, nil
	}

	// The legacy format is a bare exercise array. A JSON null also
	// unmarshals into a slice without error, so require a real array.
	var list []models.Exercise
	if err := json.Unmarshal(data, &list); err == nil && list != nil {
		return nil, list, nil
	}

	return nil, nil, ErrInvalidFile
}

// Encode renders any document with stable two-space indentation so export
// files diff cleanly.
func Encode(doc any) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}

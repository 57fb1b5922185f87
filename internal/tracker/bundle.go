package tracker

import (
	"context"

	"github.com/claude/ironplan/internal/models"
)

// Snapshot is a value copy of the catalog, sessions, and history, as
// exported in a v2 bundle. The run plan travels separately (run-v1).
type Snapshot struct {
	Exercises []models.Exercise               `json:"exercises"`
	Sessions  map[string][]models.SessionItem `json:"session_by_date"`
	History   map[string]models.HistoryEntry  `json:"history_by_date"`
}

// Export returns a deep copy of the bundle-covered state.
func (t *Tracker) Export() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	snap := Snapshot{
		Exercises: append([]models.Exercise{}, t.exercises...),
		Sessions:  make(map[string][]models.SessionItem, len(t.sessions)),
		History:   make(map[string]models.HistoryEntry, len(t.history)),
	}
	for date, items := range t.sessions {
		snap.Sessions[date] = models.CloneItems(items)
	}
	for date, entry := range t.history {
		snap.History[date] = models.HistoryEntry{
			FinishedAt: entry.FinishedAt,
			Items:      models.CloneItems(entry.Items),
		}
	}
	return snap
}

// Import replaces catalog, sessions, and history wholesale from a decoded
// v2 bundle. The caller validates the document first; by the time this
// runs the import can no longer fail.
func (t *Tracker) Import(ctx context.Context, snap Snapshot) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.exercises = append([]models.Exercise{}, snap.Exercises...)
	t.sessions = make(map[string][]models.SessionItem, len(snap.Sessions))
	for date, items := range snap.Sessions {
		t.sessions[date] = models.CloneItems(items)
	}
	t.history = make(map[string]models.HistoryEntry, len(snap.History))
	for date, entry := range snap.History {
		t.history[date] = models.HistoryEntry{
			FinishedAt: entry.FinishedAt,
			Items:      models.CloneItems(entry.Items),
		}
	}

	t.persistExercises(ctx)
	t.persistSessions(ctx)
	t.persistHistory(ctx)
}

// PrependExercises inserts imported entries ahead of the existing catalog.
// Used for the legacy exercises-only document. Entries without timestamps
// (the legacy format predates them) are stamped now so they list first
// under the default newest-first order.
func (t *Tracker) PrependExercises(ctx context.Context, list []models.Exercise) {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	in := make([]models.Exercise, len(list))
	copy(in, list)
	for i := range in {
		if in[i].CreatedAt.IsZero() {
			in[i].CreatedAt = now
		}
		if in[i].UpdatedAt.IsZero() {
			in[i].UpdatedAt = now
		}
	}

	t.exercises = append(in, t.exercises...)
	t.persistExercises(ctx)
}

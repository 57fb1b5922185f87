package tracker

import (
	"context"
	"errors"

	"github.com/claude/ironplan/internal/models"
	"github.com/claude/ironplan/internal/plan"
)

// ErrEmptySession is returned by FinishSession when the date has no items.
var ErrEmptySession = errors.New("nothing to finish")

// Reorder directions for MoveItem.
const (
	MoveUp   = "up"
	MoveDown = "down"
)

// Session returns a deep copy of a date's items. An unknown date is an
// empty session.
func (t *Tracker) Session(date string) []models.SessionItem {
	t.mu.Lock()
	defer t.mu.Unlock()
	return models.CloneItems(t.sessions[date])
}

// AddItem instantiates a catalog exercise into the date's session: a fresh
// plan with every stage unmarked, and a value copy of the exercise
// parameters so later catalog edits don't reach into the session.
// No-op when the exercise is missing.
func (t *Tracker) AddItem(ctx context.Context, date, exerciseID string) (*models.SessionItem, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	ex, ok := t.findExercise(exerciseID)
	if !ok {
		return nil, false
	}

	item := models.SessionItem{
		ID:           t.newID(),
		ExerciseID:   ex.ID,
		Name:         ex.Name,
		Method:       ex.Method,
		OneRepMax:    ex.OneRepMax,
		RoundingStep: ex.RoundingStep,
		RestSeconds:  ex.RestSeconds,
		Stages:       plan.Build(ex),
	}

	t.sessions[date] = append(t.sessions[date], item)
	t.persistSessions(ctx)

	out := models.CloneItem(item)
	return &out, true
}

// ToggleStage flips a stage's done flag. Marking a stage done (and only
// that direction) requests a rest countdown for the stage's rest interval.
// Returns the new done state.
func (t *Tracker) ToggleStage(ctx context.Context, date, itemID string, stageIndex int) (bool, bool) {
	t.mu.Lock()

	items := t.sessions[date]
	for i := range items {
		if items[i].ID != itemID {
			continue
		}
		if stageIndex < 0 || stageIndex >= len(items[i].Stages) {
			break
		}
		stage := &items[i].Stages[stageIndex]
		stage.Done = !stage.Done
		done := stage.Done
		restSec := stage.RestSeconds
		t.persistSessions(ctx)
		rest := t.rest
		t.mu.Unlock()

		if done && rest != nil {
			rest.StartFor(restSec)
		}
		return done, true
	}

	t.mu.Unlock()
	return false, false
}

// RemoveItem deletes one item from the date's session.
func (t *Tracker) RemoveItem(ctx context.Context, date, itemID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	items := t.sessions[date]
	for i := range items {
		if items[i].ID == itemID {
			t.sessions[date] = append(items[:i], items[i+1:]...)
			t.persistSessions(ctx)
			return true
		}
	}
	return false
}

// MoveItem swaps an item with its neighbor in the given direction. Whole
// exercises reorder; stage order inside an item is fixed by the plan
// generator. A move past either end of the sequence is a no-op.
func (t *Tracker) MoveItem(ctx context.Context, date, itemID, direction string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	items := t.sessions[date]
	for i := range items {
		if items[i].ID != itemID {
			continue
		}
		j := i + 1
		if direction == MoveUp {
			j = i - 1
		}
		if j < 0 || j >= len(items) {
			return false
		}
		items[i], items[j] = items[j], items[i]
		t.persistSessions(ctx)
		return true
	}
	return false
}

// ClearSession empties the date's item sequence. Confirmation is the
// caller's concern.
func (t *Tracker) ClearSession(ctx context.Context, date string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.sessions[date] = []models.SessionItem{}
	t.persistSessions(ctx)
}

// ReplaceSession swaps in a whole item sequence for the date (import
// semantics: replace, never merge).
func (t *Tracker) ReplaceSession(ctx context.Context, date string, items []models.SessionItem) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.sessions[date] = models.CloneItems(items)
	t.persistSessions(ctx)
}

// FinishSession snapshots the date's items into a history entry with
// finishedAt=now, replacing any prior entry for that date. The live
// session is left untouched and may be re-finished later with different
// content. Fails with ErrEmptySession when there is nothing to finish.
func (t *Tracker) FinishSession(ctx context.Context, date string) (*models.HistoryEntry, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	items := t.sessions[date]
	if len(items) == 0 {
		return nil, ErrEmptySession
	}

	entry := models.HistoryEntry{
		FinishedAt: t.now(),
		Items:      models.CloneItems(items),
	}
	t.history[date] = entry
	t.persistHistory(ctx)

	out := models.HistoryEntry{FinishedAt: entry.FinishedAt, Items: models.CloneItems(entry.Items)}
	return &out, nil
}

// ReopenSession copies a history snapshot back into the live session for
// its date, overwriting whatever is there. The history entry itself is
// untouched. No-op when the date has no history.
func (t *Tracker) ReopenSession(ctx context.Context, date string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	entry, ok := t.history[date]
	if !ok {
		return false
	}
	t.sessions[date] = models.CloneItems(entry.Items)
	t.persistSessions(ctx)
	return true
}

package tracker

import (
	"context"
	"sort"

	"github.com/claude/ironplan/internal/models"
)

// DatedEntry pairs a history snapshot with its date key for listing.
type DatedEntry struct {
	Date string `json:"date"`
	models.HistoryEntry
}

// History returns all finished sessions, most recent date first. Items
// are deep copies; callers cannot reach the stored snapshots.
func (t *Tracker) History() []DatedEntry {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]DatedEntry, 0, len(t.history))
	for date, entry := range t.history {
		out = append(out, DatedEntry{
			Date: date,
			HistoryEntry: models.HistoryEntry{
				FinishedAt: entry.FinishedAt,
				Items:      models.CloneItems(entry.Items),
			},
		})
	}
	// ISO dates sort lexicographically.
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out
}

// HistoryEntry returns one date's snapshot.
func (t *Tracker) HistoryEntry(date string) (*DatedEntry, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	entry, ok := t.history[date]
	if !ok {
		return nil, false
	}
	return &DatedEntry{
		Date: date,
		HistoryEntry: models.HistoryEntry{
			FinishedAt: entry.FinishedAt,
			Items:      models.CloneItems(entry.Items),
		},
	}, true
}

// DeleteHistory removes one date's snapshot.
func (t *Tracker) DeleteHistory(ctx context.Context, date string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.history[date]; !ok {
		return false
	}
	delete(t.history, date)
	t.persistHistory(ctx)
	return true
}

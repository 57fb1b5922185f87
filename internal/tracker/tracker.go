// Package tracker owns the application state: the exercise catalog, the
// per-date training sessions, the finished-session history, and the run
// plan singleton. All state lives in memory and is written through to the
// record store after each mutation; the store is never read after startup.
package tracker

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/claude/ironplan/internal/models"
	"github.com/claude/ironplan/internal/storage"
	"github.com/google/uuid"
)

// RestStarter receives rest/cooldown requests when a stage or run session
// transitions to done. Implemented by *timer.Countdown.
type RestStarter interface {
	StartFor(seconds int)
}

// Tracker is the explicit application-state object. A single mutex
// serializes every operation, so read-modify-write sequences across the
// four stores are atomic with respect to each other.
type Tracker struct {
	mu    sync.Mutex
	store storage.Store
	log   *slog.Logger
	rest  RestStarter

	newID func() string
	now   func() time.Time

	exercises []models.Exercise // newest first
	sessions  map[string][]models.SessionItem
	history   map[string]models.HistoryEntry
	run       *models.RunPlan
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithRestStarter wires the countdown that fires on stage completion.
func WithRestStarter(r RestStarter) Option {
	return func(t *Tracker) { t.rest = r }
}

// WithIDFunc overrides ID generation. Tests use deterministic IDs.
func WithIDFunc(fn func() string) Option {
	return func(t *Tracker) { t.newID = fn }
}

// WithClock overrides the time source.
func WithClock(fn func() time.Time) Option {
	return func(t *Tracker) { t.now = fn }
}

// New creates an empty Tracker. Call Load to hydrate it from the store.
func New(store storage.Store, log *slog.Logger, opts ...Option) *Tracker {
	t := &Tracker{
		store:     store,
		log:       log,
		newID:     uuid.NewString,
		now:       time.Now,
		exercises: []models.Exercise{},
		sessions:  map[string][]models.SessionItem{},
		history:   map[string]models.HistoryEntry{},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Load reads the four records. A missing or corrupt record falls back to
// its empty default; load never fails the process.
func (t *Tracker) Load(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()

	loadRecord(ctx, t, storage.KeyExercises, &t.exercises)
	loadRecord(ctx, t, storage.KeySessions, &t.sessions)
	loadRecord(ctx, t, storage.KeyHistory, &t.history)
	loadRecord(ctx, t, storage.KeyRunPlan, &t.run)

	// Guard against a stored literal null.
	if t.exercises == nil {
		t.exercises = []models.Exercise{}
	}
	if t.sessions == nil {
		t.sessions = map[string][]models.SessionItem{}
	}
	if t.history == nil {
		t.history = map[string]models.HistoryEntry{}
	}
}

func loadRecord[T any](ctx context.Context, t *Tracker, key string, dst *T) {
	raw, ok, err := t.store.Get(ctx, key)
	if err != nil {
		t.log.Warn("reading record failed, starting empty", "key", key, "error", err)
		return
	}
	if !ok {
		return
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		t.log.Warn("corrupt record, starting empty", "key", key, "error", err)
		var zero T
		*dst = zero
	}
}

// persist writes one record. Persistence is fire-and-forget: a failed
// write is logged and the in-memory mutation stands.
func (t *Tracker) persist(ctx context.Context, key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		t.log.Error("marshaling record failed", "key", key, "error", err)
		return
	}
	if err := t.store.Put(ctx, key, string(data)); err != nil {
		t.log.Error("writing record failed", "key", key, "error", err)
	}
}

func (t *Tracker) persistExercises(ctx context.Context) {
	t.persist(ctx, storage.KeyExercises, t.exercises)
}

func (t *Tracker) persistSessions(ctx context.Context) {
	t.persist(ctx, storage.KeySessions, t.sessions)
}

func (t *Tracker) persistHistory(ctx context.Context) {
	t.persist(ctx, storage.KeyHistory, t.history)
}

func (t *Tracker) persistRun(ctx context.Context) {
	t.persist(ctx, storage.KeyRunPlan, t.run)
}

// ResetAll wipes exercises, sessions, history, and the run plan.
func (t *Tracker) ResetAll(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.exercises = []models.Exercise{}
	t.sessions = map[string][]models.SessionItem{}
	t.history = map[string]models.HistoryEntry{}
	t.run = nil

	t.persistExercises(ctx)
	t.persistSessions(ctx)
	t.persistHistory(ctx)
	t.persistRun(ctx)
}

package tracker

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/claude/ironplan/internal/models"
)

// memStore is an in-memory record store for tests.
type memStore struct {
	records map[string]string
	puts    int
}

func newMemStore() *memStore {
	return &memStore{records: map[string]string{}}
}

func (m *memStore) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := m.records[key]
	return v, ok, nil
}

func (m *memStore) Put(_ context.Context, key, value string) error {
	m.records[key] = value
	m.puts++
	return nil
}

func (m *memStore) Close() error { return nil }

// fakeRest records countdown requests from the state machine.
type fakeRest struct {
	requests []int
}

func (f *fakeRest) StartFor(seconds int) {
	f.requests = append(f.requests, seconds)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestTracker(t *testing.T, opts ...Option) (*Tracker, *memStore, *fakeRest) {
	t.Helper()
	store := newMemStore()
	rest := &fakeRest{}
	n := 0
	base := []Option{
		WithRestStarter(rest),
		WithIDFunc(func() string { n++; return fmt.Sprintf("id-%d", n) }),
	}
	tr := New(store, testLogger(), append(base, opts...)...)
	tr.Load(context.Background())
	return tr, store, rest
}

func mustCreate(t *testing.T, tr *Tracker, in ExerciseInput) models.Exercise {
	t.Helper()
	ex, ok := tr.CreateExercise(context.Background(), in)
	if !ok {
		t.Fatalf("CreateExercise(%+v) rejected", in)
	}
	return *ex
}

func benchInput() ExerciseInput {
	return ExerciseInput{
		Name:        "Supino reto",
		Method:      models.MethodStraight,
		OneRepMax:   100,
		RestSeconds: 90,
	}
}

// TestLoadCorruptRecordFallsBack verifies that a record holding malformed
// JSON is replaced by its empty default at load instead of failing.
func TestLoadCorruptRecordFallsBack(t *testing.T) {
	store := newMemStore()
	store.records["exercises"] = "{not json"
	store.records["sessions"] = `{"2026-01-05": [{"id": "a", "stages": []}]}`

	tr := New(store, testLogger())
	tr.Load(context.Background())

	if got := tr.ListExercises("", ""); len(got) != 0 {
		t.Errorf("exercises after corrupt load = %d, want 0", len(got))
	}
	// The intact record still loads.
	if got := tr.Session("2026-01-05"); len(got) != 1 {
		t.Errorf("session items = %d, want 1", len(got))
	}
}

// TestLoadRoundTrip verifies state persisted by one tracker is readable by
// a fresh tracker over the same store.
func TestLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	tr, store, _ := newTestTracker(t)

	ex := mustCreate(t, tr, benchInput())
	tr.AddItem(ctx, "2026-02-10", ex.ID)
	if _, err := tr.FinishSession(ctx, "2026-02-10"); err != nil {
		t.Fatal(err)
	}
	tr.GenerateRunPlan(ctx, time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC))

	tr2 := New(store, testLogger())
	tr2.Load(ctx)

	if got := tr2.ListExercises("", ""); len(got) != 1 || got[0].Name != "Supino reto" {
		t.Errorf("reloaded exercises = %+v", got)
	}
	if got := tr2.Session("2026-02-10"); len(got) != 1 {
		t.Errorf("reloaded session items = %d, want 1", len(got))
	}
	if got := tr2.History(); len(got) != 1 || got[0].Date != "2026-02-10" {
		t.Errorf("reloaded history = %+v", got)
	}
	if p := tr2.RunPlan(); p == nil || len(p.Sessions) != 18 {
		t.Errorf("reloaded run plan = %+v", p)
	}
}

// TestResetAll verifies the full wipe clears all four records.
func TestResetAll(t *testing.T) {
	ctx := context.Background()
	tr, _, _ := newTestTracker(t)

	ex := mustCreate(t, tr, benchInput())
	tr.AddItem(ctx, "2026-02-10", ex.ID)
	tr.FinishSession(ctx, "2026-02-10")
	tr.GenerateRunPlan(ctx, time.Now())

	tr.ResetAll(ctx)

	if len(tr.ListExercises("", "")) != 0 {
		t.Error("exercises survived reset")
	}
	if len(tr.Session("2026-02-10")) != 0 {
		t.Error("session survived reset")
	}
	if len(tr.History()) != 0 {
		t.Error("history survived reset")
	}
	if tr.RunPlan() != nil {
		t.Error("run plan survived reset")
	}
}

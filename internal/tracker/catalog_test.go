package tracker

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/claude/ironplan/internal/models"
)

// TestCreateExerciseValidation verifies malformed payloads are silently
// refused: no entry appears and no record is written.
func TestCreateExerciseValidation(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		name string
		in   ExerciseInput
	}{
		{"empty name", ExerciseInput{Name: "", OneRepMax: 100}},
		{"blank name", ExerciseInput{Name: "   ", OneRepMax: 100}},
		{"zero max", ExerciseInput{Name: "Supino", OneRepMax: 0}},
		{"negative max", ExerciseInput{Name: "Supino", OneRepMax: -80}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tr, store, _ := newTestTracker(t)
			if _, ok := tr.CreateExercise(ctx, tc.in); ok {
				t.Fatal("expected rejection")
			}
			if len(tr.ListExercises("", "")) != 0 {
				t.Error("catalog grew on rejected create")
			}
			if store.puts != 0 {
				t.Error("rejected create wrote to the store")
			}
		})
	}
}

// TestCreateExerciseDefaults verifies unset rounding step and rest fall
// back to 2.5 kg and 90 s.
func TestCreateExerciseDefaults(t *testing.T) {
	tr, _, _ := newTestTracker(t)
	ex := mustCreate(t, tr, ExerciseInput{Name: "Supino", OneRepMax: 80})
	if ex.RoundingStep != 2.5 {
		t.Errorf("rounding step = %v, want 2.5", ex.RoundingStep)
	}
	if ex.RestSeconds != 90 {
		t.Errorf("rest = %d, want 90", ex.RestSeconds)
	}
}

// TestUpdateExercisePreservesIdentity verifies update keeps ID and
// CreatedAt while refreshing UpdatedAt, and that an absent ID is a no-op.
func TestUpdateExercisePreservesIdentity(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	tr, _, _ := newTestTracker(t, WithClock(func() time.Time { return now }))

	ex := mustCreate(t, tr, benchInput())

	now = now.Add(time.Hour)
	in := benchInput()
	in.OneRepMax = 105
	updated, ok := tr.UpdateExercise(ctx, ex.ID, in)
	if !ok {
		t.Fatal("update rejected")
	}
	if updated.ID != ex.ID {
		t.Errorf("ID changed: %q → %q", ex.ID, updated.ID)
	}
	if !updated.CreatedAt.Equal(ex.CreatedAt) {
		t.Errorf("CreatedAt changed: %v → %v", ex.CreatedAt, updated.CreatedAt)
	}
	if !updated.UpdatedAt.After(ex.UpdatedAt) {
		t.Errorf("UpdatedAt not refreshed: %v", updated.UpdatedAt)
	}
	if updated.OneRepMax != 105 {
		t.Errorf("OneRepMax = %v, want 105", updated.OneRepMax)
	}

	if _, ok := tr.UpdateExercise(ctx, "missing", in); ok {
		t.Error("update of missing ID succeeded")
	}
}

// TestDuplicateExercise verifies the clone gets a fresh ID, a " (copy)"
// suffix, and lands in front without replacing the original.
func TestDuplicateExercise(t *testing.T) {
	ctx := context.Background()
	tr, _, _ := newTestTracker(t)
	ex := mustCreate(t, tr, benchInput())

	dup, ok := tr.DuplicateExercise(ctx, ex.ID)
	if !ok {
		t.Fatal("duplicate failed")
	}
	if dup.ID == ex.ID {
		t.Error("duplicate kept the original ID")
	}
	if dup.Name != "Supino reto (copy)" {
		t.Errorf("duplicate name = %q", dup.Name)
	}

	list := tr.ListExercises("", SortNewest)
	if len(list) != 2 {
		t.Fatalf("catalog size = %d, want 2", len(list))
	}

	if _, ok := tr.DuplicateExercise(ctx, "missing"); ok {
		t.Error("duplicate of missing ID succeeded")
	}
}

// TestListExercisesFilterAndSort covers the case-insensitive substring
// filter and all four sort orders.
func TestListExercisesFilterAndSort(t *testing.T) {
	tr, _, _ := newTestTracker(t)
	mustCreate(t, tr, ExerciseInput{Name: "Agachamento livre", OneRepMax: 140})
	mustCreate(t, tr, ExerciseInput{Name: "Supino reto", OneRepMax: 100})
	mustCreate(t, tr, ExerciseInput{Name: "Remada curvada", OneRepMax: 90})

	if got := tr.ListExercises("SUPINO", ""); len(got) != 1 || got[0].Name != "Supino reto" {
		t.Errorf("filter SUPINO = %+v", got)
	}
	if got := tr.ListExercises("nothing here", ""); len(got) != 0 {
		t.Errorf("filter miss = %+v", got)
	}

	names := func(list []models.Exercise) []string {
		out := make([]string, len(list))
		for i, ex := range list {
			out[i] = ex.Name
		}
		return out
	}

	cases := []struct {
		sort string
		want []string
	}{
		{SortName, []string{"Agachamento livre", "Remada curvada", "Supino reto"}},
		{SortMaxAsc, []string{"Remada curvada", "Supino reto", "Agachamento livre"}},
		{SortMaxDesc, []string{"Agachamento livre", "Supino reto", "Remada curvada"}},
		{SortNewest, []string{"Remada curvada", "Supino reto", "Agachamento livre"}},
	}
	for _, tc := range cases {
		got := names(tr.ListExercises("", tc.sort))
		for i := range tc.want {
			if got[i] != tc.want[i] {
				t.Errorf("sort %q = %v, want %v", tc.sort, got, tc.want)
				break
			}
		}
	}
}

// TestDeleteExerciseNoCascade verifies catalog deletion leaves existing
// session items and history snapshots with their embedded copies intact.
func TestDeleteExerciseNoCascade(t *testing.T) {
	ctx := context.Background()
	tr, _, _ := newTestTracker(t)
	ex := mustCreate(t, tr, benchInput())

	const date = "2026-03-10"
	item, ok := tr.AddItem(ctx, date, ex.ID)
	if !ok {
		t.Fatal("AddItem failed")
	}
	if _, err := tr.FinishSession(ctx, date); err != nil {
		t.Fatal(err)
	}

	if !tr.DeleteExercise(ctx, ex.ID) {
		t.Fatal("delete failed")
	}

	session := tr.Session(date)
	if len(session) != 1 || session[0].Name != "Supino reto" || session[0].OneRepMax != 100 {
		t.Errorf("session item altered by catalog delete: %+v", session)
	}
	if len(session[0].Stages) != len(item.Stages) {
		t.Errorf("session stages altered: %d vs %d", len(session[0].Stages), len(item.Stages))
	}

	hist := tr.History()
	if len(hist) != 1 || hist[0].Items[0].Name != "Supino reto" {
		t.Errorf("history altered by catalog delete: %+v", hist)
	}

	// Adding the deleted exercise again is a reference miss, not an error.
	if _, ok := tr.AddItem(ctx, date, ex.ID); ok {
		t.Error("AddItem succeeded for a deleted exercise")
	}
}

// TestSeedDemo verifies the demo seed inserts three entries and keeps any
// existing catalog.
func TestSeedDemo(t *testing.T) {
	ctx := context.Background()
	tr, _, _ := newTestTracker(t)
	mustCreate(t, tr, ExerciseInput{Name: "Levantamento terra", OneRepMax: 180})

	created := tr.SeedDemo(ctx)
	if len(created) != 3 {
		t.Fatalf("seeded %d, want 3", len(created))
	}
	if got := tr.ListExercises("", ""); len(got) != 4 {
		t.Errorf("catalog size = %d, want 4", len(got))
	}
}

// TestCreateExerciseWarnsUnknownMethod verifies an unrecognized method is
// accepted (the plan generator falls back to a single set) but leaves a
// warning in the log, while known and empty methods stay quiet.
func TestCreateExerciseWarnsUnknownMethod(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	store := newMemStore()
	tr := New(store, slog.New(slog.NewTextHandler(&buf, nil)))

	if _, ok := tr.CreateExercise(ctx, ExerciseInput{Name: "Circuito", Method: "circuit", OneRepMax: 50}); !ok {
		t.Fatal("unknown method should still be accepted")
	}
	if !strings.Contains(buf.String(), "unknown training method") {
		t.Errorf("log = %q, want unknown-method warning", buf.String())
	}

	buf.Reset()
	tr.CreateExercise(ctx, ExerciseInput{Name: "Supino", Method: models.MethodStraight, OneRepMax: 100})
	tr.CreateExercise(ctx, ExerciseInput{Name: "Remada", OneRepMax: 90})
	if strings.Contains(buf.String(), "unknown training method") {
		t.Errorf("log = %q, known/empty methods should not warn", buf.String())
	}
}

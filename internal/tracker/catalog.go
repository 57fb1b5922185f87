package tracker

import (
	"context"
	"sort"
	"strings"

	"github.com/claude/ironplan/internal/models"
	"github.com/claude/ironplan/internal/plan"
)

// Sort orders for ListExercises.
const (
	SortNewest  = "created_desc" // default
	SortName    = "name"
	SortMaxAsc  = "rm_asc"
	SortMaxDesc = "rm_desc"
)

// Defaults applied when a payload leaves them unset.
const (
	defaultRoundingStep = 2.5
	defaultRestSeconds  = 90
)

// ExerciseInput is the create/update payload.
type ExerciseInput struct {
	Name         string  `json:"name"`
	Method       string  `json:"method"`
	OneRepMax    float64 `json:"one_rep_max"`
	RoundingStep float64 `json:"rounding_step"`
	RestSeconds  int     `json:"rest_seconds"`
	Notes        string  `json:"notes"`
}

func (in *ExerciseInput) normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Notes = strings.TrimSpace(in.Notes)
	if in.RoundingStep <= 0 {
		in.RoundingStep = defaultRoundingStep
	}
	if in.RestSeconds <= 0 {
		in.RestSeconds = defaultRestSeconds
	}
}

func (in *ExerciseInput) valid() bool {
	return in.Name != "" && in.OneRepMax > 0
}

// warnUnknownMethod flags methods without a dedicated plan shape. They are
// accepted — the generator falls back to a single straight set — but the
// fallback is usually a typo in the payload, so it is worth a log line.
func (t *Tracker) warnUnknownMethod(method string) {
	if method != "" && !models.KnownMethod(method) {
		t.log.Warn("unknown training method, plan falls back to a single set", "method", method)
	}
}

// CreateExercise adds a catalog entry at the front of the list. Returns
// ok=false without touching state when the payload is invalid (empty name
// or non-positive 1RM).
func (t *Tracker) CreateExercise(ctx context.Context, in ExerciseInput) (*models.Exercise, bool) {
	in.normalize()
	if !in.valid() {
		return nil, false
	}
	t.warnUnknownMethod(in.Method)

	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	ex := models.Exercise{
		ID:           t.newID(),
		Name:         in.Name,
		Method:       in.Method,
		OneRepMax:    in.OneRepMax,
		RoundingStep: in.RoundingStep,
		RestSeconds:  in.RestSeconds,
		Notes:        in.Notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	t.exercises = append([]models.Exercise{ex}, t.exercises...)
	t.persistExercises(ctx)
	return &ex, true
}

// UpdateExercise rewrites an entry in place, preserving ID and CreatedAt.
// No-op when the payload is invalid or the ID is absent.
func (t *Tracker) UpdateExercise(ctx context.Context, id string, in ExerciseInput) (*models.Exercise, bool) {
	in.normalize()
	if !in.valid() {
		return nil, false
	}
	t.warnUnknownMethod(in.Method)

	t.mu.Lock()
	defer t.mu.Unlock()

	for i := range t.exercises {
		if t.exercises[i].ID != id {
			continue
		}
		ex := &t.exercises[i]
		ex.Name = in.Name
		ex.Method = in.Method
		ex.OneRepMax = in.OneRepMax
		ex.RoundingStep = in.RoundingStep
		ex.RestSeconds = in.RestSeconds
		ex.Notes = in.Notes
		ex.UpdatedAt = t.now()
		t.persistExercises(ctx)
		out := *ex
		return &out, true
	}
	return nil, false
}

// DeleteExercise removes an entry. Session items and history snapshots
// keep their embedded copies; nothing cascades.
func (t *Tracker) DeleteExercise(ctx context.Context, id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i := range t.exercises {
		if t.exercises[i].ID == id {
			t.exercises = append(t.exercises[:i], t.exercises[i+1:]...)
			t.persistExercises(ctx)
			return true
		}
	}
	return false
}

// DuplicateExercise clones an entry with a fresh ID, fresh timestamps, and
// a " (copy)" name suffix, inserted at the front alongside the original.
func (t *Tracker) DuplicateExercise(ctx context.Context, id string) (*models.Exercise, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i := range t.exercises {
		if t.exercises[i].ID != id {
			continue
		}
		now := t.now()
		dup := t.exercises[i]
		dup.ID = t.newID()
		dup.Name += " (copy)"
		dup.CreatedAt = now
		dup.UpdatedAt = now
		t.exercises = append([]models.Exercise{dup}, t.exercises...)
		t.persistExercises(ctx)
		return &dup, true
	}
	return nil, false
}

// GetExercise looks up a catalog entry by ID.
func (t *Tracker) GetExercise(id string) (models.Exercise, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.findExercise(id)
}

func (t *Tracker) findExercise(id string) (models.Exercise, bool) {
	for _, ex := range t.exercises {
		if ex.ID == id {
			return ex, true
		}
	}
	return models.Exercise{}, false
}

// ListExercises filters by case-insensitive name substring and sorts by
// the requested order (creation date descending by default).
func (t *Tracker) ListExercises(filter, sortOrder string) []models.Exercise {
	t.mu.Lock()
	defer t.mu.Unlock()

	q := strings.ToLower(strings.TrimSpace(filter))
	out := make([]models.Exercise, 0, len(t.exercises))
	for _, ex := range t.exercises {
		if q == "" || strings.Contains(strings.ToLower(ex.Name), q) {
			out = append(out, ex)
		}
	}

	switch sortOrder {
	case SortName:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	case SortMaxAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].OneRepMax < out[j].OneRepMax })
	case SortMaxDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].OneRepMax > out[j].OneRepMax })
	default:
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	}
	return out
}

// PlanPreview builds the stage sequence for a catalog entry without
// instantiating a session item.
func (t *Tracker) PlanPreview(id string) ([]models.Stage, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	ex, ok := t.findExercise(id)
	if !ok {
		return nil, false
	}
	return plan.Build(ex), true
}

// SeedDemo inserts three sample exercises so a fresh install has
// something to click on. Existing entries are kept.
func (t *Tracker) SeedDemo(ctx context.Context) []models.Exercise {
	demo := []ExerciseInput{
		{Name: "Supino reto", Method: models.MethodPyramidUp, OneRepMax: 100, RoundingStep: 2.5, RestSeconds: 120, Notes: "Controle na descida"},
		{Name: "Agachamento livre", Method: models.MethodStraight, OneRepMax: 140, RoundingStep: 2.5, RestSeconds: 180, Notes: "Brace forte"},
		{Name: "Remada curvada", Method: models.MethodDropset, OneRepMax: 90, RoundingStep: 2.5, RestSeconds: 90, Notes: "Sem roubar"},
	}

	created := make([]models.Exercise, 0, len(demo))
	for _, in := range demo {
		if ex, ok := t.CreateExercise(ctx, in); ok {
			created = append(created, *ex)
		}
	}
	return created
}

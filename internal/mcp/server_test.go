package mcp

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/claude/ironplan/internal/models"
	"github.com/claude/ironplan/internal/tracker"
	"github.com/mark3labs/mcp-go/mcp"
)

// fakeSource is a canned DataSource for handler tests.
type fakeSource struct {
	exercises []models.Exercise
	stages    []models.Stage
}

func (f *fakeSource) ListExercises(filter, sortOrder string) []models.Exercise { return f.exercises }

func (f *fakeSource) PlanPreview(id string) ([]models.Stage, bool) {
	if id != "e1" {
		return nil, false
	}
	return f.stages, true
}

func (f *fakeSource) Session(date string) []models.SessionItem { return nil }

func (f *fakeSource) History() []tracker.DatedEntry { return nil }

func (f *fakeSource) HistoryEntry(date string) (*tracker.DatedEntry, bool) { return nil, false }

func (f *fakeSource) RunPlan() *models.RunPlan { return nil }

func (f *fakeSource) RunSummary() (int, int) { return 0, 0 }

func testHandlers() *handlers {
	return &handlers{
		ds: &fakeSource{
			exercises: []models.Exercise{{ID: "e1", Name: "Supino reto", OneRepMax: 100}},
			stages:    []models.Stage{{Label: "S1", Percent: 0.70, Weight: 70}},
		},
		log: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func toolRequest(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

// TestListExercisesTool verifies the catalog tool returns a non-error result.
func TestListExercisesTool(t *testing.T) {
	h := testHandlers()
	result, err := h.listExercises(context.Background(), toolRequest(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Errorf("result = %+v, want success", result)
	}
}

// TestGetSetPlanTool verifies the required parameter and the not-found path.
func TestGetSetPlanTool(t *testing.T) {
	h := testHandlers()

	result, err := h.getSetPlan(context.Background(), toolRequest(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsError {
		t.Error("missing exercise_id should be a tool error")
	}

	result, _ = h.getSetPlan(context.Background(), toolRequest(map[string]any{"exercise_id": "nope"}))
	if !result.IsError {
		t.Error("unknown exercise should be a tool error")
	}

	result, _ = h.getSetPlan(context.Background(), toolRequest(map[string]any{"exercise_id": "e1"}))
	if result.IsError {
		t.Errorf("result = %+v, want success", result)
	}
}

// TestGetSessionToolDateValidation verifies malformed dates are rejected.
func TestGetSessionToolDateValidation(t *testing.T) {
	h := testHandlers()

	result, _ := h.getSession(context.Background(), toolRequest(map[string]any{"date": "07/04/2026"}))
	if !result.IsError {
		t.Error("malformed date should be a tool error")
	}

	result, _ = h.getSession(context.Background(), toolRequest(map[string]any{"date": "2026-04-07"}))
	if result.IsError {
		t.Errorf("result = %+v, want success", result)
	}
}

// TestLabeledItems verifies session items carry the pt-BR method display
// name, falling back to the raw identifier for unknown methods so stale
// snapshots still render.
func TestLabeledItems(t *testing.T) {
	views := labeledItems([]models.SessionItem{
		{ID: "i1", Name: "Supino reto", Method: models.MethodDropset},
		{ID: "i2", Name: "Cárdio misterioso", Method: "circuit"},
	})

	if views[0].MethodLabel != "Dropset" {
		t.Errorf("label = %q, want Dropset", views[0].MethodLabel)
	}
	if views[1].MethodLabel != "circuit" {
		t.Errorf("unknown method label = %q, want the raw identifier", views[1].MethodLabel)
	}
	if views[0].ID != "i1" || views[0].Name != "Supino reto" {
		t.Errorf("view lost item fields: %+v", views[0])
	}
}

// TestGetHistoryToolMissingDate verifies the single-date lookup error path.
func TestGetHistoryToolMissingDate(t *testing.T) {
	h := testHandlers()
	result, _ := h.getHistory(context.Background(), toolRequest(map[string]any{"date": "2026-04-07"}))
	if !result.IsError {
		t.Error("unknown history date should be a tool error")
	}
}

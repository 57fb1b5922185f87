package mcp

import (
	"context"
	"time"

	"github.com/claude/ironplan/internal/models"
	"github.com/claude/ironplan/internal/runplan"
	"github.com/claude/ironplan/internal/tracker"
	"github.com/mark3labs/mcp-go/mcp"
)

// sessionItemView decorates a session item with the method's pt-BR display
// name, which the raw state does not carry but a model reading the session
// needs to describe it.
type sessionItemView struct {
	models.SessionItem
	MethodLabel string `json:"method_label"`
}

func labeledItems(items []models.SessionItem) []sessionItemView {
	out := make([]sessionItemView, len(items))
	for i, item := range items {
		out[i] = sessionItemView{SessionItem: item, MethodLabel: models.MethodLabel(item.Method)}
	}
	return out
}

type historyEntryView struct {
	Date       string            `json:"date"`
	FinishedAt time.Time         `json:"finished_at"`
	Items      []sessionItemView `json:"items"`
}

func labeledEntry(entry tracker.DatedEntry) historyEntryView {
	return historyEntryView{
		Date:       entry.Date,
		FinishedAt: entry.FinishedAt,
		Items:      labeledItems(entry.Items),
	}
}

// --- Tool definitions ---

var toolListExercises = mcp.NewTool("list_exercises",
	mcp.WithDescription("List exercises in the catalog with their method, one-rep max, rounding step, and rest interval. Supports name filtering and sorting."),
	mcp.WithString("q", mcp.Description("Case-insensitive name filter (substring match)")),
	mcp.WithString("sort", mcp.Description("Sort order. Defaults to newest first."), mcp.Enum("created_desc", "name", "rm_asc", "rm_desc")),
)

var toolGetSetPlan = mcp.NewTool("get_set_plan",
	mcp.WithDescription("Generate the set plan for an exercise: per-stage label, %1RM, target reps, working weight (rounded to the exercise's step), and rest interval."),
	mcp.WithString("exercise_id", mcp.Required(), mcp.Description("Exercise ID from list_exercises")),
)

var toolGetSession = mcp.NewTool("get_session",
	mcp.WithDescription("Get the training session for a date: the exercise sequence with per-stage done flags. An unknown date is an empty session."),
	mcp.WithString("date", mcp.Description("Session date (YYYY-MM-DD). Defaults to today.")),
)

var toolGetHistory = mcp.NewTool("get_history",
	mcp.WithDescription("List finished-session snapshots, newest first. Optionally fetch a single date's snapshot."),
	mcp.WithString("date", mcp.Description("Return only this date's snapshot (YYYY-MM-DD)")),
)

var toolGetRunPlan = mcp.NewTool("get_run_plan",
	mcp.WithDescription("Get the six-week 5K run plan: sessions with dates, workouts, distance/time results, computed pace, and overall completion progress."),
)

// --- Tool handlers ---

func (h *handlers) listExercises(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filter := req.GetString("q", "")
	sortOrder := req.GetString("sort", "")

	result, err := mcp.NewToolResultJSON(h.ds.ListExercises(filter, sortOrder))
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getSetPlan(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("exercise_id")
	if err != nil {
		return mcp.NewToolResultError("exercise_id parameter is required"), nil
	}

	stages, ok := h.ds.PlanPreview(id)
	if !ok {
		return mcp.NewToolResultError("exercise not found"), nil
	}

	result, err := mcp.NewToolResultJSON(stages)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getSession(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	date := req.GetString("date", "")
	if date == "" {
		date = time.Now().Format(runplan.DateFormat)
	} else if _, err := time.Parse(runplan.DateFormat, date); err != nil {
		return mcp.NewToolResultError("date must be YYYY-MM-DD"), nil
	}

	result, err := mcp.NewToolResultJSON(map[string]any{
		"date":  date,
		"items": labeledItems(h.ds.Session(date)),
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getHistory(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if date := req.GetString("date", ""); date != "" {
		entry, ok := h.ds.HistoryEntry(date)
		if !ok {
			return mcp.NewToolResultError("no history for date"), nil
		}
		result, err := mcp.NewToolResultJSON(labeledEntry(*entry))
		if err != nil {
			return mcp.NewToolResultError("serialization failed"), nil
		}
		return result, nil
	}

	entries := h.ds.History()
	views := make([]historyEntryView, len(entries))
	for i, entry := range entries {
		views[i] = labeledEntry(entry)
	}
	result, err := mcp.NewToolResultJSON(views)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getRunPlan(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	done, total := h.ds.RunSummary()
	result, err := mcp.NewToolResultJSON(map[string]any{
		"plan":  h.ds.RunPlan(),
		"done":  done,
		"total": total,
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

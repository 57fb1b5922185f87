package mcp

import (
	"github.com/claude/ironplan/internal/models"
	"github.com/claude/ironplan/internal/tracker"
)

// DataSource abstracts the read side of the tracker for MCP tools. All
// tools are read-only: mutations stay on the REST API.
type DataSource interface {
	ListExercises(filter, sortOrder string) []models.Exercise
	PlanPreview(id string) ([]models.Stage, bool)
	Session(date string) []models.SessionItem
	History() []tracker.DatedEntry
	HistoryEntry(date string) (*tracker.DatedEntry, bool)
	RunPlan() *models.RunPlan
	RunSummary() (done, total int)
}

// Compile-time check: *tracker.Tracker satisfies DataSource.
var _ DataSource = (*tracker.Tracker)(nil)

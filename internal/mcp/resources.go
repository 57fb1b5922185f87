package mcp

import (
	"context"
	"encoding/json"
	"time"

	"github.com/claude/ironplan/internal/runplan"
	"github.com/mark3labs/mcp-go/mcp"
)

func (h *handlers) catalog(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return jsonContents(req.Params.URI, h.ds.ListExercises("", ""))
}

func (h *handlers) todaySession(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	date := time.Now().Format(runplan.DateFormat)
	return jsonContents(req.Params.URI, map[string]any{
		"date":  date,
		"items": labeledItems(h.ds.Session(date)),
	})
}

func (h *handlers) runPlan(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	done, total := h.ds.RunSummary()
	return jsonContents(req.Params.URI, map[string]any{
		"plan":  h.ds.RunPlan(),
		"done":  done,
		"total": total,
	})
}

func jsonContents(uri string, v any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// New creates an MCP server with all tools and resources registered.
func New(ds DataSource, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("IronPlan", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("IronPlan training data server. Query the exercise catalog, generated set plans, daily training sessions, finished-session history, and the 5K run plan. All tools are read-only."),
	)

	h := &handlers{ds: ds, log: log}

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolListExercises, Handler: h.listExercises},
		server.ServerTool{Tool: toolGetSetPlan, Handler: h.getSetPlan},
		server.ServerTool{Tool: toolGetSession, Handler: h.getSession},
		server.ServerTool{Tool: toolGetHistory, Handler: h.getHistory},
		server.ServerTool{Tool: toolGetRunPlan, Handler: h.getRunPlan},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resCatalog, Handler: h.catalog},
		server.ServerResource{Resource: resTodaySession, Handler: h.todaySession},
		server.ServerResource{Resource: resRunPlan, Handler: h.runPlan},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	ds  DataSource
	log *slog.Logger
}

// --- Resource definitions ---

var resCatalog = mcp.NewResource(
	"ironplan://catalog",
	"Exercise Catalog",
	mcp.WithResourceDescription("All exercises with method, 1RM, rounding step, and rest interval"),
	mcp.WithMIMEType("application/json"),
)

var resTodaySession = mcp.NewResource(
	"ironplan://today",
	"Today's Session",
	mcp.WithResourceDescription("The training session for today's date with per-stage done flags"),
	mcp.WithMIMEType("application/json"),
)

var resRunPlan = mcp.NewResource(
	"ironplan://run_plan",
	"5K Run Plan",
	mcp.WithResourceDescription("The six-week 5K run plan with per-session results and completion progress"),
	mcp.WithMIMEType("application/json"),
)

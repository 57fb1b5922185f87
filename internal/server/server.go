package server

import (
	"log/slog"
	"net/http"

	"github.com/claude/ironplan/internal/timer"
	"github.com/claude/ironplan/internal/tracker"
	"github.com/go-chi/chi/v5"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	tracker   *tracker.Tracker
	countdown *timer.Countdown
	log       *slog.Logger
	apiKey    string
	router    chi.Router
}

// New creates a new Server with all routes configured.
func New(tr *tracker.Tracker, countdown *timer.Countdown, apiKey string, log *slog.Logger) *Server {
	s := &Server{
		tracker:   tr,
		countdown: countdown,
		log:       log,
		apiKey:    apiKey,
		router:    chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Mount attaches an extra handler subtree (the MCP endpoint).
func (s *Server) Mount(pattern string, h http.Handler) {
	s.router.Mount(pattern, h)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	// Exercise catalog
	s.router.Route("/api/v1/exercises", func(r chi.Router) {
		r.Get("/", s.handleListExercises)
		r.Post("/", s.handleCreateExercise)
		r.Post("/demo", s.handleSeedDemo)
		r.Put("/{id}", s.handleUpdateExercise)
		r.Delete("/{id}", s.handleDeleteExercise)
		r.Post("/{id}/duplicate", s.handleDuplicateExercise)
		r.Get("/{id}/plan", s.handlePlanPreview)
	})

	// Day session
	s.router.Route("/api/v1/session/{date}", func(r chi.Router) {
		r.Get("/", s.handleGetSession)
		r.Put("/", s.handleImportSession)
		r.Delete("/", s.handleClearSession)
		r.Get("/export", s.handleExportSession)
		r.Post("/items", s.handleAddItem)
		r.Delete("/items/{itemID}", s.handleRemoveItem)
		r.Post("/items/{itemID}/move", s.handleMoveItem)
		r.Post("/items/{itemID}/stages/{stage}/toggle", s.handleToggleStage)
		r.Post("/finish", s.handleFinishSession)
	})

	// History
	s.router.Route("/api/v1/history", func(r chi.Router) {
		r.Get("/", s.handleListHistory)
		r.Delete("/{date}", s.handleDeleteHistory)
		r.Post("/{date}/reopen", s.handleReopenSession)
	})

	// Run plan
	s.router.Route("/api/v1/run", func(r chi.Router) {
		r.Get("/", s.handleGetRunPlan)
		r.Delete("/", s.handleResetRunPlan)
		r.Post("/generate", s.handleGenerateRunPlan)
		r.Get("/export", s.handleExportRun)
		r.Put("/import", s.handleImportRun)
		r.Patch("/sessions/{id}", s.handleUpdateRunSession)
		r.Post("/sessions/{id}/toggle", s.handleToggleRunSession)
	})

	// Countdown timer
	s.router.Route("/api/v1/timer", func(r chi.Router) {
		r.Get("/", s.handleTimerState)
		r.Post("/set", s.handleTimerSet)
		r.Post("/start", s.handleTimerStart)
		r.Post("/pause", s.handleTimerPause)
		r.Post("/reset", s.handleTimerReset)
	})

	// Bundle export/import and full reset (API key required for the
	// destructive ones)
	s.router.Get("/api/v1/export", s.handleExportBundle)
	s.router.Group(func(r chi.Router) {
		r.Use(APIKeyAuth(s.apiKey))
		r.Post("/api/v1/import", s.handleImportBundle)
		r.Post("/api/v1/reset", s.handleResetAll)
	})
}

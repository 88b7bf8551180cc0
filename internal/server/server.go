package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/nubo/training/internal/catalog"
	"github.com/nubo/training/internal/ingest/alpha"
	nubomcp "github.com/nubo/training/internal/mcp"
	"github.com/nubo/training/internal/program"
	"github.com/nubo/training/internal/store"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	store   store.Store
	catalog *catalog.Catalog
	gen     *program.Generator
	alpha   *alpha.Provider
	log     *slog.Logger
	apiKey  string
	router  chi.Router
	whois   WhoIser
	newID   func() string
	now     func() time.Time
}

// New creates a new Server with all routes configured. Requests are
// attributed to the local dev user until SetTailscale is called.
func New(st store.Store, cat *catalog.Catalog, apiKey string, log *slog.Logger) *Server {
	s := &Server{
		store:   st,
		catalog: cat,
		gen:     program.New(cat.All()),
		alpha:   alpha.NewProvider(st, cat, log),
		log:     log,
		apiKey:  apiKey,
		router:  chi.NewRouter(),
		newID:   uuid.NewString,
		now:     time.Now,
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// SetTailscale switches identity resolution to tailnet WhoIs lookups.
func (s *Server) SetTailscale(whois WhoIser) {
	s.whois = whois
}

// SetMCP mounts an MCP streamable HTTP handler at /mcp behind the API key.
// Tool calls run as the resolved caller.
func (s *Server) SetMCP(h http.Handler) {
	s.router.Group(func(r chi.Router) {
		r.Use(APIKeyAuth(s.apiKey))
		r.Use(s.identity)
		r.Handle("/mcp", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := nubomcp.WithUserID(r.Context(), userIDFromContext(r))
			h.ServeHTTP(w, r.WithContext(ctx))
		}))
	})
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	// App API (no API key, tsnet handles access)
	s.router.Route("/api/v1", func(r chi.Router) {
		r.Use(s.identity)

		r.Get("/me", s.handleMe)

		r.Get("/exercises", s.handleListExercises)
		r.Post("/exercises", s.handleCreateExercise)

		r.Get("/templates", s.handleListTemplates)
		r.Post("/templates", s.handleCreateTemplate)
		r.Get("/templates/{id}", s.handleGetTemplate)
		r.Delete("/templates/{id}", s.handleDeleteTemplate)
		r.Post("/templates/{id}/use", s.handleUseTemplate)

		r.Post("/programs/generate", s.handleGenerateProgram)
		r.Get("/programs", s.handleListPrograms)
		r.Post("/programs", s.handleSaveProgram)
		r.Get("/programs/{id}", s.handleGetProgram)
		r.Get("/programs/{id}/export.xlsx", s.handleExportProgram)

		r.Get("/workouts", s.handleListWorkouts)
		r.Post("/workouts", s.handleSaveWorkout)
		r.Get("/workouts/{id}", s.handleGetWorkout)
		r.Post("/workouts/{id}/supersets", s.handleCreateSuperset)
		r.Delete("/workouts/{id}/supersets/{groupID}", s.handleRemoveSuperset)

		r.Get("/progression/{exerciseID}", s.handleProgression)
		r.Get("/records", s.handleRecords)
		r.Get("/stats/volume", s.handleWeeklyVolume)

		r.Get("/measurements", s.handleListMeasurements)
		r.Post("/measurements", s.handleAddMeasurement)

		// Imports need the API key on top of tailnet identity
		r.With(APIKeyAuth(s.apiKey)).Post("/ingest/alpha", s.handleAlphaIngest)
	})
}

// identity resolves the caller through tailscale when enabled and falls
// back to the dev user otherwise.
func (s *Server) identity(next http.Handler) http.Handler {
	dev := DevIdentity(next)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.whois == nil {
			dev.ServeHTTP(w, r)
			return
		}
		TailscaleIdentity(s.whois, s.store, s.log)(next).ServeHTTP(w, r)
	})
}

package mcp

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/nubo/training/internal/catalog"
	"github.com/nubo/training/internal/program"
)

type contextKey int

const userIDKey contextKey = iota

// UserIDFromContext extracts the user ID injected by the transport layer.
func UserIDFromContext(ctx context.Context) int {
	if id, ok := ctx.Value(userIDKey).(int); ok {
		return id
	}
	return 1
}

// WithUserID returns a context with the given user ID.
func WithUserID(ctx context.Context, userID int) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// New creates an MCP server with all tools and resources registered.
func New(ds DataSource, cat *catalog.Catalog, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("NUBO Training", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("NUBO Training server. Generate training programs, suggest weight and reps for the next session, and query workouts and personal records. All data is scoped to the authenticated user. Weights are in kilograms."),
	)

	h := &handlers{ds: ds, cat: cat, gen: program.New(cat.All()), log: log}

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolGenerateProgram, Handler: h.generateProgram},
		server.ServerTool{Tool: toolListPrograms, Handler: h.listPrograms},
		server.ServerTool{Tool: toolSuggestProgression, Handler: h.suggestProgression},
		server.ServerTool{Tool: toolListExercises, Handler: h.listExercises},
		server.ServerTool{Tool: toolGetWorkouts, Handler: h.getWorkouts},
		server.ServerTool{Tool: toolGetPersonalRecords, Handler: h.getPersonalRecords},
		server.ServerTool{Tool: toolGetWeeklyVolume, Handler: h.getWeeklyVolume},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resExerciseCatalog, Handler: h.exerciseCatalog},
		server.ServerResource{Resource: resRecentWorkouts, Handler: h.recentWorkouts},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	ds  DataSource
	cat *catalog.Catalog
	gen *program.Generator
	log *slog.Logger
}

// --- Resource definitions ---

var resExerciseCatalog = mcp.NewResource(
	"nubo://exercise_catalog",
	"Exercise Catalog",
	mcp.WithResourceDescription("Built-in exercises followed by the user's custom exercises, with muscle group and equipment"),
	mcp.WithMIMEType("application/json"),
)

var resRecentWorkouts = mcp.NewResource(
	"nubo://recent_workouts",
	"Recent Workouts",
	mcp.WithResourceDescription("The 10 most recent workouts with all exercises and sets"),
	mcp.WithMIMEType("application/json"),
)

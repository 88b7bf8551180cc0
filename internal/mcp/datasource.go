package mcp

import (
	"context"

	"github.com/nubo/training/internal/localdb"
	"github.com/nubo/training/internal/models"
	"github.com/nubo/training/internal/storage"
)

// DataSource abstracts the data layer for MCP tools. *storage.DB and
// *localdb.DB serve it directly; HTTPClient serves it over the REST API.
type DataSource interface {
	ListCustomExercises(ctx context.Context, userID int) ([]models.Exercise, error)
	// ListWorkouts returns the most recent workouts first. limit <= 0 means no limit.
	ListWorkouts(ctx context.Context, userID, limit int) ([]models.Workout, error)
	ListPrograms(ctx context.Context, userID int) ([]models.AIProgram, error)
	SaveProgram(ctx context.Context, p models.AIProgram) error
}

// Compile-time checks: both database backends satisfy DataSource.
var (
	_ DataSource = (*storage.DB)(nil)
	_ DataSource = (*localdb.DB)(nil)
)

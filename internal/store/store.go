// Package store defines the persistence contract shared by the postgres and
// sqlite backends.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/nubo/training/internal/models"
)

// ErrNotFound is returned when a row does not exist or belongs to another user.
var ErrNotFound = errors.New("not found")

// Store persists users, custom exercises, templates, programs, workouts and
// body measurements. All reads are scoped to a user.
type Store interface {
	GetOrCreateUser(ctx context.Context, login, displayName string) (int, error)

	ListCustomExercises(ctx context.Context, userID int) ([]models.Exercise, error)
	CreateExercise(ctx context.Context, ex models.Exercise) (models.Exercise, error)

	ListTemplates(ctx context.Context, userID int) ([]models.WorkoutTemplate, error)
	GetTemplate(ctx context.Context, id string, userID int) (models.WorkoutTemplate, error)
	CreateTemplate(ctx context.Context, t models.WorkoutTemplate) error
	DeleteTemplate(ctx context.Context, id string, userID int) error
	IncrementTemplateUsage(ctx context.Context, id string, userID int) error

	// SaveProgram stores the program together with its templates.
	SaveProgram(ctx context.Context, p models.AIProgram) error
	// ListPrograms returns programs newest first, without templates.
	ListPrograms(ctx context.Context, userID int) ([]models.AIProgram, error)
	GetProgram(ctx context.Context, id string, userID int) (models.AIProgram, error)

	// SaveWorkout inserts or replaces a workout.
	SaveWorkout(ctx context.Context, w models.Workout) error
	GetWorkout(ctx context.Context, id string, userID int) (models.Workout, error)
	// ListWorkouts returns the most recent workouts first. limit <= 0 means no limit.
	ListWorkouts(ctx context.Context, userID, limit int) ([]models.Workout, error)

	AddMeasurement(ctx context.Context, m models.BodyMeasurement) (models.BodyMeasurement, error)
	ListMeasurements(ctx context.Context, userID int, start, end time.Time) ([]models.BodyMeasurement, error)
}

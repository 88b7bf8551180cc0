package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nubo/training/internal/models"
)

const workoutColumns = `id, user_id, name, template_id, started_at, completed_at, exercises, notes`

// SaveWorkout inserts a workout or replaces the stored copy owned by the same user.
func (db *DB) SaveWorkout(ctx context.Context, w models.Workout) error {
	exercises, err := jsonb(w.Exercises)
	if err != nil {
		return fmt.Errorf("encoding workout exercises: %w", err)
	}
	_, err = db.Pool.Exec(ctx,
		`INSERT INTO workouts (`+workoutColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			template_id = EXCLUDED.template_id,
			started_at = EXCLUDED.started_at,
			completed_at = EXCLUDED.completed_at,
			exercises = EXCLUDED.exercises,
			notes = EXCLUDED.notes
		 WHERE workouts.user_id = EXCLUDED.user_id`,
		w.ID, w.UserID, w.Name, w.TemplateID, w.StartedAt, w.CompletedAt, exercises, w.Notes)
	if err != nil {
		return fmt.Errorf("upserting workout: %w", err)
	}
	return nil
}

// GetWorkout retrieves a single workout by ID.
func (db *DB) GetWorkout(ctx context.Context, id string, userID int) (models.Workout, error) {
	row := db.Pool.QueryRow(ctx,
		`SELECT `+workoutColumns+`
		 FROM workouts
		 WHERE id = $1 AND user_id = $2`,
		id, userID)
	w, err := scanWorkout(row)
	if err != nil {
		return models.Workout{}, notFound(err)
	}
	return w, nil
}

// ListWorkouts returns workouts ordered by completion (or start) time, most recent first.
func (db *DB) ListWorkouts(ctx context.Context, userID, limit int) ([]models.Workout, error) {
	query := `SELECT ` + workoutColumns + `
		 FROM workouts
		 WHERE user_id = $1
		 ORDER BY COALESCE(completed_at, started_at) DESC`
	args := []any{userID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying workouts: %w", err)
	}
	defer rows.Close()

	var result []models.Workout
	for rows.Next() {
		w, err := scanWorkout(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, w)
	}
	return result, rows.Err()
}

func scanWorkout(row interface{ Scan(dest ...any) error }) (models.Workout, error) {
	var (
		w         models.Workout
		exercises []byte
	)
	if err := row.Scan(&w.ID, &w.UserID, &w.Name, &w.TemplateID, &w.StartedAt,
		&w.CompletedAt, &exercises, &w.Notes); err != nil {
		return models.Workout{}, fmt.Errorf("scanning workout: %w", err)
	}
	if err := json.Unmarshal(exercises, &w.Exercises); err != nil {
		return models.Workout{}, fmt.Errorf("decoding exercises of workout %s: %w", w.ID, err)
	}
	return w, nil
}

package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/nubo/training/internal/models"
	"github.com/nubo/training/internal/store"
)

const templateColumns = `id, user_id, name, description, exercises, usage_count, is_system, created_at, updated_at`

// ListTemplates returns a user's templates, most used first.
func (db *DB) ListTemplates(ctx context.Context, userID int) ([]models.WorkoutTemplate, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT `+templateColumns+`
		 FROM workout_templates
		 WHERE user_id = $1
		 ORDER BY usage_count DESC, created_at DESC, position ASC`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("querying templates: %w", err)
	}
	defer rows.Close()

	return scanTemplates(rows)
}

// GetTemplate retrieves one template owned by the user.
func (db *DB) GetTemplate(ctx context.Context, id string, userID int) (models.WorkoutTemplate, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT `+templateColumns+`
		 FROM workout_templates
		 WHERE id = $1 AND user_id = $2`,
		id, userID)
	if err != nil {
		return models.WorkoutTemplate{}, fmt.Errorf("querying template: %w", err)
	}
	defer rows.Close()

	templates, err := scanTemplates(rows)
	if err != nil {
		return models.WorkoutTemplate{}, err
	}
	if len(templates) == 0 {
		return models.WorkoutTemplate{}, store.ErrNotFound
	}
	return templates[0], nil
}

// CreateTemplate stores a standalone template.
func (db *DB) CreateTemplate(ctx context.Context, t models.WorkoutTemplate) error {
	return insertTemplate(ctx, db.Pool, t, nil, 0)
}

type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func insertTemplate(ctx context.Context, q execer, t models.WorkoutTemplate, programID *string, position int) error {
	exercises, err := jsonb(t.Exercises)
	if err != nil {
		return fmt.Errorf("encoding template exercises: %w", err)
	}
	_, err = q.Exec(ctx,
		`INSERT INTO workout_templates (id, user_id, program_id, position, name, description,
		 exercises, usage_count, is_system, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		t.ID, t.UserID, programID, position, t.Name, t.Description,
		exercises, t.UsageCount, t.IsSystemTemplate, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("inserting template %s: %w", t.ID, err)
	}
	return nil
}

// DeleteTemplate removes a template owned by the user.
func (db *DB) DeleteTemplate(ctx context.Context, id string, userID int) error {
	tag, err := db.Pool.Exec(ctx,
		`DELETE FROM workout_templates WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("deleting template: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

// IncrementTemplateUsage bumps the usage counter when a workout starts from a template.
func (db *DB) IncrementTemplateUsage(ctx context.Context, id string, userID int) error {
	tag, err := db.Pool.Exec(ctx,
		`UPDATE workout_templates
		 SET usage_count = usage_count + 1, updated_at = NOW()
		 WHERE id = $1 AND user_id = $2`,
		id, userID)
	if err != nil {
		return fmt.Errorf("incrementing template usage: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func scanTemplates(rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}) ([]models.WorkoutTemplate, error) {
	var result []models.WorkoutTemplate
	for rows.Next() {
		var (
			t         models.WorkoutTemplate
			exercises []byte
		)
		if err := rows.Scan(&t.ID, &t.UserID, &t.Name, &t.Description, &exercises,
			&t.UsageCount, &t.IsSystemTemplate, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning template: %w", err)
		}
		if err := json.Unmarshal(exercises, &t.Exercises); err != nil {
			return nil, fmt.Errorf("decoding exercises of template %s: %w", t.ID, err)
		}
		result = append(result, t)
	}
	return result, rows.Err()
}

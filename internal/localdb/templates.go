package localdb

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nubo/training/internal/models"
	"github.com/nubo/training/internal/store"
)

const templateColumns = `id, user_id, name, description, exercises, usage_count, is_system, created_at, updated_at`

// ListTemplates returns a user's templates, most used first.
func (d *DB) ListTemplates(ctx context.Context, userID int) ([]models.WorkoutTemplate, error) {
	rows, err := d.db.QueryContext(ctx,
		`SELECT `+templateColumns+`
		 FROM workout_templates
		 WHERE user_id = ?
		 ORDER BY usage_count DESC, created_at DESC, position ASC`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("querying templates: %w", err)
	}
	defer rows.Close()

	return scanTemplates(rows)
}

// GetTemplate retrieves one template owned by the user.
func (d *DB) GetTemplate(ctx context.Context, id string, userID int) (models.WorkoutTemplate, error) {
	rows, err := d.db.QueryContext(ctx,
		`SELECT `+templateColumns+`
		 FROM workout_templates
		 WHERE id = ? AND user_id = ?`,
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
func (d *DB) CreateTemplate(ctx context.Context, t models.WorkoutTemplate) error {
	return insertTemplate(ctx, d.db, t, nil, 0)
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func insertTemplate(ctx context.Context, q execer, t models.WorkoutTemplate, programID *string, position int) error {
	exercises, err := jsonText(t.Exercises)
	if err != nil {
		return fmt.Errorf("encoding template exercises: %w", err)
	}
	_, err = q.ExecContext(ctx,
		`INSERT INTO workout_templates (id, user_id, program_id, position, name, description,
		 exercises, usage_count, is_system, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.UserID, programID, position, t.Name, t.Description,
		exercises, t.UsageCount, t.IsSystemTemplate, utc(t.CreatedAt), utc(t.UpdatedAt))
	if err != nil {
		return fmt.Errorf("inserting template %s: %w", t.ID, err)
	}
	return nil
}

// DeleteTemplate removes a template owned by the user.
func (d *DB) DeleteTemplate(ctx context.Context, id string, userID int) error {
	res, err := d.db.ExecContext(ctx,
		`DELETE FROM workout_templates WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("deleting template: %w", err)
	}
	return requireRow(res)
}

// IncrementTemplateUsage bumps the usage counter when a workout starts from a template.
func (d *DB) IncrementTemplateUsage(ctx context.Context, id string, userID int) error {
	res, err := d.db.ExecContext(ctx,
		`UPDATE workout_templates
		 SET usage_count = usage_count + 1, updated_at = ?
		 WHERE id = ? AND user_id = ?`,
		utc(time.Now()), id, userID)
	if err != nil {
		return fmt.Errorf("incrementing template usage: %w", err)
	}
	return requireRow(res)
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func scanTemplates(rows *sql.Rows) ([]models.WorkoutTemplate, error) {
	var result []models.WorkoutTemplate
	for rows.Next() {
		var (
			t         models.WorkoutTemplate
			exercises string
		)
		if err := rows.Scan(&t.ID, &t.UserID, &t.Name, &t.Description, &exercises,
			&t.UsageCount, &t.IsSystemTemplate, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning template: %w", err)
		}
		if err := json.Unmarshal([]byte(exercises), &t.Exercises); err != nil {
			return nil, fmt.Errorf("decoding exercises of template %s: %w", t.ID, err)
		}
		result = append(result, t)
	}
	return result, rows.Err()
}

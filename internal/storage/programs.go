package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nubo/training/internal/models"
)

// SaveProgram stores a program and its templates in one transaction.
func (db *DB) SaveProgram(ctx context.Context, p models.AIProgram) error {
	request, err := json.Marshal(p.Request)
	if err != nil {
		return fmt.Errorf("encoding program request: %w", err)
	}

	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`INSERT INTO programs (id, user_id, name, description, duration, schedule, request, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		p.ID, p.UserID, p.Name, p.Description, p.Duration, p.Schedule, request, p.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting program: %w", err)
	}

	for i, t := range p.Templates {
		t.UserID = p.UserID
		if err := insertTemplate(ctx, tx, t, &p.ID, i); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing program: %w", err)
	}
	return nil
}

// ListPrograms returns a user's programs, newest first, without templates.
func (db *DB) ListPrograms(ctx context.Context, userID int) ([]models.AIProgram, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, user_id, name, description, duration, schedule, request, created_at
		 FROM programs
		 WHERE user_id = $1
		 ORDER BY created_at DESC`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("querying programs: %w", err)
	}
	defer rows.Close()

	var result []models.AIProgram
	for rows.Next() {
		p, err := scanProgram(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	return result, rows.Err()
}

// GetProgram retrieves a program with its templates in schedule order.
func (db *DB) GetProgram(ctx context.Context, id string, userID int) (models.AIProgram, error) {
	row := db.Pool.QueryRow(ctx,
		`SELECT id, user_id, name, description, duration, schedule, request, created_at
		 FROM programs
		 WHERE id = $1 AND user_id = $2`,
		id, userID)
	p, err := scanProgram(row)
	if err != nil {
		return models.AIProgram{}, notFound(err)
	}

	rows, err := db.Pool.Query(ctx,
		`SELECT `+templateColumns+`
		 FROM workout_templates
		 WHERE program_id = $1
		 ORDER BY position ASC`,
		id)
	if err != nil {
		return models.AIProgram{}, fmt.Errorf("querying program templates: %w", err)
	}
	defer rows.Close()

	p.Templates, err = scanTemplates(rows)
	if err != nil {
		return models.AIProgram{}, err
	}
	if p.Templates == nil {
		p.Templates = []models.WorkoutTemplate{}
	}
	return p, nil
}

func scanProgram(row interface{ Scan(dest ...any) error }) (models.AIProgram, error) {
	var (
		p       models.AIProgram
		request []byte
	)
	if err := row.Scan(&p.ID, &p.UserID, &p.Name, &p.Description, &p.Duration,
		&p.Schedule, &request, &p.CreatedAt); err != nil {
		return models.AIProgram{}, fmt.Errorf("scanning program: %w", err)
	}
	if err := json.Unmarshal(request, &p.Request); err != nil {
		return models.AIProgram{}, fmt.Errorf("decoding request of program %s: %w", p.ID, err)
	}
	return p, nil
}

package localdb

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nubo/training/internal/models"
)

// ListCustomExercises returns a user's own exercises ordered by name.
func (d *DB) ListCustomExercises(ctx context.Context, userID int) ([]models.Exercise, error) {
	rows, err := d.db.QueryContext(ctx,
		`SELECT id, user_id, name, name_en, muscle_group, equipment, instructions
		 FROM custom_exercises
		 WHERE user_id = ?
		 ORDER BY name`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("querying custom exercises: %w", err)
	}
	defer rows.Close()

	var result []models.Exercise
	for rows.Next() {
		var (
			ex                      models.Exercise
			equipment, instructions string
		)
		if err := rows.Scan(&ex.ID, &ex.UserID, &ex.Name, &ex.NameEn, &ex.MuscleGroup,
			&equipment, &instructions); err != nil {
			return nil, fmt.Errorf("scanning custom exercise: %w", err)
		}
		if err := json.Unmarshal([]byte(equipment), &ex.Equipment); err != nil {
			return nil, fmt.Errorf("decoding equipment of %s: %w", ex.ID, err)
		}
		if err := json.Unmarshal([]byte(instructions), &ex.Instructions); err != nil {
			return nil, fmt.Errorf("decoding instructions of %s: %w", ex.ID, err)
		}
		ex.IsCustom = true
		result = append(result, ex)
	}
	return result, rows.Err()
}

// CreateExercise stores a custom exercise and returns it marked as custom.
func (d *DB) CreateExercise(ctx context.Context, ex models.Exercise) (models.Exercise, error) {
	equipment, err := jsonText(ex.Equipment)
	if err != nil {
		return models.Exercise{}, fmt.Errorf("encoding equipment: %w", err)
	}
	instructions, err := jsonText(ex.Instructions)
	if err != nil {
		return models.Exercise{}, fmt.Errorf("encoding instructions: %w", err)
	}
	_, err = d.db.ExecContext(ctx,
		`INSERT INTO custom_exercises (id, user_id, name, name_en, muscle_group, equipment, instructions)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		ex.ID, ex.UserID, ex.Name, ex.NameEn, ex.MuscleGroup, equipment, instructions)
	if err != nil {
		return models.Exercise{}, fmt.Errorf("inserting custom exercise: %w", err)
	}
	ex.IsCustom = true
	return ex, nil
}

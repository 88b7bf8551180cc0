package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nubo/training/internal/models"
)

// ListCustomExercises returns a user's own exercises ordered by name.
func (db *DB) ListCustomExercises(ctx context.Context, userID int) ([]models.Exercise, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, user_id, name, name_en, muscle_group, equipment, instructions
		 FROM custom_exercises
		 WHERE user_id = $1
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
			equipment, instructions []byte
		)
		if err := rows.Scan(&ex.ID, &ex.UserID, &ex.Name, &ex.NameEn, &ex.MuscleGroup,
			&equipment, &instructions); err != nil {
			return nil, fmt.Errorf("scanning custom exercise: %w", err)
		}
		if err := json.Unmarshal(equipment, &ex.Equipment); err != nil {
			return nil, fmt.Errorf("decoding equipment of %s: %w", ex.ID, err)
		}
		if err := json.Unmarshal(instructions, &ex.Instructions); err != nil {
			return nil, fmt.Errorf("decoding instructions of %s: %w", ex.ID, err)
		}
		ex.IsCustom = true
		result = append(result, ex)
	}
	return result, rows.Err()
}

// CreateExercise stores a custom exercise and returns it marked as custom.
func (db *DB) CreateExercise(ctx context.Context, ex models.Exercise) (models.Exercise, error) {
	equipment, err := jsonb(ex.Equipment)
	if err != nil {
		return models.Exercise{}, fmt.Errorf("encoding equipment: %w", err)
	}
	instructions, err := jsonb(ex.Instructions)
	if err != nil {
		return models.Exercise{}, fmt.Errorf("encoding instructions: %w", err)
	}

	_, err = db.Pool.Exec(ctx,
		`INSERT INTO custom_exercises (id, user_id, name, name_en, muscle_group, equipment, instructions)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		ex.ID, ex.UserID, ex.Name, ex.NameEn, ex.MuscleGroup, equipment, instructions)
	if err != nil {
		return models.Exercise{}, fmt.Errorf("inserting custom exercise: %w", err)
	}
	ex.IsCustom = true
	return ex, nil
}

package localdb

import (
	"context"
	"fmt"
	"time"

	"github.com/nubo/training/internal/models"
)

// AddMeasurement stores a body measurement and returns it with its ID.
func (d *DB) AddMeasurement(ctx context.Context, m models.BodyMeasurement) (models.BodyMeasurement, error) {
	m.Date = utc(m.Date)
	res, err := d.db.ExecContext(ctx,
		`INSERT INTO body_measurements (user_id, date, weight_kg, body_fat_pct, chest_cm,
		 waist_cm, hips_cm, biceps_cm, thigh_cm, notes)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.UserID, m.Date, m.WeightKg, m.BodyFatPct, m.ChestCm,
		m.WaistCm, m.HipsCm, m.BicepsCm, m.ThighCm, m.Notes)
	if err != nil {
		return models.BodyMeasurement{}, fmt.Errorf("inserting measurement: %w", err)
	}
	if m.ID, err = res.LastInsertId(); err != nil {
		return models.BodyMeasurement{}, fmt.Errorf("reading measurement id: %w", err)
	}
	return m, nil
}

// ListMeasurements returns measurements in [start, end) ordered by date.
func (d *DB) ListMeasurements(ctx context.Context, userID int, start, end time.Time) ([]models.BodyMeasurement, error) {
	rows, err := d.db.QueryContext(ctx,
		`SELECT id, user_id, date, weight_kg, body_fat_pct, chest_cm, waist_cm,
		 hips_cm, biceps_cm, thigh_cm, notes
		 FROM body_measurements
		 WHERE user_id = ? AND date >= ? AND date < ?
		 ORDER BY date ASC`,
		userID, utc(start), utc(end))
	if err != nil {
		return nil, fmt.Errorf("querying measurements: %w", err)
	}
	defer rows.Close()

	var result []models.BodyMeasurement
	for rows.Next() {
		var m models.BodyMeasurement
		if err := rows.Scan(&m.ID, &m.UserID, &m.Date, &m.WeightKg, &m.BodyFatPct, &m.ChestCm,
			&m.WaistCm, &m.HipsCm, &m.BicepsCm, &m.ThighCm, &m.Notes); err != nil {
			return nil, fmt.Errorf("scanning measurement: %w", err)
		}
		result = append(result, m)
	}
	return result, rows.Err()
}

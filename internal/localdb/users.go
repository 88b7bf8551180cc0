package localdb

import (
	"context"
	"fmt"
)

// GetOrCreateUser finds or creates a user by login name and returns its ID.
func (d *DB) GetOrCreateUser(ctx context.Context, login, displayName string) (int, error) {
	var id int
	err := d.db.QueryRowContext(ctx, `
		INSERT INTO users (login, display_name)
		VALUES (?, ?)
		ON CONFLICT (login) DO UPDATE
			SET last_seen = CURRENT_TIMESTAMP,
			    display_name = COALESCE(NULLIF(excluded.display_name, ''), users.display_name)
		RETURNING id
	`, login, displayName).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("upserting user: %w", err)
	}
	return id, nil
}

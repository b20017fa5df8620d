package database

import (
	"context"

	"github.com/pixelloop/agents-api/internal/models"
)

// StatusRepository handles status-check database operations
type StatusRepository struct {
	db *DB
}

// NewStatusRepository creates a new StatusRepository
func NewStatusRepository(db *DB) *StatusRepository {
	return &StatusRepository{db: db}
}

// Create appends a status check to the log
func (r *StatusRepository) Create(ctx context.Context, check *models.StatusCheck) error {
	query := `
		INSERT INTO status_checks (id, client_name, created_at)
		VALUES ($1, $2, $3)
	`

	_, err := r.db.ExecContext(ctx, query, check.ID, check.ClientName, check.Timestamp)

	return err
}

// List retrieves status checks up to the given limit
func (r *StatusRepository) List(ctx context.Context, limit int) ([]*models.StatusCheck, error) {
	query := `
		SELECT id, client_name, created_at
		FROM status_checks
		LIMIT $1
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var checks []*models.StatusCheck
	for rows.Next() {
		check := &models.StatusCheck{}
		if err := rows.Scan(&check.ID, &check.ClientName, &check.Timestamp); err != nil {
			return nil, err
		}
		checks = append(checks, check)
	}

	return checks, rows.Err()
}

package database

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pixelloop/agents-api/internal/models"
)

// WallpaperRepository handles wallpaper history database operations
type WallpaperRepository struct {
	db *DB
}

// NewWallpaperRepository creates a new WallpaperRepository
func NewWallpaperRepository(db *DB) *WallpaperRepository {
	return &WallpaperRepository{db: db}
}

// Create stores a wallpaper generation record
func (r *WallpaperRepository) Create(ctx context.Context, wp *models.Wallpaper) error {
	metadata, err := json.Marshal(wp.Metadata)
	if err != nil {
		return fmt.Errorf("marshal metadata: %w", err)
	}

	query := `
		INSERT INTO wallpapers (
			id, prompt, enhanced_prompt, style, aspect_ratio,
			quality, wallpaper_url, metadata, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err = r.db.ExecContext(ctx, query,
		wp.ID, wp.Prompt, wp.EnhancedPrompt, wp.Style, wp.AspectRatio,
		wp.Quality, wp.WallpaperURL, metadata, wp.Timestamp,
	)

	return err
}

// ListRecent retrieves the most recent wallpapers, newest first. The internal
// seq column is intentionally not selected; API responses carry only the
// application-assigned id.
func (r *WallpaperRepository) ListRecent(ctx context.Context, limit int) ([]*models.Wallpaper, error) {
	query := `
		SELECT id, prompt, enhanced_prompt, style, aspect_ratio,
			quality, wallpaper_url, metadata, created_at
		FROM wallpapers
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var wallpapers []*models.Wallpaper
	for rows.Next() {
		wp := &models.Wallpaper{}
		var metadata []byte
		err := rows.Scan(
			&wp.ID, &wp.Prompt, &wp.EnhancedPrompt, &wp.Style, &wp.AspectRatio,
			&wp.Quality, &wp.WallpaperURL, &metadata, &wp.Timestamp,
		)
		if err != nil {
			return nil, err
		}
		if len(metadata) > 0 {
			if err := json.Unmarshal(metadata, &wp.Metadata); err != nil {
				return nil, fmt.Errorf("unmarshal metadata: %w", err)
			}
		}
		wallpapers = append(wallpapers, wp)
	}

	return wallpapers, rows.Err()
}
